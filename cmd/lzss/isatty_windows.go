//go:build windows

package main

import "golang.org/x/sys/windows"

// isTerminal reports whether fd refers to a console, used to decide
// whether the [ABORTED] diagnostic gets ANSI color.
func isTerminal(fd uintptr) bool {
	var mode uint32
	err := windows.GetConsoleMode(windows.Handle(fd), &mode)
	return err == nil
}
