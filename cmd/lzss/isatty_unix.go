//go:build linux || darwin || freebsd || openbsd || netbsd

package main

import "golang.org/x/sys/unix"

// isTerminal reports whether fd refers to a terminal, used to decide
// whether the [ABORTED] diagnostic gets ANSI color.
func isTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), ioctlGetTermios)
	return err == nil
}
