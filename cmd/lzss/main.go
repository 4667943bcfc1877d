// Command lzss compresses a byte stream with the LZSS sliding-window
// algorithm, writing either a human-readable ASCII token stream or a
// packed binary one.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/voices117/lzss"
	"github.com/voices117/lzss/codec"
	"github.com/voices117/lzss/matchlist"
)

const version = "LZSS 1.0.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lzss", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		verbose     bool
		ascii       bool
		inputPath   string
		outputPath  string
		windowSize  int
		minMatch    int
		maxMatch    int
		showVersion bool
	)

	fs.BoolVar(&verbose, "v", false, "log progress to stderr")
	fs.BoolVar(&verbose, "verbose", false, "log progress to stderr")
	fs.BoolVar(&ascii, "a", false, "emit the human-readable ASCII codec instead of the packed binary one")
	fs.BoolVar(&ascii, "ascii", false, "emit the human-readable ASCII codec instead of the packed binary one")
	fs.StringVar(&inputPath, "i", "", "input file (default stdin)")
	fs.StringVar(&inputPath, "input", "", "input file (default stdin)")
	fs.StringVar(&outputPath, "o", "", "output file (default stdout)")
	fs.StringVar(&outputPath, "output", "", "output file (default stdout)")
	fs.IntVar(&windowSize, "w", 10*1024*1024, "sliding window size in bytes")
	fs.IntVar(&windowSize, "window", 10*1024*1024, "sliding window size in bytes")
	fs.IntVar(&minMatch, "m", 8, "minimum match length")
	fs.IntVar(&minMatch, "min-match", 8, "minimum match length")
	fs.IntVar(&maxMatch, "M", 100, "maximum match length")
	fs.IntVar(&maxMatch, "max-match", 100, "maximum match length")
	fs.BoolVar(&showVersion, "version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if showVersion {
		fmt.Fprintln(stdout, version)
		return 0
	}

	logger := log.New(stderr, "", 0)
	if !verbose {
		logger.SetOutput(io.Discard)
	}

	in := stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			abort(stderr, err)
			return 1
		}
		defer f.Close()
		in = f
	}

	out := stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			abort(stderr, err)
			return 1
		}
		defer f.Close()
		out = f
	}

	if err := compress(logger, in, out, verbose, ascii, windowSize, minMatch, maxMatch); err != nil {
		abort(stderr, err)
		return 1
	}
	return 0
}

func compress(logger *log.Logger, in io.Reader, out io.Writer, verbose, ascii bool, windowSize, minMatch, maxMatch int) error {
	logger.Printf("config: window=%d min_match=%d max_match=%d ascii=%v", windowSize, minMatch, maxMatch, ascii)

	w := bufio.NewWriter(out)
	sink := func(p []byte) error {
		_, err := w.Write(p)
		return err
	}

	var c codec.Codec
	if ascii {
		c = codec.NewAsciiCodec(sink)
	} else {
		bc, err := codec.NewBinaryCodec(sink, uint64(minMatch), uint64(maxMatch), uint64(windowSize))
		if err != nil {
			return err
		}
		c = bc
	}
	if verbose {
		c = &verboseCodec{Codec: c, logger: logger}
	}

	comp, err := lzss.New(lzss.Config{
		WindowSize:  windowSize,
		MinMatchLen: minMatch,
		MaxMatchLen: maxMatch,
		Codec:       c,
	})
	if err != nil {
		return err
	}

	buf := make([]byte, 64*1024)
	var total uint64
	for {
		n, readErr := in.Read(buf)
		if n > 0 {
			if err := comp.Compress(buf[:n]); err != nil {
				return err
			}
			total += uint64(n)
			if verbose {
				logger.Printf("compressed %d bytes", total)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return readErr
		}
	}

	if err := comp.End(); err != nil {
		return err
	}
	return w.Flush()
}

// verboseCodec wraps a Codec and logs one line per emitted token, naming
// whether it is a literal or a match; a match covering many bytes is one
// line. It stands in for the byte-by-byte ASCII window diagram the
// reference CLI printed unconditionally; here the trace is opt-in (-v).
type verboseCodec struct {
	codec.Codec
	logger *log.Logger
}

func (c *verboseCodec) WriteLiteral(b byte) error {
	c.logger.Printf("literal %q", b)
	return c.Codec.WriteLiteral(b)
}

func (c *verboseCodec) WriteMatch(m matchlist.Match) error {
	c.logger.Printf("match pos=%d len=%d", m.Pos, m.Len)
	return c.Codec.WriteMatch(m)
}

// abort prints the "[ABORTED] <msg>" diagnostic the C reference
// implementation's ABORT macro produced, colored red when stderr is a
// terminal.
func abort(stderr io.Writer, err error) {
	msg := fmt.Sprintf("[ABORTED] %s", err)
	if f, ok := stderr.(*os.File); ok && isTerminal(f.Fd()) {
		fmt.Fprintf(stderr, "\x1b[31m%s\x1b[0m\n", msg)
		return
	}
	fmt.Fprintln(stderr, msg)
}
