package codec

import (
	"strconv"

	"github.com/voices117/lzss/matchlist"
)

// AsciiCodec writes a human-readable, space-separated token stream:
// "0c" for a literal byte c, "1(pos,len)" for a match, terminated by a
// newline and a NUL byte on Close.
type AsciiCodec struct {
	sink       Sink
	hasEmitted bool
}

// NewAsciiCodec returns a codec that writes through sink.
func NewAsciiCodec(sink Sink) *AsciiCodec {
	return &AsciiCodec{sink: sink}
}

// WriteLiteral emits "0" followed by the raw byte b.
func (c *AsciiCodec) WriteLiteral(b byte) error {
	if err := c.writeSeparator(); err != nil {
		return err
	}
	return c.sink([]byte{'0', b})
}

// WriteMatch emits "1(pos,len)".
func (c *AsciiCodec) WriteMatch(m matchlist.Match) error {
	if err := c.writeSeparator(); err != nil {
		return err
	}

	token := "1(" + strconv.FormatUint(m.Pos, 10) + "," + strconv.FormatUint(m.Len, 10) + ")"
	return c.sink([]byte(token))
}

// Close writes the terminating newline and NUL byte.
func (c *AsciiCodec) Close() error {
	return c.sink([]byte{'\n', 0})
}

// writeSeparator writes a leading space before every token but the first.
func (c *AsciiCodec) writeSeparator() error {
	if !c.hasEmitted {
		c.hasEmitted = true
		return nil
	}
	return c.sink([]byte{' '})
}
