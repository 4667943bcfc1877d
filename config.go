package lzss

import "github.com/voices117/lzss/codec"

// Config configures a Compressor. WindowSize must be at least 2,
// MinMatchLen at least 2, and MaxMatchLen must be at least MinMatchLen.
// Codec is owned by the caller: the Compressor only references it for the
// lifetime of the compression, the caller destroys it after End returns.
type Config struct {
	WindowSize  int
	MinMatchLen int
	MaxMatchLen int
	Codec       codec.Codec
}

// valid reports whether the configuration satisfies the Compressor's
// invariants.
func (c Config) valid() bool {
	return c.WindowSize >= 2 &&
		c.MinMatchLen >= 2 &&
		c.MaxMatchLen >= c.MinMatchLen &&
		c.Codec != nil
}
