package lzss

import (
	"github.com/voices117/lzss/matchlist"
	"github.com/voices117/lzss/window"
)

// Compressor is the LZSS engine: it owns a sliding Window, the MatchList of
// live candidates, and a buffer of bytes pending a literal/match decision,
// and drives them through one state transition per input byte, emitting
// tokens to its Codec.
//
// A Compressor is single-threaded and non-reentrant: the sink behind its
// Codec must not call back into Compress or End. Multiple
// Compressor instances may run on separate goroutines provided they do not
// share a Codec.
type Compressor struct {
	cfg Config

	window *window.Window
	ml     *matchlist.MatchList

	// pending holds bytes that are part of a live candidate match but have
	// not yet reached MinMatchLen; they are flushed as literals if every
	// candidate dies before reaching that length. Its capacity equals
	// MinMatchLen and it never overflows: once a surviving match reaches
	// MinMatchLen, the code path that appends to it is no longer taken.
	pending    []byte
	pendingLen int
}

// New allocates a Compressor for the given configuration.
func New(cfg Config) (*Compressor, error) {
	if !cfg.valid() {
		return nil, ErrOutOfMemory
	}

	w, err := window.New(cfg.WindowSize)
	if err != nil {
		return nil, ErrOutOfMemory
	}

	return &Compressor{
		cfg:     cfg,
		window:  w,
		ml:      matchlist.New(cfg.WindowSize),
		pending: make([]byte, cfg.MinMatchLen),
	}, nil
}

// Compress feeds a span of input bytes through the engine. It may be
// called repeatedly to compress data in chunks. It returns the first error
// encountered; callers should stop calling Compress after that but must
// still release resources (in Go there is nothing further to release, the
// Compressor and its Window/MatchList are reclaimed by the garbage
// collector once dropped).
func (c *Compressor) Compress(data []byte) error {
	for _, b := range data {
		if err := c.compressOne(b); err != nil {
			return err
		}
	}
	return nil
}

// End flushes any still-growing candidate match and closes the codec. It
// must be called exactly once, after the final call to Compress.
func (c *Compressor) End() error {
	if c.ml.Length() > 0 {
		match, ok := c.ml.Get(0)
		if !ok {
			return ErrInternal
		}

		if match.Len >= uint64(c.cfg.MinMatchLen) {
			if err := c.cfg.Codec.WriteMatch(match); err != nil {
				return wrapIO(err)
			}
		} else {
			for i := uint64(0); i < match.Len; i++ {
				if err := c.cfg.Codec.WriteLiteral(c.pending[i]); err != nil {
					return wrapIO(err)
				}
			}
		}
		c.ml.Reset()
		c.pendingLen = 0
	}

	if err := c.cfg.Codec.Close(); err != nil {
		return wrapIO(err)
	}
	return nil
}

// compressOne runs the two-phase (advance, seed) state transition for one
// input byte b, then appends b to the window.
func (c *Compressor) compressOne(b byte) error {
	if c.ml.Length() > 0 {
		best, ok := c.ml.Get(0)
		if !ok {
			return ErrInternal
		}

		var readFailed bool
		survivors := c.ml.Update(func(m *matchlist.Match) bool {
			wb, ok := c.window.Read(m.Pos)
			if !ok {
				readFailed = true
				return false
			}
			if wb != b {
				return false
			}
			m.Len++
			return true
		})
		if readFailed {
			return ErrInternal
		}

		if survivors == 0 {
			if best.Len >= uint64(c.cfg.MinMatchLen) {
				if err := c.cfg.Codec.WriteMatch(best); err != nil {
					return wrapIO(err)
				}
			} else {
				for i := uint64(0); i < best.Len; i++ {
					if err := c.cfg.Codec.WriteLiteral(c.pending[i]); err != nil {
						return wrapIO(err)
					}
				}
			}
			c.pendingLen = 0
		} else if best.Len < uint64(c.cfg.MinMatchLen) {
			c.pending[c.pendingLen] = b
			c.pendingLen++
		}
	}

	if c.ml.Length() == 0 {
		found, err := c.seedMatches(b)
		if err != nil {
			return err
		}

		if found && c.pendingLen < c.cfg.MinMatchLen {
			c.pending[c.pendingLen] = b
			c.pendingLen++
		} else if !found {
			if err := c.cfg.Codec.WriteLiteral(b); err != nil {
				return wrapIO(err)
			}
		}
	}

	if c.ml.Length() > 0 {
		m, ok := c.ml.Get(0)
		if !ok {
			return ErrInternal
		}

		if m.Len == uint64(c.cfg.MaxMatchLen) {
			if err := c.cfg.Codec.WriteMatch(m); err != nil {
				return wrapIO(err)
			}
			c.pendingLen = 0
			c.ml.Reset()
		}
	}

	c.window.Append(b)
	return nil
}

// seedMatches scans the window for every position whose byte equals b and
// appends each as a new length-1 candidate. It reports whether any were
// found.
func (c *Compressor) seedMatches(b byte) (bool, error) {
	found := false
	size := c.window.Size()

	for i := 0; i < size; i++ {
		wb, ok := c.window.Read(uint64(i))
		if !ok {
			return false, ErrInternal
		}
		if wb != b {
			continue
		}

		if err := c.ml.Append(matchlist.Match{Pos: uint64(i), Len: 1}); err != nil {
			return false, ErrInternal
		}
		found = true
	}

	return found, nil
}
