// Package lzss implements a streaming LZSS compressor: it reads a byte
// sequence, finds repeated substrings within a bounded sliding window of
// previously-seen bytes, and emits literal bytes or back-references
// through a pluggable Codec.
//
// Decompression is unimplemented: the codecs in package codec only ever
// write.
//
//	cfg := lzss.Config{
//		WindowSize:  1024,
//		MinMatchLen: 8,
//		MaxMatchLen: 1024,
//		Codec:       codec.NewAsciiCodec(sink),
//	}
//	c, err := lzss.New(cfg)
//	...
//	err = c.Compress(data)
//	...
//	err = c.End()
package lzss
