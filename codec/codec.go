// Package codec defines the pluggable output strategy the compressor emits
// literal bytes and back-references through, plus the two concrete
// implementations: a human-readable ASCII codec and a bit-packed binary
// codec.
package codec

import "github.com/voices117/lzss/matchlist"

// Sink receives encoded byte spans from a codec. It is valid only for the
// duration of the call. A non-nil error aborts the codec and is propagated
// to the caller as an I/O error.
type Sink func(p []byte) error

// Codec is the contract every output strategy implements. The Compressor
// calls WriteLiteral/WriteMatch once per emitted token and Close exactly
// once, at the end of compression, to flush any buffered partial output and
// the format's terminator.
//
// Decoding is out of scope: the reference implementation never finished its
// read side, and neither does this one.
type Codec interface {
	// WriteLiteral emits one raw byte.
	WriteLiteral(b byte) error
	// WriteMatch emits a back-reference.
	WriteMatch(m matchlist.Match) error
	// Close flushes any buffered partial output and the format terminator.
	Close() error
}
