package codec

import (
	"errors"

	"github.com/voices117/lzss/matchlist"
)

// ErrInvalidParams is returned by NewBinaryCodec when the match-length or
// position bounds are not viable for bit packing.
var ErrInvalidParams = errors.New("codec: invalid binary codec parameters")

// BinaryCodec writes a bit-packed stream, MSB-first: a literal is a 0 bit
// followed by 8 payload bits, a match is a 1 bit followed by a fixed-width
// position field and a fixed-width (length - minMatchLen) field. Close pads
// the final partial byte with a 1 bit followed by zero bits, or emits a
// full 0x80 byte if nothing is pending.
type BinaryCodec struct {
	sink Sink

	minMatchLen uint64

	numBitsPos   uint
	numBitsMatch uint

	acc     byte
	bitsSet uint // number of bits already packed into the low-order end of acc, 0..7
}

// NewBinaryCodec returns a codec that writes through sink. maxPos bounds the
// positions that will ever be encoded (exclusive) and minMatchLen/
// maxMatchLen bound match lengths (inclusive); both must be viable, or
// ErrInvalidParams is returned.
func NewBinaryCodec(sink Sink, minMatchLen, maxMatchLen, maxPos uint64) (*BinaryCodec, error) {
	if minMatchLen < 2 || maxMatchLen < 2 || minMatchLen > maxMatchLen || maxPos < 2 {
		return nil, ErrInvalidParams
	}

	return &BinaryCodec{
		sink:         sink,
		minMatchLen:  minMatchLen,
		numBitsPos:   bitsIn(maxPos - 1),
		numBitsMatch: bitsIn(maxMatchLen - minMatchLen),
	}, nil
}

// bitsIn returns the smallest k such that n>>k == 0, i.e. ceil(log2(n+1)):
// the number of bits needed to represent any value in [0, n].
func bitsIn(n uint64) uint {
	var k uint
	for n>>k > 0 {
		k++
	}
	return k
}

// WriteLiteral emits a 0 bit followed by the 8 payload bits of b.
func (c *BinaryCodec) WriteLiteral(b byte) error {
	if err := c.appendBit(false); err != nil {
		return err
	}
	return c.appendBits(uint64(b), 8)
}

// WriteMatch emits a 1 bit, the position, then (len - minMatchLen).
func (c *BinaryCodec) WriteMatch(m matchlist.Match) error {
	if err := c.appendBit(true); err != nil {
		return err
	}
	if err := c.appendBits(m.Pos, c.numBitsPos); err != nil {
		return err
	}
	return c.appendBits(m.Len-c.minMatchLen, c.numBitsMatch)
}

// Close flushes the partial output byte. If a byte is already pending it is
// padded with a 1 bit followed by zero bits; otherwise a full 0x80 byte is
// written. Exactly one byte is always written.
func (c *BinaryCodec) Close() error {
	if c.bitsSet == 0 {
		return c.sink([]byte{0x80})
	}

	first := true
	for c.bitsSet != 0 {
		bit := first
		first = false
		if err := c.appendBit(bit); err != nil {
			return err
		}
	}
	return nil
}

// appendBits writes the numBits least-significant bits of value, most
// significant first.
func (c *BinaryCodec) appendBits(value uint64, numBits uint) error {
	for i := int(numBits) - 1; i >= 0; i-- {
		if err := c.appendBit((value>>uint(i))&1 == 1); err != nil {
			return err
		}
	}
	return nil
}

// appendBit packs a single bit into the accumulator, flushing a full byte
// to the sink whenever it fills.
func (c *BinaryCodec) appendBit(bit bool) error {
	c.acc <<= 1
	if bit {
		c.acc |= 1
	}
	c.bitsSet++

	if c.bitsSet == 8 {
		if err := c.sink([]byte{c.acc}); err != nil {
			return err
		}
		c.acc = 0
		c.bitsSet = 0
	}
	return nil
}
