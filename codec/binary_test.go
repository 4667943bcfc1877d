package codec

import (
	"bytes"
	"testing"

	"github.com/voices117/lzss/matchlist"
)

func newBinaryRecorder(t *testing.T, minMatchLen, maxMatchLen, maxPos uint64) (*BinaryCodec, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	c, err := NewBinaryCodec(func(p []byte) error {
		buf.Write(p)
		return nil
	}, minMatchLen, maxMatchLen, maxPos)
	if err != nil {
		t.Fatalf("NewBinaryCodec: %v", err)
	}
	return c, &buf
}

func TestNewBinaryCodecRejectsInvalidParams(t *testing.T) {
	sink := func(p []byte) error { return nil }

	cases := []struct {
		name                    string
		min, max, maxPos uint64
	}{
		{"min too small", 1, 10, 1024},
		{"max too small", 10, 1, 1024},
		{"min greater than max", 10, 5, 1024},
		{"maxPos too small", 2, 10, 1},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBinaryCodec(sink, tt.min, tt.max, tt.maxPos); err != ErrInvalidParams {
				t.Fatalf("error = %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestBinaryCodecEmptyInput(t *testing.T) {
	c, buf := newBinaryRecorder(t, 2, 2, 2)
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if got, want := buf.Bytes(), []byte{0x80}; !bytes.Equal(got, want) {
		t.Fatalf("output = %x, want %x", got, want)
	}
}

func TestBinaryCodecFourLiterals(t *testing.T) {
	c, buf := newBinaryRecorder(t, 2, 2, 2)

	for _, b := range []byte{0x55, 0x00, 0xff, 0x33} {
		if err := c.WriteLiteral(b); err != nil {
			t.Fatalf("WriteLiteral: %v", err)
		}
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	want := []byte{0x2a, 0x80, 0x1f, 0xe3, 0x38}
	if got := buf.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("output = %x, want %x", got, want)
	}
}

func TestBinaryCodecOneMatch(t *testing.T) {
	c, buf := newBinaryRecorder(t, 2, 10, 1024)

	if err := c.WriteMatch(matchlist.Match{Pos: 0, Len: 2}); err != nil {
		t.Fatalf("WriteMatch: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	want := []byte{0x80, 0x01}
	if got := buf.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("output = %x, want %x", got, want)
	}
}

func TestBinaryCodecPropagatesSinkError(t *testing.T) {
	wantErr := bytes.ErrTooLarge
	c, err := NewBinaryCodec(func(p []byte) error { return wantErr }, 2, 2, 2)
	if err != nil {
		t.Fatalf("NewBinaryCodec: %v", err)
	}

	// a literal is 9 bits (1 discriminator + 8 payload bits), so it fills
	// and flushes the first byte
	if err := c.WriteLiteral('a'); err != wantErr {
		t.Fatalf("WriteLiteral error = %v, want %v", err, wantErr)
	}
}

func TestBitsIn(t *testing.T) {
	cases := []struct {
		n    uint64
		want uint
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{8, 4},
		{1023, 10},
	}

	for _, tt := range cases {
		if got := bitsIn(tt.n); got != tt.want {
			t.Fatalf("bitsIn(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
