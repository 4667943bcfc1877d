// Package window provides a bounded view of recently-seen bytes addressed by
// age (0 = newest) instead of absolute position, which is what the LZSS
// matcher actually reasons in terms of.
package window

import "github.com/voices117/lzss/ringbuffer"

// Window wraps a ring buffer and tracks the total number of bytes ever
// appended, so Read can translate an age-based offset into the ring
// buffer's absolute addressing.
type Window struct {
	rb       *ringbuffer.RingBuffer
	dataSize uint64
}

// New allocates a window with the given capacity.
func New(size int) (*Window, error) {
	rb, err := ringbuffer.New(size)
	if err != nil {
		return nil, err
	}

	return &Window{rb: rb}, nil
}

// Append adds a byte as the newest byte in the window.
func (w *Window) Append(c byte) {
	w.rb.Append(c)
	w.dataSize++
}

// Read returns the byte offset positions ago (0 = newest). It reports false
// if offset refers to a byte never written or already evicted.
func (w *Window) Read(offset uint64) (byte, bool) {
	if offset >= w.dataSize {
		return 0, false
	}
	return w.rb.Get(w.dataSize - offset - 1)
}

// Size returns the number of bytes currently resident, min(dataSize, capacity).
func (w *Window) Size() int {
	if w.dataSize > uint64(w.rb.Size()) {
		return w.rb.Size()
	}
	return int(w.dataSize)
}

// Clear discards all resident bytes, resetting the window to empty.
func (w *Window) Clear() {
	w.rb.Reset()
	w.dataSize = 0
}
