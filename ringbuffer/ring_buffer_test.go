package ringbuffer

import "testing"

func TestNewInvalidSize(t *testing.T) {
	if _, err := New(0); err != ErrInvalidSize {
		t.Fatalf("New(0) error = %v, want ErrInvalidSize", err)
	}
	if _, err := New(-1); err != ErrInvalidSize {
		t.Fatalf("New(-1) error = %v, want ErrInvalidSize", err)
	}
}

func TestAppendThenGetRoundTrip(t *testing.T) {
	rb, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i, c := range []byte("ab") {
		rb.Append(c)
		if got, ok := rb.Get(uint64(i)); !ok || got != c {
			t.Fatalf("Get(%d) = (%v, %v), want (%q, true)", i, got, ok, c)
		}
	}
}

func TestGetBeforeWriteFails(t *testing.T) {
	rb, _ := New(4)
	if _, ok := rb.Get(0); ok {
		t.Fatalf("Get(0) on empty buffer should fail")
	}
}

func TestOverwriteMakesOldestUnreadable(t *testing.T) {
	rb, _ := New(3)
	for _, c := range []byte("abcde") {
		rb.Append(c)
	}

	// positions 0 and 1 were overwritten by 'd' and 'e'
	if _, ok := rb.Get(0); ok {
		t.Fatalf("Get(0) should fail after overwrite")
	}
	if _, ok := rb.Get(1); ok {
		t.Fatalf("Get(1) should fail after overwrite")
	}

	for pos, want := range map[uint64]byte{2: 'c', 3: 'd', 4: 'e'} {
		got, ok := rb.Get(pos)
		if !ok || got != want {
			t.Fatalf("Get(%d) = (%v, %v), want (%q, true)", pos, got, ok, want)
		}
	}
}

func TestFirstPos(t *testing.T) {
	rb, _ := New(3)
	if rb.FirstPos() != 0 {
		t.Fatalf("FirstPos() = %d, want 0", rb.FirstPos())
	}

	for _, c := range []byte("abcde") {
		rb.Append(c)
	}
	if rb.FirstPos() != 2 {
		t.Fatalf("FirstPos() = %d, want 2", rb.FirstPos())
	}
}

func TestReset(t *testing.T) {
	rb, _ := New(3)
	rb.Append('a')
	rb.Reset()

	if _, ok := rb.Get(0); ok {
		t.Fatalf("Get(0) should fail after Reset")
	}
	if rb.FirstPos() != 0 {
		t.Fatalf("FirstPos() = %d, want 0 after Reset", rb.FirstPos())
	}
}
