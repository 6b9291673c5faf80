package slicebuf

import "testing"

func TestPin(t *testing.T) {
	a, err := New(64)
	if err != nil {
		t.Fatal(err)
	}

	// Nothing allocated yet: the guard has nothing to pin.
	p := a.Pin()
	p.Unpin()

	if _, err := a.Alloc(100, false); err != nil { // standalone chunk
		t.Fatal(err)
	}
	if _, err := a.Alloc(10, false); err != nil { // current page
		t.Fatal(err)
	}

	p = a.Pin()
	defer p.Unpin()

	// Pinned memory stays usable; only slices allocated after the pin are
	// outside the guarantee.
	s, err := a.Intern([]byte("after-pin"), false)
	if err != nil {
		t.Fatal(err)
	}
	if string(s) != "after-pin" {
		t.Errorf("Intern under pin = %q", s)
	}
}
