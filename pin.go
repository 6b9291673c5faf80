package slicebuf

import "runtime"

// Pin asserts to the runtime that the arena's backing arrays must not be
// relocated while the guard is held. Release it with Unpin, typically
// deferred so the release happens on every exit path.
type Pin struct {
	pinner runtime.Pinner
}

// Pin pins every retained chunk and the current page. Slices allocated
// after the call are not covered: finish writing before pinning.
func (a *Arena) Pin() *Pin {
	p := &Pin{}
	for i := range a.chunks {
		if len(a.chunks[i].buf) > 0 {
			p.pinner.Pin(&a.chunks[i].buf[0])
		}
	}
	if len(a.page) > 0 {
		p.pinner.Pin(&a.page[0])
	}
	return p
}

// Unpin releases the guard. Unpin on an already released guard is a no-op.
func (p *Pin) Unpin() {
	p.pinner.Unpin()
}
