package slicebuf

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		pageSize int
		expected int
	}{
		{"default page size", 0, DefaultPageSize},
		{"custom page size", 512, 512},
		{"rounded up to 16", 100, 112},
		{"one byte", 1, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.pageSize)
			if err != nil {
				t.Fatalf("New(%d) failed: %v", tt.pageSize, err)
			}
			if a.pageSize != tt.expected {
				t.Errorf("New(%d) page size = %d, want %d", tt.pageSize, a.pageSize, tt.expected)
			}
			if a.page != nil {
				t.Errorf("New(%d) allocated a page eagerly", tt.pageSize)
			}
		})
	}

	if _, err := New(-1); !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("New(-1) error = %v, want ErrInvalidPageSize", err)
	}
}

func TestAlloc(t *testing.T) {
	a, err := New(64)
	if err != nil {
		t.Fatal(err)
	}

	b1, err := a.Alloc(10, false)
	if err != nil {
		t.Fatalf("Alloc(10) failed: %v", err)
	}
	if len(b1) != 10 {
		t.Errorf("Alloc(10) length = %d, want 10", len(b1))
	}
	if a.cursor != 10 || a.remaining != 54 {
		t.Errorf("cursor/remaining = %d/%d, want 10/54", a.cursor, a.remaining)
	}

	// Zero-length allocation must not touch arena state.
	b2, err := a.Alloc(0, false)
	if err != nil {
		t.Fatalf("Alloc(0) failed: %v", err)
	}
	if b2 == nil || len(b2) != 0 {
		t.Errorf("Alloc(0) = %v, want canonical empty slice", b2)
	}
	if a.cursor != 10 || a.PageCount() != 1 {
		t.Error("Alloc(0) mutated arena state")
	}

	if _, err := a.Alloc(-1, false); !errors.Is(err, ErrNegativeCount) {
		t.Errorf("Alloc(-1) error = %v, want ErrNegativeCount", err)
	}
}

func TestAllocNoOverlap(t *testing.T) {
	a, err := New(64)
	if err != nil {
		t.Fatal(err)
	}

	var issued [][]byte
	total := 0
	for i := 0; i < 100; i++ {
		n := i%13 + 1
		s, err := a.Alloc(n, false)
		if err != nil {
			t.Fatalf("Alloc(%d) failed: %v", n, err)
		}
		if len(s) != n {
			t.Fatalf("Alloc(%d) length = %d", n, len(s))
		}
		for j := range s {
			s[j] = byte(i)
		}
		issued = append(issued, s)
		total += n
	}

	if a.Size() != total {
		t.Errorf("Size = %d, want %d", a.Size(), total)
	}
	for i, s := range issued {
		for j, b := range s {
			if b != byte(i) {
				t.Fatalf("slice %d byte %d overwritten: got %d", i, j, b)
			}
		}
	}
}

func TestAllocAligned(t *testing.T) {
	a, err := New(64)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := a.Alloc(3, false); err != nil {
		t.Fatal(err)
	}
	s, err := a.Alloc(4, true)
	if err != nil {
		t.Fatal(err)
	}
	// One padding byte moves the slice start from offset 3 to offset 4.
	if &s[0] != &a.page[4] {
		t.Error("aligned allocation does not start at a 4-byte offset")
	}
	if a.cursor != 8 {
		t.Errorf("cursor = %d, want 8", a.cursor)
	}
	if a.cursor+a.remaining != len(a.page) {
		t.Errorf("cursor+remaining = %d, want %d", a.cursor+a.remaining, len(a.page))
	}

	// Already aligned: no padding consumed.
	if _, err := a.Alloc(1, true); err != nil {
		t.Fatal(err)
	}
	if a.cursor != 9 {
		t.Errorf("cursor = %d, want 9", a.cursor)
	}
}

func TestAllocOversized(t *testing.T) {
	a, err := New(256)
	if err != nil {
		t.Fatal(err)
	}

	s, err := a.Alloc(200, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 200 || cap(s) != 200 {
		t.Errorf("oversized alloc len/cap = %d/%d, want 200/200", len(s), cap(s))
	}
	if a.page != nil {
		t.Error("oversized allocation should not create a page")
	}
	if a.PageCount() != 1 || a.Allocated() != 200 || a.Size() != 200 {
		t.Errorf("PageCount/Allocated/Size = %d/%d/%d, want 1/200/200",
			a.PageCount(), a.Allocated(), a.Size())
	}

	// The standalone chunk is never shared: the next small allocation opens
	// a fresh page.
	if _, err := a.Alloc(10, false); err != nil {
		t.Fatal(err)
	}
	if a.PageCount() != 2 {
		t.Errorf("PageCount after small alloc = %d, want 2", a.PageCount())
	}
}

func TestPageGrowth(t *testing.T) {
	a, err := New(16)
	if err != nil {
		t.Fatal(err)
	}

	expect := 16
	for k := 0; k < 16; k++ {
		if got := a.PageSize(); got != expect {
			t.Fatalf("after %d growth events: page size = %d, want %d", k, got, expect)
		}
		// Fill the current page exactly, then force a replacement.
		free := a.remaining
		if a.page == nil {
			free = a.pageSize
		}
		step := a.pageSize / 2
		for free > 0 {
			n := min(step, free)
			if _, err := a.Alloc(n, false); err != nil {
				t.Fatal(err)
			}
			free -= n
		}
		if _, err := a.Alloc(1, false); err != nil {
			t.Fatal(err)
		}
		if expect < MaxPageSize {
			expect *= 2
		}
	}

	if a.PageSize() != MaxPageSize {
		t.Errorf("page size = %d, want cap %d", a.PageSize(), MaxPageSize)
	}
}

func TestReset(t *testing.T) {
	t.Run("drop everything", func(t *testing.T) {
		a, err := New(16)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 10; i++ {
			if _, err := a.Alloc(8, false); err != nil {
				t.Fatal(err)
			}
		}
		grown := a.PageSize()

		a.Reset(false)
		if a.Size() != 0 || a.Allocated() != 0 || a.PageCount() != 0 {
			t.Errorf("Size/Allocated/PageCount = %d/%d/%d, want 0/0/0",
				a.Size(), a.Allocated(), a.PageCount())
		}
		if a.PageSize() != grown {
			t.Errorf("page size after reset = %d, want %d", a.PageSize(), grown)
		}
	})

	t.Run("retain current page", func(t *testing.T) {
		a, err := New(64)
		if err != nil {
			t.Fatal(err)
		}
		before, err := a.Alloc(8, false)
		if err != nil {
			t.Fatal(err)
		}

		a.Reset(true)
		if a.Size() != 0 || a.PageCount() != 1 {
			t.Errorf("Size/PageCount = %d/%d, want 0/1", a.Size(), a.PageCount())
		}
		after, err := a.Alloc(8, false)
		if err != nil {
			t.Fatal(err)
		}
		if &before[0] != &after[0] {
			t.Error("retaining reset should recycle the current page in place")
		}
	})
}
