package slicebuf

const (
	// DefaultPageSize is the page size used when New is given zero.
	DefaultPageSize = 256

	// MaxPageSize caps page growth at 64 KiB so doubled pages stay out of
	// the runtime's large-object allocation path.
	MaxPageSize = 64 << 10

	// pageSizeAlign is the granularity explicit page sizes are rounded up to.
	pageSizeAlign = 16

	// sliceAlign is the in-page alignment applied to aligned allocations.
	sliceAlign = 4
)

// emptySlice is the canonical zero-length slice handed out for empty
// allocations and interns. Shared, so empty values never inflate chunk
// accounting.
var emptySlice = []byte{}

// chunk is a retired page or an oversized standalone allocation. The arena
// never reads from a chunk again; it is kept only so slices issued over it
// stay valid, and accounted for in Size and Allocated.
type chunk struct {
	buf  []byte
	used int
}

// Arena is a bump allocator that packs many short-lived byte slices into few
// large backing pages. It is single-owner: no internal locking, and
// concurrent use of one arena is a caller bug.
//
// Slices returned by Alloc and Intern stay valid as long as the arena (or
// anything else referencing the backing page) is reachable. A non-retaining
// Reset drops those references; see Reset.
type Arena struct {
	page      []byte  // current page, nil until the first allocation
	cursor    int     // next free offset within page
	remaining int     // free bytes left in page; cursor+remaining == len(page)
	pageSize  int     // size of the next page; doubles on replacement up to MaxPageSize
	chunks    []chunk // retired pages and standalone allocations, in creation order
	used      int     // bytes issued from retained chunks
	allocated int     // total capacity of retained chunks
}

// New returns an empty arena. A pageSize of zero selects DefaultPageSize;
// explicit sizes are rounded up to a multiple of 16. The first page is not
// allocated until the first allocation request.
func New(pageSize int) (*Arena, error) {
	if pageSize < 0 {
		return nil, ErrInvalidPageSize
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	pageSize = (pageSize + pageSizeAlign - 1) &^ (pageSizeAlign - 1)
	return &Arena{pageSize: pageSize}, nil
}

// Alloc returns a slice of exactly n bytes backed by the arena. The contents
// are unspecified: callers must overwrite the full range before reading it,
// since Reset(true) recycles pages without clearing them.
//
// With aligned set, the slice starts at a 4-byte-aligned offset within its
// page; the padding bytes are consumed but never handed out.
func (a *Arena) Alloc(n int, aligned bool) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if n == 0 {
		return emptySlice, nil
	}
	pad := 0
	if aligned {
		pad = -a.cursor & (sliceAlign - 1)
	}
	// Fast path: bump the cursor within the current page.
	if a.page != nil && n+pad <= a.remaining {
		a.cursor += pad
		s := a.page[a.cursor : a.cursor+n : a.cursor+n]
		a.cursor += n
		a.remaining -= n + pad
		return s, nil
	}
	return a.allocFallback(n)
}

// allocFallback handles requests that do not fit in the current page.
//
// Requests larger than half the current page size get a dedicated chunk of
// exactly n bytes: spending a whole doubled page on one value would waste
// the rest of it and fragment future small allocations. Everything else
// retires the current page, doubles the page size up to MaxPageSize and
// restarts from a fresh page. New pages begin at offset zero, which is
// always aligned, so alignment padding never applies here.
func (a *Arena) allocFallback(n int) ([]byte, error) {
	if n > a.pageSize/2 {
		buf := make([]byte, n)
		a.chunks = append(a.chunks, chunk{buf: buf, used: n})
		a.used += n
		a.allocated += n
		return buf[0:n:n], nil
	}
	if a.page != nil {
		if a.cursor > 0 {
			a.chunks = append(a.chunks, chunk{buf: a.page, used: a.cursor})
			a.used += a.cursor
			a.allocated += len(a.page)
		}
		a.pageSize *= 2
		if a.pageSize > MaxPageSize {
			a.pageSize = MaxPageSize
		}
	}
	a.page = make([]byte, a.pageSize)
	a.cursor = n
	a.remaining = len(a.page) - n
	return a.page[0:n:n], nil
}

// Reset drops the retained chunk list and usage counters.
//
// With retainPage the current page is kept and its cursor rewound, recycling
// the page's memory for new allocations. This is the unsafe fast path: the
// caller MUST cease all use of previously issued slices before calling,
// since their bytes will be overwritten by subsequent allocations. Without
// retainPage the page reference is dropped too, and previously issued slices
// keep their bytes only while the caller independently references them.
//
// The grown page size is kept across Reset in both modes.
func (a *Arena) Reset(retainPage bool) {
	a.chunks = nil
	a.used = 0
	a.allocated = 0
	if retainPage && a.page != nil {
		a.cursor = 0
		a.remaining = len(a.page)
		return
	}
	a.page = nil
	a.cursor = 0
	a.remaining = 0
}
