package slicebuf

// Size returns the total number of bytes issued so far: bytes used in
// retained chunks plus the current page's cursor. Alignment padding counts
// as issued.
func (a *Arena) Size() int {
	return a.used + a.cursor
}

// Allocated returns the total backing capacity held by the arena: retained
// chunk capacity plus the current page's full capacity.
func (a *Arena) Allocated() int {
	if a.page == nil {
		return a.allocated
	}
	return a.allocated + len(a.page)
}

// PageCount returns the number of retained chunks, plus one for the current
// page once it has been allocated.
func (a *Arena) PageCount() int {
	n := len(a.chunks)
	if a.page != nil {
		n++
	}
	return n
}

// PageSize returns the size the next page will be allocated at.
func (a *Arena) PageSize() int {
	return a.pageSize
}

// Utilization returns the ratio of issued bytes to held capacity (0.0 to
// 1.0). Returns 0.0 for an arena holding no memory.
func (a *Arena) Utilization() float64 {
	allocated := a.Allocated()
	if allocated == 0 {
		return 0
	}
	return float64(a.Size()) / float64(allocated)
}

// Pages returns every retained chunk's used prefix in creation order,
// followed by the current page's used prefix. The result is an accounting
// snapshot for serialization or debugging, not a target for further
// allocation.
func (a *Arena) Pages() [][]byte {
	pages := make([][]byte, 0, len(a.chunks)+1)
	for _, c := range a.chunks {
		pages = append(pages, c.buf[:c.used:c.used])
	}
	if a.page != nil {
		pages = append(pages, a.page[:a.cursor:a.cursor])
	}
	return pages
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		Size:        a.Size(),
		Allocated:   a.Allocated(),
		PageCount:   a.PageCount(),
		PageSize:    a.PageSize(),
		Utilization: a.Utilization(),
	}
}

// Metrics contains statistical information about an arena.
type Metrics struct {
	Size        int     // Bytes issued to callers
	Allocated   int     // Total backing capacity in bytes
	PageCount   int     // Retained chunks plus the current page
	PageSize    int     // Size of the next page
	Utilization float64 // Ratio of issued to held bytes (0.0-1.0)
}
