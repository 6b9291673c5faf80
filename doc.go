// Package slicebuf is a low-allocation byte-buffer substrate for building
// and consuming binary keys and values without per-slice heap churn.
//
// It has two independent, composable parts: an arena allocator that packs
// many short-lived byte slices into a few large backing pages, and a
// read-only stream that presents an ordered sequence of byte slices as one
// logical contiguous buffer. Neither part interprets the bytes it handles;
// encoding rules and transport belong to the layers above.
//
// # Arena
//
//	a, err := slicebuf.New(0) // default page size
//	if err != nil { ... }
//
//	// Allocate space and write into it before sharing the slice.
//	buf, _ := a.Alloc(12, false)
//	copy(buf, encoded)
//
//	// Or copy external bytes in directly.
//	key, _ := a.InternSuffix(rawKey, []byte{0x00}, false)
//
//	// Recycle the arena between batches.
//	a.Reset(true)
//
// Allocation bumps a cursor within the current page in O(1). When a request
// does not fit, the page is retired to a chunk list that keeps previously
// issued slices alive, the page size doubles (up to 64 KiB), and allocation
// continues from a fresh page. Requests larger than half the page size get
// a dedicated chunk of their own.
//
// Slices returned by the arena are views into arena-owned memory. A freshly
// allocated slice is mutable until the caller shares it; after that it must
// be treated as read-only. Reset(true) recycles the current page in place,
// so no slice issued before the call may be used afterwards.
//
// # Stream
//
//	st, err := slicebuf.NewStream(a.Pages())
//	if err != nil { ... }
//	defer st.Close()
//
//	st.Seek(16, io.SeekStart)
//	n, err := st.Read(buf)
//
// The stream reads and seeks across the slice boundaries as if the slices
// had been concatenated, without copying them into a new buffer. It works
// on any ordered slice sequence, not only ones produced by the arena.
//
// # Concurrency
//
// Neither type locks internally. An arena and a stream each belong to a
// single goroutine at a time; share the produced slices, not the
// components.
package slicebuf
