package slicebuf

import (
	"context"
	"io"
	"iter"
)

// shortCopyLimit is the run length at or below which Read copies
// byte-by-byte instead of calling copy.
const shortCopyLimit = 8

// Stream presents an ordered sequence of byte slices as one logical
// contiguous read-only stream, without concatenating them into a new
// buffer. It implements io.Reader, io.Seeker, io.ByteReader and io.Closer.
//
// The stream borrows the slice sequence: the backing arrays must stay valid
// for its entire lifetime. Like Arena, it is single-owner and unlocked.
type Stream struct {
	slices [][]byte
	length int64
	pos    int64 // absolute position; 0 <= pos <= length
	idx    int   // slice containing pos
	off    int   // offset of pos within slices[idx]
	closed bool
}

// NewStream returns a stream over slices. The sequence is fixed at
// construction and its total length is the sum of the slice lengths.
// Zero-length slices are permitted and skipped during traversal.
func NewStream(slices [][]byte) (*Stream, error) {
	if slices == nil {
		return nil, ErrNilSlices
	}
	var length int64
	for _, s := range slices {
		length += int64(len(s))
	}
	return &Stream{slices: slices, length: length}, nil
}

// NewStreamSeq materializes seq once and returns a stream over the result.
func NewStreamSeq(seq iter.Seq[[]byte]) (*Stream, error) {
	if seq == nil {
		return nil, ErrNilSlices
	}
	slices := [][]byte{}
	for s := range seq {
		slices = append(slices, s)
	}
	return NewStream(slices)
}

// Size returns the total length of the stream in bytes.
func (s *Stream) Size() int64 { return s.length }

// Position returns the current absolute read position.
func (s *Stream) Position() int64 { return s.pos }

// Read fills p with up to len(p) bytes starting at the current position and
// advances past them. Partial reads are normal when the request crosses the
// end of the sequence; a read at the very end returns io.EOF.
func (s *Stream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	n := 0
	for n < len(p) {
		for s.idx < len(s.slices) && s.off >= len(s.slices[s.idx]) {
			s.idx++
			s.off = 0
		}
		if s.idx >= len(s.slices) {
			break
		}
		cur := s.slices[s.idx]
		c := len(cur) - s.off
		if rem := len(p) - n; c > rem {
			c = rem
		}
		if c <= shortCopyLimit {
			for i := 0; i < c; i++ {
				p[n+i] = cur[s.off+i]
			}
		} else {
			copy(p[n:n+c], cur[s.off:s.off+c])
		}
		n += c
		s.off += c
		s.pos += int64(c)
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// ReadByte returns the byte at the current position and advances past it.
func (s *Stream) ReadByte() (byte, error) {
	if s.closed {
		return 0, ErrClosed
	}
	for s.idx < len(s.slices) && s.off >= len(s.slices[s.idx]) {
		s.idx++
		s.off = 0
	}
	if s.idx >= len(s.slices) {
		return 0, io.EOF
	}
	b := s.slices[s.idx][s.off]
	s.off++
	s.pos++
	return b, nil
}

// ReadContext is Read with cooperative cancellation for callers holding a
// context. All data is memory-resident, so the read itself never blocks:
// cancellation is checked once at entry, then the read runs synchronously.
func (s *Stream) ReadContext(ctx context.Context, p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.Read(p)
}

// Seek resolves whence and offset to an absolute position and moves the
// cursor there by scanning the slice sequence from the start. A resolved
// position past the end clamps to Size; a negative one fails with
// ErrSeekBeforeStart. Returns the resolved absolute position.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if s.closed {
		return 0, ErrClosed
	}
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = s.pos + offset
	case io.SeekEnd:
		target = s.length + offset
	default:
		return 0, ErrInvalidWhence
	}
	if target < 0 {
		return 0, ErrSeekBeforeStart
	}
	if target > s.length {
		target = s.length
	}
	idx, rem := 0, target
	for idx < len(s.slices) && rem > int64(len(s.slices[idx])) {
		rem -= int64(len(s.slices[idx]))
		idx++
	}
	s.idx = idx
	s.off = int(rem)
	s.pos = target
	return target, nil
}

// Write always fails: the stream is permanently read-only.
func (s *Stream) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	return 0, ErrNotSupported
}

// Truncate always fails: the stream has a fixed size.
func (s *Stream) Truncate(int64) error {
	if s.closed {
		return ErrClosed
	}
	return ErrNotSupported
}

// Flush is a no-op while the stream is open; flushing a reader must not
// fail.
func (s *Stream) Flush() error {
	if s.closed {
		return ErrClosed
	}
	return nil
}

// Close releases the slice sequence and zeroes the cursor. Close is
// idempotent; every other operation on a closed stream fails with
// ErrClosed.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.slices = nil
	s.length = 0
	s.pos = 0
	s.idx = 0
	s.off = 0
	return nil
}
