package slicebuf

import "errors"

// Errors returned by Arena and Stream operations. All of them signal caller
// bugs rather than transient conditions; there is nothing to retry.
var (
	ErrInvalidPageSize = errors.New("slicebuf: negative page size")
	ErrNegativeCount   = errors.New("slicebuf: negative allocation count")
	ErrNilSlices       = errors.New("slicebuf: nil slice sequence")
	ErrSeekBeforeStart = errors.New("slicebuf: seek before start of stream")
	ErrInvalidWhence   = errors.New("slicebuf: invalid seek whence")
	ErrNotSupported    = errors.New("slicebuf: stream is read-only")
	ErrClosed          = errors.New("slicebuf: stream already closed")
)
