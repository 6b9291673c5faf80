package slicebuf

// Intern copies data into arena-owned memory and returns a slice over the
// copy, so the caller may reuse or mutate the original buffer afterwards.
//
// A nil input returns nil and an empty input returns the canonical empty
// slice; neither touches arena state, so callers can intern liberally
// without inflating the chunk count for empty values.
func (a *Arena) Intern(data []byte, aligned bool) ([]byte, error) {
	if len(data) == 0 {
		if data == nil {
			return nil, nil
		}
		return emptySlice, nil
	}
	buf, err := a.Alloc(len(data), aligned)
	if err != nil {
		return nil, err
	}
	copy(buf, data)
	return buf, nil
}

// InternSuffix copies data followed by suffix into one contiguous arena
// region using a single allocation, for the common "key + fixed suffix"
// pattern. If data is empty, suffix is returned as-is without copying:
// suffixes are typically constant literals that are safe to alias.
func (a *Arena) InternSuffix(data, suffix []byte, aligned bool) ([]byte, error) {
	if len(data) == 0 {
		return suffix, nil
	}
	buf, err := a.Alloc(len(data)+len(suffix), aligned)
	if err != nil {
		return nil, err
	}
	n := copy(buf, data)
	copy(buf[n:], suffix)
	return buf, nil
}
