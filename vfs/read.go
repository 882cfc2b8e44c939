package vfs

import "io"

// Read copies up to elemCount whole elements of elemSize bytes each from the
// file at the current cursor into dst, advancing the cursor by the bytes
// copied, and returns the number of whole elements read.
//
// An element is only read while the remaining bytes are strictly greater than
// elemSize, so an element that would exactly exhaust the file is not read.
// Callers relying on exact-fit reads must account for this.
//
// dst must hold at least elemSize*elemCount bytes or Read fails with
// io.ErrShortBuffer. An invalid handle yields ErrInvalidHandle, distinct from
// a successful read of zero elements.
func (s *Store) Read(h Handle, dst []byte, elemSize, elemCount int) (int, error) {
	f := s.lookup(h)
	if f == nil {
		return 0, ErrInvalidHandle
	}
	if elemSize <= 0 || elemCount <= 0 {
		return 0, nil
	}
	if len(dst) < elemSize*elemCount {
		return 0, io.ErrShortBuffer
	}

	n := 0
	for n < elemCount && int64(len(f.data))-f.cursor > int64(elemSize) {
		copy(dst[n*elemSize:(n+1)*elemSize], f.data[f.cursor:f.cursor+int64(elemSize)])
		f.cursor += int64(elemSize)
		n++
	}
	return n, nil
}

// ReadLine reads bytes one at a time starting at the cursor, advancing it,
// and returns them. Reading stops after maxChars-1 bytes, after a newline
// byte (which is included), or when the file's data is exhausted.
//
// If the cursor is already at the end of the data, ReadLine returns io.EOF,
// matching classic end-of-stream semantics for line reads. The returned slice
// carries no terminator; NUL termination is a wire concern handled at the
// host boundary.
func (s *Store) ReadLine(h Handle, maxChars int) ([]byte, error) {
	f := s.lookup(h)
	if f == nil {
		return nil, ErrInvalidHandle
	}
	if f.cursor >= int64(len(f.data)) {
		return nil, io.EOF
	}

	capHint := maxChars - 1
	if capHint < 0 {
		capHint = 0
	}
	line := make([]byte, 0, capHint)
	for len(line) < maxChars-1 && f.cursor < int64(len(f.data)) {
		c := f.data[f.cursor]
		f.cursor++
		line = append(line, c)
		if c == '\n' {
			break
		}
	}
	return line, nil
}

// Write always reports zero bytes written with ErrReadOnly. Virtual files are
// read/replace-only through the stream API; modification goes through
// Register with the overwrite flag.
func (s *Store) Write(h Handle, p []byte) (int, error) {
	return 0, ErrReadOnly
}
