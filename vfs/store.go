package vfs

import (
	"fmt"
	"sort"
)

// MaxNameLen is the maximum length of a virtual file name in bytes.
const MaxNameLen = 31

// Handle is an opaque token identifying a registered file for stream
// operations. The zero Handle is never valid. A Handle stays valid for the
// lifetime of its Store, including across forced re-registrations of the
// same name.
type Handle uint32

// Origin selects the reference point for Seek.
type Origin int

const (
	// OriginStart seeks relative to the beginning of the file.
	OriginStart Origin = iota

	// OriginCurrent seeks relative to the current cursor.
	OriginCurrent

	// OriginEnd seeks backward from the end of the file: the resulting
	// cursor is size - offset, so offset 0 lands exactly at the end.
	OriginEnd
)

// file is one registry entry. The data slice is exclusively owned by the
// store once registered.
type file struct {
	name   string
	data   []byte
	cursor int64
}

// Store is a registry of named in-memory files. The zero value is not usable;
// create one with NewStore. Entries are never removed; a forced
// re-registration replaces an entry's contents in place.
type Store struct {
	entries []*file
	byName  map[string]int
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		byName: make(map[string]int),
	}
}

// Register installs contents under name. Ownership of the contents slice
// transfers to the store on success; the caller must not modify or retain it
// afterwards.
//
// If the name is already registered and overwrite is false, Register returns
// ErrNameConflict, the existing entry is untouched, and ownership stays with
// the caller. With overwrite set, the previous buffer is dropped, the new
// contents and size are installed, and the cursor resets to 0. Name
// validation happens before any mutation, so a failed forced re-registration
// leaves the prior entry intact.
func (s *Store) Register(name string, contents []byte, overwrite bool) error {
	if name == "" {
		return ErrNameEmpty
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("%w: %q is %d bytes, limit is %d", ErrNameTooLong, name, len(name), MaxNameLen)
	}

	if idx, ok := s.byName[name]; ok {
		if !overwrite {
			return fmt.Errorf("%w: %q", ErrNameConflict, name)
		}
		f := s.entries[idx]
		f.data = contents
		f.cursor = 0
		return nil
	}

	s.entries = append(s.entries, &file{name: name, data: contents})
	s.byName[name] = len(s.entries) - 1
	return nil
}

// Open looks up name by exact match and returns a handle to the entry with
// its cursor reset to 0. There is no append or read-from-current-position
// mode; open always rewinds. Returns ErrNotFound when the name is not
// registered.
func (s *Store) Open(name string) (Handle, error) {
	idx, ok := s.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	s.entries[idx].cursor = 0
	return Handle(idx + 1), nil
}

// Close resets the entry's cursor to 0 and returns nil. It never releases the
// buffer or removes the entry; closing is idempotent with Rewind. An invalid
// handle yields ErrInvalidHandle.
func (s *Store) Close(h Handle) error {
	f := s.lookup(h)
	if f == nil {
		return ErrInvalidHandle
	}
	f.cursor = 0
	return nil
}

// Seek moves the cursor. OriginStart sets cursor = offset, OriginCurrent sets
// cursor += offset, and OriginEnd sets cursor = size - offset (the offset is
// not negated: a positive offset seeks backward from the end). A result
// outside [0, size] fails with ErrOutOfRange and leaves the cursor unchanged.
func (s *Store) Seek(h Handle, offset int64, origin Origin) error {
	f := s.lookup(h)
	if f == nil {
		return ErrInvalidHandle
	}

	var next int64
	switch origin {
	case OriginStart:
		next = offset
	case OriginCurrent:
		next = f.cursor + offset
	case OriginEnd:
		next = int64(len(f.data)) - offset
	default:
		return fmt.Errorf("vfs: unknown seek origin %d", origin)
	}

	if next < 0 || next > int64(len(f.data)) {
		return fmt.Errorf("%w: position %d, size %d", ErrOutOfRange, next, len(f.data))
	}
	f.cursor = next
	return nil
}

// Tell returns the current cursor, or 0 for an invalid handle.
func (s *Store) Tell(h Handle) int64 {
	f := s.lookup(h)
	if f == nil {
		return 0
	}
	return f.cursor
}

// Rewind resets the cursor to 0. It is a silent no-op on an invalid handle.
func (s *Store) Rewind(h Handle) {
	if f := s.lookup(h); f != nil {
		f.cursor = 0
	}
}

// Size returns the file's length in bytes, or 0 for an invalid handle.
func (s *Store) Size(h Handle) int64 {
	f := s.lookup(h)
	if f == nil {
		return 0
	}
	return int64(len(f.data))
}

// Contains reports whether a file is registered under name.
func (s *Store) Contains(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Len returns the number of registered files.
func (s *Store) Len() int {
	return len(s.entries)
}

// Names returns a sorted list of all registered file names.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookup resolves a handle to its entry, or nil if the handle is invalid.
func (s *Store) lookup(h Handle) *file {
	if h == 0 || int(h) > len(s.entries) {
		return nil
	}
	return s.entries[h-1]
}
