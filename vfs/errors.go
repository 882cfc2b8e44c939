package vfs

import "errors"

// Sentinel errors returned by Store operations. All failures are ordinary
// return values; none of them are fatal to the store.
var (
	// ErrNameEmpty is returned by Register when the name is empty.
	ErrNameEmpty = errors.New("vfs: file name is empty")

	// ErrNameTooLong is returned by Register when the name exceeds MaxNameLen.
	ErrNameTooLong = errors.New("vfs: file name too long")

	// ErrNameConflict is returned by Register when the name is already taken
	// and the overwrite flag was not set. The existing entry is untouched and
	// ownership of the new contents stays with the caller.
	ErrNameConflict = errors.New("vfs: file name already registered")

	// ErrNotFound is returned by Open when no file is registered under the
	// requested name.
	ErrNotFound = errors.New("vfs: file not found")

	// ErrInvalidHandle is returned by operations that require a valid handle
	// and cannot report a safe default instead.
	ErrInvalidHandle = errors.New("vfs: invalid handle")

	// ErrOutOfRange is returned by Seek when the resulting cursor would fall
	// outside [0, size]. The cursor is left unchanged.
	ErrOutOfRange = errors.New("vfs: seek out of range")

	// ErrReadOnly is returned by Write. Virtual files are read/replace-only
	// through the stream API; contents change only via forced registration.
	ErrReadOnly = errors.New("vfs: stream handles are read-only")
)
