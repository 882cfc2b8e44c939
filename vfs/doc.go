// Package vfs implements an in-memory virtual file store with buffered-file
// stream emulation.
//
// A Store is a registry of named byte buffers. Collaborators register raw
// bytes under a name; consumers that only know classic buffered-file
// operations (open, seek, tell, read, line read, rewind, close) can then work
// against those buffers through opaque Handles as if they were files, with no
// access to any real filesystem. This is the host-side backing for libraries
// compiled to WebAssembly without WASI file support.
//
// A Store has no internal locking. All operations are synchronous and must be
// serialized by the caller; the intended embedding (a single-threaded WASM
// guest driving host functions) provides that serialization naturally.
//
// Entries live for the lifetime of the Store. Close and Rewind only reset the
// read cursor; the only way to change a file's contents is a forced
// re-registration, which replaces the buffer wholesale.
package vfs
