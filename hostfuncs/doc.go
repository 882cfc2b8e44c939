// Package hostfuncs defines the host functions a WASM guest imports to reach
// the virtual file store, together with the registry and middleware that
// organize them.
//
// Handlers operate on raw WASM stack values and a minimal Memory interface
// over the guest's linear memory, so the package stays independent of any
// particular runtime and unit-testable with a fake memory. The
// infrastructure/wazero package adapts a Registry onto a concrete wazero
// runtime.
//
// Functions are grouped into bundles: FileBundle carries the buffered-file
// emulation (write_file, fopen, fclose, fseek, ftell, fread, fwrite, frewind,
// fgets) bound to one vfs.Store, and DebugBundle carries the guest's
// conditional debug print.
package hostfuncs
