// Package host provides the runtime environment for executing WASM guests
// against a virtual file store.
//
// An Executor owns a wazero runtime with the memio host module instantiated,
// so guests compiled without WASI filesystem support can read the store's
// virtual files through the exported stdio-style functions. The store is
// seeded on the host side (directly or through the manifest package) before
// the guest runs.
package host
