package host

import (
	"log/slog"

	"github.com/memio-dev/memio/debuglog"
	"github.com/memio-dev/memio/hostfuncs"
	"github.com/memio-dev/memio/vfs"
)

// Option defines a functional option for configuring the Executor.
type Option func(*Executor)

// WithStore configures the executor with an existing file store, typically
// pre-seeded with the files the guest expects. Defaults to a fresh empty
// store.
func WithStore(store *vfs.Store) Option {
	return func(e *Executor) {
		e.store = store
	}
}

// WithRegistry replaces the default host function registry. The default
// registry carries the file bundle over the executor's store, the debug
// bundle over its printer, and panic recovery.
func WithRegistry(registry *hostfuncs.Registry) Option {
	return func(e *Executor) {
		e.registry = registry
	}
}

// WithModuleName sets the import module name guests link against. Defaults
// to "memio_env".
func WithModuleName(name string) Option {
	return func(e *Executor) {
		e.moduleName = name
	}
}

// WithDebugPrinter routes the guest's debug print output. Defaults to a
// disabled printer.
func WithDebugPrinter(printer *debuglog.Printer) Option {
	return func(e *Executor) {
		e.printer = printer
	}
}

// WithLogger sets the logger for executor and dispatch errors. Defaults to
// slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}
