package host

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/memio-dev/memio/debuglog"
	"github.com/memio-dev/memio/hostfuncs"
	wzadapter "github.com/memio-dev/memio/infrastructure/wazero"
	"github.com/memio-dev/memio/vfs"
)

// Executor manages a wazero runtime with the memio host module instantiated.
type Executor struct {
	runtime    wazero.Runtime
	store      *vfs.Store
	registry   *hostfuncs.Registry
	printer    *debuglog.Printer
	moduleName string
	logger     *slog.Logger
}

// NewExecutor creates a new executor with the given options. Unless
// overridden, it serves a fresh empty store through the default registry
// (file bundle + debug bundle behind panic recovery) under the module name
// "memio_env". WASI is instantiated alongside so guests that import clock or
// random syscalls still run; file access stays virtual.
func NewExecutor(ctx context.Context, opts ...Option) (*Executor, error) {
	e := &Executor{
		moduleName: wzadapter.DefaultModuleName,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.store == nil {
		e.store = vfs.NewStore()
	}

	if e.registry == nil {
		reg, err := hostfuncs.NewRegistry(
			hostfuncs.WithMiddleware(hostfuncs.PanicRecoveryMiddleware(e.logger)),
			hostfuncs.WithBundle(hostfuncs.FileBundle(e.store)),
			hostfuncs.WithBundle(hostfuncs.DebugBundle(e.printer)),
		)
		if err != nil {
			return nil, fmt.Errorf("build default registry: %w", err)
		}
		e.registry = reg
	}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	if err := wzadapter.RegisterWithRuntime(ctx, rt, e.registry,
		wzadapter.WithModuleName(e.moduleName),
		wzadapter.WithLogger(e.logger),
	); err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("register host functions: %w", err)
	}

	return e, nil
}

// Store returns the virtual file store served to guests. Seed it before the
// guest runs; the store is not safe for use concurrently with a running
// guest.
func (e *Executor) Store() *vfs.Store {
	return e.store
}

// Close releases the runtime and every module instantiated from it.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// ModuleInstance is an instantiated WASM guest bound to the executor's host
// module.
type ModuleInstance struct {
	module api.Module
}

// LoadModule compiles and instantiates a WASM guest. The guest's imports
// from the executor's module name resolve to the virtual file functions.
func (e *Executor) LoadModule(ctx context.Context, wasmBytes []byte) (*ModuleInstance, error) {
	mod, err := e.runtime.Instantiate(ctx, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("instantiate module: %w", err)
	}

	// Reactor-style guests export _initialize instead of _start.
	if init := mod.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			mod.Close(ctx)
			return nil, fmt.Errorf("call _initialize: %w", err)
		}
	}

	return &ModuleInstance{module: mod}, nil
}

// Module exposes the underlying wazero module for calling guest exports.
func (m *ModuleInstance) Module() api.Module {
	return m.module
}

// Call invokes an exported guest function by name.
func (m *ModuleInstance) Call(ctx context.Context, name string, params ...uint64) ([]uint64, error) {
	fn := m.module.ExportedFunction(name)
	if fn == nil {
		return nil, fmt.Errorf("export %q not found", name)
	}
	results, err := fn.Call(ctx, params...)
	if err != nil {
		return nil, fmt.Errorf("call %q: %w", name, err)
	}
	return results, nil
}

// Close releases the guest instance.
func (m *ModuleInstance) Close(ctx context.Context) error {
	return m.module.Close(ctx)
}
