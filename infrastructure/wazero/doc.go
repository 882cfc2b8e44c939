// Package wazero registers virtual-file host functions with the wazero
// runtime.
//
// This package bridges the runtime-agnostic handlers in hostfuncs with the
// wazero WebAssembly runtime. It builds a host module exporting every
// registered function with its declared signature, handing each call the
// guest's linear memory.
//
// # Basic Usage
//
//	registry, err := hostfuncs.NewRegistry(
//	    hostfuncs.WithBundle(hostfuncs.FileBundle(store)),
//	)
//	if err != nil {
//	    return err
//	}
//
//	runtime := wazero.NewRuntime(ctx)
//
//	err = wazeroadapter.RegisterWithRuntime(ctx, runtime, registry,
//	    wazeroadapter.WithModuleName("memio_env"),
//	)
//
// # Custom Handlers
//
// For exports that need direct access to the wazero module (for example to
// call back into guest exports), use WithCustomHandler:
//
//	wazeroadapter.RegisterWithRuntime(ctx, runtime, registry,
//	    wazeroadapter.WithCustomHandler(wazeroadapter.CustomHandler{
//	        Name:        "host_clock",
//	        Handler:     clockHandler,
//	        ParamTypes:  []api.ValueType{},
//	        ResultTypes: []api.ValueType{api.ValueTypeI64},
//	    }),
//	)
package wazero
