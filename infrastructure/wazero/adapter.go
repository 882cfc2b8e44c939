package wazero

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/memio-dev/memio/hostfuncs"
)

// DefaultModuleName is the import module name guests link against.
const DefaultModuleName = "memio_env"

// AdapterConfig holds configuration for the wazero adapter.
type AdapterConfig struct {
	// ModuleName is the host module name (default: "memio_env").
	ModuleName string

	// Logger receives adapter-level errors. Defaults to slog.Default.
	Logger *slog.Logger

	// CustomHandlers allows adding wazero-specific exports that need direct
	// module access and so don't fit the StackHandler pattern.
	CustomHandlers []CustomHandler
}

// CustomHandler is a raw wazero export registered alongside the registry's
// functions.
type CustomHandler struct {
	// Name is the exported function name.
	Name string

	// Handler is the wazero GoModuleFunc implementation.
	Handler api.GoModuleFunc

	// ParamTypes are the WASM parameter types.
	ParamTypes []api.ValueType

	// ResultTypes are the WASM result types.
	ResultTypes []api.ValueType
}

// AdapterOption configures the adapter.
type AdapterOption func(*AdapterConfig)

// WithModuleName sets the host module name (default: "memio_env").
func WithModuleName(name string) AdapterOption {
	return func(c *AdapterConfig) {
		c.ModuleName = name
	}
}

// WithLogger sets the logger for adapter-level errors.
func WithLogger(logger *slog.Logger) AdapterOption {
	return func(c *AdapterConfig) {
		c.Logger = logger
	}
}

// WithCustomHandler adds a custom wazero handler.
func WithCustomHandler(h CustomHandler) AdapterOption {
	return func(c *AdapterConfig) {
		c.CustomHandlers = append(c.CustomHandlers, h)
	}
}

// defaultAdapterConfig returns the default adapter configuration.
func defaultAdapterConfig() AdapterConfig {
	return AdapterConfig{
		ModuleName: DefaultModuleName,
	}
}

// RegisterWithRuntime registers all functions from a Registry with a wazero
// runtime. It instantiates a host module under the configured name (default:
// "memio_env") exporting each function with its declared signature.
//
// Each call is dispatched through Registry.Invoke with the calling module's
// memory, so registry middleware (panic recovery, logging) applies.
func RegisterWithRuntime(ctx context.Context, runtime wazero.Runtime, registry *hostfuncs.Registry, opts ...AdapterOption) error {
	cfg := defaultAdapterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	builder := runtime.NewHostModuleBuilder(cfg.ModuleName)

	for _, fn := range registry.Funcs() {
		name := fn.Name // capture for closure
		builder.NewFunctionBuilder().
			WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
				if err := registry.Invoke(ctx, name, mod.Memory(), stack); err != nil {
					logger.ErrorContext(ctx, "wazero: host function dispatch failed", "function", name, "error", err)
					if len(stack) > 0 {
						stack[0] = 0
					}
				}
			}), valueTypes(fn.Signature.Params), valueTypes(fn.Signature.Results)).
			Export(name)
	}

	for _, ch := range cfg.CustomHandlers {
		builder.NewFunctionBuilder().
			WithGoModuleFunction(ch.Handler, ch.ParamTypes, ch.ResultTypes).
			Export(ch.Name)
	}

	_, err := builder.Instantiate(ctx)
	if err != nil {
		return fmt.Errorf("instantiate host module %q: %w", cfg.ModuleName, err)
	}
	return nil
}

// valueTypes maps the registry's value types onto wazero's.
func valueTypes(types []hostfuncs.ValueType) []api.ValueType {
	out := make([]api.ValueType, len(types))
	for i, t := range types {
		switch t {
		case hostfuncs.ValueI64:
			out[i] = api.ValueTypeI64
		default:
			out[i] = api.ValueTypeI32
		}
	}
	return out
}
