package hostfuncs

import (
	"context"
	"fmt"
	"sort"
)

// Registry is an immutable collection of named host functions. Once created
// via NewRegistry, functions cannot be added or removed, which keeps lookups
// lock-free during guest execution.
type Registry struct {
	funcs      map[string]Func
	names      []string // sorted for consistent iteration
	middleware []Middleware
}

// registryBuilder accumulates configuration during registry construction.
type registryBuilder struct {
	funcs      map[string]Func
	middleware []Middleware
	errors     []error
}

// NewRegistry creates an immutable Registry with the given options. Returns
// an error if any function name is registered twice.
//
// Example usage:
//
//	registry, err := NewRegistry(
//	    WithMiddleware(PanicRecoveryMiddleware(logger)),
//	    WithBundle(FileBundle(store)),
//	    WithBundle(DebugBundle(printer)),
//	)
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	b := &registryBuilder{
		funcs: make(map[string]Func),
	}

	for _, opt := range opts {
		opt(b)
	}

	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}

	names := make([]string, 0, len(b.funcs))
	for name := range b.funcs {
		names = append(names, name)
	}
	sort.Strings(names)

	// Apply the middleware chain to every handler (FIFO order: the first
	// middleware wraps outermost).
	wrapped := make(map[string]Func, len(b.funcs))
	for name, fn := range b.funcs {
		h := fn.Handler
		for i := len(b.middleware) - 1; i >= 0; i-- {
			h = b.middleware[i](h)
		}
		fn.Handler = h
		wrapped[name] = fn
	}

	return &Registry{
		funcs:      wrapped,
		names:      names,
		middleware: b.middleware,
	}, nil
}

// Invoke dispatches a host function call by name. The stack carries the
// call's parameters and receives its results. Unknown names are an error;
// the runtime adapter never produces one because it only exports registered
// functions.
func (r *Registry) Invoke(ctx context.Context, name string, mem Memory, stack []uint64) error {
	fn, ok := r.funcs[name]
	if !ok {
		return fmt.Errorf("hostfuncs: unknown function %q", name)
	}

	hctx := HostContextFrom(ctx, name)
	fn.Handler(hctx, mem, stack)
	return nil
}

// Has returns true if a function with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

// Names returns a sorted list of all registered function names.
func (r *Registry) Names() []string {
	result := make([]string, len(r.names))
	copy(result, r.names)
	return result
}

// Funcs returns all registered functions sorted by name, with middleware
// already applied.
func (r *Registry) Funcs() []Func {
	result := make([]Func, 0, len(r.names))
	for _, name := range r.names {
		result = append(result, r.funcs[name])
	}
	return result
}

// addFunc registers a function. Returns an error if the name is empty or
// already taken.
func (b *registryBuilder) addFunc(fn Func) error {
	if fn.Name == "" {
		return fmt.Errorf("hostfuncs: function name cannot be empty")
	}
	if _, exists := b.funcs[fn.Name]; exists {
		return fmt.Errorf("hostfuncs: duplicate function name: %q", fn.Name)
	}
	b.funcs[fn.Name] = fn
	return nil
}

// WithFunc registers a single host function.
func WithFunc(fn Func) RegistryOption {
	return func(b *registryBuilder) {
		if err := b.addFunc(fn); err != nil {
			b.errors = append(b.errors, err)
		}
	}
}

// WithMiddleware adds middleware to the registry. Middleware executes in
// FIFO order (first added wraps first).
func WithMiddleware(mw ...Middleware) RegistryOption {
	return func(b *registryBuilder) {
		b.middleware = append(b.middleware, mw...)
	}
}
