package hostfuncs

import (
	"context"
)

// HostContext wraps a standard context.Context with the name of the host
// function being invoked, for middleware that reports per-function.
type HostContext interface {
	context.Context

	// FunctionName returns the name of the host function being invoked.
	FunctionName() string
}

// hostContext is the concrete implementation of HostContext.
type hostContext struct {
	context.Context
	funcName string
}

// NewHostContext creates a new HostContext wrapping the given context.
func NewHostContext(ctx context.Context, funcName string) HostContext {
	return &hostContext{Context: ctx, funcName: funcName}
}

// FunctionName returns the name of the host function being invoked.
func (c *hostContext) FunctionName() string {
	return c.funcName
}

// HostContextFrom extracts a HostContext from a context.Context. If the
// context is already a HostContext it is returned directly; otherwise a new
// one is created wrapping the given context.
func HostContextFrom(ctx context.Context, funcName string) HostContext {
	if hc, ok := ctx.(HostContext); ok {
		return hc
	}
	return NewHostContext(ctx, funcName)
}
