package hostfuncs

import (
	"context"
	"log/slog"
)

// Middleware is a function that wraps a StackHandler to add cross-cutting
// behavior. Middleware executes in FIFO order (first registered wraps first,
// onion model).
type Middleware func(next StackHandler) StackHandler

// RegistryOption is a functional option for configuring a Registry.
type RegistryOption func(*registryBuilder)

// PanicRecoveryMiddleware returns a middleware that catches panics, logs
// them, and zeroes the first result slot instead of crashing the host. A
// zeroed result reads as the failure sentinel of every function in the file
// and debug bundles.
func PanicRecoveryMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next StackHandler) StackHandler {
		return func(ctx context.Context, mem Memory, stack []uint64) {
			defer func() {
				if r := recover(); r != nil {
					name := "unknown"
					if hc, ok := ctx.(HostContext); ok {
						name = hc.FunctionName()
					}
					logger.Error("hostfuncs: recovered panic", "function", name, "panic", r)
					if len(stack) > 0 {
						stack[0] = 0
					}
				}
			}()
			next(ctx, mem, stack)
		}
	}
}

// LoggingMiddleware returns a middleware that logs every host function
// invocation at debug level.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next StackHandler) StackHandler {
		return func(ctx context.Context, mem Memory, stack []uint64) {
			name := "unknown"
			if hc, ok := ctx.(HostContext); ok {
				name = hc.FunctionName()
			}
			logger.DebugContext(ctx, "hostfuncs: invoking", "function", name)
			next(ctx, mem, stack)
		}
	}
}
