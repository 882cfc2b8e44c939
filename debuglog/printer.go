// Package debuglog provides the conditional debug-print sink for guest
// output. A Printer is a no-op unless explicitly enabled, mirroring a
// release/debug build split; enabled printers forward messages to a
// structured logger and can optionally capture them for inspection.
package debuglog

import (
	"fmt"
	"log/slog"
	"strings"
)

// DefaultCaptureLimit bounds captured guest output (1MB). Guests can print in
// a tight loop; the cap keeps a chatty or misbehaving guest from growing host
// memory without bound.
const DefaultCaptureLimit = 1 * 1024 * 1024

// Printer forwards formatted debug messages from a guest to a structured
// logger. The zero value and a nil Printer are both silent.
type Printer struct {
	enabled bool
	logger  *slog.Logger
	capture *BoundedBuffer
}

// Option configures a Printer.
type Option func(*Printer)

// WithEnabled turns output on or off. Printers are disabled by default.
func WithEnabled(enabled bool) Option {
	return func(p *Printer) {
		p.enabled = enabled
	}
}

// WithLogger sets the destination logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Printer) {
		p.logger = logger
	}
}

// WithCapture additionally retains printed messages in a size-bounded buffer
// readable via Captured. A limit <= 0 uses DefaultCaptureLimit.
func WithCapture(limit int) Option {
	return func(p *Printer) {
		if limit <= 0 {
			limit = DefaultCaptureLimit
		}
		p.capture = NewBoundedBuffer(limit)
	}
}

// New creates a Printer with the given options.
func New(opts ...Option) *Printer {
	p := &Printer{}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Enabled reports whether the printer emits output.
func (p *Printer) Enabled() bool {
	return p != nil && p.enabled
}

// Print forwards one message. Disabled or nil printers drop it.
func (p *Printer) Print(msg string) {
	if !p.Enabled() {
		return
	}
	if p.capture != nil {
		p.capture.Write([]byte(msg))
	}
	p.logger.Debug(strings.TrimRight(msg, "\n"), "source", "guest")
}

// Printf formats and forwards one message. Disabled or nil printers drop it
// without evaluating the format.
func (p *Printer) Printf(format string, args ...any) {
	if !p.Enabled() {
		return
	}
	p.Print(fmt.Sprintf(format, args...))
}

// Captured returns everything retained by the capture buffer, or the empty
// string when capture is off.
func (p *Printer) Captured() string {
	if p == nil || p.capture == nil {
		return ""
	}
	return p.capture.String()
}

// Truncated reports whether the capture buffer dropped data because it hit
// its limit.
func (p *Printer) Truncated() bool {
	return p != nil && p.capture != nil && p.capture.Truncated
}
