package hostfuncs

import (
	"context"

	"github.com/memio-dev/memio/debuglog"
)

// MaxPrintSize bounds a single debug message read from guest memory (64KB).
// Longer claims are truncated rather than refused so a verbose guest still
// produces useful output.
const MaxPrintSize = 64 * 1024

// DebugBundle returns the guest's conditional debug print:
//
//	print(msg_ptr, msg_len)
//
// Messages are forwarded to the printer, which drops them unless debug output
// is enabled. A nil printer is valid and silent.
func DebugBundle(printer *debuglog.Printer) Bundle {
	return &staticBundle{funcs: []Func{
		{
			Name:      "print",
			Signature: Signature{Params: []ValueType{ValueI32, ValueI32}},
			Handler:   printHandler(printer),
		},
	}}
}

func printHandler(printer *debuglog.Printer) StackHandler {
	return func(ctx context.Context, mem Memory, stack []uint64) {
		if !printer.Enabled() {
			return
		}

		ptr, length := DecodeU32(stack[0]), DecodeU32(stack[1])
		if length > MaxPrintSize {
			length = MaxPrintSize
		}

		msg, ok := mem.Read(ptr, length)
		if !ok {
			return
		}
		printer.Print(string(msg))
	}
}
