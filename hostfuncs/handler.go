package hostfuncs

import (
	"context"
)

// Memory is the subset of a guest's linear memory that host functions need.
// It matches the shape of wazero's api.Memory so the adapter can pass one
// through unchanged, while tests use an in-process fake.
type Memory interface {
	// Read returns a view of byteCount bytes at offset, or false if the range
	// is out of bounds. The returned slice aliases guest memory; callers that
	// retain data must copy it.
	Read(offset, byteCount uint32) ([]byte, bool)

	// Write copies data into guest memory at offset, or returns false if the
	// range is out of bounds.
	Write(offset uint32, data []byte) bool
}

// StackHandler processes one host function call. Parameters arrive in stack
// slots in declaration order; results are written back starting at stack[0].
type StackHandler func(ctx context.Context, mem Memory, stack []uint64)

// ValueType identifies a WASM value type in a Signature.
type ValueType byte

const (
	// ValueI32 is a 32-bit integer parameter or result.
	ValueI32 ValueType = iota

	// ValueI64 is a 64-bit integer parameter or result.
	ValueI64
)

// Signature declares the WASM-level shape of a host function.
type Signature struct {
	Params  []ValueType
	Results []ValueType
}

// Func binds an export name and signature to a handler.
type Func struct {
	Name      string
	Signature Signature
	Handler   StackHandler
}

// DecodeU32 reads an unsigned 32-bit value from a stack slot.
func DecodeU32(v uint64) uint32 {
	return uint32(v)
}

// DecodeI32 reads a signed 32-bit value from a stack slot.
func DecodeI32(v uint64) int32 {
	return int32(uint32(v))
}

// DecodeI64 reads a signed 64-bit value from a stack slot.
func DecodeI64(v uint64) int64 {
	return int64(v)
}

// EncodeI32 writes a signed 32-bit value into stack-slot form.
func EncodeI32(v int32) uint64 {
	return uint64(uint32(v))
}

// EncodeI64 writes a signed 64-bit value into stack-slot form.
func EncodeI64(v int64) uint64 {
	return uint64(v)
}
