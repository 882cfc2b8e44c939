package hostfuncs

import (
	"context"

	"github.com/memio-dev/memio/vfs"
)

// Seek origin codes on the wire, matching the classic SEEK_SET, SEEK_CUR and
// SEEK_END values a C-compiled guest passes.
const (
	seekSet = 0
	seekCur = 1
	seekEnd = 2
)

// FileBundle returns the buffered-file emulation functions bound to store.
//
// The exported surface mirrors the stdio calls a guest compiled without WASI
// file support expects to import:
//
//	write_file(name_ptr, name_len, data_ptr, data_len, overwrite) -> i32  1 ok, 0 refused/failed
//	fopen(name_ptr, name_len)                                     -> i32  handle, 0 not found
//	fclose(handle)                                                -> i32  0 ok, -1 invalid
//	fseek(handle, offset: i64, origin)                            -> i32  0 ok, -1 failed
//	ftell(handle)                                                 -> i64  cursor, 0 if invalid
//	fread(dst_ptr, elem_size, elem_count, handle)                 -> i64  elements read, -1 invalid
//	fwrite(src_ptr, elem_size, elem_count, handle)                -> i64  always 0
//	frewind(handle)
//	fgets(dst_ptr, max_chars, handle)                             -> i32  dst_ptr, 0 at end of data
//
// fgets NUL-terminates the bytes it writes into guest memory, matching the
// classic contract.
func FileBundle(store *vfs.Store) Bundle {
	return &staticBundle{funcs: []Func{
		{
			Name:      "write_file",
			Signature: Signature{Params: []ValueType{ValueI32, ValueI32, ValueI32, ValueI32, ValueI32}, Results: []ValueType{ValueI32}},
			Handler:   writeFileHandler(store),
		},
		{
			Name:      "fopen",
			Signature: Signature{Params: []ValueType{ValueI32, ValueI32}, Results: []ValueType{ValueI32}},
			Handler:   openHandler(store),
		},
		{
			Name:      "fclose",
			Signature: Signature{Params: []ValueType{ValueI32}, Results: []ValueType{ValueI32}},
			Handler:   closeHandler(store),
		},
		{
			Name:      "fseek",
			Signature: Signature{Params: []ValueType{ValueI32, ValueI64, ValueI32}, Results: []ValueType{ValueI32}},
			Handler:   seekHandler(store),
		},
		{
			Name:      "ftell",
			Signature: Signature{Params: []ValueType{ValueI32}, Results: []ValueType{ValueI64}},
			Handler:   tellHandler(store),
		},
		{
			Name:      "fread",
			Signature: Signature{Params: []ValueType{ValueI32, ValueI32, ValueI32, ValueI32}, Results: []ValueType{ValueI64}},
			Handler:   readHandler(store),
		},
		{
			Name:      "fwrite",
			Signature: Signature{Params: []ValueType{ValueI32, ValueI32, ValueI32, ValueI32}, Results: []ValueType{ValueI64}},
			Handler:   writeHandler(store),
		},
		{
			Name:      "frewind",
			Signature: Signature{Params: []ValueType{ValueI32}},
			Handler:   rewindHandler(store),
		},
		{
			Name:      "fgets",
			Signature: Signature{Params: []ValueType{ValueI32, ValueI32, ValueI32}, Results: []ValueType{ValueI32}},
			Handler:   getsHandler(store),
		},
	}}
}

// readName fetches a file name from guest memory.
func readName(mem Memory, ptr, length uint32) (string, bool) {
	raw, ok := mem.Read(ptr, length)
	if !ok {
		return "", false
	}
	return string(raw), true
}

func writeFileHandler(store *vfs.Store) StackHandler {
	return func(ctx context.Context, mem Memory, stack []uint64) {
		namePtr, nameLen := DecodeU32(stack[0]), DecodeU32(stack[1])
		dataPtr, dataLen := DecodeU32(stack[2]), DecodeU32(stack[3])
		overwrite := DecodeU32(stack[4]) != 0

		name, ok := readName(mem, namePtr, nameLen)
		if !ok {
			stack[0] = 0
			return
		}

		// The store takes ownership, so the contents must be copied out of
		// guest memory rather than aliased.
		var contents []byte
		if dataLen > 0 {
			view, ok := mem.Read(dataPtr, dataLen)
			if !ok {
				stack[0] = 0
				return
			}
			contents = make([]byte, dataLen)
			copy(contents, view)
		}

		if err := store.Register(name, contents, overwrite); err != nil {
			stack[0] = 0
			return
		}
		stack[0] = 1
	}
}

func openHandler(store *vfs.Store) StackHandler {
	return func(ctx context.Context, mem Memory, stack []uint64) {
		name, ok := readName(mem, DecodeU32(stack[0]), DecodeU32(stack[1]))
		if !ok {
			stack[0] = 0
			return
		}

		h, err := store.Open(name)
		if err != nil {
			stack[0] = 0
			return
		}
		stack[0] = uint64(h)
	}
}

func closeHandler(store *vfs.Store) StackHandler {
	return func(ctx context.Context, mem Memory, stack []uint64) {
		if err := store.Close(vfs.Handle(DecodeU32(stack[0]))); err != nil {
			stack[0] = EncodeI32(-1)
			return
		}
		stack[0] = 0
	}
}

func seekHandler(store *vfs.Store) StackHandler {
	return func(ctx context.Context, mem Memory, stack []uint64) {
		h := vfs.Handle(DecodeU32(stack[0]))
		offset := DecodeI64(stack[1])

		var origin vfs.Origin
		switch DecodeI32(stack[2]) {
		case seekSet:
			origin = vfs.OriginStart
		case seekCur:
			origin = vfs.OriginCurrent
		case seekEnd:
			origin = vfs.OriginEnd
		default:
			stack[0] = EncodeI32(-1)
			return
		}

		if err := store.Seek(h, offset, origin); err != nil {
			stack[0] = EncodeI32(-1)
			return
		}
		stack[0] = 0
	}
}

func tellHandler(store *vfs.Store) StackHandler {
	return func(ctx context.Context, mem Memory, stack []uint64) {
		stack[0] = EncodeI64(store.Tell(vfs.Handle(DecodeU32(stack[0]))))
	}
}

func readHandler(store *vfs.Store) StackHandler {
	return func(ctx context.Context, mem Memory, stack []uint64) {
		dstPtr := DecodeU32(stack[0])
		elemSize := int64(DecodeU32(stack[1]))
		elemCount := int64(DecodeU32(stack[2]))
		h := vfs.Handle(DecodeU32(stack[3]))

		// A zero-element probe distinguishes an invalid handle from a valid
		// handle with nothing left to read.
		if _, err := store.Read(h, nil, 0, 0); err != nil {
			stack[0] = EncodeI64(-1)
			return
		}
		if elemSize == 0 || elemCount == 0 {
			stack[0] = 0
			return
		}

		// Cap the scratch buffer at what the boundary-exclusive read can
		// actually yield, so a guest cannot make the host allocate
		// elem_size*elem_count bytes of garbage.
		remaining := store.Size(h) - store.Tell(h)
		readable := int64(0)
		if remaining > 0 {
			readable = (remaining - 1) / elemSize
		}
		if elemCount < readable {
			readable = elemCount
		}
		if readable == 0 {
			stack[0] = 0
			return
		}

		buf := make([]byte, readable*elemSize)
		n, err := store.Read(h, buf, int(elemSize), int(readable))
		if err != nil {
			stack[0] = EncodeI64(-1)
			return
		}
		if !mem.Write(dstPtr, buf[:int64(n)*elemSize]) {
			stack[0] = EncodeI64(-1)
			return
		}
		stack[0] = EncodeI64(int64(n))
	}
}

func writeHandler(store *vfs.Store) StackHandler {
	return func(ctx context.Context, mem Memory, stack []uint64) {
		// Stream handles are read/replace-only: fwrite reports zero elements
		// written, always. Contents change only through write_file with the
		// overwrite flag.
		stack[0] = 0
	}
}

func rewindHandler(store *vfs.Store) StackHandler {
	return func(ctx context.Context, mem Memory, stack []uint64) {
		store.Rewind(vfs.Handle(DecodeU32(stack[0])))
	}
}

func getsHandler(store *vfs.Store) StackHandler {
	return func(ctx context.Context, mem Memory, stack []uint64) {
		dstPtr := DecodeU32(stack[0])
		maxChars := DecodeI32(stack[1])
		h := vfs.Handle(DecodeU32(stack[2]))

		line, err := store.ReadLine(h, int(maxChars))
		if err != nil {
			// End of data or invalid handle both read as NULL to the guest.
			stack[0] = 0
			return
		}

		if !mem.Write(dstPtr, append(line, 0)) {
			stack[0] = 0
			return
		}
		stack[0] = uint64(dstPtr)
	}
}
