package hostfuncs

// fakeMemory is an in-process stand-in for a guest's linear memory.
type fakeMemory struct {
	data []byte
}

func newFakeMemory(size int) *fakeMemory {
	return &fakeMemory{data: make([]byte, size)}
}

func (m *fakeMemory) Read(offset, byteCount uint32) ([]byte, bool) {
	if uint64(offset)+uint64(byteCount) > uint64(len(m.data)) {
		return nil, false
	}
	return m.data[offset : offset+byteCount], true
}

func (m *fakeMemory) Write(offset uint32, data []byte) bool {
	if uint64(offset)+uint64(len(data)) > uint64(len(m.data)) {
		return false
	}
	copy(m.data[offset:], data)
	return true
}

// place copies data into memory at offset and returns (offset, len) for
// building call stacks.
func (m *fakeMemory) place(offset uint32, data []byte) (uint32, uint32) {
	copy(m.data[offset:], data)
	return offset, uint32(len(data))
}
