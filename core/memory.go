package core

// Addressable is implemented by any device that backs a contiguous range of
// the address space with raw bytes. The MMU routes loads and stores to one
// of exactly two such devices: a read-only boot image and working RAM.
type Addressable interface {
	// Reserve reports the number of bytes this device occupies.
	Reserve() uint32

	// LoadRaw returns the bytes in [start, start+length).
	LoadRaw(start, length uint32) ([]byte, *MemoryAccessError)

	// StoreRaw writes values into [start, start+len(values)).
	StoreRaw(start uint32, values []byte) *MemoryAccessError
}

// ROM is a fixed, read-only boot image.
type ROM struct {
	contents []byte
}

// NewROM wraps image as a ROM device. The reserved size is rounded up to
// the next power of two, matching the allocation granularity the rest of
// the address space is carved up by.
func NewROM(image []byte) *ROM {
	buf := make([]byte, len(image))
	copy(buf, image)
	return &ROM{contents: buf}
}

func (r *ROM) Reserve() uint32 {
	return nextPowerOfTwo(uint32(len(r.contents)))
}

func (r *ROM) LoadRaw(start, length uint32) ([]byte, *MemoryAccessError) {
	end := start + length
	if end > uint32(len(r.contents)) || end < start {
		return nil, &MemoryAccessError{Kind: OutOfBounds, Addr: start}
	}
	return r.contents[start:end], nil
}

func (r *ROM) StoreRaw(start uint32, values []byte) *MemoryAccessError {
	return &MemoryAccessError{Kind: ReadOnly, Addr: start}
}

// RAM is zero-initialized, read-write working memory.
type RAM struct {
	contents []byte
}

// NewRAM allocates a zero-filled RAM device of the given size in bytes.
func NewRAM(size uint32) *RAM {
	return &RAM{contents: make([]byte, size)}
}

func (m *RAM) Reserve() uint32 {
	return uint32(len(m.contents))
}

func (m *RAM) LoadRaw(start, length uint32) ([]byte, *MemoryAccessError) {
	end := start + length
	if end > uint32(len(m.contents)) || end < start {
		return nil, &MemoryAccessError{Kind: OutOfBounds, Addr: start}
	}
	return m.contents[start:end], nil
}

func (m *RAM) StoreRaw(start uint32, values []byte) *MemoryAccessError {
	end := start + uint32(len(values))
	if end > uint32(len(m.contents)) || end < start {
		return &MemoryAccessError{Kind: OutOfBounds, Addr: start}
	}
	copy(m.contents[start:end], values)
	return nil
}

func nextPowerOfTwo(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v++
	return v
}
