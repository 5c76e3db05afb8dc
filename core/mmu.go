package core

// AccessWidth identifies the width and signedness of a memory operation
// requested by a decoded instruction.
type AccessWidth int

const (
	Word AccessWidth = iota
	SignedHalfWord
	UnsignedHalfWord
	SignedByte
	UnsignedByte
)

func (w AccessWidth) String() string {
	switch w {
	case Word:
		return "w"
	case SignedHalfWord:
		return "h"
	case UnsignedHalfWord:
		return "hu"
	case SignedByte:
		return "b"
	case UnsignedByte:
		return "bu"
	default:
		return "?"
	}
}

// LoadSpec describes a pending memory read, produced by a decoded
// instruction's Load step and serviced by the MMU one cycle later.
type LoadSpec struct {
	Width AccessWidth
	Addr  uint32
}

// StoreSpec describes a memory write, produced by a decoded instruction's
// Execute step and serviced by the MMU.
type StoreSpec struct {
	Width AccessWidth
	Addr  uint32
	Value int32
}

// MMU routes loads and stores between a read-only boot image and RAM, by
// the top bit of the address: clear selects the boot image at addr
// directly, set selects RAM at addr with the top bit masked off. This
// keeps the boot image aliased at the bottom of the address space and RAM
// in the upper half, so a single bit distinguishes them without a lookup
// table.
type MMU struct {
	rom *ROM
	ram *RAM
}

// NewMMU builds an MMU over the given boot image and a zero-filled RAM of
// the given size.
func NewMMU(rom *ROM, ramSize uint32) *MMU {
	return &MMU{rom: rom, ram: NewRAM(ramSize)}
}

func (m *MMU) device(addr uint32) (Addressable, uint32) {
	if addr&0x80000000 == 0 {
		return m.rom, addr
	}
	return m.ram, addr & 0x7fffffff
}

func (m *MMU) loadRaw(addr uint32, length uint32) ([]byte, *MemoryAccessError) {
	dev, offset := m.device(addr)
	bytes, err := dev.LoadRaw(offset, length)
	if err != nil {
		return nil, &MemoryAccessError{Kind: err.Kind, Addr: addr}
	}
	return bytes, nil
}

func (m *MMU) storeRaw(addr uint32, values []byte) *MemoryAccessError {
	dev, offset := m.device(addr)
	if err := dev.StoreRaw(offset, values); err != nil {
		return &MemoryAccessError{Kind: err.Kind, Addr: addr}
	}
	return nil
}

// LoadWord reads a little-endian 32-bit word at addr, used for instruction
// fetch as well as LW.
func (m *MMU) LoadWord(addr uint32) (uint32, *ProcessorException) {
	bytes, err := m.loadRaw(addr, 4)
	if err != nil {
		return 0, WrapMemoryError(err)
	}
	return uint32(bytes[0]) | uint32(bytes[1])<<8 | uint32(bytes[2])<<16 | uint32(bytes[3])<<24, nil
}

func (m *MMU) loadUnsignedHalfWord(addr uint32) (uint16, *ProcessorException) {
	bytes, err := m.loadRaw(addr, 2)
	if err != nil {
		return 0, WrapMemoryError(err)
	}
	return uint16(bytes[0]) | uint16(bytes[1])<<8, nil
}

func (m *MMU) loadSignedHalfWord(addr uint32) (int32, *ProcessorException) {
	v, exc := m.loadUnsignedHalfWord(addr)
	if exc != nil {
		return 0, exc
	}
	return (int32(v) << 16) >> 16, nil
}

func (m *MMU) loadUnsignedByte(addr uint32) (uint8, *ProcessorException) {
	bytes, err := m.loadRaw(addr, 1)
	if err != nil {
		return 0, WrapMemoryError(err)
	}
	return bytes[0], nil
}

func (m *MMU) loadSignedByte(addr uint32) (int32, *ProcessorException) {
	v, exc := m.loadUnsignedByte(addr)
	if exc != nil {
		return 0, exc
	}
	return (int32(v) << 24) >> 24, nil
}

// Load services a pending LoadSpec, dispatching on its width.
func (m *MMU) Load(spec LoadSpec) (int32, *ProcessorException) {
	switch spec.Width {
	case Word:
		v, exc := m.LoadWord(spec.Addr)
		return int32(v), exc
	case SignedHalfWord:
		return m.loadSignedHalfWord(spec.Addr)
	case UnsignedHalfWord:
		v, exc := m.loadUnsignedHalfWord(spec.Addr)
		return int32(v), exc
	case SignedByte:
		return m.loadSignedByte(spec.Addr)
	case UnsignedByte:
		v, exc := m.loadUnsignedByte(spec.Addr)
		return int32(v), exc
	default:
		return 0, NewException(IllegalInstruction)
	}
}

func (m *MMU) storeWord(addr uint32, value int32) *ProcessorException {
	v := uint32(value)
	bytes := []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	if err := m.storeRaw(addr, bytes); err != nil {
		return WrapMemoryError(err)
	}
	return nil
}

func (m *MMU) storeHalfWord(addr uint32, value int32) *ProcessorException {
	v := uint16(value)
	bytes := []byte{byte(v), byte(v >> 8)}
	if err := m.storeRaw(addr, bytes); err != nil {
		return WrapMemoryError(err)
	}
	return nil
}

func (m *MMU) storeByte(addr uint32, value int32) *ProcessorException {
	bytes := []byte{byte(value)}
	if err := m.storeRaw(addr, bytes); err != nil {
		return WrapMemoryError(err)
	}
	return nil
}

// Store services a StoreSpec, dispatching on its width.
//
// SignedByte and UnsignedByte both route to the byte-width helper, writing
// exactly one byte. An earlier revision routed them to the half-word
// helper instead, which clobbered the byte beyond the target address on
// every SB.
func (m *MMU) Store(spec StoreSpec) *ProcessorException {
	switch spec.Width {
	case Word:
		return m.storeWord(spec.Addr, spec.Value)
	case SignedHalfWord, UnsignedHalfWord:
		return m.storeHalfWord(spec.Addr, spec.Value)
	case SignedByte, UnsignedByte:
		return m.storeByte(spec.Addr, spec.Value)
	default:
		return NewException(IllegalInstruction)
	}
}
