package core

import "testing"

func TestMMURoutesByTopBit(t *testing.T) {
	rom := NewROM([]byte{1, 2, 3, 4})
	mmu := NewMMU(rom, 16)

	w, exc := mmu.LoadWord(0)
	if exc != nil {
		t.Fatalf("unexpected exception: %v", exc)
	}
	if w != 0x04030201 {
		t.Fatalf("got 0x%08x, want 0x04030201", w)
	}

	if exc := mmu.Store(StoreSpec{Width: Word, Addr: 0x80000000, Value: 0x11223344}); exc != nil {
		t.Fatalf("unexpected exception: %v", exc)
	}
	v, exc := mmu.LoadWord(0x80000000)
	if exc != nil {
		t.Fatalf("unexpected exception: %v", exc)
	}
	if v != 0x11223344 {
		t.Fatalf("got 0x%08x, want 0x11223344", v)
	}
}

func TestMMURejectsStoreToROM(t *testing.T) {
	rom := NewROM([]byte{0, 0, 0, 0})
	mmu := NewMMU(rom, 16)
	if exc := mmu.Store(StoreSpec{Width: Word, Addr: 0, Value: 1}); exc == nil {
		t.Fatalf("expected a ReadOnly exception storing to ROM")
	}
}

func TestMMUStoreByteWritesExactlyOneByte(t *testing.T) {
	rom := NewROM([]byte{0})
	mmu := NewMMU(rom, 16)
	if exc := mmu.Store(StoreSpec{Width: Word, Addr: 0x80000000, Value: -1}); exc != nil {
		t.Fatalf("unexpected exception: %v", exc)
	}
	if exc := mmu.Store(StoreSpec{Width: UnsignedByte, Addr: 0x80000000, Value: 0x00}); exc != nil {
		t.Fatalf("unexpected exception: %v", exc)
	}
	v, exc := mmu.LoadWord(0x80000000)
	if exc != nil {
		t.Fatalf("unexpected exception: %v", exc)
	}
	if v != 0xffffff00 {
		t.Fatalf("got 0x%08x, want 0xffffff00 (SB must not touch the upper three bytes)", v)
	}
}

func TestMMUByteSignExtension(t *testing.T) {
	rom := NewROM([]byte{0})
	mmu := NewMMU(rom, 16)
	mmu.Store(StoreSpec{Width: Word, Addr: 0x80000000, Value: int32(0x000000ff)})
	v, exc := mmu.Load(LoadSpec{Width: SignedByte, Addr: 0x80000000})
	if exc != nil {
		t.Fatalf("unexpected exception: %v", exc)
	}
	if v != -1 {
		t.Fatalf("signed byte load of 0xff = %d, want -1", v)
	}
	vu, exc := mmu.Load(LoadSpec{Width: UnsignedByte, Addr: 0x80000000})
	if exc != nil {
		t.Fatalf("unexpected exception: %v", exc)
	}
	if vu != 0xff {
		t.Fatalf("unsigned byte load of 0xff = %d, want 255", vu)
	}
}

func TestMMUOutOfBounds(t *testing.T) {
	rom := NewROM([]byte{0, 0, 0, 0})
	mmu := NewMMU(rom, 4)
	if _, exc := mmu.LoadWord(0x80000000 + 4); exc == nil {
		t.Fatalf("expected an out-of-bounds exception")
	}
}
