package core

import "testing"

func TestDecodeWordRType(t *testing.T) {
	// add x5, x6, x7
	p, exc := DecodeWord(0x007302b3)
	if exc != nil {
		t.Fatalf("unexpected exception: %v", exc)
	}
	if p.Opcode != 0x33 || p.Rd != 5 || p.Rs1 != 6 || p.Rs2 != 7 || p.Funct3 != 0 || p.Funct7 != 0 {
		t.Fatalf("unexpected fields: %+v", p)
	}
}

func TestDecodeWordIType(t *testing.T) {
	// addi x15, x1, -50
	p, exc := DecodeWord(0xfce08793)
	if exc != nil {
		t.Fatalf("unexpected exception: %v", exc)
	}
	if p.Opcode != 0x13 || p.Rd != 15 || p.Rs1 != 1 || p.ImmI != -50 {
		t.Fatalf("unexpected fields: %+v", p)
	}
}

func TestDecodeWordUType(t *testing.T) {
	// lui x10, 0x87654
	p, exc := DecodeWord(0x87654537)
	if exc != nil {
		t.Fatalf("unexpected exception: %v", exc)
	}
	if p.Opcode != 0x37 || p.Rd != 10 || p.ImmU != -2023407616 /* int32(0x87654000) */ {
		t.Fatalf("unexpected fields: %+v", p)
	}
}

func TestDecodeWordJType(t *testing.T) {
	// jal x5, +164
	p, exc := DecodeWord(0x0a4002ef)
	if exc != nil {
		t.Fatalf("unexpected exception: %v", exc)
	}
	if p.Opcode != 0x6f || p.Rd != 5 || p.ImmJ != 164 {
		t.Fatalf("unexpected fields: %+v", p)
	}
}

func TestDecodeWordRejectsCompressed(t *testing.T) {
	if _, exc := DecodeWord(0x00000001); exc == nil {
		t.Fatalf("expected illegal instruction for a non-word encoding")
	}
}

func TestSignExtend(t *testing.T) {
	if got := signExtend(0xfff, 12); got != -1 {
		t.Fatalf("signExtend(0xfff, 12) = %d, want -1", got)
	}
	if got := signExtend(0x7ff, 12); got != 0x7ff {
		t.Fatalf("signExtend(0x7ff, 12) = %d, want 0x7ff", got)
	}
}
