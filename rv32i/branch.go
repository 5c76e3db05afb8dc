package rv32i

import (
	"fmt"

	"rv32emu/core"
)

// branchCondition identifies one of the six RV32I conditional branches.
type branchCondition int

const (
	beq branchCondition = iota
	bne
	blt
	bge
	bltu
	bgeu
)

func (c branchCondition) String() string {
	switch c {
	case beq:
		return "beq"
	case bne:
		return "bne"
	case blt:
		return "blt"
	case bge:
		return "bge"
	case bltu:
		return "bltu"
	case bgeu:
		return "bgeu"
	default:
		return "?"
	}
}

func (c branchCondition) taken(a, b int32) bool {
	switch c {
	case beq:
		return a == b
	case bne:
		return a != b
	case blt:
		return a < b
	case bge:
		return a >= b
	case bltu:
		return uint32(a) < uint32(b)
	case bgeu:
		return uint32(a) >= uint32(b)
	default:
		return false
	}
}

type branchHandler struct{}

func (branchHandler) Decode(parts core.WordParts, pc uint32) (core.Instruction, *core.ProcessorException) {
	var cond branchCondition
	switch parts.Funct3 {
	case 0b000:
		cond = beq
	case 0b001:
		cond = bne
	case 0b100:
		cond = blt
	case 0b101:
		cond = bge
	case 0b110:
		cond = bltu
	case 0b111:
		cond = bgeu
	default:
		return nil, core.NewException(core.IllegalInstruction)
	}
	return &branchInstr{cond: cond, src1: parts.Rs1, src2: parts.Rs2, imm: parts.ImmB, pc: pc}, nil
}

type branchInstr struct {
	cond       branchCondition
	src1, src2 uint8
	imm        int32
	pc         uint32
}

func (i *branchInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}

func (i *branchInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	a, b := regs.Load(i.src1), regs.Load(i.src2)
	if !i.cond.taken(a, b) {
		return core.Result{}, nil
	}
	target := uint32(int32(i.pc) + i.imm)
	if target%4 != 0 {
		return core.Result{}, core.NewException(core.InstructionAddressMisaligned)
	}
	return core.SetJump(target), nil
}

func (i *branchInstr) Format() string {
	return fmt.Sprintf("%s x%d, x%d, 0x%08x", i.cond, i.src1, i.src2, uint32(i.imm))
}
