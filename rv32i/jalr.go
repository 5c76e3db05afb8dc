package rv32i

import (
	"fmt"

	"rv32emu/core"
)

type jalrHandler struct{}

func (jalrHandler) Decode(parts core.WordParts, pc uint32) (core.Instruction, *core.ProcessorException) {
	if parts.Funct3 != 0 {
		return nil, core.NewException(core.IllegalInstruction)
	}
	return &jalrInstr{dest: parts.Rd, base: parts.Rs1, offset: parts.ImmI, pc: pc}, nil
}

// jalrInstr stores pc+4 in dest and jumps to (base + offset) with the
// low bit cleared, per the RISC-V indirect jump semantics.
type jalrInstr struct {
	dest   uint8
	base   uint8
	offset int32
	pc     uint32
}

func (i *jalrInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}

func (i *jalrInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	target := uint32(regs.Load(i.base)+i.offset) &^ 1
	if target%4 != 0 {
		return core.Result{}, core.NewException(core.InstructionAddressMisaligned)
	}
	regs.Store(i.dest, int32(i.pc+4))
	return core.SetJump(target), nil
}

func (i *jalrInstr) Format() string {
	// The base register belongs in the third slot here; an earlier
	// revision printed dest twice instead.
	return fmt.Sprintf("jalr x%d, 0x%08x(x%d)", i.dest, uint32(i.offset), i.base)
}
