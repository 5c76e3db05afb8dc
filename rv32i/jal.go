package rv32i

import (
	"fmt"

	"rv32emu/core"
)

type jalHandler struct{}

func (jalHandler) Decode(parts core.WordParts, pc uint32) (core.Instruction, *core.ProcessorException) {
	return &jalInstr{dest: parts.Rd, imm: parts.ImmJ, pc: pc}, nil
}

// jalInstr stores pc+4 (the return address) in dest and jumps to pc+imm.
type jalInstr struct {
	dest uint8
	imm  int32
	pc   uint32
}

func (i *jalInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}

func (i *jalInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	target := uint32(int32(i.pc) + i.imm)
	if target%4 != 0 {
		return core.Result{}, core.NewException(core.InstructionAddressMisaligned)
	}
	regs.Store(i.dest, int32(i.pc+4))
	return core.SetJump(target), nil
}

func (i *jalInstr) Format() string {
	return fmt.Sprintf("jal x%d, 0x%08x", i.dest, uint32(i.imm))
}
