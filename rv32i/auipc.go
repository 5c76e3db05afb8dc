package rv32i

import (
	"fmt"

	"rv32emu/core"
)

type auipcHandler struct{}

func (auipcHandler) Decode(parts core.WordParts, pc uint32) (core.Instruction, *core.ProcessorException) {
	return &auipcInstr{dest: parts.Rd, imm: parts.ImmU, pc: pc}, nil
}

// auipcInstr adds imm to the pc at which this instruction was decoded and
// stores the result in dest, used to build pc-relative addresses.
type auipcInstr struct {
	dest uint8
	imm  int32
	pc   uint32
}

func (i *auipcInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}

func (i *auipcInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	regs.Store(i.dest, int32(i.pc)+i.imm)
	return core.Result{}, nil
}

func (i *auipcInstr) Format() string {
	return fmt.Sprintf("auipc x%d, 0x%08x", i.dest, uint32(i.imm))
}
