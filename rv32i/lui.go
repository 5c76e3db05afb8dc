package rv32i

import (
	"fmt"

	"rv32emu/core"
)

type luiHandler struct{}

func (luiHandler) Decode(parts core.WordParts, pc uint32) (core.Instruction, *core.ProcessorException) {
	return &luiInstr{dest: parts.Rd, imm: parts.ImmU}, nil
}

// luiInstr loads imm (already shifted into the upper 20 bits) directly
// into dest.
type luiInstr struct {
	dest uint8
	imm  int32
}

func (i *luiInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}

func (i *luiInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	regs.Store(i.dest, i.imm)
	return core.Result{}, nil
}

func (i *luiInstr) Format() string {
	return fmt.Sprintf("lui x%d, 0x%08x", i.dest, uint32(i.imm))
}
