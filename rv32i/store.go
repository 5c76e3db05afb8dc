package rv32i

import (
	"fmt"

	"rv32emu/core"
)

type storeHandler struct{}

func (storeHandler) Decode(parts core.WordParts, pc uint32) (core.Instruction, *core.ProcessorException) {
	var width core.AccessWidth
	switch parts.Funct3 {
	case 0b000:
		width = core.SignedByte
	case 0b001:
		width = core.SignedHalfWord
	case 0b010:
		width = core.Word
	default:
		return nil, core.NewException(core.IllegalInstruction)
	}
	return &storeInstr{base: parts.Rs1, src: parts.Rs2, offset: parts.ImmS, width: width}, nil
}

type storeInstr struct {
	base   uint8
	src    uint8
	offset int32
	width  core.AccessWidth
}

func (i *storeInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}

func (i *storeInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	addr := uint32(regs.Load(i.base) + i.offset)
	value := regs.Load(i.src)
	return core.SetStore(core.StoreSpec{Width: i.width, Addr: addr, Value: value}), nil
}

func (i *storeInstr) Format() string {
	return fmt.Sprintf("s%s x%d, 0x%08x(x%d)", i.width, i.src, uint32(i.offset), i.base)
}
