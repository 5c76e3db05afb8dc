package rv32i

import (
	"fmt"

	"rv32emu/core"
)

type loadHandler struct{}

func (loadHandler) Decode(parts core.WordParts, pc uint32) (core.Instruction, *core.ProcessorException) {
	var width core.AccessWidth
	switch parts.Funct3 {
	case 0b000:
		width = core.SignedByte
	case 0b001:
		width = core.SignedHalfWord
	case 0b010:
		width = core.Word
	case 0b100:
		width = core.UnsignedByte
	case 0b101:
		width = core.UnsignedHalfWord
	default:
		return nil, core.NewException(core.IllegalInstruction)
	}
	return &loadInstr{dest: parts.Rd, base: parts.Rs1, offset: parts.ImmI, width: width}, nil
}

// loadInstr requests its memory read at decode-time-plus-one-cycle (via
// Load), so the MMU has a full cycle to service it before Execute needs
// the result.
type loadInstr struct {
	dest   uint8
	base   uint8
	offset int32
	width  core.AccessWidth
}

func (i *loadInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	addr := uint32(regs.Load(i.base) + i.offset)
	return &core.LoadSpec{Width: i.width, Addr: addr}, nil
}

func (i *loadInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	regs.Store(i.dest, mem)
	return core.Result{}, nil
}

func (i *loadInstr) Format() string {
	return fmt.Sprintf("l%s x%d, 0x%08x(x%d)", i.width, i.dest, uint32(i.offset), i.base)
}
