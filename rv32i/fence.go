package rv32i

import (
	"strings"

	"rv32emu/core"
)

type fenceMode int

const (
	fenceNormal fenceMode = iota
	fenceTSO
)

type fenceHandler struct{}

func (fenceHandler) Decode(parts core.WordParts, pc uint32) (core.Instruction, *core.ProcessorException) {
	raw := parts.Raw
	var mode fenceMode
	switch (raw >> 28) & 0b1111 {
	case 0b0000:
		mode = fenceNormal
	case 0b1000:
		mode = fenceTSO
	default:
		return nil, core.NewException(core.IllegalInstruction)
	}
	return &fenceInstr{
		mode: mode,
		pi:   raw&0x08000000 != 0,
		po:   raw&0x04000000 != 0,
		pr:   raw&0x02000000 != 0,
		pw:   raw&0x01000000 != 0,
		si:   raw&0x00800000 != 0,
		so:   raw&0x00400000 != 0,
		sr:   raw&0x00200000 != 0,
		sw:   raw&0x00100000 != 0,
	}, nil
}

// fenceInstr is RV32I's memory ordering barrier. This emulator executes
// one hart with no reordering, so FENCE has no observable effect beyond
// disassembling correctly; it always falls through.
type fenceInstr struct {
	mode           fenceMode
	pi, po, pr, pw bool
	si, so, sr, sw bool
}

func (i *fenceInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}

func (i *fenceInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	return core.Result{}, nil
}

func (i *fenceInstr) Format() string {
	var b strings.Builder
	if i.mode == fenceTSO {
		b.WriteString("fence.tso")
		return b.String()
	}
	b.WriteString("fence")

	var pred, succ strings.Builder
	if i.pi {
		pred.WriteString("i")
	}
	if i.po {
		pred.WriteString("o")
	}
	if i.pr {
		pred.WriteString("r")
	}
	if i.pw {
		pred.WriteString("w")
	}
	if i.si {
		succ.WriteString("i")
	}
	if i.so {
		succ.WriteString("o")
	}
	if i.sr {
		succ.WriteString("r")
	}
	if i.sw {
		succ.WriteString("w")
	}

	if pred.Len() == 0 && succ.Len() == 0 {
		return b.String()
	}
	b.WriteString(" ")
	b.WriteString(pred.String())
	b.WriteString(", ")
	b.WriteString(succ.String())
	return b.String()
}
