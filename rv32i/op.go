package rv32i

import (
	"fmt"

	"rv32emu/core"
)

// operation names an R-type ALU op that shares a funct3 value with
// another, disambiguated by funct7.
type operation int

const (
	opAdd operation = iota
	opSub
)

func (o operation) String() string {
	if o == opSub {
		return "sub"
	}
	return "add"
}

type opHandler struct{}

func (opHandler) Decode(parts core.WordParts, pc uint32) (core.Instruction, *core.ProcessorException) {
	switch parts.Funct3 {
	case 0b000:
		var op operation
		switch parts.Funct7 {
		case 0b0000000:
			op = opAdd
		case 0b0100000:
			op = opSub
		default:
			return nil, core.NewException(core.IllegalInstruction)
		}
		return &arithmeticInstr{dest: parts.Rd, src1: parts.Rs1, src2: parts.Rs2, op: op}, nil
	case 0b001:
		if parts.Funct7 != 0 {
			return nil, core.NewException(core.IllegalInstruction)
		}
		return &sllInstr{dest: parts.Rd, src1: parts.Rs1, src2: parts.Rs2}, nil
	case 0b010:
		if parts.Funct7 != 0 {
			return nil, core.NewException(core.IllegalInstruction)
		}
		return &sltInstr{dest: parts.Rd, src1: parts.Rs1, src2: parts.Rs2}, nil
	case 0b011:
		if parts.Funct7 != 0 {
			return nil, core.NewException(core.IllegalInstruction)
		}
		return &sltuInstr{dest: parts.Rd, src1: parts.Rs1, src2: parts.Rs2}, nil
	case 0b100:
		if parts.Funct7 != 0 {
			return nil, core.NewException(core.IllegalInstruction)
		}
		return &xorInstr{dest: parts.Rd, src1: parts.Rs1, src2: parts.Rs2}, nil
	case 0b101:
		var behaviour shiftBehaviour
		switch parts.Funct7 {
		case 0b0000000:
			behaviour = shiftLogical
		case 0b0100000:
			behaviour = shiftArithmetic
		default:
			return nil, core.NewException(core.IllegalInstruction)
		}
		return &srInstr{dest: parts.Rd, src1: parts.Rs1, src2: parts.Rs2, behaviour: behaviour}, nil
	case 0b110:
		if parts.Funct7 != 0 {
			return nil, core.NewException(core.IllegalInstruction)
		}
		return &orInstr{dest: parts.Rd, src1: parts.Rs1, src2: parts.Rs2}, nil
	case 0b111:
		if parts.Funct7 != 0 {
			return nil, core.NewException(core.IllegalInstruction)
		}
		return &andInstr{dest: parts.Rd, src1: parts.Rs1, src2: parts.Rs2}, nil
	default:
		return nil, core.NewException(core.IllegalInstruction)
	}
}

type arithmeticInstr struct {
	dest, src1, src2 uint8
	op               operation
}

func (i *arithmeticInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}

func (i *arithmeticInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	a, b := regs.Load(i.src1), regs.Load(i.src2)
	if i.op == opSub {
		regs.Store(i.dest, a-b)
	} else {
		regs.Store(i.dest, a+b)
	}
	return core.Result{}, nil
}

func (i *arithmeticInstr) Format() string {
	return fmt.Sprintf("%s x%d, x%d, x%d", i.op, i.dest, i.src1, i.src2)
}

type sllInstr struct{ dest, src1, src2 uint8 }

func (i *sllInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}
func (i *sllInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	shift := uint32(regs.Load(i.src2)) & 0b11111
	regs.Store(i.dest, regs.Load(i.src1)<<shift)
	return core.Result{}, nil
}
func (i *sllInstr) Format() string {
	return fmt.Sprintf("sll x%d, x%d, x%d", i.dest, i.src1, i.src2)
}

type sltInstr struct{ dest, src1, src2 uint8 }

func (i *sltInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}
func (i *sltInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	if regs.Load(i.src1) < regs.Load(i.src2) {
		regs.Store(i.dest, 1)
	} else {
		regs.Store(i.dest, 0)
	}
	return core.Result{}, nil
}
func (i *sltInstr) Format() string {
	return fmt.Sprintf("slt x%d, x%d, x%d", i.dest, i.src1, i.src2)
}

type sltuInstr struct{ dest, src1, src2 uint8 }

func (i *sltuInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}
func (i *sltuInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	if uint32(regs.Load(i.src1)) < uint32(regs.Load(i.src2)) {
		regs.Store(i.dest, 1)
	} else {
		regs.Store(i.dest, 0)
	}
	return core.Result{}, nil
}
func (i *sltuInstr) Format() string {
	return fmt.Sprintf("sltu x%d, x%d, x%d", i.dest, i.src1, i.src2)
}

type xorInstr struct{ dest, src1, src2 uint8 }

func (i *xorInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}
func (i *xorInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	regs.Store(i.dest, regs.Load(i.src1)^regs.Load(i.src2))
	return core.Result{}, nil
}
func (i *xorInstr) Format() string {
	return fmt.Sprintf("xor x%d, x%d, x%d", i.dest, i.src1, i.src2)
}

type orInstr struct{ dest, src1, src2 uint8 }

func (i *orInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}
func (i *orInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	regs.Store(i.dest, regs.Load(i.src1)|regs.Load(i.src2))
	return core.Result{}, nil
}
func (i *orInstr) Format() string {
	return fmt.Sprintf("or x%d, x%d, x%d", i.dest, i.src1, i.src2)
}

type andInstr struct{ dest, src1, src2 uint8 }

func (i *andInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}
func (i *andInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	regs.Store(i.dest, regs.Load(i.src1)&regs.Load(i.src2))
	return core.Result{}, nil
}
func (i *andInstr) Format() string {
	return fmt.Sprintf("and x%d, x%d, x%d", i.dest, i.src1, i.src2)
}

type srInstr struct {
	dest, src1, src2 uint8
	behaviour        shiftBehaviour
}

func (i *srInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}
func (i *srInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	shift := uint32(regs.Load(i.src2)) & 0b11111
	a := regs.Load(i.src1)
	if i.behaviour == shiftArithmetic {
		regs.Store(i.dest, a>>shift)
	} else {
		regs.Store(i.dest, int32(uint32(a)>>shift))
	}
	return core.Result{}, nil
}
func (i *srInstr) Format() string {
	return fmt.Sprintf("sr%s x%d, x%d, x%d", i.behaviour, i.dest, i.src1, i.src2)
}
