package rv32i

import (
	"fmt"

	"rv32emu/core"
)

type opImmHandler struct{}

func (opImmHandler) Decode(parts core.WordParts, pc uint32) (core.Instruction, *core.ProcessorException) {
	switch parts.Funct3 {
	case 0b000:
		return &addiInstr{dest: parts.Rd, src: parts.Rs1, imm: parts.ImmI}, nil
	case 0b001:
		if parts.Funct7 != 0 {
			return nil, core.NewException(core.IllegalInstruction)
		}
		return &slliInstr{dest: parts.Rd, src: parts.Rs1, shamt: uint32(parts.ImmI) & 0b11111}, nil
	case 0b010:
		return &sltiInstr{dest: parts.Rd, src: parts.Rs1, imm: parts.ImmI}, nil
	case 0b011:
		return &sltiuInstr{dest: parts.Rd, src: parts.Rs1, imm: parts.ImmI}, nil
	case 0b100:
		return &xoriInstr{dest: parts.Rd, src: parts.Rs1, imm: parts.ImmI}, nil
	case 0b101:
		// The shift-behaviour selector and the shift amount share imm_i:
		// the upper 7 bits (mirroring funct7 in an R-type encoding) pick
		// logical vs. arithmetic, the low 5 bits are the shift amount.
		raw := uint32(parts.ImmI)
		var behaviour shiftBehaviour
		switch raw & 0b111111100000 {
		case 0b000000000000:
			behaviour = shiftLogical
		case 0b010000000000:
			behaviour = shiftArithmetic
		default:
			return nil, core.NewException(core.IllegalInstruction)
		}
		return &sriInstr{dest: parts.Rd, src: parts.Rs1, shamt: raw & 0b11111, behaviour: behaviour}, nil
	case 0b110:
		return &oriInstr{dest: parts.Rd, src: parts.Rs1, imm: parts.ImmI}, nil
	case 0b111:
		return &andiInstr{dest: parts.Rd, src: parts.Rs1, imm: parts.ImmI}, nil
	default:
		return nil, core.NewException(core.IllegalInstruction)
	}
}

type addiInstr struct {
	dest, src uint8
	imm       int32
}

func (i *addiInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}
func (i *addiInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	regs.Store(i.dest, regs.Load(i.src)+i.imm)
	return core.Result{}, nil
}
func (i *addiInstr) Format() string {
	return fmt.Sprintf("addi x%d, x%d, 0x%08x", i.dest, i.src, uint32(i.imm))
}

type sltiInstr struct {
	dest, src uint8
	imm       int32
}

func (i *sltiInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}
func (i *sltiInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	if regs.Load(i.src) < i.imm {
		regs.Store(i.dest, 1)
	} else {
		regs.Store(i.dest, 0)
	}
	return core.Result{}, nil
}
func (i *sltiInstr) Format() string {
	return fmt.Sprintf("slti x%d, x%d, 0x%08x", i.dest, i.src, uint32(i.imm))
}

type sltiuInstr struct {
	dest, src uint8
	imm       int32
}

func (i *sltiuInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}
func (i *sltiuInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	if uint32(regs.Load(i.src)) < uint32(i.imm) {
		regs.Store(i.dest, 1)
	} else {
		regs.Store(i.dest, 0)
	}
	return core.Result{}, nil
}
func (i *sltiuInstr) Format() string {
	return fmt.Sprintf("sltiu x%d, x%d, 0x%08x", i.dest, i.src, uint32(i.imm))
}

type xoriInstr struct {
	dest, src uint8
	imm       int32
}

func (i *xoriInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}
func (i *xoriInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	regs.Store(i.dest, regs.Load(i.src)^i.imm)
	return core.Result{}, nil
}
func (i *xoriInstr) Format() string {
	return fmt.Sprintf("xori x%d, x%d, 0x%08x", i.dest, i.src, uint32(i.imm))
}

type oriInstr struct {
	dest, src uint8
	imm       int32
}

func (i *oriInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}
func (i *oriInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	regs.Store(i.dest, regs.Load(i.src)|i.imm)
	return core.Result{}, nil
}
func (i *oriInstr) Format() string {
	return fmt.Sprintf("ori x%d, x%d, 0x%08x", i.dest, i.src, uint32(i.imm))
}

type andiInstr struct {
	dest, src uint8
	imm       int32
}

func (i *andiInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}
func (i *andiInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	regs.Store(i.dest, regs.Load(i.src)&i.imm)
	return core.Result{}, nil
}
func (i *andiInstr) Format() string {
	return fmt.Sprintf("andi x%d, x%d, 0x%08x", i.dest, i.src, uint32(i.imm))
}

type slliInstr struct {
	dest, src uint8
	shamt     uint32
}

func (i *slliInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}
func (i *slliInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	regs.Store(i.dest, regs.Load(i.src)<<i.shamt)
	return core.Result{}, nil
}
func (i *slliInstr) Format() string {
	return fmt.Sprintf("slli x%d, x%d, %d", i.dest, i.src, i.shamt)
}

type sriInstr struct {
	dest, src uint8
	shamt     uint32
	behaviour shiftBehaviour
}

func (i *sriInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}
func (i *sriInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	a := regs.Load(i.src)
	if i.behaviour == shiftArithmetic {
		regs.Store(i.dest, a>>i.shamt)
	} else {
		regs.Store(i.dest, int32(uint32(a)>>i.shamt))
	}
	return core.Result{}, nil
}
func (i *sriInstr) Format() string {
	return fmt.Sprintf("sr%si x%d, x%d, %d", i.behaviour, i.dest, i.src, i.shamt)
}
