package rv32i

import "rv32emu/core"

type systemHandler struct{}

func (systemHandler) Decode(parts core.WordParts, pc uint32) (core.Instruction, *core.ProcessorException) {
	if parts.Rs1 != 0 || parts.Funct3 != 0 || parts.Rd != 0 {
		return nil, core.NewException(core.IllegalInstruction)
	}
	switch parts.ImmI {
	case 0b000000000000:
		return &ecallInstr{}, nil
	case 0b000000000001:
		return &ebreakInstr{}, nil
	default:
		return nil, core.NewException(core.IllegalInstruction)
	}
}

// ecallInstr requests an environment call. This emulator has no
// environment to service it, so Execute always faults; a driver wanting
// syscall emulation intercepts EnvironmentCall at the fault boundary
// rather than here.
type ecallInstr struct{}

func (i *ecallInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}

func (i *ecallInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	return core.Result{}, core.NewException(core.EnvironmentCall)
}

func (i *ecallInstr) Format() string {
	return "ecall"
}

// ebreakInstr requests a breakpoint trap.
type ebreakInstr struct{}

func (i *ebreakInstr) Load(regs *core.RegisterFile) (*core.LoadSpec, *core.ProcessorException) {
	return nil, nil
}

func (i *ebreakInstr) Execute(regs *core.RegisterFile, mem int32) (core.Result, *core.ProcessorException) {
	return core.Result{}, core.NewException(core.EnvironmentBreak)
}

func (i *ebreakInstr) Format() string {
	return "ebreak"
}
