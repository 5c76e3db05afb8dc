package core

// MemoryAccess reports the pending load and/or store a hart wants serviced
// around a single cycle: a load to satisfy before the next cycle's
// execute, and a store produced by this cycle's execute.
type MemoryAccess struct {
	Load  *LoadSpec
	Store *StoreSpec
}

// pendingInstr is the result of decoding an instruction word: either a
// ready-to-execute Instruction, or the exception raised while decoding it.
// The exception is not surfaced immediately — decode happens a cycle ahead
// of execute, so a bad encoding is only reported when the hart would have
// executed it. pc is the address this instruction was fetched from, kept
// alongside it so that a fault raised when it finally executes is tagged
// with its own address rather than whatever the pc happens to be a cycle
// later.
type pendingInstr struct {
	instr Instruction
	err   *ProcessorException
	pc    uint32
}

// Hart is a single RISC-V hardware thread: its registers, program counter,
// and the two-stage decode/execute pipeline that lets instruction fetch
// overlap with the previous instruction's execution.
type Hart struct {
	Registers *RegisterFile
	pc        uint32
	prevPC    uint32
	opcodes   map[uint8]OpcodeHandler
	lastInstr string
	nextInstr *pendingInstr
}

// NewHart returns a hart with a zeroed register file and pc, and no
// opcodes registered. Extensions populate the opcode table via Register.
func NewHart() *Hart {
	return &Hart{
		Registers: NewRegisterFile(),
		opcodes:   make(map[uint8]OpcodeHandler),
	}
}

// PC reports the hart's current program counter.
func (h *Hart) PC() uint32 {
	return h.pc
}

// PrevPC reports the address of the instruction most recently executed
// (the pc tagged onto a LogOk record, per the Ok{pc} contract).
func (h *Hart) PrevPC() uint32 {
	return h.prevPC
}

// LastInstr reports the disassembly of the instruction most recently
// executed, or "" if none has executed yet or the pipeline is bubbled.
func (h *Hart) LastInstr() string {
	return h.lastInstr
}

// RegisterOpcode installs handler as the decoder for the given opcode,
// overwriting any handler already registered for it.
func (h *Hart) RegisterOpcode(opcode uint8, handler OpcodeHandler) {
	h.opcodes[opcode] = handler
}

// Reset clears the hart's pc, registers, and pipeline state.
func (h *Hart) Reset() {
	h.Registers.Reset()
	h.pc = 0
	h.prevPC = 0
	h.lastInstr = ""
	h.nextInstr = nil
}

func (h *Hart) decode(rawInstr uint32) pendingInstr {
	pc := h.pc
	parts, exc := DecodeWord(rawInstr)
	if exc != nil {
		return pendingInstr{err: exc, pc: pc}
	}
	handler, ok := h.opcodes[parts.Opcode]
	if !ok {
		return pendingInstr{err: NewException(IllegalInstruction), pc: pc}
	}
	instr, exc := handler.Decode(parts, pc)
	if exc != nil {
		return pendingInstr{err: exc, pc: pc}
	}
	return pendingInstr{instr: instr, pc: pc}
}

// Cycle advances the hart by one clock tick. rawInstr is the instruction
// word fetched at the hart's current pc; mem is the value of any load
// requested by the previous cycle (zero if none was requested).
//
// Decode and execute are staggered by one cycle: the instruction decoded
// this cycle does not execute until the next one, so that its operand
// load (if any) has a full cycle to be serviced by the MMU before it's
// needed. A decode failure is therefore not reported until the cycle that
// would have executed it, tagged with that instruction's own address.
func (h *Hart) Cycle(rawInstr uint32, mem int32) (MemoryAccess, *Fault) {
	curPC := h.pc
	nextPC := h.pc + 4

	decoded := h.decode(rawInstr)

	var access MemoryAccess
	prev := h.nextInstr
	switch {
	case prev == nil:
		h.lastInstr = ""
	case prev.err != nil:
		return MemoryAccess{}, &Fault{Exception: prev.err, PC: curPC}
	default:
		h.lastInstr = prev.instr.Format()
		result, exc := prev.instr.Execute(h.Registers, mem)
		if exc != nil {
			return MemoryAccess{}, &Fault{Exception: exc, PC: curPC}
		}
		if result.Jump != nil {
			decoded = pendingInstr{}
			nextPC = *result.Jump
		}
		access.Store = result.Store
	}

	if decoded.instr != nil {
		load, exc := decoded.instr.Load(h.Registers)
		if exc != nil {
			return MemoryAccess{}, &Fault{Exception: exc, PC: nextPC}
		}
		access.Load = load
	}

	h.pc = nextPC
	h.prevPC = curPC
	if decoded.instr == nil && decoded.err == nil {
		h.nextInstr = nil
	} else {
		stored := decoded
		h.nextInstr = &stored
	}

	return access, nil
}
