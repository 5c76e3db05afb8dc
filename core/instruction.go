package core

// Result carries the side effects of executing a decoded instruction: an
// optional jump target (absent means fall through to pc+4) and an optional
// pending store for the MMU to service.
type Result struct {
	Jump  *uint32
	Store *StoreSpec
}

// SetJump returns a Result that redirects control flow to addr.
func SetJump(addr uint32) Result {
	return Result{Jump: &addr}
}

// SetStore returns a Result carrying a pending store.
func SetStore(store StoreSpec) Result {
	return Result{Store: &store}
}

// Instruction is a fully decoded RV32I instruction, bound to the operand
// values captured at decode time.
type Instruction interface {
	// Load optionally requests a memory read to be serviced before this
	// instruction executes next cycle. Most instructions have no load and
	// return (nil, nil).
	Load(regs *RegisterFile) (*LoadSpec, *ProcessorException)

	// Execute runs the instruction, given the loaded memory word requested
	// by Load (zero if Load returned nil).
	Execute(regs *RegisterFile, mem int32) (Result, *ProcessorException)

	// Format renders the instruction in disassembly form.
	Format() string
}

// OpcodeHandler decodes the operand fields of an instruction word into a
// concrete Instruction, for all instructions sharing a single opcode.
type OpcodeHandler interface {
	Decode(parts WordParts, pc uint32) (Instruction, *ProcessorException)
}

// Extension installs a family of opcode handlers into a hart. An
// implementation upgrading or replacing a base ISA registers its handlers
// under the same opcode values to take over decoding for them.
type Extension interface {
	Code() string
	Name() string
	Register(hart *Hart)
}
