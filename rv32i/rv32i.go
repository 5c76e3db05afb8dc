// Package rv32i implements the RV32I base integer instruction set as a
// core.Extension: one OpcodeHandler per opcode, installed into a hart.
package rv32i

import "rv32emu/core"

// Opcode values for every instruction family this extension handles.
const (
	opLoad   = 0x03
	opFence  = 0x0f
	opImm    = 0x13
	opAUIPC  = 0x17
	opStore  = 0x23
	opOp     = 0x33
	opLUI    = 0x37
	opBranch = 0x63
	opJALR   = 0x67
	opJAL    = 0x6f
	opSystem = 0x73
)

// Extension installs the RV32I opcode handlers.
type Extension struct{}

// New returns the RV32I extension.
func New() *Extension {
	return &Extension{}
}

func (e *Extension) Code() string { return "rv32i" }
func (e *Extension) Name() string { return "RV32I base integer instruction set" }

func (e *Extension) Register(hart *core.Hart) {
	hart.RegisterOpcode(opLoad, loadHandler{})
	hart.RegisterOpcode(opFence, fenceHandler{})
	hart.RegisterOpcode(opImm, opImmHandler{})
	hart.RegisterOpcode(opAUIPC, auipcHandler{})
	hart.RegisterOpcode(opStore, storeHandler{})
	hart.RegisterOpcode(opOp, opHandler{})
	hart.RegisterOpcode(opLUI, luiHandler{})
	hart.RegisterOpcode(opBranch, branchHandler{})
	hart.RegisterOpcode(opJALR, jalrHandler{})
	hart.RegisterOpcode(opJAL, jalHandler{})
	hart.RegisterOpcode(opSystem, systemHandler{})
}

// shiftBehaviour distinguishes a logical right shift (zero-filled) from an
// arithmetic one (sign-filled), the two forms RISC-V packs into the same
// funct3 value and disambiguates via a funct7/imm bit.
type shiftBehaviour int

const (
	shiftLogical shiftBehaviour = iota
	shiftArithmetic
)

func (b shiftBehaviour) String() string {
	if b == shiftArithmetic {
		return "a"
	}
	return "l"
}
