// Package driver runs the top-level execution loop: draining control
// messages, pacing cycles against a clock, and broadcasting a log record
// for every cycle the processor runs.
package driver

import "rv32emu/core"

// LogKind distinguishes a successful cycle record from a fault record.
type LogKind int

const (
	LogOk LogKind = iota
	LogFault
)

// LogRecord is broadcast on the log bus after every processor cycle.
type LogRecord struct {
	Kind      LogKind
	Instr     string
	Registers [32]int32
	PC        uint32
	Fault     *core.Fault
}
