package driver

import (
	"log"

	"rv32emu/bus"
	"rv32emu/clock"
	"rv32emu/core"
)

// Environment ties a processor, a clock, and the control/log buses together
// into the top-level run loop: drain pending control messages, wait for the
// clock, run one processor cycle, and broadcast what happened.
type Environment struct {
	processor *core.Processor
	clk       clock.Clock
	control   *bus.Reader[clock.ControlMessage]
	logBus    *bus.Bus[LogRecord]
}

// NewEnvironment builds an Environment around processor, paced by clk, and
// reading control messages from control. The caller owns subscribing clk
// (if it needs its own control reader, as clock.Manual does) separately.
func NewEnvironment(processor *core.Processor, clk clock.Clock, control *bus.Reader[clock.ControlMessage]) *Environment {
	return &Environment{
		processor: processor,
		clk:       clk,
		control:   control,
		logBus:    bus.New[LogRecord](),
	}
}

// Subscribe returns a new reader of the log bus, receiving one LogRecord
// per cycle run by Run, in cycle order.
func (e *Environment) Subscribe() *bus.Reader[LogRecord] {
	return e.logBus.Subscribe()
}

// drainControl pulls every control message currently queued, applying Reset
// immediately and reporting whether a Halt was seen or the bus was closed
// (every sender gone means nothing can ever steer the loop again, so a
// closed bus halts it too). ManualTick messages are meant for the clock's
// own reader and are ignored here.
func (e *Environment) drainControl() (halt bool) {
	for {
		msg, status := e.control.TryRecv()
		switch status {
		case bus.Empty:
			return false
		case bus.Closed:
			log.Print("driver: control bus closed")
			return true
		}
		switch msg {
		case clock.Reset:
			log.Print("driver: received reset")
			e.processor.Reset()
		case clock.Halt:
			log.Print("driver: received halt")
			return true
		case clock.ManualTick:
			// Consumed by the clock's own reader, not the driver loop.
		}
	}
}

// Run blocks until the processor halts, faults, or the control bus closes.
// Every cycle it successfully runs is broadcast as a LogOk record; a fault
// is broadcast as a LogFault record and ends the run. The log bus is
// closed when Run returns, so subscribers see end-of-stream rather than
// blocking forever after a clean halt.
func (e *Environment) Run() {
	defer e.logBus.Close()
	for {
		if e.drainControl() {
			return
		}

		e.clk.NextTick()

		if fault := e.processor.Cycle(); fault != nil {
			e.logBus.Send(LogRecord{
				Kind:      LogFault,
				Registers: e.processor.Hart.Registers.Snapshot(),
				PC:        fault.PC,
				Fault:     fault,
			})
			return
		}

		e.logBus.Send(LogRecord{
			Kind:      LogOk,
			Instr:     e.processor.Hart.LastInstr(),
			Registers: e.processor.Hart.Registers.Snapshot(),
			PC:        e.processor.Hart.PrevPC(),
		})
	}
}
