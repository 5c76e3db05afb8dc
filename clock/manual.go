package clock

import "rv32emu/bus"

// Manual never ticks on its own; it blocks until the driver observes a
// ManualTick on the control bus, which lets an interactive front end
// single-step the processor one cycle at a time. Reset and Halt messages
// are left on the bus for the driver's own control loop to observe; Manual
// only needs to know that one arrived so it can stop waiting.
type Manual struct {
	control *bus.Reader[ControlMessage]
}

// NewManual returns a Manual clock reading control messages from r.
func NewManual(r *bus.Reader[ControlMessage]) *Manual {
	return &Manual{control: r}
}

// consumeBuffered drains any control messages already queued, counting
// ManualTicks as missed ticks. It stops and reports early if it sees a
// Reset or Halt, or if the bus has closed, since the driver's own loop
// will observe and act on those next.
func (m *Manual) consumeBuffered() (Status, bool) {
	missed := 0
	for {
		msg, status := m.control.TryRecv()
		switch status {
		case bus.Empty:
			if missed > 0 {
				return Status{Missed: missed}, true
			}
			return Status{}, false
		case bus.Closed:
			return Status{Missed: missed}, true
		}
		switch msg {
		case ManualTick:
			missed++
		case Reset, Halt:
			return Status{Missed: missed}, true
		}
	}
}

func (m *Manual) NextTick() Status {
	if status, ok := m.consumeBuffered(); ok {
		return status
	}
	for {
		msg, ok := m.control.Recv()
		if !ok {
			return Status{}
		}
		switch msg {
		case ManualTick:
			return Status{}
		case Reset, Halt:
			return Status{}
		}
	}
}

func (m *Manual) Reset() {}
