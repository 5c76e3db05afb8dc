package main

import (
	"fmt"
	"strconv"
	"time"

	"rv32emu/bus"
	"rv32emu/clock"
)

// parseClockSpec parses a --clock argument: "manual", "free", or a positive
// decimal integer giving the frequency, in Hz, of a fixed-period clock.
// control is only consumed if the manual clock is selected.
func parseClockSpec(spec string, control *bus.Reader[clock.ControlMessage]) (clock.Clock, error) {
	switch spec {
	case "manual":
		return clock.NewManual(control), nil
	case "free":
		return clock.NewFree(), nil
	default:
		freq, err := strconv.ParseUint(spec, 10, 64)
		if err != nil || freq == 0 {
			return nil, fmt.Errorf("invalid clock specification %q: want \"manual\", \"free\", or a positive frequency in Hz", spec)
		}
		period := time.Duration(1_000_000_000/freq) * time.Nanosecond
		return clock.NewFixed(period), nil
	}
}
