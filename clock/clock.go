// Package clock paces a processor's cycle loop: free-running as fast as
// possible, phase-locked to a fixed period, or single-stepped under
// external control.
package clock

// Status reports whether a tick arrived on schedule or late.
type Status struct {
	// Missed is the number of ticks that elapsed without the driver
	// observing them, beyond the one this call is returning for. Zero
	// means the tick arrived on time.
	Missed int
}

// Clock paces a cycle loop.
type Clock interface {
	// NextTick blocks, if the implementation requires it, until the next
	// cycle should run.
	NextTick() Status

	// Reset re-synchronizes the clock's internal timebase to now.
	Reset()
}
