package clock

import (
	"testing"
	"time"

	"rv32emu/bus"
)

func TestFreeNeverReportsMissed(t *testing.T) {
	c := NewFree()
	for i := 0; i < 3; i++ {
		if status := c.NextTick(); status.Missed != 0 {
			t.Fatalf("Free.NextTick() reported missed ticks: %+v", status)
		}
	}
}

func TestFixedReportsMissedTicksAfterDelay(t *testing.T) {
	c := NewFixed(5 * time.Millisecond)
	time.Sleep(17 * time.Millisecond)
	status := c.NextTick()
	if status.Missed < 2 {
		t.Fatalf("expected at least 2 missed ticks after a 17ms delay on a 5ms clock, got %d", status.Missed)
	}
}

func TestManualBlocksUntilTick(t *testing.T) {
	b := bus.New[ControlMessage]()
	r := b.Subscribe()
	c := NewManual(r)

	done := make(chan Status, 1)
	go func() {
		done <- c.NextTick()
	}()

	time.Sleep(5 * time.Millisecond)
	select {
	case <-done:
		t.Fatalf("NextTick returned before a ManualTick was sent")
	default:
	}

	b.Send(ManualTick)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("NextTick did not return after ManualTick")
	}
}

func TestManualConsumesBufferedTicksAsMissed(t *testing.T) {
	b := bus.New[ControlMessage]()
	r := b.Subscribe()
	c := NewManual(r)

	b.Send(ManualTick)
	b.Send(ManualTick)
	b.Send(ManualTick)

	status := c.NextTick()
	if status.Missed != 3 {
		t.Fatalf("got %d missed ticks, want 3 (all buffered ticks count as missed)", status.Missed)
	}
}
