package main

import (
	"testing"

	"rv32emu/bus"
	"rv32emu/clock"
)

func TestParseClockSpecManual(t *testing.T) {
	b := bus.New[clock.ControlMessage]()
	c, err := parseClockSpec("manual", b.Subscribe())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.(*clock.Manual); !ok {
		t.Fatalf("got %T, want *clock.Manual", c)
	}
}

func TestParseClockSpecFree(t *testing.T) {
	c, err := parseClockSpec("free", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.(*clock.Free); !ok {
		t.Fatalf("got %T, want *clock.Free", c)
	}
}

func TestParseClockSpecFixedFrequency(t *testing.T) {
	c, err := parseClockSpec("1000000", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.(*clock.Fixed); !ok {
		t.Fatalf("got %T, want *clock.Fixed", c)
	}
}

func TestParseClockSpecInvalid(t *testing.T) {
	cases := []string{"", "bogus", "-5", "0"}
	for _, spec := range cases {
		if _, err := parseClockSpec(spec, nil); err == nil {
			t.Errorf("parseClockSpec(%q) expected an error", spec)
		}
	}
}
