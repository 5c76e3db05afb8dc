package main

import "testing"

func TestParseMemorySize(t *testing.T) {
	cases := []struct {
		spec string
		want uint32
	}{
		{"32K", 32 << 10},
		{"1M", 1 << 20},
		{"1G", 1 << 30},
		{"4096", 4096},
		{"1k", 1 << 10},
	}
	for _, c := range cases {
		got, err := parseMemorySize(c.spec)
		if err != nil {
			t.Fatalf("parseMemorySize(%q) returned error: %v", c.spec, err)
		}
		if got != c.want {
			t.Errorf("parseMemorySize(%q) = %d, want %d", c.spec, got, c.want)
		}
	}
}

func TestParseMemorySizeInvalid(t *testing.T) {
	cases := []string{"", "T", "32Z", "abc"}
	for _, spec := range cases {
		if _, err := parseMemorySize(spec); err == nil {
			t.Errorf("parseMemorySize(%q) expected an error", spec)
		}
	}
}
