package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func writeROM(t *testing.T, words []uint32) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "boot.bin")
	image := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(image[i*4:], w)
	}
	if err := os.WriteFile(path, image, 0600); err != nil {
		t.Fatalf("failed to write ROM fixture: %v", err)
	}
	return path
}

func TestRunQuickHaltsOnEnvironmentCall(t *testing.T) {
	romPath := writeROM(t, []uint32{
		0x00500093, // addi x1, x0, 5
		0x00000073, // ecall
		0x00000013, // addi x0, x0, 0 (trailing pad; the pipeline fetches one word past ecall before reporting it)
	})

	err := runQuick(romPath, "4K", "free", false, false)
	if err == nil {
		t.Fatal("expected an error (EnvironmentCall halts the run), got nil")
	}
}

func TestRunQuickMissingROM(t *testing.T) {
	err := runQuick(filepath.Join(t.TempDir(), "missing.bin"), "4K", "free", false, false)
	if err == nil {
		t.Fatal("expected an error for a missing ROM file")
	}
}

func TestRunQuickInvalidMemorySpec(t *testing.T) {
	romPath := writeROM(t, []uint32{0x00000073})
	err := runQuick(romPath, "not-a-size", "free", false, false)
	if err == nil {
		t.Fatal("expected an error for an invalid memory specification")
	}
}

func TestNewRootCmdWiring(t *testing.T) {
	root := newRootCmd()
	sub, _, err := root.Find([]string{"run-quick"})
	if err != nil {
		t.Fatalf("expected run-quick subcommand to be registered: %v", err)
	}
	for _, name := range []string{"memory", "clock", "tui", "verbose"} {
		if sub.Flags().Lookup(name) == nil {
			t.Errorf("run-quick missing expected flag %q", name)
		}
	}
}
