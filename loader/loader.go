// Package loader reads a raw RISC-V binary from disk into a boot image.
//
// Unlike an assembler-backed loader, this one has no symbols, segments, or
// directives to resolve: the binary is already machine code, little-endian
// 32-bit instructions at natural alignment, meant to be mapped starting at
// address 0x00000000 and executed from offset 0.
package loader

import (
	"fmt"
	"os"

	"rv32emu/core"
)

// LoadROM reads the file at path and wraps its contents as a boot image.
func LoadROM(path string) (*core.ROM, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-specified ROM path
	if err != nil {
		return nil, fmt.Errorf("failed to read ROM %q: %w", path, err)
	}
	return core.NewROM(data), nil
}
