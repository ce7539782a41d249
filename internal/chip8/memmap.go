package chip8

import "github.com/devonmarsh/octastep/internal/kernel"

// CHIP-8 memory map, per §4.5: a reserved interpreter scratch region
// holding the font set, a two-byte timer window, and program RAM from
// 0x200 through the top of the address space.
const (
	interpreterBase kernel.MemoryAddress = 0x000
	interpreterSize kernel.MemorySize    = 0x050

	fontBase kernel.MemoryAddress = 0x050

	timerBase kernel.MemoryAddress = 0x100
	dtTimer   kernel.MemoryAddress = timerBase
	stTimer   kernel.MemoryAddress = timerBase + 1
	timerSize kernel.MemorySize    = 2

	ramBase    kernel.MemoryAddress = 0x200
	ramTop     kernel.MemoryAddress = 0xFFF
	ramSize    kernel.MemorySize    = ramTop - ramBase
	maxROMSize                      = int(ramSize)

	// frameWidth and frameHeight are the CHIP-8 display dimensions. The
	// frame buffer never grows for SUPER-CHIP in this implementation: the
	// spec's DRW algorithm is specified against the 64x32 grid regardless
	// of platform profile.
	frameWidth  = 64
	frameHeight = 32
)
