package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devonmarsh/octastep/internal/frontend"
	"github.com/devonmarsh/octastep/internal/kernel"
)

func TestCreateBackendLoadsROMAndFont(t *testing.T) {
	rom := []byte{0x00, 0xE0, 0x12, 0x00} // CLS; JMP 0x200
	backend, err := CreateBackend(frontend.Null{}, Options{ROM: rom})
	require.NoError(t, err)

	opcode, err := backend.Bus().ReadU16BE(kernel.MemoryAddress(ramBase))
	require.NoError(t, err)
	assert.Equal(t, uint16(0x00E0), opcode)

	fontByte, err := backend.Bus().ReadU8(fontBase)
	require.NoError(t, err)
	assert.Equal(t, fontSet[0], fontByte)
}

func TestCreateBackendRejectsOversizedROM(t *testing.T) {
	rom := make([]byte, maxROMSize+1)
	_, err := CreateBackend(frontend.Null{}, Options{ROM: rom})
	assert.Error(t, err)
}

func TestCreateBackendRunsOneFrameWithoutError(t *testing.T) {
	rom := []byte{0x00, 0xE0} // CLS, then falls through to zeroed memory (0NNN -> jumps to 0)
	backend, err := CreateBackend(frontend.Null{}, Options{ROM: rom})
	require.NoError(t, err)

	require.NoError(t, backend.RunFor(kernel.DurationFromNanos(vblankPeriodNS)))
}

func TestFontSetLength(t *testing.T) {
	assert.Len(t, fontSet, 80)
}

// ibmLogoROM follows the instruction sequence of the classic IBM-logo
// startup program: draw I, B, and M glyphs at increasing X offsets (the M
// split across two overlapping DRW calls, the real program's trick for an
// 8-wide sprite to reach past a single byte's width) then fall into a
// self-jump. The sprite bytes are authored for this test rather than copied
// from the original binary. 132 bytes, matching the canonical program's
// length.
var ibmLogoROM = []byte{
	0x00, 0xE0, // CLS
	0xA2, 0x2A, // LD I, 0x22A
	0x60, 0x0C, // LD V0, 0x0C
	0x61, 0x08, // LD V1, 0x08
	0xD0, 0x1F, // DRW V0, V1, 0xF  (I @ x=12)
	0x70, 0x09, // ADD V0, 0x09
	0xA2, 0x39, // LD I, 0x239
	0xD0, 0x1F, // DRW V0, V1, 0xF  (B @ x=21)
	0xA2, 0x48, // LD I, 0x248
	0x70, 0x08, // ADD V0, 0x08
	0xD0, 0x1F, // DRW V0, V1, 0xF  (M left half @ x=29)
	0x70, 0x04, // ADD V0, 0x04
	0xA2, 0x57, // LD I, 0x257
	0xD0, 0x1F, // DRW V0, V1, 0xF  (M right half @ x=33)
	0x70, 0x08, // ADD V0, 0x08
	0xA2, 0x66, // LD I, 0x266
	0xD0, 0x1F, // DRW V0, V1, 0xF  (blank @ x=41)
	0x70, 0x08, // ADD V0, 0x08
	0xA2, 0x75, // LD I, 0x275
	0xD0, 0x1F, // DRW V0, V1, 0xF  (blank @ x=49)
	0x12, 0x28, // JP 0x228 (idle loop)

	// sprite data, 15 bytes each, addressed by the LD I instructions above
	0xFF, 0xFF, 0xFF, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0xFF, 0xFF, 0xFF, // I
	0xFE, 0xC6, 0xC6, 0xC6, 0xFE, 0xC6, 0xC6, 0xC6, 0xFE, 0xC6, 0xC6, 0xC6, 0xC6, 0xC6, 0xFE, // B
	0xC0, 0xC0, 0xE0, 0xE0, 0xD0, 0xD0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, // M left
	0x03, 0x03, 0x07, 0x07, 0x0B, 0x0B, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03, // M right
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // blank
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // blank
}

func TestIBMLogoGoldenFrame(t *testing.T) {
	require.Len(t, ibmLogoROM, 132)

	backend, err := CreateBackend(frontend.Null{}, Options{ROM: ibmLogoROM})
	require.NoError(t, err)

	require.NoError(t, backend.RunFor(kernel.DurationFromNanos(1_000_000_000)))

	component, err := backend.Component("cpu")
	require.NoError(t, err)
	cpu, ok := component.Impl().(*CPU)
	require.True(t, ok)

	state := cpu.State()
	assert.Equal(t, byte(0), state.V[0xF], "no sprite in this program should ever collide")

	litCount := 0
	for _, on := range state.FrameBuffer {
		if on {
			litCount++
		}
	}
	assert.Equal(t, 206, litCount, "total lit pixels should equal the sum of sprite bits, since nothing collides")

	at := func(x, y int) bool { return state.FrameBuffer[y*frameWidth+x] }

	// I: full-width top bar, narrow middle stroke.
	assert.True(t, at(12, 8), "I top bar")
	assert.True(t, at(19, 8), "I top bar")
	assert.True(t, at(15, 12), "I middle stroke")
	assert.False(t, at(12, 12), "I middle stroke is narrower than the bars")

	// B: left edge present on every row.
	assert.True(t, at(21, 8), "B left edge")
	assert.True(t, at(21, 15), "B left edge")

	// M, split across two overlapping DRW calls: left legs then right legs,
	// with nothing bleeding into the overlap columns from either half.
	assert.True(t, at(29, 8), "M left leg")
	assert.False(t, at(35, 8), "overlap column stays dark at the top of the M")
	assert.True(t, at(39, 8), "M right leg")

	// Well outside every glyph's bounding box, the background stays dark.
	assert.False(t, at(0, 0))
	assert.False(t, at(63, 31))
}
