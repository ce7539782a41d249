package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devonmarsh/octastep/internal/frontend"
)

func TestKeypadDefaultsToReleased(t *testing.T) {
	var k KeypadState
	assert.Equal(t, frontend.Released, k.GetStateForButton(0x5))
}

func TestKeypadTracksPressAndRelease(t *testing.T) {
	var k KeypadState
	k.ParseInputEvent(frontend.InputEvent{Key: frontend.KeyQ, State: frontend.Pressed})
	assert.Equal(t, frontend.Pressed, k.GetStateForButton(0x4))

	k.ParseInputEvent(frontend.InputEvent{Key: frontend.KeyQ, State: frontend.Released})
	assert.Equal(t, frontend.Released, k.GetStateForButton(0x4))
}

func TestKeypadFullKeyMapMatchesSpecTable(t *testing.T) {
	table := map[frontend.KeyboardKey]Button{
		frontend.KeyNumber1: 0x1, frontend.KeyNumber2: 0x2,
		frontend.KeyNumber3: 0x3, frontend.KeyNumber4: 0xC,
		frontend.KeyQ: 0x4, frontend.KeyW: 0x5, frontend.KeyE: 0x6, frontend.KeyR: 0xD,
		frontend.KeyA: 0x7, frontend.KeyS: 0x8, frontend.KeyD: 0x9, frontend.KeyF: 0xE,
		frontend.KeyY: 0xA, frontend.KeyX: 0x0, frontend.KeyC: 0xB, frontend.KeyV: 0xF,
	}
	for key, button := range table {
		var k KeypadState
		k.ParseInputEvent(frontend.InputEvent{Key: key, State: frontend.Pressed})
		assert.Equal(t, frontend.Pressed, k.GetStateForButton(button), "key %v should map to button %X", key, button)
	}
}

func TestKeypadIgnoresUnmappedKeys(t *testing.T) {
	var k KeypadState
	k.ParseInputEvent(frontend.InputEvent{Key: frontend.KeyG, State: frontend.Pressed})
	for button := Button(0); button <= 0xF; button++ {
		assert.Equal(t, frontend.Released, k.GetStateForButton(button))
	}
}

func TestKeypadOutOfRangeButtonIsReleased(t *testing.T) {
	var k KeypadState
	assert.Equal(t, frontend.Released, k.GetStateForButton(0x10))
}
