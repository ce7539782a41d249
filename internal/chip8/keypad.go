package chip8

import "github.com/devonmarsh/octastep/internal/frontend"

// Button is a CHIP-8 hex keypad button, 0x0 through 0xF.
type Button uint8

// keyToButton is the QWERTY keyboard layout mapping onto the 16-key hex
// pad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Y X C V      A 0 B F
var keyToButton = map[frontend.KeyboardKey]Button{
	frontend.KeyNumber1: 0x1,
	frontend.KeyNumber2: 0x2,
	frontend.KeyNumber3: 0x3,
	frontend.KeyNumber4: 0xC,
	frontend.KeyQ:       0x4,
	frontend.KeyW:       0x5,
	frontend.KeyE:       0x6,
	frontend.KeyR:       0xD,
	frontend.KeyA:       0x7,
	frontend.KeyS:       0x8,
	frontend.KeyD:       0x9,
	frontend.KeyF:       0xE,
	frontend.KeyY:       0xA,
	frontend.KeyX:       0x0,
	frontend.KeyC:       0xB,
	frontend.KeyV:       0xF,
}

// KeypadState tracks the held/released state of all 16 hex keys. The zero
// value has every button Released, matching the "unknown keys default to
// Released" invariant.
type KeypadState struct {
	buttons [16]frontend.ButtonState
}

// ParseInputEvent updates keypad state from a frontend input event. Events
// for keys with no hex mapping are silently discarded.
func (k *KeypadState) ParseInputEvent(event frontend.InputEvent) {
	if button, ok := keyToButton[event.Key]; ok {
		k.buttons[button] = event.State
	}
}

// GetStateForButton returns the tracked state of button, or Released if it
// has never been observed or button is out of range.
func (k *KeypadState) GetStateForButton(button Button) frontend.ButtonState {
	if button > 0xF {
		return frontend.Released
	}
	return k.buttons[button]
}
