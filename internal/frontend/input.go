package frontend

import "github.com/devonmarsh/octastep/internal/kernel"

// KeyboardKey is a key on a standard keyboard the frontend can report
// press/release events for: the letters A-Z and the digits 0-9. The CHIP-8
// keypad maps only sixteen of them; events for the rest are discarded.
type KeyboardKey int

const (
	KeyA KeyboardKey = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyNumber0
	KeyNumber1
	KeyNumber2
	KeyNumber3
	KeyNumber4
	KeyNumber5
	KeyNumber6
	KeyNumber7
	KeyNumber8
	KeyNumber9
)

// ButtonState is whether a key is currently held down.
type ButtonState int

const (
	Released ButtonState = iota
	Pressed
)

// InputEvent is a single keyboard observation a frontend pushes onto an
// InputChannel. Keyboard events are the only kind it can describe.
type InputEvent struct {
	Key   KeyboardKey
	State ButtonState
}

const inputChannelCapacity = 20

// InputSender pushes InputEvents onto an InputChannel. Events carry no
// virtual-clock stamp; the CPU consumes them in enqueue order.
type InputSender struct {
	queue *kernel.Ringbuffer[InputEvent]
}

// Add pushes an input event.
func (s *InputSender) Add(event InputEvent) {
	s.queue.PushBack(event)
}

// InputReceiver pulls InputEvents off an InputChannel in enqueue order.
type InputReceiver struct {
	queue *kernel.Ringbuffer[InputEvent]
}

// Pop removes and returns the oldest buffered input event.
func (r *InputReceiver) Pop() (InputEvent, bool) {
	return r.queue.PopFront()
}

// IsEmpty reports whether the channel currently holds no events.
func (r *InputReceiver) IsEmpty() bool {
	return r.queue.IsEmpty()
}

// BuildInputChannel creates a paired InputSender/InputReceiver.
func BuildInputChannel() (*InputSender, *InputReceiver) {
	queue := kernel.NewRingbuffer[InputEvent](inputChannelCapacity)
	return &InputSender{queue: queue}, &InputReceiver{queue: queue}
}
