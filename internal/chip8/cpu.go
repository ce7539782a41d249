package chip8

import (
	"fmt"
	"math/rand"

	"github.com/devonmarsh/octastep/internal/frontend"
	"github.com/devonmarsh/octastep/internal/kernel"
)

// clockSpeedNS is the CPU's nominal step period: 700 instructions/second.
const clockSpeedNS = 1_000_000_000 / 700

// vblankPeriodNS is the synthetic 60Hz boundary DRW gates on when a
// platform profile requires it.
const vblankPeriodNS = 1_000_000_000 / 60

// Quirks selects the six behavioral divergences between CHIP-8 and
// SUPER-CHIP. See §4.8 of the specification for the effect of each.
type Quirks struct {
	ShiftTakesXInsteadOfY       bool
	LoadStoreLeavesIUnmodified  bool
	LoadStoreModifiesIOneLess   bool
	JumpUsesX                   bool
	DrawNotWaitingForVBlank     bool
	LogicLeavesFlagUnmodified   bool
}

// Platform selects a named quirk profile.
type Platform int

const (
	// PlatformCHIP8 is the original interpreter's behavior: all quirks
	// false.
	PlatformCHIP8 Platform = iota
	// PlatformSUPERCHIP enables the SUPER-CHIP divergences.
	PlatformSUPERCHIP
)

// QuirksFor returns the canonical Quirks for a named platform.
func QuirksFor(platform Platform) Quirks {
	switch platform {
	case PlatformSUPERCHIP:
		return Quirks{
			ShiftTakesXInsteadOfY:      true,
			LoadStoreLeavesIUnmodified: true,
			LoadStoreModifiesIOneLess:  false,
			JumpUsesX:                  true,
			DrawNotWaitingForVBlank:    true,
			LogicLeavesFlagUnmodified:  true,
		}
	default:
		return Quirks{}
	}
}

// CPUState is the complete architectural state of the interpreter.
type CPUState struct {
	V     [16]byte
	I     uint16
	PC    uint16
	SP    uint8
	Stack [16]uint16

	Paused bool

	// WaitingForKey holds the destination register for FX0A while the
	// CPU blocks on a key release; nil when not waiting.
	WaitingForKey *uint8

	WaitingForVBlank bool

	FrameBuffer [frameWidth * frameHeight]bool

	Keypad KeypadState
}

// newCPUState returns a CPUState with PC at the canonical program entry
// point and everything else zeroed.
func newCPUState() CPUState {
	return CPUState{PC: uint16(ramBase)}
}

// CPU is the fetch/decode/execute interpreter. It drains pending input each
// step, executes at most one instruction when not paused or key-waiting,
// and gates drawing on the virtual 60Hz VBlank boundary unless the active
// quirk profile disables that gate.
type CPU struct {
	kernel.BaseComponent

	state  CPUState
	quirks Quirks

	rng *rand.Rand

	frameSender   *frontend.FrameSender
	inputReceiver *frontend.InputReceiver
	textSender    *frontend.TextSender
}

// NewCPU creates a CPU with fresh state for the given quirk profile. rng
// drives CXNN; if nil, outputs are non-deterministic (seeded from the
// runtime's default source).
func NewCPU(quirks Quirks, rng *rand.Rand, frameSender *frontend.FrameSender, inputReceiver *frontend.InputReceiver, textSender *frontend.TextSender) *CPU {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &CPU{
		state:         newCPUState(),
		quirks:        quirks,
		rng:           rng,
		frameSender:   frameSender,
		inputReceiver: inputReceiver,
		textSender:    textSender,
	}
}

// State exposes the CPU's architectural state for testing and inspection.
func (c *CPU) State() *CPUState {
	return &c.state
}

// Step implements kernel.Steppable: drain input, optionally fetch/decode/
// execute one instruction, then report the duration until the CPU next
// wants to run.
func (c *CPU) Step(backend *kernel.Backend) (kernel.Duration, error) {
	c.drainInput()

	var execErr error
	if !c.state.Paused && c.state.WaitingForKey == nil {
		execErr = c.fetchDecodeExecute(backend)
	}

	if c.state.WaitingForVBlank && !c.quirks.DrawNotWaitingForVBlank {
		delta := nextVBlankBoundary(backend.Clock())
		c.state.WaitingForVBlank = false
		return delta, execErr
	}

	return kernel.DurationFromNanos(clockSpeedNS), execErr
}

// nextVBlankBoundary returns the duration from now until the next 60Hz
// boundary strictly greater than now.
func nextVBlankBoundary(now kernel.Instant) kernel.Duration {
	period := uint64(kernel.DurationFromNanos(vblankPeriodNS))
	cur := uint64(now)
	next := (cur/period + 1) * period
	return kernel.Duration(next - cur)
}

// drainInput empties the input channel, updating keypad state, and
// resolves a pending FX0A wait the moment a mapped key is released.
func (c *CPU) drainInput() {
	if c.inputReceiver == nil {
		return
	}
	for {
		event, ok := c.inputReceiver.Pop()
		if !ok {
			return
		}
		c.state.Keypad.ParseInputEvent(event)

		if c.state.WaitingForKey != nil && event.State == frontend.Released {
			if button, mapped := keyToButton[event.Key]; mapped {
				*c.state.WaitingForKey = byte(button)
				c.state.WaitingForKey = nil
			}
		}
	}
}

func (c *CPU) fetchDecodeExecute(backend *kernel.Backend) error {
	opcode, err := backend.Bus().ReadU16BE(kernel.MemoryAddress(c.state.PC))
	if err != nil {
		return err
	}
	c.trace(backend, "pc=%#04x op=%#04x", c.state.PC, opcode)
	c.state.PC += 2

	return c.execute(backend, opcode)
}

// sendFrame renders the current frame buffer and pushes it, timestamped
// with the backend's current clock.
func (c *CPU) sendFrame(backend *kernel.Backend) {
	if c.frameSender == nil {
		return
	}
	frame := frontend.NewFrame(frameWidth, frameHeight)
	for i, on := range c.state.FrameBuffer {
		if on {
			frame.Data[i] = frontend.Pixel{R: 255, G: 255, B: 255, A: 255}
		}
	}
	c.frameSender.Add(backend.Clock(), frame)
}

func (c *CPU) trace(backend *kernel.Backend, format string, args ...interface{}) {
	if c.textSender == nil {
		return
	}
	c.textSender.Add(backend.Clock(), fmt.Sprintf(format, args...))
}

// AsSteppable implements kernel.Transmutable.
func (c *CPU) AsSteppable() kernel.Steppable {
	return c
}

// AsInspectable implements kernel.Transmutable.
func (c *CPU) AsInspectable() kernel.Inspectable {
	return c
}

// Inspect implements kernel.Inspectable with a compact register dump.
func (c *CPU) Inspect() []string {
	lines := make([]string, 0, 20)
	lines = append(lines, fmt.Sprintf("pc=%#04x i=%#04x sp=%d", c.state.PC, c.state.I, c.state.SP))
	for i, v := range c.state.V {
		lines = append(lines, fmt.Sprintf("v%X=%#02x", i, v))
	}
	return lines
}
