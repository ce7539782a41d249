package chip8

import "github.com/devonmarsh/octastep/internal/kernel"

// timerClockSpeedNS is the 60Hz period timers run at, in nanoseconds.
const timerClockSpeedNS = 1_000_000_000 / 60

// Timer is the 60Hz delay/sound timer pair, mounted on the bus at
// DT_TIMER/ST_TIMER (0x100-0x101). Each step decrements both registers,
// saturating at zero, and requests another invocation 1/60s later.
type Timer struct {
	kernel.BaseComponent
	dt, st byte
}

// NewTimer creates a Timer with DT and ST both zero.
func NewTimer() *Timer {
	return &Timer{}
}

// Size implements kernel.Addressable: two bytes, DT then ST.
func (t *Timer) Size() kernel.MemorySize {
	return timerSize
}

// Read implements kernel.Addressable.
func (t *Timer) Read(address kernel.MemoryAddress, buf []byte) error {
	if address+kernel.MemoryAddress(len(buf)) > t.Size() {
		return kernel.NewEmulatorError(kernel.MemoryAccessOutOfBounds,
			"timer register read %#x-%#x out of range", address, address+kernel.MemoryAddress(len(buf)))
	}
	regs := [2]byte{t.dt, t.st}
	copy(buf, regs[address:address+kernel.MemoryAddress(len(buf))])
	return nil
}

// Write implements kernel.Addressable.
func (t *Timer) Write(address kernel.MemoryAddress, buf []byte) error {
	if address+kernel.MemoryAddress(len(buf)) > t.Size() {
		return kernel.NewEmulatorError(kernel.MemoryAccessOutOfBounds,
			"timer register write %#x-%#x out of range", address, address+kernel.MemoryAddress(len(buf)))
	}
	regs := [2]*byte{&t.dt, &t.st}
	for i, b := range buf {
		*regs[int(address)+i] = b
	}
	return nil
}

// Step decrements DT and ST (each saturating at zero) and requests the next
// invocation 1/60s later.
func (t *Timer) Step(backend *kernel.Backend) (kernel.Duration, error) {
	if t.dt > 0 {
		t.dt--
	}
	if t.st > 0 {
		t.st--
	}
	return kernel.DurationFromNanos(timerClockSpeedNS), nil
}

// AsAddressable implements kernel.Transmutable.
func (t *Timer) AsAddressable() kernel.Addressable {
	return t
}

// AsSteppable implements kernel.Transmutable.
func (t *Timer) AsSteppable() kernel.Steppable {
	return t
}
