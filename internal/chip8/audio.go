package chip8

import (
	"math"

	"github.com/devonmarsh/octastep/internal/frontend"
	"github.com/devonmarsh/octastep/internal/kernel"
)

// AudioSampleRate is the fixed sample rate the Audio component generates.
const AudioSampleRate = 48_000.0

// audioClockSpeedNS is the per-sample step period at AudioSampleRate.
const audioClockSpeedNS = 1_000_000_000 / uint64(AudioSampleRate)

// audioTone is the frequency, in Hz, of the sine tone played while the
// sound timer is non-zero.
const audioTone = 440.0

// Audio is the 48kHz sine-wave sample generator gated by the sound timer.
// It reads ST off the bus every step so it observes the same timer the CPU
// and Timer component do, and pushes one (clock, sample) pair onto its
// sender per step.
type Audio struct {
	kernel.BaseComponent
	sampleClock float64
	sender      *frontend.AudioSender
}

// NewAudio creates an Audio component that writes samples to sender.
func NewAudio(sender *frontend.AudioSender) *Audio {
	return &Audio{sender: sender}
}

// Step implements kernel.Steppable.
func (a *Audio) Step(backend *kernel.Backend) (kernel.Duration, error) {
	st, err := backend.Bus().ReadU8(stTimer)
	if err != nil {
		return 0, err
	}

	a.sampleClock = math.Mod(a.sampleClock+1.0, AudioSampleRate)

	var sample frontend.Sample
	if st > 0 {
		sample = frontend.Sample(math.Sin(2 * math.Pi * a.sampleClock * audioTone / AudioSampleRate))
	}

	if a.sender != nil {
		a.sender.Add(backend.Clock(), sample)
	}

	return kernel.DurationFromNanos(audioClockSpeedNS), nil
}

// AsSteppable implements kernel.Transmutable.
func (a *Audio) AsSteppable() kernel.Steppable {
	return a
}
