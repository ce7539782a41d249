// Package chip8 assembles the kernel components — CPU, Timer, Audio, and
// the memory map — into a running CHIP-8/SUPER-CHIP backend, wired to a
// host-supplied frontend.
package chip8

import (
	"math/rand"

	"github.com/devonmarsh/octastep/internal/frontend"
	"github.com/devonmarsh/octastep/internal/kernel"
)

// Options configures a freshly created backend.
type Options struct {
	// ROM is the program image, loaded at 0x200. It must not exceed
	// maxROMSize bytes.
	ROM []byte

	// Platform selects the quirk profile the CPU runs with.
	Platform Platform

	// RNG drives CXNN. When nil, a backend gets its own
	// non-deterministic source.
	RNG *rand.Rand

	// AudioBufferSize bounds the audio channel's ring buffer. When zero,
	// a default of one second at AudioSampleRate is used.
	AudioBufferSize int

	// Trace, when true, wires the CPU's diagnostic text sender into the
	// frontend's text channel. A frontend that declines text support
	// simply receives no trace output.
	Trace bool
}

const defaultAudioBufferSeconds = 1

// CreateBackend builds a Backend implementing Options.Platform's quirk
// profile, loads Options.ROM at the program entry point, and registers the
// collaborator channels (graphics, audio, input, and, only when
// Options.Trace is set, text) with the given frontend. A frontend that declines a channel (returning a *frontend.Error)
// is tolerated except for graphics and input, which every usable frontend
// is expected to support.
func CreateBackend(front frontend.Frontend, options Options) (*kernel.Backend, error) {
	if len(options.ROM) > maxROMSize {
		return nil, kernel.NewError("rom of %d bytes exceeds maximum of %d bytes", len(options.ROM), maxROMSize)
	}

	backend := kernel.NewBackend()

	lowMemory := kernel.NewZeroedMemoryBlock(uint(timerBase))
	if err := lowMemory.Write(fontBase, fontSet[:]); err != nil {
		return nil, err
	}
	if err := backend.AddAddressableComponent("lowmem", interpreterBase, kernel.NewComponent(lowMemory)); err != nil {
		return nil, err
	}

	timer := NewTimer()
	if err := backend.AddAddressableComponent("timer", timerBase, kernel.NewComponent(timer)); err != nil {
		return nil, err
	}

	ram := kernel.NewZeroedMemoryBlock(ramSize)
	if err := ram.Write(0, options.ROM); err != nil {
		return nil, err
	}
	if err := backend.AddAddressableComponent("ram", ramBase, kernel.NewComponent(ram)); err != nil {
		return nil, err
	}

	frameSender, frameReceiver := frontend.BuildFrameChannel(frameWidth, frameHeight)
	if err := front.RegisterGraphicsReceiver(frameReceiver); err != nil {
		return nil, err
	}

	inputSender, inputReceiver := frontend.BuildInputChannel()
	if err := front.RegisterInputSender(inputSender); err != nil {
		return nil, err
	}

	var textSender *frontend.TextSender
	if options.Trace {
		sender, receiver := frontend.BuildTextChannel()
		if err := front.RegisterTextReceiver(receiver); err == nil {
			textSender = sender
		}
	}

	audioBufferSize := options.AudioBufferSize
	if audioBufferSize == 0 {
		audioBufferSize = int(AudioSampleRate * defaultAudioBufferSeconds)
	}
	audioSender, audioReceiver := frontend.BuildAudioChannel(AudioSampleRate, audioBufferSize)
	if err := front.RegisterAudioReceiver(audioReceiver); err == nil {
		audio := NewAudio(audioSender)
		backend.AddComponent("audio", kernel.NewComponent(audio))
	}

	cpu := NewCPU(QuirksFor(options.Platform), options.RNG, frameSender, inputReceiver, textSender)
	backend.AddComponent("cpu", kernel.NewComponent(cpu))

	return backend, nil
}
