package frontend

import "github.com/devonmarsh/octastep/internal/kernel"

// Sample is a single audio sample in [-1.0, 1.0].
type Sample = float32

// AudioSender pushes timestamped samples onto an AudioChannel at
// SampleRate.
type AudioSender struct {
	sampleRate float64
	queue      *kernel.ClockedRingbuffer[Sample]
}

// Add pushes a sample produced at clock.
func (s *AudioSender) Add(clock kernel.Instant, sample Sample) {
	s.queue.PushBack(clock, sample)
}

// SampleRate returns the declared sample rate of the channel, in Hz.
func (s *AudioSender) SampleRate() float64 {
	return s.sampleRate
}

// Len reports the number of buffered samples.
func (s *AudioSender) Len() int {
	return s.queue.Len()
}

// Capacity reports the channel's fixed buffer size.
func (s *AudioSender) Capacity() int {
	return s.queue.Capacity()
}

// AudioReceiver pulls samples off an AudioChannel.
type AudioReceiver struct {
	sampleRate float64
	queue      *kernel.ClockedRingbuffer[Sample]
}

// Pop removes and returns the oldest buffered sample.
func (r *AudioReceiver) Pop() (kernel.Instant, Sample, bool) {
	c, ok := r.queue.PopFront()
	return c.Clock, c.Value, ok
}

// PopRange removes and returns the samples in [start, end).
func (r *AudioReceiver) PopRange(start, end int) []kernel.Clocked[Sample] {
	return r.queue.DrainAndPopRange(start, end)
}

// Latest drops every buffered sample but the most recent, returning it.
func (r *AudioReceiver) Latest() (kernel.Instant, Sample, bool) {
	c, ok := r.queue.DrainAndPopLatest()
	return c.Clock, c.Value, ok
}

// SampleRate returns the declared sample rate of the channel, in Hz.
func (r *AudioReceiver) SampleRate() float64 {
	return r.sampleRate
}

// Len reports the number of buffered samples.
func (r *AudioReceiver) Len() int {
	return r.queue.Len()
}

// Capacity reports the channel's fixed buffer size.
func (r *AudioReceiver) Capacity() int {
	return r.queue.Capacity()
}

// BuildAudioChannel creates a paired AudioSender/AudioReceiver for a stream
// at sampleRate Hz, bounded to bufferSize samples.
func BuildAudioChannel(sampleRate float64, bufferSize int) (*AudioSender, *AudioReceiver) {
	queue := kernel.NewClockedRingbuffer[Sample](bufferSize)
	return &AudioSender{sampleRate: sampleRate, queue: queue},
		&AudioReceiver{sampleRate: sampleRate, queue: queue}
}
