package frontend

import "github.com/devonmarsh/octastep/internal/kernel"

const textChannelCapacity = 20

// TextSender pushes timestamped diagnostic lines onto a TextChannel. The
// CPU uses this for trace/breakpoint-style messages instead of writing to
// stdout directly.
type TextSender struct {
	queue *kernel.ClockedRingbuffer[string]
}

// Add pushes a diagnostic line produced at clock.
func (s *TextSender) Add(clock kernel.Instant, line string) {
	s.queue.PushBack(clock, line)
}

// TextReceiver pulls diagnostic lines off a TextChannel.
type TextReceiver struct {
	queue *kernel.ClockedRingbuffer[string]
}

// Pop removes and returns the oldest buffered line.
func (r *TextReceiver) Pop() (kernel.Instant, string, bool) {
	c, ok := r.queue.PopFront()
	return c.Clock, c.Value, ok
}

// Latest drops every buffered line but the most recent, returning it.
func (r *TextReceiver) Latest() (kernel.Instant, string, bool) {
	c, ok := r.queue.DrainAndPopLatest()
	return c.Clock, c.Value, ok
}

// IsEmpty reports whether the channel currently holds no lines.
func (r *TextReceiver) IsEmpty() bool {
	return r.queue.IsEmpty()
}

// BuildTextChannel creates a paired TextSender/TextReceiver.
func BuildTextChannel() (*TextSender, *TextReceiver) {
	queue := kernel.NewClockedRingbuffer[string](textChannelCapacity)
	return &TextSender{queue: queue}, &TextReceiver{queue: queue}
}
