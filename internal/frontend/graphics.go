package frontend

import "github.com/devonmarsh/octastep/internal/kernel"

// Pixel is an (R, G, B, A) color quadruple.
type Pixel struct {
	R, G, B, A uint8
}

// Frame is a fully rendered video frame: width*height pixels, row-major.
type Frame struct {
	Width, Height int
	Data          []Pixel
}

// NewFrame allocates a black, fully opaque frame of the given dimensions.
func NewFrame(width, height int) Frame {
	data := make([]Pixel, width*height)
	for i := range data {
		data[i] = Pixel{A: 255}
	}
	return Frame{Width: width, Height: height, Data: data}
}

// frameChannelCapacity is the fixed capacity of every FrameChannel, per the
// data model: bounded, drop-oldest, no backpressure.
const frameChannelCapacity = 20

// FrameSender pushes timestamped frames onto a FrameChannel. Safe for use
// from the backend's step loop.
type FrameSender struct {
	queue *kernel.ClockedRingbuffer[Frame]
}

// Add pushes a frame produced at clock.
func (s *FrameSender) Add(clock kernel.Instant, frame Frame) {
	s.queue.PushBack(clock, frame)
}

// FrameReceiver pulls frames off a FrameChannel. Safe for use from a
// frontend's own render loop, on another goroutine than the backend.
type FrameReceiver struct {
	maxWidth, maxHeight int
	queue               *kernel.ClockedRingbuffer[Frame]
}

// MaxSize returns the largest frame dimensions this receiver will ever
// deliver (the CHIP-8/SUPER-CHIP display resolution).
func (r *FrameReceiver) MaxSize() (width, height int) {
	return r.maxWidth, r.maxHeight
}

// Latest drops every buffered frame but the most recent, returning it.
func (r *FrameReceiver) Latest() (kernel.Instant, Frame, bool) {
	c, ok := r.queue.DrainAndPopLatest()
	return c.Clock, c.Value, ok
}

// BuildFrameChannel creates a paired FrameSender/FrameReceiver sized for
// width x height frames.
func BuildFrameChannel(width, height int) (*FrameSender, *FrameReceiver) {
	queue := kernel.NewClockedRingbuffer[Frame](frameChannelCapacity)
	return &FrameSender{queue: queue}, &FrameReceiver{maxWidth: width, maxHeight: height, queue: queue}
}
