package pixelui

import (
	"time"

	"github.com/faiface/beep"

	"github.com/devonmarsh/octastep/internal/frontend"
)

// audioBufferDuration sizes the speaker's hardware buffer.
const audioBufferDuration = 50 * time.Millisecond

// receiverStreamer adapts a frontend.AudioReceiver to beep.Streamer,
// repeating the last sample heard whenever the core hasn't produced a new
// one yet rather than underrunning into silence.
type receiverStreamer struct {
	receiver *frontend.AudioReceiver
	last     frontend.Sample
}

func newReceiverStreamer(receiver *frontend.AudioReceiver) *receiverStreamer {
	return &receiverStreamer{receiver: receiver}
}

// Stream implements beep.Streamer.
func (s *receiverStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if _, sample, got := s.receiver.Pop(); got {
			s.last = sample
		}
		v := float64(s.last)
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

// Err implements beep.Streamer; this streamer never errors.
func (s *receiverStreamer) Err() error {
	return nil
}
