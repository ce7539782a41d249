// Package pixelui is a demo frontend: a desktop window, a beep speaker, and
// a keyboard input pump, wired to the emulation core through the frontend
// collaborator contract. It is the optional, replaceable shell around the
// core — the core never imports this package.
package pixelui

import (
	"fmt"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/devonmarsh/octastep/internal/frontend"
)

const (
	screenWidth  float64 = 1024
	screenHeight float64 = 768
)

// keyMap translates the keys a pixelgl window reports into the frontend's
// keyboard vocabulary. Only the letters and digits a keypad mapping could
// plausibly need are listed.
var keyMap = map[pixelgl.Button]frontend.KeyboardKey{
	pixelgl.Key1: frontend.KeyNumber1, pixelgl.Key2: frontend.KeyNumber2,
	pixelgl.Key3: frontend.KeyNumber3, pixelgl.Key4: frontend.KeyNumber4,
	pixelgl.Key5: frontend.KeyNumber5, pixelgl.Key6: frontend.KeyNumber6,
	pixelgl.Key7: frontend.KeyNumber7, pixelgl.Key8: frontend.KeyNumber8,
	pixelgl.Key9: frontend.KeyNumber9, pixelgl.Key0: frontend.KeyNumber0,
	pixelgl.KeyQ: frontend.KeyQ, pixelgl.KeyW: frontend.KeyW,
	pixelgl.KeyE: frontend.KeyE, pixelgl.KeyR: frontend.KeyR,
	pixelgl.KeyA: frontend.KeyA, pixelgl.KeyS: frontend.KeyS,
	pixelgl.KeyD: frontend.KeyD, pixelgl.KeyF: frontend.KeyF,
	pixelgl.KeyY: frontend.KeyY, pixelgl.KeyX: frontend.KeyX,
	pixelgl.KeyC: frontend.KeyC, pixelgl.KeyV: frontend.KeyV,
}

// Window is a desktop frontend.Frontend backed by a pixelgl window, a beep
// speaker, and a polling keyboard input pump.
type Window struct {
	win *pixelgl.Window

	frameReceiver *frontend.FrameReceiver
	audioReceiver *frontend.AudioReceiver
	inputSender   *frontend.InputSender
	textReceiver  *frontend.TextReceiver

	keysDown map[pixelgl.Button]bool
}

// NewWindow creates and opens a pixelgl window titled title.
func NewWindow(title string) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, screenWidth, screenHeight),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("pixelui: creating window: %w", err)
	}
	return &Window{win: w, keysDown: make(map[pixelgl.Button]bool)}, nil
}

// RegisterGraphicsReceiver implements frontend.Frontend.
func (w *Window) RegisterGraphicsReceiver(receiver *frontend.FrameReceiver) error {
	w.frameReceiver = receiver
	return nil
}

// RegisterAudioReceiver implements frontend.Frontend, starting a speaker
// stream that drains receiver as fast as the core produces samples.
func (w *Window) RegisterAudioReceiver(receiver *frontend.AudioReceiver) error {
	w.audioReceiver = receiver
	sampleRate := beep.SampleRate(receiver.SampleRate())
	bufferSize := sampleRate.N(audioBufferDuration)
	if err := speaker.Init(sampleRate, bufferSize); err != nil {
		return fmt.Errorf("pixelui: initializing speaker: %w", err)
	}
	speaker.Play(newReceiverStreamer(receiver))
	return nil
}

// RegisterInputSender implements frontend.Frontend.
func (w *Window) RegisterInputSender(sender *frontend.InputSender) error {
	w.inputSender = sender
	return nil
}

// RegisterTextReceiver implements frontend.Frontend.
func (w *Window) RegisterTextReceiver(receiver *frontend.TextReceiver) error {
	w.textReceiver = receiver
	return nil
}

// Closed reports whether the user has closed the window.
func (w *Window) Closed() bool {
	return w.win.Closed()
}

// Update pumps input, drains any diagnostic text to stdout, renders the
// latest available frame, and processes the window's event loop. It should
// be called once per host frame.
func (w *Window) Update() {
	w.pumpInput()
	w.drainText()
	w.render()
}

func (w *Window) pumpInput() {
	if w.inputSender == nil {
		return
	}
	for button, key := range keyMap {
		down := w.win.Pressed(button)
		if down == w.keysDown[button] {
			continue
		}
		w.keysDown[button] = down
		state := frontend.Released
		if down {
			state = frontend.Pressed
		}
		w.inputSender.Add(frontend.InputEvent{Key: key, State: state})
	}
	w.win.UpdateInput()
}

func (w *Window) drainText() {
	if w.textReceiver == nil {
		return
	}
	for {
		_, line, ok := w.textReceiver.Pop()
		if !ok {
			return
		}
		fmt.Println(line)
	}
}

func (w *Window) render() {
	if w.frameReceiver == nil {
		w.win.Update()
		return
	}
	_, frame, ok := w.frameReceiver.Latest()
	if !ok {
		w.win.Update()
		return
	}

	w.win.Clear(colornames.Black)
	draw := imdraw.New(nil)
	draw.Color = pixel.RGB(1, 1, 1)
	cellWidth := screenWidth / float64(frame.Width)
	cellHeight := screenHeight / float64(frame.Height)

	for row := 0; row < frame.Height; row++ {
		for col := 0; col < frame.Width; col++ {
			px := frame.Data[row*frame.Width+col]
			if px.R == 0 && px.G == 0 && px.B == 0 {
				continue
			}
			flippedRow := float64(frame.Height - 1 - row)
			draw.Push(pixel.V(cellWidth*float64(col), cellHeight*flippedRow))
			draw.Push(pixel.V(cellWidth*float64(col)+cellWidth, cellHeight*flippedRow+cellHeight))
			draw.Rectangle(0)
		}
	}

	draw.Draw(w.win)
	w.win.Update()
}
