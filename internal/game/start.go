package game

import (
	"fmt"
	"image/color"
)

// fadeFrames is the length of the start screen fade in and fade out.
const fadeFrames = 30

// StartPhase is the start screen's state.
type StartPhase int

const (
	StartFadeIn StartPhase = iota
	StartWaiting
	StartFadeOut
)

func (p StartPhase) String() string {
	switch p {
	case StartFadeIn:
		return "fade_in"
	case StartWaiting:
		return "waiting"
	case StartFadeOut:
		return "fade_out"
	default:
		return "unknown"
	}
}

// StartScreen fades in from black, waits for start, then fades out to white.
// Frame/Frames only mean something while fading.
type StartScreen struct {
	Phase  StartPhase
	Frame  int
	Frames int
}

// NewStartScreen returns a screen at the first frame of its fade in.
func NewStartScreen() *StartScreen {
	return &StartScreen{Phase: StartFadeIn, Frames: fadeFrames}
}

// Update advances one tick. It returns true on the tick the fade out
// completes, at which point the caller swaps in a fresh battle.
func (s *StartScreen) Update(startPressed bool) bool {
	switch s.Phase {
	case StartFadeIn:
		if s.Frame >= s.Frames {
			s.Phase, s.Frame, s.Frames = StartWaiting, 0, 0
			return false
		}
		s.Frame++
	case StartWaiting:
		if startPressed {
			s.Phase, s.Frame, s.Frames = StartFadeOut, 0, fadeFrames
		}
	case StartFadeOut:
		if s.Frame >= s.Frames {
			return true
		}
		s.Frame++
	}
	return false
}

// Overlay is the full-screen fade colour for the current frame. The second
// result is false when nothing should be drawn.
func (s *StartScreen) Overlay() (color.RGBA, bool) {
	if s.Frames <= 0 {
		return color.RGBA{}, false
	}
	switch s.Phase {
	case StartFadeIn:
		a := uint8(255 * (s.Frames - s.Frame) / s.Frames)
		return color.RGBA{A: a}, a > 0
	case StartFadeOut:
		// Premultiplied: white at alpha a is (a,a,a,a).
		a := uint8(255 * s.Frame / s.Frames)
		return color.RGBA{R: a, G: a, B: a, A: a}, a > 0
	}
	return color.RGBA{}, false
}

func (s *StartScreen) String() string {
	if s.Phase == StartWaiting {
		return s.Phase.String()
	}
	return fmt.Sprintf("%s(%d/%d)", s.Phase, s.Frame, s.Frames)
}
