package battle

import "fmt"

// ButtonStateKind tags the variant held by a ButtonState.
type ButtonStateKind int

const (
	ButtonNeverPressed ButtonStateKind = iota
	ButtonPressed
	ButtonUnpressed
)

func (k ButtonStateKind) String() string {
	switch k {
	case ButtonNeverPressed:
		return "never_pressed"
	case ButtonPressed:
		return "pressed"
	case ButtonUnpressed:
		return "unpressed"
	default:
		return "unknown"
	}
}

// ButtonState is the button's machine value. Elapsed/Max are unused while
// NeverPressed.
type ButtonState struct {
	Kind    ButtonStateKind
	Elapsed int
	Max     int
}

func (s ButtonState) String() string {
	if s.Kind == ButtonNeverPressed {
		return s.Kind.String()
	}
	return fmt.Sprintf("%s(%d/%d)", s.Kind, s.Elapsed, s.Max)
}

// Button is the single objective in the middle of the arena.
type Button struct {
	Cell  CellCoord
	State ButtonState
}

// NewButton places an unpressed button on cell.
func NewButton(cell CellCoord) Button {
	return Button{Cell: cell, State: ButtonState{Kind: ButtonNeverPressed}}
}

// Update advances the button's counter by one tick.
func (b *Button) Update() {
	if b.State.Kind != ButtonNeverPressed {
		b.State.Elapsed++
	}
}
