package core

// Button is a logical game button, abstracted from physical key codes.
// The platform layer decides which terminal keys map to which button.
type Button int

const (
	ButtonLeftArrow Button = iota
	ButtonUpArrow
	ButtonRightArrow
	ButtonDownArrow

	ButtonLeft
	ButtonUp
	ButtonRight
	ButtonDown

	ButtonEnter
	ButtonPause
	ButtonFullscreen

	ButtonCount
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeftArrow:
		return "LeftArrow"
	case ButtonUpArrow:
		return "UpArrow"
	case ButtonRightArrow:
		return "RightArrow"
	case ButtonDownArrow:
		return "DownArrow"
	case ButtonLeft:
		return "Left"
	case ButtonUp:
		return "Up"
	case ButtonRight:
		return "Right"
	case ButtonDown:
		return "Down"
	case ButtonEnter:
		return "Enter"
	case ButtonPause:
		return "Pause"
	case ButtonFullscreen:
		return "Fullscreen"
	default:
		return "Unknown"
	}
}

// buttonState holds one button's level and edge flags for a single tick.
type buttonState struct {
	down    bool
	changed bool
}

// InputSnapshot is the input state for one simulation tick. It is a value
// passed into tick functions; the simulation never reads global input state.
type InputSnapshot struct {
	buttons [ButtonCount]buttonState
}

// IsDown reports whether the button is held this tick.
func (s InputSnapshot) IsDown(b Button) bool {
	if b < 0 || b >= ButtonCount {
		return false
	}
	return s.buttons[b].down
}

// IsPressed reports whether the button went down this tick.
func (s InputSnapshot) IsPressed(b Button) bool {
	if b < 0 || b >= ButtonCount {
		return false
	}
	return s.buttons[b].down && s.buttons[b].changed
}

// IsReleased reports whether the button went up this tick.
func (s InputSnapshot) IsReleased(b Button) bool {
	if b < 0 || b >= ButtonCount {
		return false
	}
	return !s.buttons[b].down && s.buttons[b].changed
}

// SetDown records a level transition for the button. The changed flag is set
// only if the level actually changed, mirroring an edge-triggered event pump.
func (s *InputSnapshot) SetDown(b Button, down bool) {
	if b < 0 || b >= ButtonCount {
		return
	}
	if s.buttons[b].down != down {
		s.buttons[b].changed = true
	}
	s.buttons[b].down = down
}

// Press marks the button as freshly pressed this tick regardless of its
// previous level. Used by the platform layer when synthesizing taps.
func (s *InputSnapshot) Press(b Button) {
	if b < 0 || b >= ButtonCount {
		return
	}
	s.buttons[b].down = true
	s.buttons[b].changed = true
}

// ClearEdges resets the changed flags while preserving held state.
// Called once per tick before new events are applied.
func (s *InputSnapshot) ClearEdges() {
	for i := range s.buttons {
		s.buttons[i].changed = false
	}
}
