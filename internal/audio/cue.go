// Package audio synthesizes and plays the short game cues through the
// system speaker. Everything is generated at startup from oscillator
// primitives, there are no sound assets.
package audio

// Cue identifies one of the pre-rendered game sounds.
type Cue int

const (
	CuePaddleHit Cue = iota
	CueWallBounce
	CueGoal
	CueMenuMove
	CueMenuSelect
	CueCountdownTick
	CueCountdownGo
	CueTimerWarning
	CueWin
	cueCount
)

// String returns the cue name for logging.
func (c Cue) String() string {
	switch c {
	case CuePaddleHit:
		return "paddle_hit"
	case CueWallBounce:
		return "wall_bounce"
	case CueGoal:
		return "goal"
	case CueMenuMove:
		return "menu_move"
	case CueMenuSelect:
		return "menu_select"
	case CueCountdownTick:
		return "countdown_tick"
	case CueCountdownGo:
		return "countdown_go"
	case CueTimerWarning:
		return "timer_warning"
	case CueWin:
		return "win"
	default:
		return "unknown"
	}
}
