package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixelpong/internal/core"
)

// KeyMap defines the key bindings shown in the help footer.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	AltUp  key.Binding
	AltDn  key.Binding
	Adjust key.Binding
	Select key.Binding
	Pause  key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w/s", "left paddle"),
		),
		Down: key.NewBinding(
			key.WithKeys("s"),
		),
		AltUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "right paddle / navigate"),
		),
		AltDn: key.NewBinding(
			key.WithKeys("down"),
		),
		Adjust: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "adjust"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc", "p"),
			key.WithHelp("esc", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.AltUp, k.Select, k.Pause, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.AltUp},
		{k.Adjust, k.Select},
		{k.Pause, k.Quit},
	}
}

// buttonFor maps a key message to a logical button.
func buttonFor(msg tea.KeyMsg) (core.Button, bool) {
	switch msg.String() {
	case "up":
		return core.ButtonUpArrow, true
	case "down":
		return core.ButtonDownArrow, true
	case "left":
		return core.ButtonLeftArrow, true
	case "right":
		return core.ButtonRightArrow, true
	case "w":
		return core.ButtonUp, true
	case "s":
		return core.ButtonDown, true
	case "a":
		return core.ButtonLeft, true
	case "d":
		return core.ButtonRight, true
	case "enter":
		return core.ButtonEnter, true
	case "esc", "p":
		return core.ButtonPause, true
	case "f":
		return core.ButtonFullscreen, true
	}
	return 0, false
}

// holdWindow is how long a key counts as held after its last repeat event.
// Terminals report taps and auto-repeats, never releases, so the released
// edge is synthesized when the repeats stop. The window must outlast the
// keyboard's initial repeat delay or a held key flickers.
const holdWindow = 550 * time.Millisecond

// keyTracker turns the terminal's tap/repeat stream into held-button state.
type keyTracker struct {
	lastSeen [core.ButtonCount]time.Time
}

// keyDown records a key event, producing a pressed edge on the snapshot if
// the button was up.
func (t *keyTracker) keyDown(b core.Button, now time.Time, in *core.InputSnapshot) {
	in.SetDown(b, true)
	t.lastSeen[b] = now
}

// expire releases buttons whose repeat stream has gone quiet, producing
// released edges on the snapshot.
func (t *keyTracker) expire(now time.Time, in *core.InputSnapshot) {
	for b := core.Button(0); b < core.ButtonCount; b++ {
		if in.IsDown(b) && now.Sub(t.lastSeen[b]) > holdWindow {
			in.SetDown(b, false)
		}
	}
}
