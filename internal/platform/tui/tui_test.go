package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixelpong/internal/config"
	"github.com/vovakirdan/pixelpong/internal/core"
	"github.com/vovakirdan/pixelpong/internal/game"
	"github.com/vovakirdan/pixelpong/internal/render"
)

func TestButtonMapping(t *testing.T) {
	tests := []struct {
		key  string
		want core.Button
	}{
		{"up", core.ButtonUpArrow},
		{"down", core.ButtonDownArrow},
		{"left", core.ButtonLeftArrow},
		{"right", core.ButtonRightArrow},
		{"w", core.ButtonUp},
		{"s", core.ButtonDown},
		{"enter", core.ButtonEnter},
		{"esc", core.ButtonPause},
		{"p", core.ButtonPause},
		{"f", core.ButtonFullscreen},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			msg := keyMsg(tt.key)
			got, ok := buttonFor(msg)
			if !ok {
				t.Fatalf("buttonFor(%q) not mapped", tt.key)
			}
			if got != tt.want {
				t.Errorf("buttonFor(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}

	if _, ok := buttonFor(keyMsg("x")); ok {
		t.Error("unmapped key should not resolve to a button")
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestKeyTrackerSynthesizesRelease(t *testing.T) {
	var tr keyTracker
	var in core.InputSnapshot
	now := time.Now()

	tr.keyDown(core.ButtonUp, now, &in)
	if !in.IsDown(core.ButtonUp) || !in.IsPressed(core.ButtonUp) {
		t.Fatal("fresh key event should produce a held, pressed button")
	}
	in.ClearEdges()

	// A repeat inside the hold window keeps the button held, no new edge.
	tr.keyDown(core.ButtonUp, now.Add(100*time.Millisecond), &in)
	if in.IsPressed(core.ButtonUp) {
		t.Error("repeat event should not produce a pressed edge")
	}

	// Still inside the window: no release.
	tr.expire(now.Add(300*time.Millisecond), &in)
	if !in.IsDown(core.ButtonUp) {
		t.Error("button released before hold window elapsed")
	}

	// Past the window relative to the last repeat: released edge.
	tr.expire(now.Add(100*time.Millisecond+holdWindow+time.Millisecond), &in)
	if in.IsDown(core.ButtonUp) {
		t.Error("button still held after hold window")
	}
	if !in.IsReleased(core.ButtonUp) {
		t.Error("release edge missing")
	}
}

func TestRenderFramePacksTwoPixelsPerCell(t *testing.T) {
	fb := render.New(4, 4)
	fb.Clear(core.ColorWhite)

	out := RenderFrame(fb)
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("newlines = %d, want 1 (two cell rows)", got)
	}
	if got := strings.Count(out, "▀"); got != 8 {
		t.Errorf("half blocks = %d, want 8 (4 wide x 2 rows)", got)
	}

	if RenderFrame(render.New(0, 0)) != "" {
		t.Error("empty framebuffer should render to an empty string")
	}
}

func newTestModel() Model {
	session := game.New(config.Default(), 1, nil)
	return NewModel(session, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit key produced no command")
	}
	if !next.(Model).quitting {
		t.Error("model not marked quitting")
	}
}

func TestModelTickAdvancesSession(t *testing.T) {
	m := newTestModel()

	// Enter on the menu starts a vs-AI match.
	next, _ := m.Update(keyMsg("enter"))
	m = next.(Model)

	base := time.Now()
	next, _ = m.Update(TickMsg(base))
	m = next.(Model)
	if m.session.State() != game.StateCountdown {
		t.Fatalf("state after enter = %v, want countdown", m.session.State())
	}

	// Two measured 0.4s frames cross the countdown threshold twice.
	next, _ = m.Update(TickMsg(base.Add(400 * time.Millisecond)))
	m = next.(Model)
	next, _ = m.Update(TickMsg(base.Add(800 * time.Millisecond)))
	m = next.(Model)
	if got := m.session.CountdownValue(); got != 1 {
		t.Errorf("countdown after two 0.4s frames = %d, want 1", got)
	}
}

func TestModelResizeReshapesFramebuffer(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if m.fb.Width() != 120 || m.fb.Height() != 78 {
		t.Errorf("framebuffer = %dx%d, want 120x78 (one row reserved)",
			m.fb.Width(), m.fb.Height())
	}
}

func TestModelViewRendersFrameAndFooter(t *testing.T) {
	m := newTestModel()
	out := m.View()
	if !strings.Contains(out, "▀") {
		t.Error("view missing framebuffer content")
	}
}
