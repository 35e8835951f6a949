package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixelpong/internal/core"
	"github.com/vovakirdan/pixelpong/internal/game"
	"github.com/vovakirdan/pixelpong/internal/render"
)

// maxFrameDelta caps the measured frame time so a suspended terminal does
// not fast-forward the simulation on resume.
const maxFrameDelta = 0.25

var footerStyle = lipgloss.NewStyle().Faint(true)

// Model is the Bubble Tea model driving one game session in a terminal.
type Model struct {
	session *game.Session
	fb      *render.Framebuffer
	config  core.RuntimeConfig

	input    core.InputSnapshot
	tracker  keyTracker
	keys     KeyMap
	help     help.Model
	lastTick time.Time
	quitting bool
}

// NewModel creates a model for the given session. The runtime config
// supplies the initial viewport size in cells and the tick rate.
func NewModel(session *game.Session, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultRuntimeConfig().TickRate
	}
	return Model{
		session: session,
		fb:      render.New(cfg.ScreenW, frameHeight(cfg.ScreenH)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// frameHeight converts terminal rows to framebuffer pixels, reserving one
// row for the help footer. Two pixels fit per cell.
func frameHeight(rows int) int {
	return (rows - 1) * 2
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and advances the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.fb.Resize(msg.Width, frameHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if b, ok := buttonFor(msg); ok {
		m.tracker.keyDown(b, time.Now(), &m.input)
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
		if dt < 0 {
			dt = 0
		}
	}
	m.lastTick = now

	m.tracker.expire(now, &m.input)
	cmd := m.session.Update(dt, m.input)
	m.input.ClearEdges()

	if cmd == game.CommandQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// Run drives the session in the local terminal until the player quits.
func Run(session *game.Session, cfg core.RuntimeConfig) error {
	model := NewModel(session, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

// View renders the framebuffer and the help footer.
func (m Model) View() string {
	if m.quitting {
		return "Thanks for playing!\n"
	}

	m.session.Draw(m.fb)
	frame := RenderFrame(m.fb)
	footer := footerStyle.Render(m.help.View(m.keys))
	if frame == "" {
		return footer
	}
	return frame + "\n" + footer
}
