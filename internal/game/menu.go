package game

import (
	"github.com/vovakirdan/pixelpong/internal/audio"
	"github.com/vovakirdan/pixelpong/internal/core"
	"github.com/vovakirdan/pixelpong/internal/render"
)

var menuItems = []string{"PLAY VS AI", "PLAY VS FRIEND", "SETTINGS", "EXIT"}

type menuScreen struct {
	index int
}

func (s *Session) updateMenu(in core.InputSnapshot) Command {
	m := &s.menu
	if in.IsPressed(core.ButtonUpArrow) || in.IsPressed(core.ButtonUp) {
		s.cues.Play(audio.CueMenuMove)
		m.index--
		if m.index < 0 {
			m.index = len(menuItems) - 1
		}
	}
	if in.IsPressed(core.ButtonDownArrow) || in.IsPressed(core.ButtonDown) {
		s.cues.Play(audio.CueMenuMove)
		m.index++
		if m.index >= len(menuItems) {
			m.index = 0
		}
	}
	if in.IsPressed(core.ButtonEnter) {
		s.cues.Play(audio.CueMenuSelect)
		switch m.index {
		case 0:
			s.startMatch(true)
		case 1:
			s.startMatch(false)
		case 2:
			s.scr = screenSettings
		case 3:
			return CommandQuit
		}
	}
	return CommandNone
}

func (s *Session) drawMenu(fb *render.Framebuffer) {
	s.world.DrawCalm(fb)

	fb.DrawText("PING PONG", 0, -22, 1.5, 0.8, core.ColorWhite)

	const startY, gap = 0.0, 9.0
	for i, item := range menuItems {
		y := startY + float64(i)*gap
		color := core.ColorMenuIdle
		if i == s.menu.index {
			color = core.ColorMenuActive
		}
		fb.FillRect(0, y, 33.0, 4.0, core.ColorMenuPanel)
		fb.DrawText(item, 0, y, 0.6, 0.6, color)
		if i == s.menu.index {
			fb.FillRect(-29.0, y, 1.2, 1.2, core.ColorWhite)
		}
	}
}
