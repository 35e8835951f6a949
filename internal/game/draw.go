package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/pixelpong/internal/core"
	"github.com/vovakirdan/pixelpong/internal/render"
)

const timerWarnColor core.Color = 0x00FF0000

// Draw renders the current session state into the framebuffer. On an
// unallocated framebuffer every draw call degrades to a no-op.
func (s *Session) Draw(fb *render.Framebuffer) {
	switch s.scr {
	case screenMenu:
		s.drawMenu(fb)
	case screenSettings:
		s.drawSettings(fb)
	default:
		s.drawMatch(fb)
	}
}

func (s *Session) drawMatch(fb *render.Framebuffer) {
	if s.paused {
		s.drawPauseMenu(fb)
		return
	}

	switch s.phs {
	case phaseCountdown:
		s.world.DrawCalm(fb)
		s.drawCountdown(fb)
	case phasePlaying:
		s.world.Draw(fb)
		s.drawEntities(fb)
		s.drawScores(fb)
		s.drawTimer(fb)
	case phaseCelebration:
		s.world.Draw(fb)
		s.drawEntities(fb)
		s.drawScores(fb)
	case phaseTimeUp:
		s.world.DrawCalm(fb)
		s.drawScores(fb)
		s.drawTimeUpBanner(fb)
	}

	s.burst.Render(fb)
	s.flash.Render(fb)
}

func (s *Session) drawEntities(fb *render.Framebuffer) {
	for i := range s.players {
		pl := &s.players[i]
		fb.FillRect(pl.Pos.X, pl.Pos.Y, pl.HalfW, pl.HalfH, pl.RenderColor())
	}
	fb.FillRect(s.ball.Pos.X, s.ball.Pos.Y, s.ball.Size, s.ball.Size, core.ColorBall)
}

func (s *Session) drawScores(fb *render.Framebuffer) {
	fb.DrawNumber(int(s.players[0].Score), -10.0, 40.0, 1.0, core.ColorScore)
	fb.DrawNumber(int(s.players[1].Score), 10.0, 40.0, 1.0, core.ColorScore)
}

func (s *Session) drawCountdown(fb *render.Framebuffer) {
	text := "GO!"
	color := core.ColorMenuActive
	if s.countdownValue > 0 {
		text = strconv.Itoa(s.countdownValue)
		color = core.ColorWhite
	}
	fb.DrawText(text, 0, 0, 2.0, 1.0, color)
}

func (s *Session) drawTimer(fb *render.Framebuffer) {
	left := float64(s.cfg.Match.DurationSeconds) - s.elapsed
	if left < 0 {
		left = 0
	}
	minutes := int(left) / 60
	seconds := int(left) % 60

	color := core.ColorWhite
	if left <= timerWarnWindow {
		color = timerWarnColor
	}
	fb.DrawText(fmt.Sprintf("%02d:%02d", minutes, seconds), 0, -40.0, 0.8, 0.8, color)
}

func (s *Session) drawTimeUpBanner(fb *render.Framebuffer) {
	var winner string
	var color core.Color
	switch {
	case s.players[0].Score > s.players[1].Score:
		winner = "PLAYER 1 WINS!"
		color = s.players[0].Color
	case s.players[1].Score > s.players[0].Score:
		winner = "PLAYER 2 WINS!"
		color = s.players[1].Color
	default:
		winner = "DRAW!"
		color = core.ColorMenuActive
	}

	fb.DrawText("TIME IS UP!", 0, -10.0, 0.8, 0.7, core.ColorWhite)
	fb.DrawText(winner, 0, 0, 1.2, 0.8, color)
}

func (s *Session) drawPauseMenu(fb *render.Framebuffer) {
	s.world.DrawCalm(fb)
	fb.DrawText("PAUSED", 0, -17.0, 1.2, 0.7, core.ColorWhite)

	for i, item := range pauseItems {
		y := float64(i) * 9.0
		color := core.ColorMenuIdle
		if i == s.pauseIndex {
			color = core.ColorMenuActive
		}
		fb.FillRect(0, y, 33.0, 4.0, core.ColorMenuPanel)
		fb.DrawText(item, 0, y, 0.6, 0.6, color)
		if i == s.pauseIndex {
			fb.FillRect(-29.0, y, 1.2, 1.2, core.ColorWhite)
		}
	}
}
