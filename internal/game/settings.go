package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/pixelpong/internal/ai"
	"github.com/vovakirdan/pixelpong/internal/audio"
	"github.com/vovakirdan/pixelpong/internal/core"
	"github.com/vovakirdan/pixelpong/internal/render"
)

// Settings rows. BACK must stay last.
const (
	settingBallSpeed = iota
	settingPaddleSpeed
	settingPaddleFriction
	settingDifficulty
	settingDuration
	settingMute
	settingBack
	settingCount
)

var settingLabels = [settingCount]string{
	"BALL SPEED",
	"PADDLE SPEED",
	"PADDLE FRICTION",
	"AI DIFFICULTY",
	"GAME DURATION",
	"MUTE AUDIO",
	"BACK",
}

type settingsScreen struct {
	index int
}

func (s *Session) updateSettings(in core.InputSnapshot) {
	sc := &s.settings
	if in.IsPressed(core.ButtonUpArrow) || in.IsPressed(core.ButtonUp) {
		s.cues.Play(audio.CueMenuMove)
		sc.index--
		if sc.index < 0 {
			sc.index = settingCount - 1
		}
	}
	if in.IsPressed(core.ButtonDownArrow) || in.IsPressed(core.ButtonDown) {
		s.cues.Play(audio.CueMenuMove)
		sc.index++
		if sc.index >= settingCount {
			sc.index = 0
		}
	}

	if in.IsPressed(core.ButtonLeftArrow) {
		s.adjustSetting(sc.index, -1)
	}
	if in.IsPressed(core.ButtonRightArrow) {
		s.adjustSetting(sc.index, +1)
	}

	if in.IsPressed(core.ButtonEnter) && sc.index == settingBack {
		s.cues.Play(audio.CueMenuSelect)
		if s.OnConfigSave != nil {
			s.OnConfigSave(s.cfg)
		}
		s.scr = screenMenu
	}
}

// adjustSetting moves one row's value by one step in the given direction,
// clamped to the row's legal range.
func (s *Session) adjustSetting(row, dir int) {
	if row == settingBack {
		return
	}
	s.cues.Play(audio.CueMenuMove)

	switch row {
	case settingBallSpeed:
		s.cfg.Physics.BallSpeed = stepTenth(s.cfg.Physics.BallSpeed, dir, 0.5, 3.0)
	case settingPaddleSpeed:
		s.cfg.Physics.PaddleSpeed = stepTenth(s.cfg.Physics.PaddleSpeed, dir, 0.5, 3.0)
	case settingPaddleFriction:
		s.cfg.Physics.PaddleDamping = stepTenth(s.cfg.Physics.PaddleDamping, dir, 0.8, 2.0)
	case settingDifficulty:
		cur := int(ai.ParseDifficulty(s.cfg.AI.Difficulty))
		s.cfg.AI.Difficulty = ai.ClampDifficulty(cur + dir).String()
	case settingDuration:
		s.cfg.Match.DurationSeconds = core.Clamp(s.cfg.Match.DurationSeconds+dir*5, 10, 600)
	case settingMute:
		s.cfg.Audio.Muted = !s.cfg.Audio.Muted
	}

	if s.OnConfigChange != nil {
		s.OnConfigChange(s.cfg)
	}
}

// stepTenth nudges v by 0.1 in the given direction, rounding off float
// drift so the displayed value stays a clean tenth.
func stepTenth(v float64, dir int, lo, hi float64) float64 {
	v = math.Round(v*10+float64(dir)) / 10
	return core.ClampF(v, lo, hi)
}

// settingValue renders one row's value text.
func (s *Session) settingValue(row int) string {
	switch row {
	case settingBallSpeed:
		return fmt.Sprintf("%.1f", s.cfg.Physics.BallSpeed)
	case settingPaddleSpeed:
		return fmt.Sprintf("%.1f", s.cfg.Physics.PaddleSpeed)
	case settingPaddleFriction:
		return fmt.Sprintf("%.1f", s.cfg.Physics.PaddleDamping)
	case settingDifficulty:
		return ai.ParseDifficulty(s.cfg.AI.Difficulty).String()
	case settingDuration:
		return fmt.Sprintf("%dS", s.cfg.Match.DurationSeconds)
	case settingMute:
		if s.cfg.Audio.Muted {
			return "ON"
		}
		return "OFF"
	default:
		return ""
	}
}

func (s *Session) drawSettings(fb *render.Framebuffer) {
	s.world.DrawCalm(fb)

	fb.DrawText("SETTINGS", 0, -42, 1.2, 0.7, core.ColorWhite)

	const startY, gap = -30.0, 9.0
	for i := 0; i < settingCount; i++ {
		y := startY + float64(i)*gap
		color := core.ColorMenuIdle
		if i == s.settings.index {
			color = core.ColorMenuActive
		}
		fb.FillRect(0, y, 52.0, 4.0, core.ColorMenuPanel)
		fb.DrawText(settingLabels[i], -14.0, y, 0.6, 0.6, color)
		if value := s.settingValue(i); value != "" {
			fb.DrawText(value, 32.0, y, 0.6, 0.6, core.ColorValueText)
		}
		if i == s.settings.index {
			fb.FillRect(-44.0, y, 1.2, 1.2, core.ColorWhite)
		}
	}
}
