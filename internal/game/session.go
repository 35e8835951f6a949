// Package game ties paddles, ball, AI, and effects into the menu, settings,
// countdown, play, celebration, pause, and time-up flow of a match. It draws
// only through the framebuffer and reports sound moments through a CueSink,
// so it stays free of terminal and speaker concerns.
package game

import (
	"github.com/vovakirdan/pixelpong/internal/ai"
	"github.com/vovakirdan/pixelpong/internal/audio"
	"github.com/vovakirdan/pixelpong/internal/config"
	"github.com/vovakirdan/pixelpong/internal/core"
	"github.com/vovakirdan/pixelpong/internal/effects"
	"github.com/vovakirdan/pixelpong/internal/physics"
)

// Countdown and match-flow timing.
const (
	countdownStep   = 0.35 // seconds per countdown value
	timeUpDelay     = 2.5  // seconds the winner banner stays up
	timerWarnWindow = 5.0  // seconds left when the clock turns red
	paddleX         = 70.0
)

// State is the externally visible session state.
type State int

const (
	StateMenu State = iota
	StateSettings
	StateCountdown
	StatePlaying
	StateCelebration
	StatePaused
	StateTimeUp
)

// String returns the state name for logging and tests.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateSettings:
		return "settings"
	case StateCountdown:
		return "countdown"
	case StatePlaying:
		return "playing"
	case StateCelebration:
		return "celebration"
	case StatePaused:
		return "paused"
	case StateTimeUp:
		return "time_up"
	default:
		return "unknown"
	}
}

// screen is the coarse screen selector, phase refines the match screen.
type screen int

const (
	screenMenu screen = iota
	screenSettings
	screenPlaying
)

type phase int

const (
	phaseCountdown phase = iota
	phasePlaying
	phaseCelebration
	phaseTimeUp
)

// Command tells the caller what the session wants after a tick.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
)

// CueSink receives fire-and-forget sound triggers. The session never waits
// on playback or reads audio state back.
type CueSink interface {
	Play(c audio.Cue)
}

type nopCueSink struct{}

func (nopCueSink) Play(audio.Cue) {}

// Result is the outcome of a finished match.
type Result struct {
	LeftScore  uint32
	RightScore uint32
	Winner     int // 0 draw, 1 left, 2 right
	Duration   int // configured match length in seconds
	Difficulty ai.Difficulty
	VsAI       bool
}

// Session runs the whole game flow from the main menu through matches and
// back. Drive it with Update once per tick and Draw once per frame.
type Session struct {
	cfg   config.Config
	cues  CueSink
	world World

	// Called when settings change or are saved, and when a match ends.
	// All optional.
	OnConfigChange func(config.Config)
	OnConfigSave   func(config.Config)
	OnResult       func(Result)

	scr      screen
	menu     menuScreen
	settings settingsScreen

	// Match state, valid while scr == screenPlaying.
	vsAI       bool
	difficulty ai.Difficulty
	players    [2]physics.Player
	ball       physics.Ball
	ctrl       *ai.Controller
	burst      *effects.ParticleBurst
	flash      effects.FlashEffect

	phs            phase
	paused         bool
	pauseIndex     int
	countdownValue int
	countdownTime  float64
	elapsed        float64
	warnTimer      float64
	bannerTime     float64
}

// New creates a session on the main menu. A nil cues sink disables sound
// triggers.
func New(cfg config.Config, seed int64, cues CueSink) *Session {
	cfg.Clamp()
	if cues == nil {
		cues = nopCueSink{}
	}
	return &Session{
		cfg:   cfg,
		cues:  cues,
		ctrl:  ai.New(seed),
		burst: effects.NewParticleBurst(seed + 1),
	}
}

// Config returns the current (possibly settings-edited) configuration.
func (s *Session) Config() config.Config {
	return s.cfg
}

// State reports the session state for status displays and tests.
func (s *Session) State() State {
	switch s.scr {
	case screenMenu:
		return StateMenu
	case screenSettings:
		return StateSettings
	}
	if s.paused {
		return StatePaused
	}
	switch s.phs {
	case phaseCountdown:
		return StateCountdown
	case phaseCelebration:
		return StateCelebration
	case phaseTimeUp:
		return StateTimeUp
	default:
		return StatePlaying
	}
}

// Scores returns the left and right player scores.
func (s *Session) Scores() (uint32, uint32) {
	return s.players[0].Score, s.players[1].Score
}

// CountdownValue returns the current countdown display value (3..0, where 0
// shows GO).
func (s *Session) CountdownValue() int {
	return s.countdownValue
}

// Update advances the session by dt seconds against one input snapshot.
func (s *Session) Update(dt float64, in core.InputSnapshot) Command {
	switch s.scr {
	case screenMenu:
		s.world.Advance(dt)
		return s.updateMenu(in)
	case screenSettings:
		s.world.Advance(dt)
		s.updateSettings(in)
		return CommandNone
	default:
		s.updateMatch(dt, in)
		return CommandNone
	}
}

// startMatch initializes both players and the ball from the current config
// and enters the countdown.
func (s *Session) startMatch(vsAI bool) {
	s.vsAI = vsAI
	s.difficulty = ai.ParseDifficulty(s.cfg.AI.Difficulty)

	speed := s.cfg.EffectivePaddleSpeed()
	damping := s.cfg.EffectivePaddleDamping()
	s.players[0].Init(-paddleX, false, speed, damping)
	s.players[1].Init(paddleX, vsAI, speed, damping)
	s.players[0].Score = 0
	s.players[1].Score = 0
	s.ball.Init(s.cfg.EffectiveBallSpeed())

	s.burst.Stop()
	s.flash.Stop()
	s.paused = false
	s.pauseIndex = 0
	s.beginCountdown()
	s.scr = screenPlaying
}

func (s *Session) beginCountdown() {
	s.countdownValue = 3
	s.countdownTime = 0
	s.phs = phaseCountdown
}

func (s *Session) updateMatch(dt float64, in core.InputSnapshot) {
	if s.phs != phaseTimeUp && in.IsPressed(core.ButtonPause) {
		s.paused = !s.paused
	}
	if s.paused {
		s.world.Advance(dt)
		s.updatePauseMenu(in)
		return
	}

	switch s.phs {
	case phaseCountdown:
		s.world.Advance(dt)
		s.updateCountdown(dt)
	case phasePlaying:
		s.world.Advance(dt)
		s.updatePlaying(dt, in)
	case phaseCelebration:
		// Background and simulation hold still, only the effects run.
		s.flash.Tick(dt)
		s.burst.Tick(dt)
		if s.flash.Finished() && s.burst.Finished() {
			s.ball.Reset()
			s.players[0].ResetRound()
			s.players[1].ResetRound()
			s.phs = phasePlaying
		}
	case phaseTimeUp:
		s.world.Advance(dt)
		s.bannerTime += dt
		if s.bannerTime >= timeUpDelay {
			s.scr = screenMenu
		}
	}
}

func (s *Session) updateCountdown(dt float64) {
	s.countdownTime += dt
	if s.countdownTime >= countdownStep {
		s.countdownTime = 0
		s.countdownValue--
		if s.countdownValue > 0 {
			s.cues.Play(audio.CueCountdownTick)
		} else if s.countdownValue == 0 {
			s.cues.Play(audio.CueCountdownGo)
		}
	}
	if s.countdownValue < 0 {
		s.phs = phasePlaying
		s.elapsed = 0
		s.warnTimer = 0
	}
}

func (s *Session) updatePlaying(dt float64, in core.InputSnapshot) {
	s.players[0].Tick(dt, s.playerAccel(0, in))
	s.players[1].Tick(dt, s.playerAccel(1, in))
	ev := s.ball.Tick(dt, &s.players)

	if ev.PaddleHit {
		s.cues.Play(audio.CuePaddleHit)
	}
	if ev.WallBounce {
		s.cues.Play(audio.CueWallBounce)
	}
	if ev.Goal {
		s.cues.Play(audio.CueGoal)
	}

	s.elapsed += dt
	duration := float64(s.cfg.Match.DurationSeconds)
	if left := duration - s.elapsed; left > 0 && left <= timerWarnWindow {
		s.warnTimer += dt
		if s.warnTimer >= 1.0 {
			s.warnTimer = 0
			s.cues.Play(audio.CueTimerWarning)
		}
	}
	if s.elapsed >= duration {
		s.finishMatch()
		return
	}

	if s.ball.Scored {
		s.phs = phaseCelebration
		s.burst.Start(s.ball.Pos.X, s.ball.Pos.Y)
		s.flash.Start()
	}
}

// playerAccel combines human input and AI steering for one paddle. In a
// vs-AI match the arrow keys double as left-paddle controls.
func (s *Session) playerAccel(idx int, in core.InputSnapshot) float64 {
	pl := &s.players[idx]
	if pl.AIMode {
		return s.ctrl.Accel(pl, &s.ball, s.difficulty)
	}

	var a float64
	if idx == 0 {
		a = buttonAccel(in, core.ButtonUp, core.ButtonDown, pl.AccelSpeed)
		if s.vsAI {
			a += buttonAccel(in, core.ButtonUpArrow, core.ButtonDownArrow, pl.AccelSpeed)
		}
		return a
	}
	return buttonAccel(in, core.ButtonUpArrow, core.ButtonDownArrow, pl.AccelSpeed)
}

// buttonAccel maps a held up/down pair to a vertical acceleration. The y
// axis grows downward.
func buttonAccel(in core.InputSnapshot, up, down core.Button, speed float64) float64 {
	var a float64
	if in.IsDown(up) {
		a -= speed
	}
	if in.IsDown(down) {
		a += speed
	}
	return a
}

func (s *Session) finishMatch() {
	s.phs = phaseTimeUp
	s.bannerTime = 0
	s.cues.Play(audio.CueWin)

	if s.OnResult != nil {
		res := Result{
			LeftScore:  s.players[0].Score,
			RightScore: s.players[1].Score,
			Duration:   s.cfg.Match.DurationSeconds,
			Difficulty: s.difficulty,
			VsAI:       s.vsAI,
		}
		if res.LeftScore > res.RightScore {
			res.Winner = 1
		} else if res.RightScore > res.LeftScore {
			res.Winner = 2
		}
		s.OnResult(res)
	}
}

// leaveMatch abandons the running match and returns to the main menu.
func (s *Session) leaveMatch() {
	s.ball.Reset()
	s.players[0].ResetRound()
	s.players[1].ResetRound()
	s.burst.Stop()
	s.flash.Stop()
	s.paused = false
	s.scr = screenMenu
}

// restartMatch resets scores and re-enters the countdown without leaving
// the match screen.
func (s *Session) restartMatch() {
	s.ball.Reset()
	s.players[0].ResetRound()
	s.players[1].ResetRound()
	s.players[0].Score = 0
	s.players[1].Score = 0
	s.burst.Stop()
	s.flash.Stop()
	s.paused = false
	s.beginCountdown()
}

var pauseItems = []string{"RESUME", "RESTART", "MAIN MENU"}

func (s *Session) updatePauseMenu(in core.InputSnapshot) {
	if in.IsPressed(core.ButtonUpArrow) || in.IsPressed(core.ButtonUp) {
		s.cues.Play(audio.CueMenuMove)
		s.pauseIndex = (s.pauseIndex - 1 + len(pauseItems)) % len(pauseItems)
	}
	if in.IsPressed(core.ButtonDownArrow) || in.IsPressed(core.ButtonDown) {
		s.cues.Play(audio.CueMenuMove)
		s.pauseIndex = (s.pauseIndex + 1) % len(pauseItems)
	}
	if in.IsPressed(core.ButtonEnter) {
		s.cues.Play(audio.CueMenuSelect)
		switch s.pauseIndex {
		case 0:
			s.paused = false
		case 1:
			s.restartMatch()
		case 2:
			s.leaveMatch()
		}
	}
}
