// Package config provides YAML-based configuration loading with clamped
// values and an embedded default, following the search order
// custom path -> ~/.pixelpong/config.yaml -> ./configs/pixelpong.yaml ->
// embedded default.
package config

import "github.com/vovakirdan/pixelpong/internal/core"

// Base values the multipliers below apply to.
const (
	BaseBallSpeed     = 95.0
	BasePaddleSpeed   = 1600.0
	BasePaddleDamping = 8.0
)

// Config is the full game configuration.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	AI      AIConfig      `yaml:"ai"`
	Match   MatchConfig   `yaml:"match"`
	Audio   AudioConfig   `yaml:"audio"`
}

// PhysicsConfig holds the tunable multipliers over the base speeds.
type PhysicsConfig struct {
	BallSpeed     float64 `yaml:"ball_speed"`     // [0.5, 3.0]
	PaddleSpeed   float64 `yaml:"paddle_speed"`   // [0.5, 3.0]
	PaddleDamping float64 `yaml:"paddle_damping"` // [0.8, 2.0]
}

// AIConfig selects the opponent tier.
type AIConfig struct {
	Difficulty string `yaml:"difficulty"` // EASY..UNBEATABLE
}

// MatchConfig holds match-flow parameters.
type MatchConfig struct {
	DurationSeconds int `yaml:"duration_seconds"`
}

// AudioConfig controls the cue player.
type AudioConfig struct {
	Muted bool `yaml:"muted"`
}

// Clamp forces every value into its legal range in place. Zero values (an
// empty file section) snap to the defaults first.
func (c *Config) Clamp() {
	def := Default()
	if c.Physics.BallSpeed == 0 {
		c.Physics.BallSpeed = def.Physics.BallSpeed
	}
	if c.Physics.PaddleSpeed == 0 {
		c.Physics.PaddleSpeed = def.Physics.PaddleSpeed
	}
	if c.Physics.PaddleDamping == 0 {
		c.Physics.PaddleDamping = def.Physics.PaddleDamping
	}
	if c.AI.Difficulty == "" {
		c.AI.Difficulty = def.AI.Difficulty
	}
	if c.Match.DurationSeconds == 0 {
		c.Match.DurationSeconds = def.Match.DurationSeconds
	}

	c.Physics.BallSpeed = core.ClampF(c.Physics.BallSpeed, 0.5, 3.0)
	c.Physics.PaddleSpeed = core.ClampF(c.Physics.PaddleSpeed, 0.5, 3.0)
	c.Physics.PaddleDamping = core.ClampF(c.Physics.PaddleDamping, 0.8, 2.0)
	c.Match.DurationSeconds = core.Clamp(c.Match.DurationSeconds, 10, 600)
}

// EffectiveBallSpeed returns the configured ball launch speed in
// virtual units per second.
func (c *Config) EffectiveBallSpeed() float64 {
	return c.Physics.BallSpeed * BaseBallSpeed
}

// EffectivePaddleSpeed returns the paddle drive acceleration.
func (c *Config) EffectivePaddleSpeed() float64 {
	return c.Physics.PaddleSpeed * BasePaddleSpeed
}

// EffectivePaddleDamping returns the paddle drag coefficient.
func (c *Config) EffectivePaddleDamping() float64 {
	return c.Physics.PaddleDamping * BasePaddleDamping
}
