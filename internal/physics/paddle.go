// Package physics implements the fixed-entity simulation: paddle and ball
// integration, wall and paddle collision, and goal detection. All math runs
// in virtual field coordinates (see core), scaled by a measured dt.
package physics

import "github.com/vovakirdan/pixelpong/internal/core"

// Paddle default shape, as half-extents.
const (
	PaddleHalfW = 2.0
	PaddleHalfH = 12.0
)

// How long a paddle glows after contact, in seconds.
const hitPulseDuration = 0.2

// Paddle is the kinematic controller for one paddle. Exactly one driver
// (human input or AI) feeds its acceleration each tick, never both.
type Paddle struct {
	Pos        core.Vec2
	Vel        float64 // vertical velocity
	AccelSpeed float64 // acceleration magnitude per driver impulse
	Damping    float64 // linear drag coefficient
	HalfW      float64
	HalfH      float64
}

// Tick advances the paddle by dt under the given net acceleration.
//
// Drag and the position update both use the velocity from the start of the
// tick; velocity itself integrates afterwards. This ordering is kept as-is
// to reproduce the reference trajectory shape.
func (p *Paddle) Tick(dt, accel float64) {
	accel -= p.Vel * p.Damping
	p.Pos.Y += p.Vel*dt + 0.5*accel*dt*dt
	p.Vel += accel * dt

	// Inelastic wall bounce, restitution 0.5
	if p.Pos.Y+p.HalfH > core.FieldTop {
		p.Pos.Y = core.FieldTop - p.HalfH
		p.Vel *= -0.5
	}
	if p.Pos.Y-p.HalfH < core.FieldBottom {
		p.Pos.Y = core.FieldBottom + p.HalfH
		p.Vel *= -0.5
	}
}

// Player owns one paddle plus per-match presentation and scoring state.
// The two Player values live for the whole match and are reset, not
// recreated, between rounds.
type Player struct {
	Paddle
	Score    uint32
	Color    core.Color
	AIMode   bool
	HitPulse float64 // seconds of hit glow remaining
}

// Init places the player at x with the given drive parameters.
func (pl *Player) Init(x float64, aiMode bool, accelSpeed, damping float64) {
	pl.Paddle = Paddle{
		Pos:        core.Vec2{X: x, Y: 0},
		AccelSpeed: accelSpeed,
		Damping:    damping,
		HalfW:      PaddleHalfW,
		HalfH:      PaddleHalfH,
	}
	pl.AIMode = aiMode
	pl.HitPulse = 0
	if x < 0 {
		pl.Color = core.ColorLeftPaddle
	} else {
		pl.Color = core.ColorRightPaddle
	}
}

// ResetRound recenters the paddle between rounds; score persists.
func (pl *Player) ResetRound() {
	pl.Pos.Y = 0
	pl.Vel = 0
}

// Tick advances the paddle and decays the hit glow.
func (pl *Player) Tick(dt, accel float64) {
	pl.Paddle.Tick(dt, accel)
	if pl.HitPulse > 0 {
		pl.HitPulse -= dt
		if pl.HitPulse < 0 {
			pl.HitPulse = 0
		}
	}
}

// markHit triggers the contact glow.
func (pl *Player) markHit() {
	pl.HitPulse = hitPulseDuration
}

// RenderColor returns the paddle color, brightened while the hit glow runs.
func (pl *Player) RenderColor() core.Color {
	if pl.HitPulse <= 0 {
		return pl.Color
	}
	boost := 1.0 + 0.6*(pl.HitPulse/hitPulseDuration)
	return core.RGB(
		satMul(pl.Color.R(), boost),
		satMul(pl.Color.G(), boost),
		satMul(pl.Color.B(), boost),
	)
}

func satMul(c uint8, f float64) uint8 {
	v := float64(c) * f
	if v > 255 {
		return 255
	}
	return uint8(v)
}
