// Package effects contains the celebration visuals: a particle burst and a
// full-field flash. Both are pure timers stepped once per tick by the match
// state machine; they never read input or touch the simulation.
package effects

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/pixelpong/internal/core"
	"github.com/vovakirdan/pixelpong/internal/render"
)

// Burst tuning.
const (
	burstCount    = 80
	burstLifetime = 1.0 // seconds, before the per-particle random factor
	burstSpeedMin = 30.0
	burstSpeedMax = 80.0
)

// Particle is one ephemeral spark, owned exclusively by its burst.
type Particle struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Life float64 // seconds remaining
}

// ParticleBurst scatters sparks from a point. Active while any particle
// lives; inert otherwise.
type ParticleBurst struct {
	particles []Particle
	active    bool
	origin    core.Vec2
	rng       *rand.Rand
}

// NewParticleBurst creates an inactive burst with its own seeded RNG.
func NewParticleBurst(seed int64) *ParticleBurst {
	return &ParticleBurst{rng: rand.New(rand.NewSource(seed))}
}

// Start spawns a full set of particles at (x, y) with uniformly random
// direction, speed in [burstSpeedMin, burstSpeedMax], and lifetime in
// [0.5, 1.0] of the base lifetime. Restarting replaces any live particles.
func (pb *ParticleBurst) Start(x, y float64) {
	pb.origin = core.Vec2{X: x, Y: y}
	pb.particles = pb.particles[:0]
	pb.active = true

	for i := 0; i < burstCount; i++ {
		angle := pb.rng.Float64() * 2 * math.Pi
		speed := burstSpeedMin + pb.rng.Float64()*(burstSpeedMax-burstSpeedMin)
		pb.particles = append(pb.particles, Particle{
			Pos:  core.Vec2{X: x, Y: y},
			Vel:  core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life: burstLifetime * (0.5 + pb.rng.Float64()*0.5),
		})
	}
}

// Tick integrates all particles and drops the expired ones. The burst
// deactivates once the collection is empty.
func (pb *ParticleBurst) Tick(dt float64) {
	if !pb.active {
		return
	}
	alive := pb.particles[:0]
	for i := range pb.particles {
		p := &pb.particles[i]
		p.Pos.X += p.Vel.X * dt
		p.Pos.Y += p.Vel.Y * dt
		p.Life -= dt
		if p.Life > 0 {
			alive = append(alive, *p)
		}
	}
	pb.particles = alive
	if len(pb.particles) == 0 {
		pb.active = false
	}
}

// Stop discards all live particles immediately.
func (pb *ParticleBurst) Stop() {
	pb.particles = pb.particles[:0]
	pb.active = false
}

// Finished reports whether no particles remain.
func (pb *ParticleBurst) Finished() bool { return !pb.active }

// Count returns the number of live particles.
func (pb *ParticleBurst) Count() int { return len(pb.particles) }

// Render draws each particle faded by its remaining life. The palette
// depends on which side of the field the burst originated from.
func (pb *ParticleBurst) Render(fb *render.Framebuffer) {
	if !pb.active {
		return
	}
	base := core.RGB(255, 107, 107)
	if pb.origin.X > 0 {
		base = core.RGB(77, 171, 247)
	}
	for i := range pb.particles {
		p := &pb.particles[i]
		alpha := core.ClampF(p.Life/burstLifetime, 0, 1)
		fb.FillRect(p.Pos.X, p.Pos.Y, 1, 1, base.Scale(alpha))
	}
}
