package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/pixelpong/internal/core"
)

func TestPaddleTickIntegration(t *testing.T) {
	p := Paddle{Vel: 10, Damping: 2, HalfH: PaddleHalfH}

	// accel 100, drag 10*2: net 80.
	// pos += 10*0.1 + 0.5*80*0.01 = 1.4; vel += 80*0.1 = 8.
	p.Tick(0.1, 100)

	if math.Abs(p.Pos.Y-1.4) > 1e-9 {
		t.Errorf("Pos.Y = %v, expected 1.4", p.Pos.Y)
	}
	if math.Abs(p.Vel-18) > 1e-9 {
		t.Errorf("Vel = %v, expected 18", p.Vel)
	}
}

func TestPaddleStaysInField(t *testing.T) {
	tests := []struct {
		name  string
		dt    float64
		accel float64
	}{
		{"strong downward", 0.016, 1e6},
		{"strong upward", 0.016, -1e6},
		{"huge dt downward", 2.0, 1600},
		{"huge dt upward", 2.0, -1600},
		{"zero dt", 0, 1600},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Paddle{HalfH: PaddleHalfH, Damping: 11}
			for i := 0; i < 200; i++ {
				p.Tick(tc.dt, tc.accel)
				lo, hi := -50+p.HalfH, 50-p.HalfH
				if p.Pos.Y < lo || p.Pos.Y > hi {
					t.Fatalf("tick %d: Pos.Y = %v outside [%v, %v]", i, p.Pos.Y, lo, hi)
				}
			}
		})
	}
}

func TestPaddleWallBounceRestitution(t *testing.T) {
	p := Paddle{Pos: core.Vec2{Y: 37.9}, Vel: 100, HalfH: PaddleHalfH}
	p.Tick(0.1, 0)

	if p.Pos.Y != 50-PaddleHalfH {
		t.Errorf("Pos.Y = %v, expected clamp at %v", p.Pos.Y, 50-PaddleHalfH)
	}
	if p.Vel >= 0 {
		t.Errorf("Vel = %v, expected inverted", p.Vel)
	}
	// Restitution 0.5: |post| = 0.5 * |pre| (pre is the velocity after
	// integration, which had no drag or accel here).
	if math.Abs(p.Vel+50) > 1e-9 {
		t.Errorf("Vel = %v, expected -50", p.Vel)
	}
}

func TestPlayerHitPulseDecays(t *testing.T) {
	var pl Player
	pl.Init(-70, false, 1600, 11)

	base := pl.RenderColor()
	pl.markHit()
	if pl.RenderColor() == base {
		t.Error("hit glow should brighten the paddle color")
	}

	for i := 0; i < 30; i++ {
		pl.Tick(0.016, 0)
	}
	if pl.HitPulse != 0 {
		t.Errorf("HitPulse = %v, expected fully decayed", pl.HitPulse)
	}
	if pl.RenderColor() != base {
		t.Error("color should return to base after the glow decays")
	}
}

func TestPlayerResetRoundKeepsScore(t *testing.T) {
	var pl Player
	pl.Init(70, true, 1600, 11)
	pl.Score = 3
	pl.Pos.Y = 20
	pl.Vel = -40

	pl.ResetRound()

	if pl.Pos.Y != 0 || pl.Vel != 0 {
		t.Errorf("ResetRound left Pos.Y=%v Vel=%v", pl.Pos.Y, pl.Vel)
	}
	if pl.Score != 3 {
		t.Errorf("Score = %d, expected preserved", pl.Score)
	}
}
