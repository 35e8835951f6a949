// Package ai drives a paddle the same way human input does: per tick it
// emits an acceleration delta that feeds the shared paddle controller.
// Difficulty tiers differ only in whether they predict the ball's arrival
// point and how much error they inject into that prediction.
package ai

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/pixelpong/internal/core"
	"github.com/vovakirdan/pixelpong/internal/physics"
)

// Difficulty selects an AI tier. Higher tiers predict and err less.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	VeryHard
	Unbeatable
)

// String returns the menu label for the tier.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "EASY"
	case Medium:
		return "NORMAL"
	case Hard:
		return "HARD"
	case VeryHard:
		return "VERYHARD"
	case Unbeatable:
		return "UNBEATABLE"
	default:
		return "UNKNOWN"
	}
}

// ClampDifficulty maps any integer to the nearest valid tier.
func ClampDifficulty(v int) Difficulty {
	return Difficulty(core.Clamp(v, int(Easy), int(Unbeatable)))
}

// ParseDifficulty resolves a config string; unknown values fall back to
// Medium.
func ParseDifficulty(s string) Difficulty {
	for d := Easy; d <= Unbeatable; d++ {
		if d.String() == s {
			return d
		}
	}
	return Medium
}

// tier holds the per-difficulty prediction behavior.
type tier struct {
	predict     bool
	biasMin     float64 // lower bound of the random prediction error
	biasRange   float64 // width of the random prediction error
	mistakeOdds int     // 1-in-N chance of aiming at the top wall; 0 = never
	fixedOffset float64 // constant offset instead of randomness
}

var tiers = [...]tier{
	Easy:       {},
	Medium:     {},
	Hard:       {predict: true, biasMin: -16, biasRange: 12, mistakeOdds: 15},
	VeryHard:   {predict: true, biasMin: -10, biasRange: 12, mistakeOdds: 5},
	Unbeatable: {predict: true, fixedOffset: 10},
}

// Thresholds for the decision layers, in virtual units.
const (
	followDeadZone = 5.0   // follow ignores differences smaller than this
	smashRange     = 10.0  // horizontal distance at which smash engages
	smashDeadZone  = 1.0   // smash's own dead zone
	predictMinVY   = 100.0 // vertical speed required before predicting
)

// Controller is a per-match AI with its own RNG so matches are
// reproducible from a seed.
type Controller struct {
	rng *rand.Rand
}

// New creates a controller seeded for deterministic play.
func New(seed int64) *Controller {
	return &Controller{rng: rand.New(rand.NewSource(seed))}
}

// Accel returns this tick's acceleration delta for an AI-driven paddle.
// The paddle engages only while the ball is on its own half of the field.
func (c *Controller) Accel(pl *physics.Player, ball *physics.Ball, difficulty Difficulty) float64 {
	sameHalf := (pl.Pos.X > 0 && ball.Pos.X > 0) || (pl.Pos.X < 0 && ball.Pos.X < 0)
	if !sameHalf {
		return 0
	}

	difficulty = ClampDifficulty(int(difficulty))
	tp := tiers[difficulty]

	paddleX := pl.Pos.X
	paddleY := pl.Pos.Y
	distX := math.Abs(paddleX - ball.Pos.X)
	targetY := ball.Pos.Y

	if tp.predict {
		targetY = c.predictTarget(ball.Pos, ball.Vel, paddleX, tp, targetY)
	}

	var accel float64
	if difficulty >= Medium {
		accel += smashAccel(distX, targetY, paddleY, ball.Vel.Y, pl.AccelSpeed)
	}
	accel += followAccel(targetY, paddleY, pl.AccelSpeed)
	return accel
}

// predictTarget projects the ball to the paddle's x assuming straight-line
// travel, reflects the projected y off the walls, then perturbs the result
// with the tier's error model. When no prediction applies it returns the
// fallback (the ball's current y).
func (c *Controller) predictTarget(ballPos, ballVel core.Vec2, paddleX float64, tp tier, fallback float64) float64 {
	toward := (paddleX >= 0 && ballVel.X > 0) || (paddleX < 0 && ballVel.X < 0)
	if math.Abs(ballVel.Y) <= predictMinVY || math.Abs(ballVel.X) <= 1e-4 || !toward {
		return fallback
	}

	t := (paddleX - ballPos.X) / ballVel.X
	if t <= 0 {
		return ballPos.Y
	}

	finalY := foldY(ballPos.Y + ballVel.Y*t)

	if tp.mistakeOdds > 0 {
		// The random bias is applied both before and after the mistake
		// roll, reproducing the reference behavior exactly.
		bias := c.rng.Float64()*tp.biasRange + tp.biasMin
		finalY += bias
		if c.rng.Intn(tp.mistakeOdds) == 0 {
			finalY = core.FieldTop
		}
		return finalY + bias
	}
	return finalY + tp.fixedOffset
}

// foldY reflects a projected y off the field walls using a triangle-wave
// transform, accounting for any number of in-flight bounces.
func foldY(y float64) float64 {
	span := core.FieldTop - core.FieldBottom
	cycle := math.Mod(y-core.FieldBottom, 2*span)
	if cycle < 0 {
		cycle += 2 * span
	}
	if cycle <= span {
		return core.FieldBottom + cycle
	}
	return core.FieldTop - (cycle - span)
}

// smashAccel drives hard at the target when the ball is horizontally close,
// biased by the ball's vertical direction inside its dead zone.
func smashAccel(distX, targetY, paddleY, ballVelY, accelSpeed float64) float64 {
	if distX > smashRange {
		return 0
	}
	diff := targetY - paddleY
	if math.Abs(diff) < smashDeadZone {
		if ballVelY > 0 {
			return accelSpeed
		}
		return -accelSpeed
	}
	if diff > 0 {
		return accelSpeed
	}
	return -accelSpeed
}

// followAccel tracks the target with a dead zone that prevents jitter.
func followAccel(targetY, paddleY, accelSpeed float64) float64 {
	diff := targetY - paddleY
	if diff > followDeadZone {
		return accelSpeed
	}
	if diff < -followDeadZone {
		return -accelSpeed
	}
	return 0
}
