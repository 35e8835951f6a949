package physics

import (
	"math"

	"github.com/vovakirdan/pixelpong/internal/core"
)

// Ball default parameters.
const (
	BallSize      = 1.2
	BaseBallSpeed = 95.0

	// hitInfluence converts contact offset on the paddle face to imparted
	// vertical velocity; paddleInfluence transfers paddle momentum.
	hitInfluence    = 38.0
	paddleInfluence = 0.20

	// Keeps the post-bounce x velocity strictly nonzero.
	bounceEpsilon = 0.0001
)

// Events reports what happened during one ball tick, for audio cues and
// state transitions. Goal scoring is mutually exclusive: at most one winner
// per tick.
type Events struct {
	WallBounce bool
	PaddleHit  bool
	Goal       bool
}

// Ball is the match ball. Once Scored is set the ball freezes until Reset.
// Players are addressed by index into the match's player array rather than
// by reference, so resets can never leave the ball pointing at stale state.
type Ball struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Size float64

	Scored bool
	Winner int // 0 none, 1 or 2
}

// Init launches the ball from the center toward the right player.
func (b *Ball) Init(speed float64) {
	b.Pos = core.Vec2{}
	b.Vel = core.Vec2{X: speed, Y: 0}
	b.Size = BallSize
	b.Scored = false
	b.Winner = 0
}

// Reset recenters the ball after a round, serving toward the previous
// scorer's side by flipping the horizontal direction.
func (b *Ball) Reset() {
	b.Pos = core.Vec2{}
	b.Vel.X = -b.Vel.X
	b.Vel.Y = 0
	b.Scored = false
	b.Winner = 0
}

// Tick integrates the ball and resolves collisions against both players.
// The paddles must already be updated for this tick. A frozen (scored) ball
// is a no-op. The goal check short-circuits: after a score nothing else is
// tested, so a single tick can never produce two winners or a goal plus a
// paddle bounce.
func (b *Ball) Tick(dt float64, players *[2]Player) Events {
	var ev Events
	if b.Scored {
		return ev
	}

	b.Pos.X += b.Vel.X * dt
	b.Pos.Y += b.Vel.Y * dt

	b.collide(&players[0], players, &ev)
	if b.Scored {
		return ev
	}
	b.collide(&players[1], players, &ev)
	return ev
}

// collide resolves walls, goals, and one paddle, in that priority order.
func (b *Ball) collide(pl *Player, players *[2]Player, ev *Events) {
	// Vertical walls: full restitution
	if b.Pos.Y+b.Size > core.FieldTop {
		b.Pos.Y = core.FieldTop - b.Size
		b.Vel.Y = -b.Vel.Y
		ev.WallBounce = true
	}
	if b.Pos.Y-b.Size < core.FieldBottom {
		b.Pos.Y = core.FieldBottom + b.Size
		b.Vel.Y = -b.Vel.Y
		ev.WallBounce = true
	}

	// Goals take priority over paddle contact
	if b.Pos.X+b.Size > core.GoalX {
		b.Scored = true
		b.Winner = 1
		b.Pos.X = core.GoalX + b.Size
		players[0].Score++
		ev.Goal = true
		return
	}
	if b.Pos.X-b.Size < -core.GoalX {
		b.Scored = true
		b.Winner = 2
		b.Pos.X = -core.GoalX - b.Size
		players[1].Score++
		ev.Goal = true
		return
	}

	overlapX := math.Abs(b.Pos.X-pl.Pos.X) <= pl.HalfW+b.Size
	overlapY := math.Abs(b.Pos.Y-pl.Pos.Y) <= pl.HalfH+b.Size
	if !overlapX || !overlapY {
		return
	}

	// Reposition flush against the face the ball travelled into, so it
	// can neither tunnel through nor stick inside the paddle.
	if b.Vel.X < 0 {
		b.Pos.X = pl.Pos.X + pl.HalfW + b.Size
	} else {
		b.Pos.X = pl.Pos.X - pl.HalfW - b.Size
	}

	b.Vel.X = -b.Vel.X + bounceEpsilon

	hit := (b.Pos.Y - pl.Pos.Y) / pl.HalfH
	b.Vel.Y += hit*hitInfluence + pl.Vel*paddleInfluence

	pl.markHit()
	ev.PaddleHit = true
}
