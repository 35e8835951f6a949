package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/pixelpong/internal/core"
)

func newPlayers() [2]Player {
	var players [2]Player
	players[0].Init(-70, false, 1600, 11)
	players[1].Init(70, true, 1600, 11)
	return players
}

func TestBallGoalRight(t *testing.T) {
	players := newPlayers()
	var b Ball
	b.Init(BaseBallSpeed)
	b.Pos = core.Vec2{X: 79.5, Y: 0}
	b.Vel = core.Vec2{X: 50, Y: 0}

	ev := b.Tick(0.016, &players)

	if !b.Scored || b.Winner != 1 {
		t.Fatalf("Scored=%v Winner=%d, expected scored by player 1", b.Scored, b.Winner)
	}
	if math.Abs(b.Pos.X-81.2) > 1e-9 {
		t.Errorf("Pos.X = %v, expected clamp at 81.2", b.Pos.X)
	}
	if players[0].Score != 1 || players[1].Score != 0 {
		t.Errorf("scores = %d:%d, expected 1:0", players[0].Score, players[1].Score)
	}
	if !ev.Goal {
		t.Error("goal event not reported")
	}
}

func TestBallGoalLeft(t *testing.T) {
	players := newPlayers()
	var b Ball
	b.Init(BaseBallSpeed)
	b.Pos = core.Vec2{X: -79.5, Y: 0}
	b.Vel = core.Vec2{X: -50, Y: 0}

	b.Tick(0.016, &players)

	if !b.Scored || b.Winner != 2 {
		t.Fatalf("Scored=%v Winner=%d, expected scored by player 2", b.Scored, b.Winner)
	}
	if math.Abs(b.Pos.X+81.2) > 1e-9 {
		t.Errorf("Pos.X = %v, expected clamp at -81.2", b.Pos.X)
	}
	if players[1].Score != 1 {
		t.Errorf("player 2 score = %d, expected 1", players[1].Score)
	}
}

func TestBallScoringMutuallyExclusive(t *testing.T) {
	// Even with an absurd velocity crossing both goals within one dt,
	// exactly one winner is recorded.
	players := newPlayers()
	var b Ball
	b.Init(BaseBallSpeed)
	b.Vel = core.Vec2{X: 1e6, Y: 0}

	b.Tick(1.0, &players)

	if b.Winner != 1 && b.Winner != 2 {
		t.Fatalf("Winner = %d, expected exactly one side", b.Winner)
	}
	if players[0].Score+players[1].Score != 1 {
		t.Errorf("total score = %d, expected 1", players[0].Score+players[1].Score)
	}
}

func TestBallFrozenAfterScore(t *testing.T) {
	players := newPlayers()
	var b Ball
	b.Init(BaseBallSpeed)
	b.Pos = core.Vec2{X: 79.5}
	b.Vel = core.Vec2{X: 50}
	b.Tick(0.016, &players)

	pos := b.Pos
	ev := b.Tick(0.016, &players)

	if b.Pos != pos {
		t.Error("scored ball must freeze until reset")
	}
	if ev != (Events{}) {
		t.Errorf("frozen ball reported events: %+v", ev)
	}
	if players[0].Score != 1 {
		t.Errorf("score incremented twice: %d", players[0].Score)
	}
}

func TestBallWallBounceKeepsSpeed(t *testing.T) {
	players := newPlayers()
	var b Ball
	b.Init(BaseBallSpeed)
	b.Pos = core.Vec2{X: 0, Y: 48}
	b.Vel = core.Vec2{X: 10, Y: 200}

	ev := b.Tick(0.016, &players)

	if b.Vel.Y != -200 {
		t.Errorf("Vel.Y = %v, expected fully inverted -200", b.Vel.Y)
	}
	if b.Pos.Y != 50-b.Size {
		t.Errorf("Pos.Y = %v, expected clamp at %v", b.Pos.Y, 50-b.Size)
	}
	if !ev.WallBounce {
		t.Error("wall bounce event not reported")
	}
}

func TestBallPaddleBounce(t *testing.T) {
	players := newPlayers()
	players[1].Vel = 5
	var b Ball
	b.Init(BaseBallSpeed)
	b.Pos = core.Vec2{X: 69, Y: 6}
	b.Vel = core.Vec2{X: 100, Y: 0}

	ev := b.Tick(0, &players)

	if !ev.PaddleHit {
		t.Fatal("paddle hit not reported")
	}
	// Repositioned flush against the near face
	if math.Abs(b.Pos.X-(70-PaddleHalfW-b.Size)) > 1e-9 {
		t.Errorf("Pos.X = %v, expected flush at %v", b.Pos.X, 70-PaddleHalfW-b.Size)
	}
	// Inverted with the stall-prevention epsilon
	if math.Abs(b.Vel.X-(-100+bounceEpsilon)) > 1e-12 {
		t.Errorf("Vel.X = %v, expected %v", b.Vel.X, -100+bounceEpsilon)
	}
	// English: contact offset 6/12 of the face plus paddle momentum
	want := (6.0/PaddleHalfH)*hitInfluence + 5*paddleInfluence
	if math.Abs(b.Vel.Y-want) > 1e-9 {
		t.Errorf("Vel.Y = %v, expected %v", b.Vel.Y, want)
	}
	if players[1].HitPulse == 0 {
		t.Error("paddle contact should start the hit glow")
	}
}

func TestBallXNeverZeroAfterPaddleBounce(t *testing.T) {
	players := newPlayers()
	var b Ball
	for _, vx := range []float64{-1e-9, 1e-9, -50, 50} {
		b.Init(BaseBallSpeed)
		b.Pos = core.Vec2{X: -69, Y: 0}
		b.Vel = core.Vec2{X: vx, Y: 0}
		b.Tick(0, &players)
		if b.Vel.X == 0 {
			t.Errorf("vx=%v: post-bounce Vel.X is exactly zero", vx)
		}
	}
}

func TestBallResetServesOppositeSide(t *testing.T) {
	var b Ball
	b.Init(95)
	b.Pos = core.Vec2{X: 81.2, Y: 7}
	b.Vel = core.Vec2{X: 60, Y: -30}
	b.Scored = true
	b.Winner = 1

	b.Reset()

	if b.Pos != (core.Vec2{}) {
		t.Errorf("Pos = %+v, expected origin", b.Pos)
	}
	if b.Vel.X != -60 || b.Vel.Y != 0 {
		t.Errorf("Vel = %+v, expected {-60 0}", b.Vel)
	}
	if b.Scored || b.Winner != 0 {
		t.Error("Reset should clear scoring state")
	}
}

func TestBallNoHitWithoutOverlap(t *testing.T) {
	// Paddle far from the ball: no contact, straight flight.
	players := newPlayers()
	players[0].Pos.Y = 30
	var b Ball
	b.Init(BaseBallSpeed)
	b.Pos = core.Vec2{X: -69, Y: -30}
	b.Vel = core.Vec2{X: -10, Y: 0}

	ev := b.Tick(0.016, &players)

	if ev.PaddleHit {
		t.Error("no overlap on y, must not register a hit")
	}
}
