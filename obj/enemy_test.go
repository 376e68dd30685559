package obj

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEnemy(g *TileGrid, pos cp.Vector) *Enemy {
	return NewEnemy(g, pos, "MonsterA", prefabs.DefaultTuning().Enemy)
}

// walkUntilWaiting steps e until it stops to turn around.
func walkUntilWaiting(t *testing.T, e *Enemy, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		e.Update(dt, false)
		if e.State() == EnemyWaiting {
			return i
		}
	}
	require.FailNow(t, "enemy never stopped")
	return 0
}

func TestEnemyBoundingRect(t *testing.T) {
	e := newTestEnemy(gridFrom("..", "##"), cp.Vector{X: 60, Y: 32})
	r := e.BoundingRect()
	assert.Equal(t, 49.0, r.Left())
	assert.Equal(t, 22.0, r.Width)
	assert.Equal(t, 44.0, r.Height)
	assert.Equal(t, 32.0, r.Bottom())
}

func TestEnemyTurnsAtWall(t *testing.T) {
	e := newTestEnemy(gridFrom(
		"#.....",
		"######",
	), cp.Vector{X: 60, Y: 32})

	walkUntilWaiting(t, e, 30)
	assert.Equal(t, FaceLeft, e.Direction())
	assert.InDelta(t, 50.5, e.Position().X, 0.6)
	assert.Equal(t, AnimIdle, e.Animation())
	stoppedAt := e.Position().X

	for i := 0; i < 20; i++ {
		e.Update(dt, false)
	}
	assert.Equal(t, EnemyWaiting, e.State(), "waits before turning")
	assert.Equal(t, stoppedAt, e.Position().X)

	for i := 0; i < 20; i++ {
		e.Update(dt, false)
	}
	assert.Equal(t, EnemyWalking, e.State())
	assert.Equal(t, FaceRight, e.Direction())
	assert.Greater(t, e.Position().X, stoppedAt)
	assert.Equal(t, AnimRun, e.Animation())
}

func TestEnemyTurnsAtLedge(t *testing.T) {
	e := newTestEnemy(gridFrom(
		"....A..",
		"..####.",
	), cp.Vector{X: 180, Y: 32})

	walkUntilWaiting(t, e, 120)
	assert.Equal(t, FaceLeft, e.Direction())
	assert.Greater(t, e.Position().X, 89.0)
	assert.Less(t, e.Position().X, 91.0)
}

func TestEnemyTurnsAtLevelEdge(t *testing.T) {
	e := newTestEnemy(gridFrom(
		"......",
		"######",
	), cp.Vector{X: 180, Y: 32})
	e.direction = FaceRight

	walkUntilWaiting(t, e, 120)
	assert.GreaterOrEqual(t, e.Position().X+11, 240.0)
}

func TestEnemyPausedDoesNotMove(t *testing.T) {
	e := newTestEnemy(gridFrom(
		"......",
		"######",
	), cp.Vector{X: 100, Y: 32})

	for i := 0; i < 30; i++ {
		e.Update(dt, true)
	}
	assert.Equal(t, cp.Vector{X: 100, Y: 32}, e.Position())
	assert.Equal(t, EnemyWalking, e.State())
}

func TestEnemyKilled(t *testing.T) {
	e := newTestEnemy(gridFrom(
		"......",
		"######",
	), cp.Vector{X: 100, Y: 32})

	assert.True(t, e.OnKilled())
	assert.False(t, e.OnKilled(), "already dead")
	assert.Equal(t, AnimDie, e.Animation())

	e.Update(dt, false)
	assert.Equal(t, cp.Vector{X: 100, Y: 32}, e.Position())
}
