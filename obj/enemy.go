package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/prefabs"
)

// EnemyState is the patrol state of an enemy.
type EnemyState int

const (
	EnemyWalking EnemyState = iota
	EnemyWaiting
)

func (s EnemyState) String() string {
	if s == EnemyWaiting {
		return "waiting"
	}
	return "walking"
}

// Enemy walks back and forth along a floor, pausing before it turns around
// at a wall or a ledge.
type Enemy struct {
	Variant    string
	Appearance string

	position  cp.Vector
	direction FaceDirection
	state     EnemyState
	waitTime  float64
	alive     bool

	box  spriteBox
	grid *TileGrid
	spec prefabs.EnemySpec
}

// NewEnemy creates a live enemy standing at position, walking left.
func NewEnemy(grid *TileGrid, position cp.Vector, variant string, spec prefabs.EnemySpec) *Enemy {
	return &Enemy{
		Variant:    variant,
		Appearance: "Sprites/" + variant,
		position:   position,
		direction:  FaceLeft,
		state:      EnemyWalking,
		alive:      true,
		box:        newSpriteBox(spec.Sprite),
		grid:       grid,
		spec:       spec,
	}
}

func (e *Enemy) Position() cp.Vector       { return e.position }
func (e *Enemy) Direction() FaceDirection  { return e.direction }
func (e *Enemy) State() EnemyState         { return e.state }
func (e *Enemy) WaitTime() float64         { return e.waitTime }
func (e *Enemy) IsAlive() bool             { return e.alive }
func (e *Enemy) BoundingRect() common.Rect { return e.box.at(e.position) }

// Animation returns the animation a renderer should show.
func (e *Enemy) Animation() Animation {
	switch {
	case !e.alive:
		return AnimDie
	case e.state == EnemyWaiting:
		return AnimIdle
	}
	return AnimRun
}

// OnKilled marks the enemy dead. It stays in the level so its death can be
// drawn.
func (e *Enemy) OnKilled() bool {
	if !e.alive {
		return false
	}
	e.alive = false
	return true
}

// Update advances the patrol by dt seconds. While paused the enemy still
// decides where to go but does not move.
func (e *Enemy) Update(dt float64, paused bool) {
	if !e.alive {
		return
	}

	dir := int(e.direction)
	// Tile just behind the leading edge, on the floor row under the enemy.
	posX := e.position.X + e.box.local.Width/2*float64(dir)
	tileX := common.FloorDiv(posX, common.TileWidth) - dir
	tileY := common.FloorDiv(e.position.Y, common.TileHeight)

	switch e.state {
	case EnemyWaiting:
		e.waitTime = max(0, e.waitTime-dt)
		if e.waitTime <= 0 {
			e.direction = -e.direction
			e.state = EnemyWalking
		}
	case EnemyWalking:
		wallAhead := e.grid.CollisionAt(tileX+dir, tileY-1) == Impassable
		ledgeAhead := e.grid.CollisionAt(tileX+dir, tileY) == Passable
		if wallAhead || ledgeAhead {
			e.state = EnemyWaiting
			e.waitTime = e.spec.MaxWaitTime
			return
		}
		if !paused {
			e.position.X += float64(dir) * e.spec.MoveSpeed * dt
		}
	}
}
