package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/prefabs"
)

// DeathCause tells listeners which death sound and animation to use.
type DeathCause int

const (
	DeathNone DeathCause = iota
	// DeathFall covers deaths with no killer: long drops and falling out
	// of the level.
	DeathFall
	DeathEnemy
)

func (c DeathCause) String() string {
	switch c {
	case DeathFall:
		return "fall"
	case DeathEnemy:
		return "enemy"
	}
	return "none"
}

// Player is the character controlled by the input snapshot. Position is
// the bottom center of its sprite.
type Player struct {
	position cp.Vector
	velocity cp.Vector

	alive    bool
	onGround bool
	state    motionState
	anim     Animation
	facing   FaceDirection

	// intents for the current frame
	movement  float64
	isJumping bool

	wasJumping     bool
	jumpTime       float64
	fallStartY     float64
	previousBottom float64
	powerUpTime    float64

	deathCause DeathCause
	killer     *Enemy

	box    spriteBox
	spec   prefabs.PlayerSpec
	grid   *TileGrid
	events *EventQueue
}

// NewPlayer creates a player at position. Notifications go to events.
func NewPlayer(grid *TileGrid, events *EventQueue, position cp.Vector, spec prefabs.PlayerSpec) *Player {
	p := &Player{
		box:    newSpriteBox(spec.Sprite),
		spec:   spec,
		grid:   grid,
		events: events,
		facing: FaceRight,
	}
	p.Reset(position)
	return p
}

func (p *Player) Position() cp.Vector         { return p.position }
func (p *Player) Velocity() cp.Vector         { return p.velocity }
func (p *Player) IsAlive() bool               { return p.alive }
func (p *Player) IsOnGround() bool            { return p.onGround }
func (p *Player) Animation() Animation        { return p.anim }
func (p *Player) Facing() FaceDirection       { return p.facing }
func (p *Player) JumpTime() float64           { return p.jumpTime }
func (p *Player) PowerUpTime() float64        { return p.powerUpTime }
func (p *Player) IsPoweredUp() bool           { return p.powerUpTime > 0 }
func (p *Player) DeathCause() DeathCause      { return p.deathCause }
func (p *Player) Killer() *Enemy              { return p.killer }
func (p *Player) BoundingRect() common.Rect   { return p.box.at(p.position) }
func (p *Player) SetPosition(pos cp.Vector)   { p.position = pos }
func (p *Player) SetVelocity(vel cp.Vector)   { p.velocity = vel }
func (p *Player) SetMovement(m float64)       { p.movement = common.Clamp(m, -1, 1) }
func (p *Player) SetJumping(jumping bool)     { p.isJumping = jumping }
func (p *Player) PreviousBottom() float64     { return p.previousBottom }
func (p *Player) SetPreviousBottom(b float64) { p.previousBottom = b }

// Reset brings the player back to life at position. The instance is
// reused for level start and every respawn.
func (p *Player) Reset(position cp.Vector) {
	p.position = position
	p.velocity = cp.Vector{}
	p.alive = true
	p.anim = AnimIdle
	p.movement = 0
	p.isJumping = false
	p.wasJumping = false
	p.jumpTime = 0
	p.powerUpTime = 0
	p.deathCause = DeathNone
	p.killer = nil
	p.state = nil
	p.settle()
}

// settle decides whether the player starts on solid ground by looking at
// the row just under its feet.
func (p *Player) settle() {
	bounds := p.BoundingRect()
	p.previousBottom = bounds.Bottom()
	p.onGround = false

	if math.Mod(bounds.Bottom(), common.TileHeight) == 0 {
		row := common.FloorDiv(bounds.Bottom(), common.TileHeight)
		left := common.FloorDiv(bounds.Left(), common.TileWidth)
		right := common.CeilDiv(bounds.Right(), common.TileWidth) - 1
		for x := left; x <= right; x++ {
			if p.grid.CollisionAt(x, row) != Passable {
				p.onGround = true
				break
			}
		}
	}

	if p.onGround {
		p.setState(stateGrounded)
	} else {
		p.setState(stateFalling)
	}
}

// Update reads input and moves the player for one frame of dt seconds.
// A dead player does not move.
func (p *Player) Update(dt float64, in *InputSnapshot, orientation Orientation) {
	if !p.alive {
		return
	}

	if p.powerUpTime > 0 {
		p.powerUpTime = max(0, p.powerUpTime-dt)
	}

	p.readInput(in, orientation)
	p.Move(dt)

	if p.alive && p.onGround {
		if math.Abs(p.velocity.X)-p.spec.RunThreshold > 0 {
			p.anim = AnimRun
		} else {
			p.anim = AnimIdle
		}
	}

	// Intents only last one frame.
	p.movement = 0
	p.isJumping = false
}

func (p *Player) readInput(in *InputSnapshot, orientation Orientation) {
	if in == nil {
		return
	}

	movement := in.StickX * p.spec.MoveStickScale
	if math.Abs(movement) < p.spec.StickDeadZone {
		movement = 0
	}

	if math.Abs(in.Tilt) > p.spec.TiltDeadZone {
		movement = in.Tilt * p.spec.AccelerometerScale
		if orientation == LandscapeLeft {
			movement = -movement
		}
	}

	if in.Left {
		movement = -1
	} else if in.Right {
		movement = 1
	}

	p.movement = common.Clamp(movement, -1, 1)
	p.isJumping = in.Jump
}

// Move applies acceleration, gravity, the jump curve and drag, integrates
// position and resolves the result against the tile grid.
func (p *Player) Move(dt float64) {
	previousPosition := p.position

	p.velocity.X += p.movement * p.spec.MoveAcceleration * dt
	p.velocity.Y = common.Clamp(p.velocity.Y+p.spec.GravityAcceleration*dt, -p.spec.MaxFallSpeed, p.spec.MaxFallSpeed)
	p.velocity.Y = p.doJump(p.velocity.Y, dt)

	if p.onGround {
		p.velocity.X *= p.spec.GroundDragFactor
	} else {
		p.velocity.X *= p.spec.AirDragFactor
	}
	p.velocity.X = common.Clamp(p.velocity.X, -p.spec.MaxMoveSpeed, p.spec.MaxMoveSpeed)

	p.position = p.position.Add(p.velocity.Mult(dt))
	// Collision works on whole pixels.
	p.position = cp.Vector{X: math.Round(p.position.X), Y: math.Round(p.position.Y)}

	p.HandleCollisions()

	if p.position.X == previousPosition.X {
		p.velocity.X = 0
	}
	if p.position.Y == previousPosition.Y {
		p.velocity.Y = 0
	}

	if p.velocity.X > 0 {
		p.facing = FaceRight
	} else if p.velocity.X < 0 {
		p.facing = FaceLeft
	}
}

// doJump returns the vertical velocity after the jump curve. Holding jump
// longer keeps the upward push alive longer, up to MaxJumpTime.
func (p *Player) doJump(velocityY, dt float64) float64 {
	if p.state == stateFalling && p.onGround {
		p.land()
	}

	if p.isJumping {
		if (!p.wasJumping && p.onGround) || p.jumpTime > 0 {
			if p.jumpTime == 0 {
				p.events.Push(Event{Kind: EventJump, Position: p.position})
			}
			p.jumpTime += dt
		}

		if p.jumpTime > 0 && p.jumpTime <= p.spec.MaxJumpTime {
			velocityY = p.spec.JumpLaunchVelocity * (1 - math.Pow(p.jumpTime/p.spec.MaxJumpTime, p.spec.JumpControlPower))
			p.setState(stateAscending)
		} else {
			p.jumpTime = 0
		}
	} else {
		p.jumpTime = 0
	}
	p.wasJumping = p.isJumping

	if p.jumpTime == 0 {
		if p.onGround {
			p.setState(stateGrounded)
		} else if p.state != stateFalling {
			p.setState(stateFalling)
		}
	}

	return velocityY
}

// OnKilled ends the current life. killer is nil for falls.
func (p *Player) OnKilled(killer *Enemy) {
	if !p.alive {
		return
	}
	p.alive = false
	p.killer = killer
	p.deathCause = DeathFall
	if killer != nil {
		p.deathCause = DeathEnemy
	}
	p.anim = AnimDie
	p.events.Push(Event{
		Kind:     EventPlayerKilled,
		Position: p.position,
		Effect:   EffectPoof,
		Data:     PlayerKilledEvent{Cause: p.deathCause, Killer: killer},
	})
}

// OnReachedExit plays the victory animation.
func (p *Player) OnReachedExit() {
	p.anim = AnimCelebrate
}

// PowerUp makes the player lethal to enemies for MaxPowerUpTime seconds.
func (p *Player) PowerUp() {
	p.powerUpTime = p.spec.MaxPowerUpTime
	p.events.Push(Event{Kind: EventPowerUp, Position: p.position, Effect: EffectSparkle})
}
