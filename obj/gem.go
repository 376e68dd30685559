package obj

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/prefabs"
)

// GemState is the pickup lifecycle of a gem.
type GemState int

const (
	GemWaiting GemState = iota
	GemCollecting
	GemCollected
)

func (s GemState) String() string {
	switch s {
	case GemWaiting:
		return "waiting"
	case GemCollecting:
		return "collecting"
	case GemCollected:
		return "collected"
	}
	return "unknown"
}

// Gem is a collectible that bobs in place until touched, then flies to the
// HUD counter and disappears.
type Gem struct {
	Value      int
	PowerUp    bool
	Appearance string

	base     cp.Vector
	position cp.Vector
	scale    float64
	state    GemState
	spec     prefabs.GemSpec
}

// NewGem places a gem centered on position.
func NewGem(position cp.Vector, kind prefabs.GemKindSpec, spec prefabs.GemSpec) *Gem {
	return &Gem{
		Value:      kind.Value,
		PowerUp:    kind.PowerUp,
		Appearance: kind.Image,
		base:       position,
		position:   position,
		scale:      1,
		spec:       spec,
	}
}

func (g *Gem) Position() cp.Vector { return g.position }
func (g *Gem) Base() cp.Vector     { return g.base }
func (g *Gem) Scale() float64      { return g.scale }
func (g *Gem) State() GemState     { return g.state }

// BoundingCircle is the pickup area around the gem's current position.
func (g *Gem) BoundingCircle() common.Circle {
	return common.Circle{Center: g.position, Radius: common.TileWidth * g.spec.RadiusFactor}
}

// Collect starts the homing animation. It reports false if the gem was
// already collected.
func (g *Gem) Collect() bool {
	if g.state != GemWaiting {
		return false
	}
	g.state = GemCollecting
	g.scale = g.spec.CollectScale
	return true
}

// Update advances the bob or homing animation. total is the game time since
// start, dt the frame time in seconds, and target the world point the gem
// homes toward once collected.
func (g *Gem) Update(total time.Duration, dt float64, target cp.Vector) {
	switch g.state {
	case GemWaiting:
		// Neighboring gems bob out of phase with each other.
		t := total.Seconds()*g.spec.BounceRate + g.base.X*g.spec.BounceSync
		bounce := math.Sin(t) * g.spec.BounceHeight * g.spec.TextureHeight
		g.position = cp.Vector{X: g.base.X, Y: g.base.Y + bounce}
		g.scale = 1
	case GemCollecting:
		if g.position.Y > target.Y {
			toTarget := target.Sub(g.position)
			step := g.spec.CollectSpeed * dt
			if dist := toTarget.Length(); step >= dist {
				g.position = target
			} else {
				g.position = g.position.Add(toTarget.Mult(step / dist))
			}
			g.scale *= g.spec.ShrinkFactor
		}
		if g.position.Y <= target.Y {
			g.state = GemCollected
		}
	}
}
