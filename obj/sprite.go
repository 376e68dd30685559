package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/prefabs"
)

// Animation names an animation a renderer should play for an entity.
type Animation string

const (
	AnimIdle      Animation = "idle"
	AnimRun       Animation = "run"
	AnimJump      Animation = "jump"
	AnimCelebrate Animation = "celebrate"
	AnimDie       Animation = "die"
)

// FaceDirection is the horizontal direction an entity looks toward.
type FaceDirection int

const (
	FaceLeft  FaceDirection = -1
	FaceRight FaceDirection = 1
)

// spriteBox is the collision box of a bottom-center anchored sprite.
type spriteBox struct {
	local  common.Rect
	origin cp.Vector
}

func newSpriteBox(s prefabs.SpriteSpec) spriteBox {
	fw := float64(s.FrameWidth)
	fh := float64(s.FrameHeight)
	width := math.Floor(fw * s.BoundsWidth)
	height := math.Floor(fh * s.BoundsHeight)
	return spriteBox{
		local: common.Rect{
			X:      math.Floor((fw - width) / 2),
			Y:      fh - height,
			Width:  width,
			Height: height,
		},
		origin: cp.Vector{X: fw / 2, Y: fh},
	}
}

// at returns the world collision rectangle for an anchor position.
func (b spriteBox) at(pos cp.Vector) common.Rect {
	return common.Rect{
		X:      math.Round(pos.X-b.origin.X) + b.local.X,
		Y:      math.Round(pos.Y-b.origin.Y) + b.local.Y,
		Width:  b.local.Width,
		Height: b.local.Height,
	}
}
