package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
)

// HandleCollisions pushes the player out of every solid tile it overlaps
// and recomputes the on-ground flag.
//
// Each overlap is resolved along its shallower axis. Platforms and
// breakable blocks only ever resolve vertically, and only hold the player
// up when it was above them on the previous frame, so the player can jump
// up through them and land on top.
func (p *Player) HandleCollisions() {
	bounds := p.BoundingRect()
	leftTile := common.FloorDiv(bounds.Left(), common.TileWidth)
	rightTile := common.CeilDiv(bounds.Right(), common.TileWidth) - 1
	topTile := common.FloorDiv(bounds.Top(), common.TileHeight)
	bottomTile := common.CeilDiv(bounds.Bottom(), common.TileHeight) - 1

	p.onGround = false

	for y := topTile; y <= bottomTile; y++ {
		for x := leftTile; x <= rightTile; x++ {
			collision := p.grid.CollisionAt(x, y)
			if collision == Passable {
				continue
			}

			tileBounds := p.grid.Bounds(x, y)
			depth := common.IntersectionDepth(bounds, tileBounds)
			if depth == (cp.Vector{}) {
				continue
			}

			absDepthX := math.Abs(depth.X)
			absDepthY := math.Abs(depth.Y)

			if absDepthY < absDepthX || collision == Platform {
				landed := p.previousBottom <= tileBounds.Top()
				if landed {
					p.onGround = true
				}

				if collision == Breakable && p.velocity.Y < 0 && depth.Y > 0 && !landed {
					p.breakTile(x, y)
				}

				if collision == Impassable || landed {
					p.position = cp.Vector{X: p.position.X, Y: p.position.Y + depth.Y}
					bounds = p.BoundingRect()
				}
			} else if collision == Impassable {
				p.position = cp.Vector{X: p.position.X + depth.X, Y: p.position.Y}
				bounds = p.BoundingRect()
			}
		}
	}

	if bounds.Top() >= p.grid.PixelHeight() {
		p.OnKilled(nil)
	}

	p.previousBottom = bounds.Bottom()
}

// breakTile removes a breakable block the player's head just hit.
func (p *Player) breakTile(x, y int) {
	t, _ := p.grid.At(x, y)
	if !p.grid.Remove(x, y) {
		return
	}
	p.events.Push(Event{
		Kind:     EventTileBroken,
		Position: p.grid.Bounds(x, y).Center(),
		Effect:   EffectDebris,
		Data:     TileBrokenEvent{X: x, Y: y, Appearance: t.Appearance},
	})
}
