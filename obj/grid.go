package obj

import (
	"github.com/milk9111/platformer/common"
)

// TileGrid is the dense, fixed-size tile array of a level.
type TileGrid struct {
	width  int
	height int
	tiles  []Tile
}

// NewTileGrid creates a grid of passable, invisible tiles.
func NewTileGrid(width, height int) *TileGrid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &TileGrid{width: width, height: height, tiles: make([]Tile, width*height)}
}

func (g *TileGrid) Width() int  { return g.width }
func (g *TileGrid) Height() int { return g.height }

// PixelWidth is the world width covered by the grid.
func (g *TileGrid) PixelWidth() float64 { return float64(g.width * common.TileWidth) }

// PixelHeight is the world height covered by the grid.
func (g *TileGrid) PixelHeight() float64 { return float64(g.height * common.TileHeight) }

func (g *TileGrid) inRange(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the tile stored at (x, y).
func (g *TileGrid) At(x, y int) (Tile, bool) {
	if !g.inRange(x, y) {
		return Tile{}, false
	}
	return g.tiles[y*g.width+x], true
}

// Set stores t at (x, y). Out of range writes are dropped.
func (g *TileGrid) Set(x, y int, t Tile) {
	if !g.inRange(x, y) {
		return
	}
	g.tiles[y*g.width+x] = t
}

// CollisionAt returns the collision kind at (x, y). Columns outside the
// grid are walls so nothing leaves through the level's sides; rows above
// or below are open so entities can jump past the top and fall out the
// bottom.
func (g *TileGrid) CollisionAt(x, y int) Collision {
	if x < 0 || x >= g.width {
		return Impassable
	}
	if y < 0 || y >= g.height {
		return Passable
	}
	return g.tiles[y*g.width+x].Collision
}

// Bounds returns the world rectangle of cell (x, y).
func (g *TileGrid) Bounds(x, y int) common.Rect {
	return common.Rect{
		X:      float64(x * common.TileWidth),
		Y:      float64(y * common.TileHeight),
		Width:  common.TileWidth,
		Height: common.TileHeight,
	}
}

// Remove clears cell (x, y) to a passable, invisible tile. It reports
// whether anything was removed.
func (g *TileGrid) Remove(x, y int) bool {
	t, ok := g.At(x, y)
	if !ok || t == (Tile{}) {
		return false
	}
	g.tiles[y*g.width+x] = Tile{}
	return true
}
