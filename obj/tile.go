package obj

// Collision describes how a tile reacts to an entity moving through it.
type Collision int

const (
	// Passable tiles never block.
	Passable Collision = iota
	// Impassable tiles block from every side.
	Impassable
	// Platform tiles block only an entity landing on them from above.
	Platform
	// Breakable tiles behave like platforms and shatter when hit from
	// below.
	Breakable
)

func (c Collision) String() string {
	switch c {
	case Passable:
		return "passable"
	case Impassable:
		return "impassable"
	case Platform:
		return "platform"
	case Breakable:
		return "breakable"
	}
	return "unknown"
}

// Tile is one cell of the level grid. Appearance is an asset content path,
// empty for invisible tiles.
type Tile struct {
	Appearance string
	Collision  Collision
}
