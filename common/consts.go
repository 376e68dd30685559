package common

// Every tile in a level shares one fixed size, in world pixels.
const (
	TileWidth  = 40
	TileHeight = 32
)

// Logical screen size the driver lays the game out at.
const (
	BaseWidth  = 800
	BaseHeight = 480
)
