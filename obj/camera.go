package obj

import "github.com/milk9111/platformer/common"

// Camera is a horizontal-only scroller with a dead zone. The view only
// moves once the tracked point leaves the middle band of the screen, and
// never shows anything past the level's left or right edge.
type Camera struct {
	offset float64

	viewW  float64
	viewH  float64
	margin float64
	// world width in pixels
	worldW float64
}

// NewCamera creates a camera for a viewport of viewW x viewH pixels.
// margin is the dead-zone width on each side as a fraction of viewW.
func NewCamera(viewW, viewH, margin, worldW float64) *Camera {
	return &Camera{viewW: viewW, viewH: viewH, margin: margin, worldW: worldW}
}

// Offset returns the world X shown at the left edge of the screen.
func (c *Camera) Offset() float64 { return c.offset }

// ViewSize returns the viewport dimensions.
func (c *Camera) ViewSize() (float64, float64) { return c.viewW, c.viewH }

// MaxOffset is the largest offset that keeps the view inside the level.
func (c *Camera) MaxOffset() float64 {
	return max(0, c.worldW-c.viewW)
}

// Scroll shifts the view by exactly the amount x has overshot the dead
// zone, then clamps to the level.
func (c *Camera) Scroll(x float64) {
	marginWidth := c.viewW * c.margin
	marginLeft := c.offset + marginWidth
	marginRight := c.offset + c.viewW - marginWidth

	var movement float64
	if x < marginLeft {
		movement = x - marginLeft
	} else if x > marginRight {
		movement = x - marginRight
	}

	c.offset = common.Clamp(c.offset+movement, 0, c.MaxOffset())
}

// SnapTo places the view so x sits at the center of the screen.
func (c *Camera) SnapTo(x float64) {
	c.offset = common.Clamp(x-c.viewW/2, 0, c.MaxOffset())
}
