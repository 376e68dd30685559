package obj

// Orientation is the physical orientation of the display, used to map
// device tilt onto horizontal movement.
type Orientation int

const (
	LandscapeRight Orientation = iota
	LandscapeLeft
	Portrait
)

// InputSnapshot is the controller state sampled once per frame by the
// driver.
type InputSnapshot struct {
	// StickX is the analog stick's horizontal axis in [-1, 1].
	StickX float64
	// Tilt is the accelerometer reading along the display's long axis.
	Tilt float64
	// Left and Right are digital direction inputs (keys, d-pad).
	Left  bool
	Right bool
	// Jump is true while any jump input is held.
	Jump bool
}
