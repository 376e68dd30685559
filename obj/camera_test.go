package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraScroll(t *testing.T) {
	cases := []struct {
		name   string
		start  float64
		x      float64
		worldW float64
		want   float64
	}{
		{name: "inside_dead_zone", start: 0, x: 500, worldW: 2000, want: 0},
		{name: "past_right_margin", start: 0, x: 600, worldW: 2000, want: 80},
		{name: "past_left_margin", start: 400, x: 600, worldW: 2000, want: 320},
		{name: "clamped_left", start: 0, x: 20, worldW: 2000, want: 0},
		{name: "clamped_right", start: 1000, x: 1990, worldW: 2000, want: 1200},
		{name: "narrow_level", start: 0, x: 390, worldW: 400, want: 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := NewCamera(800, 480, 0.35, c.worldW)
			cam.offset = c.start
			cam.Scroll(c.x)
			assert.Equal(t, c.want, cam.Offset())
		})
	}
}

func TestCameraKeepsTargetInDeadZone(t *testing.T) {
	cam := NewCamera(800, 480, 0.35, 4000)
	for x := 0.0; x < 3000; x += 7 {
		cam.Scroll(x)
		if x > 520 {
			assert.Equal(t, x-520, cam.Offset())
		}
	}
	for x := 3000.0; x > 1000; x -= 11 {
		cam.Scroll(x)
		screenX := x - cam.Offset()
		assert.GreaterOrEqual(t, screenX, 280.0)
		assert.LessOrEqual(t, screenX, 520.0)
	}
}

func TestCameraSnapTo(t *testing.T) {
	cam := NewCamera(800, 480, 0.35, 2000)
	cam.SnapTo(1000)
	assert.Equal(t, 600.0, cam.Offset())
	cam.SnapTo(100)
	assert.Equal(t, 0.0, cam.Offset())
	cam.SnapTo(1990)
	assert.Equal(t, 1200.0, cam.Offset())
	assert.Equal(t, 1200.0, cam.MaxOffset())

	w, h := cam.ViewSize()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 480.0, h)
}
