package obj

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGem(t *testing.T, marker rune, pos cp.Vector) *Gem {
	t.Helper()
	spec := prefabs.DefaultTuning().Gem
	kind, ok := spec.Kind(marker)
	require.True(t, ok)
	return NewGem(pos, kind, spec)
}

func TestGemBobsInPlace(t *testing.T) {
	g := newTestGem(t, '1', cp.Vector{X: 180, Y: 80})
	amplitude := 0.18 * 32

	var minY, maxY float64 = 80, 80
	for i := 0; i < 120; i++ {
		g.Update(time.Duration(i)*frame, dt, cp.Vector{})
		pos := g.Position()
		assert.Equal(t, 180.0, pos.X)
		assert.InDelta(t, 80, pos.Y, amplitude+1e-9)
		maxY = max(maxY, pos.Y)
		minY = min(minY, pos.Y)
		assert.Equal(t, 1.0, g.Scale())
	}
	assert.Greater(t, maxY-minY, amplitude, "a full bob cycle fits in two seconds")
	assert.Equal(t, GemWaiting, g.State())
}

func TestGemCollectOnce(t *testing.T) {
	g := newTestGem(t, '4', cp.Vector{X: 180, Y: 80})
	assert.True(t, g.PowerUp)
	assert.Equal(t, 100, g.Value)

	assert.True(t, g.Collect())
	assert.Equal(t, GemCollecting, g.State())
	assert.Equal(t, 1.5, g.Scale())
	assert.False(t, g.Collect())
}

func TestGemHomesToTarget(t *testing.T) {
	g := newTestGem(t, '2', cp.Vector{X: 300, Y: 200})
	target := cp.Vector{X: 24, Y: 16}
	require.True(t, g.Collect())

	distance := g.Position().Sub(target).Length()
	scale := g.Scale()
	frames := 0
	for g.State() == GemCollecting {
		frames++
		require.Less(t, frames, 60)
		g.Update(time.Duration(frames)*frame, dt, target)

		d := g.Position().Sub(target).Length()
		assert.Less(t, d, distance)
		assert.Less(t, g.Scale(), scale)
		distance, scale = d, g.Scale()
	}

	assert.Equal(t, GemCollected, g.State())
	assert.Equal(t, target, g.Position(), "never overshoots")
	assert.Equal(t, 23, frames)
}

func TestGemBelowTargetIsStoredImmediately(t *testing.T) {
	g := newTestGem(t, '3', cp.Vector{X: 100, Y: 10})
	require.True(t, g.Collect())

	g.Update(frame, dt, cp.Vector{X: 24, Y: 16})
	assert.Equal(t, GemCollected, g.State())
	assert.Equal(t, cp.Vector{X: 100, Y: 10}, g.Position())
}

func TestGemBoundingCircle(t *testing.T) {
	g := newTestGem(t, '1', cp.Vector{X: 100, Y: 50})
	c := g.BoundingCircle()
	assert.Equal(t, cp.Vector{X: 100, Y: 50}, c.Center)
	assert.InDelta(t, 40.0/3, c.Radius, 1e-9)
}
