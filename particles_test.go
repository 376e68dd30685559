package main

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/obj"
	"github.com/stretchr/testify/assert"
)

func TestParticleEffects(t *testing.T) {
	cases := []struct {
		effect string
		want   int
	}{
		{effect: obj.EffectSparkle, want: 12},
		{effect: obj.EffectDebris, want: 16},
		{effect: obj.EffectFireworks, want: 72},
		{effect: obj.EffectPoof, want: 14},
		{effect: obj.EffectNone, want: 0},
		{effect: "confetti", want: 0},
	}

	for _, c := range cases {
		t.Run(c.effect, func(t *testing.T) {
			ps := newParticleSystem(256, 1)
			ps.Spawn(c.effect, cp.Vector{X: 100, Y: 100})
			assert.Equal(t, c.want, ps.Len())
		})
	}
}

func TestParticlesOverwriteWhenFull(t *testing.T) {
	ps := newParticleSystem(20, 1)
	for i := 0; i < 5; i++ {
		ps.Spawn(obj.EffectSparkle, cp.Vector{})
	}
	assert.Equal(t, 20, ps.Len())
}

func TestParticlesExpire(t *testing.T) {
	ps := newParticleSystem(64, 1)
	ps.Spawn(obj.EffectSparkle, cp.Vector{X: 10, Y: 10})

	ps.Update(0)
	assert.Equal(t, 12, ps.Len(), "a zero step changes nothing")

	ps.Update(0.1)
	assert.Equal(t, 12, ps.Len(), "every particle lives at least half its life")
	for _, p := range ps.p {
		assert.NotEqual(t, cp.Vector{X: 10, Y: 10}, p.pos)
	}

	for i := 0; i < 60; i++ {
		ps.Update(1.0 / 60)
	}
	assert.Zero(t, ps.Len())
}

func TestParticleGravityPullsDown(t *testing.T) {
	ps := newParticleSystem(64, 1)
	ps.Spawn(obj.EffectDebris, cp.Vector{})
	before := make([]float64, ps.Len())
	for i, p := range ps.p {
		before[i] = p.vel.Y
	}

	ps.Update(0.05)
	for i, p := range ps.p {
		assert.InDelta(t, before[i]+particleGravity*0.05, p.vel.Y, 1e-9)
	}
}

func TestNewParticleSystemDefaultsCapacity(t *testing.T) {
	ps := newParticleSystem(0, 1)
	assert.Equal(t, maxParticles, ps.max)
}
