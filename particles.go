package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/obj"
	"golang.org/x/image/colornames"
)

const (
	maxParticles    = 512
	particleGravity = 600.0
)

type particle struct {
	pos     cp.Vector
	vel     cp.Vector
	size    float64
	life    float64
	maxLife float64
	gravity bool
	col     color.RGBA
}

// particleSystem is a fixed-capacity pool of short-lived effect particles
// in world space. When full, new particles overwrite the oldest slots.
type particleSystem struct {
	max    int
	p      []particle
	ovrIdx int
	rand   *rand.Rand
}

func newParticleSystem(maxCount int, seed int64) *particleSystem {
	if maxCount <= 0 {
		maxCount = maxParticles
	}
	return &particleSystem{
		max:  maxCount,
		p:    make([]particle, 0, maxCount),
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (ps *particleSystem) add(p particle) {
	if len(ps.p) < ps.max {
		ps.p = append(ps.p, p)
		return
	}
	if ps.ovrIdx >= ps.max {
		ps.ovrIdx = 0
	}
	ps.p[ps.ovrIdx] = p
	ps.ovrIdx++
}

func (ps *particleSystem) rangeF(lo, hi float64) float64 {
	return lo + ps.rand.Float64()*(hi-lo)
}

// burst adds n particles flying out of pos in random directions.
func (ps *particleSystem) burst(pos cp.Vector, n int, minSpeed, maxSpeed, life float64, gravity bool, cols ...color.RGBA) {
	for i := 0; i < n; i++ {
		ang := ps.rangeF(0, 2*math.Pi)
		spd := ps.rangeF(minSpeed, maxSpeed)
		ps.add(particle{
			pos:     pos,
			vel:     cp.Vector{X: math.Cos(ang) * spd, Y: math.Sin(ang) * spd},
			size:    ps.rangeF(2, 4),
			life:    0,
			maxLife: ps.rangeF(life/2, life),
			gravity: gravity,
			col:     cols[i%len(cols)],
		})
	}
}

// Spawn starts the named effect at a world position.
func (ps *particleSystem) Spawn(effect string, pos cp.Vector) {
	switch effect {
	case obj.EffectSparkle:
		ps.burst(pos, 12, 40, 120, 0.4, false, colornames.Gold, colornames.White)
	case obj.EffectDebris:
		ps.burst(pos, 16, 80, 220, 0.8, true, colornames.Darkgoldenrod, colornames.Saddlebrown)
	case obj.EffectFireworks:
		for i := 0; i < 3; i++ {
			center := pos.Add(cp.Vector{X: ps.rangeF(-60, 60), Y: ps.rangeF(-120, -40)})
			ps.burst(center, 24, 60, 180, 1.2, true, colornames.Red, colornames.Yellow, colornames.Deepskyblue)
		}
	case obj.EffectPoof:
		ps.burst(pos.Add(cp.Vector{Y: -24}), 14, 20, 70, 0.6, false, colornames.Lightgray, colornames.Gray)
	}
}

// Update advances every particle by dt seconds and drops dead ones.
func (ps *particleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	for i := 0; i < len(ps.p); {
		p := &ps.p[i]
		p.life += dt
		if p.life >= p.maxLife {
			last := len(ps.p) - 1
			ps.p[i] = ps.p[last]
			ps.p = ps.p[:last]
			continue
		}
		if p.gravity {
			p.vel.Y += particleGravity * dt
		}
		p.pos = p.pos.Add(p.vel.Mult(dt))
		i++
	}
	if ps.ovrIdx > len(ps.p) {
		ps.ovrIdx = 0
	}
}

// Len returns the number of live particles.
func (ps *particleSystem) Len() int { return len(ps.p) }

// Draw renders the particles with the camera's horizontal offset applied.
func (ps *particleSystem) Draw(screen *ebiten.Image, offsetX float64) {
	for _, p := range ps.p {
		fade := 1 - p.life/p.maxLife
		c := color.RGBA{
			R: uint8(float64(p.col.R) * fade),
			G: uint8(float64(p.col.G) * fade),
			B: uint8(float64(p.col.B) * fade),
			A: uint8(float64(p.col.A) * fade),
		}
		x := float32(p.pos.X - offsetX - p.size/2)
		y := float32(p.pos.Y - p.size/2)
		vector.FillRect(screen, x, y, float32(p.size), float32(p.size), c, false)
	}
}
