package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// animation is a strip of square frames laid out left to right, so the
// frame count is the sheet width over its height.
type animation struct {
	frames    []*ebiten.Image
	frameTime float64
	loop      bool
}

func newAnimation(sheet *ebiten.Image, frameTime float64, loop bool) *animation {
	a := &animation{frameTime: frameTime, loop: loop}
	if sheet == nil {
		return a
	}
	b := sheet.Bounds()
	size := b.Dy()
	count := 1
	if size > 0 {
		count = max(1, b.Dx()/size)
	}
	if count == 1 {
		a.frames = []*ebiten.Image{sheet}
		return a
	}
	a.frames = make([]*ebiten.Image, count)
	for i := range count {
		r := image.Rect(b.Min.X+i*size, b.Min.Y, b.Min.X+(i+1)*size, b.Max.Y)
		a.frames[i] = sheet.SubImage(r).(*ebiten.Image)
	}
	return a
}

// frameSize is the width and height of one frame.
func (a *animation) frameSize() (int, int) {
	if len(a.frames) == 0 {
		return 0, 0
	}
	b := a.frames[0].Bounds()
	return b.Dx(), b.Dy()
}

// animationPlayer advances one entity through whichever animation it was
// last asked to play.
type animationPlayer struct {
	anim  *animation
	frame int
	time  float64
}

// Play switches to a, restarting only when it differs from the current one.
func (p *animationPlayer) Play(a *animation) {
	if p.anim == a {
		return
	}
	p.anim = a
	p.frame = 0
	p.time = 0
}

// Update advances the frame clock by dt seconds.
func (p *animationPlayer) Update(dt float64) {
	a := p.anim
	if a == nil || len(a.frames) <= 1 || a.frameTime <= 0 {
		return
	}
	p.time += dt
	for p.time > a.frameTime {
		p.time -= a.frameTime
		if a.loop {
			p.frame = (p.frame + 1) % len(a.frames)
		} else {
			p.frame = min(p.frame+1, len(a.frames)-1)
		}
	}
}

// Draw draws the current frame with its bottom center at (x, y), mirrored
// when flip is set.
func (p *animationPlayer) Draw(screen *ebiten.Image, x, y float64, flip bool, op *ebiten.DrawImageOptions) {
	a := p.anim
	if a == nil || len(a.frames) == 0 {
		return
	}
	fw, fh := a.frameSize()

	var dop ebiten.DrawImageOptions
	if op != nil {
		dop = *op
	}
	dop.GeoM.Reset()
	dop.GeoM.Translate(-float64(fw)/2, -float64(fh))
	if flip {
		dop.GeoM.Scale(-1, 1)
	}
	dop.GeoM.Translate(x, y)
	dop.Filter = ebiten.FilterNearest
	screen.DrawImage(a.frames[p.frame%len(a.frames)], &dop)
}
