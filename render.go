package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const timeWarning = 30 * time.Second

type frameTiming struct {
	frameTime float64
	loop      bool
}

var animationTimings = map[obj.Animation]frameTiming{
	obj.AnimIdle:      {frameTime: 0.15, loop: true},
	obj.AnimRun:       {frameTime: 0.1, loop: true},
	obj.AnimJump:      {frameTime: 0.1, loop: false},
	obj.AnimCelebrate: {frameTime: 0.1, loop: false},
	obj.AnimDie:       {frameTime: 0.1, loop: false},
}

var poweredUpColors = []color.RGBA{
	colornames.Red,
	colornames.Blue,
	colornames.Orange,
	colornames.Yellow,
}

// renderer draws a session's level, effects and HUD in screen space.
type renderer struct {
	lib    *assets.Library
	tuning *prefabs.Tuning
	face   text.Face

	anims   map[string]*animation
	level   *obj.Level
	player  animationPlayer
	enemies map[*obj.Enemy]*animationPlayer
}

func newRenderer(lib *assets.Library, tuning *prefabs.Tuning) *renderer {
	return &renderer{
		lib:     lib,
		tuning:  tuning,
		face:    text.NewGoXFace(basicfont.Face7x13),
		anims:   make(map[string]*animation),
		enemies: make(map[*obj.Enemy]*animationPlayer),
	}
}

// sheetName maps a sprite and animation to a sheet, e.g.
// "Sprites/Player/Run".
func sheetName(sprite string, a obj.Animation) string {
	name := string(a)
	if name == "" {
		name = string(obj.AnimIdle)
	}
	return sprite + "/" + strings.ToUpper(name[:1]) + name[1:]
}

func (r *renderer) animation(spec prefabs.SpriteSpec, sprite string, a obj.Animation) *animation {
	key := sheetName(sprite, a)
	if anim, ok := r.anims[key]; ok {
		return anim
	}
	timing, ok := animationTimings[a]
	if !ok {
		timing = animationTimings[obj.AnimIdle]
	}
	anim := newAnimation(r.lib.Image(key, spec.FrameWidth, spec.FrameHeight), timing.frameTime, timing.loop)
	r.anims[key] = anim
	return anim
}

// Update advances entity animations by dt seconds.
func (r *renderer) Update(l *obj.Level, dt float64) {
	if l == nil {
		return
	}
	if l != r.level {
		r.level = l
		r.player = animationPlayer{}
		clear(r.enemies)
	}

	p := l.Player()
	r.player.Play(r.animation(r.tuning.Player.Sprite, r.tuning.Player.Sprite.Image, p.Animation()))
	r.player.Update(dt)

	for _, e := range l.Enemies() {
		ap, ok := r.enemies[e]
		if !ok {
			ap = &animationPlayer{}
			r.enemies[e] = ap
		}
		ap.Play(r.animation(r.tuning.Enemy.Sprite, e.Appearance, e.Animation()))
		ap.Update(dt)
	}
}

// Draw renders the world, then particles, then the HUD and any overlay.
func (r *renderer) Draw(screen *ebiten.Image, s *session, particles *particleSystem) {
	l := s.Level()
	if l == nil {
		return
	}
	screen.Fill(colorOr(r.tuning.Level.Background, colornames.Cornflowerblue))

	offset := math.Round(l.CameraOffset())
	r.drawTiles(screen, l, offset)
	r.drawGems(screen, l, offset)
	r.drawEnemies(screen, l, offset)
	r.drawPlayer(screen, l, offset, s.total)
	if particles != nil {
		particles.Draw(screen, offset)
	}
	r.drawHUD(screen, l)
	r.drawOverlay(screen, s)
}

func (r *renderer) drawTiles(screen *ebiten.Image, l *obj.Level, offset float64) {
	g := l.Grid()
	viewW, _ := l.Camera().ViewSize()
	left := common.FloorDiv(offset, common.TileWidth)
	right := common.CeilDiv(offset+viewW, common.TileWidth)

	for y := 0; y < g.Height(); y++ {
		for x := max(0, left); x < min(g.Width(), right+1); x++ {
			tile, _ := g.At(x, y)
			if tile.Appearance == "" {
				continue
			}
			img := r.lib.Image(tile.Appearance, common.TileWidth, common.TileHeight)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*common.TileWidth)-offset, float64(y*common.TileHeight))
			screen.DrawImage(img, op)
		}
	}
}

func (r *renderer) drawGems(screen *ebiten.Image, l *obj.Level, offset float64) {
	size := int(r.tuning.Gem.TextureHeight)
	for _, gem := range l.Gems() {
		img := r.lib.Image(gem.Appearance, size, size)
		half := float64(size) / 2
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-half, -half)
		op.GeoM.Scale(gem.Scale(), gem.Scale())
		op.GeoM.Translate(gem.Position().X-offset, gem.Position().Y)
		screen.DrawImage(img, op)
	}
}

func (r *renderer) drawEnemies(screen *ebiten.Image, l *obj.Level, offset float64) {
	for _, e := range l.Enemies() {
		ap, ok := r.enemies[e]
		if !ok {
			continue
		}
		pos := e.Position()
		ap.Draw(screen, pos.X-offset, pos.Y, e.Direction() == obj.FaceRight, nil)
	}
}

func (r *renderer) drawPlayer(screen *ebiten.Image, l *obj.Level, offset float64, total time.Duration) {
	p := l.Player()
	op := &ebiten.DrawImageOptions{}
	if p.IsPoweredUp() {
		t := (total.Seconds() + p.PowerUpTime()/r.tuning.Player.MaxPowerUpTime) * 20
		op.ColorScale.ScaleWithColor(poweredUpColors[int(t)%len(poweredUpColors)])
	}
	pos := p.Position()
	r.player.Draw(screen, pos.X-offset, pos.Y, p.Facing() == obj.FaceRight, op)
}

func (r *renderer) drawHUD(screen *ebiten.Image, l *obj.Level) {
	x := r.tuning.Level.HUDAnchorX
	y := r.tuning.Level.HUDAnchorY
	hud := colorOr(r.tuning.Level.HUDColor, colornames.White)

	remaining := max(0, l.MaxTime()-l.TimeTaken())
	timeColor := hud
	if remaining < timeWarning && !l.ReachedExit() && int(remaining.Seconds()*2)%2 == 0 {
		timeColor = colornames.Red
	}

	r.drawText(screen, "TIME: "+formatClock(remaining), x, y, timeColor)
	r.drawText(screen, fmt.Sprintf("SCORE: %d", l.Score()), x, y+16, hud)
	r.drawText(screen, fmt.Sprintf("GEMS: %d/%d", l.GemsCollected(), l.TotalGems()), x, y+32, hud)
	if rec, ok := l.BestRecord(); ok {
		r.drawText(screen, "BEST: "+formatRecord(rec.BestTime), x, y+48, hud)
	}
}

func (r *renderer) drawOverlay(screen *ebiten.Image, s *session) {
	var lines []string
	switch s.Phase() {
	case phaseIntro:
		lines = []string{"LEVEL " + s.LevelName(), "Press SPACE to start"}
	case phaseDead:
		lines = []string{"You died!", "Press SPACE to try again"}
	case phaseTimeUp:
		lines = []string{"Time's up!", "Press SPACE to restart"}
	case phaseWon:
		lines = []string{"Level complete!", "Press SPACE for the next level"}
		if s.Level().NewRecord() {
			lines = append(lines, "New record!")
		}
	default:
		return
	}

	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	y := h/2 - float64(len(lines))*10
	for _, line := range lines {
		lw, _ := text.Measure(line, r.face, 0)
		r.drawText(screen, line, (w-lw)/2, y, colornames.White)
		y += 20
	}
}

// drawText draws a line with a one pixel drop shadow.
func (r *renderer) drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+1, y+1)
	op.ColorScale.ScaleWithColor(colornames.Black)
	text.Draw(screen, s, r.face, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, r.face, op)
}

func colorOr(c *prefabs.YAMLColor, def color.Color) color.Color {
	if c == nil || c.Color == nil {
		return def
	}
	return c.Color
}

// formatClock shows a countdown as mm:ss, rounding partial seconds up.
func formatClock(d time.Duration) string {
	secs := int(math.Ceil(d.Seconds()))
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// formatRecord shows a best time with hundredths, e.g. 01:02.35.
func formatRecord(d time.Duration) string {
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%02d:%02d.%02d", cs/6000, cs/100%60, cs%100)
}
