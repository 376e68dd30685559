package assets

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/colornames"
)

var monsterColors = map[string]color.RGBA{
	"MonsterA": colornames.Crimson,
	"MonsterB": colornames.Darkorchid,
	"MonsterC": colornames.Seagreen,
	"MonsterD": colornames.Darkorange,
}

// Placeholder draws a flat stand-in for the named content so levels are
// playable without any art on disk. The same name always gives the same
// picture.
func Placeholder(name string, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	base, variant := splitVariant(spriteGroup(name))

	switch {
	case base == "Tiles/BlockA":
		fill(img, img.Bounds(), shade(colornames.Sienna, variant))
		outline(img, colornames.Saddlebrown)
	case base == "Tiles/BlockB":
		fill(img, img.Bounds(), shade(colornames.Peru, variant))
		outline(img, colornames.Sienna)
	case base == "Tiles/Platform":
		fill(img, image.Rect(0, 0, w, h/3), colornames.Burlywood)
	case base == "Tiles/BlockBreakable":
		fill(img, img.Bounds(), colornames.Darkgoldenrod)
		outline(img, colornames.Saddlebrown)
		for i := 0; i < min(w, h); i++ {
			img.SetRGBA(i, i, colornames.Saddlebrown)
			img.SetRGBA(w-1-i, i, colornames.Saddlebrown)
		}
	case base == "Tiles/Exit":
		outline(img, colornames.Gold)
		fill(img, image.Rect(w/4, h/4, w-w/4, h), colornames.Black)
	case base == "Sprites/Player":
		body(img, colornames.Royalblue)
	case strings.HasPrefix(base, "Sprites/Monster"):
		c, ok := monsterColors[strings.TrimPrefix(base, "Sprites/")]
		if !ok {
			c = colornames.Firebrick
		}
		body(img, c)
	case base == "Sprites/Gem":
		diamond(img, colornames.Gold)
	case base == "Sprites/PowerUp":
		diamond(img, colornames.Deepskyblue)
	default:
		checker(img, colornames.Magenta, colornames.Black)
	}
	if strings.HasPrefix(base, "Sprites/") {
		outlined(img)
	}
	return img
}

// spriteGroup drops the animation part of a sprite sheet name, so
// "Sprites/Player/Run" draws like "Sprites/Player".
func spriteGroup(name string) string {
	parts := strings.SplitN(name, "/", 3)
	if len(parts) == 3 && parts[0] == "Sprites" {
		return parts[0] + "/" + parts[1]
	}
	return name
}

// splitVariant separates a trailing variant digit, as in "Tiles/BlockA3".
func splitVariant(name string) (string, int) {
	if n := len(name); n > 1 && name[n-1] >= '0' && name[n-1] <= '9' {
		return name[:n-1], int(name[n-1] - '0')
	}
	return name, 0
}

func shade(c color.RGBA, variant int) color.RGBA {
	d := uint8(variant * 6)
	return color.RGBA{R: c.R - min(c.R, d), G: c.G - min(c.G, d), B: c.B - min(c.B, d), A: c.A}
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func outline(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		img.SetRGBA(x, b.Min.Y, c)
		img.SetRGBA(x, b.Max.Y-1, c)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		img.SetRGBA(b.Min.X, y, c)
		img.SetRGBA(b.Max.X-1, y, c)
	}
}

// body fills the lower middle of a character frame, roughly where its
// collision box sits.
func body(img *image.RGBA, c color.RGBA) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	fill(img, image.Rect(w*3/10, h/5, w-w*3/10, h), c)
	fill(img, image.Rect(w*4/10, h*3/10, w*5/10, h*4/10), colornames.White)
}

func diamond(img *image.RGBA, c color.RGBA) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	cx, cy := w/2, h/2
	r := min(w, h) / 3
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if abs(x-cx)+abs(y-cy) <= r {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func checker(img *image.RGBA, a, b color.RGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if (x/8+y/8)%2 == 0 {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
