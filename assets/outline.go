package assets

import (
	"image"
	"image/color"
	"image/draw"
)

// Outline returns an image holding col on every transparent pixel of src
// that lies within thickness pixels of an opaque one.
func Outline(src *image.RGBA, thickness int, col color.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(b)

	isOpaque := func(x, y int) bool {
		return src.RGBAAt(b.Min.X+x, b.Min.Y+y).A != 0
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if isOpaque(x, y) {
				continue
			}
			found := false
			for yy := max(0, y-thickness); yy <= min(h-1, y+thickness) && !found; yy++ {
				for xx := max(0, x-thickness); xx <= min(w-1, x+thickness); xx++ {
					if isOpaque(xx, yy) {
						found = true
						break
					}
				}
			}
			if found {
				out.SetRGBA(b.Min.X+x, b.Min.Y+y, col)
			}
		}
	}
	return out
}

// outlined draws a one pixel dark outline around the opaque parts of img.
func outlined(img *image.RGBA) {
	edge := Outline(img, 1, color.RGBA{A: 0xff})
	draw.Draw(img, img.Bounds(), edge, img.Bounds().Min, draw.Over)
}
