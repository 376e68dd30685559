// spsa previews a sprite sheet animation the way the game plays it: square
// frames laid out left to right, drawn bottom-center on a grey backdrop.
// Sheets come from the assets directory, or from the built-in placeholders
// when no PNG exists.
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/platformer/assets"
	"github.com/spf13/cobra"
)

const viewSize = 256

type demoGame struct {
	name        string
	frames      []*ebiten.Image
	current     int
	tick        int
	ticksPerFrm int
}

func (g *demoGame) Update() error {
	if len(g.frames) <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= g.ticksPerFrm {
		g.tick = 0
		g.current = (g.current + 1) % len(g.frames)
	}
	return nil
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x40, 0x40, 0x40, 0xff})
	if len(g.frames) == 0 {
		return
	}
	fw := g.frames[0].Bounds().Dx()
	fh := g.frames[0].Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(float64(viewSize-2*fw)/2, float64(viewSize-2*fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.frames[g.current], op)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %d/%d", g.name, g.current+1, len(g.frames)), 4, 4)
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

// splitFrames cuts a sheet into square frames as tall as the sheet.
func splitFrames(sheet *ebiten.Image) []*ebiten.Image {
	b := sheet.Bounds()
	size := b.Dy()
	count := 1
	if size > 0 {
		count = max(1, b.Dx()/size)
	}
	frames := make([]*ebiten.Image, count)
	for i := range count {
		r := image.Rect(b.Min.X+i*size, b.Min.Y, b.Min.X+(i+1)*size, b.Max.Y)
		frames[i] = sheet.SubImage(r).(*ebiten.Image)
	}
	return frames
}

func main() {
	var (
		dir  string
		fps  int
		size int
	)

	cmd := &cobra.Command{
		Use:   "spsa <sheet>",
		Short: "Preview a sprite sheet animation",
		Long: `Play a sprite sheet such as Sprites/Player/Run in a small window.

Examples:
  spsa Sprites/Player/Run
  spsa --fps 6 Sprites/MonsterA/Idle`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "spsa"})
			lib := assets.NewLibrary(dir, logger)

			ticks := 1
			if fps > 0 {
				ticks = max(1, 60/fps)
			}
			g := &demoGame{
				name:        args[0],
				frames:      splitFrames(lib.Image(args[0], size, size)),
				ticksPerFrm: ticks,
			}

			ebiten.SetWindowSize(viewSize*2, viewSize*2)
			ebiten.SetWindowTitle("spsa: " + args[0])
			return ebiten.RunGame(g)
		},
	}
	cmd.Flags().StringVar(&dir, "assets", "Content", "Directory of PNG overrides")
	cmd.Flags().IntVar(&fps, "fps", 10, "Frames per second")
	cmd.Flags().IntVar(&size, "size", 64, "Placeholder frame size when no PNG exists")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
