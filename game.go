package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

// gameConfig is what the play command hands the game.
type gameConfig struct {
	Levels    []string
	Start     string
	Records   recordStore
	AssetsDir string
	Watch     bool
	Muted     bool
	Debug     bool
}

type Game struct {
	frames int
	debug  bool

	tuning prefabs.Tuning
	logger *log.Logger

	session   *session
	renderer  *renderer
	particles *particleSystem
	sounds    *soundboard
	ui        *ebitenui.UI
	watcher   *prefabs.Watcher

	quitting bool
}

func NewGame(tuning prefabs.Tuning, logger *log.Logger, cfg gameConfig) (*Game, error) {
	s, err := newSession(cfg.Levels, cfg.Start, levels.Load, tuning, logger)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:     cfg.Debug,
		tuning:    tuning,
		logger:    logger,
		session:   s,
		particles: newParticleSystem(maxParticles, tuning.Level.RandomSeed),
	}

	lib := assets.NewLibrary(cfg.AssetsDir, logger)
	g.renderer = newRenderer(lib, &g.tuning)
	g.sounds = newSoundboard(lib, &g.tuning, logger)
	g.sounds.muted = cfg.Muted
	g.ui = NewPauseUI(g)

	s.records = cfg.Records
	s.sounds = g.sounds
	s.effects = g.particles

	if cfg.Watch {
		g.watcher = newWatcher(logger)
	}

	if err := s.Load(); err != nil {
		return nil, err
	}
	return g, nil
}

// newWatcher watches whichever of ./prefabs and ./levels exist. A missing
// directory just means there is nothing on disk to hot reload.
func newWatcher(logger *log.Logger) *prefabs.Watcher {
	var dirs []string
	for _, dir := range []string{"prefabs", "levels"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		logger.Warn("nothing to watch", "dirs", "prefabs, levels")
		return nil
	}

	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		logger.Warn("file watcher disabled", "error", err)
		return nil
	}
	logger.Info("watching for edits", "dirs", dirs)
	return w
}

// frameDuration is the fixed simulation step at the current tick rate.
func frameDuration() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

func (g *Game) Update() error {
	if g.quitting {
		return ebiten.Termination
	}
	g.frames++
	g.pollWatcher()

	if g.session.Paused() {
		g.ui.Update()
	}

	dt := frameDuration()
	if err := g.session.Update(dt, pollControls()); err != nil {
		return err
	}
	if !g.session.Paused() {
		g.renderer.Update(g.session.Level(), dt.Seconds())
		g.particles.Update(dt.Seconds())
	}
	g.sounds.Update()
	return nil
}

// pollWatcher applies at most one pending file edit per frame.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}

	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		g.reload(path)
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.logger.Warn("file watcher error", "error", err)
		}
	default:
	}
}

func (g *Game) reload(path string) {
	switch {
	case prefabs.IsSpecFile(path):
		t, err := prefabs.LoadTuning()
		if err != nil {
			g.logger.Warn("tuning reload failed", "file", path, "error", err)
			return
		}
		g.tuning = t
		if err := g.session.Retune(t); err != nil {
			g.logger.Error("level restart failed", "error", err)
			return
		}
		g.logger.Info("tuning reloaded", "file", path)
	case prefabs.IsLevelFile(path):
		if levels.NameOf(path) != g.session.LevelName() {
			return
		}
		if err := g.session.Load(); err != nil {
			g.logger.Warn("level reload failed", "file", path, "error", err)
			return
		}
		g.logger.Info("level reloaded", "file", path)
	}
}

func (g *Game) resume() {
	g.session.SetPaused(false)
}

func (g *Game) restart() {
	if err := g.session.Load(); err != nil {
		g.logger.Error("level restart failed", "error", err)
	}
}

func (g *Game) quit() {
	g.quitting = true
}

// Close stops the file watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session, g.particles)

	if g.session.Paused() {
		g.ui.Draw(screen)
	}
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  particles: %d  phase: %s",
			ebiten.ActualFPS(), g.particles.Len(), g.session.Phase()), 4, common.BaseHeight-16)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
