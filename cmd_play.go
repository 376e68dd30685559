package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/storage"
	"github.com/spf13/cobra"
)

var (
	flagLevel     string
	flagWatch     bool
	flagScale     float64
	flagMute      bool
	flagDebug     bool
	flagAssetsDir string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Open the game window and play from the first level, or from the
level given with --level. With --watch, edits to ./prefabs/*.yaml and
./levels/*.txt are applied while the game runs.

Controls:
  A/D or arrows     move
  Space/W/Up        jump, continue
  P/Escape          pause`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLevel, "level", "", "Level to start at (default: first)")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload tuning and levels when files change")
	cmd.Flags().Float64Var(&flagScale, "scale", 1.5, "Window scale")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Show frame stats")
	cmd.Flags().StringVar(&flagAssetsDir, "assets", "Content", "Directory of PNG and WAV overrides")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return err
	}
	names, err := levels.Names()
	if err != nil {
		return err
	}

	cfg := gameConfig{
		Levels:    names,
		Start:     flagLevel,
		AssetsDir: flagAssetsDir,
		Watch:     flagWatch,
		Muted:     flagMute,
		Debug:     flagDebug,
	}

	// Play on without records rather than refuse to start.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open records database", "error", err)
	} else {
		defer store.Close()
		cfg.Records = store
	}

	game, err := NewGame(tuning, logger, cfg)
	if err != nil {
		return err
	}
	defer game.Close()

	scale := max(flagScale, 0.5)
	ebiten.SetWindowSize(int(common.BaseWidth*scale), int(common.BaseHeight*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("platformer")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
