// platformer is a tile based platformer: run, jump, collect gems and reach
// the exit before the clock runs out.
//
// Usage:
//
//	platformer                   - Play from the first level
//	platformer play --level 2    - Play starting at a given level
//	platformer validate [level]  - Check level files for errors
//	platformer preview <level>   - Print a level in the terminal
//	platformer records           - Show best times
//
// Global flags:
//
//	--db <path>         - Records database (default: ~/.platformer/records.db)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A tile based platformer",
	Long: `Run through each level collecting gems and reach the exit before
time runs out. Enemies patrol the ground; a power-up gem lets you defeat
them for a few seconds.

Available commands:
  play      - Play the game (default)
  validate  - Check level files for errors
  preview   - Print a level in the terminal
  records   - Show best times

Examples:
  platformer
  platformer play --level 1 --watch
  platformer validate
  platformer preview 0
  platformer records`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/records.db", "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(recordsCmd)
}

// newLogger builds the process logger at the requested level.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("bad --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           lvl,
	}), nil
}
