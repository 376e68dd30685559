package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [level...]",
	Short: "Check level files for errors",
	Long: `Load every named level (or all of them) and report which ones the
game would reject, and why.

Examples:
  platformer validate
  platformer validate 0 2`,
	RunE: runValidate,
}

var previewCmd = &cobra.Command{
	Use:   "preview <level>",
	Short: "Print a level in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func runValidate(cmd *cobra.Command, args []string) error {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return err
	}
	names := args
	if len(names) == 0 {
		if names, err = levels.Names(); err != nil {
			return err
		}
	}

	if failed := validateLevels(cmd.OutOrStdout(), names, levels.Load, tuning); failed > 0 {
		return fmt.Errorf("%d of %d levels failed to load", failed, len(names))
	}
	return nil
}

// validateLevels loads each level and writes one line per level to w. It
// returns how many levels were rejected.
func validateLevels(w io.Writer, names []string, source levelSource, tuning prefabs.Tuning) int {
	quiet := log.New(io.Discard)
	failed := 0
	for _, name := range names {
		data, err := source(name)
		if err != nil {
			fmt.Fprintf(w, "FAIL  %s: %v\n", name, err)
			failed++
			continue
		}
		l, err := obj.NewLevel(name, bytes.NewReader(data), obj.WithTuning(tuning), obj.WithLogger(quiet))
		if err != nil {
			fmt.Fprintf(w, "FAIL  %s: %v\n", name, err)
			failed++
			continue
		}
		fmt.Fprintf(w, "ok    %s: %dx%d, %d gems, %d enemies\n",
			name, l.Grid().Width(), l.Grid().Height(), l.TotalGems(), len(l.Enemies()))
	}
	return failed
}

func runPreview(cmd *cobra.Command, args []string) error {
	data, err := levels.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Run 'platformer validate' to list levels.\n")
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderPreview(string(data)))
	return nil
}

var previewStyles = map[rune]lipgloss.Style{
	'.': lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	'#': lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	':': lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	'-': lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	'~': lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	';': lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	'X': lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	'P': lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	'1': lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	'2': lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	'3': lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	'4': lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	'A': lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	'B': lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	'C': lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	'D': lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// renderPreview colors a level description for the terminal. Runs of the
// same character share one style so the output stays small.
func renderPreview(level string) string {
	level = strings.ReplaceAll(level, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(level, "\n"), "\n")

	var sb strings.Builder
	for y, line := range lines {
		if y > 0 {
			sb.WriteRune('\n')
		}
		runes := []rune(line)
		for x := 0; x < len(runes); {
			start := x
			for x < len(runes) && runes[x] == runes[start] {
				x++
			}
			run := string(runes[start:x])
			if style, ok := previewStyles[runes[start]]; ok {
				sb.WriteString(style.Render(run))
			} else {
				sb.WriteString(run)
			}
		}
	}
	return sb.String()
}
