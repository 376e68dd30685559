package main

import (
	"fmt"
	"io"

	"github.com/milk9111/platformer/storage"
	"github.com/spf13/cobra"
)

var flagClear string

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show best times",
	Long: `List the best completed run of every level. A run only counts when
every gem in the level was collected.

Examples:
  platformer records
  platformer records --clear 0`,
	Args: cobra.NoArgs,
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().StringVar(&flagClear, "clear", "", "Forget the record of a level")
}

func runRecords(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open records database: %w", err)
	}
	defer store.Close()

	if flagClear != "" {
		if err := store.ClearRecord(flagClear); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared record for level %s.\n", flagClear)
		return nil
	}

	entries, err := store.Records()
	if err != nil {
		return err
	}
	printRecords(cmd.OutOrStdout(), entries)
	return nil
}

func printRecords(w io.Writer, entries []storage.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No records yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Finish a level with every gem to set one!")
		return
	}

	fmt.Fprintf(w, "  %-8s  %-10s  %-5s  %s\n", "Level", "Best", "Gems", "Date")
	fmt.Fprintf(w, "  %-8s  %-10s  %-5s  %s\n", "-----", "----", "----", "----")
	for _, e := range entries {
		fmt.Fprintf(w, "  %-8s  %-10s  %-5d  %s\n",
			e.Level, formatRecord(e.Record.BestTime), e.Record.GemsCollected, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
