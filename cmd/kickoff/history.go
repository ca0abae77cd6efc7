package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyClear bool
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List or clear recent searches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if a.history == nil {
			return errors.New("history is disabled")
		}

		out := cmd.OutOrStdout()
		if historyClear {
			if err := a.history.Clear(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			fmt.Fprintln(out, "History cleared.")
			return nil
		}

		entries, err := a.history.Recent(historyLimit)
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}
		return writeHistory(out, entries)
	},
}

func init() {
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all recorded searches")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of entries to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}
