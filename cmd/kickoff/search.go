package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/kickoff/internal/domain"
)

var (
	searchCategory string
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Run a single search and print the results",
	Long: `Run a single search and print the results.

Output is a table on a terminal and JSON otherwise (or with --json).

Example:
  kickoff search "real madrid" --category teams`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := domain.ParseCategory(searchCategory)
		if err != nil {
			return err
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if !cmd.Flags().Changed("category") {
			category = a.cfg.DefaultCategory()
		}

		text := strings.Join(args, " ")
		state, err := a.client.SearchText(cmd.Context(), text, category)
		if err != nil {
			if errors.Is(err, domain.ErrQueryTooShort) {
				return fmt.Errorf("%q: %w", text, err)
			}
			return err
		}
		if state.IsFailed() {
			return fmt.Errorf("search failed: %w", state.Err)
		}

		out := cmd.OutOrStdout()
		fd := int(os.Stdout.Fd())
		if searchJSON || !term.IsTerminal(fd) {
			return writeResultsJSON(out, state.Results, a.repo.ImageURL)
		}

		width, _, err := term.GetSize(fd)
		if err != nil {
			width = 0
		}
		return writeResultsTable(out, state.Results, width)
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "all", "category: all, leagues or teams")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print JSON even on a terminal")
	rootCmd.AddCommand(searchCmd)
}
