package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mmcdole/kickoff/internal/domain"
	"github.com/mmcdole/kickoff/internal/tui/styles"
)

// resultJSON is the --json output shape of one result
type resultJSON struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Sport    string  `json:"sport"`
	Country  string  `json:"country"`
	ImageURL *string `json:"image_url"`
}

// writeResultsJSON prints results as an indented JSON array
func writeResultsJSON(w io.Writer, results []domain.SearchResult, imageURL func(string) string) error {
	out := make([]resultJSON, len(results))
	for i, r := range results {
		out[i] = resultJSON{
			ID:      r.ID,
			Name:    r.Name,
			Sport:   r.SportName,
			Country: r.CountryName,
		}
		if path, ok := r.PrimaryImagePath(); ok {
			u := imageURL(path)
			out[i].ImageURL = &u
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeResultsTable prints results as a table; width <= 0 leaves it unconstrained
func writeResultsTable(w io.Writer, results []domain.SearchResult, width int) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No result found.")
		return err
	}

	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{r.Name, r.SportName, r.CountryName, r.ID}
	}

	t := newTable().
		Headers("NAME", "SPORT", "COUNTRY", "ID").
		Rows(rows...)
	if width > 0 {
		t = t.Width(width)
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}

// writeHistory prints recent searches, newest first
func writeHistory(w io.Writer, entries []domain.HistoryEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No searches yet.")
		return err
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			e.Text,
			e.Category.String(),
			strconv.Itoa(e.ResultCount),
			e.SearchedAt.Local().Format(time.DateTime),
		}
	}

	t := newTable().
		Headers("QUERY", "CATEGORY", "RESULTS", "SEARCHED").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.String())
	return err
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.DimGray)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.AccentStyle.Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}
