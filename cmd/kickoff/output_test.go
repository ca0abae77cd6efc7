package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mmcdole/kickoff/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestWriteResultsJSON(t *testing.T) {
	results := []domain.SearchResult{
		{ID: "W6BOzpK2", Name: "Real Madrid", SportName: "Football", CountryName: "Spain", ImagePaths: []*string{strPtr("logo.png")}},
		{ID: "x1", Name: "Real Sociedad", SportName: "Football", CountryName: "Spain", ImagePaths: []*string{nil}},
	}

	var buf bytes.Buffer
	err := writeResultsJSON(&buf, results, func(p string) string { return "https://img.test/" + p })
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "W6BOzpK2", got[0]["id"])
	require.Equal(t, "Real Madrid", got[0]["name"])
	require.Equal(t, "Football", got[0]["sport"])
	require.Equal(t, "Spain", got[0]["country"])
	require.Equal(t, "https://img.test/logo.png", got[0]["image_url"])
	require.Nil(t, got[1]["image_url"])
}

func TestWriteResultsJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResultsJSON(&buf, nil, func(p string) string { return p }))
	require.JSONEq(t, "[]", buf.String())
}

func TestWriteResultsTable(t *testing.T) {
	results := []domain.SearchResult{
		{ID: "1", Name: "Premier League", SportName: "Football", CountryName: "England"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeResultsTable(&buf, results, 0))

	out := buf.String()
	require.Contains(t, out, "NAME")
	require.Contains(t, out, "Premier League")
	require.Contains(t, out, "England")
}

func TestWriteResultsTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResultsTable(&buf, []domain.SearchResult{}, 80))
	require.Equal(t, "No result found.\n", buf.String())
}

func TestWriteHistory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeHistory(&buf, nil))
	require.Equal(t, "No searches yet.\n", buf.String())

	buf.Reset()
	entries := []domain.HistoryEntry{
		{Text: "arsenal", Category: domain.CategoryTeams, ResultCount: 3, SearchedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, writeHistory(&buf, entries))
	out := buf.String()
	require.Contains(t, out, "arsenal")
	require.Contains(t, out, "Teams")
	require.Contains(t, out, "3")
}
