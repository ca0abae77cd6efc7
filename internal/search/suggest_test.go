package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmcdole/kickoff/internal/domain"
)

func historyEntries() []domain.HistoryEntry {
	return []domain.HistoryEntry{
		{Text: "Real Madrid", Category: domain.CategoryTeams},
		{Text: "real madrid", Category: domain.CategoryAll},
		{Text: "Premier League", Category: domain.CategoryLeagues},
		{Text: "Rennes", Category: domain.CategoryTeams},
	}
}

func TestSuggestRanksClosestFirst(t *testing.T) {
	got := Suggest("rea", historyEntries(), 0)
	require.NotEmpty(t, got)
	require.Equal(t, "Real Madrid", got[0])
	require.NotContains(t, got, "Rennes")
}

func TestSuggestDeduplicatesAndLimits(t *testing.T) {
	got := Suggest("e", historyEntries(), 0)
	require.ElementsMatch(t, []string{"Real Madrid", "Premier League", "Rennes"}, got)

	require.Len(t, Suggest("e", historyEntries(), 2), 2)
}

func TestSuggestEmptyInput(t *testing.T) {
	require.Empty(t, Suggest("", historyEntries(), 0))
	require.Empty(t, Suggest("   ", historyEntries(), 0))
	require.Empty(t, Suggest("zzz", historyEntries(), 0))
}

func TestSuggestSkipsExactMatch(t *testing.T) {
	entries := []domain.HistoryEntry{{Text: "Slavia"}}
	require.Empty(t, Suggest("slavia", entries, 0))
}
