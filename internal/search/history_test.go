package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mmcdole/kickoff/internal/domain"
	"github.com/mmcdole/kickoff/internal/log"
)

type memHistory struct {
	mu      sync.Mutex
	entries []domain.HistoryEntry
}

func (m *memHistory) Record(e domain.HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func (m *memHistory) Recent(int) ([]domain.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.HistoryEntry(nil), m.entries...), nil
}

func (m *memHistory) Clear() error { return nil }
func (m *memHistory) Close() error { return nil }

func TestHistoryRecorderRecordsLoadedSearches(t *testing.T) {
	store := &memHistory{}
	rec := NewHistoryRecorder(store, log.NullLogger())
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rec.now = func() time.Time { return fixed }

	c := NewClient(&fakeRepo{results: []domain.SearchResult{{ID: "1"}, {ID: "2"}}}, log.NullLogger())
	c.Subscribe(rec)

	_, err := c.SearchText(context.Background(), "Sparta", domain.CategoryTeams)
	require.NoError(t, err)

	entries, err := store.Recent(0)
	require.NoError(t, err)
	require.Equal(t, []domain.HistoryEntry{{
		Text:        "Sparta",
		Category:    domain.CategoryTeams,
		ResultCount: 2,
		SearchedAt:  fixed,
	}}, entries)
}

func TestHistoryRecorderIgnoresFailures(t *testing.T) {
	store := &memHistory{}
	rec := NewHistoryRecorder(store, log.NullLogger())

	rec.OnStateChange(domain.LoadingState(domain.Query{TypeIDs: []int{1}, Text: "ab"}, 1))
	rec.OnStateChange(domain.FailedState(domain.Query{TypeIDs: []int{1}, Text: "ab"}, 1,
		domain.NewSearchError(domain.FailureNetwork, nil)))
	rec.OnStateChange(domain.LoadedState(domain.Query{TypeIDs: []int{9}, Text: "ab"}, 2, nil))

	entries, _ := store.Recent(0)
	require.Empty(t, entries)
}
