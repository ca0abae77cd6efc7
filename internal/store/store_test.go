package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mmcdole/kickoff/internal/domain"
)

var _ domain.HistoryStore = (*HistoryStore)(nil)

func entryAt(text string, cat domain.Category, minute int) domain.HistoryEntry {
	return domain.HistoryEntry{
		Text:        text,
		Category:    cat,
		ResultCount: minute,
		SearchedAt:  time.Date(2024, 1, 1, 10, minute, 0, 0, time.UTC),
	}
}

func TestMemoryStoreRecentNewestFirst(t *testing.T) {
	s, err := NewHistoryStore("", 10)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Record(entryAt("sparta", domain.CategoryTeams, 1)))
	require.NoError(t, s.Record(entryAt("premier", domain.CategoryLeagues, 2)))
	require.NoError(t, s.Record(entryAt("slavia", domain.CategoryAll, 3)))

	got, err := s.Recent(0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "slavia", got[0].Text)
	require.Equal(t, "sparta", got[2].Text)

	got, err = s.Recent(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestStoreDeduplicatesByCategoryAndText(t *testing.T) {
	s, err := NewHistoryStore("", 10)
	require.NoError(t, err)

	require.NoError(t, s.Record(entryAt("Sparta", domain.CategoryTeams, 1)))
	require.NoError(t, s.Record(entryAt("sparta", domain.CategoryTeams, 5)))
	require.NoError(t, s.Record(entryAt("sparta", domain.CategoryAll, 2)))

	got, err := s.Recent(0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, domain.CategoryTeams, got[0].Category)
	require.Equal(t, 5, got[0].ResultCount)
}

func TestStoreEvictsOldest(t *testing.T) {
	s, err := NewHistoryStore("", 2)
	require.NoError(t, err)

	require.NoError(t, s.Record(entryAt("a1", domain.CategoryAll, 1)))
	require.NoError(t, s.Record(entryAt("a2", domain.CategoryAll, 2)))
	require.NoError(t, s.Record(entryAt("a3", domain.CategoryAll, 3)))

	got, err := s.Recent(0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "a3", got[0].Text)
	require.Equal(t, "a2", got[1].Text)
}

func TestBoltStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")

	s, err := NewHistoryStore(path, 2)
	require.NoError(t, err)
	require.NoError(t, s.Record(entryAt("a1", domain.CategoryAll, 1)))
	require.NoError(t, s.Record(entryAt("a2", domain.CategoryTeams, 2)))
	require.NoError(t, s.Record(entryAt("a3", domain.CategoryLeagues, 3)))
	require.NoError(t, s.Close())

	reopened, err := NewHistoryStore(path, 2)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Recent(0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "a3", got[0].Text)
	require.Equal(t, domain.CategoryLeagues, got[0].Category)
	require.True(t, got[0].SearchedAt.Equal(entryAt("a3", domain.CategoryLeagues, 3).SearchedAt))
	require.Equal(t, "a2", got[1].Text)
}

func TestBoltStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := NewHistoryStore(path, 10)
	require.NoError(t, err)
	require.NoError(t, s.Record(entryAt("a1", domain.CategoryAll, 1)))
	require.NoError(t, s.Clear())

	got, err := s.Recent(0)
	require.NoError(t, err)
	require.Empty(t, got)

	require.NoError(t, s.Record(entryAt("a2", domain.CategoryAll, 2)))
	require.NoError(t, s.Close())

	reopened, err := NewHistoryStore(path, 10)
	require.NoError(t, err)
	defer reopened.Close()

	got, err = reopened.Recent(0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "a2", got[0].Text)
}

func TestRecordStampsMissingTime(t *testing.T) {
	s, err := NewHistoryStore("", 10)
	require.NoError(t, err)

	require.NoError(t, s.Record(domain.HistoryEntry{Text: "ab"}))
	got, err := s.Recent(0)
	require.NoError(t, err)
	require.False(t, got[0].SearchedAt.IsZero())
}
