package search

import (
	"log/slog"
	"time"

	"github.com/mmcdole/kickoff/internal/domain"
)

// HistoryRecorder is a StateObserver that records successful searches
type HistoryRecorder struct {
	store  domain.HistoryStore
	logger *slog.Logger
	now    func() time.Time
}

// NewHistoryRecorder creates a recorder writing to store
func NewHistoryRecorder(store domain.HistoryStore, logger *slog.Logger) *HistoryRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &HistoryRecorder{store: store, logger: logger, now: time.Now}
}

// OnStateChange records Loaded states; everything else is ignored
func (r *HistoryRecorder) OnStateChange(state domain.SearchState) {
	if !state.IsLoaded() {
		return
	}

	category, ok := domain.CategoryForTypeIDs(state.Query.TypeIDs)
	if !ok {
		r.logger.Debug("not recording search with custom type ids", "type_ids", state.Query.TypeIDsCSV())
		return
	}

	entry := domain.HistoryEntry{
		Text:        state.Query.Text,
		Category:    category,
		ResultCount: len(state.Results),
		SearchedAt:  r.now(),
	}
	if err := r.store.Record(entry); err != nil {
		r.logger.Warn("failed to record search history", "error", err)
	}
}
