package domain

import "time"

// HistoryEntry is a previously submitted search
type HistoryEntry struct {
	Text        string    `json:"text"`
	Category    Category  `json:"category"`
	ResultCount int       `json:"result_count"`
	SearchedAt  time.Time `json:"searched_at"`
}

// HistoryStore persists recent searches (BoltDB + memory).
type HistoryStore interface {
	// Record adds or refreshes an entry; the newest entry wins on duplicate text+category
	Record(entry HistoryEntry) error

	// Recent returns up to limit entries, newest first (limit <= 0 means all)
	Recent(limit int) ([]HistoryEntry, error)

	// Clear removes every entry
	Clear() error

	Close() error
}
