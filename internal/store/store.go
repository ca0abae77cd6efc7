package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/mmcdole/kickoff/internal/domain"
)

// DefaultMaxEntries bounds the history when no limit is configured
const DefaultMaxEntries = 50

// Bucket names
var (
	bucketHistory = []byte("history")
)

// HistoryStore implements domain.HistoryStore using BoltDB.
// All entries are mirrored in memory; BoltDB is only read on open.
type HistoryStore struct {
	db         *bolt.DB
	mu         sync.RWMutex // Protects entries
	entries    map[string]domain.HistoryEntry
	maxEntries int
}

// NewHistoryStore opens (or creates) the history database at path.
// An empty path keeps history in memory only.
func NewHistoryStore(path string, maxEntries int) (*HistoryStore, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	s := &HistoryStore{
		entries:    make(map[string]domain.HistoryEntry),
		maxEntries: maxEntries,
	}

	if path == "" {
		// Memory-only mode (no persistence)
		return s, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketHistory)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	// Load existing entries into memory; undecodable records are dropped
	err = db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketHistory).ForEach(func(k, v []byte) error {
			var e domain.HistoryEntry
			if json.Unmarshal(v, &e) == nil {
				s.entries[string(k)] = e
			}
			return nil
		})
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s.db = db
	return s, nil
}

// entryKey identifies an entry by category and case-folded text
func entryKey(e domain.HistoryEntry) string {
	return strconv.Itoa(int(e.Category)) + ":" + strings.ToLower(e.Text)
}

// Record adds or refreshes an entry and trims the oldest beyond the limit
func (s *HistoryStore) Record(entry domain.HistoryEntry) error {
	if entry.SearchedAt.IsZero() {
		entry.SearchedAt = time.Now()
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	key := entryKey(entry)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry
	evicted := s.evictLocked()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketHistory)
		if err := b.Put([]byte(key), data); err != nil {
			return err
		}
		for _, k := range evicted {
			if err := b.Delete([]byte(k)); err != nil {
				return err
			}
		}
		return nil
	})
}

// evictLocked drops the oldest entries beyond maxEntries and returns their keys
func (s *HistoryStore) evictLocked() []string {
	if len(s.entries) <= s.maxEntries {
		return nil
	}
	keys := s.sortedKeysLocked()
	evicted := keys[s.maxEntries:]
	for _, k := range evicted {
		delete(s.entries, k)
	}
	return evicted
}

// sortedKeysLocked returns keys newest first
func (s *HistoryStore) sortedKeysLocked() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := s.entries[keys[i]], s.entries[keys[j]]
		if !a.SearchedAt.Equal(b.SearchedAt) {
			return a.SearchedAt.After(b.SearchedAt)
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Recent returns up to limit entries, newest first
func (s *HistoryStore) Recent(limit int) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := s.sortedKeysLocked()
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}

	out := make([]domain.HistoryEntry, len(keys))
	for i, k := range keys {
		out[i] = s.entries[k]
	}
	return out, nil
}

// Clear removes every entry
func (s *HistoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]domain.HistoryEntry)

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketHistory); err != nil && err != bolt.ErrBucketNotFound {
			return err
		}
		_, err := tx.CreateBucket(bucketHistory)
		return err
	})
}

func (s *HistoryStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
