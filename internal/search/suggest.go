package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmcdole/kickoff/internal/domain"
)

// Suggest returns previously searched texts that fuzzily match the typed
// prefix, best match first. Entries are expected newest first; ties keep
// that order. At most limit suggestions are returned (limit <= 0 means all).
func Suggest(typed string, entries []domain.HistoryEntry, limit int) []string {
	typed = strings.TrimSpace(typed)
	if typed == "" {
		return nil
	}

	// Collapse duplicates across categories, keeping the newest position
	texts := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		key := strings.ToLower(e.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		texts = append(texts, e.Text)
	}

	ranks := fuzzy.RankFindFold(typed, texts)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		// Don't suggest exactly what is already typed
		if strings.EqualFold(r.Target, typed) {
			continue
		}
		out = append(out, r.Target)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
