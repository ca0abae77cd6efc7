package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/kickoff/internal/domain"
)

// FilterResult is a loaded result that matched a local filter
type FilterResult struct {
	Result         domain.SearchResult
	Index          int   // Position in the unfiltered result set
	MatchedIndexes []int // Byte offsets into the lowercased Name (for highlighting)
	Score          int   // Higher is better
}

// FilterIndex implements fuzzy.Source over result names
type FilterIndex struct {
	results     []domain.SearchResult
	lowerTitles []string // Pre-computed lowercase names
}

// NewFilterIndex builds an index over results
func NewFilterIndex(results []domain.SearchResult) *FilterIndex {
	lower := make([]string, len(results))
	for i, r := range results {
		lower[i] = strings.ToLower(r.Name)
	}
	return &FilterIndex{results: results, lowerTitles: lower}
}

// String returns the lowercase name at index i (implements fuzzy.Source)
func (idx *FilterIndex) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of results (implements fuzzy.Source)
func (idx *FilterIndex) Len() int { return len(idx.results) }

// Filter narrows already-loaded results without touching the network.
// An empty filter returns every result in server order.
func (idx *FilterIndex) Filter(query string) []FilterResult {
	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]FilterResult, len(idx.results))
		for i, r := range idx.results {
			out[i] = FilterResult{Result: r, Index: i}
		}
		return out
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), idx)

	out := make([]FilterResult, len(matches))
	for i, m := range matches {
		out[i] = FilterResult{
			Result:         idx.results[m.Index],
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return out
}

// FilterResults is a convenience wrapper for one-off filtering
func FilterResults(query string, results []domain.SearchResult) []FilterResult {
	return NewFilterIndex(results).Filter(query)
}
