package search

import (
	"github.com/rivo/uniseg"

	"github.com/mmcdole/kickoff/internal/domain"
)

// MinQueryLength is the minimum number of characters a search needs
const MinQueryLength = 2

// Build validates raw search text and produces a query for the category.
// Text is used as typed (no trimming); its length is counted in
// user-perceived characters so "é" written as e + combining accent is one.
func Build(text string, category domain.Category) (domain.Query, error) {
	if uniseg.GraphemeClusterCount(text) < MinQueryLength {
		return domain.Query{}, domain.ErrQueryTooShort
	}
	return domain.Query{
		TypeIDs: category.TypeIDs(),
		Text:    text,
	}, nil
}
