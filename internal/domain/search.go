package domain

import "context"

// SearchRepository executes a validated query against the remote search API.
// Implementations return a *SearchError describing the failure kind.
type SearchRepository interface {
	Search(ctx context.Context, query Query) ([]SearchResult, error)
}
