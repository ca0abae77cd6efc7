package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Category narrows a search to leagues, teams, or both
type Category int

const (
	CategoryAll Category = iota
	CategoryLeagues
	CategoryTeams
)

// Categories returns all categories in picker order
func Categories() []Category {
	return []Category{CategoryAll, CategoryLeagues, CategoryTeams}
}

// TypeIDs returns the backend type identifiers for the category.
// A fresh slice is returned on each call.
func (c Category) TypeIDs() []int {
	switch c {
	case CategoryLeagues:
		return []int{1}
	case CategoryTeams:
		return []int{2, 3, 4}
	default:
		return []int{1, 2, 3, 4}
	}
}

// String returns the display label
func (c Category) String() string {
	switch c {
	case CategoryLeagues:
		return "Leagues"
	case CategoryTeams:
		return "Teams"
	default:
		return "All"
	}
}

// Next cycles to the following category (wraps around)
func (c Category) Next() Category {
	cats := Categories()
	return cats[(int(c)+1)%len(cats)]
}

// Prev cycles to the preceding category (wraps around)
func (c Category) Prev() Category {
	cats := Categories()
	return cats[(int(c)+len(cats)-1)%len(cats)]
}

// ParseCategory parses a category name, case-insensitively.
// The empty string maps to CategoryAll.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return CategoryAll, nil
	case "leagues", "league":
		return CategoryLeagues, nil
	case "teams", "team":
		return CategoryTeams, nil
	default:
		return CategoryAll, fmt.Errorf("unknown category: %q", s)
	}
}

// Query is a validated, ready-to-send search request
type Query struct {
	TypeIDs []int
	Text    string
}

// TypeIDsCSV renders the type identifiers as "2,3,4"
func (q Query) TypeIDsCSV() string {
	parts := make([]string, len(q.TypeIDs))
	for i, id := range q.TypeIDs {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// IsZero reports whether the query was never built
func (q Query) IsZero() bool {
	return q.Text == "" && len(q.TypeIDs) == 0
}

// SearchResult is a matched league or team
type SearchResult struct {
	ID          string    // Opaque identifier, unique within one result set
	Name        string    // Display name
	SportName   string    // e.g. "Football"
	CountryName string    // Default country name
	ImagePaths  []*string // Relative image paths in response order; nil entries are JSON nulls
}

// PrimaryImagePath returns the first image path if it is present and non-null
func (r SearchResult) PrimaryImagePath() (string, bool) {
	if len(r.ImagePaths) == 0 || r.ImagePaths[0] == nil {
		return "", false
	}
	return *r.ImagePaths[0], true
}

// Clone returns a copy that shares no slices with r
func (r SearchResult) Clone() SearchResult {
	out := r
	if r.ImagePaths != nil {
		out.ImagePaths = make([]*string, len(r.ImagePaths))
		for i, p := range r.ImagePaths {
			if p != nil {
				v := *p
				out.ImagePaths[i] = &v
			}
		}
	}
	return out
}

// GetID returns the result identifier
func (r SearchResult) GetID() string { return r.ID }

// GetTitle returns the display title
func (r SearchResult) GetTitle() string { return r.Name }

// GetDescription returns secondary info for display (sport and country)
func (r SearchResult) GetDescription() string {
	switch {
	case r.SportName != "" && r.CountryName != "":
		return r.SportName + " · " + r.CountryName
	case r.SportName != "":
		return r.SportName
	default:
		return r.CountryName
	}
}

// CategoryForTypeIDs maps a type-id set back to its category.
// Order does not matter; ok is false for sets no category produces.
func CategoryForTypeIDs(ids []int) (Category, bool) {
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	for _, c := range Categories() {
		want := c.TypeIDs()
		if len(want) != len(seen) {
			continue
		}
		match := true
		for _, id := range want {
			if !seen[id] {
				match = false
				break
			}
		}
		if match {
			return c, true
		}
	}
	return CategoryAll, false
}
