package livesport

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mmcdole/kickoff/internal/domain"
)

// DecodeResults parses a search response body. The body must be a JSON
// array and every element must carry the required fields; unknown fields
// are ignored.
func DecodeResults(body []byte) ([]domain.SearchResult, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("response is not a JSON array")
	}

	var raw []Result
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return MapResults(raw)
}

// MapResults converts API results to domain results, preserving order
func MapResults(raw []Result) ([]domain.SearchResult, error) {
	results := make([]domain.SearchResult, 0, len(raw))
	for i, r := range raw {
		result, err := mapResult(r)
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", i, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func mapResult(r Result) (domain.SearchResult, error) {
	switch {
	case r.ID == nil:
		return domain.SearchResult{}, missingField("id")
	case r.Name == nil:
		return domain.SearchResult{}, missingField("name")
	case r.Sport == nil || r.Sport.Name == nil:
		return domain.SearchResult{}, missingField("sport.name")
	case r.DefaultCountry == nil || r.DefaultCountry.Name == nil:
		return domain.SearchResult{}, missingField("defaultCountry.name")
	case r.Images == nil:
		return domain.SearchResult{}, missingField("images")
	}

	paths := make([]*string, len(*r.Images))
	for i, img := range *r.Images {
		if img == nil {
			return domain.SearchResult{}, missingField(fmt.Sprintf("images[%d]", i))
		}
		paths[i] = img.Path
	}

	return domain.SearchResult{
		ID:          *r.ID,
		Name:        *r.Name,
		SportName:   *r.Sport.Name,
		CountryName: *r.DefaultCountry.Name,
		ImagePaths:  paths,
	}, nil
}

func missingField(name string) error {
	return fmt.Errorf("missing required field %q", name)
}
