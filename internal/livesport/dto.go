package livesport

// Result is one element of the search API's JSON array response.
// Pointer fields distinguish a missing key from an empty value.
type Result struct {
	ID             *string   `json:"id"`
	Name           *string   `json:"name"`
	Sport          *Named    `json:"sport"`
	DefaultCountry *Named    `json:"defaultCountry"`
	Images         *[]*Image `json:"images"`
}

// Named is a nested object carrying only a display name (sport, country)
type Named struct {
	Name *string `json:"name"`
}

// Image is a relative image reference. The element itself is required;
// its Path may be null.
type Image struct {
	Path *string `json:"path"`
}
