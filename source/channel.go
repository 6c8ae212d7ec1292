// Package source defines the domain models and interfaces for channel discovery and stream resolution.
package source

import "strings"

// Placeholder values applied during normalization when the upstream record omits a field.
const (
	DefaultName     = "Unknown Channel"
	DefaultCountry  = "Unknown"
	DefaultCategory = "General"
)

// Channel represents one normalized catalog entry.
//
// A Channel surfaced to a consumer always carries a non-zero Stream;
// records with no resolvable source address are dropped during normalization.
type Channel struct {
	Name       string `json:"name"`
	Country    string `json:"country"`
	Logo       string `json:"logo,omitempty"`
	Category   string `json:"category"`
	Language   string `json:"language,omitempty"`
	GeoBlocked bool   `json:"geoBlocked"`
	Stream     Stream `json:"stream"`
}

func (c *Channel) String() string {
	return c.Name
}

// Matches reports whether the query is a case-insensitive substring of the
// channel's name, country, or category.
func (c *Channel) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Country), q) ||
		strings.Contains(strings.ToLower(c.Category), q)
}
