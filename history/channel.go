package history

import (
	"fmt"
	"time"

	"github.com/gardentv-cli/gardentv/source"
)

// SavedChannel represents a single watched channel preserved in the user's history.
type SavedChannel struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Category string `json:"category"`
	Language string `json:"language,omitempty"`

	Stream source.Stream `json:"stream"`

	// ResolvedURL is the last playable address the stream resolved to. It can
	// go stale; the stream itself stays authoritative.
	ResolvedURL string    `json:"resolved_url,omitempty"`
	WatchedAt   time.Time `json:"watched_at"`
	WatchCount  int       `json:"watch_count"`
}

func (s *SavedChannel) encode() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Country)
}

func (s *SavedChannel) String() string {
	return fmt.Sprintf("%s [%s]", s.Name, s.Country)
}

// Channel rebuilds a catalog channel from the saved record.
func (s *SavedChannel) Channel() *source.Channel {
	return &source.Channel{
		Name:     s.Name,
		Country:  s.Country,
		Category: s.Category,
		Language: s.Language,
		Stream:   s.Stream,
	}
}

func newSavedChannel(channel *source.Channel, resolvedURL string) *SavedChannel {
	return &SavedChannel{
		Name:        channel.Name,
		Country:     channel.Country,
		Category:    channel.Category,
		Language:    channel.Language,
		Stream:      channel.Stream,
		ResolvedURL: resolvedURL,
		WatchedAt:   time.Now(),
		WatchCount:  1,
	}
}
