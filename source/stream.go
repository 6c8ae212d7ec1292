// Package source defines the domain models and interfaces for channel discovery and stream resolution.
package source

import (
	"fmt"
	"strings"
)

// Scheme is the reserved URL scheme marking indirect stream references in their legacy string form.
const Scheme = "tvgarden"

// IndirectRef locates a channel page that must be scraped to recover a playable address.
type IndirectRef struct {
	// Two-letter lowercase country code.
	Country string `json:"country"`
	// Provider channel identifier (nanoid).
	ChannelID string `json:"channelId"`
}

func (r IndirectRef) String() string {
	return fmt.Sprintf("%s://%s/%s", Scheme, r.Country, r.ChannelID)
}

// Stream is the tagged source of a channel's playable address:
// either a direct URL or an indirect reference resolved on demand.
// Exactly one of the two fields is set for a valid stream.
type Stream struct {
	Direct   string       `json:"direct,omitempty"`
	Indirect *IndirectRef `json:"indirect,omitempty"`
}

// DirectStream wraps an already playable address.
func DirectStream(url string) Stream {
	return Stream{Direct: url}
}

// IndirectStream wraps a scrape-on-demand reference.
func IndirectStream(country, channelID string) Stream {
	return Stream{Indirect: &IndirectRef{Country: country, ChannelID: channelID}}
}

// IsZero reports whether the stream carries neither a direct address nor a reference.
func (s Stream) IsZero() bool {
	return s.Direct == "" && s.Indirect == nil
}

// IsIndirect reports whether the stream must be resolved before playback.
func (s Stream) IsIndirect() bool {
	return s.Indirect != nil
}

// String returns the direct address, or the legacy scheme-prefixed form for indirect references.
func (s Stream) String() string {
	if s.Indirect != nil {
		return s.Indirect.String()
	}
	return s.Direct
}

// ParseStream interprets a raw address string from a legacy boundary (playlists,
// hand-curated lists). Strings carrying the reserved scheme become indirect
// references; everything else is treated as a direct address.
func ParseStream(raw string) Stream {
	raw = strings.TrimSpace(raw)

	prefix := Scheme + "://"
	if !strings.HasPrefix(raw, prefix) {
		return DirectStream(raw)
	}

	rest := strings.TrimPrefix(raw, prefix)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		// Malformed reference: keep the raw string so nothing is silently lost.
		return DirectStream(raw)
	}

	return IndirectStream(parts[0], parts[1])
}
