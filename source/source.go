// Package source defines the domain models and interfaces for channel discovery and stream resolution.
package source

import "context"

// Source defines the required capabilities for a channel catalog provider.
type Source interface {
	// Name returns the unique identifier for the provider.
	Name() string

	// CountryChannels retrieves the normalized channel list for a two-letter country code.
	// An empty slice with a nil error means no channels are available for that country.
	CountryChannels(ctx context.Context, code string) ([]*Channel, error)

	// ResolveStream converts an indirect reference into a playable stream address.
	ResolveStream(ctx context.Context, ref IndirectRef) (string, error)
}
