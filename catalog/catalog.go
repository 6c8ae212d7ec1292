// Package catalog orchestrates channel discovery: country name resolution,
// per-country fetching, free-tier truncation, filtering, and on-demand
// resolution of indirect stream references.
package catalog

import (
	"context"

	"github.com/gardentv-cli/gardentv/country"
	"github.com/gardentv-cli/gardentv/key"
	"github.com/gardentv-cli/gardentv/log"
	"github.com/gardentv-cli/gardentv/source"
	"github.com/gardentv-cli/gardentv/util"
	"github.com/spf13/viper"
)

// Service wires a provider to the catalog operations. It holds no mutable
// state and is safe for concurrent use.
type Service struct {
	Provider source.Source
	// Limit caps per-country results; zero or negative means unlimited.
	Limit int
}

// New builds a service around a provider with the configured channel limit.
func New(provider source.Source) *Service {
	return &Service{
		Provider: provider,
		Limit:    viper.GetInt(key.CatalogFreeLimit),
	}
}

// ChannelsFor returns the channels for a human-readable country name.
//
// A fetch failure degrades to an empty list rather than an error: the caller
// cannot distinguish "no channels for this country" from "list unreachable",
// and neither should abort a browsing session.
func (s *Service) ChannelsFor(ctx context.Context, countryName string) []*source.Channel {
	code := country.Resolve(countryName)

	channels, err := s.Provider.CountryChannels(ctx, code.String())
	if err != nil {
		log.Warnf("channel list for %q (%s) unavailable: %v", countryName, code, err)
		return []*source.Channel{}
	}

	display := country.Name(code)
	if display == "" {
		display = util.Capitalize(countryName)
	}
	for _, channel := range channels {
		channel.Country = display
	}

	if s.Limit > 0 && len(channels) > s.Limit {
		log.Infof("truncating %d channels for %q to the limit of %d", len(channels), countryName, s.Limit)
		channels = channels[:s.Limit]
	}

	return channels
}

// ResolveIndirect turns a channel's stream into a playable address, scraping
// the provider when the stream is an indirect reference.
func (s *Service) ResolveIndirect(ctx context.Context, channel *source.Channel) (string, error) {
	if !channel.Stream.IsIndirect() {
		return channel.Stream.String(), nil
	}

	return s.Provider.ResolveStream(ctx, *channel.Stream.Indirect)
}
