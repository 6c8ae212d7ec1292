// Package garden is the tv.garden channel catalog provider.
//
// It fetches per-country channel lists from the public dataset and resolves
// indirect stream references by scraping channel pages. Both operations are
// stateless and independently cancellable; the extraction pattern table is
// defined once at startup and never mutated.
package garden

import (
	"net/http"
	"time"

	"github.com/gardentv-cli/gardentv/key"
	"github.com/gardentv-cli/gardentv/network"
	"github.com/spf13/viper"
)

// metadataURL lists every country code the dataset publishes a channel list for.
const metadataURL = "https://raw.githubusercontent.com/TVGarden/tv-garden-channel-list/main/channels/compressed/countries_metadata.json"

// Garden implements source.Source against the tv.garden dataset.
// Base URLs and clients are exported so tests can point them at fixtures.
type Garden struct {
	CatalogBase string
	ScrapeBase  string
	MetadataURL string

	// Client fetches dataset JSON; Scraper fetches third-party channel pages
	// and carries the larger timeout and, optionally, the browser fingerprint.
	Client  *http.Client
	Scraper *http.Client

	Retries int
	Backoff time.Duration
}

// New builds a provider from the global configuration.
func New() *Garden {
	scraper := &http.Client{Timeout: time.Duration(viper.GetInt(key.ScrapeTimeout)) * time.Second}
	if viper.GetBool(key.ScrapeSpoofTLS) {
		scraper.Transport = newBrowserTransport()
	}

	return &Garden{
		CatalogBase: viper.GetString(key.CatalogBaseURL),
		ScrapeBase:  viper.GetString(key.ScrapeBaseURL),
		MetadataURL: metadataURL,
		Client: &http.Client{
			Timeout:   time.Duration(viper.GetInt(key.CatalogTimeout)) * time.Second,
			Transport: network.Client.Transport,
		},
		Scraper: scraper,
		Retries: viper.GetInt(key.ScrapeRetries),
		Backoff: time.Duration(viper.GetInt(key.ScrapeBackoff)) * time.Millisecond,
	}
}

// Name returns the provider identifier.
func (g *Garden) Name() string {
	return "tvgarden"
}
