package garden

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gardentv-cli/gardentv/constant"
	"github.com/gardentv-cli/gardentv/log"
	"golang.org/x/exp/slices"
)

// fallbackCountries is served when the metadata document is unreachable, so
// the catalog stays browsable offline-ish with the most requested regions.
var fallbackCountries = []string{"cd", "us", "gb", "fr", "de", "es", "it", "br", "mx", "ca"}

// AvailableCountries returns the sorted country codes the dataset publishes
// channel lists for. Failures degrade to a static well-known subset instead
// of propagating.
func (g *Garden) AvailableCountries(ctx context.Context) []string {
	codes, err := g.fetchCountryCodes(ctx)
	if err != nil {
		log.Warnf("country metadata unavailable, using fallback list: %v", err)
		return slices.Clone(fallbackCountries)
	}

	slices.Sort(codes)

	return codes
}

func (g *Garden) fetchCountryCodes(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.MetadataURL, nil)
	if err != nil {
		return nil, &FetchError{URL: g.MetadataURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: g.MetadataURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: g.MetadataURL, Status: resp.StatusCode}
	}

	// The metadata document maps country codes to channel counts; only the
	// keys matter here.
	var metadata map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&metadata); err != nil {
		return nil, &ParseError{URL: g.MetadataURL, Err: err}
	}

	codes := make([]string, 0, len(metadata))
	for code := range metadata {
		codes = append(codes, code)
	}

	return codes, nil
}
