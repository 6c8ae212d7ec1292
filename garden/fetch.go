package garden

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gardentv-cli/gardentv/constant"
	"github.com/gardentv-cli/gardentv/log"
	"github.com/gardentv-cli/gardentv/source"
	"github.com/samber/lo"
)

// record mirrors one entry of the per-country dataset files.
type record struct {
	NanoID       string   `json:"nanoid"`
	Name         string   `json:"name"`
	IptvURLs     []string `json:"iptv_urls"`
	YoutubeURLs  []string `json:"youtube_urls"`
	Language     string   `json:"language"`
	Category     string   `json:"category"`
	Logo         string   `json:"logo"`
	IsGeoBlocked bool     `json:"isGeoBlocked"`
}

// CountryChannels fetches the channel list for a two-letter country code and
// normalizes it into catalog channels. Entries without any usable address are
// dropped; IPTV addresses win over YouTube ones.
func (g *Garden) CountryChannels(ctx context.Context, code string) ([]*source.Channel, error) {
	code = strings.ToLower(code)
	url := fmt.Sprintf("%s/%s.json", strings.TrimSuffix(g.CatalogBase, "/"), code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, Status: resp.StatusCode}
	}

	var records []record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &ParseError{URL: url, Err: err}
	}

	log.Debugf("fetched %d raw entries for country %q", len(records), code)

	channels := lo.FilterMap(records, func(r record, _ int) (*source.Channel, bool) {
		address, ok := firstAddress(r)
		if !ok {
			return nil, false
		}

		return &source.Channel{
			Name:       lo.Ternary(r.Name != "", r.Name, source.DefaultName),
			Country:    strings.ToUpper(code),
			Logo:       r.Logo,
			Category:   lo.Ternary(r.Category != "", r.Category, source.DefaultCategory),
			Language:   r.Language,
			GeoBlocked: r.IsGeoBlocked,
			Stream:     source.ParseStream(address),
		}, true
	})

	return channels, nil
}

// firstAddress picks the channel's address: the first non-empty IPTV url,
// then the first non-empty YouTube url, otherwise nothing.
func firstAddress(r record) (string, bool) {
	for _, urls := range [][]string{r.IptvURLs, r.YoutubeURLs} {
		if url, ok := lo.Find(urls, func(u string) bool { return u != "" }); ok {
			return url, true
		}
	}

	return "", false
}
