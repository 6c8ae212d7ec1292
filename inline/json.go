// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"

	"github.com/gardentv-cli/gardentv/source"
)

type Entry struct {
	// Channel is the normalized catalog entry.
	Channel *source.Channel `json:"channel"`
	// URL is the playable address after resolution (optional).
	URL string `json:"url,omitempty"`
}

type Output struct {
	Country string   `json:"country,omitempty"`
	Query   string   `json:"query,omitempty"`
	Result  []*Entry `json:"result"`
}

func asJson(entries []*Entry, options *Options) ([]byte, error) {
	if entries == nil {
		entries = []*Entry{}
	}

	return json.Marshal(&Output{
		Country: options.Country,
		Query:   options.Query,
		Result:  entries,
	})
}
