package catalog

import "github.com/gardentv-cli/gardentv/source"

// curated is a small hand-picked set of stable channels served when the
// caller wants something to browse without naming a country first. One entry
// deliberately keeps the legacy indirect form to exercise resolution.
var curated = []*source.Channel{
	{
		Name:     "NASA TV",
		Country:  "United States",
		Category: "Science",
		Language: "en",
		Stream:   source.DirectStream("https://ntv1.akamaized.net/hls/live/2014075/NASA-NTV1-HLS/master.m3u8"),
	},
	{
		Name:     "RTNC",
		Country:  "Democratic Republic of the Congo",
		Category: "News",
		Language: "fr",
		Stream:   source.IndirectStream("cd", "QOfJ38EhuVvyDe"),
	},
	{
		Name:     "Red Bull TV",
		Country:  "Austria",
		Category: "Sports",
		Language: "en",
		Stream:   source.DirectStream("https://rbmn-live.akamaized.net/hls/live/590964/BoRB-AT/master.m3u8"),
	},
	{
		Name:     "France 24",
		Country:  "France",
		Category: "News",
		Language: "fr",
		Stream:   source.DirectStream("https://www.youtube.com/watch?v=l8PMl7tUDIE"),
	},
	{
		Name:       "Deutsche Welle",
		Country:    "Germany",
		Category:   "News",
		Language:   "de",
		GeoBlocked: true,
		Stream:     source.DirectStream("https://dwamdstream102.akamaized.net/hls/live/2015525/dwstream102/index.m3u8"),
	},
	{
		Name:     "Rai News 24",
		Country:  "Italy",
		Category: "News",
		Language: "it",
		Stream:   source.DirectStream("https://mediapolis.rai.it/relinker/relinkerServlet.htm?cont=1"),
	},
}

// AllChannels returns the curated fallback set, truncated to the service
// limit like any per-country listing.
func (s *Service) AllChannels() []*source.Channel {
	channels := make([]*source.Channel, len(curated))
	copy(channels, curated)

	if s.Limit > 0 && len(channels) > s.Limit {
		channels = channels[:s.Limit]
	}

	return channels
}
