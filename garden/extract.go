package garden

import (
	"regexp"
)

// Match is the outcome of a successful extraction, carrying the name of the
// strategy that produced it so callers can log provenance.
type Match struct {
	Strategy string
	URL      string
}

// strategy is one ordered attempt at locating a stream address in a page.
// When build is nil the first capture group is taken verbatim.
type strategy struct {
	name    string
	pattern *regexp.Regexp
	build   func(groups []string) string
}

// strategies is evaluated strictly in order: direct manifest addresses first,
// embedded players next, loose script variables last. The first hit wins and
// later strategies are never consulted.
var strategies = []strategy{
	{
		name:    "hls-manifest",
		pattern: regexp.MustCompile(`(?i)(https?://[^\s"'<>]+\.m3u8[^\s"'<>]*)`),
	},
	{
		name:    "mpeg-ts",
		pattern: regexp.MustCompile(`(?i)(https?://[^\s"'<>]+\.ts[^\s"'<>]*)`),
	},
	{
		name:    "player-config",
		pattern: regexp.MustCompile(`(?i)sources?:\s*\[?\s*\{[^}]*src:\s*["']([^"']+)["']`),
	},
	{
		name:    "youtube-embed",
		pattern: regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]+)`),
		build: func(groups []string) string {
			return "https://www.youtube.com/watch?v=" + groups[1]
		},
	},
	{
		name:    "iframe",
		pattern: regexp.MustCompile(`(?i)<iframe[^>]*src=["']([^"']+)["']`),
	},
	{
		name:    "video-src",
		pattern: regexp.MustCompile(`(?i)<video[^>]*src=["']([^"']+)["']`),
	},
	{
		name:    "source-tag",
		pattern: regexp.MustCompile(`(?i)<source[^>]*src=["']([^"']+)["']`),
	},
	{
		name:    "data-attribute",
		pattern: regexp.MustCompile(`(?i)data-(?:src|stream|url|video)=["']([^"']+)["']`),
	},
	{
		name:    "script-variable",
		pattern: regexp.MustCompile(`(?i)(?:streamUrl|videoUrl|src|url)\s*[=:]\s*["']([^"']+\.(?:m3u8|mp4|ts))["']`),
	},
}

// Extract runs the strategy cascade over a channel page document and returns
// the first stream address found.
func Extract(document string) (Match, bool) {
	for _, s := range strategies {
		groups := s.pattern.FindStringSubmatch(document)
		if groups == nil {
			continue
		}

		url := groups[1]
		if s.build != nil {
			url = s.build(groups)
		}

		return Match{Strategy: s.name, URL: url}, true
	}

	return Match{}, false
}
