// Package playlist parses and writes the legacy line-oriented M3U channel list format.
//
// The format pairs one #EXTINF metadata line with the next non-comment,
// non-empty line, which carries the stream address. Parsing is pure: no I/O,
// and structurally malformed entries are dropped rather than reported.
package playlist

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"github.com/gardentv-cli/gardentv/source"
)

const (
	header = "#EXTM3U"
	marker = "#EXTINF:"
)

var attrPattern = regexp.MustCompile(`([a-zA-Z0-9-]+)="([^"]*)"`)

// Parse extracts channel records from an M3U document.
//
// A metadata line with no address line before the next metadata line (or end
// of document) yields no record. Missing attributes take the normalization
// defaults: country "Unknown", category "General", no logo.
func Parse(document string) []*source.Channel {
	var (
		channels []*source.Channel
		current  *source.Channel
	)

	scanner := bufio.NewScanner(strings.NewReader(document))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || line == header || strings.HasPrefix(line, header+" ") {
			continue
		}

		if strings.HasPrefix(line, marker) {
			// A new metadata line silently drops any unterminated predecessor.
			current = parseMeta(strings.TrimPrefix(line, marker))
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		if current != nil {
			current.Stream = source.ParseStream(line)
			channels = append(channels, current)
			current = nil
		}
	}

	return channels
}

// parseMeta interprets the segment after the #EXTINF: marker. The display name
// is everything after the first comma and may itself contain commas.
func parseMeta(info string) *source.Channel {
	meta, name, found := strings.Cut(info, ",")
	if !found {
		meta = info
	}

	attrs := make(map[string]string)
	for _, m := range attrPattern.FindAllStringSubmatch(meta, -1) {
		attrs[m[1]] = m[2]
	}

	ch := &source.Channel{
		Name:     strings.TrimSpace(name),
		Country:  source.DefaultCountry,
		Category: source.DefaultCategory,
		Logo:     attrs["tvg-logo"],
		Language: attrs["tvg-language"],
	}

	if ch.Name == "" {
		ch.Name = source.DefaultName
	}
	if country := attrs["tvg-country"]; country != "" {
		ch.Country = country
	}
	if category := attrs["group-title"]; category != "" {
		ch.Category = category
	}

	return ch
}

// Write serializes channel records back into the M3U grammar.
// Parse(Write(channels)) reconstructs an equivalent record set.
func Write(channels []*source.Channel) string {
	var b strings.Builder
	b.WriteString(header + "\n")

	for _, ch := range channels {
		b.WriteString(marker + "-1")

		writeAttr := func(key, value string) {
			if value != "" {
				fmt.Fprintf(&b, ` %s="%s"`, key, value)
			}
		}
		writeAttr("tvg-country", ch.Country)
		writeAttr("tvg-logo", ch.Logo)
		writeAttr("tvg-language", ch.Language)
		writeAttr("group-title", ch.Category)

		b.WriteString("," + ch.Name + "\n")
		b.WriteString(ch.Stream.String() + "\n")
	}

	return b.String()
}
