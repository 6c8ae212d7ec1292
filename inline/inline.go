// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gardentv-cli/gardentv/catalog"
	"github.com/gardentv-cli/gardentv/log"
	"github.com/gardentv-cli/gardentv/source"
)

func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	// Step 1: Build the base listing, per-country or curated.
	var channels []*source.Channel
	if options.Country != "" {
		channels = options.Catalog.ChannelsFor(ctx, options.Country)
	} else {
		channels = options.Catalog.AllChannels()
	}

	// Step 2: Apply the free-text filter.
	channels = catalog.Search(channels, options.Query)

	// Step 3: Narrow to a single channel if a picker is defined.
	var selected []*source.Channel
	if options.ChannelPicker.IsPresent() {
		picker := options.ChannelPicker.MustGet()
		if choice := picker(channels); choice != nil {
			selected = []*source.Channel{choice}
		}
	} else {
		selected = channels
	}

	if len(selected) == 0 {
		if options.Json {
			return writeJson(options.Out, nil, options)
		}
		return nil
	}

	// Step 4: Optionally resolve indirect references into playable addresses.
	entries := make([]*Entry, 0, len(selected))
	for _, channel := range selected {
		entry := &Entry{Channel: channel}

		if options.Resolve {
			url, err := options.Catalog.ResolveIndirect(ctx, channel)
			if err != nil {
				log.Warnf("resolution failed for %s: %v", channel.Name, err)
			} else {
				entry.URL = url
			}
		}

		entries = append(entries, entry)
	}

	// Step 5: Dispatch the processed results to the configured output writer.
	if options.Json {
		return writeJson(options.Out, entries, options)
	}

	for _, entry := range entries {
		address := entry.URL
		if address == "" {
			address = entry.Channel.Stream.String()
		}
		fmt.Fprintln(options.Out, address)
	}

	return nil
}

func writeJson(out io.Writer, entries []*Entry, options *Options) error {
	data, err := asJson(entries, options)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
