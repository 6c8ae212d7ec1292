// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gardentv-cli/gardentv/catalog"
	"github.com/gardentv-cli/gardentv/source"
	"github.com/gardentv-cli/gardentv/util"
	"github.com/samber/mo"
)

// ChannelPicker narrows a filtered listing down to a single channel.
type ChannelPicker func([]*source.Channel) *source.Channel

type Options struct {
	Out     io.Writer
	Catalog *catalog.Service

	// Country is a human-readable country name; blank serves the curated set.
	Country string
	Query   string

	Json bool
	// Resolve scrapes indirect references into playable addresses before output.
	Resolve bool

	ChannelPicker mo.Option[ChannelPicker]
}

// ParseChannelPicker parses the legacy string description of a picker.
// Supported kinds: "first", "last", "exact" (by name), "index".
func ParseChannelPicker(kind, value string) (ChannelPicker, error) {
	switch kind {
	case "first":
		return func(channels []*source.Channel) *source.Channel {
			if len(channels) == 0 {
				return nil
			}
			return channels[0]
		}, nil
	case "last":
		return func(channels []*source.Channel) *source.Channel {
			if len(channels) == 0 {
				return nil
			}
			return channels[len(channels)-1]
		}, nil
	case "exact":
		return func(channels []*source.Channel) *source.Channel {
			for _, c := range channels {
				if c.Name == value {
					return c
				}
			}
			return nil
		}, nil
	case "index":
		idx, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return func(channels []*source.Channel) *source.Channel {
			if len(channels) == 0 {
				return nil
			}
			i := util.Min(idx, uint64(len(channels)-1))
			return channels[i]
		}, nil
	default:
		return nil, fmt.Errorf("unknown picker type: %s", kind)
	}
}
