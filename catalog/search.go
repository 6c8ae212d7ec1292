package catalog

import (
	"strings"

	"github.com/gardentv-cli/gardentv/key"
	"github.com/gardentv-cli/gardentv/source"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Search filters channels by a case-insensitive substring match over name,
// country, and category. The behavior of a blank query is a policy choice:
// by default it keeps the whole list so "filter as you type" starts from
// everything, but it can be flipped to return nothing instead.
func Search(channels []*source.Channel, query string) []*source.Channel {
	query = strings.TrimSpace(query)
	if query == "" {
		if viper.GetBool(key.SearchEmptyQueryAll) {
			return channels
		}
		return []*source.Channel{}
	}

	return lo.Filter(channels, func(channel *source.Channel, _ int) bool {
		return channel.Matches(query)
	})
}
