package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gardentv-cli/gardentv/garden"
	"github.com/gardentv-cli/gardentv/key"
	"github.com/gardentv-cli/gardentv/source"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

// fakeProvider records the codes it was asked for and serves canned channels.
type fakeProvider struct {
	channels map[string][]*source.Channel
	resolved map[string]string
	asked    []string
	err      error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) CountryChannels(_ context.Context, code string) ([]*source.Channel, error) {
	f.asked = append(f.asked, code)
	if f.err != nil {
		return nil, f.err
	}
	return f.channels[code], nil
}

func (f *fakeProvider) ResolveStream(_ context.Context, ref source.IndirectRef) (string, error) {
	url, ok := f.resolved[ref.String()]
	if !ok {
		return "", errors.New("unknown reference")
	}
	return url, nil
}

func congolese(n int) []*source.Channel {
	channels := make([]*source.Channel, n)
	for i := range channels {
		channels[i] = &source.Channel{
			Name:     fmt.Sprintf("Channel %d", i+1),
			Country:  "CD",
			Category: "News",
			Stream:   source.DirectStream(fmt.Sprintf("https://cd.example/%d.m3u8", i+1)),
		}
	}
	return channels
}

func TestChannelsFor(t *testing.T) {
	Convey("Given a catalog service over a provider", t, func() {
		provider := &fakeProvider{channels: map[string][]*source.Channel{"cd": congolese(7)}}
		service := &Service{Provider: provider, Limit: 5}

		Convey("A country name is resolved to its code before fetching", func() {
			channels := service.ChannelsFor(context.Background(), "Democratic Republic of the Congo")

			So(provider.asked, ShouldResemble, []string{"cd"})
			So(channels, ShouldNotBeEmpty)

			Convey("And every channel carries the display name", func() {
				for _, channel := range channels {
					So(channel.Country, ShouldEqual, "Democratic Republic of the Congo")
				}
			})

			Convey("And the listing honors the channel limit", func() {
				So(channels, ShouldHaveLength, 5)
				So(channels[0].Name, ShouldEqual, "Channel 1")
			})
		})

		Convey("A zero limit keeps the whole listing", func() {
			service.Limit = 0
			So(service.ChannelsFor(context.Background(), "Democratic Republic of the Congo"), ShouldHaveLength, 7)
		})

		Convey("An unrecognized name degrades to a two-letter guess", func() {
			service.ChannelsFor(context.Background(), "Atlantis")
			So(provider.asked, ShouldResemble, []string{"at"})
		})

		Convey("A provider failure yields an empty listing, not an error", func() {
			provider.err = errors.New("dataset unreachable")
			So(service.ChannelsFor(context.Background(), "Democratic Republic of the Congo"), ShouldBeEmpty)
		})
	})
}

func TestResolveIndirect(t *testing.T) {
	Convey("Given channels with direct and indirect streams", t, func() {
		provider := &fakeProvider{resolved: map[string]string{
			"tvgarden://cd/QOfJ38EhuVvyDe": "https://edge.example.cd/rtnc.m3u8",
		}}
		service := &Service{Provider: provider}

		Convey("A direct stream passes through untouched", func() {
			channel := &source.Channel{Stream: source.DirectStream("https://direct.example/live.m3u8")}

			url, err := service.ResolveIndirect(context.Background(), channel)
			So(err, ShouldBeNil)
			So(url, ShouldEqual, "https://direct.example/live.m3u8")
		})

		Convey("An indirect stream goes through the provider", func() {
			channel := &source.Channel{Stream: source.IndirectStream("cd", "QOfJ38EhuVvyDe")}

			url, err := service.ResolveIndirect(context.Background(), channel)
			So(err, ShouldBeNil)
			So(url, ShouldEqual, "https://edge.example.cd/rtnc.m3u8")
		})

		Convey("A dangling reference surfaces the provider error", func() {
			channel := &source.Channel{Stream: source.IndirectStream("cd", "gone")}

			_, err := service.ResolveIndirect(context.Background(), channel)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSearch(t *testing.T) {
	channels := []*source.Channel{
		{Name: "RTNC", Country: "Democratic Republic of the Congo", Category: "News"},
		{Name: "Red Bull TV", Country: "Austria", Category: "Sports"},
		{Name: "France 24", Country: "France", Category: "News"},
	}

	Convey("Search", t, func() {
		Convey("Matches are case-insensitive substrings over name, country, and category", func() {
			So(Search(channels, "rtnc"), ShouldHaveLength, 1)
			So(Search(channels, "news"), ShouldHaveLength, 2)
			So(Search(channels, "austria"), ShouldHaveLength, 1)
			So(Search(channels, "  France "), ShouldHaveLength, 1)
			So(Search(channels, "cartoons"), ShouldBeEmpty)
		})

		Convey("A blank query follows the configured policy", func() {
			viper.Set(key.SearchEmptyQueryAll, true)
			So(Search(channels, "   "), ShouldHaveLength, 3)

			viper.Set(key.SearchEmptyQueryAll, false)
			So(Search(channels, ""), ShouldBeEmpty)

			Reset(func() {
				viper.Set(key.SearchEmptyQueryAll, true)
			})
		})
	})
}

func TestAllChannels(t *testing.T) {
	Convey("AllChannels", t, func() {
		service := &Service{Limit: 5}

		Convey("The curated set is served within the limit", func() {
			channels := service.AllChannels()
			So(channels, ShouldHaveLength, 5)
		})

		Convey("It keeps a legacy indirect reference for resolution", func() {
			service.Limit = 0

			indirect := 0
			for _, channel := range service.AllChannels() {
				if channel.Stream.IsIndirect() {
					indirect++
					So(channel.Stream.String(), ShouldEqual, "tvgarden://cd/QOfJ38EhuVvyDe")
				}
			}
			So(indirect, ShouldEqual, 1)
		})
	})
}

func TestEndToEnd(t *testing.T) {
	Convey("Given a live provider over a dataset fixture", t, func(c C) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.So(r.URL.Path, ShouldEqual, "/cd.json")
			fmt.Fprint(w, `[{"name": "Test TV", "iptv_urls": ["http://x/test.m3u8"], "youtube_urls": [], "category": "News"}]`)
		}))
		defer server.Close()

		provider := &garden.Garden{
			CatalogBase: server.URL,
			ScrapeBase:  server.URL,
			Client:      http.DefaultClient,
			Scraper:     http.DefaultClient,
		}
		service := &Service{Provider: provider, Limit: 5}

		Convey("The country name flows through code resolution into the catalog", func() {
			channels := service.ChannelsFor(context.Background(), "Democratic Republic of the Congo")

			So(channels, ShouldHaveLength, 1)
			So(channels[0].Name, ShouldEqual, "Test TV")
			So(channels[0].Country, ShouldEqual, "Democratic Republic of the Congo")
			So(channels[0].Category, ShouldEqual, "News")
			So(channels[0].GeoBlocked, ShouldBeFalse)
			So(channels[0].Stream.String(), ShouldEqual, "http://x/test.m3u8")
		})
	})
}
