package garden

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gardentv-cli/gardentv/source"
	. "github.com/smartystreets/goconvey/convey"
)

// fixture mirrors the Democratic Republic of the Congo dataset document.
const cdChannels = `[
	{
		"nanoid": "QOfJ38EhuVvyDe",
		"name": "RTNC",
		"iptv_urls": ["https://cdn.example.cd/rtnc/index.m3u8"],
		"youtube_urls": [],
		"language": "fr",
		"category": "News",
		"isGeoBlocked": false
	},
	{
		"nanoid": "aaaaaaaaaaaaaa",
		"name": "Digital Congo TV",
		"iptv_urls": [],
		"youtube_urls": ["https://www.youtube.com/watch?v=abc123"],
		"language": "fr",
		"category": "",
		"isGeoBlocked": true
	},
	{
		"nanoid": "bbbbbbbbbbbbbb",
		"name": "Dead Channel",
		"iptv_urls": [],
		"youtube_urls": []
	},
	{
		"nanoid": "cccccccccccccc",
		"name": "",
		"iptv_urls": ["", "http://backup.example.cd/live.ts"],
		"youtube_urls": []
	}
]`

func testGarden(catalogBase, scrapeBase string) *Garden {
	return &Garden{
		CatalogBase: catalogBase,
		ScrapeBase:  scrapeBase,
		Client:      http.DefaultClient,
		Scraper:     http.DefaultClient,
		Retries:     3,
		Backoff:     time.Millisecond,
	}
}

func TestCountryChannels(t *testing.T) {
	Convey("Given a dataset serving the cd channel list", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/cd.json" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			fmt.Fprint(w, cdChannels)
		}))
		defer server.Close()

		garden := testGarden(server.URL, server.URL)

		Convey("Fetching cd normalizes every usable entry", func() {
			channels, err := garden.CountryChannels(context.Background(), "CD")
			So(err, ShouldBeNil)
			So(channels, ShouldHaveLength, 3)

			Convey("IPTV addresses win and metadata is carried over", func() {
				So(channels[0].Name, ShouldEqual, "RTNC")
				So(channels[0].Country, ShouldEqual, "CD")
				So(channels[0].Category, ShouldEqual, "News")
				So(channels[0].Language, ShouldEqual, "fr")
				So(channels[0].GeoBlocked, ShouldBeFalse)
				So(channels[0].Stream.String(), ShouldEqual, "https://cdn.example.cd/rtnc/index.m3u8")
			})

			Convey("YouTube addresses back up missing IPTV ones", func() {
				So(channels[1].Name, ShouldEqual, "Digital Congo TV")
				So(channels[1].Category, ShouldEqual, source.DefaultCategory)
				So(channels[1].GeoBlocked, ShouldBeTrue)
				So(channels[1].Stream.String(), ShouldEqual, "https://www.youtube.com/watch?v=abc123")
			})

			Convey("Blank names and leading empty addresses fall back", func() {
				So(channels[2].Name, ShouldEqual, source.DefaultName)
				So(channels[2].Stream.String(), ShouldEqual, "http://backup.example.cd/live.ts")
			})
		})

		Convey("An unknown country yields a fetch error with the status", func() {
			_, err := garden.CountryChannels(context.Background(), "zz")

			var fetchErr *FetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
			So(fetchErr.Status, ShouldEqual, http.StatusNotFound)
		})

		Convey("A malformed document yields a parse error", func() {
			broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"not": "a list"}`)
			}))
			defer broken.Close()

			_, err := testGarden(broken.URL, broken.URL).CountryChannels(context.Background(), "cd")

			var parseErr *ParseError
			So(errors.As(err, &parseErr), ShouldBeTrue)
		})
	})
}

func TestResolveStream(t *testing.T) {
	ref := source.IndirectRef{Country: "cd", ChannelID: "QOfJ38EhuVvyDe"}

	Convey("Given a channel page behind an indirect reference", t, func() {
		Convey("A playable address is extracted from the page", func(c C) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				c.So(r.URL.Path, ShouldEqual, "/cd/QOfJ38EhuVvyDe")
				fmt.Fprint(w, `<script>var src = {file: "https://edge.example.cd/rtnc.m3u8"};</script>`)
			}))
			defer server.Close()

			url, err := testGarden(server.URL, server.URL).ResolveStream(context.Background(), ref)
			So(err, ShouldBeNil)
			So(url, ShouldEqual, "https://edge.example.cd/rtnc.m3u8")
		})

		Convey("Transient failures are retried until the page loads", func() {
			var hits atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if hits.Add(1) < 3 {
					w.WriteHeader(http.StatusBadGateway)
					return
				}
				fmt.Fprint(w, `<iframe src="https://player.example.cd/embed"></iframe>`)
			}))
			defer server.Close()

			url, err := testGarden(server.URL, server.URL).ResolveStream(context.Background(), ref)
			So(err, ShouldBeNil)
			So(url, ShouldEqual, "https://player.example.cd/embed")
			So(hits.Load(), ShouldEqual, 3)
		})

		Convey("Exhausted retries surface as an unresolved reference", func() {
			var hits atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer server.Close()

			_, err := testGarden(server.URL, server.URL).ResolveStream(context.Background(), ref)
			So(errors.Is(err, ErrUnresolved), ShouldBeTrue)
			So(hits.Load(), ShouldEqual, 3)
		})

		Convey("A page without a stream is definitive and not retried", func() {
			var hits atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				fmt.Fprint(w, `<html><body>nothing to watch</body></html>`)
			}))
			defer server.Close()

			_, err := testGarden(server.URL, server.URL).ResolveStream(context.Background(), ref)
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			So(hits.Load(), ShouldEqual, 1)
		})

		Convey("Cancellation stops the retry loop", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer server.Close()

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := testGarden(server.URL, server.URL).ResolveStream(ctx, ref)
			So(err, ShouldNotBeNil)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestAvailableCountries(t *testing.T) {
	Convey("Given the countries metadata document", t, func() {
		Convey("The published codes come back sorted", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"us": {"channels": 420}, "cd": {"channels": 12}, "fr": {"channels": 99}}`)
			}))
			defer server.Close()

			garden := testGarden(server.URL, server.URL)
			garden.MetadataURL = server.URL + "/countries_metadata.json"

			So(garden.AvailableCountries(context.Background()), ShouldResemble, []string{"cd", "fr", "us"})
		})

		Convey("An unreachable document degrades to the fallback list", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer server.Close()

			garden := testGarden(server.URL, server.URL)
			garden.MetadataURL = server.URL + "/countries_metadata.json"

			codes := garden.AvailableCountries(context.Background())
			So(codes, ShouldResemble, fallbackCountries)
		})
	})
}
