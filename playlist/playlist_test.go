package playlist

import (
	"testing"

	"github.com/gardentv-cli/gardentv/source"
	. "github.com/smartystreets/goconvey/convey"
)

const fixture = `#EXTM3U
#EXTINF:-1 tvg-country="United Kingdom" tvg-logo="https://logos.example/bbc.png" group-title="News",BBC News
https://d2vnbkvjbims7j.cloudfront.net/containerA/LTN/playlist.m3u8
#EXTINF:-1,Naked Channel
http://cdn.example/naked.m3u8
#EXTINF:-1 group-title="Religious",Compassion TV
tvgarden://cd/QOfJ38EhuVvyDe
`

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		channels := Parse(fixture)
		So(channels, ShouldHaveLength, 3)

		Convey("Attributes are extracted from the metadata line", func() {
			bbc := channels[0]
			So(bbc.Name, ShouldEqual, "BBC News")
			So(bbc.Country, ShouldEqual, "United Kingdom")
			So(bbc.Logo, ShouldEqual, "https://logos.example/bbc.png")
			So(bbc.Category, ShouldEqual, "News")
			So(bbc.Stream.Direct, ShouldEndWith, "playlist.m3u8")
		})

		Convey("Missing attributes take the documented defaults", func() {
			naked := channels[1]
			So(naked.Country, ShouldEqual, source.DefaultCountry)
			So(naked.Category, ShouldEqual, source.DefaultCategory)
			So(naked.Logo, ShouldBeEmpty)
		})

		Convey("Reserved-scheme addresses become indirect references", func() {
			compassion := channels[2]
			So(compassion.Stream.IsIndirect(), ShouldBeTrue)
			So(compassion.Stream.Indirect.Country, ShouldEqual, "cd")
		})

		Convey("Display names may contain commas", func() {
			withComma := Parse("#EXTINF:-1,News, Weather & Sport\nhttp://x/a.m3u8\n")
			So(withComma, ShouldHaveLength, 1)
			So(withComma[0].Name, ShouldEqual, "News, Weather & Sport")
		})

		Convey("A metadata line with no following address yields no record", func() {
			dangling := Parse("#EXTINF:-1,Ghost Channel\n#EXTINF:-1,Real Channel\nhttp://x/real.m3u8\n")
			So(dangling, ShouldHaveLength, 1)
			So(dangling[0].Name, ShouldEqual, "Real Channel")

			atEOF := Parse("#EXTINF:-1,Trailing Channel\n")
			So(atEOF, ShouldBeEmpty)
		})

		Convey("Comment lines between metadata and address are skipped", func() {
			commented := Parse("#EXTINF:-1,Chan\n# a stray comment\nhttp://x/c.m3u8\n")
			So(commented, ShouldHaveLength, 1)
			So(commented[0].Stream.Direct, ShouldEqual, "http://x/c.m3u8")
		})
	})
}

func TestRoundTrip(t *testing.T) {
	Convey("Parse is idempotent over Write", t, func() {
		first := Parse(fixture)
		second := Parse(Write(first))
		So(second, ShouldResemble, first)
	})
}
