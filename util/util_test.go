package util

import (
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("france:24?.m3u"), ShouldEqual, "france_24_.m3u")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("bbc__news.m3u"), ShouldEqual, "bbc_news.m3u")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-channels-"), ShouldEqual, "channels")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "channel", "channels"), ShouldEqual, "1 channel")
		So(Quantify(2, "channel", "channels"), ShouldEqual, "2 channels")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("news"), ShouldEqual, "News")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`(?P<code>[a-z]{2})/(?P<id>\w+)`)
		groups := ReGroups(re, "cd/QOfJ38EhuVvyDe")
		So(groups["code"], ShouldEqual, "cd")
		So(groups["id"], ShouldEqual, "QOfJ38EhuVvyDe")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/channels.m3u"), ShouldEqual, "channels")
		So(FileStem("channels"), ShouldEqual, "channels")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}
