package history

import (
	"testing"

	"github.com/gardentv-cli/gardentv/filesystem"
	"github.com/gardentv-cli/gardentv/source"
	"github.com/gardentv-cli/gardentv/where"
	"github.com/metafates/gache"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a channel", t, func() {
		filesystem.SetMemMapFs()
		cacher = gache.New[map[string]*SavedChannel](
			&gache.Options{
				Path:       where.History(),
				FileSystem: &filesystem.GacheFs{},
			},
		)

		channel := &source.Channel{
			Name:     "RTNC",
			Country:  "Democratic Republic of the Congo",
			Category: "News",
			Language: "fr",
			Stream:   source.IndirectStream("cd", "QOfJ38EhuVvyDe"),
		}

		Convey("When saving it after a watch", func() {
			err := Save(channel, "https://edge.example.cd/rtnc.m3u8")
			So(err, ShouldBeNil)

			Convey("Then the record is retrievable", func() {
				saved, err := Get()
				So(err, ShouldBeNil)

				record := saved["RTNC (Democratic Republic of the Congo)"]
				So(record, ShouldNotBeNil)
				So(record.ResolvedURL, ShouldEqual, "https://edge.example.cd/rtnc.m3u8")
				So(record.Stream.IsIndirect(), ShouldBeTrue)
				So(record.Channel().Name, ShouldEqual, "RTNC")
			})

			Convey("Re-watching bumps the count and keeps the address", func() {
				So(Save(channel, ""), ShouldBeNil)

				saved, _ := Get()
				record := saved["RTNC (Democratic Republic of the Congo)"]
				So(record.WatchCount, ShouldEqual, 2)
				So(record.ResolvedURL, ShouldEqual, "https://edge.example.cd/rtnc.m3u8")
			})

			Convey("Removal deletes the record", func() {
				saved, _ := Get()
				So(Remove(saved["RTNC (Democratic Republic of the Congo)"]), ShouldBeNil)

				saved, _ = Get()
				So(saved, ShouldBeEmpty)
			})
		})
	})
}
