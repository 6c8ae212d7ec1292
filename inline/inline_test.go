package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gardentv-cli/gardentv/catalog"
	"github.com/gardentv-cli/gardentv/source"
	"github.com/gardentv-cli/gardentv/key"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	viper.Set(key.SearchEmptyQueryAll, true)
}

type staticProvider struct {
	channels []*source.Channel
}

func (staticProvider) Name() string { return "static" }

func (p staticProvider) CountryChannels(context.Context, string) ([]*source.Channel, error) {
	return p.channels, nil
}

func (staticProvider) ResolveStream(_ context.Context, ref source.IndirectRef) (string, error) {
	return "https://resolved.example/" + ref.ChannelID + ".m3u8", nil
}

func testService() *catalog.Service {
	return &catalog.Service{Provider: staticProvider{channels: []*source.Channel{
		{Name: "RTNC", Country: "CD", Category: "News", Stream: source.IndirectStream("cd", "QOfJ38EhuVvyDe")},
		{Name: "Antenne A", Country: "CD", Category: "General", Stream: source.DirectStream("https://a.example/live.m3u8")},
	}}}
}

func TestRun(t *testing.T) {
	Convey("Run", t, func() {
		Convey("Plain mode prints one address per channel", func() {
			var buf bytes.Buffer
			err := Run(context.Background(), &Options{
				Out:     &buf,
				Catalog: testService(),
				Country: "Democratic Republic of the Congo",
			})
			So(err, ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			So(lines, ShouldHaveLength, 2)
			So(lines[0], ShouldEqual, "tvgarden://cd/QOfJ38EhuVvyDe")
		})

		Convey("Resolution replaces indirect references with playable addresses", func() {
			var buf bytes.Buffer
			picker, err := ParseChannelPicker("exact", "RTNC")
			So(err, ShouldBeNil)

			err = Run(context.Background(), &Options{
				Out:           &buf,
				Catalog:       testService(),
				Country:       "Democratic Republic of the Congo",
				Resolve:       true,
				ChannelPicker: mo.Some(picker),
			})
			So(err, ShouldBeNil)
			So(strings.TrimSpace(buf.String()), ShouldEqual, "https://resolved.example/QOfJ38EhuVvyDe.m3u8")
		})

		Convey("Json mode produces a valid document even for empty results", func() {
			var buf bytes.Buffer
			err := Run(context.Background(), &Options{
				Out:     &buf,
				Catalog: testService(),
				Country: "Democratic Republic of the Congo",
				Query:   "nothing matches this",
				Json:    true,
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 0)
		})
	})
}

func TestParseChannelPicker(t *testing.T) {
	channels := []*source.Channel{{Name: "One"}, {Name: "Two"}, {Name: "Three"}}

	Convey("ParseChannelPicker", t, func() {
		Convey("first, last, exact and index pickers", func() {
			for _, tc := range []struct {
				kind, value, want string
			}{
				{"first", "", "One"},
				{"last", "", "Three"},
				{"exact", "Two", "Two"},
				{"index", "1", "Two"},
			} {
				picker, err := ParseChannelPicker(tc.kind, tc.value)
				So(err, ShouldBeNil)
				So(picker(channels).Name, ShouldEqual, tc.want)
			}
		})

		Convey("Out-of-range indices clamp to the end", func() {
			picker, err := ParseChannelPicker("index", "99")
			So(err, ShouldBeNil)
			So(picker(channels).Name, ShouldEqual, "Three")
		})

		Convey("Unknown kinds are rejected", func() {
			_, err := ParseChannelPicker("random", "")
			So(err, ShouldNotBeNil)
		})
	})
}
