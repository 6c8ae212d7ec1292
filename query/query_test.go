package query

import (
	"testing"

	"github.com/gardentv-cli/gardentv/filesystem"
	"github.com/gardentv-cli/gardentv/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given query history", t, func() {
		Convey("When remembering queries", func() {
			So(Remember("news", 1), ShouldBeNil)
			So(Remember("sports", 10), ShouldBeNil)

			Convey("Then suggestions come back sorted by rank", func() {
				// Drop the in-memory layer to force a read from the store.
				suggestionCache = make(map[string][]*queryRecord)

				s := SuggestMany("spo")
				So(len(s), ShouldBeGreaterThanOrEqualTo, 1)
				So(s[0], ShouldEqual, "sports")
			})

			Convey("Suggest returns the top match only", func() {
				suggestionCache = make(map[string][]*queryRecord)

				So(Suggest("new").MustGet(), ShouldEqual, "news")
				So(Suggest("definitely-nothing").IsAbsent(), ShouldBeTrue)
			})

			Convey("It sanitizes input", func() {
				So(sanitize("  NEWS  "), ShouldEqual, "news")
			})
		})

		Convey("When suggestions are disabled", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			So(SuggestMany("news"), ShouldBeEmpty)

			Reset(func() {
				viper.Set(key.SearchShowQuerySuggestions, true)
			})
		})
	})
}
