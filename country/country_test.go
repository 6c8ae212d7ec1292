package country

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestResolve(t *testing.T) {
	Convey("Resolve", t, func() {
		Convey("Known names map to their table code", func() {
			So(Resolve("Democratic Republic of the Congo"), ShouldEqual, Code("cd"))
			So(Resolve("United Kingdom"), ShouldEqual, Code("gb"))
			So(Resolve("Switzerland"), ShouldEqual, Code("ch"))
			So(Resolve("South Korea"), ShouldEqual, Code("kr"))
		})

		Convey("Lookups ignore case", func() {
			So(Resolve("democratic republic of the congo"), ShouldEqual, Code("cd"))
			So(Resolve("UNITED KINGDOM"), ShouldEqual, Code("gb"))
			So(Known("france"), ShouldBeTrue)
		})

		Convey("Unknown names degrade to the lowercase first two characters", func() {
			So(Resolve("Atlantis"), ShouldEqual, Code("at"))
			So(Resolve("zz-top"), ShouldEqual, Code("zz"))
		})

		Convey("Always returns exactly two characters", func() {
			So(len(Resolve("X")), ShouldEqual, 2)
			for _, name := range Names() {
				So(len(Resolve(name)), ShouldEqual, 2)
			}
		})
	})
}

func TestName(t *testing.T) {
	Convey("Name reverse lookup", t, func() {
		So(Name("cd"), ShouldEqual, "Democratic Republic of the Congo")
		So(Name("zz"), ShouldBeEmpty)
	})
}

func TestClosest(t *testing.T) {
	Convey("Closest", t, func() {
		So(Closest("Frnce"), ShouldEqual, "France")
		So(Closest("Grmany"), ShouldEqual, "Germany")
	})
}

func TestContinents(t *testing.T) {
	Convey("Continents", t, func() {
		Convey("Every grouped country resolves through the static table", func() {
			for _, continent := range Continents {
				for _, name := range continent.Countries {
					So(Known(name), ShouldBeTrue)
				}
			}
		})

		Convey("CountriesIn", func() {
			So(CountriesIn("Oceania"), ShouldContain, "Fiji")
			So(CountriesIn("Middle Earth"), ShouldBeNil)
		})

		Convey("ContinentNames preserves display order", func() {
			names := ContinentNames()
			So(names[0], ShouldEqual, "Africa")
			So(len(names), ShouldEqual, 6)
		})
	})
}
