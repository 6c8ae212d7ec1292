package config

import (
	"testing"

	"github.com/gardentv-cli/gardentv/filesystem"
	"github.com/gardentv-cli/gardentv/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Free channel limit should default to 5", func() {
			_ = Setup()
			So(viper.GetInt(key.CatalogFreeLimit), ShouldEqual, 5)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("catalog.base.url")
			So(result, ShouldEqual, "catalog_base_url")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		f := Default[key.ScrapeRetries]

		Convey("Env name carries the application prefix", func() {
			So(f.Env(), ShouldEqual, "GARDENTV_SCRAPE_RETRIES")
		})

		Convey("Type name reflects the default value", func() {
			So(f.typeName(), ShouldEqual, "int")
		})
	})
}
