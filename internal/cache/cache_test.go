package cache

import (
	"testing"
	"time"

	"github.com/pftv-cli/pftv/filesystem"
	"github.com/pftv-cli/pftv/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestCache(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		Convey("Keys are stable and distinct", func() {
			a := GenerateKey("http://projectfreetv.club/internet/show/")
			So(a, ShouldEqual, GenerateKey(" http://projectfreetv.club/internet/show/ "))
			So(a, ShouldNotEqual, GenerateKey("http://projectfreetv.club/internet/other/"))
			So(a, ShouldHaveLength, 64)
		})

		Convey("TTL follows config", func() {
			viper.Set(key.FetchCacheTTL, 0)
			So(Enabled(), ShouldBeFalse)
			viper.Set(key.FetchCacheTTL, 5)
			So(TTL(), ShouldEqual, 5*time.Minute)
			So(Enabled(), ShouldBeTrue)
			viper.Set(key.FetchCacheTTL, 0)
		})

		Convey("When a page is written", func() {
			k := GenerateKey("http://example.com/page")
			So(Write(k, []byte("<html></html>")), ShouldBeNil)

			Convey("Then it reads back while fresh", func() {
				data, ok := Read(k, time.Hour)
				So(ok, ShouldBeTrue)
				So(string(data), ShouldEqual, "<html></html>")
			})

			Convey("Then it is ignored and pruned once stale", func() {
				old := time.Now().Add(-2 * time.Hour)
				So(filesystem.API().Chtimes(path(k), old, old), ShouldBeNil)

				_, ok := Read(k, time.Hour)
				So(ok, ShouldBeFalse)
				So(Prune(time.Hour), ShouldEqual, 1)

				exists, _ := filesystem.API().Exists(path(k))
				So(exists, ShouldBeFalse)
			})
		})

		Convey("Missing keys are misses", func() {
			_, ok := Read(GenerateKey("nothing"), time.Hour)
			So(ok, ShouldBeFalse)
		})
	})
}
