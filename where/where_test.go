package where

import (
	"path/filepath"
	"testing"

	"github.com/pftv-cli/pftv/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Pages() lives under Cache()", func() {
			So(filepath.Dir(Pages()), ShouldEqual, Cache())
		})

		Convey("Resolvers() lives under Config()", func() {
			path := Resolvers()
			So(filepath.Dir(path), ShouldEqual, Config())
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honours the override variable", func() {
			t.Setenv(EnvConfigPath, "/tmp/pftv-test-config")
			So(Config(), ShouldEqual, "/tmp/pftv-test-config")
		})
	})
}
