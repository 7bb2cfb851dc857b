package log

import (
	"path/filepath"
	"testing"

	"github.com/pftv-cli/pftv/filesystem"
	"github.com/pftv-cli/pftv/key"
	"github.com/pftv-cli/pftv/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Entries are swallowed", func() {
			So(func() { WithFields(Fields{"field": "title"}).Debug("empty") }, ShouldNotPanic)
			So(func() { Warnf("nothing %d", 1) }, ShouldNotPanic)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "not-a-level")
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)

		Convey("A dated log file is created", func() {
			files := lo.Must(filesystem.API().ReadDir(where.Logs()))
			So(len(files), ShouldBeGreaterThan, 0)
		})

		Convey("An unknown level falls back to info", func() {
			Info("fetched show page")
			Debug("hidden detail")

			files := lo.Must(filesystem.API().ReadDir(where.Logs()))
			data := lo.Must(filesystem.API().ReadFile(filepath.Join(where.Logs(), files[0].Name())))
			So(string(data), ShouldContainSubstring, "fetched show page")
			So(string(data), ShouldNotContainSubstring, "hidden detail")
		})
	})
}
