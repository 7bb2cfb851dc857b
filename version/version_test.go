package version

import (
	"runtime"
	"testing"

	"github.com/pftv-cli/pftv/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCurrent(t *testing.T) {
	Convey("Build info always names the app and platform", t, func() {
		info := Current()
		So(info.App, ShouldEqual, constant.Pftv)
		So(info.Version, ShouldEqual, constant.Version)
		So(info.OS, ShouldEqual, runtime.GOOS)
		So(info.Revision, ShouldNotBeEmpty)
		So(info.BuiltAt, ShouldNotBeEmpty)
	})

	Convey("Short revisions", t, func() {
		So(Info{Revision: "0123456789abcdef"}.Short(), ShouldEqual, "0123456")
		So(Info{Revision: "unknown"}.Short(), ShouldEqual, "unknown")
	})
}
