// Package version reports what build of the binary is running.
package version

import (
	"runtime"
	"runtime/debug"

	"github.com/pftv-cli/pftv/constant"
)

// Info describes the running build. Fields the toolchain did not record are "unknown".
type Info struct {
	App       string
	Version   string
	Revision  string
	BuiltAt   string
	GoVersion string
	OS        string
	Arch      string
	Modified  bool
}

// Current collects build information embedded by the Go toolchain.
func Current() Info {
	info := Info{
		App:       constant.Pftv,
		Version:   constant.Version,
		Revision:  "unknown",
		BuiltAt:   "unknown",
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}

	build, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	for _, setting := range build.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Revision = setting.Value
		case "vcs.time":
			info.BuiltAt = setting.Value
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}

	return info
}

// Short returns the first seven characters of the revision.
func (i Info) Short() string {
	if len(i.Revision) > 7 {
		return i.Revision[:7]
	}
	return i.Revision
}
