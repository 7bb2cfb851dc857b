// Package inline prints listings for scripts and terminals: JSON for the former,
// wrapped and styled text for the latter.
package inline

import (
	"io"
	"os"

	"github.com/pftv-cli/pftv/key"
	"github.com/pftv-cli/pftv/resolver"
	"github.com/pftv-cli/pftv/source"
	"github.com/pftv-cli/pftv/util"
	"github.com/spf13/viper"
)

const fallbackWidth = 80

type Options struct {
	Out      io.Writer
	Source   source.Source
	Registry *resolver.Registry
	Json     bool
	// Resolve looks up the direct URL of every link through Registry
	Resolve bool
	// Width wraps long text; zero means output.wrap, then the terminal width
	Width int
}

func (o *Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func (o *Options) width() int {
	if o.Width > 0 {
		return o.Width
	}

	if w := viper.GetInt(key.OutputWrap); w > 0 {
		return w
	}

	if w, _, err := util.TerminalSize(); err == nil && w > 0 {
		return w
	}

	return fallbackWidth
}
