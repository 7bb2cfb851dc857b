package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pftv-cli/pftv/filesystem"
	"github.com/pftv-cli/pftv/icon"
	"github.com/pftv-cli/pftv/inline"
	"github.com/pftv-cli/pftv/key"
	"github.com/pftv-cli/pftv/loader"
	"github.com/pftv-cli/pftv/network"
	"github.com/pftv-cli/pftv/pftv"
	"github.com/pftv-cli/pftv/resolver"
	"github.com/pftv-cli/pftv/resolver/custom"
	"github.com/pftv-cli/pftv/style"
	"github.com/pftv-cli/pftv/where"
	"github.com/spf13/viper"
)

// deps holds everything a listings command needs.
type deps struct {
	site     *pftv.Site
	registry *resolver.Registry
	scripts  []*custom.LuaResolver
}

func newDeps() *deps {
	l := loader.New(network.Default())

	d := &deps{
		site:     pftv.New(l),
		registry: resolver.Builtin(l),
	}

	if viper.GetBool(key.ResolversCustom) {
		scripts, err := custom.RegisterAll(d.registry, where.Resolvers(), l)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(style.FailColor)(icon.Get(icon.Fail)), err)
		}
		d.scripts = scripts
	}

	return d
}

func (d *deps) close() {
	for _, s := range d.scripts {
		s.Close()
	}
}

// withDeps runs fn and releases the Lua states before returning, so callers
// can hand the result to handleErr.
func withDeps(fn func(d *deps) error) error {
	d := newDeps()
	defer d.close()
	return fn(d)
}

// writeTo runs fn against the --output file, or stdout, and closes the file
// before returning.
func writeTo(path string, fn func(out io.Writer) error) error {
	out, done, err := output(path)
	if err != nil {
		return err
	}
	defer done()
	return fn(out)
}

// output opens the --output file, or stdout when none is given.
func output(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	f, err := filesystem.API().Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}

// options builds inline options for the current command.
func (d *deps) options(out io.Writer, json, resolve bool) *inline.Options {
	return &inline.Options{
		Out:      out,
		Source:   d.site,
		Registry: d.registry,
		Json:     json,
		Resolve:  resolve,
	}
}
