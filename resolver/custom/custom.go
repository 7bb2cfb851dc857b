// Package custom loads link resolvers written in Lua. A script named
// <domain>.lua resolves links for that domain by defining a global
// ResolveLink(embedded_url, page) function.
package custom

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pftv-cli/pftv/constant"
	"github.com/pftv-cli/pftv/filesystem"
	"github.com/pftv-cli/pftv/loader"
	"github.com/pftv-cli/pftv/log"
	"github.com/pftv-cli/pftv/resolver"
	"github.com/pftv-cli/pftv/util"
	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"
)

// Extension of resolver scripts.
const Extension = ".lua"

// LuaResolver runs one script. A Lua state is not safe for concurrent use,
// so calls are serialized.
type LuaResolver struct {
	domain  string
	path    string
	fetcher loader.Fetcher

	mu    sync.Mutex
	state *lua.LState
}

var _ resolver.Resolver = (*LuaResolver)(nil)

// Load compiles and runs the script at path. The domain is the file name without its extension.
func Load(path string, fetcher loader.Fetcher) (*LuaResolver, error) {
	proto, err := compile(path)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}

	state := lua.NewState()
	libs.Preload(state)

	if err := run(state, proto); err != nil {
		state.Close()
		return nil, fmt.Errorf("run %s: %w", path, err)
	}

	if state.GetGlobal(constant.ResolveLinkFn).Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("function %s is required but not defined in %s", constant.ResolveLinkFn, path)
	}

	return &LuaResolver{
		domain:  util.FileStem(path),
		path:    path,
		fetcher: fetcher,
		state:   state,
	}, nil
}

func (r *LuaResolver) Domain() string {
	return r.domain
}

func (r *LuaResolver) Path() string {
	return r.path
}

// Resolve fetches the player page and hands it to the script together with the embedded URL.
func (r *LuaResolver) Resolve(ctx context.Context, embeddedURL string) (string, error) {
	page, err := r.fetcher.Fetch(ctx, embeddedURL)
	if err != nil {
		return "", &resolver.ResolutionError{Domain: r.domain, URL: embeddedURL, Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.SetContext(ctx)
	defer r.state.RemoveContext()

	err = r.state.CallByParam(lua.P{
		Fn:      r.state.GetGlobal(constant.ResolveLinkFn),
		NRet:    1,
		Protect: true,
	}, lua.LString(embeddedURL), lua.LString(page))
	if err != nil {
		return "", &resolver.ResolutionError{Domain: r.domain, URL: embeddedURL, Err: err}
	}

	ret := r.state.Get(-1)
	r.state.Pop(1)

	direct, ok := ret.(lua.LString)
	if !ok || strings.TrimSpace(string(direct)) == "" {
		return "", &resolver.ResolutionError{Domain: r.domain, URL: embeddedURL}
	}

	return strings.TrimSpace(string(direct)), nil
}

// Close releases the Lua state.
func (r *LuaResolver) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Close()
}

// Scripts lists resolver scripts in dir.
func Scripts(dir string) ([]string, error) {
	files, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != Extension {
			continue
		}
		paths = append(paths, filepath.Join(dir, f.Name()))
	}
	return paths, nil
}

// RegisterAll loads every script in dir into reg. Scripts that fail to load are
// skipped and reported together in the returned error.
func RegisterAll(reg *resolver.Registry, dir string, fetcher loader.Fetcher) ([]*LuaResolver, error) {
	paths, err := Scripts(dir)
	if err != nil {
		return nil, err
	}

	var (
		loaded []*LuaResolver
		errs   []error
	)

	for _, path := range paths {
		r, err := Load(path, fetcher)
		if err != nil {
			log.Warn(err)
			errs = append(errs, err)
			continue
		}

		reg.Register(r.Domain(), r)
		loaded = append(loaded, r)
	}

	return loaded, errors.Join(errs...)
}
