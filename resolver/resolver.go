// Package resolver turns embedded player URLs into direct media URLs, one
// resolver per hosting domain.
package resolver

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"

	"github.com/pftv-cli/pftv/log"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Resolver recovers the direct media URL behind an embedded player URL.
type Resolver interface {
	Resolve(ctx context.Context, embeddedURL string) (string, error)
}

// Func adapts a function to Resolver.
type Func func(ctx context.Context, embeddedURL string) (string, error)

func (f Func) Resolve(ctx context.Context, embeddedURL string) (string, error) {
	return f(ctx, embeddedURL)
}

// Domain returns the registry key for a URL: its lower-cased host without port or "www." prefix.
func Domain(embeddedURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(embeddedURL))
	if err != nil {
		return "", err
	}
	return normalizeDomain(u.Hostname()), nil
}

func normalizeDomain(domain string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(domain)), "www.")
}

// Registry maps domains to resolvers. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	resolvers map[string]Resolver
}

func NewRegistry() *Registry {
	return &Registry{resolvers: make(map[string]Resolver)}
}

// Register binds r to domain, replacing any previous binding.
func (reg *Registry) Register(domain string, r Resolver) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	reg.resolvers[normalizeDomain(domain)] = r
}

// Lookup returns the resolver bound to domain.
func (reg *Registry) Lookup(domain string) (Resolver, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	r, ok := reg.resolvers[normalizeDomain(domain)]
	return r, ok
}

// Domains lists registered domains in sorted order.
func (reg *Registry) Domains() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	domains := lo.Keys(reg.resolvers)
	slices.Sort(domains)
	return domains
}

// Resolve picks the resolver for the domain of embeddedURL and runs it.
func (reg *Registry) Resolve(ctx context.Context, embeddedURL string) (string, error) {
	domain, err := Domain(embeddedURL)
	if err != nil || domain == "" {
		return "", &NoResolverError{Domain: embeddedURL}
	}

	r, ok := reg.Lookup(domain)
	if !ok {
		return "", &NoResolverError{Domain: domain}
	}

	direct, err := r.Resolve(ctx, embeddedURL)
	if err == nil && strings.TrimSpace(direct) == "" {
		err = &ResolutionError{Domain: domain, URL: embeddedURL}
	}
	if err != nil {
		log.Warnf("resolver: %s: %s", domain, err)
		if !errors.Is(err, ErrResolution) {
			err = &ResolutionError{Domain: domain, URL: embeddedURL, Err: err}
		}
		return "", err
	}

	log.WithFields(log.Fields{"domain": domain, "url": embeddedURL}).Debug("resolved link")
	return strings.TrimSpace(direct), nil
}
