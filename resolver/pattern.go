package resolver

import (
	"bytes"
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pftv-cli/pftv/loader"
	"github.com/pftv-cli/pftv/log"
	"github.com/pftv-cli/pftv/util"
)

// PatternResolver fetches the player page and looks for the direct URL with a
// regular expression. Inline scripts are searched first, then the whole page.
// The URL is taken from the group named "url", or the first group if there is none.
type PatternResolver struct {
	Domain  string
	Pattern *regexp.Regexp
	Fetcher loader.Fetcher
}

func (p *PatternResolver) Resolve(ctx context.Context, embeddedURL string) (string, error) {
	page, err := p.Fetcher.Fetch(ctx, embeddedURL)
	if err != nil {
		return "", &ResolutionError{Domain: p.Domain, URL: embeddedURL, Err: err}
	}

	direct, ok := p.find(page)
	if !ok {
		return "", &ResolutionError{Domain: p.Domain, URL: embeddedURL}
	}

	return absolute(embeddedURL, direct), nil
}

func (p *PatternResolver) find(page []byte) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		log.Debugf("resolver: %s: parse player page: %s", p.Domain, err)
	} else {
		var found string
		doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			found, _ = p.match(s.Text())
			return found == ""
		})
		if found != "" {
			return found, true
		}
	}

	return p.match(string(page))
}

func (p *PatternResolver) match(text string) (string, bool) {
	if groups := util.ReGroups(p.Pattern, text); len(groups) > 0 {
		if u := strings.TrimSpace(groups["url"]); u != "" {
			return u, true
		}
	}

	m := p.Pattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return "", false
	}

	u := strings.TrimSpace(m[1])
	return u, u != ""
}

// absolute resolves protocol-relative and relative player URLs against the page they came from.
func absolute(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}

	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}

	return b.ResolveReference(r).String()
}
