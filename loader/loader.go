// Package loader fetches listing pages and parses them into HTML trees.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/antchfx/htmlquery"
	"github.com/pftv-cli/pftv/constant"
	"github.com/pftv-cli/pftv/internal/cache"
	"github.com/pftv-cli/pftv/key"
	"github.com/pftv-cli/pftv/log"
	"github.com/spf13/viper"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// ErrRetrieval is matched by every RetrievalError.
var ErrRetrieval = errors.New("retrieval failed")

// RetrievalError reports a page that could not be fetched or parsed.
// StatusCode is zero when no response was received.
type RetrievalError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *RetrievalError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("retrieve %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("retrieve %s: %s", e.URL, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

func (e *RetrievalError) Is(target error) bool {
	return target == ErrRetrieval
}

// Loader turns a URL into a parsed document.
type Loader interface {
	Load(ctx context.Context, url string) (*html.Node, error)
}

// Fetcher returns the raw body of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPLoader fetches pages over HTTP and, when a cache TTL is configured,
// keeps them on disk for reuse.
type HTTPLoader struct {
	Client    *http.Client
	UserAgent string
	// UseCache enables the on-disk page cache
	UseCache bool
}

// New returns an HTTPLoader configured from the active configuration.
func New(client *http.Client) *HTTPLoader {
	ua := viper.GetString(key.FetchUserAgent)
	if ua == "" {
		ua = constant.UserAgent
	}

	return &HTTPLoader{
		Client:    client,
		UserAgent: ua,
		UseCache:  cache.Enabled(),
	}
}

// Fetch retrieves url and returns its body decoded to UTF-8.
func (l *HTTPLoader) Fetch(ctx context.Context, url string) ([]byte, error) {
	var cacheKey string
	if l.UseCache {
		cacheKey = cache.GenerateKey(url)
		if page, ok := cache.Read(cacheKey, cache.TTL()); ok {
			log.Debugf("loader: cache hit for %s", url)
			return page, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &RetrievalError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", l.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Warnf("loader: %s: %s", url, err)
		return nil, &RetrievalError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warnf("loader: %s: status %d", url, resp.StatusCode)
		return nil, &RetrievalError{URL: url, StatusCode: resp.StatusCode, Err: errors.New(resp.Status)}
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, &RetrievalError{URL: url, Err: err}
	}

	page, err := io.ReadAll(body)
	if err != nil {
		return nil, &RetrievalError{URL: url, Err: err}
	}

	if l.UseCache {
		if err := cache.Write(cacheKey, page); err != nil {
			log.Warnf("loader: cache %s: %s", url, err)
		}
	}

	return page, nil
}

// Load fetches url and parses it. Malformed markup is repaired by the parser, not rejected.
func (l *HTTPLoader) Load(ctx context.Context, url string) (*html.Node, error) {
	page, err := l.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := parse(page)
	if err != nil {
		return nil, &RetrievalError{URL: url, Err: err}
	}
	return doc, nil
}

var parse = Parse

// Parse builds a document from UTF-8 markup.
func Parse(page []byte) (*html.Node, error) {
	doc, err := htmlquery.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}
