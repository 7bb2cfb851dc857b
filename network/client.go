// Package network builds the HTTP client used to fetch listing and player pages.
package network

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pftv-cli/pftv/key"
	"github.com/pftv-cli/pftv/log"
	"github.com/spf13/viper"
)

// Options tune a client. Zero values fall back to configuration.
type Options struct {
	Timeout      time.Duration
	MaxRedirects int
	Retries      int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	Impersonate  bool
}

// FromConfig reads client options from the active configuration.
func FromConfig() Options {
	return Options{
		Timeout:      time.Duration(viper.GetInt(key.FetchTimeout)) * time.Second,
		MaxRedirects: viper.GetInt(key.FetchMaxRedirects),
		Retries:      viper.GetInt(key.FetchRetries),
		RetryWaitMin: 500 * time.Millisecond,
		RetryWaitMax: 5 * time.Second,
		Impersonate:  viper.GetBool(key.FetchImpersonateBrowser),
	}
}

// NewClient returns a client that retries transient failures, caps redirects
// and gives up after the configured timeout. Once retries are exhausted the
// last response is handed back as is so callers can inspect its status.
func NewClient(opts Options) *http.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = max(opts.Retries, 0)
	if opts.RetryWaitMin > 0 {
		rc.RetryWaitMin = opts.RetryWaitMin
	}
	if opts.RetryWaitMax > 0 {
		rc.RetryWaitMax = opts.RetryWaitMax
	}
	rc.Logger = leveledLogger{}
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	rc.HTTPClient.Transport = newTransport()
	if opts.Impersonate {
		rc.HTTPClient.Transport = newFingerprintTransport(opts.Timeout)
	}
	rc.HTTPClient.CheckRedirect = checkRedirect(opts.MaxRedirects)

	client := rc.StandardClient()
	client.Timeout = opts.Timeout
	return client
}

// Default returns a client configured from the active configuration.
func Default() *http.Client {
	return NewClient(FromConfig())
}

// The message matches what retryablehttp treats as a permanent redirect failure.
func checkRedirect(limit int) func(*http.Request, []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if len(via) > limit {
			return fmt.Errorf("stopped after %d redirects", limit)
		}
		return nil
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 20
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}

// leveledLogger routes retryablehttp diagnostics into the application log.
type leveledLogger struct{}

func (leveledLogger) entry(keysAndValues []any) *log.Entry {
	fields := make(log.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return log.WithFields(fields)
}

func (l leveledLogger) Error(msg string, keysAndValues ...any) { l.entry(keysAndValues).Error(msg) }
func (l leveledLogger) Warn(msg string, keysAndValues ...any)  { l.entry(keysAndValues).Warn(msg) }
func (l leveledLogger) Info(msg string, keysAndValues ...any)  { l.entry(keysAndValues).Debug(msg) }
func (l leveledLogger) Debug(msg string, keysAndValues ...any) { l.entry(keysAndValues).Debug(msg) }
