package source

import "github.com/samber/mo"

// Link is one hosted copy of an episode.
type Link struct {
	// URL is the embedded player page, handed to a host resolver.
	URL         mo.Option[string] `json:"url"`
	Name        mo.Option[string] `json:"name"`
	Host        mo.Option[string] `json:"host"`
	LoadingTime mo.Option[string] `json:"loading_time"`
	Submitter   mo.Option[string] `json:"submitter"`
	// WorkingPercent is in the range 0-100.
	WorkingPercent mo.Option[float64] `json:"working_percent"`
}

// String returns the host or, failing that, the URL for display.
func (l Link) String() string {
	if host, ok := l.Host.Get(); ok {
		return host
	}
	return l.URL.OrEmpty()
}
