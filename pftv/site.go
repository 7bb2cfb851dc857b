// Package pftv reads the show and season pages of the projectfreetv listings site.
package pftv

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/pftv-cli/pftv/constant"
	"github.com/pftv-cli/pftv/date"
	"github.com/pftv-cli/pftv/key"
	"github.com/pftv-cli/pftv/loader"
	"github.com/pftv-cli/pftv/log"
	"github.com/pftv-cli/pftv/source"
	"github.com/spf13/viper"
)

// ErrEmptyID is returned when a show or category identifier is blank.
var ErrEmptyID = errors.New("empty identifier")

// Site is the listings site as a source.Source.
type Site struct {
	BaseURL string
	TVPath  string
	Loader  loader.Loader
	Dates   *date.Normalizer
}

var _ source.Source = (*Site)(nil)

// New returns a Site configured from the active configuration.
func New(l loader.Loader) *Site {
	base := viper.GetString(key.SiteBaseURL)
	if base == "" {
		base = constant.BaseURL
	}

	tv := viper.GetString(key.SiteTVPath)
	if tv == "" {
		tv = constant.TVPath
	}

	return &Site{
		BaseURL: base,
		TVPath:  tv,
		Loader:  l,
		Dates:   date.New(viper.GetString(key.DateFormat)),
	}
}

func (s *Site) Name() string {
	return "projectfreetv"
}

// ShowURL returns the address of a show page, <base>/<tv path>/<show id>/.
func (s *Site) ShowURL(showID string) (string, error) {
	showID = strings.Trim(strings.TrimSpace(showID), "/")
	if showID == "" {
		return "", ErrEmptyID
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(s.BaseURL, "/"))
	b.WriteString("/")
	if tv := strings.Trim(s.TVPath, "/"); tv != "" {
		b.WriteString(tv)
		b.WriteString("/")
	}
	b.WriteString(url.PathEscape(showID))
	b.WriteString("/")

	return b.String(), nil
}

// CategoryURL resolves a category id, as found on the show page, against the show page address.
// Absolute ids are returned unchanged.
func (s *Site) CategoryURL(showID, categoryID string) (string, error) {
	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return "", ErrEmptyID
	}

	show, err := s.ShowURL(showID)
	if err != nil {
		return "", err
	}

	base, err := url.Parse(show)
	if err != nil {
		return "", err
	}

	ref, err := url.Parse(categoryID)
	if err != nil {
		return "", err
	}

	return base.ResolveReference(ref).String(), nil
}

// ShowInfo loads and extracts a show page.
func (s *Site) ShowInfo(ctx context.Context, showID string) (*source.Show, error) {
	address, err := s.ShowURL(showID)
	if err != nil {
		return nil, err
	}

	log.Infof("pftv: loading show %s", address)
	doc, err := s.Loader.Load(ctx, address)
	if err != nil {
		return nil, err
	}

	return ParseShow(doc, showID, s.Dates)
}

// EpisodeList loads and extracts one season page of a show.
func (s *Site) EpisodeList(ctx context.Context, showID, categoryID string) (*source.EpisodeList, error) {
	address, err := s.CategoryURL(showID, categoryID)
	if err != nil {
		return nil, err
	}

	log.Infof("pftv: loading season %s", address)
	doc, err := s.Loader.Load(ctx, address)
	if err != nil {
		return nil, err
	}

	return ParseEpisodeList(doc, showID, categoryID, s.Dates)
}
