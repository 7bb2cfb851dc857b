package source

import (
	"strconv"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// EpisodeList is the content of one season page.
type EpisodeList struct {
	ShowName    mo.Option[string] `json:"show_name"`
	SeasonLabel mo.Option[string] `json:"season_label"`
	Episodes    []Episode         `json:"episodes"`
}

// Episode is one episode row together with the link rows that follow it.
type Episode struct {
	// Number is kept as a real number; the site lists specials as e.g. 10.5.
	Number      float64           `json:"number"`
	Name        string            `json:"name"`
	Code        mo.Option[string] `json:"code"`
	AirDate     mo.Option[string] `json:"air_date"`
	Description mo.Option[string] `json:"description"`
	Links       []Link            `json:"links"`
}

// String returns the numbered display name of the episode.
func (e Episode) String() string {
	return strconv.FormatFloat(e.Number, 'f', -1, 64) + ". " + e.Name
}

// LinkCount returns the total number of links across every episode.
func (l *EpisodeList) LinkCount() int {
	return lo.SumBy(l.Episodes, func(e Episode) int { return len(e.Links) })
}
