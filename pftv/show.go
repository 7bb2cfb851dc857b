package pftv

import (
	"strings"

	"github.com/pftv-cli/pftv/date"
	"github.com/pftv-cli/pftv/extract"
	"github.com/pftv-cli/pftv/log"
	"github.com/pftv-cli/pftv/source"
	"github.com/pftv-cli/pftv/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/net/html"
)

// ParseShow extracts a show page. Each field is recovered independently and a
// field that cannot be read is left empty. The page is considered missing only
// when it has neither a title nor any category.
func ParseShow(doc *html.Node, showID string, dates *date.Normalizer) (*source.Show, error) {
	if dates == nil {
		dates = date.New(date.DefaultFormat)
	}

	show := &source.Show{
		Title:       nonEmpty(extract.Normalize(extract.String(doc, extract.Title))),
		Plot:        nonEmpty(strings.Join(extract.Strings(doc, extract.PlotText), "")),
		ImageURL:    nonEmpty(extract.String(doc, extract.ImageURL)),
		Trailers:    trailers(doc),
		NextEpisode: nextEpisode(doc, dates),
		Categories:  categories(doc),
	}

	if show.Title.IsAbsent() && len(show.Categories) == 0 {
		return nil, &source.NotFoundError{ShowID: showID}
	}

	log.WithFields(log.Fields{
		"show":       showID,
		"categories": len(show.Categories),
	}).Debug("parsed show page")

	return show, nil
}

func trailers(doc *html.Node) []string {
	return lo.FilterMap(extract.Strings(doc, extract.TrailerLinks), func(href string, _ int) (string, bool) {
		href = strings.TrimSpace(href)
		return href, href != ""
	})
}

func categories(doc *html.Node) []source.Category {
	blocks := extract.Nodes(doc, extract.CategoryBlocks)
	out := make([]source.Category, 0, len(blocks))

	for _, block := range blocks {
		tail := extract.String(block, extract.CategoryTail)

		out = append(out, source.Category{
			ID:           nonEmpty(extract.String(block, extract.CategoryID)),
			Name:         nonEmpty(extract.Normalize(extract.String(block, extract.CategoryName))),
			EpisodeCount: count(episodeCountPattern, tail),
			LinkCount:    count(linkCountPattern, tail),
		})
	}

	return out
}

func nextEpisode(doc *html.Node, dates *date.Normalizer) mo.Option[source.NextEpisode] {
	marker := extract.Node(doc, extract.NextEpisodeMarker)
	if marker == nil || strings.EqualFold(extract.Text(marker), "finished") {
		return mo.None[source.NextEpisode]()
	}

	var next source.NextEpisode

	first := strings.TrimSpace(extract.String(marker, extract.MarkerText(1)))
	if fragment, ok := util.ReGroups(markerDatePattern, first)["date"]; ok {
		next.AirDate = dates.Normalize(fragment)
	} else {
		log.Debugf("pftv: no air date in next episode marker %q", first)
	}

	second := strings.TrimSpace(extract.String(marker, extract.MarkerText(2)))
	groups := util.ReGroups(markerEpisodePattern, second)
	next.Code = group(groups, "code")
	next.Name = group(groups, "name")

	return mo.Some(next)
}
