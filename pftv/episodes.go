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

const seasonSeparator = ">>"

// ParseEpisodeList extracts a season page. Rows that look like episodes but
// carry no usable number or name are dropped. The page is considered missing
// only when no episode survives and both the show name and season label are empty.
func ParseEpisodeList(doc *html.Node, showID, categoryID string, dates *date.Normalizer) (*source.EpisodeList, error) {
	if dates == nil {
		dates = date.New(date.DefaultFormat)
	}

	label := strings.ReplaceAll(extract.Normalize(extract.String(doc, extract.SeasonLabel)), seasonSeparator, "")

	list := &source.EpisodeList{
		ShowName:    nonEmpty(extract.Normalize(extract.String(doc, extract.ShowName))),
		SeasonLabel: nonEmpty(label),
		Episodes:    make([]source.Episode, 0),
	}

	rows := indexRows(doc)
	total := extract.Count(doc, extract.EpisodeRows)

	for i := 1; i <= total; i++ {
		episode, ok := parseEpisode(doc, i, rows, dates)
		if !ok {
			continue
		}
		list.Episodes = append(list.Episodes, episode)
	}

	if len(list.Episodes) == 0 && list.ShowName.IsAbsent() && list.SeasonLabel.IsAbsent() {
		return nil, &source.NotFoundError{ShowID: showID, CategoryID: categoryID}
	}

	log.WithFields(log.Fields{
		"show":     showID,
		"category": categoryID,
		"rows":     total,
		"episodes": len(list.Episodes),
	}).Debug("parsed episode page")

	return list, nil
}

func parseEpisode(doc *html.Node, i int, rows rowIndex, dates *date.Normalizer) (source.Episode, bool) {
	title := extract.Text(extract.Node(doc, extract.EpisodeTitle(i)))

	number, name := recoverName(title)
	n, ok := number.Get()
	if !ok || n == 0 || name == "" {
		log.Debugf("pftv: dropping episode row %d %q", i, title)
		return source.Episode{}, false
	}

	meta := util.ReGroups(metaPattern, extract.Text(extract.Node(doc, extract.EpisodeMeta(i))))

	airDate := mo.None[string]()
	if fragment, ok := group(meta, "date").Get(); ok {
		airDate = dates.Normalize(fragment)
	}

	links := lo.Map(rows.linkWindow(i), func(row *html.Node, _ int) source.Link {
		return parseLink(row)
	})

	return source.Episode{
		Number:      n,
		Name:        name,
		Code:        group(meta, "code"),
		AirDate:     airDate,
		Description: nonEmpty(extract.Text(extract.Node(doc, extract.EpisodeDescription(i)))),
		Links:       links,
	}, true
}

func parseLink(row *html.Node) source.Link {
	info := util.ReGroups(linkInfoPattern, extract.Text(extract.Node(row, extract.LinkInfo)))

	return source.Link{
		URL:            nonEmpty(extract.String(row, extract.LinkURL)),
		Name:           nonEmpty(extract.Text(extract.Node(row, extract.LinkName))),
		Host:           group(info, "host"),
		LoadingTime:    group(info, "loading"),
		Submitter:      group(info, "submitter"),
		WorkingPercent: percent(extract.Text(extract.Node(row, extract.LinkWorking))),
	}
}

// rowIndex records the document position of every table row so link rows can
// be assigned to the episode row they follow.
type rowIndex struct {
	position map[*html.Node]int
	episodes []*html.Node
	links    []*html.Node
	// end is past the last row and bounds the window of the last episode
	end int
}

func indexRows(doc *html.Node) rowIndex {
	all := extract.Nodes(doc, extract.AllRows)

	position := make(map[*html.Node]int, len(all))
	for i, row := range all {
		position[row] = i
	}

	return rowIndex{
		position: position,
		episodes: extract.Nodes(doc, extract.EpisodeRows),
		links:    extract.Nodes(doc, extract.LinkRows),
		end:      len(all),
	}
}

// linkWindow returns the link rows strictly between episode row i and episode
// row i+1 (1-based). Rows of any other kind in between are skipped.
func (r rowIndex) linkWindow(i int) []*html.Node {
	if i < 1 || i > len(r.episodes) {
		return nil
	}

	start := r.position[r.episodes[i-1]]
	stop := r.end
	if i < len(r.episodes) {
		stop = r.position[r.episodes[i]]
	}

	return lo.Filter(r.links, func(row *html.Node, _ int) bool {
		p := r.position[row]
		return p > start && p < stop
	})
}
