package pftv

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pftv-cli/pftv/util"
	"github.com/samber/mo"
)

var (
	// Category tails read "<n> Episodes ... <m> Links". Each count is matched on
	// its own so a tail missing one of them still yields the other.
	episodeCountPattern = regexp.MustCompile(`(?i)(\d+)\s*episodes?\b`)
	linkCountPattern    = regexp.MustCompile(`(?i)(\d+)\s*links?\b`)

	// "Airs: 04 May 2024", everything after the first colon
	markerDatePattern = regexp.MustCompile(`^[^:]*:\s*(?P<date>.+)$`)
	// "S07E22 - The Proton Transmogrification"
	markerEpisodePattern = regexp.MustCompile(`^(?P<code>\S+)\s+-\s+(?P<name>.+)$`)

	// "S01E01 | Air Date: 24 Sep 2007", either half optional. The code is the
	// leading alphanumeric token and holds at least one digit, so a bare
	// "Air Date" label is not mistaken for one.
	metaPattern = regexp.MustCompile(`(?i)^\s*(?:(?P<code>[a-z]*\d[a-z0-9.]*)\b)?[^:]*?(?::\s*(?P<date>.*?))?\s*$`)

	linkInfoPattern = regexp.MustCompile(`(?i)loading time:\s*(?P<loading>.*?)\s*host:\s*(?P<host>\S+)(?:\s*submitted by:\s*(?P<submitter>.+))?`)
	workingPattern  = regexp.MustCompile(`(?P<percent>\d+)\s*%`)
)

// nameStrategy recovers an episode number and name from the title cell. The
// site has shipped more than one row format, so strategies are tried in order.
type nameStrategy struct {
	pattern *regexp.Regexp
	// wholeName keeps the full cell text as the name and only captures the number
	wholeName bool
}

var nameStrategies = []nameStrategy{
	// "1. Pilot", "10.5. Special"
	{pattern: regexp.MustCompile(`^(?P<number>\d+(?:\.\d+)?)\.\s+(?P<name>.+)$`)},
	// "Episode 12"
	{pattern: regexp.MustCompile(`(?i)\bepisode\s+(?P<number>\d+(?:\.\d+)?)\b`), wholeName: true},
}

// recoverName returns the first strategy's result. When none matches the number
// is absent and the whole text is the name.
func recoverName(text string) (number mo.Option[float64], name string) {
	for _, s := range nameStrategies {
		groups := util.ReGroups(s.pattern, text)
		raw, ok := groups["number"]
		if !ok {
			continue
		}

		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}

		if s.wholeName {
			return mo.Some(n), text
		}
		return mo.Some(n), strings.TrimSpace(groups["name"])
	}

	return mo.None[float64](), text
}

// group returns a named capture, trimmed, or None when it did not participate or is blank.
func group(groups map[string]string, name string) mo.Option[string] {
	return nonEmpty(groups[name])
}

// nonEmpty trims s and treats the empty and whitespace-only string as absent.
func nonEmpty(s string) mo.Option[string] {
	return mo.EmptyableToOption(strings.TrimSpace(s))
}

// count returns the first integer captured by pattern, or 0.
func count(pattern *regexp.Regexp, text string) int {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func percent(text string) mo.Option[float64] {
	raw, ok := util.ReGroups(workingPattern, text)["percent"]
	if !ok {
		return mo.None[float64]()
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return mo.None[float64]()
	}
	return mo.Some(n)
}
