// Package date turns the loosely formatted date fragments found on listing
// pages into a single configured representation.
package date

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pftv-cli/pftv/log"
	"github.com/samber/mo"
)

// DefaultFormat renders day, month and four-digit year separated by slashes.
const DefaultFormat = "DD/MM/YYYY"

var tokens = map[string]string{
	"YYYY": "2006",
	"YY":   "06",
	"MMMM": "January",
	"MMM":  "Jan",
	"MM":   "01",
	"M":    "1",
	"DD":   "02",
	"D":    "2",
	"dddd": "Monday",
	"ddd":  "Mon",
}

// longest tokens first, alternation is leftmost-first
var tokenRegex = regexp.MustCompile(`YYYY|YY|MMMM|MMM|MM|M|DD|D|dddd|ddd`)

// Layout translates a token format such as "DD MMM YYYY" into a Go time layout.
// Characters that are not tokens are copied as is.
func Layout(format string) string {
	return tokenRegex.ReplaceAllStringFunc(format, func(token string) string {
		return tokens[token]
	})
}

// monthFirst reports whether the first numeric month token comes before the
// first numeric day token, as in "MM/DD/YYYY".
func monthFirst(format string) bool {
	month, day := -1, -1
	for i, token := range tokenRegex.FindAllString(format, -1) {
		switch token {
		case "MM", "M":
			if month < 0 {
				month = i
			}
		case "DD", "D":
			if day < 0 {
				day = i
			}
		}
	}
	return month >= 0 && day >= 0 && month < day
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

// Normalizer re-renders parsed dates in one layout. It holds no mutable state.
type Normalizer struct {
	format     string
	layout     string
	monthFirst bool
}

// New returns a Normalizer for the given token format, falling back to DefaultFormat when empty.
func New(format string) *Normalizer {
	format = strings.TrimSpace(format)
	if format == "" {
		format = DefaultFormat
	}

	return &Normalizer{format: format, layout: Layout(format), monthFirst: monthFirst(format)}
}

// Format returns the token format this normalizer renders.
func (n *Normalizer) Format() string {
	return n.format
}

// Normalize parses fragment and renders it in the configured format. Fragments
// already in that format are read with it, so output fed back in is unchanged.
// Anything else is parsed permissively, reading ambiguous numeric dates in the
// format's day and month order. Bare numbers and unrecognizable text yield None.
func (n *Normalizer) Normalize(fragment string) mo.Option[string] {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return mo.None[string]()
	}

	if t, err := time.Parse(n.layout, fragment); err == nil {
		return mo.Some(t.Format(n.layout))
	}

	if digitsOnly.MatchString(fragment) {
		log.Debugf("date: %q is a number, not a date", fragment)
		return mo.None[string]()
	}

	t, err := dateparse.ParseAny(fragment, dateparse.PreferMonthFirst(n.monthFirst))
	if err != nil {
		log.Debugf("date: cannot parse %q: %s", fragment, err)
		return mo.None[string]()
	}

	return mo.Some(t.Format(n.layout))
}
