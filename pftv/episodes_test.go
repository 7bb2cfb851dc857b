package pftv

import (
	"errors"
	"testing"

	"github.com/pftv-cli/pftv/source"
	"github.com/pftv-cli/pftv/util"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func urls(links []source.Link) []string {
	return lo.Map(links, func(l source.Link, _ int) string { return l.URL.OrEmpty() })
}

func TestParseEpisodeList(t *testing.T) {
	Convey("Given a season page", t, func() {
		list, err := ParseEpisodeList(parse(t, episodePage), "the_big_bang_theory", "season_1.html", nil)
		So(err, ShouldBeNil)

		Convey("Then the header is read", func() {
			So(list.ShowName.MustGet(), ShouldEqual, "The Big Bang Theory")
			So(list.SeasonLabel.MustGet(), ShouldEqual, "Season 1")
		})

		Convey("Then rows without a number are dropped", func() {
			So(list.Episodes, ShouldHaveLength, 3)
			So(list.Episodes[0].String(), ShouldEqual, "1. Pilot")
			So(list.Episodes[2].String(), ShouldEqual, "10.5. Special")
		})

		Convey("Then a numbered row splits into number and name", func() {
			ep := list.Episodes[0]
			So(ep.Number, ShouldEqual, 1)
			So(ep.Name, ShouldEqual, "Pilot")
			So(ep.Code.MustGet(), ShouldEqual, "S01E01")
			So(ep.AirDate.MustGet(), ShouldEqual, "24/09/2007")
			So(ep.Description.MustGet(), ShouldEqual, "Two physicists meet Penny.")
		})

		Convey("Then an 'Episode N' row keeps its whole text as the name", func() {
			ep := list.Episodes[1]
			So(ep.Number, ShouldEqual, 2)
			So(ep.Name, ShouldEqual, "Episode 2")
			So(ep.Code.MustGet(), ShouldEqual, "S01E02")
			So(ep.AirDate.IsAbsent(), ShouldBeTrue)
			So(ep.Description.IsAbsent(), ShouldBeTrue)
			So(ep.Links, ShouldBeEmpty)
		})

		Convey("Then a code is optional", func() {
			ep := list.Episodes[2]
			So(ep.Code.IsAbsent(), ShouldBeTrue)
			So(ep.AirDate.MustGet(), ShouldEqual, "01/01/2008")
		})

		Convey("Then links stop at the next episode row", func() {
			So(urls(list.Episodes[0].Links), ShouldResemble, []string{
				"http://example.com/embed/1",
				"http://vidhost.net/e/2",
			})
		})

		Convey("Then the last episode takes every trailing link row", func() {
			So(urls(list.Episodes[2].Links), ShouldResemble, []string{
				"http://example.com/embed/3",
				"http://example.com/embed/4",
			})
		})

		Convey("Then link annotations are parsed", func() {
			link := list.Episodes[0].Links[0]
			So(link.Name.MustGet(), ShouldEqual, "Watch on example.com")
			So(link.LoadingTime.MustGet(), ShouldEqual, "Fast")
			So(link.Host.MustGet(), ShouldEqual, "example.com")
			So(link.Submitter.MustGet(), ShouldEqual, "admin")
			So(link.WorkingPercent.MustGet(), ShouldEqual, 87.0)
		})

		Convey("Then unparseable annotations are absent", func() {
			link := list.Episodes[0].Links[1]
			So(link.Name.MustGet(), ShouldEqual, "Mirror")
			So(link.Host.IsAbsent(), ShouldBeTrue)
			So(link.LoadingTime.IsAbsent(), ShouldBeTrue)
			So(link.Submitter.IsAbsent(), ShouldBeTrue)
			So(link.WorkingPercent.IsAbsent(), ShouldBeTrue)
		})

		Convey("Then link totals add up", func() {
			So(list.LinkCount(), ShouldEqual, 4)
		})
	})

	Convey("Given placeholder rows around link rows", t, func() {
		page := `<html><body><table>
<tr><td class="episode"><b>1. First</b></td></tr>
<tr><td class="mnllinklist"><a href="http://h/1">one</a></td></tr>
<tr><td class="none">none</td></tr>
<tr><td class="mnllinklist"><a href="http://h/2">two</a></td></tr>
<tr><td class="none">none</td></tr>
<tr><td class="episode"><b>2. Second</b></td></tr>
<tr><td class="none">none</td></tr>
</table></body></html>`

		list, err := ParseEpisodeList(parse(t, page), "show", "season", nil)
		So(err, ShouldBeNil)
		So(list.Episodes, ShouldHaveLength, 2)

		Convey("Then every link row strictly between two episodes is kept and placeholders are not", func() {
			So(urls(list.Episodes[0].Links), ShouldResemble, []string{"http://h/1", "http://h/2"})
			So(list.Episodes[1].Links, ShouldBeEmpty)
		})

		Convey("Then an empty header is absent", func() {
			So(list.ShowName.IsAbsent(), ShouldBeTrue)
			So(list.SeasonLabel.IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given rows that only look like episodes", t, func() {
		page := `<html><body><table>
<tr><td class="mnlbreadcrumbs"><a href="/">Lost</a> &gt;&gt; Season 9</td></tr>
<tr><td class="episode"><b>0. Preview</b></td></tr>
<tr><td class="episode"><b>Coming soon</b></td></tr>
<tr><td class="episode"><b></b></td></tr>
</table></body></html>`

		list, err := ParseEpisodeList(parse(t, page), "lost", "season_9.html", nil)
		So(err, ShouldBeNil)
		So(list.Episodes, ShouldNotBeNil)
		So(list.Episodes, ShouldBeEmpty)
		So(list.SeasonLabel.MustGet(), ShouldEqual, "Season 9")
	})

	Convey("Given a page with no episodes and no header", t, func() {
		_, err := ParseEpisodeList(parse(t, `<html><body><p>gone</p></body></html>`), "lost", "season_9.html", nil)

		So(errors.Is(err, source.ErrNotFound), ShouldBeTrue)
		var nf *source.NotFoundError
		So(errors.As(err, &nf), ShouldBeTrue)
		So(nf.ShowID, ShouldEqual, "lost")
		So(nf.CategoryID, ShouldEqual, "season_9.html")
	})
}

func TestRecoverName(t *testing.T) {
	Convey("Name strategies are tried in order", t, func() {
		n, name := recoverName("3. The Fuzzy Boots Corollary")
		So(n.MustGet(), ShouldEqual, 3)
		So(name, ShouldEqual, "The Fuzzy Boots Corollary")

		n, name = recoverName("Season Finale - Episode 24")
		So(n.MustGet(), ShouldEqual, 24)
		So(name, ShouldEqual, "Season Finale - Episode 24")

		n, name = recoverName("Bonus clip")
		So(n.IsAbsent(), ShouldBeTrue)
		So(name, ShouldEqual, "Bonus clip")
	})
}

func TestPatterns(t *testing.T) {
	Convey("Counts default to zero", t, func() {
		So(count(episodeCountPattern, "12 Episodes, 34 Links"), ShouldEqual, 12)
		So(count(linkCountPattern, "12 Episodes, 34 Links"), ShouldEqual, 34)
		So(count(linkCountPattern, "nothing"), ShouldEqual, 0)
	})

	Convey("Episode codes are the leading alphanumeric token", t, func() {
		cases := []struct {
			text, code, date string
		}{
			{"S01E01 | Air Date: 24 Sep 2007", "S01E01", "24 Sep 2007"},
			{"1x01", "1x01", ""},
			{"E05 : 24 Sep 2007", "E05", "24 Sep 2007"},
			{"101 Air Date: 24 Sep 2007", "101", "24 Sep 2007"},
			{"Special01", "Special01", ""},
			{"Air Date: 2008-01-01", "", "2008-01-01"},
		}

		for _, c := range cases {
			groups := util.ReGroups(metaPattern, c.text)
			So(groups["code"], ShouldEqual, c.code)
			So(groups["date"], ShouldEqual, c.date)
		}
	})

	Convey("Working percentage", t, func() {
		So(percent("87% working").MustGet(), ShouldEqual, 87.0)
		So(percent("working").IsAbsent(), ShouldBeTrue)
	})
}
