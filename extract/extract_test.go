package extract

import (
	"strings"
	"testing"

	"github.com/antchfx/htmlquery"
	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/net/html"
)

const page = `<html><body>
<h1 class="showtitle">  The   Big Bang
 Theory </h1>
<div class="trailers"><a href="http://t/1">one</a><a href="http://t/2">two</a></div>
<table>
<tr><td class="episode"><b>1. Pilot</b></td><td class="airdate">S01E01 | Air Date: 24 Sep 2007</td></tr>
<tr><td class="description">Two physicists.</td></tr>
<tr><td class="episode"><b>2. The Big Bran Hypothesis</b></td><td class="airdate">S01E02</td></tr>
<tr><td class="mnllinklist"><a href="http://host/x"><div class="linkname">Watch</div></a></td></tr>
</table>
</body></html>`

func parse(t *testing.T) *html.Node {
	doc, err := htmlquery.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestQueries(t *testing.T) {
	doc := parse(t)

	Convey("Compile", t, func() {
		_, err := Compile(`//tr[`)
		So(err, ShouldNotBeNil)
		So(func() { MustCompile(`//tr[`) }, ShouldPanic)
		So(MustCompile(`//tr`).String(), ShouldEqual, `//tr`)
	})

	Convey("String returns raw text of the first match", t, func() {
		So(String(doc, Title), ShouldContainSubstring, "The   Big Bang")
		So(Normalize(String(doc, Title)), ShouldEqual, "The Big Bang Theory")
	})

	Convey("Attribute matches yield their value", t, func() {
		So(Strings(doc, TrailerLinks), ShouldResemble, []string{"http://t/1", "http://t/2"})
	})

	Convey("Absent matches are empty, not errors", t, func() {
		So(String(doc, ImageURL), ShouldBeEmpty)
		So(Strings(doc, CategoryBlocks), ShouldBeEmpty)
		So(Node(doc, NextEpisodeMarker), ShouldBeNil)
		So(Count(doc, LinkRows), ShouldEqual, 1)
		So(String(nil, Title), ShouldBeEmpty)
	})

	Convey("Ordinal queries", t, func() {
		So(Count(doc, EpisodeRows), ShouldEqual, 2)
		So(Text(Node(doc, EpisodeTitle(2))), ShouldEqual, "2. The Big Bran Hypothesis")
		So(Text(Node(doc, EpisodeMeta(1))), ShouldEqual, "S01E01 | Air Date: 24 Sep 2007")
		So(Text(Node(doc, EpisodeDescription(1))), ShouldEqual, "Two physicists.")
		So(Node(doc, EpisodeDescription(2)), ShouldBeNil)
		So(Node(doc, EpisodeRow(3)), ShouldBeNil)
	})

	Convey("Relative queries", t, func() {
		row := Node(doc, LinkRows)
		So(String(row, LinkURL), ShouldEqual, "http://host/x")
		So(Text(Node(row, LinkName)), ShouldEqual, "Watch")
		So(Nodes(doc, AllRows), ShouldHaveLength, 4)
	})
}

func TestNormalize(t *testing.T) {
	Convey("Normalize", t, func() {
		So(Normalize("  a \n\t b c  "), ShouldEqual, "a b c")
		So(Normalize(" \n "), ShouldBeEmpty)
	})
}
