package pftv

import (
	"strings"
	"testing"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

const showPage = `<html><body>
<h1 class="showtitle">
  The Big Bang Theory
</h1>
<div class="showimage"><img src=" http://img.example/tbbt.jpg "></div>
<div class="showplot"><p>Leonard and <i>Sheldon</i> are physicists.
</p></div>
<div class="trailers"><a href="http://youtube.com/watch?v=1">Trailer</a> <a href="http://youtube.com/watch?v=2">Teaser</a></div>
<span class="nextepisode">Airs: 04 May 2024<br>S07E22 - The Proton Transmogrification</span>
<table>
<tr><td class="mnlcategorylist"><a href="season_1.html"><b>Season 1</b></a> 12 Episodes, 34 Links</td></tr>
<tr><td class="mnlcategorylist"><a href="season_2.html"><b>Season 2</b></a> coming soon</td></tr>
</table>
</body></html>`

const episodePage = `<html><body><table>
<tr><td class="mnlbreadcrumbs"><a href="/internet/the_big_bang_theory/">The Big Bang Theory</a> &gt;&gt; Season 1</td></tr>
<tr><td class="episode"><b>1. Pilot</b></td><td class="airdate">S01E01 | Air Date: 24 Sep 2007</td></tr>
<tr><td class="description">Two physicists   meet Penny.</td></tr>
<tr><td class="mnllinklist"><a href="http://example.com/embed/1"><div class="linkname">Watch on example.com</div><div class="linkinfo">Loading Time: Fast Host: example.com Submitted by: admin</div><div class="linkworking">87% working</div></a></td></tr>
<tr><td class="mnllinklist"><a href="http://vidhost.net/e/2"><div class="linkname">Mirror</div><div class="linkinfo">no details</div><div class="linkworking">unknown</div></a></td></tr>
<tr><td class="none">No more links</td></tr>
<tr><td class="episode"><b>Sponsored</b></td></tr>
<tr><td class="mnllinklist"><a href="http://ads.example/"><div class="linkname">Ad</div></a></td></tr>
<tr><td class="episode"><b>Episode 2</b></td><td class="airdate">S01E02</td></tr>
<tr><td class="episode"><b>10.5. Special</b></td><td class="airdate">Air Date: 2008-01-01</td></tr>
<tr><td class="mnllinklist"><a href="http://example.com/embed/3"><div class="linkname">First</div></a></td></tr>
<tr><td>unrelated</td></tr>
<tr><td>unrelated</td></tr>
<tr><td class="mnllinklist"><a href="http://example.com/embed/4"><div class="linkname">Far away</div></a></td></tr>
</table></body></html>`

func parse(t *testing.T, page string) *html.Node {
	t.Helper()

	doc, err := htmlquery.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}
