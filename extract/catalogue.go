package extract

import "fmt"

// Show page.
var (
	Title        = MustCompile(`//h1[@class='showtitle']`)
	PlotText     = MustCompile(`//div[@class='showplot']//text()`)
	ImageURL     = MustCompile(`//div[@class='showimage']//img/@src`)
	TrailerLinks = MustCompile(`//div[@class='trailers']//a/@href`)

	CategoryBlocks = MustCompile(`//td[@class='mnlcategorylist']`)
	// relative to a category block
	CategoryName = MustCompile(`./a/b`)
	CategoryID   = MustCompile(`./a/@href`)
	CategoryTail = MustCompile(`./text()[last()]`)

	NextEpisodeMarker = MustCompile(`//span[@class='nextepisode']`)
)

// MarkerText selects the nth (1-based) text child of the next-episode marker.
func MarkerText(n int) Query {
	return MustCompile(fmt.Sprintf(`./text()[%d]`, n))
}

// Episode page.
var (
	ShowName    = MustCompile(`//td[@class='mnlbreadcrumbs']/a`)
	SeasonLabel = MustCompile(`//td[@class='mnlbreadcrumbs']/text()[last()]`)
	EpisodeRows = MustCompile(`//tr[td[@class='episode']]`)
	LinkRows    = MustCompile(`//tr[td[@class='mnllinklist']]`)
	AllRows     = MustCompile(`//tr`)

	// relative to a link row
	LinkURL     = MustCompile(`.//a/@href`)
	LinkName    = MustCompile(`.//div[@class='linkname']`)
	LinkInfo    = MustCompile(`.//div[@class='linkinfo']`)
	LinkWorking = MustCompile(`.//div[@class='linkworking']`)
)

const episodeRow = `(//tr[td[@class='episode']])[%d]`

// EpisodeRow selects the ith (1-based) episode row.
func EpisodeRow(i int) Query {
	return MustCompile(fmt.Sprintf(episodeRow, i))
}

// EpisodeTitle selects the title cell of the ith episode row.
func EpisodeTitle(i int) Query {
	return MustCompile(fmt.Sprintf(episodeRow+`/td[@class='episode']`, i))
}

// EpisodeMeta selects the code and air date cell of the ith episode row.
func EpisodeMeta(i int) Query {
	return MustCompile(fmt.Sprintf(episodeRow+`/td[@class='airdate']`, i))
}

// EpisodeDescription selects the description cell, which only counts when it
// sits in the row immediately after the ith episode row.
func EpisodeDescription(i int) Query {
	return MustCompile(fmt.Sprintf(episodeRow+`/following-sibling::tr[1]/td[@class='description']`, i))
}
