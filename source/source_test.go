package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestShow(t *testing.T) {
	Convey("Show", t, func() {
		show := &Show{
			Title: mo.Some("The Big Bang Theory"),
			Categories: []Category{
				{ID: mo.Some("season_1.html"), Name: mo.Some("Season 1"), EpisodeCount: 17, LinkCount: 120},
				{ID: mo.Some("season_2.html"), EpisodeCount: 23},
			},
		}

		Convey("String", func() {
			So(show.String(), ShouldEqual, "The Big Bang Theory")
			So((&Show{}).String(), ShouldEqual, "untitled")
		})

		Convey("Category lookup", func() {
			c, ok := show.Category("season_2.html")
			So(ok, ShouldBeTrue)
			So(c.EpisodeCount, ShouldEqual, 23)
			So(c.String(), ShouldEqual, "season_2.html")

			_, ok = show.Category("season_9.html")
			So(ok, ShouldBeFalse)
		})

		Convey("Absent fields marshal as null", func() {
			data, err := json.Marshal(show)
			So(err, ShouldBeNil)

			var raw map[string]any
			So(json.Unmarshal(data, &raw), ShouldBeNil)
			So(raw["title"], ShouldEqual, "The Big Bang Theory")
			So(raw["plot"], ShouldBeNil)
			So(raw["next_episode"], ShouldBeNil)
		})
	})
}

func TestEpisode(t *testing.T) {
	Convey("Episode", t, func() {
		list := &EpisodeList{Episodes: []Episode{
			{Number: 1, Name: "Pilot", Links: []Link{{Host: mo.Some("vidhost.com")}, {URL: mo.Some("http://x")}}},
			{Number: 10.5, Name: "Special"},
		}}

		Convey("String keeps fractional numbers", func() {
			So(list.Episodes[0].String(), ShouldEqual, "1. Pilot")
			So(list.Episodes[1].String(), ShouldEqual, "10.5. Special")
		})

		Convey("LinkCount sums every episode", func() {
			So(list.LinkCount(), ShouldEqual, 2)
		})

		Convey("Link String prefers the host", func() {
			So(list.Episodes[0].Links[0].String(), ShouldEqual, "vidhost.com")
			So(list.Episodes[0].Links[1].String(), ShouldEqual, "http://x")
		})
	})
}

func TestNotFoundError(t *testing.T) {
	Convey("NotFoundError", t, func() {
		Convey("Show-only message", func() {
			err := &NotFoundError{ShowID: "nope"}
			So(err.Error(), ShouldEqual, `show "nope" not found`)
		})

		Convey("Season message", func() {
			err := &NotFoundError{ShowID: "nope", CategoryID: "season_1.html"}
			So(err.Error(), ShouldContainSubstring, "season_1.html")
		})

		Convey("Matches ErrNotFound through wrapping", func() {
			err := fmt.Errorf("lookup: %w", &NotFoundError{ShowID: "nope"})
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)

			var nf *NotFoundError
			So(errors.As(err, &nf), ShouldBeTrue)
			So(nf.ShowID, ShouldEqual, "nope")
		})
	})
}
