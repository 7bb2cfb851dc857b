package date

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLayout(t *testing.T) {
	Convey("Given token formats", t, func() {
		So(Layout("DD/MM/YYYY"), ShouldEqual, "02/01/2006")
		So(Layout("D MMMM YY"), ShouldEqual, "2 January 06")
		So(Layout("dddd, DD MMM YYYY"), ShouldEqual, "Monday, 02 Jan 2006")
		So(Layout("YYYY-M-D"), ShouldEqual, "2006-1-2")
	})
}

func TestNormalize(t *testing.T) {
	Convey("Given the default normalizer", t, func() {
		n := New("")
		So(n.Format(), ShouldEqual, DefaultFormat)

		Convey("When the fragment is a textual date", func() {
			So(n.Normalize("04 May 2024").MustGet(), ShouldEqual, "04/05/2024")
			So(n.Normalize(" May 4, 2024 ").MustGet(), ShouldEqual, "04/05/2024")
			So(n.Normalize("2013-09-26").MustGet(), ShouldEqual, "26/09/2013")
		})

		Convey("When the fragment is not a date", func() {
			So(n.Normalize("no date here").IsAbsent(), ShouldBeTrue)
			So(n.Normalize("").IsAbsent(), ShouldBeTrue)
			So(n.Normalize("   ").IsAbsent(), ShouldBeTrue)
		})

		Convey("Then its own output is stable", func() {
			once := n.Normalize("26 Sep 2013").MustGet()
			So(n.Normalize(once).MustGet(), ShouldEqual, once)
		})
	})

	Convey("Given a textual month format", t, func() {
		n := New("DD MMM YYYY")

		Convey("Then output is stable", func() {
			once := n.Normalize("2024-05-04").MustGet()
			So(once, ShouldEqual, "04 May 2024")
			So(n.Normalize(once).MustGet(), ShouldEqual, once)
		})
	})

	Convey("Given formats in other orders", t, func() {
		Convey("Month-first output keeps its calendar date", func() {
			n := New("MM/DD/YYYY")
			once := n.Normalize("04 May 2024").MustGet()
			So(once, ShouldEqual, "05/04/2024")
			So(n.Normalize(once).MustGet(), ShouldEqual, once)
			So(n.Normalize("12/31/2023").MustGet(), ShouldEqual, "12/31/2023")
		})

		Convey("Two-digit years read back", func() {
			n := New("YY-MM-DD")
			once := n.Normalize("04 May 2024").MustGet()
			So(once, ShouldEqual, "24-05-04")
			So(n.Normalize(once).MustGet(), ShouldEqual, once)
		})

		Convey("Every supported shape is stable", func() {
			for _, format := range []string{"DD/MM/YYYY", "MM/DD/YYYY", "YY-MM-DD", "D MMMM YY", "dddd, DD MMM YYYY", "M/D/YY"} {
				n := New(format)
				once := n.Normalize("2024-05-04").MustGet()
				So(n.Normalize(once).MustGet(), ShouldEqual, once)
			}
		})
	})

	Convey("Given bare numbers", t, func() {
		n := New("")

		So(n.Normalize("2024").IsAbsent(), ShouldBeTrue)
		So(n.Normalize("1332151919").IsAbsent(), ShouldBeTrue)
	})
}

func TestMonthFirst(t *testing.T) {
	Convey("Day and month order follows the format", t, func() {
		So(monthFirst("DD/MM/YYYY"), ShouldBeFalse)
		So(monthFirst("MM/DD/YYYY"), ShouldBeTrue)
		So(monthFirst("YYYY-M-D"), ShouldBeTrue)
		So(monthFirst("D MMMM YY"), ShouldBeFalse)
	})
}
