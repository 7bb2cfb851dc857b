package cmd

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/pftv-cli/pftv/filesystem"
	"github.com/pftv-cli/pftv/source"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestErrorMessage(t *testing.T) {
	Convey("errorMessage", t, func() {
		Convey("Missing shows get their own wording", func() {
			err := fmt.Errorf("show: %w", &source.NotFoundError{ShowID: "nope"})
			So(errorMessage(err), ShouldEqual, "no show with id nope")
		})

		Convey("Missing seasons name both ids", func() {
			err := &source.NotFoundError{ShowID: "the_expanse", CategoryID: "season_9.html"}
			So(errorMessage(err), ShouldEqual, "no season season_9.html for show the_expanse")
		})

		Convey("Other errors are trimmed", func() {
			So(errorMessage(errors.New(" boom\n")), ShouldEqual, "boom")
		})
	})
}

func TestWriteTo(t *testing.T) {
	Convey("Given an output file", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		var kept io.Writer
		failure := errors.New("season page unavailable")

		err := writeTo("/out/season.json", func(out io.Writer) error {
			kept = out
			_, _ = io.WriteString(out, "partial")
			return failure
		})

		Convey("The error is returned to the caller", func() {
			So(errors.Is(err, failure), ShouldBeTrue)
		})

		Convey("The file is closed before returning", func() {
			_, werr := io.WriteString(kept, "late")
			So(werr, ShouldNotBeNil)
			So(string(lo.Must(filesystem.API().ReadFile("/out/season.json"))), ShouldEqual, "partial")
		})
	})
}

func TestWithDeps(t *testing.T) {
	Convey("Errors from the command body are returned", t, func() {
		failure := errors.New("no show")
		var seen *deps

		err := withDeps(func(d *deps) error {
			seen = d
			return failure
		})

		So(err, ShouldEqual, failure)
		So(seen.site, ShouldNotBeNil)
		So(seen.registry, ShouldNotBeNil)
	})
}
