package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/pftv-cli/pftv/icon"
	"github.com/pftv-cli/pftv/source"
	"github.com/pftv-cli/pftv/style"
	"github.com/pftv-cli/pftv/util"
	"github.com/samber/lo"
)

const labelWidth = 10

// wrap breaks s at width and indents every line by margin.
func wrap(s string, width int, margin uint) string {
	w := util.Max(width-int(margin), 20)
	return indent.String(wordwrap.String(s, w), margin)
}

func renderShow(out io.Writer, show *source.Show, width int) error {
	var b strings.Builder
	label := style.Label(labelWidth)

	b.WriteString(style.Heading(show.String()))
	b.WriteString("\n")

	if plot, ok := show.Plot.Get(); ok {
		b.WriteString(wrap(plot, width, 0))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if image, ok := show.ImageURL.Get(); ok {
		fmt.Fprintf(&b, "%s%s\n", label("Image"), style.Fg(style.LinkColor)(image))
	}

	for i, trailer := range show.Trailers {
		name := ""
		if i == 0 {
			name = "Trailers"
		}
		fmt.Fprintf(&b, "%s%s\n", label(name), style.Fg(style.LinkColor)(trailer))
	}

	if next, ok := show.NextEpisode.Get(); ok {
		var parts []string
		if code, ok := next.Code.Get(); ok {
			parts = append(parts, style.Fg(style.CodeColor)(code))
		}
		if name, ok := next.Name.Get(); ok {
			parts = append(parts, name)
		}
		if airDate, ok := next.AirDate.Get(); ok {
			parts = append(parts, style.Fg(style.DateColor)("("+airDate+")"))
		}
		fmt.Fprintf(&b, "%s%s %s\n", label("Next"), icon.Get(icon.Next), strings.Join(parts, " "))
	}

	if len(show.Categories) > 0 {
		b.WriteString("\n")
		b.WriteString(style.Heading("Categories"))
		b.WriteString("\n")

		idWidth := util.Max(lo.Map(show.Categories, func(c source.Category, _ int) int {
			return len(c.ID.OrEmpty())
		})...)

		for _, c := range show.Categories {
			fmt.Fprintf(&b, "  %-*s  %s  %s\n",
				idWidth, c.ID.OrEmpty(),
				style.Bold(c.Name.OrElse("?")),
				style.Faint(util.Quantify(c.EpisodeCount, "episode", "episodes")+", "+util.Quantify(c.LinkCount, "link", "links")),
			)
		}
	}

	_, err := io.WriteString(out, b.String())
	return err
}

func renderEpisodes(out io.Writer, list *source.EpisodeList, resolved map[string]string, width int) error {
	var b strings.Builder

	header := strings.Join(lo.Compact([]string{list.ShowName.OrEmpty(), list.SeasonLabel.OrEmpty()}), " · ")
	if header != "" {
		b.WriteString(style.Heading(header))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s\n\n", style.Faint(
		util.Quantify(len(list.Episodes), "episode", "episodes")+", "+util.Quantify(list.LinkCount(), "link", "links"),
	))

	for _, episode := range list.Episodes {
		b.WriteString(style.Bold(episode.String()))
		if code, ok := episode.Code.Get(); ok {
			b.WriteString("  " + style.Fg(style.CodeColor)(code))
		}
		if airDate, ok := episode.AirDate.Get(); ok {
			b.WriteString("  " + style.Fg(style.DateColor)(airDate))
		}
		b.WriteString("\n")

		if description, ok := episode.Description.Get(); ok {
			b.WriteString(style.Faint(wrap(description, width, 3)))
			b.WriteString("\n")
		}

		for _, link := range episode.Links {
			b.WriteString(renderLink(link, resolved))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(out, b.String())
	return err
}

func renderLink(link source.Link, resolved map[string]string) string {
	var b strings.Builder

	b.WriteString("   ")
	b.WriteString(icon.Get(icon.Link))
	b.WriteString(" ")
	b.WriteString(link.String())

	if pct, ok := link.WorkingPercent.Get(); ok {
		b.WriteString(" " + style.Faint(strconv.FormatFloat(pct, 'f', -1, 64)+"%"))
	}

	if embedded, ok := link.URL.Get(); ok {
		b.WriteString(" " + style.Fg(style.LinkColor)(embedded))

		if direct, ok := resolved[embedded]; ok {
			b.WriteString("\n     " + icon.Get(icon.Resolved) + " " + style.Fg(style.SuccessColor)(direct))
		}
	}

	b.WriteString("\n")
	return b.String()
}
