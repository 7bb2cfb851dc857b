// Package style composes lipgloss styles into plain string renderers.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer that applies a foreground color.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Heading renders section and record titles.
func Heading(s string) string {
	return New().Bold(true).Foreground(HeadingColor).Render(s)
}

// Label renders a left column field name padded to width.
func Label(width int) func(string) string {
	return func(s string) string {
		return New().Foreground(LabelColor).Width(width).Render(s)
	}
}
