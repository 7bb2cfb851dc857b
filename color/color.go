// Package color names the terminal colors used by the CLI.
package color

import "github.com/charmbracelet/lipgloss"

// ANSI colors, so output follows the user's terminal theme.
const (
	Red    lipgloss.Color = "1"
	Green  lipgloss.Color = "2"
	Yellow lipgloss.Color = "3"
	Blue   lipgloss.Color = "4"
	Purple lipgloss.Color = "5"
	Cyan   lipgloss.Color = "6"

	HiRed    lipgloss.Color = "9"
	HiBlue   lipgloss.Color = "12"
	HiPurple lipgloss.Color = "13"
	HiCyan   lipgloss.Color = "14"
)

const Gray lipgloss.Color = "#808080"
