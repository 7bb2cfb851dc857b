package style

import "github.com/pftv-cli/pftv/color"

// Roles map listing elements to colors.
var (
	HeadingColor = color.HiPurple
	LabelColor   = color.Gray
	CodeColor    = color.Cyan
	DateColor    = color.Yellow
	LinkColor    = color.Blue
	SuccessColor = color.Green
	FailColor    = color.Red
)
