// Package icon renders status symbols in the variant chosen by the user.
package icon

import (
	"github.com/pftv-cli/pftv/key"
	"github.com/spf13/viper"
)

const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants returns every supported icons.variant value.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Link
	Resolved
	Lua
	Next
)

type iconDef struct {
	emoji, nerd, plain string
}

var icons = map[Icon]iconDef{
	Success:  {emoji: "✅", nerd: "", plain: "ok"},
	Fail:     {emoji: "❌", nerd: "", plain: "error:"},
	Progress: {emoji: "⏳", nerd: "", plain: "..."},
	Link:     {emoji: "🔗", nerd: "", plain: "-"},
	Resolved: {emoji: "▶️", nerd: "", plain: "->"},
	Lua:      {emoji: "🌙", nerd: "", plain: "lua"},
	Next:     {emoji: "📅", nerd: "", plain: "next:"},
}

func (d iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

// Get renders i in the configured variant. Unknown variants render nothing.
func Get(i Icon) string {
	return icons[i].get()
}
