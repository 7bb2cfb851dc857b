package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/pftv-cli/pftv/color"
	"github.com/pftv-cli/pftv/constant"
	"github.com/pftv-cli/pftv/key"
	"github.com/pftv-cli/pftv/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Field is a single setting with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env is the environment variable that overrides the field.
func (f *Field) Env() string {
	return EnvName(f.Key)
}

// Type names the Go type of the default value.
func (f *Field) Type() string {
	return fmt.Sprintf("%T", f.Value)
}

func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"key":         f.Key,
		"env":         f.Env(),
		"value":       viper.Get(f.Key),
		"default":     f.Value,
		"type":        f.Type(),
		"description": f.Description,
	})
}

var fields = []Field{
	{key.DateFormat, "DD/MM/YYYY", "Format used for every rendered date.\nTokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, dddd, ddd"},
	{key.OutputWrap, 80, "Wrap width for plots and descriptions in text output.\nSet to 0 to follow the terminal width"},

	{key.SiteBaseURL, constant.BaseURL, "Root URL of the listings site"},
	{key.SiteTVPath, constant.TVPath, "Path segment under which TV show pages live"},

	{key.FetchTimeout, 30, "Timeout in seconds for a single page request"},
	{key.FetchMaxRedirects, 10, "Maximum number of redirects followed per request"},
	{key.FetchRetries, 2, "Retry attempts for connection errors and 5xx responses"},
	{key.FetchUserAgent, constant.UserAgent, "User-Agent header sent with every request"},
	{key.FetchImpersonateBrowser, false, "Use a Chrome TLS fingerprint for requests.\nHelps with hosts behind anti-bot challenges"},
	{key.FetchCacheTTL, 0, "Minutes to keep fetched pages on disk.\n0 disables the page cache"},

	{key.ResolversCustom, true, "Load Lua link resolvers from the resolvers directory"},

	{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, nerd (nerd-font required)"},

	{key.LogsWrite, false, "Write logs"},
	{key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Use json format for logs"},

	{key.CliColored, true, "Enable colored CLI output"},
}

// Default maps every known key to its field.
var Default = make(map[string]Field, len(fields))

// EnvExposed lists the keys that can be set from the environment, sorted.
var EnvExposed []string

func init() {
	for _, f := range fields {
		if _, ok := Default[f.Key]; ok {
			panic("duplicate config key: " + f.Key)
		}
		Default[f.Key] = f
		EnvExposed = append(EnvExposed, f.Key)
	}
	slices.Sort(EnvExposed)
}

// highlight colors a value by type: booleans green or red, strings yellow.
func highlight(v any) string {
	switch v := v.(type) {
	case bool:
		return style.Fg(lo.Ternary(v, color.Green, color.Red))(fmt.Sprint(v))
	case string:
		return style.Fg(color.Yellow)(fmt.Sprintf("%q", v))
	default:
		return fmt.Sprint(v)
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint": style.Faint,
	"label": style.Fg(color.Blue),
	"key":   style.Fg(color.Purple),
	"hl":    highlight,
	"viper": viper.Get,
}).Parse(`{{ key .Key }}
{{ faint .Description }}
{{ label "env" }}      {{ .Env }}
{{ label "type" }}     {{ .Type }}
{{ label "value" }}    {{ hl (viper .Key) }}
{{ label "default" }}  {{ hl .Value }}`))
