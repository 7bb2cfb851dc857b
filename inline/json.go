package inline

import (
	"encoding/json"
	"io"

	"github.com/pftv-cli/pftv/source"
)

// ShowOutput is the JSON document printed for a show.
type ShowOutput struct {
	ShowID string       `json:"show_id" jsonschema:"description=Identifier the show page was requested with."`
	Show   *source.Show `json:"show"`
}

// EpisodesOutput is the JSON document printed for one season.
type EpisodesOutput struct {
	ShowID      string              `json:"show_id"`
	CategoryID  string              `json:"category_id" jsonschema:"description=Category id as listed on the show page."`
	EpisodeList *source.EpisodeList `json:"episode_list"`
	// Resolved maps embedded URLs to direct URLs; only present with link resolution on
	Resolved map[string]string `json:"resolved,omitempty" jsonschema:"description=Direct media URL for each embedded URL that could be resolved."`
}

// ResolveOutput is the JSON document printed for a single link.
type ResolveOutput struct {
	EmbeddedURL string `json:"embedded_url"`
	DirectURL   string `json:"direct_url"`
}

func writeJson(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}
