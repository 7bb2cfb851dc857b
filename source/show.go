package source

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Show is everything the show page says about one programme.
type Show struct {
	Title       mo.Option[string]      `json:"title"`
	Plot        mo.Option[string]      `json:"plot"`
	ImageURL    mo.Option[string]      `json:"image_url"`
	Trailers    []string               `json:"trailers"`
	NextEpisode mo.Option[NextEpisode] `json:"next_episode"`
	Categories  []Category             `json:"categories"`
}

// Category is one season block of a show page.
type Category struct {
	ID           mo.Option[string] `json:"id"`
	Name         mo.Option[string] `json:"name"`
	EpisodeCount int               `json:"episode_count"`
	LinkCount    int               `json:"link_count"`
}

// NextEpisode is the upcoming episode announced on the show page.
type NextEpisode struct {
	Name    mo.Option[string] `json:"name"`
	Code    mo.Option[string] `json:"code"`
	AirDate mo.Option[string] `json:"air_date"`
}

func (s *Show) String() string {
	return s.Title.OrElse("untitled")
}

// Category finds a category by id.
func (s *Show) Category(id string) (Category, bool) {
	return lo.Find(s.Categories, func(c Category) bool {
		return c.ID.OrEmpty() == id
	})
}

func (c Category) String() string {
	return c.Name.OrElse(c.ID.OrEmpty())
}
