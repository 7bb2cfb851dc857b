// Package source defines the domain models and interfaces for listings extraction.
package source

import "context"

// Source defines the two lookups a listings site supports.
type Source interface {
	// Name returns the identifier of the listings site.
	Name() string

	// ShowInfo retrieves the show page for showID and extracts its Show record.
	ShowInfo(ctx context.Context, showID string) (*Show, error)

	// EpisodeList retrieves the page of one season (category) and extracts its episodes and links.
	EpisodeList(ctx context.Context, showID, categoryID string) (*EpisodeList, error)
}
