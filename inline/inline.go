package inline

import (
	"context"
	"errors"

	"github.com/pftv-cli/pftv/log"
	"github.com/pftv-cli/pftv/source"
)

var (
	errNoSource   = errors.New("no listings source configured")
	errNoRegistry = errors.New("no resolver registry configured")
)

// Show prints the show page of showID.
func Show(ctx context.Context, options *Options, showID string) error {
	if options.Source == nil {
		return errNoSource
	}

	show, err := options.Source.ShowInfo(ctx, showID)
	if err != nil {
		return err
	}

	if options.Json {
		return writeJson(options.out(), &ShowOutput{ShowID: showID, Show: show})
	}
	return renderShow(options.out(), show, options.width())
}

// Episodes prints one season of showID, resolving links first when asked to.
func Episodes(ctx context.Context, options *Options, showID, categoryID string) error {
	if options.Source == nil {
		return errNoSource
	}

	list, err := options.Source.EpisodeList(ctx, showID, categoryID)
	if err != nil {
		return err
	}

	var resolved map[string]string
	if options.Resolve {
		if options.Registry == nil {
			return errNoRegistry
		}
		resolved = resolveAll(ctx, options, list)
	}

	if options.Json {
		return writeJson(options.out(), &EpisodesOutput{
			ShowID:      showID,
			CategoryID:  categoryID,
			EpisodeList: list,
			Resolved:    resolved,
		})
	}
	return renderEpisodes(options.out(), list, resolved, options.width())
}

// Resolve prints the direct URL behind a single embedded URL.
func Resolve(ctx context.Context, options *Options, embeddedURL string) error {
	if options.Registry == nil {
		return errNoRegistry
	}

	direct, err := options.Registry.Resolve(ctx, embeddedURL)
	if err != nil {
		return err
	}

	if options.Json {
		return writeJson(options.out(), &ResolveOutput{EmbeddedURL: embeddedURL, DirectURL: direct})
	}

	_, err = options.out().Write([]byte(direct + "\n"))
	return err
}

// resolveAll resolves each distinct link URL once. Failures leave the link unresolved.
func resolveAll(ctx context.Context, options *Options, list *source.EpisodeList) map[string]string {
	resolved := make(map[string]string)
	tried := make(map[string]bool)

	for _, episode := range list.Episodes {
		for _, link := range episode.Links {
			embedded, ok := link.URL.Get()
			if !ok || tried[embedded] {
				continue
			}
			tried[embedded] = true

			direct, err := options.Registry.Resolve(ctx, embedded)
			if err != nil {
				log.Debugf("inline: %s", err)
				continue
			}
			resolved[embedded] = direct
		}
	}

	return resolved
}
