// Package provider identifies movies, shows and episodes against TMDb and
// normalizes the catalog payloads into the models package.
package provider

import (
	"context"
	"net/http"

	"github.com/Belphemur/TmdbProvider/internal/client"
	"github.com/Belphemur/TmdbProvider/internal/config"
	"github.com/Belphemur/TmdbProvider/internal/metrics"
	"github.com/Belphemur/TmdbProvider/internal/models"
)

// Provider resolves catalog entities in every requested language at once
type Provider interface {
	// Name is the key this provider's identifiers are stored under in ExternalIDs.
	Name() string

	// IdentifyMovie searches name (optionally restricted to year) and returns the first match.
	IdentifyMovie(ctx context.Context, name string, year *int, languages []string) (*models.Movie, error)

	// IdentifyShow expands a show already known by its TMDb identifier.
	IdentifyShow(ctx context.Context, show models.PartialShow, languages []string) (*models.Show, error)

	// IdentifyEpisode searches the show by name and returns the requested episode.
	// Either season and episode or absolute must be set; the missing numbering is derived.
	IdentifyEpisode(ctx context.Context, name string, season, episode, absolute *int, languages []string) (*models.Episode, error)
}

// tmdbProvider implements the Provider interface
type tmdbProvider struct {
	accessor client.Accessor
}

// New creates a provider on top of an existing accessor
func New(accessor client.Accessor) Provider {
	return &tmdbProvider{accessor: accessor}
}

// NewFromConfig creates a provider sharing httpClient for every catalog request
func NewFromConfig(cfg *config.Config, httpClient *http.Client) Provider {
	return New(client.NewAccessor(httpClient, cfg.TMDBBaseURL, cfg.TMDBApiKey))
}

func (p *tmdbProvider) Name() string {
	return models.ProviderTMDB
}

// observe records the outcome of an identification
func observe(kind string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.IdentificationsTotal.WithLabelValues(kind, status).Inc()
}
