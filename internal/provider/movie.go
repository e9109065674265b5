package provider

import (
	"context"
	"fmt"

	"github.com/Belphemur/TmdbProvider/internal/apperrors"
	"github.com/Belphemur/TmdbProvider/internal/client"
	"github.com/Belphemur/TmdbProvider/internal/config"
	"github.com/Belphemur/TmdbProvider/internal/models"
)

// IdentifyMovie searches the catalog and returns the first result in every language
func (p *tmdbProvider) IdentifyMovie(ctx context.Context, name string, year *int, languages []string) (movie *models.Movie, err error) {
	logger := config.GetLogger()
	defer func() { observe("movie", err) }()

	first, err := p.searchFirst(ctx, "search/movie", "movie", name, client.Params{"query": name, "year": year})
	if err != nil {
		return nil, err
	}
	movieID := *first.ID
	resolved := resolveLanguages(languages, *first.OriginalLanguage)

	logger.Debug().Str("query", name).Int("movieID", movieID).Strs("languages", resolved).Msg("Fetching movie translations")

	movie, translations, err := processTranslations(ctx, resolved, func(ctx context.Context, lng string) (*models.Movie, models.MovieTranslation, error) {
		return p.fetchMovie(ctx, movieID, lng)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movie %d: %w", movieID, err)
	}
	movie.Translations = translations

	logger.Info().Str("query", name).Int("movieID", movieID).Int("languages", len(translations)).Msg("Identified movie")
	return movie, nil
}

// fetchMovie loads the movie in a single language with every detail block appended
func (p *tmdbProvider) fetchMovie(ctx context.Context, movieID int, lng string) (*models.Movie, models.MovieTranslation, error) {
	var raw movieDetails
	err := p.accessor.Get(ctx, fmt.Sprintf("movie/%d", movieID), client.Params{
		"language":           lng,
		"append_to_response": appendedDetails,
	}, &raw)
	if err != nil {
		return nil, models.MovieTranslation{}, err
	}
	if err := raw.validate(); err != nil {
		return nil, models.MovieTranslation{}, err
	}

	releaseDate, err := parseDate("movie", "release_date", *raw.ReleaseDate)
	if err != nil {
		return nil, models.MovieTranslation{}, err
	}

	externalID := models.ExternalIDs{
		models.ProviderTMDB: tmdbID(*raw.ID, fmt.Sprintf("movie/%d", *raw.ID)),
	}
	addCrossReferences(externalID, raw.ImdbID, nil, "")

	movie := &models.Movie{
		OriginalLanguage: *raw.OriginalLanguage,
		Aliases:          raw.AlternativeTitles.names(),
		ReleaseDate:      releaseDate,
		Status:           movieStatus(*raw.Status),
		Studios:          toStudios(raw.ProductionCompanies),
		Genres:           toGenres(raw.Genres),
		ExternalID:       externalID,
	}
	translation := models.MovieTranslation{
		Name:       *raw.Title,
		Tagline:    raw.Tagline,
		Keywords:   raw.Keywords.names(),
		Overview:   raw.Overview,
		Posters:    toImages(raw.Images.Posters),
		Logos:      toImages(raw.Images.Logos),
		Thumbnails: toImages(raw.Images.Backdrops),
		Trailers:   toTrailers(raw.Videos),
	}
	return movie, translation, nil
}

// searchFirst runs a search and returns its first result, failing when there is none
func (p *tmdbProvider) searchFirst(ctx context.Context, path, kind, query string, params client.Params) (*searchResult, error) {
	var search searchResponse
	if err := p.accessor.Get(ctx, path, params, &search); err != nil {
		return nil, fmt.Errorf("failed to search %s %q: %w", kind, query, err)
	}
	if len(search.Results) == 0 {
		return nil, apperrors.NewSearchNotFoundError(kind, query)
	}

	first := &search.Results[0]
	if err := requireFields("search",
		field{"id", first.ID != nil},
		field{"original_language", first.OriginalLanguage != nil},
	); err != nil {
		return nil, err
	}
	return first, nil
}
