package provider

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Belphemur/TmdbProvider/internal/apperrors"
	"github.com/Belphemur/TmdbProvider/internal/client"
	"github.com/Belphemur/TmdbProvider/internal/config"
	"github.com/Belphemur/TmdbProvider/internal/models"
)

// IdentifyShow expands a partial show through its TMDb identifier
func (p *tmdbProvider) IdentifyShow(ctx context.Context, show models.PartialShow, languages []string) (result *models.Show, err error) {
	logger := config.GetLogger()
	defer func() { observe("show", err) }()

	ref, ok := show.ExternalID[models.ProviderTMDB]
	if !ok || ref.ID == "" {
		return nil, apperrors.NewNotFoundError("themoviedatabase id of show", show.Name)
	}
	showID, err := strconv.Atoi(ref.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid themoviedatabase show id %q: %w", ref.ID, err)
	}
	resolved := resolveLanguages(languages, show.OriginalLanguage)

	logger.Debug().Str("show", show.Name).Int("showID", showID).Strs("languages", resolved).Msg("Fetching show translations")

	result, translations, err := processTranslations(ctx, resolved, func(ctx context.Context, lng string) (*models.Show, models.ShowTranslation, error) {
		return p.fetchShow(ctx, showID, lng)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch show %d: %w", showID, err)
	}
	result.Translations = translations

	logger.Info().Str("show", show.Name).Int("showID", showID).Int("seasons", len(result.Seasons)).Int("languages", len(translations)).Msg("Identified show")
	return result, nil
}

// fetchShow loads the show in a single language. Its seasons only carry that language.
func (p *tmdbProvider) fetchShow(ctx context.Context, showID int, lng string) (*models.Show, models.ShowTranslation, error) {
	var raw showDetails
	err := p.accessor.Get(ctx, fmt.Sprintf("tv/%d", showID), client.Params{
		"language":           lng,
		"append_to_response": appendedDetails + ",external_ids",
	}, &raw)
	if err != nil {
		return nil, models.ShowTranslation{}, err
	}
	if err := raw.validate(); err != nil {
		return nil, models.ShowTranslation{}, err
	}

	startAir, err := parseDate("tv", "first_air_date", *raw.FirstAirDate)
	if err != nil {
		return nil, models.ShowTranslation{}, err
	}
	endAir, err := parseOptionalDate("tv", "last_air_date", raw.LastAirDate)
	if err != nil {
		return nil, models.ShowTranslation{}, err
	}

	seasons := make([]models.Season, 0, len(raw.Seasons))
	for _, summary := range raw.Seasons {
		season, err := toSeason(summary, *raw.ID, lng)
		if err != nil {
			return nil, models.ShowTranslation{}, err
		}
		seasons = append(seasons, season)
	}

	externalID := models.ExternalIDs{
		models.ProviderTMDB: tmdbID(*raw.ID, fmt.Sprintf("tv/%d", *raw.ID)),
	}
	addCrossReferences(externalID, raw.ExternalIDs.ImdbID, raw.ExternalIDs.TvdbID, tvdbSeriesURL)

	show := &models.Show{
		OriginalLanguage: *raw.OriginalLanguage,
		Aliases:          raw.AlternativeTitles.names(),
		StartAir:         startAir,
		EndAir:           endAir,
		Status:           showStatus(*raw.Status, raw.InProduction),
		Studios:          toStudios(raw.ProductionCompanies),
		Genres:           toGenres(raw.Genres),
		ExternalID:       externalID,
		Seasons:          seasons,
	}
	translation := models.ShowTranslation{
		Name:       *raw.Name,
		Tagline:    raw.Tagline,
		Keywords:   raw.Keywords.names(),
		Overview:   raw.Overview,
		Posters:    toImages(raw.Images.Posters),
		Logos:      toImages(raw.Images.Logos),
		Thumbnails: toImages(raw.Images.Backdrops),
		Trailers:   toTrailers(raw.Videos),
	}
	return show, translation, nil
}

// toSeason maps a season summary embedded in a show answer fetched in lng
func toSeason(summary seasonSummary, showID int, lng string) (models.Season, error) {
	startDate, err := parseOptionalDate("season", "air_date", summary.AirDate)
	if err != nil {
		return models.Season{}, err
	}

	number := *summary.SeasonNumber
	return models.Season{
		SeasonNumber: number,
		StartDate:    startDate,
		EndDate:      nil,
		ExternalID: models.ExternalIDs{
			models.ProviderTMDB: tmdbID(*summary.ID, fmt.Sprintf("tv/%d/season/%d", showID, number)),
		},
		Translations: map[string]models.SeasonTranslation{
			lng: {
				Name:       summary.Name,
				Overview:   summary.Overview,
				Posters:    singleImage(summary.PosterPath),
				Thumbnails: []string{},
			},
		},
	}, nil
}
