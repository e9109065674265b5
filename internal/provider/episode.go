package provider

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/Belphemur/TmdbProvider/internal/apperrors"
	"github.com/Belphemur/TmdbProvider/internal/client"
	"github.com/Belphemur/TmdbProvider/internal/config"
	"github.com/Belphemur/TmdbProvider/internal/models"
)

// episodeNumbering locates an episode both inside its season and across the show
type episodeNumbering struct {
	season   int
	episode  int
	absolute *int
}

// IdentifyEpisode searches the show by name and loads one of its episodes in every language
func (p *tmdbProvider) IdentifyEpisode(ctx context.Context, name string, season, episode, absolute *int, languages []string) (result *models.Episode, err error) {
	logger := config.GetLogger()
	defer func() { observe("episode", err) }()

	if (season == nil || episode == nil) && absolute == nil {
		return nil, apperrors.NewNotFoundError("episode numbering", name)
	}

	first, err := p.searchFirst(ctx, "search/tv", "tv", name, client.Params{"query": name})
	if err != nil {
		return nil, err
	}
	showID := *first.ID
	resolved := resolveLanguages(languages, *first.OriginalLanguage)

	numbering, err := p.resolveNumbering(ctx, showID, season, episode, absolute)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("query", name).
		Int("showID", showID).
		Int("season", numbering.season).
		Int("episode", numbering.episode).
		Strs("languages", resolved).
		Msg("Fetching episode translations")

	result, translations, err := processTranslations(ctx, resolved, func(ctx context.Context, lng string) (*models.Episode, models.EpisodeTranslation, error) {
		return p.fetchEpisode(ctx, showID, numbering, lng)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch episode S%02dE%02d of show %d: %w", numbering.season, numbering.episode, showID, err)
	}

	showName := first.Name
	if showName == "" {
		showName = name
	}
	result.Show = models.PartialShow{
		Name:             showName,
		OriginalLanguage: *first.OriginalLanguage,
		ExternalID: models.ExternalIDs{
			models.ProviderTMDB: tmdbID(showID, fmt.Sprintf("tv/%d", showID)),
		},
	}
	result.AbsoluteNumber = numbering.absolute
	result.Translations = translations

	logger.Info().Str("query", name).Int("showID", showID).Int("season", numbering.season).Int("episode", numbering.episode).Msg("Identified episode")
	return result, nil
}

// resolveNumbering fills whichever of season/episode or absolute is missing from
// the show's per-season episode counts. Specials (season 0) have no absolute number.
func (p *tmdbProvider) resolveNumbering(ctx context.Context, showID int, season, episode, absolute *int) (episodeNumbering, error) {
	if season != nil && episode != nil && (absolute != nil || *season == 0) {
		return episodeNumbering{season: *season, episode: *episode, absolute: absolute}, nil
	}

	var raw showSeasons
	if err := p.accessor.Get(ctx, fmt.Sprintf("tv/%d", showID), nil, &raw); err != nil {
		return episodeNumbering{}, fmt.Errorf("failed to fetch seasons of show %d: %w", showID, err)
	}
	for i := range raw.Seasons {
		if err := raw.Seasons[i].validate(); err != nil {
			return episodeNumbering{}, err
		}
	}
	regular := regularSeasons(raw.Seasons)

	if season != nil && episode != nil {
		abs := *episode
		for _, s := range regular {
			if *s.SeasonNumber >= *season {
				break
			}
			abs += s.EpisodeCount
		}
		return episodeNumbering{season: *season, episode: *episode, absolute: &abs}, nil
	}

	if *absolute < 1 {
		return episodeNumbering{}, apperrors.NewNotFoundError(fmt.Sprintf("absolute episode of show %d", showID), *absolute)
	}
	remaining := *absolute
	for _, s := range regular {
		if remaining <= s.EpisodeCount {
			abs := *absolute
			return episodeNumbering{season: *s.SeasonNumber, episode: remaining, absolute: &abs}, nil
		}
		remaining -= s.EpisodeCount
	}
	return episodeNumbering{}, apperrors.NewNotFoundError(fmt.Sprintf("absolute episode of show %d", showID), *absolute)
}

// regularSeasons returns the non-special seasons ordered by number
func regularSeasons(seasons []seasonSummary) []seasonSummary {
	regular := make([]seasonSummary, 0, len(seasons))
	for _, s := range seasons {
		if *s.SeasonNumber > 0 {
			regular = append(regular, s)
		}
	}
	sort.Slice(regular, func(i, j int) bool {
		return *regular[i].SeasonNumber < *regular[j].SeasonNumber
	})
	return regular
}

// fetchEpisode loads a single episode in one language
func (p *tmdbProvider) fetchEpisode(ctx context.Context, showID int, numbering episodeNumbering, lng string) (*models.Episode, models.EpisodeTranslation, error) {
	var raw episodeDetails
	page := fmt.Sprintf("tv/%d/season/%d/episode/%d", showID, numbering.season, numbering.episode)
	err := p.accessor.Get(ctx, page, client.Params{
		"language":           lng,
		"append_to_response": "images,external_ids",
	}, &raw)
	if err != nil {
		return nil, models.EpisodeTranslation{}, err
	}
	if err := raw.validate(); err != nil {
		return nil, models.EpisodeTranslation{}, err
	}

	releaseDate, err := parseOptionalDate("episode", "air_date", raw.AirDate)
	if err != nil {
		return nil, models.EpisodeTranslation{}, err
	}

	externalID := models.ExternalIDs{
		models.ProviderTMDB: {
			ID:   strconv.Itoa(*raw.ID),
			Link: tmdbWebURL + "/" + page,
		},
	}
	addCrossReferences(externalID, raw.ExternalIDs.ImdbID, raw.ExternalIDs.TvdbID, tvdbEpisodeURL)

	thumbnails := toImages(raw.Images.Stills)
	if len(thumbnails) == 0 {
		thumbnails = singleImage(raw.StillPath)
	}

	seasonNumber, episodeNumber := *raw.SeasonNumber, *raw.EpisodeNumber
	episode := &models.Episode{
		SeasonNumber:  &seasonNumber,
		EpisodeNumber: &episodeNumber,
		ReleaseDate:   releaseDate,
		ExternalID:    externalID,
	}
	translation := models.EpisodeTranslation{
		Name:       raw.Name,
		Overview:   raw.Overview,
		Thumbnails: thumbnails,
	}
	return episode, translation, nil
}
