package provider

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Belphemur/TmdbProvider/internal/apperrors"
	"github.com/Belphemur/TmdbProvider/internal/models"
)

const (
	imageBaseURL    = "https://image.tmdb.org/t/p/original"
	trailerBaseURL  = "https://www.youtube.com/watch?v="
	tmdbWebURL      = "https://www.themoviedb.org"
	imdbTitleURL    = "https://www.imdb.com/title/"
	tvdbSeriesURL   = "https://www.thetvdb.com/dereferrer/series/"
	tvdbEpisodeURL  = "https://www.thetvdb.com/dereferrer/episode/"
	appendedDetails = "alternative_titles,videos,credits,keywords,images"
)

// genreCodes maps TMDb genre identifiers to the internal enum. Read-only.
var genreCodes = map[int]models.Genre{
	28:    models.GenreAction,
	12:    models.GenreAdventure,
	16:    models.GenreAnimation,
	35:    models.GenreComedy,
	80:    models.GenreCrime,
	99:    models.GenreDocumentary,
	18:    models.GenreDrama,
	10751: models.GenreFamily,
	14:    models.GenreFantasy,
	36:    models.GenreHistory,
	27:    models.GenreHorror,
	10402: models.GenreMusic,
	9648:  models.GenreMystery,
	10749: models.GenreRomance,
	878:   models.GenreScienceFiction,
	53:    models.GenreThriller,
	10752: models.GenreWar,
	37:    models.GenreWestern,
}

// toGenres drops codes that have no internal counterpart
func toGenres(refs []genreRef) []models.Genre {
	genres := make([]models.Genre, 0, len(refs))
	for _, ref := range refs {
		if genre, ok := genreCodes[ref.ID]; ok {
			genres = append(genres, genre)
		}
	}
	return genres
}

func imageURL(path *string) (string, bool) {
	if path == nil || *path == "" {
		return "", false
	}
	return imageBaseURL + *path, true
}

// toImages keeps only entries carrying a file path
func toImages(refs []imageRef) []string {
	urls := make([]string, 0, len(refs))
	for _, ref := range refs {
		if url, ok := imageURL(ref.FilePath); ok {
			urls = append(urls, url)
		}
	}
	return urls
}

// singleImage returns a one-element list, or an empty one when path is unset
func singleImage(path *string) []string {
	if url, ok := imageURL(path); ok {
		return []string{url}
	}
	return []string{}
}

// toTrailers keeps YouTube trailers only
func toTrailers(videos *videoList) []string {
	trailers := make([]string, 0, len(videos.Results))
	for _, video := range videos.Results {
		if video.Type == "Trailer" && video.Site == "YouTube" && video.Key != "" {
			trailers = append(trailers, trailerBaseURL+video.Key)
		}
	}
	return trailers
}

func toStudio(company companyRef) models.Studio {
	return models.Studio{
		Name:  company.Name,
		Logos: singleImage(company.LogoPath),
		ExternalID: models.ExternalIDs{
			models.ProviderTMDB: tmdbID(company.ID, fmt.Sprintf("company/%d", company.ID)),
		},
	}
}

func toStudios(companies []companyRef) []models.Studio {
	studios := make([]models.Studio, 0, len(companies))
	for _, company := range companies {
		studios = append(studios, toStudio(company))
	}
	return studios
}

func tmdbID(id int, page string) models.MetadataID {
	return models.MetadataID{
		ID:   strconv.Itoa(id),
		Link: tmdbWebURL + "/" + page,
	}
}

// addCrossReferences stores the IMDb and TVDB identifiers the catalog knows about
func addCrossReferences(ids models.ExternalIDs, imdbID *string, tvdbID *int, tvdbURL string) {
	if imdbID != nil && *imdbID != "" {
		ids[models.ProviderIMDB] = models.MetadataID{ID: *imdbID, Link: imdbTitleURL + *imdbID}
	}
	if tvdbID != nil && *tvdbID != 0 {
		id := strconv.Itoa(*tvdbID)
		ids[models.ProviderTVDB] = models.MetadataID{ID: id, Link: tvdbURL + id}
	}
}

func parseDate(resource, name, value string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, &apperrors.ErrMalformedResponse{Resource: resource, Field: name, Err: err}
	}
	return date, nil
}

// parseOptionalDate treats null and empty dates as unknown
func parseOptionalDate(resource, name string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	date, err := parseDate(resource, name, *value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func movieStatus(status string) models.MovieStatus {
	if status == "Released" {
		return models.MovieStatusFinished
	}
	return models.MovieStatusPlanned
}

// showStatus never yields ShowStatusPlanned: anything not in production is finished
func showStatus(status string, inProduction bool) models.ShowStatus {
	switch {
	case status == "Released":
		return models.ShowStatusFinished
	case inProduction:
		return models.ShowStatusAiring
	default:
		return models.ShowStatusFinished
	}
}
