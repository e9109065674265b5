package provider

import "github.com/Belphemur/TmdbProvider/internal/apperrors"

// Raw catalog payloads. Pointer fields are required by the mapping and are
// checked by the validate methods before any value is read.

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ID               *int    `json:"id"`
	OriginalLanguage *string `json:"original_language"`
	Title            string  `json:"title"` // movies
	Name             string  `json:"name"`  // shows
}

type genreRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type companyRef struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	LogoPath *string `json:"logo_path"`
}

type titleRef struct {
	Title string `json:"title"`
}

// alternativeTitles is keyed "titles" for movies and "results" for shows
type alternativeTitles struct {
	Titles  []titleRef `json:"titles"`
	Results []titleRef `json:"results"`
}

func (a *alternativeTitles) names() []string {
	refs := a.Titles
	if len(refs) == 0 {
		refs = a.Results
	}
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Title)
	}
	return names
}

type keywordRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// keywordList is keyed "keywords" for movies and "results" for shows
type keywordList struct {
	Keywords []keywordRef `json:"keywords"`
	Results  []keywordRef `json:"results"`
}

func (k *keywordList) names() []string {
	refs := k.Keywords
	if len(refs) == 0 {
		refs = k.Results
	}
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
	}
	return names
}

type imageRef struct {
	FilePath *string `json:"file_path"`
}

type imageSet struct {
	Posters   []imageRef `json:"posters"`
	Logos     []imageRef `json:"logos"`
	Backdrops []imageRef `json:"backdrops"`
	Stills    []imageRef `json:"stills"`
}

type videoRef struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type videoList struct {
	Results []videoRef `json:"results"`
}

type externalIDs struct {
	ImdbID *string `json:"imdb_id"`
	TvdbID *int    `json:"tvdb_id"`
}

type movieDetails struct {
	ID                  *int               `json:"id"`
	ImdbID              *string            `json:"imdb_id"`
	OriginalLanguage    *string            `json:"original_language"`
	Title               *string            `json:"title"`
	Tagline             string             `json:"tagline"`
	Overview            string             `json:"overview"`
	ReleaseDate         *string            `json:"release_date"`
	Status              *string            `json:"status"`
	Genres              []genreRef         `json:"genres"`
	ProductionCompanies []companyRef       `json:"production_companies"`
	AlternativeTitles   *alternativeTitles `json:"alternative_titles"`
	Keywords            *keywordList       `json:"keywords"`
	Images              *imageSet          `json:"images"`
	Videos              *videoList         `json:"videos"`
}

func (m *movieDetails) validate() error {
	return requireFields("movie",
		field{"id", m.ID != nil},
		field{"original_language", m.OriginalLanguage != nil},
		field{"title", m.Title != nil},
		field{"release_date", m.ReleaseDate != nil},
		field{"status", m.Status != nil},
		field{"alternative_titles", m.AlternativeTitles != nil},
		field{"keywords", m.Keywords != nil},
		field{"images", m.Images != nil},
		field{"videos", m.Videos != nil},
	)
}

type seasonSummary struct {
	ID           *int    `json:"id"`
	SeasonNumber *int    `json:"season_number"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	AirDate      *string `json:"air_date"`
	PosterPath   *string `json:"poster_path"`
	EpisodeCount int     `json:"episode_count"`
}

func (s *seasonSummary) validate() error {
	return requireFields("season",
		field{"id", s.ID != nil},
		field{"season_number", s.SeasonNumber != nil},
	)
}

type showDetails struct {
	ID                  *int               `json:"id"`
	OriginalLanguage    *string            `json:"original_language"`
	Name                *string            `json:"name"`
	Tagline             string             `json:"tagline"`
	Overview            string             `json:"overview"`
	FirstAirDate        *string            `json:"first_air_date"`
	LastAirDate         *string            `json:"last_air_date"`
	Status              *string            `json:"status"`
	InProduction        bool               `json:"in_production"`
	Genres              []genreRef         `json:"genres"`
	ProductionCompanies []companyRef       `json:"production_companies"`
	Seasons             []seasonSummary    `json:"seasons"`
	AlternativeTitles   *alternativeTitles `json:"alternative_titles"`
	Keywords            *keywordList       `json:"keywords"`
	Images              *imageSet          `json:"images"`
	Videos              *videoList         `json:"videos"`
	ExternalIDs         *externalIDs       `json:"external_ids"`
}

func (s *showDetails) validate() error {
	if err := requireFields("tv",
		field{"id", s.ID != nil},
		field{"original_language", s.OriginalLanguage != nil},
		field{"name", s.Name != nil},
		field{"first_air_date", s.FirstAirDate != nil},
		field{"status", s.Status != nil},
		field{"alternative_titles", s.AlternativeTitles != nil},
		field{"keywords", s.Keywords != nil},
		field{"images", s.Images != nil},
		field{"videos", s.Videos != nil},
		field{"external_ids", s.ExternalIDs != nil},
	); err != nil {
		return err
	}
	for i := range s.Seasons {
		if err := s.Seasons[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

// showSeasons is the subset of a show used to convert episode numbering
type showSeasons struct {
	Seasons []seasonSummary `json:"seasons"`
}

type episodeDetails struct {
	ID            *int         `json:"id"`
	Name          string       `json:"name"`
	Overview      string       `json:"overview"`
	AirDate       *string      `json:"air_date"`
	SeasonNumber  *int         `json:"season_number"`
	EpisodeNumber *int         `json:"episode_number"`
	StillPath     *string      `json:"still_path"`
	Images        *imageSet    `json:"images"`
	ExternalIDs   *externalIDs `json:"external_ids"`
}

func (e *episodeDetails) validate() error {
	return requireFields("episode",
		field{"id", e.ID != nil},
		field{"season_number", e.SeasonNumber != nil},
		field{"episode_number", e.EpisodeNumber != nil},
		field{"images", e.Images != nil},
		field{"external_ids", e.ExternalIDs != nil},
	)
}

type field struct {
	name    string
	present bool
}

// requireFields reports the first absent field as a malformed response
func requireFields(resource string, fields ...field) error {
	for _, f := range fields {
		if !f.present {
			return apperrors.NewMissingFieldError(resource, f.name)
		}
	}
	return nil
}
