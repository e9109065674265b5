package models

import "time"

// Movie is a fully identified movie with one translation per resolved locale
type Movie struct {
	OriginalLanguage string                      `json:"originalLanguage"`
	Aliases          []string                    `json:"aliases"`
	ReleaseDate      time.Time                   `json:"releaseDate"`
	Status           MovieStatus                 `json:"status"`
	Studios          []Studio                    `json:"studios"`
	Genres           []Genre                     `json:"genres"`
	ExternalID       ExternalIDs                 `json:"externalId"`
	Translations     map[string]MovieTranslation `json:"translations"`
}

// MovieTranslation holds the locale-dependent fields of a movie
type MovieTranslation struct {
	Name       string   `json:"name"`
	Tagline    string   `json:"tagline"`
	Keywords   []string `json:"keywords"`
	Overview   string   `json:"overview"`
	Posters    []string `json:"posters"`
	Logos      []string `json:"logos"`
	Thumbnails []string `json:"thumbnails"`
	Trailers   []string `json:"trailers"`
}
