package models

import "time"

// Show is a fully identified TV show with one translation per resolved locale
type Show struct {
	OriginalLanguage string                     `json:"originalLanguage"`
	Aliases          []string                   `json:"aliases"`
	StartAir         time.Time                  `json:"startAir"`
	EndAir           *time.Time                 `json:"endAir,omitempty"` // Nil while the show has no last air date
	Status           ShowStatus                 `json:"status"`
	Studios          []Studio                   `json:"studios"`
	Genres           []Genre                    `json:"genres"`
	ExternalID       ExternalIDs                `json:"externalId"`
	Seasons          []Season                   `json:"seasons"`
	Translations     map[string]ShowTranslation `json:"translations"`
}

// ShowTranslation holds the locale-dependent fields of a show
type ShowTranslation struct {
	Name       string   `json:"name"`
	Tagline    string   `json:"tagline"`
	Keywords   []string `json:"keywords"`
	Overview   string   `json:"overview"`
	Posters    []string `json:"posters"`
	Logos      []string `json:"logos"`
	Thumbnails []string `json:"thumbnails"`
	Trailers   []string `json:"trailers"`
}

// PartialShow is what is known about a show before it is identified
type PartialShow struct {
	Name             string      `json:"name"`
	OriginalLanguage string      `json:"originalLanguage"`
	ExternalID       ExternalIDs `json:"externalId"`
}
