package models

import "time"

// Season is one season of a show
type Season struct {
	SeasonNumber int                          `json:"seasonNumber"`
	StartDate    *time.Time                   `json:"startDate,omitempty"`
	EndDate      *time.Time                   `json:"endDate,omitempty"`
	ExternalID   ExternalIDs                  `json:"externalId"`
	Translations map[string]SeasonTranslation `json:"translations"`
}

// SeasonTranslation holds the locale-dependent fields of a season
type SeasonTranslation struct {
	Name       string   `json:"name"`
	Overview   string   `json:"overview"`
	Posters    []string `json:"posters"`
	Thumbnails []string `json:"thumbnails"`
}
