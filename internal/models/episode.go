package models

import "time"

// Episode is a single episode together with a reference to its show
type Episode struct {
	Show           PartialShow                   `json:"show"`
	SeasonNumber   *int                          `json:"seasonNumber,omitempty"`
	EpisodeNumber  *int                          `json:"episodeNumber,omitempty"`
	AbsoluteNumber *int                          `json:"absoluteNumber,omitempty"`
	ReleaseDate    *time.Time                    `json:"releaseDate,omitempty"`
	ExternalID     ExternalIDs                   `json:"externalId"`
	Translations   map[string]EpisodeTranslation `json:"translations"`
}

// EpisodeTranslation holds the locale-dependent fields of an episode
type EpisodeTranslation struct {
	Name       string   `json:"name"`
	Overview   string   `json:"overview"`
	Thumbnails []string `json:"thumbnails"`
}
