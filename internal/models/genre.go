package models

import "strings"

// Genre is the closed set of genres an entity can be tagged with
type Genre int

const (
	GenreAction Genre = iota + 1
	GenreAdventure
	GenreAnimation
	GenreComedy
	GenreCrime
	GenreDocumentary
	GenreDrama
	GenreFamily
	GenreFantasy
	GenreHistory
	GenreHorror
	GenreMusic
	GenreMystery
	GenreRomance
	GenreScienceFiction
	GenreThriller
	GenreWar
	GenreWestern
)

var genreNames = map[Genre]string{
	GenreAction:         "action",
	GenreAdventure:      "adventure",
	GenreAnimation:      "animation",
	GenreComedy:         "comedy",
	GenreCrime:          "crime",
	GenreDocumentary:    "documentary",
	GenreDrama:          "drama",
	GenreFamily:         "family",
	GenreFantasy:        "fantasy",
	GenreHistory:        "history",
	GenreHorror:         "horror",
	GenreMusic:          "music",
	GenreMystery:        "mystery",
	GenreRomance:        "romance",
	GenreScienceFiction: "science-fiction",
	GenreThriller:       "thriller",
	GenreWar:            "war",
	GenreWestern:        "western",
}

// String returns the string representation of the genre
func (g Genre) String() string {
	if name, ok := genreNames[g]; ok {
		return name
	}
	return "unknown"
}

// ParseGenre converts a genre name back to the enum, returning false when unknown
func ParseGenre(name string) (Genre, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for g, n := range genreNames {
		if n == name {
			return g, true
		}
	}
	return 0, false
}

// MarshalJSON implements json.Marshaler interface
func (g Genre) MarshalJSON() ([]byte, error) {
	return []byte(`"` + g.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler interface
func (g *Genre) UnmarshalJSON(data []byte) error {
	parsed, _ := ParseGenre(strings.Trim(string(data), `"`))
	*g = parsed
	return nil
}
