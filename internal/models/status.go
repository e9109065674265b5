package models

// MovieStatus is the release state of a movie
type MovieStatus int

const (
	MovieStatusUnknown MovieStatus = iota
	MovieStatusFinished
	MovieStatusPlanned
)

// String returns the string representation of the movie status
func (s MovieStatus) String() string {
	switch s {
	case MovieStatusFinished:
		return "finished"
	case MovieStatusPlanned:
		return "planned"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler interface
func (s MovieStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// ShowStatus is the airing state of a show
type ShowStatus int

const (
	ShowStatusUnknown ShowStatus = iota
	ShowStatusFinished
	ShowStatusAiring
	ShowStatusPlanned
)

// String returns the string representation of the show status
func (s ShowStatus) String() string {
	switch s {
	case ShowStatusFinished:
		return "finished"
	case ShowStatusAiring:
		return "airing"
	case ShowStatusPlanned:
		return "planned"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler interface
func (s ShowStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}
