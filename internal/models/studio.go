package models

// Studio is a production company, independent of locale
type Studio struct {
	Name       string      `json:"name"`
	Logos      []string    `json:"logos"`
	ExternalID ExternalIDs `json:"externalId"`
}
