package models

// Provider names used as keys of ExternalID maps
const (
	ProviderTMDB = "themoviedatabase"
	ProviderIMDB = "imdb"
	ProviderTVDB = "tvdb"
)

// MetadataID identifies an entity inside one external provider's namespace
type MetadataID struct {
	ID   string `json:"id"`   // Opaque identifier in the provider
	Link string `json:"link"` // Canonical web page of the resource
}

// ExternalIDs maps a provider name to the entity's identifier in that provider
type ExternalIDs map[string]MetadataID
