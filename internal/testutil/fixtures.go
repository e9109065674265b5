package testutil

// IntPtr is a helper for creating *int values in tests
func IntPtr(v int) *int {
	return &v
}

// StringPtr is a helper for creating *string values in tests
func StringPtr(v string) *string {
	return &v
}

// CompanyOptions describes a production company of a catalog answer
type CompanyOptions struct {
	ID       int
	Name     string
	LogoPath string // Empty renders a null logo_path
}

// VideoOptions describes an entry of the appended videos block
type VideoOptions struct {
	Key  string
	Site string // "YouTube", "Vimeo"
	Type string // "Trailer", "Teaser", "Featurette"
}

// MovieOptions contains options for generating a movie detail answer
type MovieOptions struct {
	ID                int
	ImdbID            string // Empty renders a null imdb_id
	OriginalLanguage  string
	Title             string
	Tagline           string
	Overview          string
	ReleaseDate       string
	Status            string
	GenreIDs          []int
	Companies         []CompanyOptions
	AlternativeTitles []string
	Keywords          []string
	Posters           []string // An empty path renders an image without file_path
	Logos             []string
	Backdrops         []string
	Videos            []VideoOptions
}

// SeasonOptions contains options for generating a season summary embedded in a show
type SeasonOptions struct {
	ID           int
	SeasonNumber int
	Name         string
	Overview     string
	AirDate      string // Empty renders a null air_date
	PosterPath   string
	EpisodeCount int
}

// ShowOptions contains options for generating a show detail answer
type ShowOptions struct {
	ID                int
	OriginalLanguage  string
	Name              string
	Tagline           string
	Overview          string
	FirstAirDate      string
	LastAirDate       string // Empty renders a null last_air_date
	Status            string
	InProduction      bool
	GenreIDs          []int
	Companies         []CompanyOptions
	Seasons           []SeasonOptions
	AlternativeTitles []string
	Keywords          []string
	Posters           []string
	Logos             []string
	Backdrops         []string
	Videos            []VideoOptions
	ImdbID            string
	TvdbID            int
}

// EpisodeOptions contains options for generating an episode detail answer
type EpisodeOptions struct {
	ID            int
	SeasonNumber  int
	EpisodeNumber int
	Name          string
	Overview      string
	AirDate       string
	Stills        []string
	ImdbID        string
	TvdbID        int
}

// SearchResultOptions is one entry of a search answer
type SearchResultOptions struct {
	ID               int
	OriginalLanguage string
	Title            string // Rendered as "title" for movies and "name" for shows
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func nullableInt(v int) any {
	if v == 0 {
		return nil
	}
	return v
}

func genres(ids []int) []map[string]any {
	out := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, map[string]any{"id": id, "name": "genre"})
	}
	return out
}

func companies(opts []CompanyOptions) []map[string]any {
	out := make([]map[string]any, 0, len(opts))
	for _, c := range opts {
		out = append(out, map[string]any{"id": c.ID, "name": c.Name, "logo_path": nullable(c.LogoPath), "origin_country": "US"})
	}
	return out
}

func images(paths []string) []map[string]any {
	out := make([]map[string]any, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			out = append(out, map[string]any{"width": 500, "height": 750})
			continue
		}
		out = append(out, map[string]any{"file_path": p, "width": 500, "height": 750})
	}
	return out
}

func videos(opts []VideoOptions) map[string]any {
	results := make([]map[string]any, 0, len(opts))
	for _, v := range opts {
		results = append(results, map[string]any{"key": v.Key, "site": v.Site, "type": v.Type, "official": true})
	}
	return map[string]any{"results": results}
}

func named(key string, names []string, field string) map[string]any {
	entries := make([]map[string]any, 0, len(names))
	for i, n := range names {
		entries = append(entries, map[string]any{"id": i + 1, field: n})
	}
	return map[string]any{key: entries}
}

// MovieDetails renders a movie/{id} answer with every appended block
func MovieDetails(opts MovieOptions) map[string]any {
	return map[string]any{
		"id":                   opts.ID,
		"imdb_id":              nullable(opts.ImdbID),
		"original_language":    opts.OriginalLanguage,
		"title":                opts.Title,
		"tagline":              opts.Tagline,
		"overview":             opts.Overview,
		"release_date":         opts.ReleaseDate,
		"status":               opts.Status,
		"genres":               genres(opts.GenreIDs),
		"production_companies": companies(opts.Companies),
		"alternative_titles":   named("titles", opts.AlternativeTitles, "title"),
		"keywords":             named("keywords", opts.Keywords, "name"),
		"credits":              map[string]any{"cast": []any{}, "crew": []any{}},
		"images": map[string]any{
			"posters":   images(opts.Posters),
			"logos":     images(opts.Logos),
			"backdrops": images(opts.Backdrops),
		},
		"videos": videos(opts.Videos),
	}
}

// ShowDetails renders a tv/{id} answer with every appended block
func ShowDetails(opts ShowOptions) map[string]any {
	seasons := make([]map[string]any, 0, len(opts.Seasons))
	for _, s := range opts.Seasons {
		seasons = append(seasons, map[string]any{
			"id":            s.ID,
			"season_number": s.SeasonNumber,
			"name":          s.Name,
			"overview":      s.Overview,
			"air_date":      nullable(s.AirDate),
			"poster_path":   nullable(s.PosterPath),
			"episode_count": s.EpisodeCount,
		})
	}
	return map[string]any{
		"id":                   opts.ID,
		"original_language":    opts.OriginalLanguage,
		"name":                 opts.Name,
		"tagline":              opts.Tagline,
		"overview":             opts.Overview,
		"first_air_date":       opts.FirstAirDate,
		"last_air_date":        nullable(opts.LastAirDate),
		"status":               opts.Status,
		"in_production":        opts.InProduction,
		"genres":               genres(opts.GenreIDs),
		"production_companies": companies(opts.Companies),
		"seasons":              seasons,
		"alternative_titles":   named("results", opts.AlternativeTitles, "title"),
		"keywords":             named("results", opts.Keywords, "name"),
		"credits":              map[string]any{"cast": []any{}, "crew": []any{}},
		"images": map[string]any{
			"posters":   images(opts.Posters),
			"logos":     images(opts.Logos),
			"backdrops": images(opts.Backdrops),
		},
		"videos": videos(opts.Videos),
		"external_ids": map[string]any{
			"imdb_id": nullable(opts.ImdbID),
			"tvdb_id": nullableInt(opts.TvdbID),
		},
	}
}

// EpisodeDetails renders a tv/{id}/season/{s}/episode/{e} answer with images and external ids
func EpisodeDetails(opts EpisodeOptions) map[string]any {
	return map[string]any{
		"id":             opts.ID,
		"season_number":  opts.SeasonNumber,
		"episode_number": opts.EpisodeNumber,
		"name":           opts.Name,
		"overview":       opts.Overview,
		"air_date":       nullable(opts.AirDate),
		"still_path":     nil,
		"images":         map[string]any{"stills": images(opts.Stills)},
		"external_ids": map[string]any{
			"imdb_id": nullable(opts.ImdbID),
			"tvdb_id": nullableInt(opts.TvdbID),
		},
	}
}

// SearchResults renders a search answer
func SearchResults(results ...SearchResultOptions) map[string]any {
	entries := make([]map[string]any, 0, len(results))
	for _, r := range results {
		entries = append(entries, map[string]any{
			"id":                r.ID,
			"original_language": r.OriginalLanguage,
			"title":             r.Title,
			"name":              r.Title,
		})
	}
	return map[string]any{
		"page":          1,
		"results":       entries,
		"total_pages":   1,
		"total_results": len(entries),
	}
}
