package provider

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Belphemur/TmdbProvider/internal/apperrors"
	"github.com/Belphemur/TmdbProvider/internal/models"
	"github.com/Belphemur/TmdbProvider/internal/testutil"
)

func TestToGenres(t *testing.T) {
	got := toGenres([]genreRef{{ID: 28}, {ID: 999999}, {ID: 878}})
	expected := []models.Genre{models.GenreAction, models.GenreScienceFiction}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	if got := toGenres([]genreRef{{ID: 999999}}); len(got) != 0 {
		t.Errorf("Expected unknown codes to be dropped, got %v", got)
	}
}

func TestGenreCodes_CoverEveryGenre(t *testing.T) {
	seen := make(map[models.Genre]bool)
	for _, genre := range genreCodes {
		seen[genre] = true
	}
	for g := models.GenreAction; g <= models.GenreWestern; g++ {
		if !seen[g] {
			t.Errorf("Expected genre %s to have a TMDb code", g)
		}
	}
}

func TestToImages(t *testing.T) {
	got := toImages([]imageRef{
		{FilePath: testutil.StringPtr("/abc.jpg")},
		{FilePath: nil},
		{FilePath: testutil.StringPtr("")},
		{FilePath: testutil.StringPtr("/def.png")},
	})
	expected := []string{
		"https://image.tmdb.org/t/p/original/abc.jpg",
		"https://image.tmdb.org/t/p/original/def.png",
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	if got := toImages(nil); got == nil || len(got) != 0 {
		t.Errorf("Expected an empty, non-nil list, got %#v", got)
	}
}

func TestSingleImage(t *testing.T) {
	if got := singleImage(nil); len(got) != 0 {
		t.Errorf("Expected no image for a nil path, got %v", got)
	}
	if got := singleImage(testutil.StringPtr("/logo.png")); len(got) != 1 || got[0] != "https://image.tmdb.org/t/p/original/logo.png" {
		t.Errorf("Expected one logo URL, got %v", got)
	}
}

func TestToTrailers(t *testing.T) {
	got := toTrailers(&videoList{Results: []videoRef{
		{Key: "abc", Site: "YouTube", Type: "Trailer"},
		{Key: "def", Site: "YouTube", Type: "Teaser"},
		{Key: "ghi", Site: "Vimeo", Type: "Trailer"},
		{Key: "jkl", Site: "YouTube", Type: "Trailer"},
	}})
	expected := []string{
		"https://www.youtube.com/watch?v=abc",
		"https://www.youtube.com/watch?v=jkl",
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestToStudio(t *testing.T) {
	studio := toStudio(companyRef{ID: 508, Name: "Regency Enterprises", LogoPath: testutil.StringPtr("/7cxRWzi4LsVm4Utfpr1hfARNurT.png")})

	if studio.Name != "Regency Enterprises" {
		t.Errorf("Expected name 'Regency Enterprises', got %q", studio.Name)
	}
	if len(studio.Logos) != 1 || studio.Logos[0] != "https://image.tmdb.org/t/p/original/7cxRWzi4LsVm4Utfpr1hfARNurT.png" {
		t.Errorf("Unexpected logos: %v", studio.Logos)
	}
	id := studio.ExternalID[models.ProviderTMDB]
	if id.ID != "508" || id.Link != "https://www.themoviedb.org/company/508" {
		t.Errorf("Unexpected studio id: %+v", id)
	}

	if logos := toStudio(companyRef{ID: 1, Name: "No Logo"}).Logos; len(logos) != 0 {
		t.Errorf("Expected no logo for a null logo_path, got %v", logos)
	}
}

func TestAddCrossReferences(t *testing.T) {
	ids := models.ExternalIDs{}
	addCrossReferences(ids, testutil.StringPtr("tt0137523"), testutil.IntPtr(81189), tvdbSeriesURL)

	if ids[models.ProviderIMDB].Link != "https://www.imdb.com/title/tt0137523" {
		t.Errorf("Unexpected imdb id: %+v", ids[models.ProviderIMDB])
	}
	if ids[models.ProviderTVDB].ID != "81189" || ids[models.ProviderTVDB].Link != "https://www.thetvdb.com/dereferrer/series/81189" {
		t.Errorf("Unexpected tvdb id: %+v", ids[models.ProviderTVDB])
	}

	empty := models.ExternalIDs{}
	addCrossReferences(empty, testutil.StringPtr(""), nil, tvdbSeriesURL)
	if len(empty) != 0 {
		t.Errorf("Expected unknown cross references to be skipped, got %v", empty)
	}
}

func TestParseDate(t *testing.T) {
	date, err := parseDate("movie", "release_date", "1999-10-15")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if date.Year() != 1999 || date.Month() != 10 || date.Day() != 15 {
		t.Errorf("Expected 1999-10-15, got %s", date)
	}

	_, err = parseDate("movie", "release_date", "15/10/1999")
	var malformed *apperrors.ErrMalformedResponse
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected ErrMalformedResponse, got: %v", err)
	}
	if malformed.Field != "release_date" {
		t.Errorf("Expected field release_date, got %q", malformed.Field)
	}
}

func TestParseOptionalDate(t *testing.T) {
	for _, value := range []*string{nil, testutil.StringPtr("")} {
		date, err := parseOptionalDate("season", "air_date", value)
		if err != nil || date != nil {
			t.Errorf("Expected nil date and no error, got %v and %v", date, err)
		}
	}

	if _, err := parseOptionalDate("season", "air_date", testutil.StringPtr("2011-13-40")); err == nil {
		t.Error("Expected an error for an invalid date")
	}
}

func TestMovieStatus(t *testing.T) {
	tests := map[string]models.MovieStatus{
		"Released":        models.MovieStatusFinished,
		"Post Production": models.MovieStatusPlanned,
		"In Production":   models.MovieStatusPlanned,
		"Rumored":         models.MovieStatusPlanned,
		"Canceled":        models.MovieStatusPlanned,
	}
	for status, expected := range tests {
		if got := movieStatus(status); got != expected {
			t.Errorf("movieStatus(%q) = %s, want %s", status, got, expected)
		}
	}
}

// The show mapping is literally two-way: a show that is neither released nor in
// production is reported finished, so ShowStatusPlanned is never produced.
func TestShowStatus(t *testing.T) {
	tests := []struct {
		status       string
		inProduction bool
		expected     models.ShowStatus
	}{
		{"Released", false, models.ShowStatusFinished},
		{"Released", true, models.ShowStatusFinished},
		{"Returning Series", true, models.ShowStatusAiring},
		{"In Production", true, models.ShowStatusAiring},
		{"Ended", false, models.ShowStatusFinished},
		{"Canceled", false, models.ShowStatusFinished},
		{"Planned", false, models.ShowStatusFinished},
	}
	for _, tt := range tests {
		got := showStatus(tt.status, tt.inProduction)
		if got != tt.expected {
			t.Errorf("showStatus(%q, %v) = %s, want %s", tt.status, tt.inProduction, got, tt.expected)
		}
		if got == models.ShowStatusPlanned {
			t.Errorf("showStatus(%q, %v) produced planned", tt.status, tt.inProduction)
		}
	}
}
