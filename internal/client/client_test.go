package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Belphemur/TmdbProvider/internal/apperrors"
	"github.com/Belphemur/TmdbProvider/internal/config"
)

type movieStub struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func TestAccessor_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/550" {
			t.Errorf("Expected path /movie/550, got %s", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("api_key") != "test-key" {
			t.Errorf("Expected api_key 'test-key', got %q", query.Get("api_key"))
		}
		if query.Get("language") != "fr" {
			t.Errorf("Expected language 'fr', got %q", query.Get("language"))
		}
		if query.Get("year") != "1999" {
			t.Errorf("Expected year '1999', got %q", query.Get("year"))
		}
		for _, absent := range []string{"missing", "nil_string", "nil_int"} {
			if _, ok := query[absent]; ok {
				t.Errorf("Expected %q to be stripped from the query, got %q", absent, r.URL.RawQuery)
			}
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("Expected a User-Agent header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":550,"title":"Fight Club"}`))
	}))
	defer server.Close()

	year := 1999
	var nilString *string
	var nilInt *int

	accessor := NewAccessor(server.Client(), server.URL, "test-key")
	var movie movieStub
	err := accessor.Get(context.Background(), "/movie/550", Params{
		"language":   "fr",
		"year":       &year,
		"missing":    nil,
		"nil_string": nilString,
		"nil_int":    nilInt,
	}, &movie)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if movie.ID != 550 || movie.Title != "Fight Club" {
		t.Errorf("Expected Fight Club (550), got %+v", movie)
	}
}

func TestAccessor_Get_NonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusNotFound, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"status_message":"nope"}`))
		}))

		accessor := NewAccessor(server.Client(), server.URL, "test-key")
		var out map[string]any
		err := accessor.Get(context.Background(), "tv/1399", nil, &out)
		server.Close()

		var remote *apperrors.ErrRemoteRequest
		if !errors.As(err, &remote) {
			t.Fatalf("Expected ErrRemoteRequest for status %d, got: %v", status, err)
		}
		if remote.StatusCode != status {
			t.Errorf("Expected status %d, got %d", status, remote.StatusCode)
		}
		if remote.Path != "tv/1399" {
			t.Errorf("Expected path 'tv/1399', got %q", remote.Path)
		}
		if strings.Contains(err.Error(), "test-key") {
			t.Errorf("Expected error not to leak the API key, got: %v", err)
		}
	}
}

func TestAccessor_Get_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	}))
	defer server.Close()

	accessor := NewAccessor(server.Client(), server.URL, "test-key")
	var movie movieStub
	err := accessor.Get(context.Background(), "movie/550", nil, &movie)
	if !errors.Is(err, &apperrors.ErrMalformedResponse{}) {
		t.Fatalf("Expected ErrMalformedResponse, got: %v", err)
	}
}

func TestAccessor_Get_TransportErrorHidesKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	accessor := NewAccessor(&http.Client{}, url, "secret-key")
	var out map[string]any
	err := accessor.Get(context.Background(), "search/movie", Params{"query": "Alien"}, &out)
	if err == nil {
		t.Fatal("Expected error for a closed server, got nil")
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Errorf("Expected error not to leak the API key, got: %v", err)
	}
	if errors.Is(err, &apperrors.ErrRemoteRequest{}) {
		t.Error("Expected a transport error, not ErrRemoteRequest")
	}
}

func TestParams_Encode(t *testing.T) {
	empty := ""
	page := 2
	values := Params{
		"query":  "Alien",
		"empty":  &empty,
		"page":   &page,
		"adult":  false,
		"absent": nil,
	}.encode()

	if values.Get("query") != "Alien" {
		t.Errorf("Expected query 'Alien', got %q", values.Get("query"))
	}
	if _, ok := values["empty"]; !ok {
		t.Error("Expected an empty string to be kept as a value")
	}
	if values.Get("page") != "2" {
		t.Errorf("Expected page '2', got %q", values.Get("page"))
	}
	if values.Get("adult") != "false" {
		t.Errorf("Expected adult 'false', got %q", values.Get("adult"))
	}
	if _, ok := values["absent"]; ok {
		t.Error("Expected nil value to be stripped")
	}
}

func TestResourceOf(t *testing.T) {
	tests := map[string]string{
		"search/movie":          "search",
		"movie/550":             "movie",
		"tv/1399/season/1":      "tv",
		"configuration":         "other",
		"":                      "other",
		"tv/1/season/1/episode": "tv",
	}
	for path, expected := range tests {
		if got := resourceOf(path); got != expected {
			t.Errorf("resourceOf(%q) = %q, want %q", path, got, expected)
		}
	}
}

func TestNewHTTPClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		timeout string
	}{
		{"configured timeout", &config.Config{ClientTimeout: "10s"}, "10s"},
		{"invalid timeout falls back", &config.Config{ClientTimeout: "soon"}, "30s"},
		{"empty timeout falls back", &config.Config{}, "30s"},
		{"invalid proxy is ignored", &config.Config{ProxyConnectionString: "://bad", ClientTimeout: "1m"}, "1m0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpClient := NewHTTPClient(tt.cfg)
			if httpClient.Timeout.String() != tt.timeout {
				t.Errorf("Expected timeout %s, got %s", tt.timeout, httpClient.Timeout)
			}
			if _, ok := httpClient.Transport.(*compressionTransport); !ok {
				t.Errorf("Expected compression transport, got %T", httpClient.Transport)
			}
		})
	}
}
