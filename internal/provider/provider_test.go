package provider

import (
	"testing"

	"github.com/Belphemur/TmdbProvider/internal/client"
	"github.com/Belphemur/TmdbProvider/internal/config"
	"github.com/Belphemur/TmdbProvider/internal/models"
	"github.com/Belphemur/TmdbProvider/internal/testutil"
)

func newTestProvider(t *testing.T) (*testutil.CatalogServer, Provider) {
	t.Helper()
	server := testutil.NewCatalogServer(t)
	return server, New(client.NewAccessor(server.Client(), server.URL, "test-key"))
}

func TestProvider_Name(t *testing.T) {
	_, p := newTestProvider(t)
	if p.Name() != models.ProviderTMDB {
		t.Errorf("Expected name %q, got %q", models.ProviderTMDB, p.Name())
	}
}

func TestNewFromConfig(t *testing.T) {
	server := testutil.NewCatalogServer(t)
	server.JSON("search/movie", testutil.SearchResults())

	cfg := &config.Config{TMDBBaseURL: server.URL, TMDBApiKey: "configured-key"}
	p := NewFromConfig(cfg, server.Client())

	// The search is empty, only the request itself matters here
	_, _ = p.IdentifyMovie(t.Context(), "Nothing", nil, []string{"en"})

	requests := server.Requests("search/movie")
	if len(requests) != 1 {
		t.Fatalf("Expected 1 search request, got %d", len(requests))
	}
	if requests[0].Get("api_key") != "configured-key" {
		t.Errorf("Expected the configured api key, got %q", requests[0].Get("api_key"))
	}
}
