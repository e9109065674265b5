package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
)

// Responder builds the status and JSON body answered for a route
type Responder func(query url.Values) (int, any)

// CatalogServer is a fake TMDb API answering registered paths
type CatalogServer struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]Responder
	requests map[string][]url.Values
}

// NewCatalogServer starts a fake catalog closed at the end of the test
func NewCatalogServer(t testing.TB) *CatalogServer {
	s := &CatalogServer{
		routes:   make(map[string]Responder),
		requests: make(map[string][]url.Values),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Handle registers a responder for path, given without leading slash
func (s *CatalogServer) Handle(path string, responder Responder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[path] = responder
}

// JSON registers a fixed 200 answer for path
func (s *CatalogServer) JSON(path string, body any) {
	s.Handle(path, func(url.Values) (int, any) {
		return http.StatusOK, body
	})
}

// Requests returns the query strings received on path, in arrival order
func (s *CatalogServer) Requests(path string) []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.Values(nil), s.requests[path]...)
}

func (s *CatalogServer) serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/")
	query := r.URL.Query()

	s.mu.Lock()
	s.requests[path] = append(s.requests[path], query)
	responder, ok := s.routes[path]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"status_code":34,"status_message":"The resource you requested could not be found."}`))
		return
	}

	status, body := responder(query)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
