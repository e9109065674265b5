package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Belphemur/TmdbProvider/internal/apperrors"
	"github.com/Belphemur/TmdbProvider/internal/config"
	"github.com/Belphemur/TmdbProvider/internal/metrics"
)

// Accessor issues GET requests against the TMDb catalog
type Accessor interface {
	// Get queries path with the non-nil params and decodes the JSON body into out.
	// A non-2xx answer is returned as *apperrors.ErrRemoteRequest.
	Get(ctx context.Context, path string, params Params, out any) error
}

// Params maps a query parameter to an optional value. Nil values and nil
// *string / *int pointers are left out of the query string.
type Params map[string]any

func (p Params) encode() url.Values {
	values := url.Values{}
	for key, value := range p {
		switch v := value.(type) {
		case nil:
		case string:
			values.Set(key, v)
		case *string:
			if v != nil {
				values.Set(key, *v)
			}
		case int:
			values.Set(key, strconv.Itoa(v))
		case *int:
			if v != nil {
				values.Set(key, strconv.Itoa(*v))
			}
		default:
			values.Set(key, fmt.Sprint(v))
		}
	}
	return values
}

// accessor implements the Accessor interface
type accessor struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
}

// NewAccessor wraps a shared http.Client owned by the caller.
// The client is reused for every request so its connection pool is shared.
func NewAccessor(httpClient *http.Client, baseURL string, apiKey string) Accessor {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = config.DefaultTMDBBaseURL
	}
	return &accessor{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		userAgent:  config.GetUserAgent(),
	}
}

// NewHTTPClient creates the shared catalog http.Client with proxy configuration if provided
func NewHTTPClient(cfg *config.Config) *http.Client {
	logger := config.GetLogger()

	timeout := 30 * time.Second // default
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 30s")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to preserve its pooling, HTTP/2 and dial settings
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: newCompressionTransport(baseTransport),
	}
}

// Get performs a single catalog request. Failures are returned unchanged and never retried.
func (a *accessor) Get(ctx context.Context, path string, params Params, out any) error {
	logger := config.GetLogger()

	path = strings.TrimPrefix(path, "/")
	resource := resourceOf(path)

	query := params.encode()
	query.Set("api_key", a.apiKey)
	endpoint := a.baseURL + "/" + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("User-Agent", a.userAgent)
	req.Header.Set("Accept", "application/json")

	logger.Debug().Str("path", path).Str("language", query.Get("language")).Msg("Querying TMDb")

	start := time.Now()
	resp, err := a.httpClient.Do(req)
	metrics.CatalogRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(resource, "error").Inc()
		// The query string carries the API key, keep it out of the error text
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = endpoint
		}
		return fmt.Errorf("failed to query %s: %w", path, err)
	}
	defer resp.Body.Close()

	metrics.CatalogRequestsTotal.WithLabelValues(resource, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &apperrors.ErrRemoteRequest{StatusCode: resp.StatusCode, Path: path}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", path, err)
	}

	logger.Debug().Str("path", path).Int("bytes", len(body)).Msg("TMDb responded")

	if err := json.Unmarshal(body, out); err != nil {
		return &apperrors.ErrMalformedResponse{Resource: resource, Err: err}
	}
	return nil
}

// resourceOf returns the first path segment, used as a low-cardinality metric label
func resourceOf(path string) string {
	resource, _, _ := strings.Cut(path, "/")
	switch resource {
	case "search", "movie", "tv":
		return resource
	default:
		return "other"
	}
}
