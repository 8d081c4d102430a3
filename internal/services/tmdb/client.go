package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Result represents a single TMDB movie search match.
type Result struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	Popularity  float64 `json:"popularity"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int64   `json:"vote_count"`
}

// SearchResponse models the TMDB paginated search response.
type SearchResponse struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// Company is a production company entry on a movie record.
type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieDetails is the full movie payload used for verification.
type MovieDetails struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	ReleaseDate         string    `json:"release_date"`
	Runtime             int       `json:"runtime"`
	ProductionCompanies []Company `json:"production_companies"`
}

// ReleaseYear parses the year from the release date, returning false when the
// date is absent or malformed.
func (d *MovieDetails) ReleaseYear() (int, bool) {
	if len(d.ReleaseDate) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(d.ReleaseDate[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

// SearchOptions contains optional parameters for TMDB movie search.
type SearchOptions struct {
	Year int
}

// API defines the TMDB operations the cross-reference verifier needs.
type API interface {
	SearchMovie(ctx context.Context, query string, opts SearchOptions) (*SearchResponse, error)
	GetMovieDetails(ctx context.Context, movieID int64) (*MovieDetails, error)
}

// Client provides access to the TMDB v3 API. A key in JWT form ("eyJ..." )
// is sent as a v4 bearer token; anything else is sent as the api_key query
// parameter.
type Client struct {
	apiKey     string
	useBearer  bool
	baseURL    string
	language   string
	httpClient *http.Client
}

var _ API = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a TMDB client.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		useBearer:  strings.HasPrefix(apiKey, "eyJ"),
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   strings.TrimSpace(language),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchMovie performs a TMDB movie search with an optional release-year
// filter.
func (c *Client) SearchMovie(ctx context.Context, query string, opts SearchOptions) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + "/search/movie")
	if err != nil {
		return nil, fmt.Errorf("parse tmdb url: %w", err)
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")
	if c.language != "" {
		params.Set("language", c.language)
	}
	if opts.Year > 0 {
		params.Set("year", strconv.Itoa(opts.Year))
	}
	endpoint.RawQuery = params.Encode()

	var payload SearchResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("tmdb search: %w", err)
	}
	return &payload, nil
}

// GetMovieDetails fetches movie details by TMDB ID, including runtime and
// production companies.
func (c *Client) GetMovieDetails(ctx context.Context, movieID int64) (*MovieDetails, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	endpoint, err := url.Parse(fmt.Sprintf("%s/movie/%d", c.baseURL, movieID))
	if err != nil {
		return nil, fmt.Errorf("parse tmdb url: %w", err)
	}
	params := url.Values{}
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	var payload MovieDetails
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("tmdb movie details: %w", err)
	}
	return &payload, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint *url.URL, target any) error {
	if !c.useBearer {
		params := endpoint.Query()
		params.Set("api_key", c.apiKey)
		endpoint.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if c.useBearer {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("returned %d (latency=%v)", resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
