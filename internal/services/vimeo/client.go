package vimeo

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

	"golang.org/x/time/rate"
)

// Video is one search result with the engagement signals downstream stages
// score on. Counter fields are nil when the API omits them.
type Video struct {
	Title       string
	URL         string
	Description string
	Duration    int
	CreatedTime string
	Plays       *int64
	Likes       *int64
	Comments    *int64
	AuthorName  string
	AuthorURL   string
	Tags        []string
	Categories  []string
}

// Page is one page of search results. HasNext reports whether another page
// exists.
type Page struct {
	Videos  []Video
	HasNext bool
}

// Searcher is the search surface the collector consumes. Both the API client
// and the scrape fallback implement it.
type Searcher interface {
	Search(ctx context.Context, query string, perPage, page int) (Page, error)
}

const (
	acceptHeader  = "application/vnd.vimeo.*+json;version=3.4"
	requestFields = "name,link,description,duration,created_time,stats.plays," +
		"metadata.connections.likes.total,metadata.connections.comments.total," +
		"user.name,user.link,tags.name,categories.name"
)

// Client searches the Vimeo API. Requests are paced by a shared rate
// limiter so multi-query collection stays under the API quota.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Searcher = (*Client)(nil)

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

// NewClient creates a Vimeo API client. requestsPerSecond bounds the request
// rate; values <= 0 disable pacing.
func NewClient(token, baseURL string, requestsPerSecond float64, opts ...Option) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("vimeo access token required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("vimeo base url required")
	}
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	client := &Client{
		token:      token,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(limit, 1),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

type apiVideo struct {
	Name        string `json:"name"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	CreatedTime string `json:"created_time"`
	Stats       struct {
		Plays *int64 `json:"plays"`
	} `json:"stats"`
	Metadata struct {
		Connections struct {
			Likes struct {
				Total *int64 `json:"total"`
			} `json:"likes"`
			Comments struct {
				Total *int64 `json:"total"`
			} `json:"comments"`
		} `json:"connections"`
	} `json:"metadata"`
	User struct {
		Name string `json:"name"`
		Link string `json:"link"`
	} `json:"user"`
	Tags []struct {
		Name string `json:"name"`
	} `json:"tags"`
	Categories []struct {
		Name string `json:"name"`
	} `json:"categories"`
}

type searchResponse struct {
	Data   []apiVideo `json:"data"`
	Paging struct {
		Next *string `json:"next"`
	} `json:"paging"`
}

// Search fetches one page of Creative Commons video results for the query,
// sorted by relevance.
func (c *Client) Search(ctx context.Context, query string, perPage, page int) (Page, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Page{}, errors.New("query must not be empty")
	}
	if perPage <= 0 {
		perPage = 25
	}
	if page <= 0 {
		page = 1
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return Page{}, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint, err := url.Parse(c.baseURL + "/videos")
	if err != nil {
		return Page{}, fmt.Errorf("parse vimeo url: %w", err)
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(page))
	params.Set("sort", "relevant")
	params.Set("filter", "CC")
	params.Set("fields", requestFields)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return Page{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Page{}, fmt.Errorf("vimeo search returned %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Page{}, fmt.Errorf("decode response: %w", err)
	}

	result := Page{
		Videos:  make([]Video, 0, len(payload.Data)),
		HasNext: payload.Paging.Next != nil,
	}
	for _, item := range payload.Data {
		video := Video{
			Title:       item.Name,
			URL:         item.Link,
			Description: item.Description,
			Duration:    item.Duration,
			CreatedTime: item.CreatedTime,
			Plays:       item.Stats.Plays,
			Likes:       item.Metadata.Connections.Likes.Total,
			Comments:    item.Metadata.Connections.Comments.Total,
			AuthorName:  item.User.Name,
			AuthorURL:   item.User.Link,
		}
		for _, tag := range item.Tags {
			if tag.Name != "" {
				video.Tags = append(video.Tags, tag.Name)
			}
		}
		for _, category := range item.Categories {
			if category.Name != "" {
				video.Categories = append(video.Categories, category.Name)
			}
		}
		result.Videos = append(result.Videos, video)
	}
	return result, nil
}
