package vimeo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// videoPathPattern matches canonical video paths like /123456789.
var videoPathPattern = regexp.MustCompile(`^/(\d+)$`)

// Scraper searches vimeo.com/search pages directly. It is a degraded
// fallback for runs without an API token: each hit's own page is fetched to
// recover duration and description, since the search page exposes neither.
// Engagement counters are never available this way and stay unknown.
type Scraper struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Searcher = (*Scraper)(nil)

// NewScraper creates a scrape-based searcher against the given site base URL
// (normally https://vimeo.com).
func NewScraper(baseURL string, requestsPerSecond float64) (*Scraper, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("vimeo site url required")
	}
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &Scraper{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 20 * time.Second},
		limiter:    rate.NewLimiter(limit, 1),
	}, nil
}

// Search scrapes one page of search results. perPage is ignored; the site
// decides page size.
func (s *Scraper) Search(ctx context.Context, query string, perPage, page int) (Page, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Page{}, errors.New("query must not be empty")
	}
	if page <= 0 {
		page = 1
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return Page{}, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := fmt.Sprintf("%s/search?q=%s&page=%d", s.baseURL, url.QueryEscape(query), page)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Page{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Page{}, fmt.Errorf("vimeo search page returned %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return Page{}, fmt.Errorf("parse search page: %w", err)
	}

	seen := make(map[string]bool)
	var videos []Video
	var ids []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		match := videoPathPattern.FindStringSubmatch(href)
		if match == nil {
			return
		}
		id := match[1]
		if seen[id] {
			return
		}
		seen[id] = true

		title := strings.TrimSpace(sel.Text())
		if title == "" {
			title, _ = sel.Attr("aria-label")
			title = strings.TrimSpace(title)
		}
		if title == "" {
			title = "Video " + id
		}
		videos = append(videos, Video{
			Title: title,
			URL:   s.baseURL + "/" + id,
		})
		ids = append(ids, id)
	})

	for i := range videos {
		if err := s.enrich(ctx, &videos[i], ids[i]); err != nil {
			if ctx.Err() != nil {
				return Page{}, err
			}
			// An unreadable video page keeps what the search page showed.
		}
	}

	return Page{Videos: videos, HasNext: len(videos) > 0}, nil
}

// enrich fetches a video's own page and fills in duration, description, and
// a better title when the search page only gave a placeholder.
func (s *Scraper) enrich(ctx context.Context, video *Video, id string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+id, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("vimeo video page returned %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return fmt.Errorf("parse video page: %w", err)
	}

	if content, ok := doc.Find(`meta[property="og:video:duration"]`).Attr("content"); ok {
		if seconds, err := strconv.Atoi(strings.TrimSpace(content)); err == nil && seconds > 0 {
			video.Duration = seconds
		}
	}
	if content, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		if description := strings.TrimSpace(content); description != "" {
			video.Description = description
		}
	}
	if title := strings.TrimSpace(doc.Find("h1").First().Text()); title != "" {
		if video.Title == "" || video.Title == "Video "+id {
			video.Title = title
		}
	}
	return nil
}
