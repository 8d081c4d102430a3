package vimeo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const searchPayload = `{
  "data": [
    {
      "name": "The Cabinet of Dr. Caligari",
      "link": "https://vimeo.com/123456",
      "description": "1920 German expressionist silent film",
      "duration": 4620,
      "created_time": "2019-03-01T00:00:00+00:00",
      "stats": {"plays": 150000},
      "metadata": {"connections": {"likes": {"total": 420}, "comments": {"total": 35}}},
      "user": {"name": "Silent Archive", "link": "https://vimeo.com/silentarchive"},
      "tags": [{"name": "silent"}, {"name": "expressionism"}],
      "categories": [{"name": "Narrative"}]
    },
    {
      "name": "Untracked Short",
      "link": "https://vimeo.com/654321",
      "description": "",
      "duration": 600,
      "created_time": "2021-06-01T00:00:00+00:00",
      "stats": {"plays": null},
      "metadata": {"connections": {"likes": {"total": null}, "comments": {"total": null}}},
      "user": {"name": "Someone", "link": "https://vimeo.com/someone"},
      "tags": [],
      "categories": []
    }
  ],
  "paging": {"next": "/videos?page=2"}
}`

func TestSearchParsesVideosAndPaging(t *testing.T) {
	var gotAuth, gotAccept string
	var gotParams map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotParams = map[string]string{
			"query":    r.URL.Query().Get("query"),
			"per_page": r.URL.Query().Get("per_page"),
			"page":     r.URL.Query().Get("page"),
			"sort":     r.URL.Query().Get("sort"),
			"filter":   r.URL.Query().Get("filter"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchPayload))
	}))
	defer server.Close()

	client, err := NewClient("test-token", server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	page, err := client.Search(context.Background(), "1950s feature film", 25, 2)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotAccept != acceptHeader {
		t.Errorf("Accept = %q, want %q", gotAccept, acceptHeader)
	}
	want := map[string]string{
		"query": "1950s feature film", "per_page": "25", "page": "2",
		"sort": "relevant", "filter": "CC",
	}
	for key, value := range want {
		if gotParams[key] != value {
			t.Errorf("param %s = %q, want %q", key, gotParams[key], value)
		}
	}

	if !page.HasNext {
		t.Error("HasNext = false, want true")
	}
	if len(page.Videos) != 2 {
		t.Fatalf("got %d videos, want 2", len(page.Videos))
	}
	first := page.Videos[0]
	if first.Title != "The Cabinet of Dr. Caligari" || first.Duration != 4620 {
		t.Errorf("unexpected first video: %+v", first)
	}
	if first.Plays == nil || *first.Plays != 150000 {
		t.Errorf("Plays = %v, want 150000", first.Plays)
	}
	if len(first.Tags) != 2 || first.Tags[0] != "silent" {
		t.Errorf("Tags = %v", first.Tags)
	}
	second := page.Videos[1]
	if second.Plays != nil || second.Likes != nil || second.Comments != nil {
		t.Errorf("expected nil counters on second video: %+v", second)
	}
}

func TestSearchLastPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[],"paging":{"next":null}}`))
	}))
	defer server.Close()

	client, err := NewClient("test-token", server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	page, err := client.Search(context.Background(), "anything", 25, 1)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if page.HasNext {
		t.Error("HasNext = true, want false")
	}
	if len(page.Videos) != 0 {
		t.Errorf("got %d videos, want 0", len(page.Videos))
	}
}

func TestSearchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewClient("test-token", server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := client.Search(context.Background(), "anything", 25, 1); err == nil {
		t.Fatal("expected error for 429 response")
	}
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	client, err := NewClient("test-token", "https://api.vimeo.com", 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := client.Search(context.Background(), "  ", 25, 1); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "https://api.vimeo.com", 0); err == nil {
		t.Error("expected error for empty token")
	}
	if _, err := NewClient("token", "", 0); err == nil {
		t.Error("expected error for empty base url")
	}
}
