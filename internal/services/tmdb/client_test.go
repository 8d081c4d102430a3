package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchMovieSendsAPIKeyParam(t *testing.T) {
	var gotQuery, gotKey, gotYear, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotKey = r.URL.Query().Get("api_key")
		gotYear = r.URL.Query().Get("year")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":1,"results":[{"id":599,"title":"Sunset Boulevard","release_date":"1950-08-10","popularity":21.5}],"total_pages":1,"total_results":1}`))
	}))
	defer server.Close()

	client, err := New("plain-key", server.URL, "en-US")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	resp, err := client.SearchMovie(context.Background(), "Sunset Boulevard", SearchOptions{Year: 1950})
	if err != nil {
		t.Fatalf("SearchMovie returned error: %v", err)
	}
	if gotQuery != "Sunset Boulevard" {
		t.Errorf("query = %q, want %q", gotQuery, "Sunset Boulevard")
	}
	if gotKey != "plain-key" {
		t.Errorf("api_key = %q, want %q", gotKey, "plain-key")
	}
	if gotYear != "1950" {
		t.Errorf("year = %q, want %q", gotYear, "1950")
	}
	if gotAuth != "" {
		t.Errorf("Authorization header = %q, want empty", gotAuth)
	}
	if len(resp.Results) != 1 || resp.Results[0].ID != 599 {
		t.Fatalf("unexpected results: %+v", resp.Results)
	}
}

func TestSearchMovieUsesBearerForJWTKeys(t *testing.T) {
	var gotKey, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":1,"results":[],"total_pages":0,"total_results":0}`))
	}))
	defer server.Close()

	client, err := New("eyJhbGciOiJIUzI1NiJ9.test", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.SearchMovie(context.Background(), "Metropolis", SearchOptions{}); err != nil {
		t.Fatalf("SearchMovie returned error: %v", err)
	}
	if gotKey != "" {
		t.Errorf("api_key param = %q, want empty for bearer auth", gotKey)
	}
	if gotAuth != "Bearer eyJhbGciOiJIUzI1NiJ9.test" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestGetMovieDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/599" {
			t.Errorf("path = %q, want /movie/599", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":599,"title":"Sunset Boulevard","release_date":"1950-08-10","runtime":110,"production_companies":[{"id":4,"name":"Paramount Pictures"}]}`))
	}))
	defer server.Close()

	client, err := New("plain-key", server.URL, "en-US")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	details, err := client.GetMovieDetails(context.Background(), 599)
	if err != nil {
		t.Fatalf("GetMovieDetails returned error: %v", err)
	}
	if details.Runtime != 110 {
		t.Errorf("Runtime = %d, want 110", details.Runtime)
	}
	if len(details.ProductionCompanies) != 1 || details.ProductionCompanies[0].Name != "Paramount Pictures" {
		t.Errorf("ProductionCompanies = %+v", details.ProductionCompanies)
	}
	year, ok := details.ReleaseYear()
	if !ok || year != 1950 {
		t.Errorf("ReleaseYear = %d, %v; want 1950, true", year, ok)
	}
}

func TestReleaseYearMalformed(t *testing.T) {
	for _, date := range []string{"", "19", "abcd-01-01"} {
		d := MovieDetails{ReleaseDate: date}
		if _, ok := d.ReleaseYear(); ok {
			t.Errorf("ReleaseYear(%q) ok = true, want false", date)
		}
	}
}

func TestGetMovieDetailsNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client, err := New("plain-key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.GetMovieDetails(context.Background(), 12345); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New("", "https://api.themoviedb.org/3", ""); err == nil {
		t.Error("expected error for empty api key")
	}
	if _, err := New("key", "", ""); err == nil {
		t.Error("expected error for empty base url")
	}
}
