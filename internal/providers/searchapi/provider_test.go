package searchapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinequery/searchservice/internal/domain"
)

func TestSearchRequiresCredential(t *testing.T) {
	provider := NewProvider(Config{Endpoint: "http://api.invalid"})

	_, err := provider.Search(context.Background(), domain.Query{Text: "anything"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if provider.Info().Enabled {
		t.Fatal("provider without credential must report disabled")
	}
}

func TestSearchDecodesResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.URL.Query().Get("q"); got != "space movies" {
			t.Errorf("q = %q", got)
		}
		if got := r.URL.Query().Get("intent"); got != "inspiring" {
			t.Errorf("intent = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[
			{"title":"Apollo 13","year":1995,"mediaType":"movie","confidence":88},
			{"title":"  ","year":2000},
			{"title":"For All Mankind","mediaType":"tv"}
		]}`))
	}))
	defer server.Close()

	provider := NewProvider(Config{Endpoint: server.URL, APIKey: "secret", Client: server.Client()})

	results, err := provider.Search(context.Background(), domain.Query{Text: "space movies", Intent: domain.IntentInspiring})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results (blank title skipped), got %v", results)
	}
	if results[0].Title != "Apollo 13" || results[0].Confidence != 88 {
		t.Fatalf("unexpected first result: %+v", results[0])
	}
	if results[0].Source != "remote-api" {
		t.Fatalf("unexpected source %q", results[0].Source)
	}
	if results[1].Confidence != 80 {
		t.Fatalf("missing score should default to 80, got %v", results[1].Confidence)
	}
	if results[1].MediaType != domain.MediaTypeTV {
		t.Fatalf("unexpected media type %q", results[1].MediaType)
	}
}

func TestSearchNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := NewProvider(Config{Endpoint: server.URL, APIKey: "secret", Client: server.Client()})
	if _, err := provider.Search(context.Background(), domain.Query{Text: "anything"}); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestSearchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	provider := NewProvider(Config{Endpoint: server.URL, APIKey: "secret", Client: server.Client()})
	if _, err := provider.Search(context.Background(), domain.Query{Text: "anything"}); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSearchCapsResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"title":"A"},{"title":"B"},{"title":"C"}]}`))
	}))
	defer server.Close()

	provider := NewProvider(Config{Endpoint: server.URL, APIKey: "secret", Client: server.Client(), MaxResults: 2})
	results, err := provider.Search(context.Background(), domain.Query{Text: "anything"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}
