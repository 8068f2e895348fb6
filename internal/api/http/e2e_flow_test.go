package apihttp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinequery/searchservice/internal/catalog"
	"cinequery/searchservice/internal/domain"
	"cinequery/searchservice/internal/knowledge"
	"cinequery/searchservice/internal/providers/simulation"
	"cinequery/searchservice/internal/scoring"
	"cinequery/searchservice/internal/search"
)

// downProvider stands in for a network provider that is hard down.
type downProvider struct {
	name string
}

func (d *downProvider) Name() string { return d.name }

func (d *downProvider) Info() domain.ProviderInfo {
	return domain.ProviderInfo{Name: d.name, Label: d.name, Kind: "scrape", Enabled: true}
}

func (d *downProvider) Search(context.Context, domain.Query) ([]domain.CandidateResult, error) {
	return nil, errors.New("connection refused")
}

// newDegradedStack wires the full engine with every network provider failing,
// so each request falls through to the offline catalog.
func newDegradedStack() http.Handler {
	offline := simulation.NewProvider(knowledge.Default(), scoring.New(catalog.Default(), 5))
	engine := search.NewEngine([]search.Provider{
		&downProvider{name: "web-scrape"},
		&downProvider{name: "remote-api"},
		offline,
	})
	return NewServer(engine).Handler()
}

func searchJSON(t *testing.T, handler http.Handler, target string) domain.SearchResponse {
	t.Helper()
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", recorder.Code, recorder.Body.String())
	}
	var payload domain.SearchResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload
}

func TestFlowCuratedQueryThroughFullStack(t *testing.T) {
	handler := newDegradedStack()

	payload := searchJSON(t, handler, "/search?q=movies+or+tv+shows+that+require+a+lot+of+thinking")
	if len(payload.Items) != 6 {
		t.Fatalf("expected 6 curated items, got %d: %+v", len(payload.Items), payload.Items)
	}
	if payload.Items[0].Title != "Donnie Darko" || payload.Items[1].Title != "Black Mirror" {
		t.Fatalf("unexpected top entries: %q, %q", payload.Items[0].Title, payload.Items[1].Title)
	}
	if payload.Items[0].Confidence != 0.95 || payload.Items[1].Confidence != 0.95 {
		t.Fatalf("expected tied top confidence 0.95, got %v and %v",
			payload.Items[0].Confidence, payload.Items[1].Confidence)
	}
	for _, item := range payload.Items {
		if item.Confidence < 0.90 || item.Confidence > 1.0 {
			t.Fatalf("confidence out of curated range: %+v", item)
		}
	}
}

func TestFlowPartialPhraseMatch(t *testing.T) {
	handler := newDegradedStack()

	payload := searchJSON(t, handler, "/search?q=man+age+backwards")
	if len(payload.Items) != 1 {
		t.Fatalf("expected a single item, got %+v", payload.Items)
	}
	got := payload.Items[0]
	if got.Title != "The Curious Case of Benjamin Button" || got.Year != 2008 {
		t.Fatalf("unexpected item: %+v", got)
	}
	if got.Confidence < 0.95 {
		t.Fatalf("confidence = %v, want >= 0.95", got.Confidence)
	}
}

func TestFlowHeuristicScoringPath(t *testing.T) {
	handler := newDegradedStack()

	payload := searchJSON(t, handler, "/search?q=inspiring+true+story+about+space")
	if len(payload.Items) == 0 {
		t.Fatal("expected scored items")
	}
	if payload.Items[0].Title != "Hidden Figures" {
		t.Fatalf("expected Hidden Figures on top, got %q", payload.Items[0].Title)
	}
	for _, item := range payload.Items {
		if item.Confidence < 0 || item.Confidence > 1 {
			t.Fatalf("confidence out of range: %+v", item)
		}
	}
}

func TestFlowNoMatchesYieldsEmptyList(t *testing.T) {
	handler := newDegradedStack()

	payload := searchJSON(t, handler, "/search?q=zxqwv+unmatchable+gibberish")
	if payload.Items == nil {
		t.Fatal("items must be an empty list, not null")
	}
	if len(payload.Items) != 0 {
		t.Fatalf("expected no items, got %+v", payload.Items)
	}
}

func TestFlowProviderStatusesReported(t *testing.T) {
	handler := newDegradedStack()

	payload := searchJSON(t, handler, "/search?q=anything+at+all")
	if len(payload.Providers) != 3 {
		t.Fatalf("expected 3 provider statuses, got %+v", payload.Providers)
	}
	okCount := 0
	for _, status := range payload.Providers {
		if status.OK {
			okCount++
		}
	}
	if okCount != 1 {
		t.Fatalf("only the offline provider should succeed: %+v", payload.Providers)
	}
}
