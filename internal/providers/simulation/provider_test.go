package simulation

import (
	"context"
	"testing"

	"cinequery/searchservice/internal/catalog"
	"cinequery/searchservice/internal/domain"
	"cinequery/searchservice/internal/knowledge"
	"cinequery/searchservice/internal/scoring"
)

func newDefaultProvider() *Provider {
	return NewProvider(knowledge.Default(), scoring.New(catalog.Default(), 5))
}

func TestSearchPrefersKnowledgeBase(t *testing.T) {
	provider := newDefaultProvider()

	results, err := provider.Search(context.Background(), domain.Query{
		Text: "movies or tv shows that require a lot of thinking",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 6 {
		t.Fatalf("expected the 6 curated entries, got %d", len(results))
	}
	if results[0].Title != "Donnie Darko" {
		t.Fatalf("unexpected first entry %q", results[0].Title)
	}
	for _, r := range results {
		if r.Source != "knowledge-base" {
			t.Fatalf("curated path must stamp knowledge-base source, got %q", r.Source)
		}
	}
}

func TestSearchFallsBackToScorer(t *testing.T) {
	provider := newDefaultProvider()

	results, err := provider.Search(context.Background(), domain.Query{
		Text: "inspiring true story about space",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected scored results")
	}
	if results[0].Title != "Hidden Figures" {
		t.Fatalf("expected Hidden Figures first, got %q", results[0].Title)
	}
	if results[0].Source != "simulation" {
		t.Fatalf("scored path must stamp simulation source, got %q", results[0].Source)
	}
}

func TestSearchNeverErrors(t *testing.T) {
	provider := newDefaultProvider()

	for _, text := range []string{"", "   ", "zxqwv unmatchable gibberish"} {
		results, err := provider.Search(context.Background(), domain.Query{Text: text})
		if err != nil {
			t.Fatalf("Search(%q) returned error: %v", text, err)
		}
		if results == nil {
			t.Fatalf("Search(%q) returned nil slice", text)
		}
	}
}

func TestSearchInfo(t *testing.T) {
	info := newDefaultProvider().Info()
	if info.Kind != "offline" || !info.Enabled {
		t.Fatalf("unexpected info: %+v", info)
	}
}
