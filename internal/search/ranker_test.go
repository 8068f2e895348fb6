package search

import (
	"testing"

	"cinequery/searchservice/internal/domain"
)

func TestNormalizeConfidence(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{95, 0.95},
		{75, 0.75},
		{100, 1.0},
		{0.6, 0.6},
		{1.0, 1.0},
		{0, 0},
		{-3, 0},
		{250, 1.0},
	}
	for _, tc := range cases {
		if got := normalizeConfidence(tc.in); got != tc.want {
			t.Errorf("normalizeConfidence(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTitlesOverlap(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Inception", "inception", true},
		{"Inception", "Inception (2010)", true},
		{"The Wire", "Wire", true},
		{"Memento", "Inception", false},
		{"", "Inception", false},
	}
	for _, tc := range cases {
		if got := titlesOverlap(tc.a, tc.b); got != tc.want {
			t.Errorf("titlesOverlap(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestRankCandidatesDedupFirstSeenWins(t *testing.T) {
	ranked := rankCandidates([]domain.CandidateResult{
		{Title: "Inception", Source: "knowledge-base", Confidence: 93},
		{Title: "Inception (2010)", Source: "web-scrape", Confidence: 75},
		{Title: "Memento", Confidence: 93},
	}, 5)

	if len(ranked) != 2 {
		t.Fatalf("expected 2 entries after dedup, got %+v", ranked)
	}
	for _, r := range ranked {
		if r.Title == "Inception" && r.Source != "knowledge-base" {
			t.Fatalf("first seen entry must win: %+v", r)
		}
	}
}

func TestRankCandidatesSortsAndTruncates(t *testing.T) {
	ranked := rankCandidates([]domain.CandidateResult{
		{Title: "Low", Confidence: 40},
		{Title: "High", Confidence: 98},
		{Title: "Mid", Confidence: 0.75}, // already normalized scale
	}, 2)

	if len(ranked) != 2 {
		t.Fatalf("expected truncation to 2, got %d", len(ranked))
	}
	if ranked[0].Title != "High" || ranked[1].Title != "Mid" {
		t.Fatalf("unexpected order: %+v", ranked)
	}
	if ranked[0].Confidence != 0.98 {
		t.Fatalf("confidence not normalized: %v", ranked[0].Confidence)
	}
}

func TestRankCandidatesSkipsBlankTitles(t *testing.T) {
	ranked := rankCandidates([]domain.CandidateResult{
		{Title: "   ", Confidence: 99},
		{Title: "Real", Confidence: 50},
	}, 5)
	if len(ranked) != 1 || ranked[0].Title != "Real" {
		t.Fatalf("blank titles must be dropped: %+v", ranked)
	}
}

func TestRankCandidatesAlwaysNonNil(t *testing.T) {
	if got := rankCandidates(nil, 5); got == nil {
		t.Fatal("expected non-nil slice")
	}
}
