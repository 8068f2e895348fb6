// Package knowledge holds the curated phrase-to-results mapping used to
// answer well-known descriptive queries without touching the catalog scorer
// or any remote provider.
package knowledge

import (
	"strings"

	"cinequery/searchservice/internal/domain"
)

// Entry maps a normalized phrase to the curated results it should yield.
// Confidence values on the results use the 0-100 scale and are normalized
// by the ranker before leaving the service.
type Entry struct {
	Phrase  string
	Results []domain.CandidateResult
}

// Base is an ordered collection of entries. Order matters: partial matches
// resolve to the first entry that overlaps the query, so more specific
// phrases should be listed before generic ones.
type Base struct {
	entries []Entry
}

// New builds a base from the given entries. Phrases are normalized to
// lowercase; entries with empty phrases are skipped.
func New(entries []Entry) *Base {
	b := &Base{entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		phrase := strings.ToLower(strings.TrimSpace(e.Phrase))
		if phrase == "" {
			continue
		}
		b.entries = append(b.entries, Entry{Phrase: phrase, Results: e.Results})
	}
	return b
}

// Lookup resolves a normalized query against the base. Exact phrase matches
// win; otherwise the first entry whose phrase contains the query or is
// contained by it is returned. A nil slice means no curated answer exists.
func (b *Base) Lookup(normalizedQuery string) []domain.CandidateResult {
	if normalizedQuery == "" {
		return nil
	}
	for _, e := range b.entries {
		if e.Phrase == normalizedQuery {
			return cloneResults(e.Results)
		}
	}
	for _, e := range b.entries {
		if strings.Contains(e.Phrase, normalizedQuery) || strings.Contains(normalizedQuery, e.Phrase) {
			return cloneResults(e.Results)
		}
	}
	return nil
}

// Phrases returns the known phrases in definition order. Used by diagnostics.
func (b *Base) Phrases() []string {
	out := make([]string, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.Phrase
	}
	return out
}

func cloneResults(in []domain.CandidateResult) []domain.CandidateResult {
	out := make([]domain.CandidateResult, len(in))
	copy(out, in)
	return out
}
