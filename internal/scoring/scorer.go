// Package scoring implements the heuristic relevance scorer over the static
// catalog: additive weighted signal matching between a normalized query and
// each catalog entry's annotations.
package scoring

import (
	"sort"
	"strings"

	"cinequery/searchservice/internal/catalog"
	"cinequery/searchservice/internal/domain"
	"cinequery/searchservice/internal/textnorm"
)

// Additive weights per signal. Title and people matches are strong explicit
// signals; keyword and genre matches are weaker implicit ones. Intent is a
// boost, not a filter.
const (
	weightTitle    = 10
	weightPlot     = 5
	weightKeyword  = 3
	weightGenre    = 4
	weightPeople   = 6
	weightIntent   = 5
	minScore       = 3 // entries scoring <= minScore are dropped
	scoreCeiling   = 20.0
	DefaultMaxHits = 5
)

// Scorer ranks catalog entries against a query. Safe for concurrent use.
type Scorer struct {
	catalog *catalog.Catalog
	maxHits int
}

// New builds a scorer over the given catalog. maxHits <= 0 falls back to
// DefaultMaxHits.
func New(c *catalog.Catalog, maxHits int) *Scorer {
	if maxHits <= 0 {
		maxHits = DefaultMaxHits
	}
	return &Scorer{catalog: c, maxHits: maxHits}
}

// Score ranks the catalog against the query and returns up to maxHits
// candidates sorted by descending confidence. Confidence is on the [0,1]
// scale (raw score divided by scoreCeiling, capped at 1.0). An empty query
// yields no candidates.
func (s *Scorer) Score(meta textnorm.QueryMeta, intent domain.Intent) []domain.CandidateResult {
	if meta.Empty() {
		return nil
	}

	type scored struct {
		entry catalog.Entry
		score int
	}
	var hits []scored
	for _, entry := range s.catalog.Entries() {
		score := scoreEntry(entry, meta, intent)
		if score <= minScore {
			continue
		}
		hits = append(hits, scored{entry: entry, score: score})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
	if len(hits) > s.maxHits {
		hits = hits[:s.maxHits]
	}

	out := make([]domain.CandidateResult, 0, len(hits))
	for _, h := range hits {
		confidence := float64(h.score) / scoreCeiling
		if confidence > 1.0 {
			confidence = 1.0
		}
		out = append(out, domain.CandidateResult{
			Title:       h.entry.Title,
			Year:        h.entry.Year,
			Description: h.entry.Plot,
			Rating:      h.entry.Rating,
			Genres:      h.entry.Genres,
			MediaType:   h.entry.MediaType,
			Source:      "simulation",
			Confidence:  confidence,
		})
	}
	return out
}

func scoreEntry(entry catalog.Entry, meta textnorm.QueryMeta, intent domain.Intent) int {
	score := 0

	title := strings.ToLower(entry.Title)
	if strings.Contains(meta.Normalized, title) || strings.Contains(title, meta.Normalized) {
		score += weightTitle
	}

	plot := strings.ToLower(entry.Plot)
	if plot != "" && strings.Contains(plot, meta.Normalized) {
		score += weightPlot
	}

	people := strings.ToLower(entry.Director + " " + strings.Join(entry.Cast, " "))
	for _, token := range meta.Tokens {
		if tokenMatchesAny(token, entry.Keywords) {
			score += weightKeyword
		}
		if tokenMatchesAny(token, entry.Genres) {
			score += weightGenre
		}
		if strings.Contains(people, token) {
			score += weightPeople
		}
	}

	if intentMatches(intent, entry) {
		score += weightIntent
	}
	return score
}

// tokenMatchesAny reports whether the token is a substring of any tag or any
// tag is a substring of the token, case-insensitively.
func tokenMatchesAny(token string, tags []string) bool {
	for _, tag := range tags {
		lowered := strings.ToLower(tag)
		if strings.Contains(lowered, token) || strings.Contains(token, lowered) {
			return true
		}
	}
	return false
}

// intentMatches applies the fixed intent boost rules: "family" matches the
// Family genre or a "family" keyword, "comedy" and "drama" match their
// genres, "inspiring" matches the "inspiring" keyword. Unknown intents match
// nothing.
func intentMatches(intent domain.Intent, entry catalog.Entry) bool {
	switch intent {
	case domain.IntentFamily:
		return hasTag(entry.Genres, "family") || hasTag(entry.Keywords, "family")
	case domain.IntentComedy:
		return hasTag(entry.Genres, "comedy")
	case domain.IntentDrama:
		return hasTag(entry.Genres, "drama")
	case domain.IntentInspiring:
		return hasTag(entry.Keywords, "inspiring")
	default:
		return false
	}
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if strings.EqualFold(tag, want) {
			return true
		}
	}
	return false
}
