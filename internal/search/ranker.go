package search

import (
	"sort"
	"strings"

	"cinequery/searchservice/internal/domain"
)

// normalizeConfidence maps provider confidences onto [0,1]. Providers stamp
// scores on two scales: curated and extracted paths use 0-100, the heuristic
// scorer already emits 0-1. Anything above 1 is treated as the former.
func normalizeConfidence(confidence float64) float64 {
	if confidence > 1.0 {
		confidence = confidence / 100.0
	}
	if confidence < 0 {
		return 0
	}
	if confidence > 1.0 {
		return 1.0
	}
	return confidence
}

// titlesOverlap reports whether one title case-insensitively contains the
// other. "Inception" and "Inception (Director's Cut)" are the same result.
func titlesOverlap(a, b string) bool {
	left := strings.ToLower(strings.TrimSpace(a))
	right := strings.ToLower(strings.TrimSpace(b))
	if left == "" || right == "" {
		return false
	}
	return strings.Contains(left, right) || strings.Contains(right, left)
}

// rankCandidates normalizes confidences, drops titles overlapping an
// already-kept one (first seen wins), sorts descending by confidence with a
// stable order for ties, and truncates to max. Always returns a non-nil
// slice.
func rankCandidates(candidates []domain.CandidateResult, max int) []domain.CandidateResult {
	ranked := make([]domain.CandidateResult, 0, len(candidates))
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate.Title) == "" {
			continue
		}
		duplicate := false
		for _, kept := range ranked {
			if titlesOverlap(kept.Title, candidate.Title) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		candidate.Confidence = normalizeConfidence(candidate.Confidence)
		ranked = append(ranked, candidate)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})
	if max > 0 && len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}
