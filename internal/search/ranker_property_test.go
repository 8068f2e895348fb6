//go:build property
// +build property

package search

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"cinequery/searchservice/internal/domain"
)

func genCandidates() gopter.Gen {
	genCandidate := gopter.CombineGens(
		gen.AlphaString(),
		gen.Float64Range(-10, 250),
	).Map(func(values []interface{}) domain.CandidateResult {
		return domain.CandidateResult{
			Title:      values[0].(string),
			Confidence: values[1].(float64),
		}
	})
	return gen.SliceOf(genCandidate)
}

func TestPropertyRankedConfidenceInUnitRange(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every ranked confidence lies in [0,1]", prop.ForAll(
		func(candidates []domain.CandidateResult) bool {
			for _, r := range rankCandidates(candidates, 12) {
				if r.Confidence < 0 || r.Confidence > 1 {
					return false
				}
			}
			return true
		},
		genCandidates(),
	))

	properties.TestingRun(t)
}

func TestPropertyRankedTitlesNeverOverlap(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("no two ranked titles contain each other", prop.ForAll(
		func(candidates []domain.CandidateResult) bool {
			ranked := rankCandidates(candidates, 12)
			for i := range ranked {
				for j := i + 1; j < len(ranked); j++ {
					left := strings.ToLower(ranked[i].Title)
					right := strings.ToLower(ranked[j].Title)
					if strings.Contains(left, right) || strings.Contains(right, left) {
						return false
					}
				}
			}
			return true
		},
		genCandidates(),
	))

	properties.TestingRun(t)
}

func TestPropertyRankedLengthBounded(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("ranked list never exceeds the maximum", prop.ForAll(
		func(candidates []domain.CandidateResult, max int) bool {
			return len(rankCandidates(candidates, max)) <= max
		},
		genCandidates(),
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}

func TestPropertyRankingIdempotent(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("ranking an already-ranked list changes nothing", prop.ForAll(
		func(candidates []domain.CandidateResult) bool {
			once := rankCandidates(candidates, 12)
			twice := rankCandidates(once, 12)
			if len(once) != len(twice) {
				return false
			}
			for i := range once {
				if once[i].Title != twice[i].Title || once[i].Confidence != twice[i].Confidence {
					return false
				}
			}
			return true
		},
		genCandidates(),
	))

	properties.TestingRun(t)
}
