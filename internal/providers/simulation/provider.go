// Package simulation implements the offline search adapter: curated
// knowledge-base lookup first, heuristic catalog scoring otherwise. It is
// the terminal link of the fallback chain and never fails.
package simulation

import (
	"context"

	"cinequery/searchservice/internal/domain"
	"cinequery/searchservice/internal/knowledge"
	"cinequery/searchservice/internal/scoring"
	"cinequery/searchservice/internal/textnorm"
)

type Provider struct {
	knowledge *knowledge.Base
	scorer    *scoring.Scorer
}

func NewProvider(base *knowledge.Base, scorer *scoring.Scorer) *Provider {
	return &Provider{knowledge: base, scorer: scorer}
}

func (p *Provider) Name() string {
	return "simulation"
}

func (p *Provider) Info() domain.ProviderInfo {
	return domain.ProviderInfo{
		Name:    p.Name(),
		Label:   "Offline catalog",
		Kind:    "offline",
		Enabled: true,
	}
}

// Search never returns an error: a query nothing matches yields an empty
// slice. Curated knowledge-base answers take precedence over scored ones.
func (p *Provider) Search(_ context.Context, query domain.Query) ([]domain.CandidateResult, error) {
	meta := textnorm.Parse(query.Text)
	if meta.Empty() {
		return []domain.CandidateResult{}, nil
	}

	if p.knowledge != nil {
		if curated := p.knowledge.Lookup(meta.Normalized); len(curated) > 0 {
			return curated, nil
		}
	}
	if p.scorer == nil {
		return []domain.CandidateResult{}, nil
	}
	scored := p.scorer.Score(meta, query.Intent)
	if scored == nil {
		scored = []domain.CandidateResult{}
	}
	return scored, nil
}
