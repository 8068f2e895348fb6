package search

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cinequery/searchservice/internal/domain"
)

var (
	ErrNoProviders = errors.New("no search providers configured")
)

// Provider is one backend capable of producing candidates for a query.
// Implementations report transport and parsing problems as errors; the
// engine absorbs them and moves down the fallback chain.
type Provider interface {
	Name() string
	Info() domain.ProviderInfo
	Search(ctx context.Context, query domain.Query) ([]domain.CandidateResult, error)
}

// Providers lists the configured chain for diagnostics, sorted by name.
func (e *Engine) Providers() []domain.ProviderInfo {
	if len(e.chain) == 0 {
		return nil
	}
	items := make([]domain.ProviderInfo, 0, len(e.chain))
	seen := make(map[string]struct{}, len(e.chain))
	for _, provider := range e.chain {
		info := provider.Info()
		if info.Name == "" {
			info.Name = strings.ToLower(strings.TrimSpace(provider.Name()))
		}
		info.Name = strings.ToLower(strings.TrimSpace(info.Name))
		if info.Name == "" {
			continue
		}
		if _, exists := seen[info.Name]; exists {
			continue
		}
		seen[info.Name] = struct{}{}
		if info.Label == "" {
			info.Label = info.Name
		}
		items = append(items, info)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items
}
