// Package search implements the fallback search engine: a fixed provider
// chain walked by a small state machine, followed by confidence
// normalization, dedup and ranking of whatever the walk produced.
package search

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"cinequery/searchservice/internal/domain"
	"cinequery/searchservice/internal/metrics"
)

const (
	// DefaultMaxResults caps the ranked list on the offline path.
	DefaultMaxResults = 5
	// DefaultWebMaxResults caps the ranked list when a network provider
	// produced the candidates.
	DefaultWebMaxResults = 12
)

// fallbackState drives the provider walk. Transitions are strictly linear:
// each state makes a single attempt and either finishes or advances.
type fallbackState int

const (
	tryPrimary fallbackState = iota
	trySecondary
	tryTertiary
	walkDone
)

func (s fallbackState) providerIndex() int { return int(s) }

func (s fallbackState) next() fallbackState {
	if s >= walkDone {
		return walkDone
	}
	return s + 1
}

// Engine walks the provider chain for each query and ranks the outcome. It
// never propagates a provider failure: total outage degrades to an empty
// ranked list.
type Engine struct {
	chain         []Provider
	logger        *slog.Logger
	maxResults    int
	webMaxResults int
	cache         *responseCache
	limits        *providerLimits
	flight        singleflight.Group

	healthMu sync.Mutex
	health   map[string]*providerHealth
}

type EngineOption func(*Engine)

func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func WithMaxResults(max int) EngineOption {
	return func(e *Engine) {
		if max > 0 {
			e.maxResults = max
		}
	}
}

func WithWebMaxResults(max int) EngineOption {
	return func(e *Engine) {
		if max > 0 {
			e.webMaxResults = max
		}
	}
}

// WithCache enables response caching with the given TTL. Zero TTL leaves
// caching off; search is deterministic per provider state, so this is purely
// a load-shedding knob.
func WithCache(ttl time.Duration, backend CacheBackend) EngineOption {
	return func(e *Engine) {
		if ttl > 0 {
			e.cache = newResponseCache(ttl, backend)
		}
	}
}

// WithProviderRateLimit applies a token-bucket limit to network providers.
func WithProviderRateLimit(perMinute int) EngineOption {
	return func(e *Engine) {
		if perMinute > 0 {
			e.limits = newProviderLimits(perMinute)
		}
	}
}

// NewEngine builds an engine over the given chain. Order is priority order;
// only the first three providers participate in the walk.
func NewEngine(chain []Provider, opts ...EngineOption) *Engine {
	kept := make([]Provider, 0, len(chain))
	for _, provider := range chain {
		if provider != nil {
			kept = append(kept, provider)
		}
	}
	engine := &Engine{
		chain:         kept,
		logger:        slog.Default(),
		maxResults:    DefaultMaxResults,
		webMaxResults: DefaultWebMaxResults,
		health:        make(map[string]*providerHealth),
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Search walks the fallback chain and returns a ranked response. It never
// returns an error: an empty or unanswerable query yields an empty item
// list. Concurrent identical queries are collapsed into one walk.
func (e *Engine) Search(ctx context.Context, query domain.Query) domain.SearchResponse {
	query.Text = strings.TrimSpace(query.Text)
	if query.Text == "" || len(e.chain) == 0 {
		return domain.SearchResponse{
			Query: query.Text,
			Items: []domain.CandidateResult{},
		}
	}

	key := cacheKey(query)
	if e.cache != nil {
		if cached, ok := e.cache.get(ctx, key); ok {
			metrics.CacheHitsTotal.Inc()
			return cached
		}
		metrics.CacheMissesTotal.Inc()
	}

	value, _, _ := e.flight.Do(key, func() (any, error) {
		response := e.walk(ctx, query)
		if e.cache != nil && len(response.Items) > 0 {
			e.cache.set(ctx, key, response)
		}
		return response, nil
	})
	return value.(domain.SearchResponse)
}

// walk runs the fallback state machine: a single attempt per provider, a
// failure or empty result advances to the next state, the first non-empty
// result terminates the walk.
func (e *Engine) walk(ctx context.Context, query domain.Query) domain.SearchResponse {
	started := time.Now()

	var (
		collected []domain.CandidateResult
		statuses  []domain.ProviderStatus
		winner    Provider
		attempts  int
	)
	for state := tryPrimary; state != walkDone; state = state.next() {
		idx := state.providerIndex()
		if idx >= len(e.chain) {
			break
		}
		provider := e.chain[idx]
		name := provider.Name()
		attempts++

		if blocked, until, lastErr := e.isProviderBlocked(name, time.Now()); blocked {
			e.logger.Debug("provider blocked, skipping",
				slog.String("provider", name),
				slog.Time("blocked_until", until))
			statuses = append(statuses, domain.ProviderStatus{
				Name: name, OK: false, Error: "temporarily disabled: " + lastErr,
			})
			continue
		}
		if e.limits != nil {
			if err := e.limits.wait(ctx, provider); err != nil {
				statuses = append(statuses, domain.ProviderStatus{
					Name: name, OK: false, Error: err.Error(),
				})
				continue
			}
		}

		attemptStart := time.Now()
		results, err := provider.Search(ctx, query)
		latency := time.Since(attemptStart)
		e.recordProviderResult(name, query.Text, err, latency, time.Now())

		if err != nil {
			e.logger.Warn("provider failed, falling back",
				slog.String("provider", name),
				slog.String("query", query.Text),
				slog.String("error", err.Error()))
			statuses = append(statuses, domain.ProviderStatus{
				Name: name, OK: false, Error: err.Error(),
			})
			continue
		}
		statuses = append(statuses, domain.ProviderStatus{
			Name: name, OK: true, Count: len(results),
		})
		if len(results) == 0 {
			continue
		}

		collected = append(collected, results...)
		winner = provider
		break
	}

	metrics.FallbackDepth.Observe(float64(attempts))
	curated := hasKnowledgeResults(collected)
	if curated {
		metrics.KnowledgeBaseHitsTotal.Inc()
	}

	ranked := rankCandidates(collected, e.rankLimit(winner, curated))
	response := domain.SearchResponse{
		Query:      query.Text,
		Intent:     query.Intent,
		Items:      ranked,
		Providers:  statuses,
		ElapsedMS:  time.Since(started).Milliseconds(),
		TotalItems: len(ranked),
	}
	e.logger.Info("search completed",
		slog.String("query", query.Text),
		slog.Int("items", len(ranked)),
		slog.Int("providers_tried", attempts),
		slog.Int64("elapsed_ms", response.ElapsedMS))
	return response
}

// rankLimit picks the result cap for the path that won the walk. The tight
// cap applies only to heuristically scored offline results; web extraction
// may return more loosely-matched candidates, and curated knowledge-base
// lists are small by construction and ship whole.
func (e *Engine) rankLimit(winner Provider, curated bool) int {
	if curated {
		return e.webMaxResults
	}
	if winner == nil || winner.Info().Kind == "offline" {
		return e.maxResults
	}
	return e.webMaxResults
}

func hasKnowledgeResults(results []domain.CandidateResult) bool {
	for _, r := range results {
		if r.Source == "knowledge-base" {
			return true
		}
	}
	return false
}
