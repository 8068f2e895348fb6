package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// providerLimits holds one token bucket per network provider. The offline
// provider is exempt: it costs nothing and must stay reachable as the
// terminal fallback.
type providerLimits struct {
	perMinute int
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
}

func newProviderLimits(perMinute int) *providerLimits {
	return &providerLimits{
		perMinute: perMinute,
		limiters:  make(map[string]*rate.Limiter),
	}
}

func (l *providerLimits) wait(ctx context.Context, provider Provider) error {
	if provider.Info().Kind == "offline" {
		return nil
	}
	name := strings.ToLower(strings.TrimSpace(provider.Name()))

	l.mu.Lock()
	limiter := l.limiters[name]
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMinute)), l.perMinute)
		l.limiters[name] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
