package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	apihttp "cinequery/searchservice/internal/api/http"
	"cinequery/searchservice/internal/app"
	"cinequery/searchservice/internal/catalog"
	"cinequery/searchservice/internal/knowledge"
	"cinequery/searchservice/internal/metrics"
	"cinequery/searchservice/internal/providers/searchapi"
	"cinequery/searchservice/internal/providers/simulation"
	"cinequery/searchservice/internal/providers/webscrape"
	"cinequery/searchservice/internal/scoring"
	"cinequery/searchservice/internal/search"
	"cinequery/searchservice/internal/telemetry"
)

func main() {
	cfg := app.LoadConfig()
	logger := newLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	metrics.Register(prometheus.DefaultRegisterer)

	shutdownTracer, err := telemetry.Init(context.Background(), "cinequery-search")
	if err != nil {
		logger.Warn("otel init failed", slog.String("error", err.Error()))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	logger.Info("configuration loaded",
		slog.String("service", "cinequery-search"),
		slog.String("httpAddr", cfg.HTTPAddr),
		slog.String("logLevel", cfg.LogLevel),
		slog.String("logFormat", cfg.LogFormat),
		slog.Duration("requestTimeout", cfg.RequestTimeout),
		slog.String("provider", cfg.Provider),
		slog.String("searchEngine", cfg.SearchEngine),
		slog.Bool("hasProxyKey", cfg.ScrapeProxyAPIKey != ""),
		slog.Bool("hasSearchAPIKey", cfg.SearchAPIKey != ""),
		slog.Bool("hasRedis", strings.TrimSpace(cfg.RedisURL) != ""),
		slog.Duration("cacheTTL", cfg.CacheTTL),
		slog.Int("maxResults", cfg.MaxResults),
		slog.Int("webMaxResults", cfg.WebMaxResults),
	)

	engine := search.NewEngine(buildProviderChain(cfg), buildEngineOptions(cfg, logger)...)

	handler := apihttp.NewServer(engine, apihttp.WithLogger(logger)).Handler()
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	logger.Info("search service started",
		slog.String("addr", cfg.HTTPAddr),
		slog.Duration("timeout", cfg.RequestTimeout),
	)

	select {
	case <-rootCtx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown error", slog.String("error", err.Error()))
	}
	logger.Info("search service stopped")
}

// buildProviderChain assembles the fallback chain in priority order. The
// offline simulation provider is always the terminal link, so a total
// network outage still produces answers.
func buildProviderChain(cfg app.Config) []search.Provider {
	base := knowledge.Default()
	offline := simulation.NewProvider(base, scoring.New(catalog.Default(), cfg.MaxResults))

	scrapeClient := &http.Client{Timeout: cfg.RequestTimeout, Transport: otelhttp.NewTransport(http.DefaultTransport)}
	apiClient := &http.Client{Timeout: cfg.RequestTimeout, Transport: otelhttp.NewTransport(http.DefaultTransport)}

	scraper := webscrape.NewProvider(webscrape.Config{
		ProxyEndpoint: cfg.ScrapeProxyEndpoint,
		APIKey:        cfg.ScrapeProxyAPIKey,
		Engine:        cfg.SearchEngine,
		UserAgent:     cfg.UserAgent,
		Client:        scrapeClient,
		Knowledge:     base,
		MaxResults:    cfg.WebMaxResults,
	})
	remote := searchapi.NewProvider(searchapi.Config{
		Endpoint:   cfg.SearchAPIEndpoint,
		APIKey:     cfg.SearchAPIKey,
		UserAgent:  cfg.UserAgent,
		Client:     apiClient,
		MaxResults: cfg.WebMaxResults,
	})

	switch cfg.Provider {
	case "simulation":
		return []search.Provider{offline}
	case "remote-api":
		return []search.Provider{remote, scraper, offline}
	default: // scraping
		return []search.Provider{scraper, remote, offline}
	}
}

func buildEngineOptions(cfg app.Config, logger *slog.Logger) []search.EngineOption {
	opts := []search.EngineOption{
		search.WithLogger(logger),
		search.WithMaxResults(cfg.MaxResults),
		search.WithWebMaxResults(cfg.WebMaxResults),
		search.WithProviderRateLimit(cfg.ProviderPerMin),
	}

	if cfg.CacheTTL <= 0 {
		return opts
	}

	var backend search.CacheBackend
	redisURL := strings.TrimSpace(cfg.RedisURL)
	if redisURL != "" {
		redisOpts, err := redis.ParseURL(redisURL)
		if err != nil {
			logger.Warn("invalid redis url, using in-memory cache only", slog.String("error", err.Error()))
		} else {
			redisClient := redis.NewClient(redisOpts)
			if err := redisClient.Ping(context.Background()).Err(); err != nil {
				logger.Warn("redis not reachable, using in-memory cache only", slog.String("error", err.Error()))
			} else {
				logger.Info("redis connected", slog.String("addr", redisOpts.Addr))
				backend = search.NewRedisCacheBackend(redisClient)
			}
		}
	}
	return append(opts, search.WithCache(cfg.CacheTTL, backend))
}

func newLogger(levelRaw, formatRaw string) *slog.Logger {
	level := parseLogLevel(levelRaw)
	options := &slog.HandlerOptions{Level: level}
	format := strings.ToLower(strings.TrimSpace(formatRaw))
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, options))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, options))
}

func parseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
