// Package app wires configuration from the environment. Credentials are
// never defaulted: a missing key simply disables the provider that needs it.
package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr       string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
	UserAgent      string

	// Provider chain selection: scraping | remote-api | google | bing |
	// simulation. google/bing are shorthands for scraping with that engine.
	Provider string

	ScrapeProxyEndpoint string
	ScrapeProxyAPIKey   string
	SearchEngine        string

	SearchAPIEndpoint string
	SearchAPIKey      string

	MaxResults     int
	WebMaxResults  int
	ProviderPerMin int
	RedisURL       string
	CacheTTL       time.Duration // zero disables caching
}

func LoadConfig() Config {
	provider := strings.ToLower(getEnv("SEARCH_PROVIDER", "scraping"))
	engine := strings.ToLower(getEnv("SEARCH_ENGINE", "google"))
	switch provider {
	case "google", "bing":
		engine = provider
		provider = "scraping"
	}

	return Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8086"),
		RequestTimeout: time.Duration(getEnvInt("SEARCH_TIMEOUT_SECONDS", 12)) * time.Second,
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", "text")),
		UserAgent:      getEnv("SEARCH_USER_AGENT", "cinequery-search/1.0"),

		Provider: provider,

		ScrapeProxyEndpoint: getEnv("SCRAPE_PROXY_ENDPOINT", "https://api.renderproxy.example/v1"),
		ScrapeProxyAPIKey:   strings.TrimSpace(os.Getenv("SCRAPE_PROXY_API_KEY")),
		SearchEngine:        engine,

		SearchAPIEndpoint: getEnv("SEARCH_API_ENDPOINT", ""),
		SearchAPIKey:      strings.TrimSpace(os.Getenv("SEARCH_API_KEY")),

		MaxResults:     getEnvInt("SEARCH_MAX_RESULTS", 5),
		WebMaxResults:  getEnvInt("SEARCH_WEB_MAX_RESULTS", 12),
		ProviderPerMin: getEnvInt("SEARCH_PROVIDER_RATE_PER_MINUTE", 30),
		RedisURL:       getEnv("REDIS_URL", ""),
		CacheTTL:       time.Duration(getEnvIntAllowZero("SEARCH_CACHE_TTL_MINUTES", 0)) * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

// getEnvIntAllowZero is getEnvInt for knobs where zero is a meaningful
// "off" value rather than a parse failure.
func getEnvIntAllowZero(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}
