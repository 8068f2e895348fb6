package app

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.HTTPAddr != ":8086" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.RequestTimeout != 12*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.Provider != "scraping" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.SearchEngine != "google" {
		t.Errorf("SearchEngine = %q", cfg.SearchEngine)
	}
	if cfg.MaxResults != 5 || cfg.WebMaxResults != 12 {
		t.Errorf("result caps = %d/%d", cfg.MaxResults, cfg.WebMaxResults)
	}
	if cfg.CacheTTL != 0 {
		t.Errorf("caching should be off by default, got %v", cfg.CacheTTL)
	}
	if cfg.ScrapeProxyAPIKey != "" || cfg.SearchAPIKey != "" {
		t.Error("credentials must never have defaults")
	}
}

func TestLoadConfigEngineShorthand(t *testing.T) {
	t.Setenv("SEARCH_PROVIDER", "bing")
	cfg := LoadConfig()
	if cfg.Provider != "scraping" || cfg.SearchEngine != "bing" {
		t.Errorf("shorthand not expanded: provider=%q engine=%q", cfg.Provider, cfg.SearchEngine)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("SEARCH_CACHE_TTL_MINUTES", "15")
	t.Setenv("SCRAPE_PROXY_API_KEY", " secret ")
	t.Setenv("SEARCH_MAX_RESULTS", "7")

	cfg := LoadConfig()
	if cfg.HTTPAddr != ":9000" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.CacheTTL != 15*time.Minute {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.ScrapeProxyAPIKey != "secret" {
		t.Errorf("ScrapeProxyAPIKey = %q", cfg.ScrapeProxyAPIKey)
	}
	if cfg.MaxResults != 7 {
		t.Errorf("MaxResults = %d", cfg.MaxResults)
	}
}

func TestLoadConfigBadNumbersFallBack(t *testing.T) {
	t.Setenv("SEARCH_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("SEARCH_CACHE_TTL_MINUTES", "-5")

	cfg := LoadConfig()
	if cfg.RequestTimeout != 12*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.CacheTTL != 0 {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
}
