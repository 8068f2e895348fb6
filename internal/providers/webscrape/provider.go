// Package webscrape implements the scraping-based search adapter: it queries
// a generic web search engine through a third-party rendering proxy and
// extracts candidate titles from the returned markup.
package webscrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"cinequery/searchservice/internal/domain"
	"cinequery/searchservice/internal/knowledge"
	"cinequery/searchservice/internal/providers/common"
)

const (
	defaultUserAgent  = "cinequery-search/1.0"
	defaultMaxResults = 12
	maxBodyBytes      = 2 * 1024 * 1024

	// Confidence on the 0-100 scale. Pattern extraction is guesswork, so it
	// scores well below curated knowledge-base augmentation.
	extractedConfidence = 75
	curatedConfidence   = 95
)

// ErrNotConfigured is returned when the rendering-proxy credential is
// missing; the fallback chain treats it like any other provider failure.
var ErrNotConfigured = errors.New("scraping proxy api key not configured")

var engineQueryURLs = map[string]string{
	"google": "https://www.google.com/search?q=%s",
	"bing":   "https://www.bing.com/search?q=%s",
}

type Config struct {
	ProxyEndpoint string
	APIKey        string
	Engine        string // google | bing
	UserAgent     string
	Client        *http.Client
	Knowledge     *knowledge.Base
	MaxResults    int
	Strategies    []Strategy
}

type Provider struct {
	client     *http.Client
	endpoint   string
	apiKey     string
	engine     string
	userAgent  string
	knowledge  *knowledge.Base
	maxResults int
	strategies []Strategy
}

func NewProvider(cfg Config) *Provider {
	client := cfg.Client
	if client == nil {
		client = &http.Client{}
	}
	engine := strings.ToLower(strings.TrimSpace(cfg.Engine))
	if _, known := engineQueryURLs[engine]; !known {
		engine = "google"
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	strategies := cfg.Strategies
	if len(strategies) == 0 {
		strategies = []Strategy{NewPatternStrategy(), NewHeadingStrategy()}
	}
	return &Provider{
		client:     client,
		endpoint:   strings.TrimRight(strings.TrimSpace(cfg.ProxyEndpoint), "/"),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		engine:     engine,
		userAgent:  userAgent,
		knowledge:  cfg.Knowledge,
		maxResults: maxResults,
		strategies: strategies,
	}
}

func (p *Provider) Name() string {
	return "web-scrape"
}

func (p *Provider) Info() domain.ProviderInfo {
	return domain.ProviderInfo{
		Name:    p.Name(),
		Label:   "Web search (" + p.engine + ")",
		Kind:    "scrape",
		Enabled: p.apiKey != "",
	}
}

// Search runs the query through the rendering proxy and extracts candidate
// titles. Results from the curated knowledge base, when the query matches a
// known phrase, are prepended ahead of extracted ones at higher confidence.
func (p *Provider) Search(ctx context.Context, query domain.Query) ([]domain.CandidateResult, error) {
	if p.apiKey == "" {
		return nil, ErrNotConfigured
	}

	collected := newCollector(p.maxResults)
	if p.knowledge != nil {
		normalized := strings.ToLower(strings.TrimSpace(query.Text))
		for _, curated := range p.knowledge.Lookup(normalized) {
			curated.Confidence = curatedConfidence
			collected.add(curated)
		}
	}

	markup, err := p.fetchMarkup(ctx, query.Text)
	if err != nil {
		// Curated augmentation still counts as a successful answer.
		if collected.len() > 0 {
			return collected.results(), nil
		}
		return nil, err
	}

	for _, strategy := range p.strategies {
		for _, extracted := range strategy.Extract(markup) {
			collected.add(domain.CandidateResult{
				Title:      extracted.Title,
				Year:       extracted.Year,
				MediaType:  domain.MediaTypeUnknown,
				Source:     p.Name(),
				Confidence: extractedConfidence,
			})
			if collected.full() {
				return collected.results(), nil
			}
		}
	}
	return collected.results(), nil
}

func (p *Provider) fetchMarkup(ctx context.Context, queryText string) (string, error) {
	target := fmt.Sprintf(engineQueryURLs[p.engine], url.QueryEscape(queryText))

	proxyURL, err := url.Parse(p.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse proxy endpoint: %w", err)
	}
	params := proxyURL.Query()
	params.Set("api_key", p.apiKey)
	params.Set("url", target)
	params.Set("render", "true")
	proxyURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, proxyURL.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("rendering proxy HTTP %d", resp.StatusCode)
	}
	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}
	return common.DecodeBody(payload), nil
}

// collector accumulates candidates, dropping any whose title
// case-insensitively contains or is contained by an already-collected one.
type collector struct {
	max   int
	items []domain.CandidateResult
}

func newCollector(max int) *collector {
	return &collector{max: max}
}

func (c *collector) add(candidate domain.CandidateResult) {
	if c.full() || candidate.Title == "" {
		return
	}
	lowered := strings.ToLower(candidate.Title)
	for _, kept := range c.items {
		existing := strings.ToLower(kept.Title)
		if strings.Contains(existing, lowered) || strings.Contains(lowered, existing) {
			return
		}
	}
	c.items = append(c.items, candidate)
}

func (c *collector) full() bool {
	return len(c.items) >= c.max
}

func (c *collector) len() int {
	return len(c.items)
}

func (c *collector) results() []domain.CandidateResult {
	return c.items
}
