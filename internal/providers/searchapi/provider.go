// Package searchapi implements the adapter for a licensed remote search API.
// The wire contract is a placeholder: without a configured credential the
// adapter reports itself unusable so the fallback chain moves on.
package searchapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"cinequery/searchservice/internal/domain"
)

const (
	defaultUserAgent  = "cinequery-search/1.0"
	defaultMaxResults = 12
	maxBodyBytes      = 1 << 20
)

// ErrNotConfigured is returned when no API credential was injected.
var ErrNotConfigured = errors.New("remote search api key not configured")

type Config struct {
	Endpoint   string
	APIKey     string
	UserAgent  string
	Client     *http.Client
	MaxResults int
}

type Provider struct {
	client     *http.Client
	endpoint   string
	apiKey     string
	userAgent  string
	maxResults int
}

// apiResponse mirrors the remote API's result envelope.
type apiResponse struct {
	Results []struct {
		Title       string   `json:"title"`
		Year        int      `json:"year,omitempty"`
		Description string   `json:"description,omitempty"`
		Rating      float64  `json:"rating,omitempty"`
		Genres      []string `json:"genres,omitempty"`
		MediaType   string   `json:"mediaType,omitempty"`
		Confidence  float64  `json:"confidence,omitempty"`
	} `json:"results"`
}

func NewProvider(cfg Config) *Provider {
	client := cfg.Client
	if client == nil {
		client = &http.Client{}
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	return &Provider{
		client:     client,
		endpoint:   strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/"),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		userAgent:  userAgent,
		maxResults: maxResults,
	}
}

func (p *Provider) Name() string {
	return "remote-api"
}

func (p *Provider) Info() domain.ProviderInfo {
	return domain.ProviderInfo{
		Name:    p.Name(),
		Label:   "Remote search API",
		Kind:    "api",
		Enabled: p.apiKey != "" && p.endpoint != "",
	}
}

func (p *Provider) Search(ctx context.Context, query domain.Query) ([]domain.CandidateResult, error) {
	if p.apiKey == "" || p.endpoint == "" {
		return nil, ErrNotConfigured
	}

	requestURL, err := p.buildURL(query)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search api HTTP %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode search api response: %w", err)
	}

	results := make([]domain.CandidateResult, 0, len(payload.Results))
	for _, item := range payload.Results {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		confidence := item.Confidence
		if confidence <= 0 {
			confidence = 80 // remote results without a score rank below curated ones
		}
		results = append(results, domain.CandidateResult{
			Title:       title,
			Year:        item.Year,
			Description: item.Description,
			Rating:      item.Rating,
			Genres:      item.Genres,
			MediaType:   domain.NormalizeMediaType(item.MediaType),
			Source:      p.Name(),
			Confidence:  confidence,
		})
		if len(results) >= p.maxResults {
			break
		}
	}
	return results, nil
}

func (p *Provider) buildURL(query domain.Query) (string, error) {
	parsed, err := url.Parse(p.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse search api endpoint: %w", err)
	}
	params := parsed.Query()
	params.Set("q", query.Text)
	if query.Intent != domain.IntentNone {
		params.Set("intent", string(query.Intent))
	}
	parsed.RawQuery = params.Encode()
	return parsed.String(), nil
}
