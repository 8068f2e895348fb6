package domain

import (
	"strings"
	"time"
)

type MediaType string

const (
	MediaTypeMovie   MediaType = "movie"
	MediaTypeTV      MediaType = "tv"
	MediaTypeUnknown MediaType = "unknown"
)

// Intent is an optional coarse category hint supplied alongside the free
// text. The set is open-ended; unknown values are carried through and simply
// match no boost rule.
type Intent string

const (
	IntentNone      Intent = ""
	IntentInspiring Intent = "inspiring"
	IntentFamily    Intent = "family"
	IntentComedy    Intent = "comedy"
	IntentDrama     Intent = "drama"
)

func NormalizeIntent(raw string) Intent {
	return Intent(strings.ToLower(strings.TrimSpace(raw)))
}

func NormalizeMediaType(raw string) MediaType {
	switch MediaType(strings.ToLower(strings.TrimSpace(raw))) {
	case MediaTypeMovie:
		return MediaTypeMovie
	case MediaTypeTV:
		return MediaTypeTV
	default:
		return MediaTypeUnknown
	}
}

// Query is the immutable per-call input. It is never persisted.
type Query struct {
	Text   string
	Intent Intent
}

// CandidateResult is a single proposed title. Providers may stamp Confidence
// on either the 0-100 or the 0-1 scale; the ranker normalizes everything to
// [0,1] before merging, and final output always carries the [0,1] scale.
type CandidateResult struct {
	Title       string    `json:"title"`
	Year        int       `json:"year,omitempty"`
	Description string    `json:"description,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	Genres      []string  `json:"genres,omitempty"`
	MediaType   MediaType `json:"mediaType"`
	Source      string    `json:"source,omitempty"`
	Confidence  float64   `json:"confidence"`
}

type ProviderInfo struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Kind    string `json:"kind"`
	Enabled bool   `json:"enabled"`
}

type ProviderStatus struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Count int    `json:"count"`
	Error string `json:"error,omitempty"`
}

type ProviderDiagnostics struct {
	Name                string     `json:"name"`
	Label               string     `json:"label"`
	Kind                string     `json:"kind"`
	Enabled             bool       `json:"enabled"`
	ConsecutiveFailures int        `json:"consecutiveFailures"`
	BlockedUntil        *time.Time `json:"blockedUntil,omitempty"`
	LastError           string     `json:"lastError,omitempty"`
	LastSuccessAt       *time.Time `json:"lastSuccessAt,omitempty"`
	LastFailureAt       *time.Time `json:"lastFailureAt,omitempty"`
	LastLatencyMS       int64      `json:"lastLatencyMs,omitempty"`
	LastTimeout         bool       `json:"lastTimeout,omitempty"`
	LastQuery           string     `json:"lastQuery,omitempty"`
	TotalRequests       int64      `json:"totalRequests,omitempty"`
	TotalFailures       int64      `json:"totalFailures,omitempty"`
	TimeoutCount        int64      `json:"timeoutCount,omitempty"`
}

type SearchResponse struct {
	Query      string            `json:"query"`
	Intent     Intent            `json:"intent,omitempty"`
	Items      []CandidateResult `json:"items"`
	Providers  []ProviderStatus  `json:"providers"`
	ElapsedMS  int64             `json:"elapsedMs"`
	TotalItems int               `json:"totalItems"`
}
