// Package textnorm turns raw free-text queries into a matchable form shared
// by the knowledge base, the heuristic scorer and the result ranker.
package textnorm

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// minTokenLength is exclusive: tokens must be longer than this to count as
// signal; shorter runs ("a", "of", "the", "tv") are noise for keyword
// matching, though they remain part of the normalized string used for
// substring matches.
const minTokenLength = 3

// QueryMeta is the normalized view of a query. Zero value is valid and
// represents an empty query.
type QueryMeta struct {
	Normalized string
	Tokens     []string
	tokenSet   map[string]struct{}
}

// Parse lowercases and trims the input and extracts tokens longer than
// three characters, preserving first-occurrence order. It never fails:
// empty or whitespace-only input yields an empty QueryMeta.
func Parse(raw string) QueryMeta {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.Join(strings.Fields(normalized), " ")
	if normalized == "" {
		return QueryMeta{}
	}

	meta := QueryMeta{
		Normalized: normalized,
		tokenSet:   make(map[string]struct{}),
	}
	for _, match := range tokenPattern.FindAllString(normalized, -1) {
		if len(match) <= minTokenLength {
			continue
		}
		if _, exists := meta.tokenSet[match]; exists {
			continue
		}
		meta.tokenSet[match] = struct{}{}
		meta.Tokens = append(meta.Tokens, match)
	}
	return meta
}

func (m QueryMeta) Empty() bool {
	return m.Normalized == ""
}

func (m QueryMeta) HasToken(token string) bool {
	_, ok := m.tokenSet[strings.ToLower(token)]
	return ok
}
