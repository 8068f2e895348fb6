package webscrape

import (
	"regexp"
	"strconv"
	"strings"

	"cinequery/searchservice/internal/providers/common"
)

// Extracted is one candidate title pulled out of raw search-engine markup.
type Extracted struct {
	Title string
	Year  int
}

// Strategy turns raw markup into candidate titles. Extraction is best-effort
// string matching over hostile input: a strategy that finds nothing returns
// an empty slice, never an error.
type Strategy interface {
	Name() string
	Extract(markup string) []Extracted
}

var (
	// "The Prestige (2006)" and similar title-plus-year runs.
	titleYearPattern = regexp.MustCompile(`([A-Z][A-Za-z0-9'&:,.\- ]{1,60}?)\s*\((19\d{2}|20\d{2})\)`)
	// "Watch Inception online", "watch The Wire free".
	watchPattern = regexp.MustCompile(`(?i)\bwatch\s+([A-Z][A-Za-z0-9'&:.\- ]{1,60}?)(?:\s+(?:online|free|now|full|streaming)\b|[.,!?]|$)`)
	// movie "Arrival", series 'Dark'.
	quotedPattern = regexp.MustCompile(`(?i)\b(?:movie|film|series|show)s?\s+[\x{201c}"']([^\x{201c}\x{201d}"']{2,60})[\x{201d}"']`)
)

// junkTitles are navigation/boilerplate fragments that the loose patterns
// routinely pick up from result pages.
var junkTitles = map[string]struct{}{
	"sign in":        {},
	"privacy policy": {},
	"terms of use":   {},
	"all results":    {},
	"search results": {},
	"learn more":     {},
	"accept all":     {},
	"more results":   {},
}

type patternStrategy struct{}

// NewPatternStrategy extracts titles with fixed regex families over the
// tag-stripped page text.
func NewPatternStrategy() Strategy {
	return patternStrategy{}
}

func (patternStrategy) Name() string { return "pattern" }

func (patternStrategy) Extract(markup string) []Extracted {
	text := common.CleanHTMLText(markup)
	if text == "" {
		return nil
	}

	var out []Extracted
	for _, m := range titleYearPattern.FindAllStringSubmatch(text, -1) {
		title := sanitizeTitle(m[1])
		if title == "" {
			continue
		}
		year, _ := strconv.Atoi(m[2])
		out = append(out, Extracted{Title: title, Year: year})
	}
	for _, m := range watchPattern.FindAllStringSubmatch(text, -1) {
		if title := sanitizeTitle(m[1]); title != "" {
			out = append(out, Extracted{Title: title})
		}
	}
	for _, m := range quotedPattern.FindAllStringSubmatch(text, -1) {
		if title := sanitizeTitle(m[1]); title != "" {
			out = append(out, Extracted{Title: title})
		}
	}
	return out
}

// sanitizeTitle trims result-page noise from a raw match and rejects
// fragments that cannot be a title.
func sanitizeTitle(raw string) string {
	title := strings.TrimSpace(raw)
	title = strings.Trim(title, "-:,.| ")
	if len(title) < 2 || len(title) > 80 {
		return ""
	}
	lowered := strings.ToLower(title)
	if _, junk := junkTitles[lowered]; junk {
		return ""
	}
	if strings.Contains(lowered, "http") || strings.Contains(lowered, "www.") {
		return ""
	}
	// Reject fragments with no letters at all.
	hasLetter := false
	for _, r := range lowered {
		if r >= 'a' && r <= 'z' {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return ""
	}
	return title
}
