// Package common holds parsing helpers shared by the provider adapters.
package common

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var (
	tagPattern  = regexp.MustCompile(`<[^>]+>`)
	yearPattern = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
)

// CleanHTMLText strips tags, unescapes entities and collapses whitespace.
func CleanHTMLText(raw string) string {
	value := strings.TrimSpace(raw)
	value = html.UnescapeString(value)
	value = tagPattern.ReplaceAllString(value, " ")
	value = strings.Join(strings.Fields(value), " ")
	return value
}

// ParseYear pulls the first plausible release year (1900-2099) out of raw
// text. Returns 0 when no year is present.
func ParseYear(raw string) int {
	match := yearPattern.FindString(raw)
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return year
}

// DecodeBody converts a response body to a UTF-8 string. Search-engine pages
// proxied without charset negotiation occasionally arrive as Windows-1251;
// anything that is already valid UTF-8 passes through untouched.
func DecodeBody(payload []byte) string {
	if utf8.Valid(payload) {
		return string(payload)
	}
	decoded, err := charmap.Windows1251.NewDecoder().Bytes(payload)
	if err != nil {
		return string(payload)
	}
	return string(decoded)
}
