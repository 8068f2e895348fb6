package webscrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"cinequery/searchservice/internal/providers/common"
)

// headingStrategy walks the parsed document and reads result headings
// directly, which survives markup shapes the regex patterns miss. Used as a
// structured complement to the pattern strategy, not a replacement.
type headingStrategy struct {
	selectors string
}

// NewHeadingStrategy extracts titles from result-page heading elements.
func NewHeadingStrategy() Strategy {
	return headingStrategy{selectors: "h3, h2, .result__title, .b_title"}
}

func (headingStrategy) Name() string { return "heading" }

func (s headingStrategy) Extract(markup string) []Extracted {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	var out []Extracted
	doc.Find(s.selectors).Each(func(_ int, sel *goquery.Selection) {
		heading := strings.TrimSpace(sel.Text())
		if heading == "" {
			return
		}
		year := common.ParseYear(heading)
		title := sanitizeTitle(headingTitle(heading))
		if title == "" {
			return
		}
		out = append(out, Extracted{Title: title, Year: year})
	})
	return out
}

// headingTitle cuts a search-result heading down to the leading title
// segment: "Inception (2010) - IMDb" becomes "Inception".
func headingTitle(heading string) string {
	for _, sep := range []string{" - ", " | ", " – ", ": watch", "(19", "(20"} {
		if idx := strings.Index(heading, sep); idx > 0 {
			heading = heading[:idx]
		}
	}
	return strings.TrimSpace(heading)
}
