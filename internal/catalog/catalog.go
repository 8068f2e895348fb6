// Package catalog holds the static movie/TV catalog that backs the offline
// heuristic scoring path. The catalog is immutable after construction and
// safe for concurrent reads.
package catalog

import "cinequery/searchservice/internal/domain"

// Entry is one annotated catalog title. Keywords, Cast and Director feed the
// heuristic scorer's token matching; Rating rides along into results.
type Entry struct {
	Title     string
	Year      int
	Plot      string
	Genres    []string
	Keywords  []string
	Cast      []string
	Director  string
	Rating    float64
	MediaType domain.MediaType
}

// Catalog is a read-only set of entries.
type Catalog struct {
	entries []Entry
}

// New copies the given entries into an immutable catalog.
func New(entries []Entry) *Catalog {
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return &Catalog{entries: copied}
}

// Entries returns the catalog contents in definition order. Callers must not
// mutate the returned slice elements.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len reports the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
