package model

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a catalog index does not name an entry.
var ErrOutOfRange = errors.New("catalog index out of range")

// CatalogEntry is a single playable item of the catalog
type CatalogEntry struct {
	Index int    // 1-based number shown to the user
	Title string // display title
	Path  string // local file path
}

// DisplayLabel returns the row label used by the video list, e.g. "1. Video 1"
func (e CatalogEntry) DisplayLabel() string {
	return fmt.Sprintf("%d. %s", e.Index, e.Title)
}

// Catalog is the read-only ordered list of videos known at startup
type Catalog struct {
	entries []CatalogEntry
}

// NewCatalog creates a catalog from the given entries, preserving order
func NewCatalog(entries []CatalogEntry) *Catalog {
	c := &Catalog{entries: make([]CatalogEntry, len(entries))}
	copy(c.entries, entries)
	return c
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// EntryAt returns the entry at the given zero-based position
func (c *Catalog) EntryAt(index int) (CatalogEntry, error) {
	if index < 0 || index >= len(c.entries) {
		return CatalogEntry{}, fmt.Errorf("%w: %d (catalog has %d entries)", ErrOutOfRange, index, len(c.entries))
	}
	return c.entries[index], nil
}

// Entries returns a copy of all entries in catalog order
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}
