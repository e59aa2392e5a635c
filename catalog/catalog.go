// Package catalog loads the static pictograph dataset and indexes it for
// start-position queries.
//
// The catalog is built once and is read-only afterwards: a loaded *Catalog
// is safe to share, and hot reload (see Watcher) replaces the value instead
// of mutating it.
package catalog

import (
	"github.com/austencloud/tka-engine/pictograph"
)

// Catalog is the immutable in-memory index of the dataset.
type Catalog struct {
	entries []pictograph.Entry
	byStart map[pictograph.PositionID][]int

	positions map[pictograph.PositionID]struct{}
	letters   map[string]int

	skipped int
}

// EntriesWithStart returns copies of every entry whose start position
// matches, in dataset document order. No matches is a valid terminal state
// of the notation, so the result is simply empty, never an error.
//
// Document order matters: slot assignment downstream must be stable across
// repeated resolutions of the same query.
func (c *Catalog) EntriesWithStart(pos pictograph.PositionID) []pictograph.Entry {
	idxs := c.byStart[pos]
	if len(idxs) == 0 {
		return nil
	}
	out := make([]pictograph.Entry, len(idxs))
	for i, idx := range idxs {
		out[i] = c.entries[idx]
	}
	return out
}

// Len returns the number of indexed entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Letters returns how many distinct letters the dataset defines.
func (c *Catalog) Letters() int {
	return len(c.letters)
}

// Positions returns the size of the dataset-defined position vocabulary.
func (c *Catalog) Positions() int {
	return len(c.positions)
}

// HasPosition reports whether pos belongs to the dataset vocabulary.
func (c *Catalog) HasPosition(pos pictograph.PositionID) bool {
	_, ok := c.positions[pos]
	return ok
}

// Skipped returns how many malformed records were dropped during load.
func (c *Catalog) Skipped() int {
	return c.skipped
}
