package options

import (
	"github.com/austencloud/tka-engine/catalog"
	"github.com/austencloud/tka-engine/continuity"
	"github.com/austencloud/tka-engine/pictograph"
	"github.com/austencloud/tka-engine/sequence"
)

// Resolve performs the core query for a sequence tail: catalog lookup by
// the last step's end position, orientation propagation, then the optional
// reversal filter. Catalog document order is preserved throughout — slot
// assignment depends on it.
//
// Resolution is pure retrieval. The dataset contains only legal
// combinations, so no motion legality is checked here, and zero matches is
// an expected terminal state of the notation, not an error.
func Resolve(cat *catalog.Catalog, seq sequence.Sequence, filter *continuity.ReversalKind) []pictograph.Entry {
	last := seq.Last()
	if last == nil {
		return nil
	}

	candidates := cat.EntriesWithStart(last.EndPos)
	candidates = continuity.Propagate(candidates, last)
	candidates = continuity.Filter(candidates, seq, filter)
	return candidates
}
