// Package continuity applies the cross-step rules of the notation: a
// candidate pictograph must start where the previous step left off, both in
// orientation (corrected, never rejected) and, when the caller asks for it,
// in rotation continuity (filtered).
package continuity

import (
	"github.com/austencloud/tka-engine/pictograph"
	"github.com/austencloud/tka-engine/sequence"
)

// Propagate rewrites each candidate's starting orientations to match the
// previous step's terminal orientations. The dataset stores entries with
// arbitrary start orientations; this is a value override, not a validation.
//
// Candidates are modified in place (they are catalog copies) and returned
// for chaining. A nil previous step means the sequence is empty, so there
// is nothing to inherit and candidates pass through untouched.
func Propagate(candidates []pictograph.Entry, prev *sequence.Step) []pictograph.Entry {
	if prev == nil {
		return candidates
	}
	for i := range candidates {
		candidates[i].Primary.StartOri = prev.Primary.EndOri
		candidates[i].Secondary.StartOri = prev.Secondary.EndOri
	}
	return candidates
}
