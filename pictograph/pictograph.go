// Package pictograph defines the catalog row type shared across the engine:
// one legal (start position, end position, per-actor motion) combination of
// the notation system.
package pictograph

import (
	"github.com/austencloud/tka-engine/errors"
	"github.com/austencloud/tka-engine/motion"
)

// PositionID identifies a combined two-hand position. Values come from the
// dataset's closed vocabulary (alpha1..alpha8, beta1..beta8, gamma1..gamma16
// in the diamond/box datasets); the engine treats them as opaque.
type PositionID string

// Entry is one catalog row. Entries are plain values; the catalog hands out
// copies, so callers may rewrite orientations freely without touching the
// loaded dataset.
type Entry struct {
	Letter    string
	StartPos  PositionID
	EndPos    PositionID
	Primary   motion.Attributes
	Secondary motion.Attributes
}

// Validate checks the entry against the dataset vocabularies. Position IDs
// only need to be present; their vocabulary is closed by construction of the
// dataset, not by a hardcoded list.
func (e Entry) Validate() error {
	if e.Letter == "" {
		return errors.New("empty letter")
	}
	if e.StartPos == "" {
		return errors.New("empty start_pos")
	}
	if e.EndPos == "" {
		return errors.New("empty end_pos")
	}
	if err := e.Primary.Validate(); err != nil {
		return errors.Wrap(err, "primary")
	}
	if err := e.Secondary.Validate(); err != nil {
		return errors.Wrap(err, "secondary")
	}
	return nil
}
