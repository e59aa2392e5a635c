// Package sequence models the committed steps of an in-progress sequence.
// The engine only ever reads the tail: the last step's end position seeds
// the catalog query, its terminal orientations seed continuity propagation,
// and the rotation history feeds reversal analysis.
package sequence

import (
	"github.com/austencloud/tka-engine/motion"
	"github.com/austencloud/tka-engine/pictograph"
)

// ActorState is the per-actor terminal state of a committed step.
type ActorState struct {
	EndOri     motion.Orientation `yaml:"end_ori"`
	PropRotDir motion.RotationDir `yaml:"prop_rot_dir"`
}

// Step is one already-committed element of the sequence.
type Step struct {
	Letter    string                `yaml:"letter"`
	EndPos    pictograph.PositionID `yaml:"end_pos"`
	Primary   ActorState            `yaml:"primary"`
	Secondary ActorState            `yaml:"secondary"`
}

// Sequence is the ordered list of committed steps.
type Sequence []Step

// Last returns the final step, or nil for an empty sequence. An empty
// sequence is a valid state, not an error.
func (s Sequence) Last() *Step {
	if len(s) == 0 {
		return nil
	}
	return &s[len(s)-1]
}
