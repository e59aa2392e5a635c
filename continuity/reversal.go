package continuity

import (
	"github.com/austencloud/tka-engine/errors"
	"github.com/austencloud/tka-engine/motion"
	"github.com/austencloud/tka-engine/pictograph"
	"github.com/austencloud/tka-engine/sequence"
)

// ReversalKind classifies how a candidate relates to the rotation history:
// both actors keep their rotation sense, one flips, or both flip.
type ReversalKind string

const (
	Continuous   ReversalKind = "continuous"
	OneReversal  ReversalKind = "one_reversal"
	TwoReversals ReversalKind = "two_reversals"
)

// ParseReversalKind validates a reversal filter token (CLI/config input).
func ParseReversalKind(s string) (ReversalKind, error) {
	switch ReversalKind(s) {
	case Continuous, OneReversal, TwoReversals:
		return ReversalKind(s), nil
	}
	return "", errors.Newf("unknown reversal kind %q", s)
}

// Determine classifies a candidate against the full history. Per actor, the
// comparison point is the last rotating step in the history; no_rot steps
// (floats, dashes, statics) are transparent. A candidate that does not
// rotate an actor cannot reverse that actor.
func Determine(history sequence.Sequence, candidate pictograph.Entry) ReversalKind {
	reversals := 0
	if reversesActor(lastRotation(history, actorPrimary), candidate.Primary.PropRotDir) {
		reversals++
	}
	if reversesActor(lastRotation(history, actorSecondary), candidate.Secondary.PropRotDir) {
		reversals++
	}

	switch reversals {
	case 1:
		return OneReversal
	case 2:
		return TwoReversals
	}
	return Continuous
}

// Filter retains candidates whose reversal classification equals kind.
// A nil filter disables filtering and returns candidates unchanged.
func Filter(candidates []pictograph.Entry, history sequence.Sequence, kind *ReversalKind) []pictograph.Entry {
	if kind == nil {
		return candidates
	}

	filtered := candidates[:0]
	for _, c := range candidates {
		if Determine(history, c) == *kind {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

type actor int

const (
	actorPrimary actor = iota
	actorSecondary
)

// lastRotation scans the history backwards for the actor's most recent
// rotating step. RotationNone means the actor has no rotation history yet.
func lastRotation(history sequence.Sequence, a actor) motion.RotationDir {
	for i := len(history) - 1; i >= 0; i-- {
		dir := history[i].Primary.PropRotDir
		if a == actorSecondary {
			dir = history[i].Secondary.PropRotDir
		}
		if dir == motion.RotationCW || dir == motion.RotationCCW {
			return dir
		}
	}
	return motion.RotationNone
}

func reversesActor(last, next motion.RotationDir) bool {
	if last == motion.RotationNone || next == motion.RotationNone {
		return false
	}
	return last != next
}
