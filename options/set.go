package options

import (
	"github.com/austencloud/tka-engine/letters"
	"github.com/austencloud/tka-engine/pictograph"
	"github.com/austencloud/tka-engine/slots"
)

// BoundOption is one resolved pictograph bound to a render slot.
type BoundOption struct {
	Entry pictograph.Entry
	Slot  slots.Handle
}

// Set is the categorized, slot-bound result of one resolution. Each call to
// the coordinator produces a fresh Set; the previous one is superseded, not
// mutated, and its handles go stale.
type Set struct {
	byType    map[letters.Type][]BoundOption
	total     int
	truncated int
}

func newSet() *Set {
	return &Set{byType: make(map[letters.Type][]BoundOption, len(letters.All))}
}

func (s *Set) add(t letters.Type, opt BoundOption) {
	s.byType[t] = append(s.byType[t], opt)
	s.total++
}

// Options returns the ordered options for one letter type. An empty
// category is a valid state and renders as an empty section.
func (s *Set) Options(t letters.Type) []BoundOption {
	return s.byType[t]
}

// Total returns how many options are bound across all categories.
func (s *Set) Total() int {
	return s.total
}

// Truncated returns how many matching entries were dropped because the
// pool ran out of slots.
func (s *Set) Truncated() int {
	return s.truncated
}

// Empty reports whether the set holds no options at all.
func (s *Set) Empty() bool {
	return s.total == 0
}
