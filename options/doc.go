// Package options is the motion option resolution engine: given the tail of
// an in-progress sequence it determines every valid next pictograph, corrects
// each candidate for orientation continuity, classifies it into one of the
// six letter types and binds the results to render slots.
//
// # Overview
//
// The Coordinator is the single external entry point. Each call to
// UpdateForSequence runs the full transaction:
//
//	release all slots -> resolve candidates -> classify -> assign slots -> publish
//
// releasing before resolving, so no moment exists where old and new content
// claim the same slot.
//
//	cat, err := catalog.Load("pictographs.yaml")
//	pool, err := slots.NewPool(cfg.Pool.Capacity)
//	coord := options.NewCoordinator(cat, pool)
//
//	set := coord.UpdateForSequence(seq, nil)
//	for _, t := range letters.All {
//	    for _, opt := range set.Options(t) {
//	        render(opt.Entry, opt.Slot)
//	    }
//	}
//
// # Ownership
//
// The Coordinator and its pool belong to the goroutine that owns the
// presentation layer. Calls must be serialized by the caller; the pool has
// no internal locking. A *Set is superseded, never mutated, by the next
// UpdateForSequence call, and its slot handles go detectably stale at that
// point.
package options
