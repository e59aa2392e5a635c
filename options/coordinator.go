package options

import (
	"go.uber.org/zap"

	"github.com/austencloud/tka-engine/catalog"
	"github.com/austencloud/tka-engine/continuity"
	"github.com/austencloud/tka-engine/errors"
	"github.com/austencloud/tka-engine/letters"
	"github.com/austencloud/tka-engine/logger"
	"github.com/austencloud/tka-engine/sequence"
	"github.com/austencloud/tka-engine/slots"
)

// Coordinator owns the clear-resolve-classify-assign-publish transaction.
// It is the only code path that touches the slot pool; callers must never
// call pool methods directly.
//
// One coordinator per pool. Calls are serialized by the caller on the
// goroutine that owns the presentation layer.
type Coordinator struct {
	catalog *catalog.Catalog
	pool    *slots.Pool
	log     *zap.SugaredLogger
}

// NewCoordinator wires a loaded catalog to the pool it will publish into.
func NewCoordinator(cat *catalog.Catalog, pool *slots.Pool) *Coordinator {
	return &Coordinator{
		catalog: cat,
		pool:    pool,
		log:     logger.Named("options.coordinator"),
	}
}

// SetCatalog swaps in a freshly loaded catalog (dataset hot reload). The
// next UpdateForSequence resolves against the new value; the old catalog is
// untouched and simply unreferenced.
func (c *Coordinator) SetCatalog(cat *catalog.Catalog) {
	c.catalog = cat
}

// UpdateForSequence resolves, classifies and slot-binds every valid next
// option for the sequence tail.
//
// An empty sequence returns an empty set: there is no previous step to
// resolve from, and that is not an error. Otherwise all prior slot
// assignments are released before any new one is made, so the previous
// set's handles are stale by the time this returns.
//
// When matches exceed pool capacity the overflow is truncated — the pool is
// a deliberate display bound and is never grown implicitly — and a warning
// records the true match count against capacity.
func (c *Coordinator) UpdateForSequence(seq sequence.Sequence, filter *continuity.ReversalKind) *Set {
	set := newSet()
	if seq.Last() == nil {
		return set
	}

	c.pool.ReleaseAll()

	entries := Resolve(c.catalog, seq, filter)
	for i, entry := range entries {
		h, err := c.pool.Acquire()
		if err != nil {
			if !errors.IsPoolExhausted(err) {
				// Acquire only fails on exhaustion; anything else is a
				// broken pool invariant.
				c.log.Errorw("slot acquire failed",
					"error", err.Error())
				break
			}
			set.truncated = len(entries) - i
			c.log.Warnw("render pool exhausted, truncating options",
				"matches", len(entries),
				"capacity", c.pool.Capacity(),
				"dropped", set.truncated)
			break
		}

		if err := c.pool.Rebind(h, entry); err != nil {
			// Unreachable with a freshly acquired handle
			c.log.Errorw("slot rebind failed",
				"letter", entry.Letter,
				"error", err.Error())
			continue
		}

		set.add(letters.Classify(entry.Letter), BoundOption{Entry: entry, Slot: h})
	}

	c.log.Debugw("options resolved",
		"end_pos", string(seq.Last().EndPos),
		"matches", len(entries),
		"bound", set.Total())
	return set
}
