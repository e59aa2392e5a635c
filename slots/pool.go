// Package slots implements the render slot pool: a fixed set of reusable
// presentation handles the option resolver binds pictographs to.
//
// Slots are created once and never destroyed; they are recycled through
// ReleaseAll and rebound many times over the process lifetime. Callers hold
// lightweight Handle values (index + generation) instead of slot pointers,
// so a handle kept across a recycle goes detectably stale rather than
// silently pointing at someone else's content.
//
// The pool has no internal locking. It is owned by exactly one coordinator
// on the goroutine that owns the presentation layer; concurrent use is
// undefined.
package slots

import (
	"github.com/austencloud/tka-engine/errors"
	"github.com/austencloud/tka-engine/logger"
	"github.com/austencloud/tka-engine/pictograph"
)

// DefaultCapacity matches the largest option fan-out observed in the
// shipping datasets. It is a display bound, not a dataset property; override
// it through configuration when the UI can show more.
const DefaultCapacity = 36

type slotState uint8

const (
	stateFree slotState = iota
	stateAssigned
)

type slot struct {
	state      slotState
	generation uint64
	entry      pictograph.Entry
	visible    bool
}

// Handle is a lightweight reference to a pool slot. The zero Handle is
// invalid (generations start at 1).
type Handle struct {
	index      int
	generation uint64
}

// Index returns the slot position, stable for layout ordering.
func (h Handle) Index() int { return h.index }

// Pool is the fixed-capacity slot arena.
type Pool struct {
	slots []slot
	free  []int // LIFO of free slot indices
}

// NewPool creates a pool with the given capacity. Capacity is a deliberate
// upper bound chosen by the caller; the pool never grows on its own.
func NewPool(capacity int) (*Pool, error) {
	if capacity <= 0 {
		return nil, errors.Newf("pool capacity must be positive, got %d", capacity)
	}

	p := &Pool{
		slots: make([]slot, capacity),
		free:  make([]int, 0, capacity),
	}
	for i := range p.slots {
		p.slots[i].generation = 1
	}
	// Free list in reverse so Acquire hands out slot 0 first
	for i := capacity - 1; i >= 0; i-- {
		p.free = append(p.free, i)
	}
	return p, nil
}

// Acquire returns a free slot marked assigned, or ErrPoolExhausted when
// every slot is taken. Exhaustion is a signal, not a crash: the caller
// decides whether to truncate or reconfigure.
func (p *Pool) Acquire() (Handle, error) {
	if len(p.free) == 0 {
		return Handle{}, errors.Wrapf(errors.ErrPoolExhausted, "capacity %d", len(p.slots))
	}

	idx := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]

	s := &p.slots[idx]
	s.state = stateAssigned
	s.visible = true
	return Handle{index: idx, generation: s.generation}, nil
}

// Rebind overwrites the content of an assigned slot. Free slots and stale
// handles are rejected.
func (p *Pool) Rebind(h Handle, entry pictograph.Entry) error {
	s, err := p.deref(h)
	if err != nil {
		return err
	}
	s.entry = entry
	return nil
}

// Entry returns the content bound to an assigned slot.
func (p *Pool) Entry(h Handle) (pictograph.Entry, error) {
	s, err := p.deref(h)
	if err != nil {
		return pictograph.Entry{}, err
	}
	return s.entry, nil
}

// Valid reports whether the handle still refers to a live assignment.
func (p *Pool) Valid(h Handle) bool {
	_, err := p.deref(h)
	return err == nil
}

// Visible reports the slot's visibility flag.
func (p *Pool) Visible(h Handle) (bool, error) {
	s, err := p.deref(h)
	if err != nil {
		return false, err
	}
	return s.visible, nil
}

// SetVisible toggles an assigned slot without releasing it. Hiding is how
// the presentation layer "removes" an option; the slot itself stays alive.
func (p *Pool) SetVisible(h Handle, visible bool) error {
	s, err := p.deref(h)
	if err != nil {
		return err
	}
	s.visible = visible
	return nil
}

// ReleaseAll recycles every assigned slot: content cleared, visibility off,
// generation bumped so outstanding handles go stale. This is the only
// release path, and calling it with nothing assigned is a no-op.
func (p *Pool) ReleaseAll() {
	released := 0
	for i := range p.slots {
		s := &p.slots[i]
		if s.state != stateAssigned {
			continue
		}
		s.state = stateFree
		s.entry = pictograph.Entry{}
		s.visible = false
		s.generation++
		released++
	}

	// Every slot is free now; rebuild the free list so Acquire hands out
	// slot 0 first again. Repeated resolutions of the same query must
	// produce the same slot order.
	p.free = p.free[:0]
	for i := len(p.slots) - 1; i >= 0; i-- {
		p.free = append(p.free, i)
	}

	if released > 0 {
		logger.Debugw("render slots released",
			"slots", released)
	}
}

// Capacity returns the fixed slot count.
func (p *Pool) Capacity() int { return len(p.slots) }

// Assigned returns how many slots are currently bound.
func (p *Pool) Assigned() int { return len(p.slots) - len(p.free) }

// Free returns how many slots are available.
func (p *Pool) Free() int { return len(p.free) }

func (p *Pool) deref(h Handle) (*slot, error) {
	if h.index < 0 || h.index >= len(p.slots) {
		return nil, errors.Wrapf(errors.ErrStaleHandle, "index %d out of range", h.index)
	}
	s := &p.slots[h.index]
	if h.generation != s.generation {
		return nil, errors.Wrapf(errors.ErrStaleHandle, "slot %d generation %d, handle generation %d",
			h.index, s.generation, h.generation)
	}
	if s.state != stateAssigned {
		return nil, errors.Wrapf(errors.ErrNotAssigned, "slot %d", h.index)
	}
	return s, nil
}
