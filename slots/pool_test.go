package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/austencloud/tka-engine/errors"
	"github.com/austencloud/tka-engine/pictograph"
)

func entry(letter string) pictograph.Entry {
	return pictograph.Entry{Letter: letter, StartPos: "alpha1", EndPos: "alpha3"}
}

func TestNewPoolRejectsNonPositiveCapacity(t *testing.T) {
	_, err := NewPool(0)
	assert.Error(t, err)
	_, err = NewPool(-3)
	assert.Error(t, err)
}

func TestAcquireRebindEntry(t *testing.T) {
	p, err := NewPool(4)
	require.NoError(t, err)

	h, err := p.Acquire()
	require.NoError(t, err)
	require.NoError(t, p.Rebind(h, entry("A")))

	got, err := p.Entry(h)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Letter)

	visible, err := p.Visible(h)
	require.NoError(t, err)
	assert.True(t, visible, "acquired slots start visible")
}

func TestPoolInvariantAssignedPlusFreeEqualsCapacity(t *testing.T) {
	p, err := NewPool(5)
	require.NoError(t, err)

	check := func() {
		assert.Equal(t, p.Capacity(), p.Assigned()+p.Free())
	}

	check()
	h1, _ := p.Acquire()
	check()
	_, _ = p.Acquire()
	check()
	require.NoError(t, p.Rebind(h1, entry("A")))
	check()
	p.ReleaseAll()
	check()
	assert.Equal(t, 0, p.Assigned())
}

func TestAcquireExhaustion(t *testing.T) {
	p, err := NewPool(2)
	require.NoError(t, err)

	_, err = p.Acquire()
	require.NoError(t, err)
	_, err = p.Acquire()
	require.NoError(t, err)

	_, err = p.Acquire()
	require.Error(t, err)
	assert.True(t, errors.IsPoolExhausted(err), "exhaustion is a signal, not a crash")
	assert.Equal(t, 0, p.Free())
}

func TestReleaseAllInvalidatesHandles(t *testing.T) {
	p, err := NewPool(2)
	require.NoError(t, err)

	h, _ := p.Acquire()
	require.NoError(t, p.Rebind(h, entry("A")))

	p.ReleaseAll()

	assert.False(t, p.Valid(h))
	_, err = p.Entry(h)
	assert.True(t, errors.IsStaleHandle(err), "recycled slot must reject the old handle")
	err = p.Rebind(h, entry("B"))
	assert.True(t, errors.IsStaleHandle(err))
}

func TestReleaseAllIsIdempotent(t *testing.T) {
	p, err := NewPool(3)
	require.NoError(t, err)

	h, _ := p.Acquire()
	p.ReleaseAll()

	// Second release is a no-op: no double-release, no generation churn
	p.ReleaseAll()
	assert.Equal(t, 3, p.Free())

	h2, err := p.Acquire()
	require.NoError(t, err)
	assert.False(t, p.Valid(h), "pre-release handle stays stale")
	assert.True(t, p.Valid(h2))
}

func TestSlotOrderDeterministicAcrossCycles(t *testing.T) {
	p, err := NewPool(3)
	require.NoError(t, err)

	first := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		h, err := p.Acquire()
		require.NoError(t, err)
		first = append(first, h.Index())
	}

	p.ReleaseAll()

	second := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		h, err := p.Acquire()
		require.NoError(t, err)
		second = append(second, h.Index())
	}

	assert.Equal(t, first, second, "slot assignment order must be stable across resolutions")
}

func TestSetVisibleTogglesWithoutRelease(t *testing.T) {
	p, err := NewPool(1)
	require.NoError(t, err)

	h, _ := p.Acquire()
	require.NoError(t, p.SetVisible(h, false))

	visible, err := p.Visible(h)
	require.NoError(t, err)
	assert.False(t, visible)
	assert.Equal(t, 1, p.Assigned(), "hiding is not releasing")
}

func TestZeroHandleIsInvalid(t *testing.T) {
	p, err := NewPool(2)
	require.NoError(t, err)

	var h Handle
	assert.False(t, p.Valid(h))
}

func TestStaleHandleAfterReacquire(t *testing.T) {
	p, err := NewPool(1)
	require.NoError(t, err)

	old, _ := p.Acquire()
	require.NoError(t, p.Rebind(old, entry("A")))
	p.ReleaseAll()

	fresh, err := p.Acquire()
	require.NoError(t, err)
	require.NoError(t, p.Rebind(fresh, entry("B")))

	// Same slot index, new generation: the old handle must not see B
	assert.Equal(t, old.Index(), fresh.Index())
	_, err = p.Entry(old)
	assert.True(t, errors.IsStaleHandle(err))

	got, err := p.Entry(fresh)
	require.NoError(t, err)
	assert.Equal(t, "B", got.Letter)
}
