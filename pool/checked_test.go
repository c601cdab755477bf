package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/tuplepool/api"
	"github.com/momentics/tuplepool/pool"
	"github.com/momentics/tuplepool/tuple"
)

func newChecked(t *testing.T, capacity int) *pool.Checked[pair] {
	t.Helper()
	core, err := pool.NewPool(capacity, dummy)
	require.NoError(t, err)
	return pool.NewChecked[pair](core)
}

// Every pointer-taking operation on a freed handle must fail with
// InvalidPointer, classified as stale — in 100% of attempts.
func TestCheckedRejectsFreedPointerEverywhere(t *testing.T) {
	c := newChecked(t, 2)
	ptr, err := c.NewTuple(tuple.Make2(1, true))
	require.NoError(t, err)
	require.NoError(t, c.Free(ptr))

	// Reuse the slot so the core alone would happily serve the stale handle.
	_, err = c.NewTuple(tuple.Make2(2, false))
	require.NoError(t, err)

	first := tuple.Slot0Of2[int, bool]()
	attempts := []struct {
		name string
		call func() error
	}{
		{"free", func() error { return c.Free(ptr) }},
		{"get-tuple", func() error { _, err := c.GetTuple(ptr); return err }},
		{"set-tuple", func() error { return c.SetTuple(ptr, dummy) }},
		{"ref", func() error { _, err := c.Ref(ptr); return err }},
		{"get", func() error { _, err := pool.Get[pair](c, ptr, first); return err }},
		{"set", func() error { return pool.Set[pair](c, ptr, first, 9) }},
	}
	for _, a := range attempts {
		t.Run(a.name, func(t *testing.T) {
			err := a.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, api.ErrInvalidPointer)
			assert.Equal(t, api.FaultStale, api.FaultOf(err))
		})
	}
}

func TestCheckedClassifiesNull(t *testing.T) {
	c := newChecked(t, 1)
	err := c.Free(api.Null())
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrInvalidPointer)
	assert.Equal(t, api.FaultNull, api.FaultOf(err))
}

func TestCheckedClassifiesForeignPointer(t *testing.T) {
	c := newChecked(t, 1)

	// A handle minted by a bigger pool with an index this pool cannot hold.
	other, err := pool.NewPool(8, dummy)
	require.NoError(t, err)
	var foreign api.Pointer
	for i := 0; i < 8; i++ {
		foreign, err = other.NewTuple(tuple.Make2(i, false))
		require.NoError(t, err)
	}

	_, err = c.GetTuple(foreign)
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrInvalidPointer)
	assert.Equal(t, api.FaultRange, api.FaultOf(err))
}

func TestCheckedUnsafeRefStillValidates(t *testing.T) {
	c := newChecked(t, 1)
	ptr, err := c.NewTuple(tuple.Make2(1, true))
	require.NoError(t, err)
	require.NoError(t, c.Free(ptr))

	assert.Panics(t, func() { c.UnsafeRef(ptr) })
	assert.Panics(t, func() { pool.UnsafeGet[pair](c, ptr, tuple.Slot0Of2[int, bool]()) })
}

func TestCheckedDelegatesValidOperations(t *testing.T) {
	c := newChecked(t, 2)
	ptr, err := c.NewTuple(tuple.Make2(3, true))
	require.NoError(t, err)

	v, err := c.GetTuple(ptr)
	require.NoError(t, err)
	assert.Equal(t, tuple.Make2(3, true), v)

	require.NoError(t, c.SetTuple(ptr, tuple.Make2(4, false)))
	assert.Equal(t, 4, pool.UnsafeGet[pair](c, ptr, tuple.Slot0Of2[int, bool]()))

	assert.Equal(t, 2, c.Capacity())
	assert.Equal(t, 1, c.Length())
	assert.Equal(t, int64(1), c.Stats().TotalAllocs)
	require.NoError(t, c.Invariant())
}

func TestCheckedGrowRewraps(t *testing.T) {
	c := newChecked(t, 1)
	ptr, err := c.NewTuple(tuple.Make2(1, true))
	require.NoError(t, err)
	require.NoError(t, c.Free(ptr))

	grown, err := c.Grow(2)
	require.NoError(t, err)
	_, ok := grown.(*pool.Checked[pair])
	require.True(t, ok, "checking discipline survives growth")

	// The stale handle is still rejected, not served, by the grown pool.
	_, err = grown.GetTuple(ptr)
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrInvalidPointer)
}

func TestCheckedIDRoundTrip(t *testing.T) {
	c := newChecked(t, 1)
	ptr, err := c.NewTuple(tuple.Make2(1, true))
	require.NoError(t, err)
	back, err := c.PointerOfID(c.IDOf(ptr))
	require.NoError(t, err)
	assert.True(t, api.Same(ptr, back))
}
