package pool

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/tuplepool/api"
)

// White-box checks: corrupt the core directly and make sure Invariant and
// the debug layer report it.

func TestInvariantHealthyPool(t *testing.T) {
	p, err := NewPool(8, 0)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := p.NewTuple(i)
		require.NoError(t, err)
	}
	require.NoError(t, p.Invariant())
}

func TestInvariantDetectsLengthMismatch(t *testing.T) {
	p, err := NewPool(4, 0)
	require.NoError(t, err)
	_, err = p.NewTuple(1)
	require.NoError(t, err)

	p.length++
	err = p.Invariant()
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrInternal)
}

func TestInvariantDetectsFreeListCycle(t *testing.T) {
	p, err := NewPool(4, 0)
	require.NoError(t, err)

	// Point the second free slot back at the first.
	p.slots[1].next = 0
	err = p.Invariant()
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrInternal)
}

func TestInvariantDetectsLostSlot(t *testing.T) {
	p, err := NewPool(4, 0)
	require.NoError(t, err)

	// Slot 3 is neither live nor reachable from the free list.
	p.slots[2].next = freeListEnd
	err = p.Invariant()
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrInternal)
}

func TestInvariantDetectsLiveSlotOnFreeList(t *testing.T) {
	p, err := NewPool(2, 0)
	require.NoError(t, err)
	ptr, err := p.NewTuple(1)
	require.NoError(t, err)

	// Push the live slot's index onto the free list without freeing it.
	p.slots[1].next = int32(ptr.Index())
	p.slots[ptr.Index()].next = slotLive
	err = p.Invariant()
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrInternal)
}

func TestDebugLayerReportsCorruption(t *testing.T) {
	core, err := NewPool(4, 0)
	require.NoError(t, err)
	d := NewDebug[int](core, nil, io.Discard)

	_, err = d.NewTuple(1)
	require.NoError(t, err)

	core.length++ // corrupt behind the layer's back
	_, err = d.NewTuple(2)
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrInternal)

	recs := d.DumpTrace()
	last := recs[len(recs)-1]
	assert.Equal(t, "pre-invariant", last.Detail)
}
