// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unchecked core implementation. Slot storage is one contiguous backing
// slice; the free list is threaded through the unused slots themselves, so
// the pool costs no per-slot allocation beyond the records it stores.

package pool

import "github.com/momentics/tuplepool/api"

const (
	// slotLive marks an allocated slot; any value >= freeListEnd is a
	// free-list link (the next free index, or freeListEnd for the tail).
	slotLive    int32 = -2
	freeListEnd int32 = -1
)

type slot[T any] struct {
	value T
	gen   uint32 // bumped on every Free, never reset
	next  int32  // slotLive, or free-list link
}

// Pool is the unchecked core. It keeps itself structurally sound (an
// out-of-range or freed handle is rejected) but does not compare handle
// generations: a stale pointer whose slot has been reused addresses the
// current occupant. Wrap it in Checked to turn that hazard into a reported
// error.
type Pool[T any] struct {
	slots    []slot[T]
	freeHead int32
	length   int
	dummy    T // written into every free slot so reads never see garbage

	allocs int64
	frees  int64
	grows  int64
}

var _ api.Pool[int] = (*Pool[int])(nil)

// NewPool creates a pool of exactly capacity slots, all dummy-filled and
// free. Capacity may be zero (the pool starts full); negative capacity
// fails with api.ErrInvalidArgument.
func NewPool[T any](capacity int, dummy T) (*Pool[T], error) {
	if capacity < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "pool: negative capacity").
			WithContext("capacity", capacity)
	}
	p := &Pool[T]{
		slots:    make([]slot[T], capacity),
		freeHead: freeListEnd,
		dummy:    dummy,
	}
	for i := range p.slots {
		p.slots[i].value = dummy
		p.slots[i].next = int32(i + 1)
	}
	if capacity > 0 {
		p.slots[capacity-1].next = freeListEnd
		p.freeHead = 0
	}
	return p, nil
}

// Capacity returns the number of slots.
func (p *Pool[T]) Capacity() int { return len(p.slots) }

// Length returns the number of live slots.
func (p *Pool[T]) Length() int { return p.length }

// IsFull reports whether every slot is live.
func (p *Pool[T]) IsFull() bool { return p.length == len(p.slots) }

// NewTuple pops the most recently freed slot (LIFO, keeps hot memory hot),
// stores v and returns a handle carrying the slot's current generation.
func (p *Pool[T]) NewTuple(v T) (api.Pointer, error) {
	if p.freeHead == freeListEnd {
		return api.Null(), api.NewError(api.ErrCodePoolExhausted, "pool: no free slots").
			WithContext("capacity", len(p.slots))
	}
	i := p.freeHead
	s := &p.slots[i]
	p.freeHead = s.next
	s.next = slotLive
	s.value = v
	p.length++
	p.allocs++
	return api.MakePointer(int(i), s.gen), nil
}

// Free overwrites the slot with the dummy record, bumps its generation and
// pushes the index onto the free list. The generation bump is what
// invalidates every extant copy of the handle.
//
// The core checks range and liveness only. A stale handle whose slot has
// been reused passes both checks and frees the current occupant; run under
// Checked to catch that class of misuse.
func (p *Pool[T]) Free(ptr api.Pointer) error {
	s, err := p.deref(ptr)
	if err != nil {
		return err
	}
	s.value = p.dummy
	s.gen++
	s.next = p.freeHead
	p.freeHead = int32(ptr.Index())
	p.length--
	p.frees++
	return nil
}

// GetTuple returns a snapshot copy of the record, not a view into the slot.
func (p *Pool[T]) GetTuple(ptr api.Pointer) (T, error) {
	s, err := p.deref(ptr)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.value, nil
}

// SetTuple overwrites the whole record.
func (p *Pool[T]) SetTuple(ptr api.Pointer, v T) error {
	s, err := p.deref(ptr)
	if err != nil {
		return err
	}
	s.value = v
	return nil
}

// Ref returns a view into the slot storage for selector-based field access.
// The view goes stale on Free and on Grow.
func (p *Pool[T]) Ref(ptr api.Pointer) (*T, error) {
	s, err := p.deref(ptr)
	if err != nil {
		return nil, err
	}
	return &s.value, nil
}

// IsValid reports full handle validity: non-null, in range, live, and
// generation match.
func (p *Pool[T]) IsValid(ptr api.Pointer) bool {
	i := ptr.Index()
	if i < 0 || i >= len(p.slots) {
		return false
	}
	s := &p.slots[i]
	return s.next == slotLive && s.gen == ptr.Generation()
}

// IDOf renders the handle serializable. Total; null maps to api.NullID.
func (p *Pool[T]) IDOf(ptr api.Pointer) api.ID { return ptr.ID() }

// PointerOfID reconstructs a handle. The null sentinel round-trips to the
// null pointer; anything whose slot was freed since the ID was taken fails
// with api.ErrUnknownID.
func (p *Pool[T]) PointerOfID(id api.ID) (api.Pointer, error) {
	if id == api.NullID {
		return api.Null(), nil
	}
	i := id.Index()
	if i < 0 || i >= len(p.slots) {
		return api.Null(), api.NewError(api.ErrCodeUnknownID, "pool: id out of range").
			WithContext("id", id)
	}
	s := &p.slots[i]
	if s.next != slotLive || s.gen != id.Generation() {
		return api.Null(), api.NewError(api.ErrCodeUnknownID, "pool: id no longer live").
			WithContext("id", id)
	}
	return api.MakePointer(i, s.gen), nil
}

// Grow produces a replacement pool. Live records and their generations are
// copied verbatim at the same indices, so every valid handle stays valid
// against the result. New slots join the tail of the existing free list;
// since Grow is normally driven by exhaustion, that walk is almost always
// empty. capacity 0 requests doubling (floor 1); anything else must exceed
// the current capacity. The receiver is consumed.
func (p *Pool[T]) Grow(capacity int) (api.Pool[T], error) {
	cur := len(p.slots)
	if capacity == 0 {
		capacity = 2 * cur
		if capacity == 0 {
			capacity = 1
		}
	}
	if capacity <= cur {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "pool: grow capacity not larger").
			WithContext("capacity", capacity).
			WithContext("current", cur)
	}
	g := &Pool[T]{
		slots:    make([]slot[T], capacity),
		freeHead: p.freeHead,
		length:   p.length,
		dummy:    p.dummy,
		allocs:   p.allocs,
		frees:    p.frees,
		grows:    p.grows + 1,
	}
	copy(g.slots, p.slots)
	for i := cur; i < capacity; i++ {
		g.slots[i].value = g.dummy
		g.slots[i].next = int32(i + 1)
	}
	g.slots[capacity-1].next = freeListEnd
	if g.freeHead == freeListEnd {
		g.freeHead = int32(cur)
	} else {
		tail := g.freeHead
		for g.slots[tail].next != freeListEnd {
			tail = g.slots[tail].next
		}
		g.slots[tail].next = int32(cur)
	}
	return g, nil
}

// Stats returns allocation accounting.
func (p *Pool[T]) Stats() api.PoolStats {
	st := api.PoolStats{
		Capacity:    len(p.slots),
		Length:      p.length,
		FreeSlots:   len(p.slots) - p.length,
		TotalAllocs: p.allocs,
		TotalFrees:  p.frees,
		Grows:       p.grows,
	}
	if st.Capacity > 0 {
		st.Utilization = float64(st.Length) / float64(st.Capacity)
	}
	return st
}

// deref resolves a handle to its slot, rejecting anything that would break
// pool structure. Generation staleness is deliberately not checked here.
func (p *Pool[T]) deref(ptr api.Pointer) (*slot[T], error) {
	i := ptr.Index()
	if i < 0 || i >= len(p.slots) {
		return nil, invalidPointer(ptr, faultFor(ptr, len(p.slots)))
	}
	s := &p.slots[i]
	if s.next != slotLive {
		return nil, invalidPointer(ptr, api.FaultStale)
	}
	return s, nil
}

// faultFor classifies a handle that failed range/null screening.
func faultFor(ptr api.Pointer, capacity int) api.PointerFault {
	switch {
	case ptr.IsNull():
		return api.FaultNull
	case ptr.Index() >= capacity:
		return api.FaultRange
	default:
		return api.FaultStale
	}
}

func invalidPointer(ptr api.Pointer, fault api.PointerFault) *api.Error {
	return api.NewError(api.ErrCodeInvalidPointer, "pool: invalid pointer").
		WithContext("fault", fault).
		WithContext("pointer", ptr.ID())
}
