// File: api/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool contract shared by the unchecked core and its decorator layers.
// Typed field access goes through Slot selectors so a pool of one record
// shape cannot be read through another shape's accessors.

package api

// Slot is a typed selector for one field of a pooled record. A Slot for
// record type T and field type F only composes with pools of T, which is
// what makes cross-schema access a compile error rather than a runtime one.
type Slot[T, F any] struct {
	ref func(*T) *F
}

// NewSlot builds a selector from a field-reference function. The tuple
// package ships selectors for the canonical TupleN shapes; callers with
// their own record structs build theirs the same way:
//
//	weight := api.NewSlot(func(r *Record) *float64 { return &r.Weight })
func NewSlot[T, F any](ref func(*T) *F) Slot[T, F] {
	return Slot[T, F]{ref: ref}
}

// Ref resolves the selector against a record held in slot storage.
func (s Slot[T, F]) Ref(t *T) *F { return s.ref(t) }

// Pool manages a bounded arena of fixed-shape records addressed through
// generational Pointers. A single pool instance is not goroutine-safe;
// callers serialize access or wrap one mutating writer around it.
//
// The core implementation (pool.Pool) validates only what protects its own
// structure. The checked layer (pool.Checked) validates every handle in
// full, and the debug layer (pool.Debug) adds invariant passes and call
// tracing. All three satisfy this interface so they compose freely.
type Pool[T any] interface {
	// NewTuple allocates one slot, stores v in it and returns a live
	// handle. Fails with ErrPoolExhausted when the pool is full; the pool
	// is unchanged in that case.
	NewTuple(v T) (Pointer, error)

	// Free returns p's slot to the free list, overwrites it with the dummy
	// record and bumps the slot generation, invalidating every copy of p.
	Free(p Pointer) error

	// GetTuple returns an independent snapshot of the record p refers to.
	GetTuple(p Pointer) (T, error)

	// SetTuple overwrites the whole record p refers to.
	SetTuple(p Pointer, v T) error

	// Ref returns a view into p's slot storage for field access through
	// Slot selectors. The view is invalidated by Free and by Grow.
	Ref(p Pointer) (*T, error)

	// UnsafeRef is Ref without any handle validation. Calling it with an
	// invalid pointer is undefined behavior: it may panic or silently
	// address whichever record currently occupies the slot. It exists to
	// strip the validity check from hot paths; see pool.UnsafeGet.
	UnsafeRef(p Pointer) *T

	// IsValid reports whether p is non-null, refers to a live slot of this
	// pool and carries that slot's current generation. Pure; never fails.
	IsValid(p Pointer) bool

	// Capacity returns the number of slots, Length the number currently
	// live. Both O(1). IsFull is Length == Capacity.
	Capacity() int
	Length() int
	IsFull() bool

	// IDOf renders a handle serializable. Total: null maps to NullID.
	IDOf(p Pointer) ID

	// PointerOfID reconstructs a handle from an ID. Fails with
	// ErrUnknownID once the referenced allocation has been freed (the
	// slot generation no longer matches).
	PointerOfID(id ID) (Pointer, error)

	// Grow produces a replacement pool with larger capacity (0 requests
	// doubling), copying every live record and preserving per-slot
	// generations, so extant handles stay valid against the result. The
	// receiver is consumed and must not be used afterwards.
	Grow(capacity int) (Pool[T], error)

	// Invariant runs a full structural check: the free list and the live
	// slots partition the capacity, no index appears twice, and Length
	// matches the live count. O(capacity).
	Invariant() error

	// Stats returns allocation accounting for observability.
	Stats() PoolStats
}

// PoolStats aggregates allocation and reuse accounting for one pool.
type PoolStats struct {
	Capacity    int
	Length      int
	FreeSlots   int
	TotalAllocs int64
	TotalFrees  int64
	Grows       int64
	Utilization float64 // Length over Capacity, 0 for an empty pool
}
