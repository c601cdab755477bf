// File: api/pointer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Generational slot handles. A Pointer refers to exactly one allocation in
// exactly one pool: the slot index plus the slot's generation counter as it
// was when the allocation was made. Freeing the slot bumps the generation,
// so every copy of the handle goes stale at once.

package api

// Pointer is a non-owning handle to one pool slot. The zero value is the
// null pointer, which is never valid and never equal to a live handle.
//
// Pointers are minted by Pool.NewTuple and remain meaningful across Grow.
// They are plain values: copying one copies the handle, not the tuple.
type Pointer struct {
	slot uint32 // slot index + 1; 0 marks the null pointer
	gen  uint32 // generation captured at allocation
}

// Null returns the null pointer.
func Null() Pointer { return Pointer{} }

// MakePointer assembles a handle from a slot index and generation.
// Only pool implementations should mint pointers; a fabricated handle is
// exactly the kind of misuse the checked layer reports.
func MakePointer(index int, gen uint32) Pointer {
	return Pointer{slot: uint32(index) + 1, gen: gen}
}

// IsNull reports whether p is the null pointer.
func (p Pointer) IsNull() bool { return p.slot == 0 }

// Index returns the slot index, or -1 for the null pointer.
func (p Pointer) Index() int { return int(p.slot) - 1 }

// Generation returns the generation captured when p was minted.
func (p Pointer) Generation() uint32 { return p.gen }

// Same reports representation equality of two handles. Unlike validity,
// this is independent of any pool state: two copies of one allocation's
// handle are Same even after the allocation is freed.
func Same(p, q Pointer) bool { return p == q }

// ID is a serializable rendering of a Pointer. It is distinct for every
// allocation over a slot's reuse history and round-trips through
// Pool.PointerOfID only while the referenced allocation is live.
type ID uint64

// NullID is the fixed sentinel ID of the null pointer.
const NullID ID = 0

// ID packs the handle into its serializable form. Total: the null pointer
// maps to NullID.
func (p Pointer) ID() ID {
	return ID(uint64(p.slot)<<32 | uint64(p.gen))
}

// Index returns the slot index encoded in the ID, or -1 for NullID.
func (id ID) Index() int { return int(id>>32) - 1 }

// Generation returns the generation encoded in the ID.
func (id ID) Generation() uint32 { return uint32(id) }
