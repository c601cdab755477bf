// File: pool/access.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Typed field access. Get/Set go through the implementation's Ref, so the
// checked and debug layers intercept them; the Unsafe variants go through
// UnsafeRef and skip handle validation entirely on the bare core.

package pool

import "github.com/momentics/tuplepool/api"

// Get reads the field selected by s from the record ptr refers to.
func Get[T, F any](p api.Pool[T], ptr api.Pointer, s api.Slot[T, F]) (F, error) {
	t, err := p.Ref(ptr)
	if err != nil {
		var zero F
		return zero, err
	}
	return *s.Ref(t), nil
}

// Set writes the field selected by s in the record ptr refers to.
func Set[T, F any](p api.Pool[T], ptr api.Pointer, s api.Slot[T, F], v F) error {
	t, err := p.Ref(ptr)
	if err != nil {
		return err
	}
	*s.Ref(t) = v
	return nil
}

// UnsafeGet is Get without handle validation. On the bare core, calling it
// with an invalid pointer is undefined behavior: it may panic on a bounds
// check or silently read whichever record currently occupies the slot.
// Under Checked the call is validated and panics deterministically on
// misuse.
func UnsafeGet[T, F any](p api.Pool[T], ptr api.Pointer, s api.Slot[T, F]) F {
	return *s.Ref(p.UnsafeRef(ptr))
}

// UnsafeSet is Set without handle validation; same contract as UnsafeGet.
// Invalid pointers may corrupt unrelated live records.
func UnsafeSet[T, F any](p api.Pool[T], ptr api.Pointer, s api.Slot[T, F], v F) {
	*s.Ref(p.UnsafeRef(ptr)) = v
}

// UnsafeRef resolves the slot storage with no checks at all.
func (p *Pool[T]) UnsafeRef(ptr api.Pointer) *T {
	return &p.slots[ptr.Index()].value
}
