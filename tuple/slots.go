// File: tuple/slots.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Canonical field selectors, one per field of every arity. SlotIOfN selects
// field I of a TN record; the returned api.Slot carries both the record
// shape and the field type, so it only composes with matching pools.

package tuple

import "github.com/momentics/tuplepool/api"

// Arity 1.

func Slot0Of1[A any]() api.Slot[T1[A], A] {
	return api.NewSlot(func(t *T1[A]) *A { return &t.V0 })
}

// Arity 2.

func Slot0Of2[A, B any]() api.Slot[T2[A, B], A] {
	return api.NewSlot(func(t *T2[A, B]) *A { return &t.V0 })
}

func Slot1Of2[A, B any]() api.Slot[T2[A, B], B] {
	return api.NewSlot(func(t *T2[A, B]) *B { return &t.V1 })
}

// Arity 3.

func Slot0Of3[A, B, C any]() api.Slot[T3[A, B, C], A] {
	return api.NewSlot(func(t *T3[A, B, C]) *A { return &t.V0 })
}

func Slot1Of3[A, B, C any]() api.Slot[T3[A, B, C], B] {
	return api.NewSlot(func(t *T3[A, B, C]) *B { return &t.V1 })
}

func Slot2Of3[A, B, C any]() api.Slot[T3[A, B, C], C] {
	return api.NewSlot(func(t *T3[A, B, C]) *C { return &t.V2 })
}

// Arity 4.

func Slot0Of4[A, B, C, D any]() api.Slot[T4[A, B, C, D], A] {
	return api.NewSlot(func(t *T4[A, B, C, D]) *A { return &t.V0 })
}

func Slot1Of4[A, B, C, D any]() api.Slot[T4[A, B, C, D], B] {
	return api.NewSlot(func(t *T4[A, B, C, D]) *B { return &t.V1 })
}

func Slot2Of4[A, B, C, D any]() api.Slot[T4[A, B, C, D], C] {
	return api.NewSlot(func(t *T4[A, B, C, D]) *C { return &t.V2 })
}

func Slot3Of4[A, B, C, D any]() api.Slot[T4[A, B, C, D], D] {
	return api.NewSlot(func(t *T4[A, B, C, D]) *D { return &t.V3 })
}

// Arity 5.

func Slot0Of5[A, B, C, D, E any]() api.Slot[T5[A, B, C, D, E], A] {
	return api.NewSlot(func(t *T5[A, B, C, D, E]) *A { return &t.V0 })
}

func Slot1Of5[A, B, C, D, E any]() api.Slot[T5[A, B, C, D, E], B] {
	return api.NewSlot(func(t *T5[A, B, C, D, E]) *B { return &t.V1 })
}

func Slot2Of5[A, B, C, D, E any]() api.Slot[T5[A, B, C, D, E], C] {
	return api.NewSlot(func(t *T5[A, B, C, D, E]) *C { return &t.V2 })
}

func Slot3Of5[A, B, C, D, E any]() api.Slot[T5[A, B, C, D, E], D] {
	return api.NewSlot(func(t *T5[A, B, C, D, E]) *D { return &t.V3 })
}

func Slot4Of5[A, B, C, D, E any]() api.Slot[T5[A, B, C, D, E], E] {
	return api.NewSlot(func(t *T5[A, B, C, D, E]) *E { return &t.V4 })
}

// Arity 6.

func Slot0Of6[A, B, C, D, E, F any]() api.Slot[T6[A, B, C, D, E, F], A] {
	return api.NewSlot(func(t *T6[A, B, C, D, E, F]) *A { return &t.V0 })
}

func Slot1Of6[A, B, C, D, E, F any]() api.Slot[T6[A, B, C, D, E, F], B] {
	return api.NewSlot(func(t *T6[A, B, C, D, E, F]) *B { return &t.V1 })
}

func Slot2Of6[A, B, C, D, E, F any]() api.Slot[T6[A, B, C, D, E, F], C] {
	return api.NewSlot(func(t *T6[A, B, C, D, E, F]) *C { return &t.V2 })
}

func Slot3Of6[A, B, C, D, E, F any]() api.Slot[T6[A, B, C, D, E, F], D] {
	return api.NewSlot(func(t *T6[A, B, C, D, E, F]) *D { return &t.V3 })
}

func Slot4Of6[A, B, C, D, E, F any]() api.Slot[T6[A, B, C, D, E, F], E] {
	return api.NewSlot(func(t *T6[A, B, C, D, E, F]) *E { return &t.V4 })
}

func Slot5Of6[A, B, C, D, E, F any]() api.Slot[T6[A, B, C, D, E, F], F] {
	return api.NewSlot(func(t *T6[A, B, C, D, E, F]) *F { return &t.V5 })
}

// Arity 7.

func Slot0Of7[A, B, C, D, E, F, G any]() api.Slot[T7[A, B, C, D, E, F, G], A] {
	return api.NewSlot(func(t *T7[A, B, C, D, E, F, G]) *A { return &t.V0 })
}

func Slot1Of7[A, B, C, D, E, F, G any]() api.Slot[T7[A, B, C, D, E, F, G], B] {
	return api.NewSlot(func(t *T7[A, B, C, D, E, F, G]) *B { return &t.V1 })
}

func Slot2Of7[A, B, C, D, E, F, G any]() api.Slot[T7[A, B, C, D, E, F, G], C] {
	return api.NewSlot(func(t *T7[A, B, C, D, E, F, G]) *C { return &t.V2 })
}

func Slot3Of7[A, B, C, D, E, F, G any]() api.Slot[T7[A, B, C, D, E, F, G], D] {
	return api.NewSlot(func(t *T7[A, B, C, D, E, F, G]) *D { return &t.V3 })
}

func Slot4Of7[A, B, C, D, E, F, G any]() api.Slot[T7[A, B, C, D, E, F, G], E] {
	return api.NewSlot(func(t *T7[A, B, C, D, E, F, G]) *E { return &t.V4 })
}

func Slot5Of7[A, B, C, D, E, F, G any]() api.Slot[T7[A, B, C, D, E, F, G], F] {
	return api.NewSlot(func(t *T7[A, B, C, D, E, F, G]) *F { return &t.V5 })
}

func Slot6Of7[A, B, C, D, E, F, G any]() api.Slot[T7[A, B, C, D, E, F, G], G] {
	return api.NewSlot(func(t *T7[A, B, C, D, E, F, G]) *G { return &t.V6 })
}

// Arity 8.

func Slot0Of8[A, B, C, D, E, F, G, H any]() api.Slot[T8[A, B, C, D, E, F, G, H], A] {
	return api.NewSlot(func(t *T8[A, B, C, D, E, F, G, H]) *A { return &t.V0 })
}

func Slot1Of8[A, B, C, D, E, F, G, H any]() api.Slot[T8[A, B, C, D, E, F, G, H], B] {
	return api.NewSlot(func(t *T8[A, B, C, D, E, F, G, H]) *B { return &t.V1 })
}

func Slot2Of8[A, B, C, D, E, F, G, H any]() api.Slot[T8[A, B, C, D, E, F, G, H], C] {
	return api.NewSlot(func(t *T8[A, B, C, D, E, F, G, H]) *C { return &t.V2 })
}

func Slot3Of8[A, B, C, D, E, F, G, H any]() api.Slot[T8[A, B, C, D, E, F, G, H], D] {
	return api.NewSlot(func(t *T8[A, B, C, D, E, F, G, H]) *D { return &t.V3 })
}

func Slot4Of8[A, B, C, D, E, F, G, H any]() api.Slot[T8[A, B, C, D, E, F, G, H], E] {
	return api.NewSlot(func(t *T8[A, B, C, D, E, F, G, H]) *E { return &t.V4 })
}

func Slot5Of8[A, B, C, D, E, F, G, H any]() api.Slot[T8[A, B, C, D, E, F, G, H], F] {
	return api.NewSlot(func(t *T8[A, B, C, D, E, F, G, H]) *F { return &t.V5 })
}

func Slot6Of8[A, B, C, D, E, F, G, H any]() api.Slot[T8[A, B, C, D, E, F, G, H], G] {
	return api.NewSlot(func(t *T8[A, B, C, D, E, F, G, H]) *G { return &t.V6 })
}

func Slot7Of8[A, B, C, D, E, F, G, H any]() api.Slot[T8[A, B, C, D, E, F, G, H], H] {
	return api.NewSlot(func(t *T8[A, B, C, D, E, F, G, H]) *H { return &t.V7 })
}

// Arity 9.

func Slot0Of9[A, B, C, D, E, F, G, H, I any]() api.Slot[T9[A, B, C, D, E, F, G, H, I], A] {
	return api.NewSlot(func(t *T9[A, B, C, D, E, F, G, H, I]) *A { return &t.V0 })
}

func Slot1Of9[A, B, C, D, E, F, G, H, I any]() api.Slot[T9[A, B, C, D, E, F, G, H, I], B] {
	return api.NewSlot(func(t *T9[A, B, C, D, E, F, G, H, I]) *B { return &t.V1 })
}

func Slot2Of9[A, B, C, D, E, F, G, H, I any]() api.Slot[T9[A, B, C, D, E, F, G, H, I], C] {
	return api.NewSlot(func(t *T9[A, B, C, D, E, F, G, H, I]) *C { return &t.V2 })
}

func Slot3Of9[A, B, C, D, E, F, G, H, I any]() api.Slot[T9[A, B, C, D, E, F, G, H, I], D] {
	return api.NewSlot(func(t *T9[A, B, C, D, E, F, G, H, I]) *D { return &t.V3 })
}

func Slot4Of9[A, B, C, D, E, F, G, H, I any]() api.Slot[T9[A, B, C, D, E, F, G, H, I], E] {
	return api.NewSlot(func(t *T9[A, B, C, D, E, F, G, H, I]) *E { return &t.V4 })
}

func Slot5Of9[A, B, C, D, E, F, G, H, I any]() api.Slot[T9[A, B, C, D, E, F, G, H, I], F] {
	return api.NewSlot(func(t *T9[A, B, C, D, E, F, G, H, I]) *F { return &t.V5 })
}

func Slot6Of9[A, B, C, D, E, F, G, H, I any]() api.Slot[T9[A, B, C, D, E, F, G, H, I], G] {
	return api.NewSlot(func(t *T9[A, B, C, D, E, F, G, H, I]) *G { return &t.V6 })
}

func Slot7Of9[A, B, C, D, E, F, G, H, I any]() api.Slot[T9[A, B, C, D, E, F, G, H, I], H] {
	return api.NewSlot(func(t *T9[A, B, C, D, E, F, G, H, I]) *H { return &t.V7 })
}

func Slot8Of9[A, B, C, D, E, F, G, H, I any]() api.Slot[T9[A, B, C, D, E, F, G, H, I], I] {
	return api.NewSlot(func(t *T9[A, B, C, D, E, F, G, H, I]) *I { return &t.V8 })
}
