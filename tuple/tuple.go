// File: tuple/tuple.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-arity record types. Purely descriptive: a TupleN value has no
// identity beyond its shape and field values.

package tuple

// T1 is a record of one field.
type T1[A any] struct {
	V0 A
}

// T2 is a record of two fields.
type T2[A, B any] struct {
	V0 A
	V1 B
}

// T3 is a record of three fields.
type T3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// T4 is a record of four fields.
type T4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

// T5 is a record of five fields.
type T5[A, B, C, D, E any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
}

// T6 is a record of six fields.
type T6[A, B, C, D, E, F any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
}

// T7 is a record of seven fields.
type T7[A, B, C, D, E, F, G any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
}

// T8 is a record of eight fields.
type T8[A, B, C, D, E, F, G, H any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
}

// T9 is a record of nine fields.
type T9[A, B, C, D, E, F, G, H, I any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
	V8 I
}

// Make1 through Make9 assemble records from field values.

func Make1[A any](a A) T1[A] { return T1[A]{V0: a} }

func Make2[A, B any](a A, b B) T2[A, B] { return T2[A, B]{V0: a, V1: b} }

func Make3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return T3[A, B, C]{V0: a, V1: b, V2: c}
}

func Make4[A, B, C, D any](a A, b B, c C, d D) T4[A, B, C, D] {
	return T4[A, B, C, D]{V0: a, V1: b, V2: c, V3: d}
}

func Make5[A, B, C, D, E any](a A, b B, c C, d D, e E) T5[A, B, C, D, E] {
	return T5[A, B, C, D, E]{V0: a, V1: b, V2: c, V3: d, V4: e}
}

func Make6[A, B, C, D, E, F any](a A, b B, c C, d D, e E, f F) T6[A, B, C, D, E, F] {
	return T6[A, B, C, D, E, F]{V0: a, V1: b, V2: c, V3: d, V4: e, V5: f}
}

func Make7[A, B, C, D, E, F, G any](a A, b B, c C, d D, e E, f F, g G) T7[A, B, C, D, E, F, G] {
	return T7[A, B, C, D, E, F, G]{V0: a, V1: b, V2: c, V3: d, V4: e, V5: f, V6: g}
}

func Make8[A, B, C, D, E, F, G, H any](a A, b B, c C, d D, e E, f F, g G, h H) T8[A, B, C, D, E, F, G, H] {
	return T8[A, B, C, D, E, F, G, H]{V0: a, V1: b, V2: c, V3: d, V4: e, V5: f, V6: g, V7: h}
}

func Make9[A, B, C, D, E, F, G, H, I any](a A, b B, c C, d D, e E, f F, g G, h H, i I) T9[A, B, C, D, E, F, G, H, I] {
	return T9[A, B, C, D, E, F, G, H, I]{V0: a, V1: b, V2: c, V3: d, V4: e, V5: f, V6: g, V7: h, V8: i}
}
