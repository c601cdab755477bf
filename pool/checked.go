// File: pool/checked.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error-check decorator. Validates every pointer-taking operation in full
// before delegating, converting the core's undefined-behavior-on-misuse
// contract into deterministic, classified failures at the cost of one
// validity check per call.

package pool

import "github.com/momentics/tuplepool/api"

// Checked wraps any api.Pool and rejects null, stale and foreign handles
// with api.ErrInvalidPointer before the wrapped implementation sees them.
type Checked[T any] struct {
	inner api.Pool[T]
}

var _ api.Pool[int] = (*Checked[int])(nil)

// NewChecked wraps inner in full handle validation.
func NewChecked[T any](inner api.Pool[T]) *Checked[T] {
	return &Checked[T]{inner: inner}
}

// Unwrap returns the wrapped implementation.
func (c *Checked[T]) Unwrap() api.Pool[T] { return c.inner }

// validate classifies a failing handle using only the Pool contract: null
// first, indices beyond capacity are foreign, everything else is stale.
func (c *Checked[T]) validate(ptr api.Pointer) error {
	if c.inner.IsValid(ptr) {
		return nil
	}
	fault := api.FaultStale
	switch {
	case ptr.IsNull():
		fault = api.FaultNull
	case ptr.Index() >= c.inner.Capacity():
		fault = api.FaultRange
	}
	return invalidPointer(ptr, fault)
}

func (c *Checked[T]) NewTuple(v T) (api.Pointer, error) { return c.inner.NewTuple(v) }

func (c *Checked[T]) Free(ptr api.Pointer) error {
	if err := c.validate(ptr); err != nil {
		return err
	}
	return c.inner.Free(ptr)
}

func (c *Checked[T]) GetTuple(ptr api.Pointer) (T, error) {
	if err := c.validate(ptr); err != nil {
		var zero T
		return zero, err
	}
	return c.inner.GetTuple(ptr)
}

func (c *Checked[T]) SetTuple(ptr api.Pointer, v T) error {
	if err := c.validate(ptr); err != nil {
		return err
	}
	return c.inner.SetTuple(ptr, v)
}

func (c *Checked[T]) Ref(ptr api.Pointer) (*T, error) {
	if err := c.validate(ptr); err != nil {
		return nil, err
	}
	return c.inner.Ref(ptr)
}

// UnsafeRef still validates: the whole point of this layer is that no
// misuse goes unreported. The signature has no error channel, so a failing
// handle panics with the classified error instead of corrupting a slot.
func (c *Checked[T]) UnsafeRef(ptr api.Pointer) *T {
	if err := c.validate(ptr); err != nil {
		panic(err)
	}
	return c.inner.UnsafeRef(ptr)
}

func (c *Checked[T]) IsValid(ptr api.Pointer) bool { return c.inner.IsValid(ptr) }

func (c *Checked[T]) Capacity() int { return c.inner.Capacity() }
func (c *Checked[T]) Length() int   { return c.inner.Length() }
func (c *Checked[T]) IsFull() bool  { return c.inner.IsFull() }

func (c *Checked[T]) IDOf(ptr api.Pointer) api.ID { return c.inner.IDOf(ptr) }

func (c *Checked[T]) PointerOfID(id api.ID) (api.Pointer, error) {
	return c.inner.PointerOfID(id)
}

// Grow grows the wrapped pool and re-wraps the result, so the checking
// discipline survives growth.
func (c *Checked[T]) Grow(capacity int) (api.Pool[T], error) {
	g, err := c.inner.Grow(capacity)
	if err != nil {
		return nil, err
	}
	return &Checked[T]{inner: g}, nil
}

func (c *Checked[T]) Invariant() error { return c.inner.Invariant() }

func (c *Checked[T]) Stats() api.PoolStats { return c.inner.Stats() }
