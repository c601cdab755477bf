// File: pool/debug.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Debug decorator. Runs the full structural invariant around every mutating
// call and emits a human-readable trace of each operation. Both behaviors
// toggle at runtime through a control.DebugOptions handle the caller owns;
// with both toggles off the layer is plain delegation. Strictly a
// development tool, usually stacked on top of Checked.

package pool

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/momentics/tuplepool/api"
	"github.com/momentics/tuplepool/control"
)

// Debug wraps any api.Pool with invariant checking and call tracing.
type Debug[T any] struct {
	inner api.Pool[T]
	opts  *control.DebugOptions
	log   *log.Logger
	trace *traceRing
}

var _ api.Pool[int] = (*Debug[int])(nil)

// NewDebug wraps inner. A nil opts gets fresh defaults (both toggles on);
// a nil writer sends trace output to stderr.
func NewDebug[T any](inner api.Pool[T], opts *control.DebugOptions, w io.Writer) *Debug[T] {
	if opts == nil {
		opts = control.NewDebugOptions()
	}
	if w == nil {
		w = os.Stderr
	}
	return &Debug[T]{
		inner: inner,
		opts:  opts,
		log:   log.New(w, "[tuplepool] ", log.LstdFlags|log.Lmicroseconds),
		trace: newTraceRing(opts.TraceDepth()),
	}
}

// Options returns the toggle handle this layer observes.
func (d *Debug[T]) Options() *control.DebugOptions { return d.opts }

// Unwrap returns the wrapped implementation.
func (d *Debug[T]) Unwrap() api.Pool[T] { return d.inner }

// DumpTrace returns the most recent trace records, oldest first.
func (d *Debug[T]) DumpTrace() []TraceRecord { return d.trace.snapshot() }

func (d *Debug[T]) emit(op, detail string, err error) {
	if !d.opts.TraceMessages() {
		return
	}
	d.trace.push(TraceRecord{Time: time.Now(), Op: op, Detail: detail, Err: err})
	if err != nil {
		d.log.Printf("%s %s error: %v", op, detail, err)
	} else {
		d.log.Printf("%s %s", op, detail)
	}
}

// invariantOn reports a structural violation found before or after op.
func (d *Debug[T]) invariantOn(p api.Pool[T], op, phase string) error {
	if !d.opts.CheckInvariants() {
		return nil
	}
	if err := p.Invariant(); err != nil {
		d.emit(op, phase+"-invariant", err)
		return err
	}
	return nil
}

// mutate brackets a mutating call with invariant passes.
func (d *Debug[T]) mutate(op string, fn func() (string, error)) error {
	if err := d.invariantOn(d.inner, op, "pre"); err != nil {
		return err
	}
	detail, err := fn()
	d.emit(op, detail, err)
	if verr := d.invariantOn(d.inner, op, "post"); verr != nil && err == nil {
		err = verr
	}
	return err
}

func (d *Debug[T]) NewTuple(v T) (api.Pointer, error) {
	var ptr api.Pointer
	err := d.mutate("new-tuple", func() (string, error) {
		var err error
		ptr, err = d.inner.NewTuple(v)
		return fmt.Sprintf("ptr=%#x", uint64(ptr.ID())), err
	})
	return ptr, err
}

func (d *Debug[T]) Free(ptr api.Pointer) error {
	return d.mutate("free", func() (string, error) {
		return fmt.Sprintf("ptr=%#x", uint64(ptr.ID())), d.inner.Free(ptr)
	})
}

func (d *Debug[T]) GetTuple(ptr api.Pointer) (T, error) {
	v, err := d.inner.GetTuple(ptr)
	d.emit("get-tuple", fmt.Sprintf("ptr=%#x", uint64(ptr.ID())), err)
	return v, err
}

func (d *Debug[T]) SetTuple(ptr api.Pointer, v T) error {
	return d.mutate("set-tuple", func() (string, error) {
		return fmt.Sprintf("ptr=%#x", uint64(ptr.ID())), d.inner.SetTuple(ptr, v)
	})
}

func (d *Debug[T]) Ref(ptr api.Pointer) (*T, error) {
	t, err := d.inner.Ref(ptr)
	d.emit("ref", fmt.Sprintf("ptr=%#x", uint64(ptr.ID())), err)
	return t, err
}

// UnsafeRef traces but adds no validation of its own; stack this layer on
// Checked to have the unsafe path validated too.
func (d *Debug[T]) UnsafeRef(ptr api.Pointer) *T {
	d.emit("unsafe-ref", fmt.Sprintf("ptr=%#x", uint64(ptr.ID())), nil)
	return d.inner.UnsafeRef(ptr)
}

func (d *Debug[T]) IsValid(ptr api.Pointer) bool { return d.inner.IsValid(ptr) }

func (d *Debug[T]) Capacity() int { return d.inner.Capacity() }
func (d *Debug[T]) Length() int   { return d.inner.Length() }
func (d *Debug[T]) IsFull() bool  { return d.inner.IsFull() }

func (d *Debug[T]) IDOf(ptr api.Pointer) api.ID { return d.inner.IDOf(ptr) }

func (d *Debug[T]) PointerOfID(id api.ID) (api.Pointer, error) {
	ptr, err := d.inner.PointerOfID(id)
	d.emit("pointer-of-id", fmt.Sprintf("id=%#x", uint64(id)), err)
	return ptr, err
}

// Grow checks the invariant on the old pool before and on the grown pool
// after, then re-wraps the result sharing this layer's options, logger and
// trace ring.
func (d *Debug[T]) Grow(capacity int) (api.Pool[T], error) {
	if err := d.invariantOn(d.inner, "grow", "pre"); err != nil {
		return nil, err
	}
	g, err := d.inner.Grow(capacity)
	if err != nil {
		d.emit("grow", fmt.Sprintf("capacity=%d", capacity), err)
		return nil, err
	}
	d.emit("grow", fmt.Sprintf("capacity=%d", g.Capacity()), nil)
	if err := d.invariantOn(g, "grow", "post"); err != nil {
		return nil, err
	}
	return &Debug[T]{inner: g, opts: d.opts, log: d.log, trace: d.trace}, nil
}

func (d *Debug[T]) Invariant() error { return d.inner.Invariant() }

func (d *Debug[T]) Stats() api.PoolStats { return d.inner.Stats() }
