// File: facade/tuplepool.go
// Unified facade layer for the tuplepool library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the TuplePool struct, which aggregates a layered pool
// behind a single facade. It builds the unchecked core, stacks the
// error-check and debug decorators according to immutable configuration,
// owns the debug toggle handle, and exposes a Control interface with pool
// stats and platform probes registered.

package facade

import (
	"io"

	"github.com/momentics/tuplepool/adapters"
	"github.com/momentics/tuplepool/api"
	ctl "github.com/momentics/tuplepool/control"
	"github.com/momentics/tuplepool/pool"
)

// Config holds parameters immutable per pool.
// Layering cannot change at runtime; the debug toggles inside Options can.
type Config struct {
	Capacity     int               // Number of slots in the initial pool
	ErrorChecked bool              // Wrap the core in full handle validation
	Debug        bool              // Stack the invariant/trace layer on top
	Options      *ctl.DebugOptions // Toggle handle for the debug layer; nil builds defaults
	TraceWriter  io.Writer         // Debug trace destination; nil means stderr
	EnableProbes bool              // Register pool.stats and platform probes on Control
}

// DefaultConfig returns default configuration values: a checked pool with
// the debug layer off, sized for a moderate working set.
func DefaultConfig() *Config {
	return &Config{
		Capacity:     1024,
		ErrorChecked: true,
		Debug:        false,
		EnableProbes: true,
	}
}

// TuplePool is the main facade type: the layered pool plus its control
// surface. Grow is routed through the facade so the consumed-pool contract
// is handled in one place.
type TuplePool[T any] struct {
	pool    api.Pool[T]
	debug   *pool.Debug[T] // non-nil iff cfg.Debug
	control *adapters.ControlAdapter
	config  *Config
}

// New constructs a layered pool for records of type T, pre-filling every
// slot with dummy.
func New[T any](cfg *Config, dummy T) (*TuplePool[T], error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	core, err := pool.NewPool[T](cfg.Capacity, dummy)
	if err != nil {
		return nil, err
	}

	var layered api.Pool[T] = core
	if cfg.ErrorChecked {
		layered = pool.NewChecked[T](layered)
	}
	var dbg *pool.Debug[T]
	if cfg.Debug {
		opts := cfg.Options
		if opts == nil {
			opts = ctl.NewDebugOptions()
		}
		dbg = pool.NewDebug[T](layered, opts, cfg.TraceWriter)
		layered = dbg
	}

	t := &TuplePool[T]{
		pool:    layered,
		debug:   dbg,
		control: adapters.NewControlAdapter(),
		config:  cfg,
	}
	t.control.SetConfig(map[string]any{
		"capacity":      cfg.Capacity,
		"error_checked": cfg.ErrorChecked,
		"debug":         cfg.Debug,
	})
	if cfg.EnableProbes {
		t.control.RegisterDebugProbe("pool.stats", func() any { return t.pool.Stats() })
	}
	return t, nil
}

// Pool returns the layered pool. Callers hold pointers minted by it and
// must not outlive a Grow issued through the facade with direct references
// to the pre-growth value.
func (t *TuplePool[T]) Pool() api.Pool[T] { return t.pool }

// Control returns the runtime control surface.
func (t *TuplePool[T]) Control() api.Control { return t.control }

// Options returns the debug toggle handle, nil when the debug layer is not
// configured.
func (t *TuplePool[T]) Options() *ctl.DebugOptions {
	if t.debug == nil {
		return nil
	}
	return t.debug.Options()
}

// DumpTrace returns the debug layer's recent call trace, nil without one.
func (t *TuplePool[T]) DumpTrace() []pool.TraceRecord {
	if t.debug == nil {
		return nil
	}
	return t.debug.DumpTrace()
}

// Grow swaps the facade's pool for a grown replacement. Extant pointers
// stay valid; the previous pool value is consumed.
func (t *TuplePool[T]) Grow(capacity int) error {
	g, err := t.pool.Grow(capacity)
	if err != nil {
		return err
	}
	t.pool = g
	if d, ok := g.(*pool.Debug[T]); ok {
		t.debug = d
	}
	return nil
}

// PublishStats copies the current pool stats into the control metrics
// registry under the "pool." prefix.
func (t *TuplePool[T]) PublishStats() {
	st := t.pool.Stats()
	t.control.SetMetric("pool.capacity", st.Capacity)
	t.control.SetMetric("pool.length", st.Length)
	t.control.SetMetric("pool.free_slots", st.FreeSlots)
	t.control.SetMetric("pool.total_allocs", st.TotalAllocs)
	t.control.SetMetric("pool.total_frees", st.TotalFrees)
	t.control.SetMetric("pool.grows", st.Grows)
	t.control.SetMetric("pool.utilization", st.Utilization)
}
