// File: control/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Debug-layer toggles. Both default to on; flipping them is atomic, so the
// owner can retune a running system without a lock around the pool.

package control

import (
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"
)

// DefaultTraceDepth bounds the debug layer's call trace when the
// environment does not say otherwise.
const DefaultTraceDepth = 64

// DebugOptions is the explicit handle through which a pool.Debug layer's
// behavior is controlled. The caller who builds the layer owns the handle;
// toggles may be flipped at any time and take effect on the next call.
type DebugOptions struct {
	checkInvariants atomic.Bool
	traceMessages   atomic.Bool
	traceDepth      int
}

// NewDebugOptions returns a handle with both toggles on and the default
// trace depth.
func NewDebugOptions() *DebugOptions {
	o := &DebugOptions{traceDepth: DefaultTraceDepth}
	o.checkInvariants.Store(true)
	o.traceMessages.Store(true)
	return o
}

// CheckInvariants reports whether the debug layer runs structural
// invariant passes around mutating calls.
func (o *DebugOptions) CheckInvariants() bool { return o.checkInvariants.Load() }

// SetCheckInvariants flips the invariant toggle.
func (o *DebugOptions) SetCheckInvariants(v bool) { o.checkInvariants.Store(v) }

// TraceMessages reports whether the debug layer emits per-call trace.
func (o *DebugOptions) TraceMessages() bool { return o.traceMessages.Load() }

// SetTraceMessages flips the trace toggle.
func (o *DebugOptions) SetTraceMessages(v bool) { o.traceMessages.Store(v) }

// TraceDepth is the bound on retained trace records. Fixed at construction;
// it sizes the debug layer's ring.
func (o *DebugOptions) TraceDepth() int { return o.traceDepth }

// envOptions is the envconfig schema for OptionsFromEnv.
type envOptions struct {
	CheckInvariants bool `envconfig:"CHECK_INVARIANTS" default:"true"`
	TraceMessages   bool `envconfig:"TRACE_MESSAGES" default:"true"`
	TraceDepth      int  `envconfig:"TRACE_DEPTH" default:"64"`
}

// OptionsFromEnv builds a handle from TUPLEPOOL_CHECK_INVARIANTS,
// TUPLEPOOL_TRACE_MESSAGES and TUPLEPOOL_TRACE_DEPTH, falling back to the
// defaults for anything unset.
func OptionsFromEnv() (*DebugOptions, error) {
	var e envOptions
	if err := envconfig.Process("tuplepool", &e); err != nil {
		return nil, err
	}
	o := NewDebugOptions()
	o.SetCheckInvariants(e.CheckInvariants)
	o.SetTraceMessages(e.TraceMessages)
	if e.TraceDepth > 0 {
		o.traceDepth = e.TraceDepth
	}
	return o, nil
}
