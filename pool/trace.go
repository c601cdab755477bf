// File: pool/trace.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded call trace for the debug layer, backed by a FIFO queue: the ring
// keeps the most recent TraceDepth records and drops the oldest.

package pool

import (
	"time"

	"github.com/eapache/queue"
)

// TraceRecord is one entry of the debug layer's call trace.
type TraceRecord struct {
	Time   time.Time
	Op     string
	Detail string
	Err    error
}

type traceRing struct {
	q     *queue.Queue
	depth int
}

func newTraceRing(depth int) *traceRing {
	if depth <= 0 {
		depth = 1
	}
	return &traceRing{q: queue.New(), depth: depth}
}

func (r *traceRing) push(rec TraceRecord) {
	r.q.Add(rec)
	for r.q.Length() > r.depth {
		r.q.Remove()
	}
}

func (r *traceRing) snapshot() []TraceRecord {
	out := make([]TraceRecord, 0, r.q.Length())
	for i := 0; i < r.q.Length(); i++ {
		out = append(out, r.q.Get(i).(TraceRecord))
	}
	return out
}
