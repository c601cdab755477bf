package pool_test

import (
	"testing"

	"github.com/momentics/tuplepool/api"
	"github.com/momentics/tuplepool/control"
	"github.com/momentics/tuplepool/pool"
	"github.com/momentics/tuplepool/tuple"
)

func benchPool(b *testing.B, p api.Pool[pair]) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ptr, err := p.NewTuple(tuple.Make2(i, false))
		if err != nil {
			b.Fatal(err)
		}
		if err := p.Free(ptr); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCoreNewFree(b *testing.B) {
	p, err := pool.NewPool(1024, dummy)
	if err != nil {
		b.Fatal(err)
	}
	benchPool(b, p)
}

func BenchmarkCheckedNewFree(b *testing.B) {
	p, err := pool.NewPool(1024, dummy)
	if err != nil {
		b.Fatal(err)
	}
	benchPool(b, pool.NewChecked[pair](p))
}

func BenchmarkDebugDisabledNewFree(b *testing.B) {
	p, err := pool.NewPool(1024, dummy)
	if err != nil {
		b.Fatal(err)
	}
	opts := control.NewDebugOptions()
	opts.SetCheckInvariants(false)
	opts.SetTraceMessages(false)
	benchPool(b, pool.NewDebug[pair](p, opts, nil))
}

func BenchmarkGetChecked(b *testing.B) {
	core, err := pool.NewPool(16, dummy)
	if err != nil {
		b.Fatal(err)
	}
	ptr, err := core.NewTuple(tuple.Make2(1, true))
	if err != nil {
		b.Fatal(err)
	}
	first := tuple.Slot0Of2[int, bool]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pool.Get[pair](core, ptr, first); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetUnsafe(b *testing.B) {
	core, err := pool.NewPool(16, dummy)
	if err != nil {
		b.Fatal(err)
	}
	ptr, err := core.NewTuple(tuple.Make2(1, true))
	if err != nil {
		b.Fatal(err)
	}
	first := tuple.Slot0Of2[int, bool]()
	var sink int
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = pool.UnsafeGet[pair](core, ptr, first)
	}
	_ = sink
}
