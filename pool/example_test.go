package pool_test

import (
	"errors"
	"fmt"

	"github.com/momentics/tuplepool/api"
	"github.com/momentics/tuplepool/pool"
	"github.com/momentics/tuplepool/tuple"
)

func Example() {
	p, _ := pool.NewPool(2, tuple.Make2(0, false))

	ptr, _ := p.NewTuple(tuple.Make2(1, true))
	v, _ := p.GetTuple(ptr)
	fmt.Println(v.V0, v.V1)

	first := tuple.Slot0Of2[int, bool]()
	_ = pool.Set[tuple.T2[int, bool]](p, ptr, first, 5)
	n, _ := pool.Get[tuple.T2[int, bool]](p, ptr, first)
	fmt.Println(n)
	// Output:
	// 1 true
	// 5
}

func ExampleChecked() {
	core, _ := pool.NewPool(1, tuple.Make2(0, false))
	c := pool.NewChecked[tuple.T2[int, bool]](core)

	ptr, _ := c.NewTuple(tuple.Make2(7, true))
	_ = c.Free(ptr)

	// Every copy of the handle went stale when the slot was freed.
	_, err := c.GetTuple(ptr)
	fmt.Println(errors.Is(err, api.ErrInvalidPointer), api.FaultOf(err))
	// Output: true stale
}
