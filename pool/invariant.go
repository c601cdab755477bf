// File: pool/invariant.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/momentics/tuplepool/api"

// Invariant runs the full structural check: every index sits in exactly one
// of {free list, live}, the free list carries no duplicates or wild links,
// and Length matches the live count. O(capacity); the Debug layer runs it
// around mutating calls when its toggle is on.
func (p *Pool[T]) Invariant() error {
	onFreeList := make([]bool, len(p.slots))
	freeCount := 0
	for i := p.freeHead; i != freeListEnd; i = p.slots[i].next {
		if i < 0 || int(i) >= len(p.slots) {
			return api.NewError(api.ErrCodeInternal, "pool: free list link out of range").
				WithContext("link", i)
		}
		if onFreeList[i] {
			return api.NewError(api.ErrCodeInternal, "pool: index appears twice on free list").
				WithContext("index", i)
		}
		onFreeList[i] = true
		freeCount++
	}
	live := 0
	for i := range p.slots {
		switch {
		case p.slots[i].next == slotLive:
			if onFreeList[i] {
				return api.NewError(api.ErrCodeInternal, "pool: live slot reachable from free list").
					WithContext("index", i)
			}
			live++
		case !onFreeList[i]:
			return api.NewError(api.ErrCodeInternal, "pool: free slot unreachable from free list").
				WithContext("index", i)
		}
	}
	if live != p.length {
		return api.NewError(api.ErrCodeInternal, "pool: length does not match live count").
			WithContext("length", p.length).
			WithContext("live", live)
	}
	if freeCount+live != len(p.slots) {
		return api.NewError(api.ErrCodeInternal, "pool: free and live do not partition capacity").
			WithContext("free", freeCount).
			WithContext("live", live).
			WithContext("capacity", len(p.slots))
	}
	return nil
}
