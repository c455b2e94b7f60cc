// SPDX-License-Identifier: MIT
//
// File: arena.go
// Role: Generic chunked object pool with generation-checked handles.

// Package arena provides fixed-chunk object pools addressed by
// generation-checked handles.
//
// Values live in chunks that never move, so a pointer obtained from Get stays
// valid until the slot is freed or the arena is reset. Freeing or resetting
// bumps the slot generation; a handle taken before that is then reported as
// stale by Get instead of aliasing the slot's next occupant.
package arena

import "fmt"

const chunkShift = 6

const chunkSize = 1 << chunkShift

// Handle addresses one slot of an Arena. The zero Handle is never valid.
type Handle struct {
	index uint32
	gen   uint32
}

// Index returns the slot index. Indices are dense from zero and reused after
// Free or Reset, which makes them usable as bit positions.
func (h Handle) Index() int { return int(h.index) }

// Valid reports whether h was ever issued (it may still be stale).
func (h Handle) Valid() bool { return h.gen != 0 }

func (h Handle) String() string { return fmt.Sprintf("#%d@%d", h.index, h.gen) }

type slot[T any] struct {
	gen  uint32 // odd while live, even while free
	item T
}

// Arena is a pool of T values. The zero value is ready to use.
// An Arena is not safe for concurrent use.
type Arena[T any] struct {
	chunks []*[chunkSize]slot[T]
	used   int      // slots ever allocated (high-water mark)
	free   []uint32 // LIFO of released slot indices
	live   int
}

// Alloc returns a handle and a pointer to a slot. Reused slots keep their
// previous contents; the caller resets whatever it relies on.
func (a *Arena[T]) Alloc() (Handle, *T) {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if a.used == len(a.chunks)*chunkSize {
			a.chunks = append(a.chunks, new([chunkSize]slot[T]))
		}
		idx = uint32(a.used)
		a.used++
	}
	s := a.slot(idx)
	s.gen++ // free (even) -> live (odd)
	a.live++

	return Handle{index: idx, gen: s.gen}, &s.item
}

// Get resolves h. ok is false for the zero handle and for stale handles.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if h.gen == 0 || int(h.index) >= a.used {
		return nil, false
	}
	s := a.slot(h.index)
	if s.gen != h.gen {
		return nil, false
	}

	return &s.item, true
}

// MustGet resolves h and panics if it is stale.
func (a *Arena[T]) MustGet(h Handle) *T {
	p, ok := a.Get(h)
	if !ok {
		panic(fmt.Sprintf("arena: stale or invalid handle %v", h))
	}

	return p
}

// Free releases the slot of h. Freeing a stale handle is a no-op and returns false.
func (a *Arena[T]) Free(h Handle) bool {
	if _, ok := a.Get(h); !ok {
		return false
	}
	a.slot(h.index).gen++
	a.free = append(a.free, h.index)
	a.live--

	return true
}

// Reset releases every live slot. Capacity is retained. Free slots are handed
// out again in ascending index order.
func (a *Arena[T]) Reset() {
	a.free = a.free[:0]
	for i := a.used - 1; i >= 0; i-- {
		s := a.slot(uint32(i))
		if s.gen&1 == 1 {
			s.gen++
		}
		a.free = append(a.free, uint32(i))
	}
	a.live = 0
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int { return a.live }

// Cap returns the number of slots ever allocated.
func (a *Arena[T]) Cap() int { return a.used }

func (a *Arena[T]) slot(idx uint32) *slot[T] {
	return &a.chunks[idx>>chunkShift][idx&(chunkSize-1)]
}
