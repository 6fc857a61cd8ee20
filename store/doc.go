/*
Package store provides the typed component storage at the core of an
Entity-Component-System: a container that maps sparse, opaque entity
identifiers to densely packed values of a single type T.

Storage keeps two parallel structures in lock-step: a paged sparse index
mapping an entity's index to a position in a packed array, and a paged
dense array of values at that same position. Growth never relocates an
already-allocated page, so references returned by Emplace survive later
insertions; operations that reorder the packed array (Sort, SortAs,
SwapElements, Compact) do move values between positions and invalidate
any reference taken before the call.

Two deletion policies are available per type:

  - PolicySwapAndPop (the default): Erase moves the last live element
    into the erased slot and shrinks the packed array by one. No
    tombstones exist under this policy.
  - PolicyInPlace: Erase destroys the value in place and threads the
    freed slot into a free list for reuse by a later Emplace. Size does
    not shrink; live_count is tracked separately.

Basic usage:

	s := store.NewStorage[Position]()
	s.Emplace(e, Position{X: 1, Y: 2})
	pos, _ := s.Get(e)

	for e, pos := range s.Each() {
		pos.X += 1
	}

Package store is single-threaded: concurrent use of the same Storage from
more than one goroutine, where at least one of them mutates, is undefined.
Callers layer their own synchronization.
*/
package store
