package store

// Iterator is a page-aware, random-access cursor over a Storage[T]'s
// packed positions. Go has no operator overloading, so the "it += n",
// "it[k]", and "a - b" operations spec.md describes surface here as
// Advance, At, and Distance instead; Index still reports the current
// packed position directly for callers that want to drop to Get/At.
//
// An Iterator is only valid for as long as the positions it walks stay
// live: an Erase, Clear, or Compact that removes or relocates an entry
// at or before the cursor invalidates it exactly as spec.md requires.
type Iterator[T any] struct {
	s    *Storage[T]
	pos  int
	step int
}

// Valid reports whether the cursor currently denotes an addressable
// packed position.
func (it Iterator[T]) Valid() bool {
	return it.pos >= 0 && it.pos < it.s.set.size()
}

// Index returns the current packed position.
func (it Iterator[T]) Index() int { return it.pos }

// Entity returns the entity at the current position, which may be a
// tombstone marker under PolicyInPlace (see Storage.At); callers that
// must skip tombstones should prefer Each/Reach.
func (it Iterator[T]) Entity() Entity { return it.s.set.at(it.pos) }

// Value returns a pointer to the value at the current position.
func (it Iterator[T]) Value() *T { return it.s.dense.at(it.pos) }

// Next advances the cursor by one step in this iterator's direction and
// returns it, for chaining (it.Next().Next()).
func (it *Iterator[T]) Next() *Iterator[T] { it.pos += it.step; return it }

// Prev steps the cursor back by one.
func (it *Iterator[T]) Prev() *Iterator[T] { it.pos -= it.step; return it }

// Advance moves the cursor by n steps (negative moves backward).
func (it *Iterator[T]) Advance(n int) *Iterator[T] { it.pos += n * it.step; return it }

// Distance returns the signed number of steps from it to other, in this
// iterator's direction — the Go equivalent of C++'s "other - it".
func (it Iterator[T]) Distance(other Iterator[T]) int {
	return (other.pos - it.pos) * it.step
}

// At returns the entity/value pair offset steps ahead of the cursor
// without moving it — the random-access "it[k]" subscript.
func (it Iterator[T]) At(offset int) (Entity, *T) {
	p := it.pos + offset*it.step
	return it.s.set.at(p), it.s.dense.at(p)
}

// Begin returns a cursor over the primary iteration order (most recently
// inserted entry first, absent any Sort/Compact reordering).
func (s *Storage[T]) Begin() Iterator[T] {
	return Iterator[T]{s: s, pos: s.set.size() - 1, step: -1}
}

// End returns the sentinel one past Begin's last valid position.
func (s *Storage[T]) End() Iterator[T] {
	return Iterator[T]{s: s, pos: -1, step: -1}
}

// RBegin returns a cursor over the reverse of the primary order
// (insertion order).
func (s *Storage[T]) RBegin() Iterator[T] {
	return Iterator[T]{s: s, pos: 0, step: 1}
}

// REnd returns the sentinel one past RBegin's last valid position.
func (s *Storage[T]) REnd() Iterator[T] {
	return Iterator[T]{s: s, pos: s.set.size(), step: 1}
}

// CBegin and CEnd alias Begin and End: Go has no language-level
// const-iterator, so the read-only contract is a caller convention
// rather than something the type system enforces.
func (s *Storage[T]) CBegin() Iterator[T] { return s.Begin() }
func (s *Storage[T]) CEnd() Iterator[T]   { return s.End() }

// Each returns a range-over-func sequence visiting every live entry in
// primary (most-recently-inserted-first) order, skipping tombstones.
func (s *Storage[T]) Each() func(yield func(Entity, *T) bool) {
	return func(yield func(Entity, *T) bool) {
		for i := s.set.size() - 1; i >= 0; i-- {
			e := s.set.at(i)
			if e.isTombstone() {
				continue
			}
			if !yield(e, s.dense.at(i)) {
				return
			}
		}
	}
}

// Reach is Each in insertion order (the reverse of Each).
func (s *Storage[T]) Reach() func(yield func(Entity, *T) bool) {
	return func(yield func(Entity, *T) bool) {
		n := s.set.size()
		for i := 0; i < n; i++ {
			e := s.set.at(i)
			if e.isTombstone() {
				continue
			}
			if !yield(e, s.dense.at(i)) {
				return
			}
		}
	}
}

// Entities visits every packed slot in primary order, tombstones
// included — the entity-only counterpart to Each used when a caller
// needs to observe dead slots (e.g. while implementing Compact-like
// logic of its own).
func (s *Storage[T]) Entities() func(yield func(Entity) bool) {
	return func(yield func(Entity) bool) {
		for i := s.set.size() - 1; i >= 0; i-- {
			if !yield(s.set.at(i)) {
				return
			}
		}
	}
}
