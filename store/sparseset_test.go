package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparseSetReserveSlotTailAppend(t *testing.T) {
	s := newSparseSet(4, policySwapAndPop)
	e := NewEntity(1, 0)

	pos, reused := s.reserveSlot(e)

	assert.Equal(t, 0, pos)
	assert.False(t, reused)
	assert.True(t, s.contains(e))
}

func TestSparseSetReserveSlotReusesFreeListHead(t *testing.T) {
	s := newSparseSet(4, policyInPlace)
	a, b := NewEntity(1, 0), NewEntity(2, 0)

	posA, _ := s.reserveSlot(a)
	s.reserveSlot(b)
	s.eraseInPlace(posA)

	pos, reused := s.reserveSlot(NewEntity(3, 0))

	assert.Equal(t, posA, pos)
	assert.True(t, reused)
}

func TestSparseSetHasTombstonesOnlyUnderInPlace(t *testing.T) {
	swapAndPop := newSparseSet(4, policySwapAndPop)
	e := NewEntity(1, 0)
	pos, _ := swapAndPop.reserveSlot(e)
	swapAndPop.eraseSwapAndPop(pos)
	assert.False(t, swapAndPop.hasTombstones())

	inPlace := newSparseSet(4, policyInPlace)
	pos, _ = inPlace.reserveSlot(e)
	inPlace.eraseInPlace(pos)
	assert.True(t, inPlace.hasTombstones())
}

func TestSparseSetSwapPackedFixesUpSparseSlots(t *testing.T) {
	s := newSparseSet(4, policySwapAndPop)
	a, b := NewEntity(1, 0), NewEntity(2, 0)
	s.reserveSlot(a)
	s.reserveSlot(b)

	s.swapPacked(0, 1)

	posA, _ := s.indexOf(a)
	posB, _ := s.indexOf(b)
	assert.Equal(t, 1, posA)
	assert.Equal(t, 0, posB)
}
