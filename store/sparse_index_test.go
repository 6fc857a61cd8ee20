package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparseIndexAbsentByDefault(t *testing.T) {
	idx := newSparseIndex(4)
	_, ok := idx.get(10)
	assert.False(t, ok)
}

func TestSparseIndexAssignAndClear(t *testing.T) {
	idx := newSparseIndex(4)
	idx.assign(10, 3)

	pos, ok := idx.get(10)
	assert.True(t, ok)
	assert.Equal(t, 3, pos)

	idx.clear(10)
	_, ok = idx.get(10)
	assert.False(t, ok)
}

func TestSparseIndexFreshPageFillsAbsent(t *testing.T) {
	idx := newSparseIndex(4)
	idx.assign(5, 1) // page 1 (slots 4..7)

	_, ok := idx.get(4)
	assert.False(t, ok, "untouched slot on a freshly allocated page must read as absent")
	_, ok = idx.get(6)
	assert.False(t, ok)
}

func TestSparseIndexShrinkToFitDropsTrailingAbsentPages(t *testing.T) {
	idx := newSparseIndex(4)
	idx.assign(9, 0) // page 2
	idx.clear(9)

	idx.shrinkToFit()

	assert.Equal(t, 0, idx.pages.pageCount())
}
