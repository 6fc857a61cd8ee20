package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagedArrayEnsurePageIsIdempotent(t *testing.T) {
	p := newPagedArray[int](4, newDefaultAllocator[int]())

	fresh := p.ensurePage(0)
	assert.True(t, fresh)
	fresh = p.ensurePage(0)
	assert.False(t, fresh)
}

func TestPagedArrayGrowthNeverMovesExistingPage(t *testing.T) {
	p := newPagedArray[int](4, newDefaultAllocator[int]())
	p.ensurePage(0)
	*p.at(2) = 99

	firstPage := p.pageOf(0)
	p.ensurePage(3)

	assert.Same(t, &firstPage[0], &p.pageOf(0)[0])
	assert.Equal(t, 99, *p.at(2))
}

func TestPagedArrayCapacityIsPagesTimesPageSize(t *testing.T) {
	p := newPagedArray[int](4, newDefaultAllocator[int]())
	p.ensurePage(0)
	p.ensurePage(1)

	assert.Equal(t, 8, p.capacity())
}

func TestPagedArrayTruncateFreesPages(t *testing.T) {
	alloc := NewPoolingAllocator[int](4)
	p := newPagedArray[int](4, alloc)
	p.ensurePage(0)
	p.ensurePage(1)

	p.truncateToPages(0)

	assert.Equal(t, 0, p.pageCount())
	assert.Len(t, alloc.free, 2)
}

func TestPoolingAllocatorReusesFreedPages(t *testing.T) {
	alloc := NewPoolingAllocator[int](4)
	page := alloc.Alloc(4)
	page[0] = 7
	alloc.Free(page)

	reused := alloc.Alloc(4)
	assert.Equal(t, 0, reused[0], "reused pages must come back zeroed")
}

func TestAllocatorEquality(t *testing.T) {
	a := newDefaultAllocator[int]()
	b := newDefaultAllocator[int]()
	assert.True(t, a.Equal(b))

	p1 := NewPoolingAllocator[int](4)
	p2 := NewPoolingAllocator[int](4)
	assert.False(t, p1.Equal(p2))
	assert.True(t, p1.Equal(p1))
}
