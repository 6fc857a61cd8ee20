package store

// pagedArray is the paged building block shared by the sparse index (a
// page of slot numbers) and Storage[T]'s dense value array (a page of
// T). A page, once allocated, is never moved or reallocated in place:
// growth only ever appends new pages, which is what lets a *T obtained
// from the dense array stay valid across later growth.
type pagedArray[T any] struct {
	alloc    PageAllocator[T]
	pageSize int
	pages    [][]T
}

func newPagedArray[T any](pageSize int, alloc PageAllocator[T]) pagedArray[T] {
	assertf(pageSize > 0, "store: page size must be positive, got %d", pageSize)
	return pagedArray[T]{alloc: alloc, pageSize: pageSize}
}

func (p *pagedArray[T]) split(i int) (page, slot int) {
	return i / p.pageSize, i % p.pageSize
}

// ensurePage allocates page pageIdx if it does not exist yet,
// zero-filling it. Callers that need a non-zero "absent" fill (the
// sparse index) must do so themselves right after this call.
func (p *pagedArray[T]) ensurePage(pageIdx int) (fresh bool) {
	for len(p.pages) <= pageIdx {
		p.pages = append(p.pages, nil)
	}
	if p.pages[pageIdx] != nil {
		return false
	}
	p.pages[pageIdx] = p.alloc.Alloc(p.pageSize)
	return true
}

// at returns a pointer to element i, which must already live on an
// allocated page.
func (p *pagedArray[T]) at(i int) *T {
	pg, slot := p.split(i)
	assertf(pg < len(p.pages) && p.pages[pg] != nil, "store: access to unallocated page %d", pg)
	return &p.pages[pg][slot]
}

// pageOf returns the backing slice for a page, or nil if unallocated.
func (p *pagedArray[T]) pageOf(pageIdx int) []T {
	if pageIdx >= len(p.pages) {
		return nil
	}
	return p.pages[pageIdx]
}

func (p *pagedArray[T]) pageCount() int { return len(p.pages) }

func (p *pagedArray[T]) capacity() int { return len(p.pages) * p.pageSize }

// truncateToPages shrinks the page list to newCount pages, freeing every
// dropped page back to the allocator.
func (p *pagedArray[T]) truncateToPages(newCount int) {
	for i := newCount; i < len(p.pages); i++ {
		if p.pages[i] != nil {
			p.alloc.Free(p.pages[i])
		}
	}
	p.pages = p.pages[:newCount]
}

// trimTrailingNil drops any fully-unallocated pages from the tail, the
// paged-array half of shrink_to_fit.
func (p *pagedArray[T]) trimTrailingNil() {
	n := len(p.pages)
	for n > 0 && p.pages[n-1] == nil {
		n--
	}
	p.pages = p.pages[:n]
}
