package store

// absentSlot is the sentinel stored in a sparse-index slot that has no
// corresponding dense position.
const absentSlot int32 = -1

// sparseIndex is the paged mapping from an entity's index to its
// position in the packed/dense arrays. Pages are allocated lazily; an
// absent page behaves exactly like a page full of absentSlot.
type sparseIndex struct {
	pages pagedArray[int32]
}

func newSparseIndex(pageSize int) sparseIndex {
	return sparseIndex{pages: newPagedArray[int32](pageSize, newDefaultAllocator[int32]())}
}

// get returns the dense position for index i, or (0, false) if absent —
// either because the page was never allocated or because its slot still
// holds absentSlot.
func (s *sparseIndex) get(i uint32) (int, bool) {
	pg, slot := s.pages.split(int(i))
	page := s.pages.pageOf(pg)
	if page == nil {
		return 0, false
	}
	v := page[slot]
	if v == absentSlot {
		return 0, false
	}
	return int(v), true
}

// assign records that entity-index i now lives at dense position pos,
// allocating and absent-filling the backing page on demand.
func (s *sparseIndex) assign(i uint32, pos int) {
	pg, _ := s.pages.split(int(i))
	if fresh := s.pages.ensurePage(pg); fresh {
		page := s.pages.pageOf(pg)
		for k := range page {
			page[k] = absentSlot
		}
	}
	*s.pages.at(int(i)) = int32(pos)
}

// clear marks index i as absent.
func (s *sparseIndex) clear(i uint32) {
	pg, slot := s.pages.split(int(i))
	if page := s.pages.pageOf(pg); page != nil {
		page[slot] = absentSlot
	}
}

func (s *sparseIndex) capacity() int { return s.pages.capacity() }

// shrinkToFit drops trailing pages that are entirely absent.
func (s *sparseIndex) shrinkToFit() {
	n := s.pages.pageCount()
	for n > 0 {
		page := s.pages.pageOf(n - 1)
		if page == nil {
			n--
			continue
		}
		allAbsent := true
		for _, v := range page {
			if v != absentSlot {
				allAbsent = false
				break
			}
		}
		if !allAbsent {
			break
		}
		n--
	}
	s.pages.truncateToPages(n)
	s.pages.trimTrailingNil()
}

func (s *sparseIndex) reset() {
	s.pages.truncateToPages(0)
}
