package rangemap

import (
	"io"
	"log"

	"github.com/akmistry/go-util/radix-tree"
)

var _ = (RangeMap)((*ExtentRangeMap)(nil))

// ExtentRangeMap stores data ranges as extents in a radix tree, keyed by
// offset. Extents never overlap, but adjacent extents are not merged.
type ExtentRangeMap struct {
	tree radix.Tree
}

func checkRange(offset, length int64) {
	if offset < 0 || length < 0 {
		panic("offset < 0 || length < 0")
	}
}

func (m *ExtentRangeMap) getRange(start, length int64) []*Range {
	end := start + length
	r := Range{Offset: start, Length: length}

	var items []*Range
	m.tree.DescendLessOrEqualI(uint64(end), func(i radix.Item) bool {
		ie := i.(*Range)
		if ie.Offset == end {
			return true
		} else if !r.Overlaps(*ie) {
			return false
		}
		items = append(items, ie)
		return true
	})
	return items
}

func (m *ExtentRangeMap) find(offset int64) (r *Range) {
	m.tree.DescendLessOrEqualI(uint64(offset), func(i radix.Item) bool {
		ie := i.(*Range)
		if ie.Contains(offset) {
			r = ie
		}
		return false
	})
	return
}

func (m *ExtentRangeMap) Contains(offset int64) bool {
	return m.find(offset) != nil
}

func (m *ExtentRangeMap) NextData(offset int64) (next int64, err error) {
	checkRange(offset, 0)
	if m.Contains(offset) {
		return offset, nil
	}

	err = io.EOF
	m.tree.AscendGreaterOrEqualI(uint64(offset), func(i radix.Item) bool {
		next = i.(*Range).Offset
		err = nil
		return false
	})
	return
}

func (m *ExtentRangeMap) NextHole(offset int64) (int64, error) {
	checkRange(offset, 0)
	ie := m.find(offset)
	if ie == nil {
		return offset, nil
	}

	// Skip over any adjacent extents.
	next := ie.End()
	m.tree.AscendGreaterOrEqualI(uint64(next), func(i radix.Item) bool {
		ie := i.(*Range)
		if !ie.Contains(next) {
			return false
		}
		next = ie.End()
		return true
	})
	return next, nil
}

func (m *ExtentRangeMap) Remove(offset, length int64) {
	checkRange(offset, length)
	if length == 0 {
		return
	}

	end := offset + length
	overlaps := m.getRange(offset, length)
	for _, ie := range overlaps {
		ieEnd := ie.End()
		if ie.Offset < offset {
			if ieEnd > end {
				// Old extent covers the whole removed range. Keep the tail as a new
				// extent.
				tailItem := &Range{Offset: end, Length: ieEnd - end}
				old := m.tree.ReplaceOrInsert(tailItem)
				if old != nil {
					log.Panicf("unexpected old extent: %+v", old)
				}
			}
			// Truncate the old extent instead of deleting it and inserting a new one
			ie.Length = offset - ie.Offset
			ie = nil
		} else if ieEnd > end {
			tailItem := &Range{Offset: end, Length: ieEnd - end}
			old := m.tree.ReplaceOrInsert(tailItem)
			if old != nil {
				log.Panicf("unexpected old extent: %+v", old)
			}
		}

		if ie != nil && m.tree.Delete(ie) != ie {
			log.Panicf("extent not deleted: %+v", ie)
		}
	}
}

func (m *ExtentRangeMap) Add(offset, length int64) {
	checkRange(offset, length)
	if length == 0 {
		return
	}

	newItem := &Range{Offset: offset, Length: length}
	// Punch a hole, and put the new extent in that hole.
	m.Remove(offset, length)

	old := m.tree.ReplaceOrInsert(newItem)
	if old != nil {
		log.Panicf("unexpected old extent: %+v, adding new extent: %v", old, newItem)
	}
}

func (m *ExtentRangeMap) DataSize() int64 {
	size := int64(0)
	m.tree.Ascend(func(i radix.Item) bool {
		size += i.(*Range).Length
		return true
	})
	return size
}

func (m *ExtentRangeMap) Iterate(start int64, iter func(Range) bool) {
	first := start
	if ie := m.find(start); ie != nil {
		first = ie.Offset
	}

	var r Range
	m.tree.AscendGreaterOrEqualI(uint64(first), func(item radix.Item) bool {
		ie := item.(*Range)
		if ie.Offset < start {
			r.Offset = start
			r.Length = ie.End() - start
			return true
		}

		if r.Length > 0 && ie.Offset == r.End() {
			// Coalesce adjacent extents
			r.Length += ie.Length
		} else {
			if r.Length > 0 && !iter(r) {
				r.Length = 0
				return false
			}
			r = *ie
		}
		return true
	})
	if r.Length > 0 {
		iter(r)
	}
}
