package rangemap

import (
	"io"
	"log"

	"github.com/bits-and-blooms/bitset"
)

var _ = (RangeMap)((*BitmapRangeMap)(nil))

// BitmapRangeMap uses one bit per unit, set for data. Only suitable for small
// files.
type BitmapRangeMap struct {
	size int64
	bits *bitset.BitSet
}

func NewBitmapRangeMap(size int64) *BitmapRangeMap {
	if size < 0 {
		panic("size < 0")
	}
	return &BitmapRangeMap{
		size: size,
		bits: bitset.New(uint(size)),
	}
}

func (m *BitmapRangeMap) checkRange(offset, length int64) {
	checkRange(offset, length)
	if offset+length > m.size {
		log.Panicf("range (%d, %d) outside map of size %d", offset, length, m.size)
	}
}

func (m *BitmapRangeMap) Add(offset, length int64) {
	m.checkRange(offset, length)
	for i := offset; i < offset+length; i++ {
		m.bits.Set(uint(i))
	}
}

func (m *BitmapRangeMap) Remove(offset, length int64) {
	m.checkRange(offset, length)
	for i := offset; i < offset+length; i++ {
		m.bits.Clear(uint(i))
	}
}

func (m *BitmapRangeMap) Contains(offset int64) bool {
	return offset >= 0 && offset < m.size && m.bits.Test(uint(offset))
}

func (m *BitmapRangeMap) DataSize() int64 {
	return int64(m.bits.Count())
}

func (m *BitmapRangeMap) NextData(offset int64) (int64, error) {
	checkRange(offset, 0)
	if offset >= m.size {
		return 0, io.EOF
	}
	next, ok := m.bits.NextSet(uint(offset))
	if !ok || int64(next) >= m.size {
		return 0, io.EOF
	}
	return int64(next), nil
}

func (m *BitmapRangeMap) NextHole(offset int64) (int64, error) {
	checkRange(offset, 0)
	if offset >= m.size {
		return offset, nil
	}
	next, ok := m.bits.NextClear(uint(offset))
	if !ok || int64(next) >= m.size {
		// Everything after offset is data, so the hole starts at the end.
		return m.size, nil
	}
	return int64(next), nil
}

func (m *BitmapRangeMap) Iterate(start int64, iter func(Range) bool) {
	off := max(start, 0)
	for off < m.size {
		dataOff, err := m.NextData(off)
		if err == io.EOF {
			return
		}
		holeOff, _ := m.NextHole(dataOff)
		if !iter(Range{Offset: dataOff, Length: holeOff - dataOff}) {
			return
		}
		off = holeOff
	}
}
