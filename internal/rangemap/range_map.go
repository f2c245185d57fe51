package rangemap

import (
	"github.com/akmistry/filemap/internal/t"
)

// RangeMap tracks which units of a file hold data. Any unit not added is a
// hole.
type RangeMap interface {
	t.Holey

	Add(offset, length int64)
	Remove(offset, length int64)

	// Number of data units.
	DataSize() int64

	RangeMapIterator
}

type RangeMapIterator interface {
	// Iterate calls |iter| for every maximal data range at or after |start|.
	Iterate(start int64, iter func(Range) bool)
}

type Range struct {
	Offset, Length int64
}

func (r *Range) Key() uint64 {
	return uint64(r.Offset)
}

func (r Range) End() int64 {
	return r.Offset + r.Length
}

func (r Range) Contains(off int64) bool {
	return off >= r.Offset && off < (r.Offset+r.Length)
}

func (r Range) Overlaps(other Range) bool {
	return r.Contains(other.Offset) || other.Contains(r.Offset)
}
