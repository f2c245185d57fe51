package filemap

import (
	"fmt"
)

type SectionType int

const (
	SectionType_Data SectionType = 0
	SectionType_Hole SectionType = 1
)

func (t SectionType) String() string {
	switch t {
	case SectionType_Data:
		return "data"
	case SectionType_Hole:
		return "hole"
	}
	return fmt.Sprintf("SectionType(%d)", int(t))
}

func (t SectionType) valid() bool {
	return t == SectionType_Data || t == SectionType_Hole
}

// Section is a maximal run of units of a single type. Offset and Length are
// in units.
type Section struct {
	Type           SectionType
	Offset, Length int64
}

func (s Section) End() int64 {
	return s.Offset + s.Length
}

func (s Section) Contains(off int64) bool {
	return off >= s.Offset && off < s.End()
}
