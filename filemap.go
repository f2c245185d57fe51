package filemap

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"slices"
	"sort"
	"strconv"

	"github.com/akmistry/filemap/internal/t"
)

var (
	_ = (io.WriterTo)((*Map)(nil))
	_ = (fmt.Stringer)((*Map)(nil))
	_ = (t.LayoutMarker)((*Map)(nil))
)

// Map tracks the data and hole sections of a sparse file of a fixed size.
// A Map is not safe for concurrent use.
type Map struct {
	size int64

	// Ordered by offset, covering [0, size) with no gaps. Adjacent sections
	// never share a type.
	sections []Section

	// Pending error from a rejected mark, reported by CheckError.
	err error
}

// New returns a map of |size| units, consisting of a single hole. A zero
// size map has no sections.
func New(size int64) (*Map, error) {
	if size < 0 {
		return nil, ErrInvalidSize
	}
	m := &Map{size: size}
	if size > 0 {
		m.sections = []Section{{Type: SectionType_Hole, Offset: 0, Length: size}}
	}
	return m, nil
}

func (m *Map) Size() int64 {
	return m.size
}

// Number of sections in the map.
func (m *Map) Len() int {
	return len(m.sections)
}

// Data marks |length| units at |off| as data. Errors are deferred until
// CheckError.
func (m *Map) Data(off, length int64) {
	m.Mark(SectionType_Data, off, length)
}

// Hole punches a hole of |length| units at |off|. Errors are deferred until
// CheckError.
func (m *Map) Hole(off, length int64) {
	m.Mark(SectionType_Hole, off, length)
}

// Mark sets the range [off, off+length) to |typ|, splitting and merging
// sections as needed. If the range does not fit inside the file, the map is
// left unchanged and the error is saved for CheckError, replacing any
// previously saved error.
func (m *Map) Mark(typ SectionType, off, length int64) {
	if m == nil {
		return
	}
	if !typ.valid() {
		panic("Invalid type")
	}

	// Written as off > size-length to avoid overflowing off+length.
	if off < 0 || length < 0 || off > m.size-length {
		m.err = &RangeError{
			Op:     "mark " + typ.String(),
			Offset: off,
			Length: length,
			Size:   m.size,
		}
		slog.Debug("filemap/Map: rejected mark",
			"type", typ, "offset", off, "length", length, "size", m.size)
		return
	} else if length == 0 {
		return
	}

	end := off + length
	first := m.find(off)
	last := m.find(end - 1)
	if last >= len(m.sections) {
		log.Panicf("filemap/Map: no section for offset %d, size %d", end-1, m.size)
	}

	// At most: head remainder, new section, tail remainder.
	var replBuf [3]Section
	repl := replBuf[:0]
	head := m.sections[first]
	if head.Offset < off {
		repl = append(repl, Section{Type: head.Type, Offset: head.Offset, Length: off - head.Offset})
	}
	repl = append(repl, Section{Type: typ, Offset: off, Length: length})
	tail := m.sections[last]
	if tail.End() > end {
		repl = append(repl, Section{Type: tail.Type, Offset: end, Length: tail.End() - end})
	}
	m.sections = slices.Replace(m.sections, first, last+1, repl...)

	// Only the replaced sections and their immediate neighbours can need
	// merging.
	m.coalesce(first-1, first+len(repl)+1)
}

// Index of the section containing |off|, or len(m.sections) if |off| is past
// the end of the file.
func (m *Map) find(off int64) int {
	return sort.Search(len(m.sections), func(i int) bool {
		return m.sections[i].End() > off
	})
}

// Merge runs of same-type sections in m.sections[lo:hi].
func (m *Map) coalesce(lo, hi int) {
	lo = max(lo, 0)
	hi = min(hi, len(m.sections))
	if hi-lo < 2 {
		return
	}

	w := lo
	for r := lo + 1; r < hi; r++ {
		if m.sections[r].Type == m.sections[w].Type {
			m.sections[w].Length += m.sections[r].Length
		} else {
			w++
			m.sections[w] = m.sections[r]
		}
	}
	m.sections = slices.Delete(m.sections, w+1, hi)
}

// CheckError returns the error saved by the most recent rejected mark, and
// clears it. Returns nil if there is no pending error.
func (m *Map) CheckError() error {
	if m == nil {
		return ErrNilMap
	}
	err := m.err
	m.err = nil
	return err
}

func (m *Map) appendMap(b []byte) []byte {
	for _, s := range m.sections {
		b = append(b, s.Type.String()...)
		b = append(b, ": "...)
		b = strconv.AppendInt(b, s.Length, 10)
		b = append(b, '\n')
	}
	return b
}

// GetMap returns the map as text, one "<type>: <length>\n" line per section in
// offset order. A zero size map produces an empty string. Any pending error is
// left for CheckError.
func (m *Map) GetMap() (string, error) {
	if m == nil {
		return "", ErrNilMap
	}
	return string(m.appendMap(nil)), nil
}

func (m *Map) String() string {
	s, _ := m.GetMap()
	return s
}

// WriteTo writes the same text as GetMap to |w|.
func (m *Map) WriteTo(w io.Writer) (int64, error) {
	if m == nil {
		return 0, ErrNilMap
	}
	n, err := w.Write(m.appendMap(nil))
	return int64(n), err
}

// Sections returns a copy of the map's sections.
func (m *Map) Sections() []Section {
	return slices.Clone(m.sections)
}

// Iterate calls |iter| for each section at or after |start|, in offset order.
// The section containing |start| is trimmed to begin at |start|. Iteration
// stops if |iter| returns false.
func (m *Map) Iterate(start int64, iter func(Section) bool) {
	start = max(start, 0)
	for i := m.find(start); i < len(m.sections); i++ {
		s := m.sections[i]
		if s.Offset < start {
			s.Length = s.End() - start
			s.Offset = start
		}
		if !iter(s) {
			return
		}
	}
}

// DataSize is the number of units covered by data sections.
func (m *Map) DataSize() int64 {
	size := int64(0)
	for _, s := range m.sections {
		if s.Type == SectionType_Data {
			size += s.Length
		}
	}
	return size
}

// Index of the section containing |off|, or an error if |off| is outside the
// file.
func (m *Map) seek(op string, off int64) (int, error) {
	if off < 0 {
		return 0, &RangeError{Op: op, Offset: off, Size: m.size}
	} else if off >= m.size {
		return 0, io.EOF
	}
	return m.find(off), nil
}

// NextData returns |off| if it is inside a data section, otherwise the start
// of the next data section. Returns io.EOF if there is no more data.
func (m *Map) NextData(off int64) (int64, error) {
	i, err := m.seek("NextData", off)
	if err != nil {
		return 0, err
	}
	if m.sections[i].Type == SectionType_Data {
		return off, nil
	}
	// Adjacent sections alternate type, so the next one is data.
	if i+1 < len(m.sections) {
		return m.sections[i+1].Offset, nil
	}
	return 0, io.EOF
}

// NextHole returns |off| if it is inside a hole, otherwise the start of the
// next hole. The end of the file counts as the start of a hole.
func (m *Map) NextHole(off int64) (int64, error) {
	i, err := m.seek("NextHole", off)
	if err != nil {
		return 0, err
	}
	if m.sections[i].Type == SectionType_Hole {
		return off, nil
	}
	if i+1 < len(m.sections) {
		return m.sections[i+1].Offset, nil
	}
	return m.size, nil
}

// Close releases the map's sections and any pending error. The map is left
// as an empty, zero size map.
func (m *Map) Close() error {
	if m == nil {
		return nil
	}
	m.size = 0
	m.sections = nil
	m.err = nil
	return nil
}
