package t

type Holey interface {
	// Returns |off| if it is inside a data range, otherwise the start of the
	// next data range. Returns io.EOF if there is no more data.
	NextData(off int64) (int64, error)
	// Returns |off| if it is inside a hole, otherwise the start of the next
	// hole.
	NextHole(off int64) (int64, error)
}

// Marker records writes and hole punches over ranges of a file.
type Marker interface {
	Data(off, length int64)
	Hole(off, length int64)
}

type LayoutMarker interface {
	Marker
	Holey
	Size() int64
}
