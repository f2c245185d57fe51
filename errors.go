package filemap

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize  = errors.New("filemap: invalid size")
	ErrInvalidRange = errors.New("filemap: invalid range")
	ErrNilMap       = errors.New("filemap: nil map")
)

// RangeError describes a mark or seek whose range falls outside the file.
type RangeError struct {
	Op     string
	Offset int64
	Length int64
	Size   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("filemap: %s: range (offset %d, length %d) outside file of size %d",
		e.Op, e.Offset, e.Length, e.Size)
}

func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}
