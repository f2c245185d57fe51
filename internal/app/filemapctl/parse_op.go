package filemapctl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akmistry/filemap"
)

var (
	ErrInvalidOp = errors.New("invalid operation")
)

// Op is a single mark, written as "data:OFF:LEN" or "hole:OFF:LEN".
type Op struct {
	Type           filemap.SectionType
	Offset, Length int64
}

func (o Op) String() string {
	return fmt.Sprintf("%v:%d:%d", o.Type, o.Offset, o.Length)
}

func ParseOp(str string) (Op, error) {
	parts := strings.Split(str, ":")
	if len(parts) != 3 {
		return Op{}, ErrInvalidOp
	}

	var op Op
	switch parts[0] {
	case "data":
		op.Type = filemap.SectionType_Data
	case "hole":
		op.Type = filemap.SectionType_Hole
	default:
		return Op{}, ErrInvalidOp
	}

	var err error
	op.Offset, err = ParseSizeString(parts[1])
	if err != nil {
		return Op{}, fmt.Errorf("error parsing offset of %q: %w", str, err)
	}
	op.Length, err = ParseSizeString(parts[2])
	if err != nil {
		return Op{}, fmt.Errorf("error parsing length of %q: %w", str, err)
	}
	return op, nil
}

func ParseOps(strs []string) ([]Op, error) {
	ops := make([]Op, 0, len(strs))
	for _, str := range strs {
		op, err := ParseOp(str)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}
