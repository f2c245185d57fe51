package testutil

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/akmistry/filemap/internal/rangemap"
)

// ExpectedMap renders the data ranges of |m|, and the holes between them, in
// the "<type>: <length>\n" text format.
func ExpectedMap(m rangemap.RangeMapIterator, size int64) string {
	var b strings.Builder
	off := int64(0)
	m.Iterate(0, func(r rangemap.Range) bool {
		if r.Offset > off {
			fmt.Fprintf(&b, "hole: %d\n", r.Offset-off)
		}
		fmt.Fprintf(&b, "data: %d\n", r.Length)
		off = r.End()
		return true
	})
	if off < size {
		fmt.Fprintf(&b, "hole: %d\n", size-off)
	}
	return b.String()
}

type Op struct {
	Data           bool
	Offset, Length int64
}

func (o Op) String() string {
	if o.Data {
		return fmt.Sprintf("data(%d, %d)", o.Offset, o.Length)
	}
	return fmt.Sprintf("hole(%d, %d)", o.Offset, o.Length)
}

// RandomOps returns |n| in-range operations on a file of |size| units, with
// lengths up to |maxLength|. Roughly one in eight operations is zero length.
func RandomOps(rng *rand.Rand, size, maxLength int64, n int) []Op {
	ops := make([]Op, n)
	for i := range ops {
		length := int64(0)
		if rng.Intn(8) != 0 {
			length = rng.Int63n(min(maxLength, size)+1)
		}
		ops[i] = Op{
			Data:   rng.Intn(2) == 0,
			Offset: rng.Int63n(size - length + 1),
			Length: length,
		}
	}
	return ops
}
