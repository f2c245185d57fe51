package filemapctl

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/akmistry/filemap"
)

type Options struct {
	// Size of the file, in units.
	Size int64
	Ops  []Op

	// Check for a rejected operation after every op, instead of once at the
	// end. Identifies which op failed.
	CheckEach bool
}

// Run applies |opts.Ops| to a new map and writes the resulting map to |w|.
// Nothing is written if any operation is rejected.
func Run(w io.Writer, opts Options) error {
	m, err := filemap.New(opts.Size)
	if err != nil {
		return err
	}
	defer m.Close()

	for i, op := range opts.Ops {
		m.Mark(op.Type, op.Offset, op.Length)
		if !opts.CheckEach {
			continue
		}
		if err := m.CheckError(); err != nil {
			return fmt.Errorf("operation %d (%v): %w", i, op, err)
		}
	}
	if err := m.CheckError(); err != nil {
		return err
	}

	slog.Debug("filemapctl/Run: applied operations",
		"size", opts.Size,
		"ops", len(opts.Ops),
		"sections", m.Len(),
		"dataSize", m.DataSize())

	_, err = m.WriteTo(w)
	return err
}
