package testutil

import (
	"io"
	"testing"
)

type Holey interface {
	NextData(off int64) (int64, error)
	NextHole(off int64) (int64, error)
}

func checkedNextData(t *testing.T, h Holey, off int64) (int64, bool) {
	t.Helper()

	next, err := h.NextData(off)
	if err == io.EOF {
		return 0, false
	} else if err != nil {
		t.Errorf("NextData(%d) error %v", off, err)
		return 0, false
	}
	return next, true
}

// CheckHoley compares NextData() and NextHole() of |tested| and |expected| for
// every offset in [0, size).
func CheckHoley(t *testing.T, tested, expected Holey, size int64) {
	t.Helper()

	for off := int64(0); off < size; off++ {
		testedData, testedOk := checkedNextData(t, tested, off)
		expData, expOk := checkedNextData(t, expected, off)
		if testedOk != expOk || testedData != expData {
			t.Errorf("NextData(%d) (%d, %v) != expected (%d, %v)",
				off, testedData, testedOk, expData, expOk)
		}

		testedHole, err := tested.NextHole(off)
		if err != nil {
			t.Errorf("NextHole(%d) error %v", off, err)
		}
		expHole, err := expected.NextHole(off)
		if err != nil {
			t.Errorf("expected NextHole(%d) error %v", off, err)
		}
		if testedHole != expHole {
			t.Errorf("NextHole(%d) %d != expected %d", off, testedHole, expHole)
		}
	}
}

// WalkData calls |fn| for every data range found by alternating NextData()
// and NextHole(), the way a backup tool would walk a sparse file.
func WalkData(t *testing.T, h Holey, fn func(off, length int64)) {
	t.Helper()

	off := int64(0)
	for {
		dataOff, ok := checkedNextData(t, h, off)
		if !ok {
			break
		}
		holeOff, err := h.NextHole(dataOff)
		if err != nil {
			t.Errorf("NextHole(%d) error %v", dataOff, err)
			break
		} else if holeOff <= dataOff {
			t.Errorf("NextHole(%d) %d did not advance", dataOff, holeOff)
			break
		}
		fn(dataOff, holeOff-dataOff)
		off = holeOff
	}
}
