package filemapctl

import (
	"errors"
	"math"
	"regexp"
	"strconv"
)

var (
	ErrInvalidSizeString = errors.New("invalid size string")

	sizePattern = regexp.MustCompile("^([1-9][0-9]*)([KMGTP])?$")

	sizeShifts = map[string]uint{
		"K": 10,
		"M": 20,
		"G": 30,
		"T": 40,
		"P": 50,
	}
)

// ParseSizeString parses a count of units, with an optional binary suffix
// (K, M, G, T or P).
func ParseSizeString(str string) (int64, error) {
	// Special case "0" to simplify the regexp.
	if str == "0" {
		return 0, nil
	}

	parts := sizePattern.FindStringSubmatch(str)
	if len(parts) < 2 {
		return 0, ErrInvalidSizeString
	}

	size, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, ErrInvalidSizeString
	}
	if len(parts) == 3 && parts[2] != "" {
		shift := sizeShifts[parts[2]]
		if size > (math.MaxInt64 >> shift) {
			return 0, ErrInvalidSizeString
		}
		size <<= shift
	}
	return size, nil
}
