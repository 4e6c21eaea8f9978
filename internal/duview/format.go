package duview

import (
	"fmt"
	"strconv"
)

// sizeUnits are the 1024-scaled unit suffixes, smallest first. Scaling
// stops at P regardless of magnitude.
var sizeUnits = []string{"B", "K", "M", "G", "T", "P"}

// FormatSize renders size as either its exact decimal digits or, when
// human is set, a 1024-scaled value with one fractional digit and a unit
// suffix, e.g. 11075584 → "10.6 M".
func FormatSize(size int64, human bool) string {
	if !human {
		return strconv.FormatInt(size, 10)
	}

	value := float64(size)
	unit := 0

	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", value, sizeUnits[unit])
}
