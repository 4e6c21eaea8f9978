package duview

import (
	"fmt"
	"math"
	"strings"
)

// RenderBar renders percent as a fixed-width bar of '=' fill characters
// padded with spaces to exactly width. The fill count is
// percent*width/100 rounded half away from zero, so a given percent/width
// pair always renders identically.
//
// percent outside [0, 100] returns ErrPercentRange: it signals a child
// entry larger than the snapshot's total, and a clamped bar would hide
// that inconsistency.
func RenderBar(percent float64, width int) (string, error) {
	if percent < 0 || percent > 100 {
		return "", fmt.Errorf("%w: got %v", ErrPercentRange, percent)
	}

	filled := int(math.Round(percent * float64(width) / 100))

	return strings.Repeat("=", filled) + strings.Repeat(" ", width-filled), nil
}
