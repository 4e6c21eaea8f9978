package duview

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBarProperties(t *testing.T) {
	widths := []int{0, 1, 5, 20, 33, 100}

	for _, width := range widths {
		for percent := 0.0; percent <= 100; percent += 0.5 {
			bar, err := RenderBar(percent, width)
			require.NoError(t, err)

			require.Len(t, bar, width)
			assert.Empty(t, strings.Trim(bar, "= "))

			wantFilled := int(math.Round(percent * float64(width) / 100))
			assert.Equal(t, wantFilled, strings.Count(bar, "="))
		}
	}
}

func TestRenderBarFill(t *testing.T) {
	tests := []struct {
		percent float64
		width   int
		want    string
	}{
		{0, 4, "    "},
		{100, 4, "===="},
		{50, 20, "==========          "},
		{30, 20, "======              "},
		{20, 20, "====                "},
		// Half rounds away from zero.
		{12.5, 20, "===                 "},
	}

	for _, tt := range tests {
		bar, err := RenderBar(tt.percent, tt.width)
		require.NoError(t, err)
		assert.Equal(t, tt.want, bar)
	}
}

func TestRenderBarRange(t *testing.T) {
	for _, percent := range []float64{-1, -0.001, 100.001, 101, 150} {
		_, err := RenderBar(percent, 20)
		require.ErrorIs(t, err, ErrPercentRange)
	}
}
