package duview

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	target := t.TempDir()
	bin := fakeDu(t, "printf '30\\t%s/c\\n70\\t%s/b\\n100\\t%s\\n' \"$5\" \"$5\" \"$5\"\n")

	report, err := Run(context.Background(), Options{Target: target, DuBin: bin})
	require.NoError(t, err)

	assert.Equal(t, target, report.TotalPath)
	assert.Equal(t, int64(100), report.TotalSize)
	require.Len(t, report.Entries, 2)
	assert.Equal(t, filepath.Join(target, "b"), report.Entries[0].Path)
	assert.InDelta(t, 70.0, report.Entries[0].Percent, 0.001)
}

func TestRunNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := Run(context.Background(), Options{Target: file})
	require.ErrorIs(t, err, ErrNotDirectory)
}

func TestRunMissingTarget(t *testing.T) {
	_, err := Run(context.Background(), Options{Target: filepath.Join(t.TempDir(), "gone")})
	require.Error(t, err)
}

func TestRunProbeFailure(t *testing.T) {
	bin := fakeDu(t, "exit 1\n")

	_, err := Run(context.Background(), Options{Target: t.TempDir(), DuBin: bin})
	require.Error(t, err)
}
