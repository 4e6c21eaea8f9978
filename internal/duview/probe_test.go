package duview

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDu writes an executable stub standing in for du and returns its path.
func fakeDu(t *testing.T, script string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("stub scripts require a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "fakedu")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))

	return path
}

func TestProbe(t *testing.T) {
	bin := fakeDu(t, "printf '50\\t/a/b\\n100\\t/a\\n\\n'\n")

	lines, err := Probe(context.Background(), bin, "/a")
	require.NoError(t, err)

	// Blank trailing lines are dropped, order is preserved.
	assert.Equal(t, []string{"50\t/a/b", "100\t/a"}, lines)
}

func TestProbePassesTarget(t *testing.T) {
	bin := fakeDu(t, "printf '1\\t%s\\n' \"$5\"\n")

	lines, err := Probe(context.Background(), bin, "/some/dir")
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, "1\t/some/dir", lines[0])
}

func TestProbeNonZeroExit(t *testing.T) {
	bin := fakeDu(t, "echo 'cannot read' >&2\nexit 2\n")

	_, err := Probe(context.Background(), bin, "/a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read")
}

func TestProbeMissingBinary(t *testing.T) {
	_, err := Probe(context.Background(), filepath.Join(t.TempDir(), "nope"), "/a")
	require.Error(t, err)
}
