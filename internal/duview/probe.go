package duview

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultDuBin is the size-accounting binary used when none is configured.
const DefaultDuBin = "du"

// Probe runs the size-accounting utility against target, requesting
// byte-granular sizes for the target and its immediate children only,
// and returns stdout split into non-empty lines in output order.
//
// The call blocks until the subprocess exits; bound it through ctx if a
// timeout is wanted. A non-zero exit is returned as an error carrying the
// subprocess stderr.
func Probe(ctx context.Context, duBin, target string) ([]string, error) {
	if duBin == "" {
		duBin = DefaultDuBin
	}

	cmd := exec.CommandContext(ctx, duBin, "-B", "1", "-d", "1", target)

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("running %s: %w: %s",
				duBin, err, strings.TrimSpace(string(exitErr.Stderr)))
		}

		return nil, fmt.Errorf("running %s: %w", duBin, err)
	}

	lines := make([]string, 0)

	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		lines = append(lines, line)
	}

	return lines, nil
}
