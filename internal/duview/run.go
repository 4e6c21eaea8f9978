package duview

import (
	"context"
	"fmt"
	"os"
)

// Run executes the full report pipeline for opt: validate the target,
// probe it through the size-accounting utility, parse the output into a
// snapshot, and build the report.
//
// The probe is the only blocking step; it is awaited to completion, bounded
// by opt.Timeout when set. Any stage failing aborts the remainder.
func Run(ctx context.Context, opt Options) (*Report, error) {
	log := logger{enabled: opt.Debug}

	if opt.Target == "" {
		opt.Target = "."
	}

	if opt.Width <= 0 {
		opt.Width = DefaultBarWidth
	}

	if statInfo, err := os.Stat(opt.Target); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Target, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrNotDirectory, opt.Target)
	}

	if opt.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, opt.Timeout)
		defer cancel()
	}

	log.printf("[debug]: probing %q with %q\n", opt.Target, opt.DuBin)

	lines, err := Probe(ctx, opt.DuBin, opt.Target)
	if err != nil {
		return nil, err
	}

	log.printf("[debug]: probe returned %d lines\n", len(lines))

	snap, err := ParseLines(lines)
	if err != nil {
		return nil, err
	}

	log.printf("[debug]: snapshot holds %d paths, last %q\n", snap.Len(), snap.LastPath())

	report, err := BuildReport(snap, opt.Target, opt.MinSize)
	if err != nil {
		return nil, err
	}

	return report, nil
}
