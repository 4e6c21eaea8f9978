package duview

import (
	"fmt"
	"sort"
)

// Entry represents one subdirectory in a report.
type Entry struct {
	// Path is the subdirectory path as emitted by the probe.
	Path string `json:"path"`
	// Size is the size in bytes.
	Size int64 `json:"size"`
	// Percent is the share of the total size, in [0, 100] for well-formed
	// input.
	Percent float64 `json:"percent"`
}

// Report holds the sorted subdirectory entries and the resolved total for
// one invocation.
type Report struct {
	// Entries are the subdirectories, largest first.
	Entries []Entry `json:"entries"`
	// TotalPath is the resolved path of the target's own entry.
	TotalPath string `json:"total_path"`
	// TotalSize is the target's aggregate size in bytes.
	TotalSize int64 `json:"total_size"`
}

// BuildReport assembles a Report from a snapshot.
//
// The total entry is the one keyed by target, or by the last parsed path
// when du normalized the target string; neither being present returns
// ErrTotalNotFound. Children below minSize are omitted. A zero total
// yields percent 0 for every child. Entries sort by size descending,
// ties keeping their probe output order.
func BuildReport(snap *Snapshot, target string, minSize int64) (*Report, error) {
	totalPath := target

	totalSize, ok := snap.Size(totalPath)
	if !ok {
		totalPath = snap.LastPath()

		totalSize, ok = snap.Size(totalPath)
		if !ok {
			return nil, fmt.Errorf("%w: target %q", ErrTotalNotFound, target)
		}
	}

	entries := make([]Entry, 0, snap.Len())

	for _, path := range snap.Paths() {
		if path == totalPath {
			continue
		}

		size, _ := snap.Size(path)
		if size < minSize {
			continue
		}

		percent := 0.0
		if totalSize > 0 {
			percent = float64(size) / float64(totalSize) * 100
		}

		entries = append(entries, Entry{Path: path, Size: size, Percent: percent})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Size > entries[j].Size
	})

	return &Report{Entries: entries, TotalPath: totalPath, TotalSize: totalSize}, nil
}

const (
	ansiGreen = "\033[32m"
	ansiReset = "\033[0m"
)

// Lines renders the report as output lines: one per entry with a
// 3-wide integer percent field, the bar in brackets, the size
// left-justified in a minimum 8-character field and the path, then a
// final total line. An entry percent outside [0, 100] aborts with
// ErrPercentRange.
func (r *Report) Lines(width int, human, colorize bool) ([]string, error) {
	lines := make([]string, 0, len(r.Entries)+1)

	for _, entry := range r.Entries {
		bar, err := RenderBar(entry.Percent, width)
		if err != nil {
			return nil, fmt.Errorf("rendering bar for %q: %w", entry.Path, err)
		}

		if colorize {
			bar = colorizeBar(bar)
		}

		lines = append(lines, fmt.Sprintf("%3.0f %% [%s] %-8s %s",
			entry.Percent, bar, FormatSize(entry.Size, human), entry.Path))
	}

	lines = append(lines, fmt.Sprintf("Total: %s   %s",
		FormatSize(r.TotalSize, human), r.TotalPath))

	return lines, nil
}

// colorizeBar wraps the bar's fill run in ANSI green, leaving the padding
// untouched so the rendered width is unchanged.
func colorizeBar(bar string) string {
	fill := len(bar)
	for fill > 0 && bar[fill-1] == ' ' {
		fill--
	}

	if fill == 0 {
		return bar
	}

	return ansiGreen + bar[:fill] + ansiReset + bar[fill:]
}
