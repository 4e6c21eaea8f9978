package duview

import (
	"fmt"
	"strconv"
	"strings"
)

// Snapshot is the immutable path→size mapping for one report invocation.
// It remembers the order in which paths were first seen, so that ties can
// be broken deterministically, and the path of the last parsed line, which
// du emits for the target directory itself.
type Snapshot struct {
	sizes map[string]int64
	order []string
	last  string
}

// Size returns the recorded size for path and whether path is present.
func (s *Snapshot) Size(path string) (int64, bool) {
	size, ok := s.sizes[path]

	return size, ok
}

// Len returns the number of distinct paths in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.sizes)
}

// Paths returns the snapshot's paths in first-seen order.
func (s *Snapshot) Paths() []string {
	return s.order
}

// LastPath returns the path from the last parsed line, or "" for an empty
// snapshot.
func (s *Snapshot) LastPath() string {
	return s.last
}

// ParseLines converts probe output lines into a Snapshot.
//
// Each line splits on whitespace into a leading size field and a path;
// fields beyond the first are rejoined with single spaces, so paths with
// internal spaces survive. Lines with fewer than two fields are skipped.
// A size field that is not a non-negative integer aborts the parse with
// ErrSizeToken: it means the utility's output shape has changed, and
// continuing would produce misleading percentages. The last write wins if
// a path repeats.
func ParseLines(lines []string) (*Snapshot, error) {
	snap := &Snapshot{sizes: make(map[string]int64, len(lines))}

	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		size, err := strconv.ParseUint(fields[0], 10, 63)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing line %q: %w", ErrSizeToken, line, err)
		}

		path := strings.Join(fields[1:], " ")

		if _, seen := snap.sizes[path]; !seen {
			snap.order = append(snap.order, path)
		}

		snap.sizes[path] = int64(size)
		snap.last = path
	}

	return snap, nil
}
