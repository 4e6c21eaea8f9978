package duview

import (
	"fmt"
	"time"
)

// DefaultBarWidth is the bar graph width used when none is configured.
const DefaultBarWidth = 20

// Options configures report generation and CLI behavior.
type Options struct {
	// Target is the directory to report on.
	Target string
	// DuBin is the du-compatible binary invoked for size accounting.
	DuBin string
	// Width is the bar graph width in characters.
	Width int
	// MinSize is the minimum entry size in bytes; smaller entries are
	// omitted from the listing.
	MinSize int64
	// Timeout bounds the probe invocation (0 = no bound).
	Timeout time.Duration
	// HumanReadable switches sizes to 1024-scaled unit strings.
	HumanReadable bool
	// Color enables ANSI coloring of the bar fill.
	Color bool
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (table or json).
	Output string
	// Version indicates whether to show version and exit.
	Version bool
}

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}
