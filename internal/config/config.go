// Package config loads file-based defaults for duview.
package config

// Config holds defaults read from a YAML file. Flags that were explicitly
// set on the command line take precedence over these values.
type Config struct {
	// Du is the size-accounting binary to invoke.
	Du string `yaml:"du"`
	// Length is the bar graph width.
	Length int `yaml:"length"`
	// HumanReadable switches sizes to 1024-scaled unit strings.
	HumanReadable bool `yaml:"humanReadable"`
	// MinSize is the minimum entry size, e.g. "1KB".
	MinSize string `yaml:"minSize"`
	// Output is the output format, "table" or "json".
	Output string `yaml:"output"`
	// NoColor disables ANSI coloring even on a terminal.
	NoColor bool `yaml:"noColor"`
	// Timeout bounds the probe invocation, e.g. "10s" (empty = no bound).
	Timeout string `yaml:"timeout"`
}
