package cli

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/idelchi/duview/internal/config"
	"github.com/idelchi/duview/internal/duview"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

func help() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		duview reports disk usage per subdirectory with bar graphs.

		Usage:

			duview [flags] [target]

		Positional Arguments:
		  target                 Directory to report on. Defaults to current directory if not specified.

		Sizes come from an external du-compatible utility; duview parses,
		sorts and renders its output. Each immediate subdirectory prints as
		a percentage-of-total bar alongside its size, largest first, with a
		total line last.

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var (
		options    duview.Options
		minSizeStr string
		noColor    bool
		configPath string
	)

	allowedOutputs := []string{"table", "json"}

	pflag.IntVarP(&options.Width, "length", "l",
		duview.DefaultBarWidth, "Length of the bar graph")
	pflag.BoolVarP(&options.HumanReadable, "human-readable", "H", false,
		"Print sizes in human readable format (e.g. 1.0 K, 23.4 M)")
	pflag.StringVar(&minSizeStr, "min-size", "0B", "Minimum entry size to list (e.g. 1KB)")
	pflag.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	pflag.StringVar(&options.DuBin, "du", duview.DefaultDuBin, "Size-accounting binary to invoke")
	pflag.DurationVar(&options.Timeout, "timeout", 0, "Bound on the probe invocation (0 = none)")
	pflag.StringVarP(&configPath, "config", "c", "", "Path to a YAML config file with defaults")
	pflag.BoolVar(&noColor, "no-color", false, "Disable ANSI coloring of the bar")
	pflag.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	pflag.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if options.Version {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if err := applyConfig(&options, &minSizeStr, &noColor, cfg); err != nil {
			return err
		}
	}

	if !slices.Contains(allowedOutputs, options.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
	}

	if options.Width <= 0 {
		return errors.New("length must be positive")
	}

	if pflag.NArg() == 0 {
		options.Target = "."
	} else {
		options.Target = pflag.Args()[0]
	}

	// Parse minSize string to bytes
	if minSizeStr != "" {
		size, err := humanize.ParseBytes(minSizeStr)
		if err != nil {
			return fmt.Errorf("invalid min-size: %w", err)
		}

		options.MinSize = int64(size) //nolint:gosec // Size conversion from humanize is safe
	}

	options.Color = !noColor

	return logic(options)
}

// applyConfig copies file defaults into options for every flag the user
// did not set explicitly.
func applyConfig(options *duview.Options, minSizeStr *string, noColor *bool, cfg *config.Config) error {
	changed := func(name string) bool {
		return pflag.Lookup(name).Changed
	}

	if !changed("du") && cfg.Du != "" {
		options.DuBin = cfg.Du
	}

	if !changed("length") && cfg.Length != 0 {
		options.Width = cfg.Length
	}

	if !changed("human-readable") && cfg.HumanReadable {
		options.HumanReadable = true
	}

	if !changed("min-size") && cfg.MinSize != "" {
		*minSizeStr = cfg.MinSize
	}

	if !changed("output") && cfg.Output != "" {
		options.Output = cfg.Output
	}

	if !changed("no-color") && cfg.NoColor {
		*noColor = true
	}

	if !changed("timeout") && cfg.Timeout != "" {
		timeout, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout: %w", err)
		}

		options.Timeout = timeout
	}

	return nil
}
