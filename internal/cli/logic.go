package cli

import (
	"context"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/duview/internal/duview"
)

func logic(options duview.Options) error {
	// Color only ever applies to the table output on a terminal.
	options.Color = options.Color &&
		strings.ToLower(options.Output) != "json" &&
		isatty.IsTerminal(os.Stdout.Fd())

	report, err := duview.Run(context.Background(), options)
	if err != nil {
		return err
	}

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintJSON(report, os.Stdout)
	default:
		return PrintTable(report, options, os.Stdout)
	}
}
