package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/idelchi/duview/internal/duview"
)

// PrintJSON outputs the report in JSON format.
func PrintJSON(report *duview.Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the report as bar-graph lines, one subdirectory per
// line and the total last.
func PrintTable(report *duview.Report, options duview.Options, writer io.Writer) error {
	lines, err := report.Lines(options.Width, options.HumanReadable, options.Color)
	if err != nil {
		return err
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}

	return nil
}
