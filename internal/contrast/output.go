package contrast

import (
	"fmt"
	"io"
)

// OutputOptions controls console rendering
type OutputOptions struct {
	Format  OutputFormat
	Colors  bool // Force color output
	Verbose bool // Add statistics to the summary format
	Strict  bool
	Level   Level
}

// DetermineOutputFormat maps a --format value to an OutputFormat.
// Unknown values fall back to the summary format.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	default:
		return OutputSummary
	}
}

// ParseLevel maps a --level value to a Level
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case "", LevelAA:
		return LevelAA, nil
	case LevelAALarge:
		return LevelAALarge, nil
	case LevelAAA:
		return LevelAAA, nil
	}
	return "", fmt.Errorf("unknown level %q (want aa, aa-large or aaa)", s)
}

// WriteOutput writes the report in the requested console format
func WriteOutput(w io.Writer, report *Report, opts OutputOptions) error {
	switch opts.Format {
	case OutputJSON:
		return WriteJSON(w, report)

	case OutputMarkdown:
		return WriteMarkdown(w, report)

	default:
		reporter := NewReporter(w, opts.Colors)
		if report.OutputPath != "" {
			reporter.PrintCompletion(report.OutputPath)
		}
		reporter.PrintChecks(report.Checks)
		reporter.PrintTokens(report.Tokens)

		if opts.Verbose {
			verboseReporter := NewVerboseReporter(w, reporter.UseColors())
			verboseReporter.PrintStatistics(report)
			verboseReporter.PrintPassRate(report)
			verboseReporter.PrintUnresolved(report)
		}

		if opts.Strict {
			reporter.PrintStrictFailures(report.Failing(opts.Level), opts.Level)
		}
	}
	return nil
}
