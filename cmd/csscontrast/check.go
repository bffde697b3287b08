package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/csscontrast"
)

// errStrictFailure signals a non-zero exit without an extra error message
var errStrictFailure = errors.New("contrast checks failed in strict mode")

var checkCmd = &cobra.Command{
	Use:   "check [root]",
	Short: "Check contrast of :root color tokens",
	Long: `Walk a directory for .html and .css files, resolve :root color tokens
and report WCAG contrast ratios for the semantic token pairs.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	addCheckFlags(checkCmd)
}

// addCheckFlags registers the check flags on cmd. The root command gets them
// too, so `csscontrast --strict` behaves like `csscontrast check --strict`.
func addCheckFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("root", ".", "Directory to scan")
	f.StringP("output", "o", "contrast-report.json", "Report path (relative to root unless absolute)")
	f.String("format", "summary", "Console format: summary|json|markdown")
	f.StringSlice("exclude", nil, "Glob patterns to skip, relative to root")
	f.Bool("respect-gitignore", false, "Skip files matched by root/.gitignore")
	f.Bool("resolve-all", false, "Resolve every token, not just the pair vocabulary")
	f.Bool("strict", false, "Exit 1 when any check fails --level (CI mode)")
	f.String("level", "aa", "Level enforced by --strict: aa|aa-large|aaa")
}

// runCheck is shared between `csscontrast` and `csscontrast check`.
func runCheck(cmd *cobra.Command, args []string) error {
	settings, err := buildCheckSettings()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		settings.Config.Root = args[0]
	}
	settings.Config.Logger = setupLogger(settings.Output.Verbose)

	return executeCheck(cmd.OutOrStdout(), settings)
}

// executeCheck runs the check and applies the exit code policy.
func executeCheck(w io.Writer, settings checkSettings) error {
	out := w
	if settings.Quiet {
		out = io.Discard
	}

	report, err := csscontrast.Run(settings.Config, out, settings.Output)
	if err != nil {
		return err
	}

	// Default mode never fails on ratios; strict mode fails on any check below the level
	if settings.Output.Strict && len(report.Failing(settings.Output.Level)) > 0 {
		return errStrictFailure
	}

	return nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}
