// Package csscontrast checks the WCAG contrast of CSS color tokens.
//
// csscontrast walks a directory for .html and .css files, collects the custom
// properties declared in :root blocks, resolves single-hop var() references
// and evaluates a fixed set of semantic foreground/background pairs.
//
// # Usage
//
//	report, err := csscontrast.Run(csscontrast.Config{Root: "site"}, os.Stdout, csscontrast.OutputOptions{})
//
// The report is written to site/contrast-report.json and summarized on stdout.
//
// # Pairs
//
// Evaluated when both sides resolve to a color:
//
//   - text on bg, text on bg-alt
//   - primary on white, primary on secondary
//   - accent on bg, text-light on bg, success on bg
//
// # CLI Tool
//
//	go install github.com/yacobolo/csscontrast/cmd/csscontrast@latest
package csscontrast

import (
	"fmt"
	"io"

	"github.com/yacobolo/csscontrast/internal/contrast"
)

// Public types are aliases of the internal implementation.
type (
	Config        = contrast.Config
	Report        = contrast.Report
	CheckResult   = contrast.CheckResult
	Color         = contrast.Color
	Token         = contrast.Token
	OutputOptions = contrast.OutputOptions
	OutputFormat  = contrast.OutputFormat
	Level         = contrast.Level
)

// Check scans config.Root and evaluates the candidate pairs without writing anything
func Check(config Config) (*Report, error) {
	return contrast.Check(config)
}

// Run checks config.Root, writes the JSON artifact and prints the report to w.
// Failing to write the artifact is the only error after a successful scan.
func Run(config Config, w io.Writer, opts OutputOptions) (*Report, error) {
	report, err := contrast.Check(config)
	if err != nil {
		return nil, err
	}

	path := contrast.ReportPath(config)
	if err := contrast.WriteReportFile(path, report); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}

	if err := contrast.WriteOutput(w, report, opts); err != nil {
		return report, fmt.Errorf("printing report: %w", err)
	}

	return report, nil
}
