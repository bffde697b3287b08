package contrast

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Check runs the scan -> resolve -> compute pipeline.
// It does not write the report artifact; see WriteReportFile.
func Check(config Config) (*Report, error) {
	logger := loggerOrDiscard(config.Logger)
	root := config.Root
	if root == "" {
		root = "."
	}

	// 1. Scan tokens
	scanner := NewScanner(config)
	tokens, scan, err := scanner.Scan(root, NewTokenSet())
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	logger.Debug("scan complete",
		"files", len(scan.Files),
		"skipped", scan.Skipped,
		"ignored", scan.Ignored,
		"tokens", tokens.Len())

	return BuildReport(scan.Files, tokens, config.ResolveAll, config.Logger), nil
}

// BuildReport resolves tokens and evaluates the candidate pairs
func BuildReport(files []string, tokens *TokenSet, resolveAll bool, logger *slog.Logger) *Report {
	names := Vocabulary
	if resolveAll {
		names = make([]string, 0, tokens.Len())
		for _, tok := range tokens.Tokens() {
			names = append(names, tok.Name)
		}
	}

	// 2. Resolve and convert
	colors := ResolveColors(names, tokens, logger)

	// 3. Compute contrast
	checks := EvaluatePairs(colors)

	return &Report{
		FilesScanned: len(files),
		Files:        files,
		Tokens:       tokens,
		Resolved:     colors,
		Checks:       checks,
	}
}

// ReportPath returns where the artifact goes for config
func ReportPath(config Config) string {
	output := config.Output
	if output == "" {
		output = DefaultOutput
	}
	if filepath.IsAbs(output) {
		return output
	}
	root := config.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, output)
}

// WriteReportFile writes the JSON artifact to path.
// The report is written to a temporary file first, so a failed write leaves no partial report.
func WriteReportFile(path string, report *Report) (err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve report path: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(abs), ".contrast-report-*.json")
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = WriteJSON(tmp, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod report: %w", err)
	}
	if err = os.Rename(tmp.Name(), abs); err != nil {
		return fmt.Errorf("rename report: %w", err)
	}

	report.OutputPath = abs
	return nil
}

// Failing returns the checks that don't satisfy level
func (r *Report) Failing(level Level) []CheckResult {
	var failing []CheckResult
	for _, check := range r.Checks {
		if !check.Passes(level) {
			failing = append(failing, check)
		}
	}
	return failing
}
