package contrast

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Reporter prints the human-readable console summary
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a new reporter; forceColors skips terminal detection
func NewReporter(w io.Writer, forceColors bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: shouldUseColors(forceColors),
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// NO_COLOR opts out (https://no-color.org)
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintCompletion prints the line naming the written artifact
func (r *Reporter) PrintCompletion(path string) {
	fmt.Fprintf(r.w, "Contrast check complete. Report written to: %s\n",
		RenderStyle(StyleCyan, path, r.useColors))
}

// PrintChecks prints one summary line per check
func (r *Reporter) PrintChecks(checks []CheckResult) {
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Summary:", r.useColors))
	for _, check := range checks {
		r.printCheck(check)
	}
}

// printCheck formats: - <fg> on <bg>: ratio <r> — AA: <bool>, AAA: <bool>
func (r *Reporter) printCheck(check CheckResult) {
	swatch := RenderSwatch(check.FG, check.BG, r.useColors)
	if swatch != "" {
		swatch += " "
	}

	ratio := FormatRatio(check.Ratio)
	if r.useColors && !check.AANormal && check.AALarge {
		// Readable only as large text
		ratio = StyleYellow.Render(ratio)
	}

	fmt.Fprintf(r.w, "- %s%s on %s: ratio %s — AA: %s, AAA: %s\n",
		swatch,
		check.Foreground,
		check.Background,
		ratio,
		RenderStyle(passStyle(check.AANormal), strconv.FormatBool(check.AANormal), r.useColors),
		RenderStyle(passStyle(check.AAANormal), strconv.FormatBool(check.AAANormal), r.useColors))
}

// PrintTokens lists every discovered token, used or not
func (r *Reporter) PrintTokens(tokens *TokenSet) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Found variables:", r.useColors))
	if tokens == nil {
		return
	}
	for _, tok := range tokens.Tokens() {
		fmt.Fprintf(r.w, "--%s: %s\n", tok.Name, RenderStyle(StyleGray, tok.Value, r.useColors))
	}
}

// PrintStrictFailures explains why strict mode failed
func (r *Reporter) PrintStrictFailures(failing []CheckResult, level Level) {
	if len(failing) == 0 {
		return
	}
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleRed,
		fmt.Sprintf("Strict mode: %s below %s", pluralizeCount(len(failing), "check", "checks"), strings.ToUpper(string(level))),
		r.useColors))
	for _, check := range failing {
		fmt.Fprintf(r.w, "* %s on %s (%s)\n", check.Foreground, check.Background, FormatRatio(check.Ratio))
	}
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// FormatRatio prints a rounded ratio with at least one decimal: 21.0, 4.54
func FormatRatio(ratio float64) string {
	s := strconv.FormatFloat(ratio, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
