package contrast

import (
	"fmt"
	"io"
	"strings"
)

// VerboseReporter handles detailed statistics
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs scan and check counts
func (r *VerboseReporter) PrintStatistics(report *Report) {
	tokens, resolved := 0, 0
	if report.Tokens != nil {
		tokens = report.Tokens.Len()
	}
	if report.Resolved != nil {
		resolved = report.Resolved.Len()
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Contrast Statistics", r.useColors))
	fmt.Fprintln(r.w, "-------------------")

	fmt.Fprintf(r.w, "Files Scanned:   %d\n", report.FilesScanned)
	fmt.Fprintf(r.w, "Tokens Found:    %d\n", tokens)
	fmt.Fprintf(r.w, "Colors Resolved: %d\n", resolved)
	fmt.Fprintf(r.w, "Pairs Checked:   %d\n", len(report.Checks))
}

// PrintPassRate shows one progress bar per WCAG level
func (r *VerboseReporter) PrintPassRate(report *Report) {
	if len(report.Checks) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Pass Rate", r.useColors))
	fmt.Fprintln(r.w, "---------")

	for _, level := range []Level{LevelAALarge, LevelAA, LevelAAA} {
		passed := len(report.Checks) - len(report.Failing(level))
		percentage := float64(passed) / float64(len(report.Checks)) * 100
		fmt.Fprintf(r.w, "%-9s ", strings.ToUpper(string(level)))
		printProgressBar(r.w, percentage)
	}
}

// PrintUnresolved lists vocabulary tokens that were declared but produced no color
func (r *VerboseReporter) PrintUnresolved(report *Report) {
	if report.Tokens == nil || report.Resolved == nil {
		return
	}

	var unresolved []Token
	for _, name := range Vocabulary {
		tok, ok := report.Tokens.Get(name)
		if !ok {
			continue
		}
		if _, ok := report.Resolved.Get(name); !ok {
			unresolved = append(unresolved, tok)
		}
	}
	if len(unresolved) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Unresolved Tokens", r.useColors))
	fmt.Fprintln(r.w, "-----------------")
	for _, tok := range unresolved {
		fmt.Fprintf(r.w, "• --%s: %s %s\n", tok.Name, tok.Value,
			RenderStyle(StyleGray, fmt.Sprintf("(%s:%d:%d)", tok.File, tok.Line, tok.Column), r.useColors))
	}
}

func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}
