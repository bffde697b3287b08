package contrast

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
)

// WriteMarkdown writes a shareable Markdown report
func WriteMarkdown(w io.Writer, report *Report) error {
	md := markdown.NewMarkdown(w)

	md.H1("Contrast Report")
	md.PlainText("")

	writeMarkdownSummary(md, report)
	writeMarkdownChecks(md, report)
	writeMarkdownTokens(md, report)

	return md.Build()
}

// writeMarkdownSummary writes the counts table and an overall alert
func writeMarkdownSummary(md *markdown.Markdown, report *Report) {
	tokens, resolved := 0, 0
	if report.Tokens != nil {
		tokens = report.Tokens.Len()
	}
	if report.Resolved != nil {
		resolved = report.Resolved.Len()
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Files Scanned", strconv.Itoa(report.FilesScanned)},
			{"Tokens Found", strconv.Itoa(tokens)},
			{"Colors Resolved", strconv.Itoa(resolved)},
			{"Pairs Checked", strconv.Itoa(len(report.Checks))},
		},
	})
	md.PlainText("")

	failingAA := len(report.Failing(LevelAA))
	failingLarge := len(report.Failing(LevelAALarge))
	switch {
	case len(report.Checks) == 0:
		md.Note("No token pairs could be evaluated.")
	case failingLarge > 0:
		md.Cautionf("%d pair(s) fail even the large-text AA threshold (3:1).", failingLarge)
	case failingAA > 0:
		md.Warningf("%d pair(s) fail AA for normal text (4.5:1).", failingAA)
	default:
		md.Tip("All evaluated pairs pass AA for normal text.")
	}
	md.PlainText("")
}

// writeMarkdownChecks writes one row per evaluated pair
func writeMarkdownChecks(md *markdown.Markdown, report *Report) {
	md.H2("Checks")
	md.PlainText("")

	if len(report.Checks) == 0 {
		md.PlainText("No checks.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Checks))
	for i, check := range report.Checks {
		rows[i] = []string{
			check.Foreground,
			check.Background,
			"`" + check.FG.Hex() + "`",
			"`" + check.BG.Hex() + "`",
			FormatRatio(check.Ratio),
			passMark(check.AANormal),
			passMark(check.AALarge),
			passMark(check.AAANormal),
			passMark(check.AAALarge),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Foreground", "Background", "FG", "BG", "Ratio", "AA", "AA Large", "AAA", "AAA Large"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeMarkdownTokens lists every discovered token with its origin
func writeMarkdownTokens(md *markdown.Markdown, report *Report) {
	md.H2("Tokens")
	md.PlainText("")

	if report.Tokens == nil || report.Tokens.Len() == 0 {
		md.PlainText("No tokens found.")
		return
	}

	rows := make([][]string, 0, report.Tokens.Len())
	for _, tok := range report.Tokens.Tokens() {
		resolved := "-"
		if report.Resolved != nil {
			if c, ok := report.Resolved.Get(tok.Name); ok {
				resolved = "`" + c.Hex() + "`"
			}
		}
		rows = append(rows, []string{
			"`--" + tok.Name + "`",
			"`" + tok.Value + "`",
			resolved,
			fmt.Sprintf("%s:%d", tok.File, tok.Line),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Token", "Value", "Resolved", "Declared At"},
		Rows:   rows,
	})
}

func passMark(pass bool) string {
	if pass {
		return "✅"
	}
	return "❌"
}
