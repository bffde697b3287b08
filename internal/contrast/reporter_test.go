package contrast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *Report {
	tokens := ScanSources(NewTokenSet(), []Source{{
		Path:    "theme.css",
		Content: []byte(":root {\n  --text: #000000;\n  --bg: #ffffff;\n  --primary: #777777;\n  --spacing: 4px;\n  --accent: oops;\n}"),
	}})
	return BuildReport([]string{"theme.css"}, tokens, false, nil)
}

func TestFormatRatio(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{21, "21.0"},
		{1, "1.0"},
		{4.54, "4.54"},
		{4.5, "4.5"},
		{12.1, "12.1"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, FormatRatio(tt.ratio))
		})
	}
}

func TestReporterSummary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	report := sampleReport()
	report.OutputPath = "/work/contrast-report.json"

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, report, OutputOptions{Format: OutputSummary}))

	want := "Contrast check complete. Report written to: /work/contrast-report.json\n" +
		"Summary:\n" +
		"- text on bg: ratio 21.0 — AA: true, AAA: true\n" +
		"- primary on white: ratio 4.48 — AA: false, AAA: false\n" +
		"\n" +
		"Found variables:\n" +
		"--text: #000000\n" +
		"--bg: #ffffff\n" +
		"--primary: #777777\n" +
		"--spacing: 4px\n" +
		"--accent: oops\n"
	require.Equal(t, want, buf.String())
}

func TestReporterSummary_Verbose(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleReport(), OutputOptions{Format: OutputSummary, Verbose: true}))

	out := buf.String()
	assert.Contains(t, out, "Files Scanned:   1")
	assert.Contains(t, out, "Tokens Found:    5")
	assert.Contains(t, out, "Colors Resolved: 3")
	assert.Contains(t, out, "Pairs Checked:   2")
	assert.Contains(t, out, "AA-LARGE  [████████████████████] 100.0%")
	assert.Contains(t, out, "AA        [██████████░░░░░░░░░░] 50.0%")
	assert.Contains(t, out, "• --accent: oops (theme.css:6:3)")
}

func TestReporterSummary_Strict(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleReport(), OutputOptions{Strict: true, Level: LevelAA}))

	out := buf.String()
	assert.Contains(t, out, "Strict mode: 1 check below AA")
	assert.Contains(t, out, "* primary on white (4.48)")
}

func TestReporterColors(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, true)
	require.True(t, reporter.UseColors())

	reporter.PrintChecks(sampleReport().Checks)
	assert.Contains(t, buf.String(), "text")
	assert.Contains(t, buf.String(), " on bg: ratio 21.0")
}

func TestShouldUseColors(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, shouldUseColors(false))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, shouldUseColors(false))
	assert.True(t, shouldUseColors(true), "explicit flag wins")
}

func TestRenderStyle_NoColors(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
	assert.Empty(t, RenderSwatch(White, RGB(0, 0, 0), false))
}
