package contrast

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		expected   OutputFormat
	}{
		{name: "empty defaults to summary", formatFlag: "", expected: OutputSummary},
		{name: "explicit summary", formatFlag: "summary", expected: OutputSummary},
		{name: "explicit json", formatFlag: "json", expected: OutputJSON},
		{name: "explicit markdown", formatFlag: "markdown", expected: OutputMarkdown},
		{name: "markdown shorthand (md)", formatFlag: "md", expected: OutputMarkdown},
		{name: "unknown falls back", formatFlag: "xml", expected: OutputSummary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, DetermineOutputFormat(tt.formatFlag))
		})
	}
}

func TestParseLevel(t *testing.T) {
	for input, want := range map[string]Level{
		"":         LevelAA,
		"aa":       LevelAA,
		"aa-large": LevelAALarge,
		"aaa":      LevelAAA,
	} {
		got, err := ParseLevel(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}

	_, err := ParseLevel("AAA+")
	require.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var decoded JSONTestReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, 1, decoded.FilesScannedCount)
	require.Len(t, decoded.Checks, 2)

	first := decoded.Checks[0]
	assert.Equal(t, "text", first.Foreground)
	assert.Equal(t, "bg", first.Background)
	assert.Equal(t, [3]int{0, 0, 0}, first.FgRGB)
	assert.Equal(t, [3]int{255, 255, 255}, first.BgRGB)
	assert.InDelta(t, 21.0, first.ContrastRatio, 0.01)
	assert.True(t, first.AANormalText)
	assert.True(t, first.AALargeText)
	assert.True(t, first.AAANormalText)

	second := decoded.Checks[1]
	assert.Equal(t, "white", second.Background)
	assert.InDelta(t, 4.48, second.ContrastRatio, 1e-9)
	assert.False(t, second.AANormalText)
	assert.True(t, second.AALargeText)
}

// JSONTestReport mirrors the artifact schema for decoding in tests
type JSONTestReport struct {
	FilesScannedCount int               `json:"files_scanned_count"`
	VariablesFound    map[string]string `json:"variables_found"`
	ResolvedRGB       map[string][3]int `json:"resolved_rgb"`
	Checks            []struct {
		Foreground    string  `json:"foreground"`
		Background    string  `json:"background"`
		FgRGB         [3]int  `json:"fg_rgb"`
		BgRGB         [3]int  `json:"bg_rgb"`
		ContrastRatio float64 `json:"contrast_ratio"`
		AANormalText  bool    `json:"AA_normal_text"`
		AALargeText   bool    `json:"AA_large_text"`
		AAANormalText bool    `json:"AAA_normal_text"`
	} `json:"checks"`
}

func TestWriteJSON_KeepsDeclarationOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))
	out := buf.String()

	// Keys appear as declared, not sorted
	order := []string{`"text": "#000000"`, `"bg": "#ffffff"`, `"primary": "#777777"`, `"spacing": "4px"`, `"accent": "oops"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(out, key)
		require.Greater(t, idx, last, key)
		last = idx
	}

	// Top-level keys in schema order
	assert.Less(t, strings.Index(out, `"files_scanned_count"`), strings.Index(out, `"variables_found"`))
	assert.Less(t, strings.Index(out, `"resolved_rgb"`), strings.Index(out, `"checks"`))
}

func TestWriteJSON_RatioKeepsDecimal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, `"contrast_ratio": 21.0,`)
	assert.Contains(t, out, `"contrast_ratio": 4.48,`)
}

func TestWriteJSON_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &Report{}))
	require.JSONEq(t, `{
		"files_scanned_count": 0,
		"variables_found": {},
		"resolved_rgb": {},
		"checks": []
	}`, buf.String())
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleReport()))

	md := buf.String()
	assert.Contains(t, md, "# Contrast Report")
	assert.Contains(t, md, "## Checks")
	assert.Contains(t, md, "## Tokens")
	assert.Contains(t, md, "`#777777`")
	assert.Contains(t, md, "4.48")
	assert.Contains(t, md, "`--accent`")
	assert.Contains(t, md, "theme.css:6")
	assert.Contains(t, md, "1 pair(s) fail AA for normal text")
}

func TestWriteMarkdown_NoChecks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, &Report{}))

	md := buf.String()
	assert.Contains(t, md, "No token pairs could be evaluated.")
	assert.Contains(t, md, "No tokens found.")
}

func TestWriteOutput_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleReport(), OutputOptions{Format: OutputJSON}))
	assert.True(t, json.Valid(buf.Bytes()))
}
