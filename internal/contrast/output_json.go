package contrast

import (
	"encoding/json"
	"io"
)

// JSONOutput represents the report artifact schema
type JSONOutput struct {
	FilesScannedCount int         `json:"files_scanned_count"`
	VariablesFound    *TokenSet   `json:"variables_found"`
	ResolvedRGB       *ColorSet   `json:"resolved_rgb"`
	Checks            []JSONCheck `json:"checks"`
}

// JSONCheck represents a single evaluated pair
type JSONCheck struct {
	Foreground    string    `json:"foreground"`
	Background    string    `json:"background"`
	FgRGB         Color     `json:"fg_rgb"`
	BgRGB         Color     `json:"bg_rgb"`
	ContrastRatio JSONRatio `json:"contrast_ratio"`
	AANormalText  bool      `json:"AA_normal_text"`
	AALargeText   bool      `json:"AA_large_text"`
	AAANormalText bool      `json:"AAA_normal_text"`
}

// JSONRatio encodes a ratio with at least one decimal (21 -> 21.0)
type JSONRatio float64

// MarshalJSON implements json.Marshaler
func (r JSONRatio) MarshalJSON() ([]byte, error) {
	return []byte(FormatRatio(float64(r))), nil
}

// WriteJSON writes the report as indented JSON
func WriteJSON(w io.Writer, report *Report) error {
	output := buildJSONOutput(report)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(output)
}

// buildJSONOutput converts Report to JSONOutput
func buildJSONOutput(report *Report) JSONOutput {
	tokens := report.Tokens
	if tokens == nil {
		tokens = NewTokenSet()
	}
	resolved := report.Resolved
	if resolved == nil {
		resolved = NewColorSet()
	}

	checks := make([]JSONCheck, len(report.Checks))
	for i, check := range report.Checks {
		checks[i] = JSONCheck{
			Foreground:    check.Foreground,
			Background:    check.Background,
			FgRGB:         check.FG,
			BgRGB:         check.BG,
			ContrastRatio: JSONRatio(check.Ratio),
			AANormalText:  check.AANormal,
			AALargeText:   check.AALarge,
			AAANormalText: check.AAANormal,
		}
	}

	return JSONOutput{
		FilesScannedCount: report.FilesScanned,
		VariablesFound:    tokens,
		ResolvedRGB:       resolved,
		Checks:            checks,
	}
}
