package contrast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    Color
		wantOK  bool
	}{
		// Hex - 6 digit
		{"hex 6 digit", "#1a2b3c", RGB(26, 43, 60), true},
		{"hex 6 digit black", "#000000", RGB(0, 0, 0), true},
		{"hex 6 digit uppercase", "#FFFFFF", RGB(255, 255, 255), true},
		{"hex 6 digit without hash", "0a58ca", RGB(10, 88, 202), true},
		{"hex surrounded by whitespace", "  #ff0000\n", RGB(255, 0, 0), true},

		// Hex - 3 digit
		{"hex 3 digit", "#abc", RGB(170, 187, 204), true},
		{"hex 3 digit white", "#fff", RGB(255, 255, 255), true},
		{"hex 3 digit mixed case", "#F0a", RGB(255, 0, 170), true},

		// Functional notation
		{"rgb", "rgb(100, 100, 100)", RGB(100, 100, 100), true},
		{"rgb no spaces", "rgb(1,2,3)", RGB(1, 2, 3), true},
		{"rgba ignores alpha", "rgba(10, 20, 30, 0.5)", RGB(10, 20, 30), true},
		{"rgb truncates fractions", "rgb(12.9, 0.99, 254.5)", RGB(12, 0, 254), true},
		{"rgb clamps high", "rgb(300, 0, 0)", RGB(255, 0, 0), true},
		{"rgb clamps negative", "rgb(-20, 5, 5)", RGB(0, 5, 5), true},

		// No color
		{"empty", "", Color{}, false},
		{"hash only", "#", Color{}, false},
		{"hex 4 digit", "#abcd", Color{}, false},
		{"hex 5 digit", "#abcde", Color{}, false},
		{"hex 8 digit", "#aabbccdd", Color{}, false},
		{"invalid hex digits", "#gggggg", Color{}, false},
		{"signed hex pair", "#+f+f+f", Color{}, false},
		{"named color", "red", Color{}, false},
		{"rgb non-numeric", "rgb(a, b, c)", Color{}, false},
		{"rgb percentages", "rgb(50%, 50%, 50%)", Color{}, false},
		{"rgb too few components", "rgb(1, 2)", Color{}, false},
		{"rgb NaN", "rgb(NaN, 0, 0)", Color{}, false},
		{"rgb space separated", "rgb(1 2 3)", Color{}, false},
		{"unterminated rgb falls through to hex", "rgb(1, 2, 3", Color{}, false},
		{"unresolved var", "var(--bar)", Color{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseColor(tt.literal)
			require.Equal(t, tt.wantOK, ok, "ParseColor(%q)", tt.literal)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor_HexLonghandRoundTrip(t *testing.T) {
	// Every channel value must survive #RRGGBB parsing exactly
	for v := 0; v <= 255; v++ {
		c := RGB(uint8(v), uint8(255-v), uint8(v/2))
		got, ok := ParseColor(c.Hex())
		require.True(t, ok, c.Hex())
		require.Equal(t, c, got, c.Hex())
	}
}

func TestParseColor_HexShorthandDuplicatesNibble(t *testing.T) {
	digits := "0123456789abcdef"
	for i, d := range digits {
		literal := "#" + string([]rune{d, d, d})
		want := uint8(i*16 + i)
		got, ok := ParseColor(literal)
		require.True(t, ok, literal)
		require.Equal(t, RGB(want, want, want), got, literal)
	}
}

func TestColorHex(t *testing.T) {
	require.Equal(t, "#1a2b3c", RGB(26, 43, 60).Hex())
	require.Equal(t, "#ffffff", White.Hex())
}

func TestColorMarshalJSON(t *testing.T) {
	data, err := json.Marshal(RGB(26, 43, 60))
	require.NoError(t, err)
	require.JSONEq(t, `[26, 43, 60]`, string(data))
}
