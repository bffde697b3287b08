package contrast

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB triple. The zero value is black.
type Color struct {
	r, g, b uint8
}

// White is the synthetic background used for the (primary, white) pair
var White = RGB(255, 255, 255)

// rgbPattern matches rgb()/rgba() functional notation at the start of a literal
var rgbPattern = regexp.MustCompile(`^rgba?\(([^)]+)\)`)

// RGB builds a Color from channel values
func RGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b}
}

// R returns the red channel
func (c Color) R() uint8 { return c.r }

// G returns the green channel
func (c Color) G() uint8 { return c.g }

// B returns the blue channel
func (c Color) B() uint8 { return c.b }

// Hex returns the color as "#rrggbb"
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.r) / 255,
		G: float64(c.g) / 255,
		B: float64(c.b) / 255,
	}.Hex()
}

// MarshalJSON encodes the color as a 3-element integer array
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{int(c.r), int(c.g), int(c.b)})
}

// ParseColor converts a color literal into a Color.
// Supported forms: #rgb, #rrggbb (leading # optional), rgb(r, g, b) and rgba(r, g, b, a).
// Anything else reports false.
func ParseColor(literal string) (Color, bool) {
	s := strings.TrimSpace(literal)

	if strings.HasPrefix(s, "rgb") {
		if m := rgbPattern.FindStringSubmatch(s); m != nil {
			return parseRGBArgs(m[1])
		}
		// Malformed functional notation falls through to the hex path
	}

	s = strings.TrimPrefix(s, "#")

	switch len(s) {
	case 3:
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			v, ok := parseHexByte(strings.Repeat(s[i:i+1], 2))
			if !ok {
				return Color{}, false
			}
			ch[i] = v
		}
		return RGB(ch[0], ch[1], ch[2]), true
	case 6:
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			v, ok := parseHexByte(s[i*2 : i*2+2])
			if !ok {
				return Color{}, false
			}
			ch[i] = v
		}
		return RGB(ch[0], ch[1], ch[2]), true
	}

	return Color{}, false
}

// parseRGBArgs reads the first three comma-separated components.
// Fractions are truncated toward zero, not rounded.
func parseRGBArgs(args string) (Color, bool) {
	parts := strings.Split(args, ",")
	if len(parts) < 3 {
		return Color{}, false
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Color{}, false
		}
		ch[i] = clampChannel(math.Trunc(f))
	}

	return RGB(ch[0], ch[1], ch[2]), true
}

// clampChannel keeps out-of-range rgb() components inside [0,255]
func clampChannel(v float64) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// parseHexByte parses exactly two hex digits
func parseHexByte(pair string) (uint8, bool) {
	for _, ch := range pair {
		if !isHexDigit(ch) {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

func isHexDigit(ch rune) bool {
	return ('0' <= ch && ch <= '9') || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}
