package contrast

import "log/slog"

// SyntheticWhite names the built-in white background; it needs no token
const SyntheticWhite = "white"

// Vocabulary lists the semantic tokens considered for pairing
var Vocabulary = []string{
	"text",
	"bg",
	"bg-alt",
	"primary",
	"primary-dark",
	"secondary",
	"accent",
	"text-light",
	"success",
	"warning",
}

// Pair is an ordered foreground/background combination
type Pair struct {
	Foreground string
	Background string
}

// CandidatePairs are evaluated in this order; a pair is skipped unless both sides resolved
var CandidatePairs = []Pair{
	{"text", "bg"},
	{"text", "bg-alt"},
	{"primary", SyntheticWhite},
	{"primary", "secondary"},
	{"accent", "bg"},
	{"text-light", "bg"},
	{"success", "bg"},
}

// ResolveColors resolves and converts the given names.
// Names that are missing, unresolvable or unparseable are left out of the result.
func ResolveColors(names []string, tokens *TokenSet, logger *slog.Logger) *ColorSet {
	logger = loggerOrDiscard(logger)
	colors := NewColorSet()

	for _, name := range names {
		raw, ok := tokens.Value(name)
		if !ok {
			continue
		}
		literal, ok := Resolve(raw, tokens)
		if !ok {
			logger.Debug("unresolved reference", "token", name, "value", raw)
			continue
		}
		c, ok := ParseColor(literal)
		if !ok {
			logger.Debug("not a color", "token", name, "value", literal)
			continue
		}
		colors.Set(name, c)
	}

	return colors
}

// EvaluatePairs computes a CheckResult for every candidate pair whose colors resolved
func EvaluatePairs(colors *ColorSet) []CheckResult {
	checks := make([]CheckResult, 0, len(CandidatePairs))

	for _, pair := range CandidatePairs {
		fg, ok := lookupColor(colors, pair.Foreground)
		if !ok {
			continue
		}
		bg, ok := lookupColor(colors, pair.Background)
		if !ok {
			continue
		}
		checks = append(checks, Evaluate(pair, fg, bg))
	}

	return checks
}

// Evaluate builds the check for one pair. Flags use the unrounded ratio.
func Evaluate(pair Pair, fg, bg Color) CheckResult {
	ratio := ContrastRatio(fg, bg)
	return CheckResult{
		Foreground: pair.Foreground,
		Background: pair.Background,
		FG:         fg,
		BG:         bg,
		Ratio:      roundRatio(ratio),
		Compliance: Classify(ratio),
	}
}

func lookupColor(colors *ColorSet, name string) (Color, bool) {
	if name == SyntheticWhite {
		return White, true
	}
	return colors.Get(name)
}
