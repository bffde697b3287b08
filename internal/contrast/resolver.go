package contrast

import (
	"regexp"
	"strings"
)

// var(--name) at the start of a value; fallback syntax var(--a, b) does not match
var varReferencePattern = regexp.MustCompile(`^var\(--([a-zA-Z0-9_-]+)\)`)

// Resolve returns the literal a raw token value stands for.
//
// Resolution is a single hop: if --a is var(--b) and --b is var(--c),
// resolving --a yields "var(--c)". A missing target or an empty value reports false.
func Resolve(value string, tokens *TokenSet) (string, bool) {
	value = strings.TrimSpace(value)

	if m := varReferencePattern.FindStringSubmatch(value); m != nil {
		target, ok := tokens.Value(m[1])
		if !ok || target == "" {
			return "", false
		}
		return target, true
	}

	if value == "" {
		return "", false
	}
	return value, true
}
