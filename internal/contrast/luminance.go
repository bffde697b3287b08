package contrast

import "math"

// WCAG 2.x minimum contrast ratios
const (
	ThresholdAANormal  = 4.5
	ThresholdAALarge   = 3.0
	ThresholdAAANormal = 7.0
	ThresholdAAALarge  = 4.5
)

// linearize converts an sRGB channel byte to linear light
func linearize(channel uint8) float64 {
	c := float64(channel) / 255.0
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance returns the WCAG relative luminance of c, in [0,1]
func Luminance(c Color) float64 {
	return 0.2126*linearize(c.r) + 0.7152*linearize(c.g) + 0.0722*linearize(c.b)
}

// ContrastRatio returns the WCAG contrast ratio between a and b, in [1,21].
// The result does not depend on argument order.
func ContrastRatio(a, b Color) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Classify compares a full-precision ratio against each WCAG threshold.
// Callers must not pass a rounded ratio: 4.496 rounds to 4.5 but fails AA.
func Classify(ratio float64) Compliance {
	return Compliance{
		AANormal:  ratio >= ThresholdAANormal,
		AALarge:   ratio >= ThresholdAALarge,
		AAANormal: ratio >= ThresholdAAANormal,
		AAALarge:  ratio >= ThresholdAAALarge,
	}
}

// Passes reports whether the flags satisfy the given level
func (c Compliance) Passes(level Level) bool {
	switch level {
	case LevelAALarge:
		return c.AALarge
	case LevelAAA:
		return c.AAANormal
	default:
		return c.AANormal
	}
}

// roundRatio rounds to 2 decimals for storage and display
func roundRatio(ratio float64) float64 {
	return math.Round(ratio*100) / 100
}
