package contrast

import "github.com/charmbracelet/lipgloss"

// Palette for the console reporters; ANSI codes so the terminal theme picks the shade.
var (
	// StyleCyan marks the report path and the statistics header.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleRed marks a level the pair misses.
	StyleRed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleYellow marks pairs readable only as large text.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGreen marks a level the pair meets.
	StyleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleGray dims raw token values and locations.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle styles text, or returns it as is for plain output
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// RenderSwatch draws sample text in the pair's own colors
func RenderSwatch(fg, bg Color, useColors bool) string {
	if !useColors {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex())).
		Render(" Aa ")
}

// passStyle picks green or red for a flag
func passStyle(pass bool) lipgloss.Style {
	if pass {
		return StyleGreen
	}
	return StyleRed
}
