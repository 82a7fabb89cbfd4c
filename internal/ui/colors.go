package ui

import "github.com/charmbracelet/lipgloss"

// Color palette using ANSI color codes for broad terminal compatibility.

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// colorsEnabled controls whether Colorize applies styles.
// Cleared by the --no-color flag before any output happens.
var colorsEnabled = true

// DisableColors switches all styled output to plain monochrome text.
func DisableColors() {
	colorsEnabled = false
}

// ColorsEnabled reports whether styled output is in effect.
func ColorsEnabled() bool {
	return colorsEnabled
}

// Colorize renders s with the given style, or returns it unchanged when
// colors are disabled.
func Colorize(style lipgloss.Style, s string) string {
	if !colorsEnabled {
		return s
	}
	return style.Render(s)
}
