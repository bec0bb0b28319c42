package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the CLI output.
var (
	colorHeader = color.New(color.Bold)

	colorMuted = color.New(color.FgWhite, color.Faint)

	colorStats = color.New(color.FgGreen)

	// Event swatches by event color name
	eventColors = map[string]*color.Color{
		"blue":   color.New(color.FgBlue),
		"green":  color.New(color.FgGreen),
		"red":    color.New(color.FgRed),
		"yellow": color.New(color.FgYellow),
		"purple": color.New(color.FgMagenta),
	}
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatStats formats text for statistics.
func formatStats(s string) string {
	return colorStats.Sprint(s)
}

// formatEvent colors text with the event's swatch.
func formatEvent(colorName, s string) string {
	if c, ok := eventColors[colorName]; ok {
		return c.Sprint(s)
	}
	return s
}
