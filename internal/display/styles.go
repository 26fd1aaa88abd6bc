// Package display holds shared styling and text helpers for cclog's
// terminal output.
package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	// Colors
	colorUser  = lipgloss.Color("14")  // cyan
	colorAsst  = lipgloss.Color("15")  // white
	colorTool  = lipgloss.Color("244") // medium gray
	colorLabel = lipgloss.Color("12")  // bright blue

	StyleUser      = lipgloss.NewStyle().Foreground(colorUser)
	StyleAssistant = lipgloss.NewStyle().Foreground(colorAsst)
	StyleTool      = lipgloss.NewStyle().Foreground(colorTool)
	StyleLabel     = lipgloss.NewStyle().Foreground(colorLabel).Bold(true)
)

// Truncate trims s to at most max display columns, appending "..." when it
// had to cut.
func Truncate(s string, max int) string {
	if max <= 3 {
		max = 3
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max-3, "") + "..."
}

// EscapeNewlines makes a message single-line by spelling out its breaks, so
// list rows stay one row.
func EscapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\n", "\\n")
	return strings.ReplaceAll(s, "\r", "\\r")
}

// Flatten collapses newlines to spaces for one-line display.
func Flatten(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
