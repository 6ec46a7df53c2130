package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// wrapIndented wraps rendered text to width and indents every line by n spaces.
func wrapIndented(text string, n, width int) string {
	bodyWidth := max(width-n, minBodyWidth)
	wrapped := lipgloss.NewStyle().Width(bodyWidth).Render(text)
	pad := strings.Repeat(" ", n)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

// hyperlink wraps text in an OSC 8 link so supporting terminals make it clickable.
func hyperlink(url, text string) string {
	if url == "" {
		return text
	}
	return ansi.SetHyperlink(url) + text + ansi.ResetHyperlink()
}

// lineCount returns the number of terminal rows a rendered block occupies.
func lineCount(block string) int {
	return strings.Count(block, "\n") + 1
}
