package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// precisionBar renders how close the estimate's standard error is to the
// precision target. A full bar means the session can stop on precision.
func precisionBar(se, target float64, width int) string {
	// SE starts at the neutral prior's 1.0 and falls toward the target.
	span := 1.0 - target
	pct := 0.0
	if span > 0 {
		pct = (1.0 - se) / span
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	label := dimStyle.Render("precision ")
	barWidth := width - lipgloss.Width(label)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * pct)
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	bar := lipgloss.NewStyle().Background(colorBarFill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(colorBorder).Render(strings.Repeat(" ", empty))
	return label + bar
}

// progressLine renders the answered / max counter with the running score.
func progressLine(answered, max, correct int) string {
	return dimStyle.Render(fmt.Sprintf("question %d of %d", answered+1, max)) +
		"   " +
		correctStyle.Render(fmt.Sprintf("✓ %d", correct))
}

// keyHints renders the footer hint row.
func keyHints(hints ...[2]string) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = accentStyle.Render(h[0]) + " " + dimStyle.Render(h[1])
	}
	return strings.Join(parts, "   ")
}

// centered wraps content to the window width.
func centered(width int, content string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content)
}
