package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Header with decorative underline
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	// Subtle muted text
	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

// Separator renders a decorative horizontal rule.
func Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}

// ProgressBar renders integration progress as a filled bar.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if percent >= 1 {
		return StatusRunning.Render(bar)
	}
	return ValueStyle.Render(bar)
}
