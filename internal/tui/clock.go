package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// digitArt holds 5x5 block glyphs for the big clock
var digitArt = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// clockText formats d as MM:SS, or HH:MM:SS from one hour up
func clockText(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// renderBigClock renders d in block digits, each line centred to width
func renderBigClock(d time.Duration, color string, width int) string {
	var lines [5]strings.Builder
	for _, char := range clockText(d) {
		art, ok := digitArt[char]
		if !ok {
			continue
		}
		for i := range art {
			lines[i].WriteString(art[i])
			lines[i].WriteString(" ") // Space between digits
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)
	lineStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width)

	rendered := make([]string, len(lines))
	for i := range lines {
		rendered[i] = lineStyle.Render(clockStyle.Render(lines[i].String()))
	}
	return strings.Join(rendered, "\n")
}

// centered renders text centred in width with the given colour
func centered(text, color string, width int) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Align(lipgloss.Center).
		Width(width).
		Render(text)
}
