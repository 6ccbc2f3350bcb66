package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/koops/pathfinder/internal/ui/theme"
)

// ProgressBar draws Percent (0-100) as a filled bar, optionally preceded by
// a label and followed by the number.
type ProgressBar struct {
	Label       string
	Percent     int
	ShowPercent bool
	Width       int
	Fill        color.Color
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(theme.Label.Render(p.Label))
		b.WriteString("  ")
	}

	suffix := ""
	if p.ShowPercent {
		suffix = fmt.Sprintf("  %3d%%", p.Percent)
	}

	barWidth := max(p.Width-lipgloss.Width(b.String())-len(suffix), 4)
	pct := min(max(p.Percent, 0), 100)
	filled := (barWidth*pct + 50) / 100

	fill := p.Fill
	if fill == nil {
		fill = theme.Primary
	}
	b.WriteString(lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)))

	if suffix != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix))
	}
	return b.String()
}
