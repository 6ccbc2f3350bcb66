package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/koops/pathfinder/internal/assessment"
	"github.com/koops/pathfinder/internal/ui/theme"
)

// Gauge shows the overall readiness percentage against the band
// thresholds.
type Gauge struct {
	Percent int
	Band    assessment.Band
	Width   int
}

// View renders the percentage, a band-coloured bar and the threshold ruler.
func (g Gauge) View() string {
	width := max(g.Width, 20)

	big := lipgloss.NewStyle().
		Foreground(theme.BandColor(g.Band)).
		Bold(true).
		Render(fmt.Sprintf("%d%%", g.Percent))

	bar := ProgressBar{
		Percent: g.Percent,
		Width:   width,
		Fill:    theme.BandColor(g.Band),
	}.View()

	ruler := []rune(strings.Repeat(" ", width))
	for _, mark := range []int{assessment.NotReadyMaxPercent, assessment.PilotReadyMinPercent} {
		pos := min(mark*width/100, width-1)
		ruler[pos] = '|'
	}

	marks := fmt.Sprintf("%-*s%s", width-4, "0", "100")
	return lipgloss.JoinVertical(lipgloss.Center,
		big,
		theme.Label.Render("READINESS INDEX"),
		"",
		bar,
		theme.Hint.Render(string(ruler)),
		theme.Hint.Render(marks),
	)
}
