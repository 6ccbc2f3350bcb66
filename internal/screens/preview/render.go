package preview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/koops/pathfinder/internal/report"
	"github.com/koops/pathfinder/internal/ui/components"
	"github.com/koops/pathfinder/internal/ui/theme"
)

// Render lays out a report at the given width.
func Render(rep *report.Report, width int) string {
	w := max(width, 40)

	sections := []string{
		renderHeader(rep.Header, w),
		"",
		heading("Executive Summary"),
		theme.Body.Width(w).Render(rep.Summary),
		"",
		renderHighlights(rep, w),
		"",
		heading("Detailed Assessment"),
		renderDimensions(rep.Dimensions, w),
		"",
		heading("Projected Impact"),
		renderROI(rep.ROI, w),
		"",
		renderCallToAction(rep.CallToAction, w),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func heading(s string) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(strings.ToUpper(s))
}

func renderHeader(h report.Header, width int) string {
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Title)
	subtitle := theme.Hint.Render(h.Subtitle)
	meta := theme.Label.Render(fmt.Sprintf("DATE: %s   REF: %s   FACILITY: %s", h.Date, h.Reference, h.Facility))

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.ThickBorder(), false, false, true, false).
		BorderForeground(theme.Accent).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "", meta))
}

func renderHighlights(rep *report.Report, width int) string {
	boxes := []struct{ label, value string }{
		{"Overall Status", rep.OverallStatus},
		{"Recommended Action", rep.RecommendedAction},
		{"Pilot Timing", rep.PilotTiming},
	}
	boxWidth := max(width/len(boxes)-2, 16)

	rendered := make([]string, 0, len(boxes))
	for _, b := range boxes {
		value := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(b.value)
		rendered = append(rendered, theme.Card.
			Width(boxWidth).
			Align(lipgloss.Center).
			Render(theme.Label.Render(strings.ToUpper(b.label))+"\n"+value))
	}
	if boxWidth*len(boxes) > width {
		return lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func levelColor(l report.Level) lipgloss.Style {
	switch l {
	case report.LevelCritical:
		return lipgloss.NewStyle().Foreground(theme.NotReady).Bold(true)
	case report.LevelStrong:
		return lipgloss.NewStyle().Foreground(theme.PilotReady).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(theme.NeedsPreparation).Bold(true)
}

func renderDimensions(dims []report.Dimension, width int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("DIMENSION", "SCORE", "STATUS", "ANALYST NOTE").
		Width(width).
		Wrap(true)

	for _, d := range dims {
		t.Row(d.Name, d.ScoreText()+" / 5", string(d.Status), d.Note)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		base := lipgloss.NewStyle().Padding(0, 1)
		if row == table.HeaderRow {
			return base.Foreground(theme.Muted).Bold(true)
		}
		if col == 2 && row >= 0 && row < len(dims) {
			return levelColor(dims[row].Status).Padding(0, 1)
		}
		return base.Foreground(theme.Text)
	})
	return t.Render()
}

func renderROI(items []report.ROIItem, width int) string {
	lines := make([]string, 0, 2*len(items))
	for _, item := range items {
		label := fmt.Sprintf("%s  %d%%", item.Label, item.Percent)
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(label),
			components.ProgressBar{
				Percent: item.Fill,
				Width:   min(width, 60),
				Fill:    theme.Secondary,
			}.View(),
			theme.Hint.Render(item.Description),
			"",
		)
	}
	return strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, lines...), "\n")
}

func renderCallToAction(cta report.CallToAction, width int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(cta.Title),
		theme.Subtitle.Render(cta.Message),
		"",
		theme.ButtonActive.Render(cta.Button),
	)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 2).
		Render(body)
}
