// Package results shows the overall score, band and breakdown once the
// last step is complete.
package results

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/koops/pathfinder/internal/assessment"
	"github.com/koops/pathfinder/internal/catalog"
	"github.com/koops/pathfinder/internal/report"
	"github.com/koops/pathfinder/internal/router"
	"github.com/koops/pathfinder/internal/screen"
	"github.com/koops/pathfinder/internal/ui/components"
	"github.com/koops/pathfinder/internal/ui/layout"
	"github.com/koops/pathfinder/internal/ui/theme"
)

// ResultsScreen presents the diagnosis.
type ResultsScreen struct {
	score     assessment.ScoreResult
	band      assessment.Band
	breakdown []report.Card
	menu      components.Menu
}

var _ screen.Screen = (*ResultsScreen)(nil)

// New creates the results screen from the engine's current score and the
// breakdown cards of rep.
func New(engine *assessment.Engine, rep *report.Report) *ResultsScreen {
	score := engine.Score()
	s := &ResultsScreen{
		score: score,
		band:  assessment.StatusFor(score.Percent),
	}
	if rep != nil {
		s.breakdown = rep.Breakdown
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Preview Full Report", Shortcut: components.Keys.Report, Action: previewReport},
		{Label: "Start Over", Shortcut: components.Keys.StartOver, Action: startOver},
	})
	return s
}

func previewReport() tea.Cmd {
	return router.Navigate(assessment.ScreenReport)
}

func startOver() tea.Cmd {
	return func() tea.Msg { return router.StartOverMsg{} }
}

func (s *ResultsScreen) Title() string {
	return "Your Results"
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// KeyHints implements screen.KeyHintProvider.
func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(
		components.Keys.Report,
		components.Keys.StartOver,
		components.Keys.Select,
		components.Keys.Quit,
	)
}

func (s *ResultsScreen) View(width, height int) string {
	cw := min(width-4, 84)

	gauge := components.Gauge{
		Percent: s.score.Percent,
		Band:    s.band,
		Width:   min(cw, 50),
	}.View()

	badge := lipgloss.NewStyle().
		Background(theme.BandColor(s.band)).
		Foreground(theme.Text).
		Bold(true).
		Padding(0, 1).
		Render(s.band.DisplayName())

	sum := theme.Hint.Render(fmt.Sprintf("Score %d / %d", s.score.Sum, catalog.QuestionCount*assessment.MaxRating))
	headline := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.band.Headline())
	message := theme.Subtitle.Width(cw).Render(report.ResultMessage(s.score.Percent))

	sections := []string{
		theme.Label.Render("DIAGNOSIS COMPLETE"),
		"",
		gauge,
		sum,
		"",
		badge,
		headline,
		message,
	}
	if len(s.breakdown) > 0 {
		sections = append(sections, "", theme.Label.Render("SCORE BREAKDOWN"), breakdownView(s.breakdown, cw))
	}
	sections = append(sections, "", s.menu.View())

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func toneBand(t report.Tone) assessment.Band {
	switch t {
	case report.ToneGood:
		return assessment.BandPilotReady
	case report.ToneBad:
		return assessment.BandNotReady
	}
	return assessment.BandNeedsPreparation
}

func breakdownView(cards []report.Card, width int) string {
	rendered := make([]string, 0, len(cards))
	cardWidth := max(width/len(cards)-1, 18)
	wide := cardWidth*len(cards) <= width

	for _, c := range cards {
		w := width
		if wide {
			w = cardWidth
		}
		body := theme.Band(toneBand(c.Tone), c.Title) + "\n" + theme.Hint.Render(c.Detail)
		rendered = append(rendered, theme.Card.
			BorderForeground(theme.BandColor(toneBand(c.Tone))).
			Width(w).
			Render(body))
	}
	if wide {
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
