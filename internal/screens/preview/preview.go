// Package preview shows the full readiness report.
package preview

import (
	"context"
	"log"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/koops/pathfinder/internal/assessment"
	"github.com/koops/pathfinder/internal/report"
	"github.com/koops/pathfinder/internal/router"
	"github.com/koops/pathfinder/internal/screen"
	"github.com/koops/pathfinder/internal/ui/components"
	"github.com/koops/pathfinder/internal/ui/layout"
	"github.com/koops/pathfinder/internal/ui/theme"
)

// reportReadyMsg carries the built report back to the screen.
type reportReadyMsg struct {
	report *report.Report
	err    error
}

// PreviewScreen builds the report in the background and shows it in a
// scrollable view.
type PreviewScreen struct {
	ctx     context.Context
	builder *report.Builder
	input   report.Input

	spinner spinner.Model
	vp      viewport.Model
	report  *report.Report
	err     error

	renderedWidth int
}

var _ screen.Screen = (*PreviewScreen)(nil)

// New creates the report preview. The report is built when the screen
// initialises; ctx bounds that work.
func New(ctx context.Context, builder *report.Builder, in report.Input) *PreviewScreen {
	return &PreviewScreen{
		ctx:     ctx,
		builder: builder,
		input:   in,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
		vp: viewport.New(),
	}
}

func (s *PreviewScreen) Title() string {
	return "Report Preview"
}

func (s *PreviewScreen) Init() tea.Cmd {
	ctx, b, in := s.ctx, s.builder, s.input
	build := func() tea.Msg {
		rep, err := b.Build(ctx, in)
		return reportReadyMsg{report: rep, err: err}
	}
	return tea.Batch(s.spinner.Tick, build)
}

// Ready reports whether the report has been built.
func (s *PreviewScreen) Ready() bool {
	return s.report != nil
}

func closePreview() tea.Cmd {
	return router.Navigate(assessment.ScreenResults)
}

func (s *PreviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportReadyMsg:
		if msg.err != nil {
			log.Printf("WARN: [Preview] build report: %v", msg.err)
			s.err = msg.err
			return s, nil
		}
		s.report = msg.report
		s.renderedWidth = 0
		return s, nil

	case spinner.TickMsg:
		if s.report != nil || s.err != nil {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		if key.Matches(msg, components.Keys.Select) {
			return s, closePreview()
		}
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

// KeyHints implements screen.KeyHintProvider.
func (s *PreviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter/Esc", Description: "Close Preview"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *PreviewScreen) View(width, height int) string {
	if s.err != nil {
		msg := theme.Error.Render("The report could not be prepared.") + "\n" +
			theme.Hint.Render("Press Enter to return to your results.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}
	if s.report == nil {
		msg := s.spinner.View() + theme.Body.Render("Preparing your report...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	cw := min(width-4, 96)
	if cw != s.renderedWidth {
		s.vp.SetContent(Render(s.report, cw))
		s.renderedWidth = cw
	}
	s.vp.SetWidth(cw)
	s.vp.SetHeight(max(height, 1))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.vp.View())
}
