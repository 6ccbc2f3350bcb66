package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/koops/pathfinder/internal/assessment"
	"github.com/koops/pathfinder/internal/catalog"
	"github.com/koops/pathfinder/internal/report"
	"github.com/koops/pathfinder/internal/router"
	"github.com/koops/pathfinder/internal/screen"
	"github.com/koops/pathfinder/internal/screens/landing"
	"github.com/koops/pathfinder/internal/screens/placeholder"
	"github.com/koops/pathfinder/internal/screens/preview"
	"github.com/koops/pathfinder/internal/screens/results"
	"github.com/koops/pathfinder/internal/screens/step"
	"github.com/koops/pathfinder/internal/store"
	"github.com/koops/pathfinder/internal/ui/components"
	"github.com/koops/pathfinder/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	// Session is required.
	Session *assessment.Session

	// Reports builds the report preview. Nil shows the static report.
	Reports *report.Builder

	// Results records each completed attempt. Nil disables recording.
	Results store.EventRepo

	// Now returns the report date. Defaults to time.Now.
	Now func() time.Time
}

// resultRecordedMsg reports the outcome of appending a result.
type resultRecordedMsg struct {
	attemptID string
	err       error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx     context.Context
	opts    Options
	router  *router.Router
	width   int
	height  int
	summary *report.Builder

	// lastRecorded identifies the attempt and answers last written to the
	// results log.
	lastRecorded string
}

// newAppModel creates an AppModel showing the session's current screen.
func newAppModel(ctx context.Context, opts Options) (*AppModel, error) {
	if opts.Session == nil {
		return nil, fmt.Errorf("app: no session")
	}
	if opts.Reports == nil {
		opts.Reports = report.NewBuilder(report.ModeStatic, nil)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	m := &AppModel{
		ctx:  ctx,
		opts: opts,
		// The results screen only needs the breakdown cards, which never
		// depend on analyst notes.
		summary: report.NewBuilder(opts.Reports.Mode, nil),
	}
	r, err := router.New(opts.Session, m.screenFor)
	if err != nil {
		return nil, err
	}
	m.router = r
	return m, nil
}

// screenFor builds the view for an assessment screen.
func (m *AppModel) screenFor(s assessment.Screen) screen.Screen {
	e, err := m.opts.Session.Engine()
	if err != nil {
		log.Printf("WARN: [App] build %s: %v", s, err)
		return placeholder.New("Session Closed", "This session has ended.")
	}

	switch s {
	case assessment.ScreenLanding:
		return landing.New(m.opts.Session, e.Catalog())
	case assessment.ScreenStep1, assessment.ScreenStep2, assessment.ScreenStep3, assessment.ScreenStep4:
		n, _ := s.Step()
		return step.New(e, n)
	case assessment.ScreenResults:
		rep, err := m.summary.Build(m.ctx, m.reportInput(e))
		if err != nil {
			log.Printf("WARN: [App] build breakdown: %v", err)
		}
		return results.New(e, rep)
	case assessment.ScreenReport:
		return preview.New(m.ctx, m.opts.Reports, m.reportInput(e))
	}
	return placeholder.New(s.String(), "Unknown screen.")
}

func (m *AppModel) reportInput(e *assessment.Engine) report.Input {
	return report.Input{
		Catalog:   e.Catalog(),
		Answers:   e.Answers(),
		Facility:  m.opts.Session.Facility(),
		AttemptID: m.opts.Session.AttemptID(),
		Date:      m.opts.Now(),
	}
}

// recordResult appends the current attempt to the results log unless the
// same attempt with the same answers was already written.
func (m *AppModel) recordResult() tea.Cmd {
	if m.opts.Results == nil {
		return nil
	}
	e, err := m.opts.Session.Engine()
	if err != nil {
		return nil
	}

	answers := e.Answers()
	attemptID := m.opts.Session.AttemptID()
	fingerprint := fmt.Sprintf("%s:%v", attemptID, answers.Flat())
	if fingerprint == m.lastRecorded {
		return nil
	}
	m.lastRecorded = fingerprint

	data := resultData(e.Catalog().Version, attemptID, m.opts.Session.Facility(), answers,
		time.Since(m.opts.Session.StartedAt()))
	repo, ctx := m.opts.Results, m.ctx
	return func() tea.Msg {
		return resultRecordedMsg{attemptID: attemptID, err: repo.AppendResult(ctx, data)}
	}
}

func resultData(version, attemptID, facility string, a assessment.Answers, elapsed time.Duration) store.ResultEventData {
	score := assessment.ScoreAnswers(a)
	stepSums := make([]int, len(a))
	for i := range a {
		stepSums[i] = a.StepSum(i + 1)
	}
	return store.ResultEventData{
		AttemptID:      attemptID,
		CatalogVersion: version,
		Facility:       facility,
		Sum:            score.Sum,
		Percent:        score.Percent,
		Band:           string(assessment.StatusFor(score.Percent)),
		StepSums:       stepSums,
		Answers:        a.Flat(),
		DurationSecs:   int(elapsed.Seconds()),
	}
}

func (m *AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, components.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, components.Keys.Back):
			return m, func() tea.Msg { return router.BackMsg{} }
		}

	case router.EnteredMsg:
		log.Printf("INFO: [App] screen %s", msg.Screen)
		if msg.Screen == assessment.ScreenResults {
			return m, m.recordResult()
		}
		return m, nil

	case resultRecordedMsg:
		if msg.err != nil {
			log.Printf("WARN: [App] record result for %s: %v", msg.attemptID, msg.err)
		} else {
			log.Printf("INFO: [App] recorded result for %s", msg.attemptID)
		}
		return m, nil
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// badge is the header text on the right: the phase on a step, otherwise
// the facility name.
func (m *AppModel) badge() string {
	if n, ok := m.router.Current().Step(); ok {
		return fmt.Sprintf("Phase %d of %d", n, catalog.StepCount)
	}
	return m.opts.Session.Facility()
}

func (m *AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	return layout.HintsFor(components.Keys.Back, components.Keys.Quit)
}

func (m *AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the frame for the current terminal size.
func (m *AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	header := layout.RenderHeader(m.router.Active().Title(), m.badge(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and disposes of the session when it
// exits. Logging goes to the file named by PATHFINDER_DEBUG, or nowhere.
func Run(ctx context.Context, opts Options) error {
	if path := os.Getenv("PATHFINDER_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "pathfinder")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m, err := newAppModel(ctx, opts)
	if err != nil {
		return err
	}
	defer opts.Session.Dispose()

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
