// Package landing is the first screen: the pitch, an optional facility
// name and the button that starts the diagnostic.
package landing

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/koops/pathfinder/internal/assessment"
	"github.com/koops/pathfinder/internal/catalog"
	"github.com/koops/pathfinder/internal/router"
	"github.com/koops/pathfinder/internal/screen"
	"github.com/koops/pathfinder/internal/ui/components"
	"github.com/koops/pathfinder/internal/ui/layout"
	"github.com/koops/pathfinder/internal/ui/theme"
)

const (
	facilityMaxLen = 40
	statsMinHeight = 22
)

// LandingScreen introduces the diagnostic.
type LandingScreen struct {
	session  *assessment.Session
	cat      *catalog.Catalog
	facility components.TextInput
	start    components.Button
}

var _ screen.Screen = (*LandingScreen)(nil)

// New creates the landing screen for a session. The facility input starts
// with the session's current facility name.
func New(session *assessment.Session, cat *catalog.Catalog) *LandingScreen {
	s := &LandingScreen{
		session:  session,
		cat:      cat,
		facility: components.NewTextInput("Facility name (optional)", session.Facility(), facilityMaxLen),
	}
	s.start = components.NewButton("Start Diagnostic", s.begin)
	return s
}

func (s *LandingScreen) Title() string {
	return "Assessment Tool"
}

func (s *LandingScreen) Init() tea.Cmd {
	return s.facility.Focus()
}

func (s *LandingScreen) begin() tea.Cmd {
	s.session.SetFacility(s.facility.Value())
	return router.Navigate(assessment.ScreenStep1)
}

func (s *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, components.Keys.Select) {
		var cmd tea.Cmd
		s.start, cmd = s.start.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.facility, cmd = s.facility.Update(msg)
	return s, cmd
}

// KeyHints implements screen.KeyHintProvider.
func (s *LandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start Diagnostic"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LandingScreen) View(width, height int) string {
	badge := lipgloss.NewStyle().
		Background(theme.Secondary).
		Foreground(theme.Primary).
		Bold(true).
		Padding(0, 1).
		Render("ASSESSMENT TOOL")

	headline := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Is Your Facility ") +
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Ready for AMRs?")

	pitch := theme.Subtitle.Width(min(width-4, 64)).Render(fmt.Sprintf(
		"Take our 8-minute diagnostic to understand your readiness across %s.",
		dimensionList(s.cat),
	))

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat("8m", "Avg. Time"),
		stat(fmt.Sprintf("%d", len(s.cat.Steps())), "Key Dimensions"),
		stat("ROI", "Estimates Included"),
	)

	facility := theme.Card.Width(min(width-4, 52)).Render(
		theme.Label.Render("FACILITY") + "\n" + s.facility.View(),
	)

	sections := []string{
		badge,
		"",
		headline,
		"",
		pitch,
		"",
		facility,
		"",
		s.start.View(),
		theme.Hint.Render("NO LOGIN REQUIRED  ·  INSTANT RESULTS"),
	}
	if height >= statsMinHeight {
		sections = append(sections, "", stats)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func stat(value, label string) string {
	v := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(value)
	l := theme.Hint.Render(label)
	return lipgloss.NewStyle().
		Width(20).
		Align(lipgloss.Center).
		Render(v + "\n" + l)
}

// dimensionList joins the step short names, e.g. "IT & Data, Layout & Flow
// and KPIs & ROI".
func dimensionList(cat *catalog.Catalog) string {
	steps := cat.Steps()
	names := make([]string, 0, len(steps))
	for _, st := range steps {
		names = append(names, st.ShortName)
	}
	switch len(names) {
	case 0:
		return "four key dimensions"
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
