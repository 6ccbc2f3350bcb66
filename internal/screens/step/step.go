// Package step renders one of the four question steps.
package step

import (
	"fmt"
	"log"
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

// fullHeight is the content height below which only the focused question
// is drawn as a full card.
const fullHeight = 30

// StepScreen shows the three questions of a step.
type StepScreen struct {
	engine *assessment.Engine
	step   catalog.Step
	scales []components.RatingScale
	focus  int
}

var _ screen.Screen = (*StepScreen)(nil)

// New creates the screen for a 1-based step, seeded with the engine's
// current answers.
func New(engine *assessment.Engine, number int) *StepScreen {
	cat := engine.Catalog()
	st, _ := cat.Step(number)

	scales := make([]components.RatingScale, len(st.Questions))
	for i, q := range st.Questions {
		rating, _ := engine.Answer(number, i)
		scales[i] = components.NewRatingScale(i, q.Prompt, cat.Scale.LowLabel, cat.Scale.HighLabel, rating)
	}
	s := &StepScreen{engine: engine, step: st, scales: scales}
	s.setFocus(0)
	return s
}

func (s *StepScreen) Title() string {
	return s.step.Title
}

func (s *StepScreen) Init() tea.Cmd {
	return nil
}

// Focus returns the index of the focused question.
func (s *StepScreen) Focus() int {
	return s.focus
}

func (s *StepScreen) setFocus(i int) {
	if len(s.scales) == 0 {
		return
	}
	s.focus = min(max(i, 0), len(s.scales)-1)
	for j := range s.scales {
		s.scales[j].Focused = j == s.focus
	}
}

func (s *StepScreen) screen() assessment.Screen {
	sc, _ := assessment.StepScreen(s.step.Number)
	return sc
}

func (s *StepScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, components.Keys.Up):
			s.setFocus(s.focus - 1)
			return s, nil
		case key.Matches(msg, components.Keys.Down):
			s.setFocus(s.focus + 1)
			return s, nil
		case key.Matches(msg, components.Keys.Next, components.Keys.Select):
			next, ok := assessment.Next(s.screen())
			if !ok {
				return s, nil
			}
			return s, router.Navigate(next)
		}

		if len(s.scales) == 0 {
			return s, nil
		}
		sc, changed := s.scales[s.focus].Update(msg)
		if changed {
			if err := s.engine.SubmitAnswer(s.step.Number, sc.Index, sc.Value); err != nil {
				log.Printf("WARN: [Step] submit answer: %v", err)
				return s, nil
			}
			s.scales[s.focus] = sc
		}
		return s, nil
	}
	return s, nil
}

func (s *StepScreen) nextLabel() string {
	if s.step.Number == catalog.StepCount {
		return "View Results"
	}
	return "Next"
}

// KeyHints implements screen.KeyHintProvider.
func (s *StepScreen) KeyHints() []layout.KeyHint {
	hints := layout.HintsFor(components.Keys.Up, components.Keys.Left, components.Keys.Rate)
	hints = append(hints,
		layout.KeyHint{Key: "Enter", Description: s.nextLabel()},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
	return hints
}

func (s *StepScreen) View(width, height int) string {
	cw := min(width-4, 76)

	phase := theme.Label.Render(fmt.Sprintf("PHASE %d OF %d", s.step.Number, catalog.StepCount))
	title := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(s.step.Title)
	subtitle := theme.Hint.Render(s.step.Subtitle)

	progress := components.ProgressBar{
		Label:       "PROGRESS",
		Percent:     assessment.ProgressPercent(s.screen()),
		ShowPercent: true,
		Width:       cw,
		Fill:        theme.Accent,
	}.View()

	sections := []string{progress, "", phase, title, subtitle, ""}

	compact := height < fullHeight
	for i, sc := range s.scales {
		if compact && i != s.focus {
			sections = append(sections, collapsed(sc, cw))
			continue
		}
		sections = append(sections, sc.View(cw))
	}

	sections = append(sections, "", theme.Hint.Render(
		fmt.Sprintf("Enter: %s   Esc: Back", s.nextLabel())))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

// collapsed renders an unfocused question on one line with its rating.
func collapsed(sc components.RatingScale, width int) string {
	rating := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(fmt.Sprintf("[%d]", sc.Value))
	avail := max(width-lipgloss.Width(rating)-4, 10)
	q := sc.Question
	if r := []rune(q); len(r) > avail {
		q = strings.TrimSpace(string(r[:avail-1])) + "…"
	}
	return "  " + theme.Body.Render(q) + "  " + rating
}
