package step

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/koops/pathfinder/internal/assessment"
	"github.com/koops/pathfinder/internal/catalog"
	"github.com/koops/pathfinder/internal/router"
)

func newTestStep(t *testing.T, n int) (*StepScreen, *assessment.Engine) {
	t.Helper()
	e := assessment.NewEngine(catalog.Default())
	return New(e, n), e
}

// press sends a key and returns the message of the resulting command.
func press(s *StepScreen, msg tea.KeyPressMsg) tea.Msg {
	_, cmd := s.Update(msg)
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestStepTitle(t *testing.T) {
	s, _ := newTestStep(t, 2)
	if s.Title() != "Layout & Material Flow" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestDigitSetsRating(t *testing.T) {
	s, e := newTestStep(t, 1)

	press(s, tea.KeyPressMsg{Code: '5', Text: "5"})

	if r, _ := e.Answer(1, 0); r != 5 {
		t.Errorf("Answer(1,0) = %d, want 5", r)
	}
}

func TestArrowsAdjustRating(t *testing.T) {
	s, e := newTestStep(t, 3)

	press(s, tea.KeyPressMsg{Code: tea.KeyDown})
	press(s, tea.KeyPressMsg{Code: tea.KeyLeft})
	press(s, tea.KeyPressMsg{Code: tea.KeyLeft})
	press(s, tea.KeyPressMsg{Code: tea.KeyLeft})

	if s.Focus() != 1 {
		t.Errorf("Focus = %d, want 1", s.Focus())
	}
	if r, _ := e.Answer(3, 1); r != 1 {
		t.Errorf("Answer(3,1) = %d, want 1 (clamped)", r)
	}
	if r, _ := e.Answer(3, 0); r != 3 {
		t.Errorf("Answer(3,0) = %d, want untouched 3", r)
	}
}

func TestRatingStoredBeforeNavigation(t *testing.T) {
	s, e := newTestStep(t, 4)

	// The rating must be in the engine as soon as Update returns, before the
	// navigation command produced by the following Enter runs.
	_, rateCmd := s.Update(tea.KeyPressMsg{Code: '5', Text: "5"})
	if r, _ := e.Answer(4, 0); r != 5 {
		t.Fatalf("Answer(4,0) = %d right after the key, want 5", r)
	}
	if rateCmd != nil {
		t.Errorf("rating key returned a command")
	}

	_, nextCmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if nextCmd == nil {
		t.Fatal("expected navigation")
	}
	if _, ok := nextCmd().(router.NavigateMsg); !ok {
		t.Fatal("expected NavigateMsg")
	}
	if got := e.Score().Sum; got != 38 {
		t.Errorf("Sum = %d, want 38", got)
	}
}

func TestRatingUnchangedEmitsNothing(t *testing.T) {
	s, _ := newTestStep(t, 1)

	if msg := press(s, tea.KeyPressMsg{Code: '3', Text: "3"}); msg != nil {
		t.Errorf("expected no message, got %T", msg)
	}
}

func TestFocusClamps(t *testing.T) {
	s, _ := newTestStep(t, 1)

	press(s, tea.KeyPressMsg{Code: tea.KeyUp})
	if s.Focus() != 0 {
		t.Errorf("Focus = %d, want 0", s.Focus())
	}
	for i := 0; i < 5; i++ {
		press(s, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.Focus() != 2 {
		t.Errorf("Focus = %d, want 2", s.Focus())
	}
}

func TestEnterNavigatesForward(t *testing.T) {
	tests := []struct {
		step int
		want assessment.Screen
	}{
		{1, assessment.ScreenStep2},
		{3, assessment.ScreenStep4},
		{4, assessment.ScreenResults},
	}
	for _, tt := range tests {
		s, _ := newTestStep(t, tt.step)
		msg, ok := press(s, tea.KeyPressMsg{Code: tea.KeyEnter}).(router.NavigateMsg)
		if !ok {
			t.Fatalf("step %d: expected NavigateMsg", tt.step)
		}
		if msg.Target != tt.want {
			t.Errorf("step %d: target = %s, want %s", tt.step, msg.Target, tt.want)
		}
	}
}

func TestSeededFromEngine(t *testing.T) {
	e := assessment.NewEngine(catalog.Default())
	if err := e.SubmitAnswer(2, 2, 4); err != nil {
		t.Fatal(err)
	}
	s := New(e, 2)

	if s.scales[2].Value != 4 {
		t.Errorf("scale value = %d, want 4", s.scales[2].Value)
	}
}

func TestStepView(t *testing.T) {
	s, _ := newTestStep(t, 4)

	full := s.View(100, 40)
	for _, want := range []string{"PHASE 4 OF 4", "100%", "Not in place", "View Results"} {
		if !strings.Contains(full, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}

	compact := s.View(80, 18)
	if !strings.Contains(compact, "[3]") {
		t.Error("expected collapsed questions in compact view")
	}
}

func TestKeyHints(t *testing.T) {
	s, _ := newTestStep(t, 4)
	hints := s.KeyHints()

	found := false
	for _, h := range hints {
		if h.Description == "View Results" {
			found = true
		}
	}
	if !found {
		t.Error("expected View Results hint on the last step")
	}
}
