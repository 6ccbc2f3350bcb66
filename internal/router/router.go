package router

import (
	"log"

	tea "charm.land/bubbletea/v2"

	"github.com/koops/pathfinder/internal/assessment"
	"github.com/koops/pathfinder/internal/screen"
)

// NavigateMsg requests a move to the target screen.
type NavigateMsg struct {
	Target assessment.Screen
}

// BackMsg requests the conventional previous screen.
type BackMsg struct{}

// StartOverMsg resets the session and returns to the landing screen.
type StartOverMsg struct{}

// EnteredMsg is sent after the router has switched to a screen.
type EnteredMsg struct {
	Screen assessment.Screen
}

// Navigate returns a command requesting a move to target.
func Navigate(target assessment.Screen) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Target: target} }
}

// Factory builds the view for an assessment screen.
type Factory func(assessment.Screen) screen.Screen

// Router keeps the active view in step with the session engine's current
// screen. Any screen may be reached from any other.
type Router struct {
	session *assessment.Session
	factory Factory
	current assessment.Screen
	active  screen.Screen
}

// New creates a router showing the engine's current screen.
func New(session *assessment.Session, factory Factory) (*Router, error) {
	e, err := session.Engine()
	if err != nil {
		return nil, err
	}
	current := e.Screen()
	return &Router{
		session: session,
		factory: factory,
		current: current,
		active:  factory(current),
	}, nil
}

// Init runs the initial screen's Init.
func (r *Router) Init() tea.Cmd {
	return tea.Batch(r.active.Init(), entered(r.current))
}

// Current returns the assessment screen being shown.
func (r *Router) Current() assessment.Screen {
	return r.current
}

// Active returns the active view.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Session returns the session the router drives.
func (r *Router) Session() *assessment.Session {
	return r.session
}

// Navigate moves the engine to target and replaces the active view.
func (r *Router) Navigate(target assessment.Screen) tea.Cmd {
	e, err := r.session.Engine()
	if err != nil {
		log.Printf("WARN: [Router] navigate to %s: %v", target, err)
		return nil
	}
	if err := e.Navigate(target); err != nil {
		log.Printf("WARN: [Router] navigate to %s: %v", target, err)
		return nil
	}
	return r.replace(target)
}

// Back moves to the conventional previous screen, if there is one.
func (r *Router) Back() tea.Cmd {
	prev, ok := assessment.Prev(r.current)
	if !ok {
		return nil
	}
	return r.Navigate(prev)
}

// StartOver resets the session and shows the landing screen.
func (r *Router) StartOver() tea.Cmd {
	if err := r.session.Reset(); err != nil {
		log.Printf("WARN: [Router] start over: %v", err)
		return nil
	}
	log.Printf("INFO: [Router] started attempt %s", r.session.AttemptID())
	return r.replace(assessment.ScreenLanding)
}

func (r *Router) replace(target assessment.Screen) tea.Cmd {
	r.current = target
	r.active = r.factory(target)
	return tea.Batch(r.active.Init(), entered(target))
}

func entered(s assessment.Screen) tea.Cmd {
	return func() tea.Msg { return EnteredMsg{Screen: s} }
}

// Update handles navigation messages and forwards the rest to the active
// view.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NavigateMsg:
		return r.Navigate(msg.Target)
	case BackMsg:
		return r.Back()
	case StartOverMsg:
		return r.StartOver()
	}

	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.active.View(width, height)
}
