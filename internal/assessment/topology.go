package assessment

// Edge is a conventional transition between two screens.
type Edge struct {
	From, To Screen
	Label    string
}

// edges lists the transitions a user interface offers. The engine does not
// enforce them: Navigate accepts any screen from any screen.
var edges = []Edge{
	{ScreenLanding, ScreenStep1, "Start Diagnostic"},
	{ScreenStep1, ScreenStep2, "Next"},
	{ScreenStep2, ScreenStep3, "Next"},
	{ScreenStep3, ScreenStep4, "Next"},
	{ScreenStep4, ScreenResults, "View Results"},
	{ScreenResults, ScreenReport, "Preview Full Report"},
	{ScreenReport, ScreenResults, "Close Preview"},
	{ScreenResults, ScreenLanding, "Start Over"},
	{ScreenStep4, ScreenStep3, "Back"},
	{ScreenStep3, ScreenStep2, "Back"},
	{ScreenStep2, ScreenStep1, "Back"},
	{ScreenStep1, ScreenLanding, "Back"},
}

// Edges returns the conventional navigation graph.
func Edges() []Edge {
	return append([]Edge(nil), edges...)
}

// Next returns the forward destination of s.
func Next(s Screen) (Screen, bool) {
	switch s {
	case ScreenLanding, ScreenStep1, ScreenStep2, ScreenStep3, ScreenStep4, ScreenResults:
		return s + 1, true
	}
	return s, false
}

// Prev returns the backward destination of s: the previous step, landing
// from the first step, and results from the report.
func Prev(s Screen) (Screen, bool) {
	switch s {
	case ScreenStep1, ScreenStep2, ScreenStep3, ScreenStep4:
		return s - 1, true
	case ScreenReport:
		return ScreenResults, true
	}
	return s, false
}

// ProgressPercent is the progress indicator shown on a step screen.
func ProgressPercent(s Screen) int {
	step, ok := s.Step()
	if !ok {
		return 0
	}
	return step * 100 / 4
}
