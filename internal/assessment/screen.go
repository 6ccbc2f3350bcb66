package assessment

import "fmt"

// Screen is the current navigation position. The set of screens is closed.
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenStep1
	ScreenStep2
	ScreenStep3
	ScreenStep4
	ScreenResults
	ScreenReport

	screenCount = iota
)

var screenNames = [screenCount]string{
	ScreenLanding: "landing",
	ScreenStep1:   "step1",
	ScreenStep2:   "step2",
	ScreenStep3:   "step3",
	ScreenStep4:   "step4",
	ScreenResults: "results",
	ScreenReport:  "report",
}

// Screens returns every screen in topology order.
func Screens() []Screen {
	out := make([]Screen, screenCount)
	for i := range out {
		out[i] = Screen(i)
	}
	return out
}

// Valid reports whether s is one of the defined screens.
func (s Screen) Valid() bool {
	return s >= 0 && int(s) < screenCount
}

func (s Screen) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Screen(%d)", int(s))
	}
	return screenNames[s]
}

// Step returns the 1-based step number for a step screen.
func (s Screen) Step() (int, bool) {
	if s >= ScreenStep1 && s <= ScreenStep4 {
		return int(s-ScreenStep1) + 1, true
	}
	return 0, false
}

// StepScreen returns the screen for a 1-based step number.
func StepScreen(step int) (Screen, bool) {
	if step < 1 || step > 4 {
		return 0, false
	}
	return ScreenStep1 + Screen(step-1), true
}

// ParseScreen parses a screen name such as "step2".
func ParseScreen(name string) (Screen, error) {
	for i, n := range screenNames {
		if n == name {
			return Screen(i), nil
		}
	}
	return 0, &InputError{Field: "screen", Value: name}
}
