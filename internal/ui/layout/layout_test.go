package layout

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
)

func TestHintsFor(t *testing.T) {
	disabled := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "Hidden"), key.WithDisabled())
	noHelp := key.NewBinding(key.WithKeys("y"))
	back := key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Back"))

	hints := HintsFor(disabled, noHelp, back)
	if len(hints) != 1 {
		t.Fatalf("expected 1 hint, got %d", len(hints))
	}
	if hints[0] != (KeyHint{Key: "Esc", Description: "Back"}) {
		t.Errorf("unexpected hint %+v", hints[0])
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(79, 24) || !IsTooSmall(80, 23) {
		t.Error("expected sizes below 80x24 to be too small")
	}
	if IsTooSmall(80, 24) {
		t.Error("expected 80x24 to fit")
	}
}

func TestRenderFrame(t *testing.T) {
	header := RenderHeader("Your Results", "Plant 7", 80)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 80)

	for _, want := range []string{Brand, "Your Results", "Plant 7"} {
		if !strings.Contains(header, want) {
			t.Errorf("expected header to contain %q", want)
		}
	}

	frame := RenderFrame(header, "body", footer, 80, 24)
	if got := strings.Count(frame, "\n") + 1; got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
	if h := ContentHeight(header, footer, 24); h != 18 {
		t.Errorf("ContentHeight = %d, want 18", h)
	}
}
