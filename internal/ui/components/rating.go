package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/koops/pathfinder/internal/ui/theme"
)

const (
	minRating = 1
	maxRating = 5
)

// RatingScale is a 1-5 Likert selector with labelled extremes.
type RatingScale struct {
	Index    int
	Question string
	Low      string
	High     string
	Value    int
	Focused  bool
}

// NewRatingScale creates a rating scale for question index with an
// initial value.
func NewRatingScale(index int, question, low, high string, value int) RatingScale {
	return RatingScale{
		Index:    index,
		Question: question,
		Low:      low,
		High:     high,
		Value:    value,
	}
}

// Update handles rating keys while focused and reports whether the value
// changed. The owner stores the new value before handling the next message.
func (r RatingScale) Update(msg tea.Msg) (RatingScale, bool) {
	if !r.Focused {
		return r, false
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, false
	}

	v := r.Value
	switch {
	case key.Matches(kmsg, Keys.Left):
		v = max(v-1, minRating)
	case key.Matches(kmsg, Keys.Right):
		v = min(v+1, maxRating)
	case key.Matches(kmsg, Keys.Rate):
		v = int(kmsg.String()[0] - '0')
	default:
		return r, false
	}
	if v == r.Value {
		return r, false
	}
	r.Value = v
	return r, true
}

// View renders the question, the scale and its labels at the given width.
func (r RatingScale) View(width int) string {
	question := theme.Body.Bold(true).Width(max(width-4, 10)).Render(r.Question)

	cells := make([]string, 0, maxRating)
	for v := minRating; v <= maxRating; v++ {
		label := fmt.Sprintf(" %d ", v)
		switch {
		case v == r.Value && r.Focused:
			cells = append(cells, theme.ButtonActive.Padding(0, 1).Render(label))
		case v == r.Value:
			cells = append(cells, lipgloss.NewStyle().Background(theme.Primary).Foreground(theme.Text).Bold(true).Padding(0, 1).Render(label))
		default:
			cells = append(cells, lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1).Render(label))
		}
	}
	scale := strings.Join(cells, " ")

	scaleWidth := lipgloss.Width(scale)
	gap := max(scaleWidth-lipgloss.Width(r.Low)-lipgloss.Width(r.High), 1)
	labels := theme.Hint.Render(r.Low) + strings.Repeat(" ", gap) + theme.Hint.Render(r.High)

	body := lipgloss.JoinVertical(lipgloss.Left, question, "", scale, labels)
	card := theme.Card
	if r.Focused {
		card = theme.FocusedCard
	}
	return card.Width(width).Render(body)
}
