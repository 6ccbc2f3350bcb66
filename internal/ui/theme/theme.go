package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/koops/pathfinder/internal/assessment"
)

// Koops brand palette
var (
	Primary   = lipgloss.Color("#146084") // Koops Blue
	Accent    = lipgloss.Color("#E1513B") // Koops Red
	Secondary = lipgloss.Color("#7BCFDE") // Light Teal
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#DEDEDE") // Light Grey
	Muted     = lipgloss.Color("#9CA3AF")
	BgCard    = lipgloss.Color("#424242") // Dark Grey
	Border    = lipgloss.Color("#5F6B73")
)

// Band colours
var (
	NotReady         = lipgloss.Color("#DC2626")
	NeedsPreparation = lipgloss.Color("#EAB308")
	PilotReady       = lipgloss.Color("#16A34A")
)

// BandColor returns the colour used for a readiness band.
func BandColor(b assessment.Band) color.Color {
	switch b {
	case assessment.BandPilotReady:
		return PilotReady
	case assessment.BandNotReady:
		return NotReady
	default:
		return NeedsPreparation
	}
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(Muted).
		Bold(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	FocusedCard = Card.
			BorderForeground(Secondary)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Error = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(BgCard)

	ButtonActive = lipgloss.NewStyle().
			Background(Accent).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// Band renders s in the colour of a readiness band.
func Band(b assessment.Band, s string) string {
	return lipgloss.NewStyle().Foreground(BandColor(b)).Bold(true).Render(s)
}
