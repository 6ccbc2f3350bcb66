// Package report assembles the readiness report and the results-screen
// score breakdown.
package report

import (
	"fmt"

	"github.com/koops/pathfinder/internal/assessment"
)

// Header is the report masthead.
type Header struct {
	Title     string
	Subtitle  string
	Date      string
	Reference string
	Facility  string
}

// Dimension is one row of the detailed assessment table.
type Dimension struct {
	Step   int
	Name   string
	Score  float64
	Status Level
	Note   string
}

// ScoreText formats Score with one decimal.
func (d Dimension) ScoreText() string { return fmt.Sprintf("%.1f", d.Score) }

// Level is the status label of a dimension.
type Level string

const (
	LevelCritical Level = "CRITICAL"
	LevelEmerging Level = "EMERGING"
	LevelStrong   Level = "STRONG"
)

// LevelFor maps a readiness band onto a dimension status.
func LevelFor(b assessment.Band) Level {
	switch b {
	case assessment.BandNotReady:
		return LevelCritical
	case assessment.BandPilotReady:
		return LevelStrong
	}
	return LevelEmerging
}

// ROIItem is one projected impact bar.
type ROIItem struct {
	Label       string
	Percent     int
	Fill        int // bar fill, 0..100
	Description string
}

// CallToAction closes the report.
type CallToAction struct {
	Title   string
	Message string
	Button  string
}

// Tone colours a breakdown card.
type Tone int

const (
	ToneWarn Tone = iota
	ToneGood
	ToneBad
)

// ToneFor maps a readiness band onto a card tone.
func ToneFor(b assessment.Band) Tone {
	switch b {
	case assessment.BandNotReady:
		return ToneBad
	case assessment.BandPilotReady:
		return ToneGood
	}
	return ToneWarn
}

// Card is one entry of the results-screen score breakdown.
type Card struct {
	Title  string
	Detail string
	Tone   Tone
}

// Report is everything the report preview and results screen display
// beyond the overall score.
type Report struct {
	Header            Header
	Summary           string
	OverallStatus     string
	RecommendedAction string
	PilotTiming       string
	Dimensions        []Dimension
	ROI               []ROIItem
	CallToAction      CallToAction
	Breakdown         []Card
}

// ShortStatus is the compact band label used in the report.
func ShortStatus(b assessment.Band) string {
	if b == assessment.BandNeedsPreparation {
		return "Needs Prep"
	}
	return b.DisplayName()
}

// ResultMessage is the sentence under the headline on the results screen.
func ResultMessage(percent int) string {
	if percent < assessment.PilotReadyMinPercent {
		return fmt.Sprintf("Based on your score of %d%%, key fundamentals need work before piloting AMRs.", percent)
	}
	return fmt.Sprintf("Based on your score of %d%%, you are well-positioned for a successful pilot.", percent)
}

const (
	reportTitle    = "AMR Readiness"
	reportSubtitle = "Facility Diagnostic Report"
	ctaTitle       = "Take the Next Step"
	ctaButton      = "Schedule 60-Min Review"
)

// defaultROI is the projected impact shown in every report.
func defaultROI() []ROIItem {
	return []ROIItem{
		{
			Label:       "Labor Savings",
			Percent:     25,
			Fill:        75,
			Description: "Reduction in manual material handling hours for targeted tugger routes.",
		},
		{
			Label:       "Throughput",
			Percent:     15,
			Fill:        45,
			Description: "Increase in line-side delivery consistency and uptime.",
		},
	}
}

// Static returns the fixed sample report. Its content does not depend on
// any answers.
func Static() *Report {
	return &Report{
		Header: Header{
			Title:     reportTitle,
			Subtitle:  reportSubtitle,
			Date:      "OCT 24, 2025",
			Reference: "KOOPS-AMR-25-X",
			Facility:  "MANUFACTURING A",
		},
		Summary: `This diagnostic suggests your facility is currently in the "Needs Prep" range. ` +
			"While you exhibit strong safety protocols and leadership buy-in, significant gaps in IT " +
			"infrastructure and material flow standardization present risks to a successful AMR deployment.",
		OverallStatus:     "Needs Prep",
		RecommendedAction: "6-Wk Sprint",
		PilotTiming:       "3-6 Months",
		Dimensions: []Dimension{
			{Step: 1, Name: "IT & Data", Score: 2.5, Status: LevelCritical, Note: "Wi-Fi coverage spotty in warehouse."},
			{Step: 2, Name: "Layout & Flow", Score: 3.0, Status: LevelEmerging, Note: "Aisles clear, but paths vary by shift."},
			{Step: 3, Name: "Safety & Change", Score: 4.0, Status: LevelStrong, Note: "Excellent safety culture observed."},
		},
		ROI: defaultROI(),
		CallToAction: CallToAction{
			Title:   ctaTitle,
			Message: `Move from "Needs Prep" to "Pilot Ready" with our engineering team.`,
			Button:  ctaButton,
		},
		Breakdown: []Card{
			{Title: "Safety & Culture", Detail: "Strong leadership buy-in detected.", Tone: ToneGood},
			{Title: "IT Infrastructure", Detail: "Wi-Fi gaps & siloed WMS data.", Tone: ToneBad},
			{Title: "Material Flow", Detail: "Standardization needed.", Tone: ToneWarn},
		},
	}
}
