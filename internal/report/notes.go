package report

import (
	"context"

	"github.com/koops/pathfinder/internal/catalog"
)

// NoteRequest is the context a NoteWriter gets for one dimension.
type NoteRequest struct {
	Step      catalog.Step
	Ratings   [catalog.QuestionsPerStep]int
	Dimension Dimension
}

// NoteWriter produces one analyst note per request, in order.
type NoteWriter interface {
	WriteNotes(ctx context.Context, reqs []NoteRequest) ([]string, error)
}

// StaticNotes writes canned notes keyed by step and status.
type StaticNotes struct{}

// staticNotes[step][level]
var staticNotes = map[int]map[Level]string{
	1: {
		LevelCritical: "Wi-Fi coverage and WMS integration need work before robots can rely on them.",
		LevelEmerging: "Network is usable; close coverage gaps and expose WMS data to fleet software.",
		LevelStrong:   "Connectivity and data access are ready for fleet integration.",
	},
	2: {
		LevelCritical: "Cluttered aisles and ad hoc routes would block autonomous travel.",
		LevelEmerging: "Aisles clear, but paths vary by shift.",
		LevelStrong:   "Stable, clear routes make a good first AMR loop.",
	},
	3: {
		LevelCritical: "Safety review and operator buy-in must come before any pilot.",
		LevelEmerging: "Safety culture is in place; plan change management for floor staff.",
		LevelStrong:   "Excellent safety culture observed.",
	},
	4: {
		LevelCritical: "No baseline KPIs yet, so ROI cannot be measured.",
		LevelEmerging: "Some KPIs tracked; set a baseline before the pilot starts.",
		LevelStrong:   "Clear KPIs and budget support a measurable pilot.",
	},
}

func (StaticNotes) WriteNotes(_ context.Context, reqs []NoteRequest) ([]string, error) {
	notes := make([]string, len(reqs))
	for i, r := range reqs {
		notes[i] = staticNote(r.Step.Number, r.Dimension.Status)
	}
	return notes, nil
}

func staticNote(step int, level Level) string {
	if byLevel, ok := staticNotes[step]; ok {
		if n, ok := byLevel[level]; ok {
			return n
		}
	}
	return ""
}

// cardDetails[step][tone] is the breakdown card text.
var cardDetails = map[int]map[Tone]string{
	1: {ToneBad: "Wi-Fi gaps & siloed WMS data.", ToneWarn: "Connectivity needs hardening.", ToneGood: "Network and data ready."},
	2: {ToneBad: "Routes blocked or undefined.", ToneWarn: "Standardization needed.", ToneGood: "Clear, stable material flow."},
	3: {ToneBad: "Safety and buy-in gaps.", ToneWarn: "Change plan needed.", ToneGood: "Strong leadership buy-in detected."},
	4: {ToneBad: "No measurable baseline.", ToneWarn: "Baseline KPIs incomplete.", ToneGood: "Business case in place."},
}
