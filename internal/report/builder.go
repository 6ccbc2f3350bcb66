package report

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/koops/pathfinder/internal/assessment"
	"github.com/koops/pathfinder/internal/catalog"
)

// Mode selects how a report is produced.
type Mode string

const (
	// ModeStatic always shows the fixed sample report.
	ModeStatic Mode = "static"
	// ModeLive derives the report from the answers.
	ModeLive Mode = "live"
)

// ParseMode parses a --report flag value.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case ModeStatic:
		return ModeStatic, nil
	case ModeLive:
		return ModeLive, nil
	}
	return "", fmt.Errorf("unknown report mode %q (want static or live)", s)
}

// Input is the state a live report is built from.
type Input struct {
	Catalog   *catalog.Catalog
	Answers   assessment.Answers
	Facility  string
	AttemptID string
	Date      time.Time
}

// Builder produces reports. The zero value builds static reports.
//
// A live build is kept and returned again for the same attempt, facility,
// date and answers, so reopening the report does not ask for new notes.
// Builds whose notes fell back to canned text are not kept.
type Builder struct {
	Mode  Mode
	Notes NoteWriter

	mu        sync.Mutex
	cachedKey string
	cached    *Report
}

// NewBuilder returns a builder for mode. A nil notes uses StaticNotes.
func NewBuilder(mode Mode, notes NoteWriter) *Builder {
	if notes == nil {
		notes = StaticNotes{}
	}
	return &Builder{Mode: mode, Notes: notes}
}

// Build returns the report for in. Note failures fall back to static notes
// and are not returned as errors; only a missing catalog is.
func (b *Builder) Build(ctx context.Context, in Input) (*Report, error) {
	if b.Mode != ModeLive {
		return Static(), nil
	}
	if in.Catalog == nil {
		return nil, fmt.Errorf("build report: no catalog")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	key := cacheKey(in)
	if b.cached != nil && b.cachedKey == key {
		return b.cached, nil
	}

	overall := assessment.ScoreAnswers(in.Answers)
	band := assessment.StatusFor(overall.Percent)

	r := &Report{
		Header: Header{
			Title:     reportTitle,
			Subtitle:  reportSubtitle,
			Date:      formatDate(in.Date),
			Reference: reference(in.Date, in.AttemptID),
			Facility:  facilityLabel(in.Facility),
		},
		OverallStatus:     ShortStatus(band),
		RecommendedAction: recommendedAction[band],
		PilotTiming:       pilotTiming[band],
		ROI:               defaultROI(),
		CallToAction:      callToAction(band),
	}

	reqs := make([]NoteRequest, 0, catalog.StepCount)
	for _, step := range in.Catalog.Steps() {
		stepScore := assessment.ScoreStep(in.Answers, step.Number)
		stepBand := assessment.StatusFor(stepScore.Percent)

		dim := Dimension{
			Step:   step.Number,
			Name:   step.ShortName,
			Score:  meanRating(stepScore.Sum),
			Status: LevelFor(stepBand),
		}
		r.Dimensions = append(r.Dimensions, dim)
		r.Breakdown = append(r.Breakdown, Card{
			Title:  step.ShortName,
			Detail: cardDetails[step.Number][ToneFor(stepBand)],
			Tone:   ToneFor(stepBand),
		})
		reqs = append(reqs, NoteRequest{
			Step:      step,
			Ratings:   in.Answers[step.Number-1],
			Dimension: dim,
		})
	}

	r.Summary = summary(r.OverallStatus, r.Dimensions)
	if b.applyNotes(ctx, r, reqs) {
		b.cachedKey, b.cached = key, r
	}
	return r, nil
}

// cacheKey identifies the inputs a live report depends on.
func cacheKey(in Input) string {
	return fmt.Sprintf("%s|%s|%s|%v|%s", in.AttemptID, in.Facility, formatDate(in.Date), in.Answers.Flat(), in.Catalog.Version)
}

// applyNotes fills the dimension notes and reports whether they came from
// the configured writer without falling back.
func (b *Builder) applyNotes(ctx context.Context, r *Report, reqs []NoteRequest) bool {
	fallback, _ := StaticNotes{}.WriteNotes(ctx, reqs)
	notes := fallback
	complete := true

	if _, isStatic := b.Notes.(StaticNotes); !isStatic && b.Notes != nil {
		got, err := b.Notes.WriteNotes(ctx, reqs)
		switch {
		case err != nil:
			log.Printf("WARN: [Report] analyst notes unavailable, using canned notes: %v", err)
			complete = false
		case len(got) != len(reqs):
			log.Printf("WARN: [Report] got %d analyst notes for %d dimensions, using canned notes", len(got), len(reqs))
			complete = false
		default:
			notes = got
		}
	}

	for i := range r.Dimensions {
		n := strings.TrimSpace(notes[i])
		if n == "" {
			n = fallback[i]
		}
		r.Dimensions[i].Note = n
	}
	return complete
}

// meanRating is the average rating of a step rounded to one decimal.
func meanRating(stepSum int) float64 {
	mean := float64(stepSum) / catalog.QuestionsPerStep
	return math.Round(mean*10) / 10
}

var recommendedAction = map[assessment.Band]string{
	assessment.BandNotReady:         "12-Wk Program",
	assessment.BandNeedsPreparation: "6-Wk Sprint",
	assessment.BandPilotReady:       "Pilot Scoping",
}

var pilotTiming = map[assessment.Band]string{
	assessment.BandNotReady:         "6-12 Months",
	assessment.BandNeedsPreparation: "3-6 Months",
	assessment.BandPilotReady:       "0-3 Months",
}

func callToAction(b assessment.Band) CallToAction {
	msg := fmt.Sprintf(`Move from "%s" to "Pilot Ready" with our engineering team.`, ShortStatus(b))
	if b == assessment.BandPilotReady {
		msg = "Turn your readiness into a scoped pilot with our engineering team."
	}
	return CallToAction{Title: ctaTitle, Message: msg, Button: ctaButton}
}

func summary(status string, dims []Dimension) string {
	var strong, weak []string
	for _, d := range dims {
		switch d.Status {
		case LevelStrong:
			strong = append(strong, d.Name)
		case LevelCritical:
			weak = append(weak, d.Name)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "This diagnostic suggests your facility is currently in the %q range.", status)
	switch {
	case len(strong) > 0 && len(weak) > 0:
		fmt.Fprintf(&b, " While you show strength in %s, significant gaps in %s present risks to a successful AMR deployment.",
			joinNames(strong), joinNames(weak))
	case len(weak) > 0:
		fmt.Fprintf(&b, " Significant gaps in %s present risks to a successful AMR deployment.", joinNames(weak))
	case len(strong) > 0:
		fmt.Fprintf(&b, " You show strength in %s with no critical gaps identified.", joinNames(strong))
	default:
		b.WriteString(" No dimension is critical, but none is yet strong enough to carry a pilot on its own.")
	}
	return b.String()
}

// joinNames renders "a", "a and b" or "a, b and c".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return strings.ToUpper(t.Format("Jan 02, 2006"))
}

// reference is KOOPS-AMR-<yy>-<first four of the attempt ID>.
func reference(t time.Time, attemptID string) string {
	if t.IsZero() {
		t = time.Now()
	}
	suffix := "X"
	if id := strings.ReplaceAll(attemptID, "-", ""); len(id) >= 4 {
		suffix = strings.ToUpper(id[:4])
	}
	return fmt.Sprintf("KOOPS-AMR-%s-%s", t.Format("06"), suffix)
}

func facilityLabel(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "UNSPECIFIED"
	}
	return strings.ToUpper(name)
}
