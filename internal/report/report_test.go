package report

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koops/pathfinder/internal/assessment"
	"github.com/koops/pathfinder/internal/catalog"
	"github.com/koops/pathfinder/internal/llm"
)

var testDate = time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)

func uniform(rating int) assessment.Answers {
	var a assessment.Answers
	for s := range a {
		for q := range a[s] {
			a[s][q] = rating
		}
	}
	return a
}

func liveInput(a assessment.Answers) Input {
	return Input{
		Catalog:   catalog.Default(),
		Answers:   a,
		Facility:  "Plant 7",
		AttemptID: "3f2a9c1e-0000-4000-8000-000000000000",
		Date:      testDate,
	}
}

func TestStaticReport(t *testing.T) {
	r := Static()

	assert.Equal(t, "AMR Readiness", r.Header.Title)
	assert.Equal(t, "Facility Diagnostic Report", r.Header.Subtitle)
	assert.Equal(t, "OCT 24, 2025", r.Header.Date)
	assert.Equal(t, "KOOPS-AMR-25-X", r.Header.Reference)
	assert.Equal(t, "MANUFACTURING A", r.Header.Facility)
	assert.Equal(t, "Needs Prep", r.OverallStatus)
	assert.Equal(t, "6-Wk Sprint", r.RecommendedAction)
	assert.Equal(t, "3-6 Months", r.PilotTiming)

	require.Len(t, r.Dimensions, 3)
	assert.Equal(t, "2.5", r.Dimensions[0].ScoreText())
	assert.Equal(t, LevelCritical, r.Dimensions[0].Status)
	assert.Equal(t, "3.0", r.Dimensions[1].ScoreText())
	assert.Equal(t, "4.0", r.Dimensions[2].ScoreText())
	assert.Equal(t, LevelStrong, r.Dimensions[2].Status)

	require.Len(t, r.ROI, 2)
	assert.Equal(t, 25, r.ROI[0].Percent)
	assert.Equal(t, 15, r.ROI[1].Percent)
	assert.Len(t, r.Breakdown, 3)
	assert.Equal(t, "Schedule 60-Min Review", r.CallToAction.Button)
}

func TestStaticModeIgnoresAnswers(t *testing.T) {
	b := NewBuilder(ModeStatic, nil)
	low, err := b.Build(context.Background(), liveInput(uniform(1)))
	require.NoError(t, err)
	high, err := b.Build(context.Background(), liveInput(uniform(5)))
	require.NoError(t, err)

	assert.Equal(t, Static(), low)
	assert.Equal(t, low, high)
}

func TestLiveReportDefaults(t *testing.T) {
	r, err := NewBuilder(ModeLive, nil).Build(context.Background(), liveInput(assessment.DefaultAnswers()))
	require.NoError(t, err)

	assert.Equal(t, "MAR 05, 2026", r.Header.Date)
	assert.Equal(t, "KOOPS-AMR-26-3F2A", r.Header.Reference)
	assert.Equal(t, "PLANT 7", r.Header.Facility)
	assert.Equal(t, "Needs Prep", r.OverallStatus)
	assert.Equal(t, "6-Wk Sprint", r.RecommendedAction)

	require.Len(t, r.Dimensions, catalog.StepCount)
	for i, d := range r.Dimensions {
		assert.Equal(t, i+1, d.Step)
		assert.Equal(t, "3.0", d.ScoreText())
		assert.Equal(t, LevelEmerging, d.Status)
		assert.NotEmpty(t, d.Note)
	}
	assert.Equal(t, "IT & Data", r.Dimensions[0].Name)
	assert.Contains(t, r.Summary, `"Needs Prep"`)
	assert.Len(t, r.Breakdown, catalog.StepCount)
	for _, c := range r.Breakdown {
		assert.Equal(t, ToneWarn, c.Tone)
	}
}

func TestLiveReportBands(t *testing.T) {
	tests := []struct {
		name    string
		answers assessment.Answers
		status  string
		level   Level
		tone    Tone
		timing  string
	}{
		{"all ones", uniform(1), "Not Ready", LevelCritical, ToneBad, "6-12 Months"},
		{"all fives", uniform(5), "Pilot Ready", LevelStrong, ToneGood, "0-3 Months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewBuilder(ModeLive, nil).Build(context.Background(), liveInput(tt.answers))
			require.NoError(t, err)

			assert.Equal(t, tt.status, r.OverallStatus)
			assert.Equal(t, tt.timing, r.PilotTiming)
			for _, d := range r.Dimensions {
				assert.Equal(t, tt.level, d.Status)
			}
			for _, c := range r.Breakdown {
				assert.Equal(t, tt.tone, c.Tone)
			}
		})
	}
}

func TestLiveReportMixed(t *testing.T) {
	a := assessment.DefaultAnswers()
	a[0] = [3]int{1, 2, 2} // IT & Data: 5/15 = 33%, mean 1.7
	a[2] = [3]int{5, 4, 5} // Safety & Change: 14/15 = 93%, mean 4.7

	r, err := NewBuilder(ModeLive, nil).Build(context.Background(), liveInput(a))
	require.NoError(t, err)

	assert.Equal(t, "1.7", r.Dimensions[0].ScoreText())
	assert.Equal(t, LevelCritical, r.Dimensions[0].Status)
	assert.Equal(t, LevelEmerging, r.Dimensions[1].Status)
	assert.Equal(t, "4.7", r.Dimensions[2].ScoreText())
	assert.Equal(t, LevelStrong, r.Dimensions[2].Status)

	assert.Contains(t, r.Summary, "strength in Safety & Change")
	assert.Contains(t, r.Summary, "gaps in IT & Data")
}

func TestLiveReportNeedsCatalog(t *testing.T) {
	_, err := NewBuilder(ModeLive, nil).Build(context.Background(), Input{})
	assert.Error(t, err)
}

type failingNotes struct{}

func (failingNotes) WriteNotes(context.Context, []NoteRequest) ([]string, error) {
	return nil, errors.New("offline")
}

type partialNotes struct{}

func (partialNotes) WriteNotes(_ context.Context, reqs []NoteRequest) ([]string, error) {
	out := make([]string, len(reqs))
	out[0] = "Custom note."
	return out, nil
}

func TestNotesFallBackToStatic(t *testing.T) {
	want, err := NewBuilder(ModeLive, nil).Build(context.Background(), liveInput(assessment.DefaultAnswers()))
	require.NoError(t, err)

	got, err := NewBuilder(ModeLive, failingNotes{}).Build(context.Background(), liveInput(assessment.DefaultAnswers()))
	require.NoError(t, err)
	assert.Equal(t, want.Dimensions, got.Dimensions)

	partial, err := NewBuilder(ModeLive, partialNotes{}).Build(context.Background(), liveInput(assessment.DefaultAnswers()))
	require.NoError(t, err)
	assert.Equal(t, "Custom note.", partial.Dimensions[0].Note)
	assert.Equal(t, want.Dimensions[1].Note, partial.Dimensions[1].Note)
}

// countingNotes returns one note per request and counts its calls.
type countingNotes struct{ calls int }

func (c *countingNotes) WriteNotes(_ context.Context, reqs []NoteRequest) ([]string, error) {
	c.calls++
	out := make([]string, len(reqs))
	for i := range out {
		out[i] = "Note."
	}
	return out, nil
}

func TestLiveReportReusedForSameAnswers(t *testing.T) {
	notes := &countingNotes{}
	b := NewBuilder(ModeLive, notes)
	ctx := context.Background()

	first, err := b.Build(ctx, liveInput(assessment.DefaultAnswers()))
	require.NoError(t, err)
	again, err := b.Build(ctx, liveInput(assessment.DefaultAnswers()))
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, 1, notes.calls)

	changed, err := b.Build(ctx, liveInput(uniform(5)))
	require.NoError(t, err)
	assert.NotSame(t, first, changed)
	assert.Equal(t, 2, notes.calls)

	in := liveInput(uniform(5))
	in.AttemptID = "another-attempt"
	_, err = b.Build(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 3, notes.calls)
}

func TestFailedNotesAreRetried(t *testing.T) {
	b := NewBuilder(ModeLive, failingNotes{})
	ctx := context.Background()

	first, err := b.Build(ctx, liveInput(assessment.DefaultAnswers()))
	require.NoError(t, err)
	again, err := b.Build(ctx, liveInput(assessment.DefaultAnswers()))
	require.NoError(t, err)
	assert.NotSame(t, first, again)
}

func TestAnalystNotes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"notes":[
		{"dimension":"it & data","note":"Extend Wi-Fi to the dock before anything else."},
		{"dimension":"Layout & Flow","note":"Fix one route per shift."},
		{"dimension":"Safety & Change","note":"Bring operators into route design."},
		{"dimension":"KPIs & ROI","note":"Record tugger hours now."}
	]}`)})

	r, err := NewBuilder(ModeLive, NewAnalystNotes(mock)).Build(context.Background(), liveInput(assessment.DefaultAnswers()))
	require.NoError(t, err)

	assert.Equal(t, "Extend Wi-Fi to the dock before anything else.", r.Dimensions[0].Note)
	assert.Equal(t, "Record tugger hours now.", r.Dimensions[3].Note)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "analyst-notes", calls[0].Schema.Name)
	assert.Contains(t, calls[0].Prompt, "Dimension: IT & Data")
	assert.Contains(t, calls[0].Prompt, ": 3\n")
}

func TestAnalystNotesInvalidOutputFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"notes":"none"}`)})
	notes := NewAnalystNotes(mock)

	_, err := notes.WriteNotes(context.Background(), []NoteRequest{{Dimension: Dimension{Name: "IT & Data"}}})
	assert.True(t, llm.IsKind(err, llm.KindInvalidResponse))

	r, err := NewBuilder(ModeLive, NewAnalystNotes(llm.NewMockProvider())).Build(context.Background(), liveInput(assessment.DefaultAnswers()))
	require.NoError(t, err)
	for _, d := range r.Dimensions {
		assert.NotEmpty(t, d.Note)
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("LIVE")
	require.NoError(t, err)
	assert.Equal(t, ModeLive, m)

	m, err = ParseMode("static")
	require.NoError(t, err)
	assert.Equal(t, ModeStatic, m)

	_, err = ParseMode("pdf")
	assert.Error(t, err)
}

func TestResultMessage(t *testing.T) {
	assert.True(t, strings.HasSuffix(ResultMessage(74), "key fundamentals need work before piloting AMRs."))
	assert.True(t, strings.HasSuffix(ResultMessage(75), "you are well-positioned for a successful pilot."))
	assert.Contains(t, ResultMessage(60), "60%")
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "a", joinNames([]string{"a"}))
	assert.Equal(t, "a and b", joinNames([]string{"a", "b"}))
	assert.Equal(t, "a, b and c", joinNames([]string{"a", "b", "c"}))
	assert.Equal(t, "UNSPECIFIED", facilityLabel("  "))
	assert.Equal(t, "KOOPS-AMR-26-X", reference(testDate, ""))
	assert.Equal(t, 1.7, meanRating(5))
	assert.Equal(t, "Needs Prep", ShortStatus(assessment.BandNeedsPreparation))
	assert.Equal(t, "Pilot Ready", ShortStatus(assessment.BandPilotReady))
}
