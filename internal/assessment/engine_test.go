package assessment

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koops/pathfinder/internal/catalog"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(catalog.Default())
}

func setAll(t *testing.T, e *Engine, rating int) {
	t.Helper()
	for step := 1; step <= catalog.StepCount; step++ {
		for idx := 0; idx < catalog.QuestionsPerStep; idx++ {
			require.NoError(t, e.SubmitAnswer(step, idx, rating))
		}
	}
}

func TestInitialState(t *testing.T) {
	e := newTestEngine(t)

	assert.Equal(t, ScreenLanding, e.Screen())
	assert.Equal(t, ScoreResult{Sum: 36, Percent: 60}, e.Score())
	assert.Equal(t, BandNeedsPreparation, e.Status())
	for _, r := range e.Answers().Flat() {
		assert.Equal(t, DefaultRating, r)
	}
	assert.Len(t, e.Answers().Flat(), catalog.QuestionCount)
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name string
		fill func(t *testing.T, e *Engine)
		want ScoreResult
		band Band
	}{
		{
			name: "all fives",
			fill: func(t *testing.T, e *Engine) { setAll(t, e, 5) },
			want: ScoreResult{Sum: 60, Percent: 100},
			band: BandPilotReady,
		},
		{
			name: "all ones",
			fill: func(t *testing.T, e *Engine) { setAll(t, e, 1) },
			want: ScoreResult{Sum: 12, Percent: 20},
			band: BandNotReady,
		},
		{
			// Eight fives and four ones: 40 + 4 = 44, one more point on a one.
			name: "sum 45 is pilot ready",
			fill: func(t *testing.T, e *Engine) {
				setAll(t, e, 1)
				n := 0
				for step := 1; step <= catalog.StepCount && n < 8; step++ {
					for idx := 0; idx < catalog.QuestionsPerStep && n < 8; idx++ {
						require.NoError(t, e.SubmitAnswer(step, idx, 5))
						n++
					}
				}
				require.NoError(t, e.SubmitAnswer(4, 2, 2))
			},
			want: ScoreResult{Sum: 45, Percent: 75},
			band: BandPilotReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			tt.fill(t, e)

			got := e.Score()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.band, StatusFor(got.Percent))
		})
	}
}

func TestSubmitAnswerIdempotent(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.SubmitAnswer(2, 1, 5))
	first := e.Score()
	require.NoError(t, e.SubmitAnswer(2, 1, 5))
	require.NoError(t, e.SubmitAnswer(2, 1, 5))

	assert.Equal(t, first, e.Score())
	assert.Equal(t, 38, first.Sum)

	r, ok := e.Answer(2, 1)
	require.True(t, ok)
	assert.Equal(t, 5, r)
}

func TestSubmitAnswerRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name                string
		step, index, rating int
		field               string
	}{
		{"rating zero", 1, 0, 0, "rating"},
		{"rating six", 1, 0, 6, "rating"},
		{"step five", 5, 0, 3, "step"},
		{"step zero", 0, 0, 3, "step"},
		{"index three", 1, 3, 3, "index"},
		{"negative index", 1, -1, 3, "index"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			require.NoError(t, e.SubmitAnswer(1, 0, 4))
			before := e.Answers()

			err := e.SubmitAnswer(tt.step, tt.index, tt.rating)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var inErr *InputError
			require.True(t, errors.As(err, &inErr))
			assert.Equal(t, tt.field, inErr.Field)

			assert.Equal(t, before, e.Answers(), "state must be unchanged")
		})
	}
}

func TestSumMatchesRatings(t *testing.T) {
	e := newTestEngine(t)
	ratings := []int{1, 2, 3, 4, 5, 5, 4, 3, 2, 1, 5, 1}

	for i, r := range ratings {
		require.NoError(t, e.SubmitAnswer(i/catalog.QuestionsPerStep+1, i%catalog.QuestionsPerStep, r))
	}

	want := 0
	for _, r := range ratings {
		want += r
	}
	got := e.Score()
	assert.Equal(t, want, got.Sum)
	assert.Equal(t, ratings, e.Answers().Flat())
	// 36/60 = 60%.
	assert.Equal(t, 60, got.Percent)
}

func TestPercentFormulaOverAllSums(t *testing.T) {
	for sum := 12; sum <= 60; sum++ {
		var a Answers
		remaining := sum
		for s := range a {
			for q := range a[s] {
				a[s][q] = 1
				remaining--
			}
		}
		for s := range a {
			for q := range a[s] {
				add := min(remaining, 4)
				a[s][q] += add
				remaining -= add
			}
		}
		got := ScoreAnswers(a)
		want := int(float64(sum)/60*100 + 0.5)
		assert.Equal(t, sum, got.Sum)
		assert.Equal(t, want, got.Percent, "sum %d", sum)
	}
}

func TestStatusBoundaries(t *testing.T) {
	tests := []struct {
		percent int
		want    Band
	}{
		{20, BandNotReady},
		{40, BandNotReady},
		{41, BandNeedsPreparation},
		{60, BandNeedsPreparation},
		{74, BandNeedsPreparation},
		{75, BandPilotReady},
		{100, BandPilotReady},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.percent), "percent %d", tt.percent)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	e := newTestEngine(t)
	setAll(t, e, 5)
	require.NoError(t, e.Navigate(ScreenReport))

	e.Reset()

	assert.Equal(t, ScoreResult{Sum: 36, Percent: 60}, e.Score())
	assert.Equal(t, BandNeedsPreparation, e.Status())
	assert.Equal(t, ScreenLanding, e.Screen())
}

func TestNavigateIsPermissive(t *testing.T) {
	e := newTestEngine(t)

	for _, from := range Screens() {
		for _, to := range Screens() {
			require.NoError(t, e.Navigate(from))
			require.NoError(t, e.Navigate(to))
			assert.Equal(t, to, e.Screen())
		}
	}

	err := e.Navigate(Screen(42))
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, ScreenReport, e.Screen())
}

func TestNavigateDoesNotTouchAnswers(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.SubmitAnswer(3, 2, 1))
	before := e.Answers()

	require.NoError(t, e.Navigate(ScreenResults))
	assert.Equal(t, before, e.Answers())
}

func TestStepScore(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.SubmitAnswer(1, 0, 5))
	require.NoError(t, e.SubmitAnswer(1, 1, 5))
	require.NoError(t, e.SubmitAnswer(1, 2, 5))
	require.NoError(t, e.SubmitAnswer(2, 0, 1))
	require.NoError(t, e.SubmitAnswer(2, 1, 1))

	s1, err := e.StepScore(1)
	require.NoError(t, err)
	assert.Equal(t, ScoreResult{Sum: 15, Percent: 100}, s1)

	s2, err := e.StepScore(2)
	require.NoError(t, err)
	// 5/15 = 33.3%.
	assert.Equal(t, ScoreResult{Sum: 5, Percent: 33}, s2)

	s3, err := e.StepScore(3)
	require.NoError(t, err)
	assert.Equal(t, ScoreResult{Sum: 9, Percent: 60}, s3)

	_, err = e.StepScore(0)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestConcurrentSubmissions(t *testing.T) {
	e := newTestEngine(t)

	var wg sync.WaitGroup
	for step := 1; step <= catalog.StepCount; step++ {
		for idx := 0; idx < catalog.QuestionsPerStep; idx++ {
			wg.Add(1)
			go func(step, idx int) {
				defer wg.Done()
				for r := MinRating; r <= MaxRating; r++ {
					_ = e.SubmitAnswer(step, idx, r)
					_ = e.Score()
				}
			}(step, idx)
		}
	}
	wg.Wait()

	assert.Equal(t, ScoreResult{Sum: 60, Percent: 100}, e.Score())
}

func TestParseAnswers(t *testing.T) {
	a, err := ParseAnswers("1,2,3,4,5,5,4,3,2,1,5,1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 5, 4, 3, 2, 1, 5, 1}, a.Flat())
	assert.Equal(t, "1,2,3,4,5,5,4,3,2,1,5,1", a.String())

	a, err = ParseAnswers(" 5, 5,5,5,5,5,5,5,5,5,5,5 ")
	require.NoError(t, err)
	assert.Equal(t, ScoreResult{Sum: 60, Percent: 100}, ScoreAnswers(a))

	for _, in := range []string{"", "1,2,3", "1,2,3,4,5,5,4,3,2,1,5,6", "1,2,3,4,5,5,4,3,2,1,5,x", "1,2,3,4,5,5,4,3,2,1,5,1,1"} {
		_, err := ParseAnswers(in)
		assert.True(t, errors.Is(err, ErrInvalidInput), "input %q", in)
	}
}
