// Package assessment implements the readiness assessment engine: the answer
// set, the current screen, and the score and status derived from them.
package assessment

import (
	"strconv"
	"strings"
	"sync"

	"github.com/koops/pathfinder/internal/catalog"
)

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 3
)

// Answers holds one rating per question, indexed [step-1][index].
type Answers [catalog.StepCount][catalog.QuestionsPerStep]int

// DefaultAnswers returns an answer set with every rating at DefaultRating.
func DefaultAnswers() Answers {
	var a Answers
	for s := range a {
		for q := range a[s] {
			a[s][q] = DefaultRating
		}
	}
	return a
}

// Sum returns the total of all ratings.
func (a Answers) Sum() int {
	total := 0
	for s := range a {
		total += a.StepSum(s + 1)
	}
	return total
}

// StepSum returns the total of the ratings in a 1-based step. It returns 0
// for an unknown step.
func (a Answers) StepSum(step int) int {
	if step < 1 || step > len(a) {
		return 0
	}
	total := 0
	for _, r := range a[step-1] {
		total += r
	}
	return total
}

// Flat returns the ratings in step-major order.
func (a Answers) Flat() []int {
	out := make([]int, 0, catalog.QuestionCount)
	for s := range a {
		out = append(out, a[s][:]...)
	}
	return out
}

// String formats the ratings as a comma-separated list in step-major order.
func (a Answers) String() string {
	parts := make([]string, 0, catalog.QuestionCount)
	for _, r := range a.Flat() {
		parts = append(parts, strconv.Itoa(r))
	}
	return strings.Join(parts, ",")
}

// ParseAnswers parses twelve comma-separated ratings in step-major order.
func ParseAnswers(s string) (Answers, error) {
	fields := strings.Split(s, ",")
	if len(fields) != catalog.QuestionCount {
		return Answers{}, &InputError{Field: "answers", Value: len(fields)}
	}

	var a Answers
	for i, f := range fields {
		r, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || r < MinRating || r > MaxRating {
			return Answers{}, &InputError{Field: "rating", Value: strings.TrimSpace(f)}
		}
		a[i/catalog.QuestionsPerStep][i%catalog.QuestionsPerStep] = r
	}
	return a, nil
}

// ScoreResult is the score derived from an answer set.
type ScoreResult struct {
	Sum     int `json:"sum"`
	Percent int `json:"percent"`
}

func newScore(sum, questions int) ScoreResult {
	maxSum := questions * MaxRating
	// round(sum/maxSum*100) with halves rounded up; sum is never negative.
	percent := (200*sum + maxSum) / (2 * maxSum)
	return ScoreResult{Sum: sum, Percent: percent}
}

// Engine holds the answers and current screen of one assessment. All
// methods are safe for concurrent use; each takes a single lock.
type Engine struct {
	cat *catalog.Catalog

	mu      sync.Mutex
	answers Answers
	screen  Screen
}

// NewEngine returns an engine on the landing screen with default answers.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{
		cat:     cat,
		answers: DefaultAnswers(),
		screen:  ScreenLanding,
	}
}

// Catalog returns the question catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// SubmitAnswer overwrites the rating for (step, index). Out-of-range
// arguments fail with an error matching ErrInvalidInput and leave the
// answers unchanged.
func (e *Engine) SubmitAnswer(step, index, rating int) error {
	if step < 1 || step > catalog.StepCount {
		return &InputError{Field: "step", Value: step}
	}
	if index < 0 || index >= catalog.QuestionsPerStep {
		return &InputError{Field: "index", Value: index}
	}
	if rating < MinRating || rating > MaxRating {
		return &InputError{Field: "rating", Value: rating}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.answers[step-1][index] = rating
	return nil
}

// Navigate sets the current screen. Any screen may follow any other; the
// conventional order in Next and Prev is left to callers.
func (e *Engine) Navigate(target Screen) error {
	if !target.Valid() {
		return &InputError{Field: "screen", Value: int(target)}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.screen = target
	return nil
}

// Screen returns the current screen.
func (e *Engine) Screen() Screen {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.screen
}

// Answer returns the rating for (step, index).
func (e *Engine) Answer(step, index int) (int, bool) {
	if step < 1 || step > catalog.StepCount || index < 0 || index >= catalog.QuestionsPerStep {
		return 0, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.answers[step-1][index], true
}

// Answers returns a copy of the current answers.
func (e *Engine) Answers() Answers {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.answers
}

// Score computes the overall score from the current answers.
func (e *Engine) Score() ScoreResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return newScore(e.answers.Sum(), catalog.QuestionCount)
}

// Status classifies the current overall score.
func (e *Engine) Status() Band {
	return StatusFor(e.Score().Percent)
}

// StepScore computes the score of a single step with the same formula as
// the overall score, over that step's three questions.
func (e *Engine) StepScore(step int) (ScoreResult, error) {
	if step < 1 || step > catalog.StepCount {
		return ScoreResult{}, &InputError{Field: "step", Value: step}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return newScore(e.answers.StepSum(step), catalog.QuestionsPerStep), nil
}

// Reset restores every answer to DefaultRating and returns to the landing
// screen.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.answers = DefaultAnswers()
	e.screen = ScreenLanding
}

// ScoreAnswers computes the overall score of an answer set without an engine.
func ScoreAnswers(a Answers) ScoreResult {
	return newScore(a.Sum(), catalog.QuestionCount)
}

// ScoreStep computes the score of one step of an answer set.
func ScoreStep(a Answers, step int) ScoreResult {
	return newScore(a.StepSum(step), catalog.QuestionsPerStep)
}
