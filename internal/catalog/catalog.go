// Package catalog holds the fixed set of readiness questions: four thematic
// steps of three Likert-scale questions each.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

const (
	// StepCount is the number of thematic steps in a catalog.
	StepCount = 4

	// QuestionsPerStep is the number of questions in every step.
	QuestionsPerStep = 3

	// QuestionCount is the total number of questions.
	QuestionCount = StepCount * QuestionsPerStep
)

//go:embed catalog.yaml
var defaultYAML []byte

// ErrInvalidCatalog is returned when catalog data fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Question is a single prompt within a step.
type Question struct {
	Step   int
	Index  int
	Prompt string
}

// ID returns the stable "stepN-i" identifier of the question.
func (q Question) ID() string {
	return fmt.Sprintf("step%d-%d", q.Step, q.Index)
}

// Step is one thematic group of questions.
type Step struct {
	Number    int
	Title     string
	Subtitle  string
	ShortName string
	Questions []Question
}

// Scale describes the endpoints of the rating scale shown to the user.
type Scale struct {
	LowLabel  string `yaml:"low_label"`
	HighLabel string `yaml:"high_label"`
}

// Catalog is the immutable, validated question set.
type Catalog struct {
	Version string
	Scale   Scale
	steps   []Step
}

type fileFormat struct {
	Version string     `yaml:"version"`
	Scale   Scale      `yaml:"scale"`
	Steps   []stepFile `yaml:"steps"`
}

type stepFile struct {
	Number    int      `yaml:"number"`
	Title     string   `yaml:"title"`
	Subtitle  string   `yaml:"subtitle"`
	ShortName string   `yaml:"short_name"`
	Questions []string `yaml:"questions"`
}

// Default returns the embedded catalog. It panics if the embedded data is
// malformed, so a broken build fails at startup rather than mid-session.
func Default() *Catalog {
	c, err := Load(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// LoadFile reads and validates a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load parses and validates catalog YAML.
func Load(data []byte) (*Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: parse: %v", ErrInvalidCatalog, err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}

	c := &Catalog{
		Version: f.Version,
		Scale:   f.Scale,
		steps:   make([]Step, 0, len(f.Steps)),
	}
	for _, sf := range f.Steps {
		step := Step{
			Number:    sf.Number,
			Title:     sf.Title,
			Subtitle:  sf.Subtitle,
			ShortName: sf.ShortName,
			Questions: make([]Question, len(sf.Questions)),
		}
		if step.ShortName == "" {
			step.ShortName = step.Title
		}
		for i, prompt := range sf.Questions {
			step.Questions[i] = Question{Step: sf.Number, Index: i, Prompt: strings.TrimSpace(prompt)}
		}
		c.steps = append(c.steps, step)
	}
	return c, nil
}

func (f fileFormat) validate() error {
	var problems []string

	if !semver.IsValid(f.Version) {
		problems = append(problems, fmt.Sprintf("version %q is not a semantic version", f.Version))
	}
	if f.Scale.LowLabel == "" || f.Scale.HighLabel == "" {
		problems = append(problems, "scale labels must not be empty")
	}
	if len(f.Steps) != StepCount {
		problems = append(problems, fmt.Sprintf("expected %d steps, got %d", StepCount, len(f.Steps)))
	}
	for i, s := range f.Steps {
		if s.Number != i+1 {
			problems = append(problems, fmt.Sprintf("step at position %d has number %d", i+1, s.Number))
		}
		if strings.TrimSpace(s.Title) == "" {
			problems = append(problems, fmt.Sprintf("step %d: empty title", s.Number))
		}
		if len(s.Questions) != QuestionsPerStep {
			problems = append(problems, fmt.Sprintf("step %d: expected %d questions, got %d",
				s.Number, QuestionsPerStep, len(s.Questions)))
		}
		for j, q := range s.Questions {
			if strings.TrimSpace(q) == "" {
				problems = append(problems, fmt.Sprintf("step %d: question %d is empty", s.Number, j))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(problems, "; "))
	}
	return nil
}

// Steps returns the steps in order. The returned slice is a copy.
func (c *Catalog) Steps() []Step {
	out := make([]Step, len(c.steps))
	for i, s := range c.steps {
		out[i] = s
		out[i].Questions = append([]Question(nil), s.Questions...)
	}
	return out
}

// Step returns the step with the given 1-based number.
func (c *Catalog) Step(number int) (Step, bool) {
	if number < 1 || number > len(c.steps) {
		return Step{}, false
	}
	s := c.steps[number-1]
	s.Questions = append([]Question(nil), s.Questions...)
	return s, true
}

// Question returns the question at (step, index).
func (c *Catalog) Question(step, index int) (Question, bool) {
	if step < 1 || step > len(c.steps) {
		return Question{}, false
	}
	qs := c.steps[step-1].Questions
	if index < 0 || index >= len(qs) {
		return Question{}, false
	}
	return qs[index], true
}

// Major returns the major version component, e.g. "v1".
func (c *Catalog) Major() string {
	return semver.Major(c.Version)
}
