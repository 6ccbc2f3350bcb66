package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/koops/pathfinder/internal/catalog"
	"github.com/koops/pathfinder/internal/llm"
)

const analystSystemPrompt = `You are an industrial automation analyst at Koops reviewing an
Autonomous Mobile Robot (AMR) readiness self-assessment for a manufacturing
facility. Ratings run from 1 (not in place) to 5 (fully in place).

For every dimension you are given, write one analyst note:
- One sentence, at most 90 characters.
- Name the most important gap or strength the ratings reveal.
- Plain language for a plant manager. No marketing tone, no emojis.
- Do not repeat the numeric score.`

// analystNotesSchema is the structured output AnalystNotes asks for.
var analystNotesSchema = &llm.Schema{
	Name:        "analyst-notes",
	Description: "One analyst note per readiness dimension",
	Definition: map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"notes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"dimension": map[string]any{
							"type":        "string",
							"description": "Dimension name exactly as given",
						},
						"note": map[string]any{
							"type":      "string",
							"minLength": 1,
							"maxLength": 160,
						},
					},
					"required": []any{"dimension", "note"},
				},
			},
		},
		"required": []any{"notes"},
	},
}

type analystOutput struct {
	Notes []struct {
		Dimension string `json:"dimension"`
		Note      string `json:"note"`
	} `json:"notes"`
}

// AnalystNotes asks an LLM for one note per dimension.
type AnalystNotes struct {
	Provider  llm.Provider
	MaxTokens int
}

// NewAnalystNotes returns a NoteWriter backed by p.
func NewAnalystNotes(p llm.Provider) *AnalystNotes {
	return &AnalystNotes{Provider: p, MaxTokens: 1024}
}

func (a *AnalystNotes) WriteNotes(ctx context.Context, reqs []NoteRequest) ([]string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeReportNotes)
	resp, err := a.Provider.Generate(ctx, llm.Request{
		System:      analystSystemPrompt,
		Prompt:      analystPrompt(reqs),
		Schema:      analystNotesSchema,
		MaxTokens:   a.MaxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("generate analyst notes: %w", err)
	}

	var out analystOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("decode analyst notes: %w", err)
	}

	byName := make(map[string]string, len(out.Notes))
	for _, n := range out.Notes {
		byName[normalizeName(n.Dimension)] = strings.TrimSpace(n.Note)
	}
	notes := make([]string, len(reqs))
	for i, r := range reqs {
		notes[i] = byName[normalizeName(r.Dimension.Name)]
	}
	return notes, nil
}

func analystPrompt(reqs []NoteRequest) string {
	var b strings.Builder
	b.WriteString("Write one analyst note for each dimension below.\n")
	for _, r := range reqs {
		fmt.Fprintf(&b, "\nDimension: %s (%s)\nMean rating: %s, status %s\n",
			r.Dimension.Name, r.Step.Title, r.Dimension.ScoreText(), r.Dimension.Status)
		for i, q := range r.Step.Questions {
			if i >= catalog.QuestionsPerStep {
				break
			}
			fmt.Fprintf(&b, "- %s: %d\n", q.Prompt, r.Ratings[i])
		}
	}
	return b.String()
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
