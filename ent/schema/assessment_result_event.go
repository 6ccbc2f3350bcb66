package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentResultEvent records one completed readiness assessment.
type AssessmentResultEvent struct {
	ent.Schema
}

func (AssessmentResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Comment("UUID of the attempt; Start Over begins a new one"),
		field.String("catalog_version").
			Comment("Semantic version of the question catalog"),
		field.String("facility").
			Default("").
			Comment("Facility name entered on the landing screen"),
		field.Int("sum").
			Comment("Sum of all twelve ratings, 12..60"),
		field.Int("percent").
			Comment("Rounded readiness percentage"),
		field.String("band").
			Comment("not_ready, needs_preparation or pilot_ready"),
		field.String("step_sums").
			Comment("JSON array of the four step sums"),
		field.String("answers").
			Comment("JSON array of the twelve ratings in step order"),
		field.Int("duration_secs").
			Default(0).
			Comment("Seconds from session start to the results screen"),
	}
}

func (AssessmentResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
	}
}
