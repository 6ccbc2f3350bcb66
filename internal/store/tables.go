package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Column and table names shared by the repositories.
const (
	resultEventsTable     = "assessment_result_events"
	llmRequestEventsTable = "llm_request_events"

	colID        = "id"
	colSequence  = "sequence"
	colTimestamp = "timestamp"
)

// eventColumns are the leading columns every event table carries. Timestamps
// are unix milliseconds in UTC.
func eventColumns() []*schema.Column {
	return []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSequence, Type: field.TypeInt64, Unique: true},
		{Name: colTimestamp, Type: field.TypeInt64},
	}
}

var (
	// AssessmentResultEventsColumns holds the columns for the results log.
	AssessmentResultEventsColumns = append(eventColumns(),
		&schema.Column{Name: "attempt_id", Type: field.TypeString},
		&schema.Column{Name: "catalog_version", Type: field.TypeString},
		&schema.Column{Name: "facility", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "sum", Type: field.TypeInt},
		&schema.Column{Name: "percent", Type: field.TypeInt},
		&schema.Column{Name: "band", Type: field.TypeString},
		&schema.Column{Name: "step_sums", Type: field.TypeString},
		&schema.Column{Name: "answers", Type: field.TypeString},
		&schema.Column{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	)
	// AssessmentResultEventsTable holds the schema for the results log.
	AssessmentResultEventsTable = &schema.Table{
		Name:       resultEventsTable,
		Columns:    AssessmentResultEventsColumns,
		PrimaryKey: []*schema.Column{AssessmentResultEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentresultevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentResultEventsColumns[3]},
			},
		},
	}

	// LLMRequestEventsColumns holds the columns for the LLM call log.
	LLMRequestEventsColumns = append(eventColumns(),
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "error_message", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		&schema.Column{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	)
	// LLMRequestEventsTable holds the schema for the LLM call log.
	LLMRequestEventsTable = &schema.Table{
		Name:       llmRequestEventsTable,
		Columns:    LLMRequestEventsColumns,
		PrimaryKey: []*schema.Column{LLMRequestEventsColumns[0]},
	}

	// Tables holds every table the store migrates.
	Tables = []*schema.Table{
		AssessmentResultEventsTable,
		LLMRequestEventsTable,
	}
)
