package store

import (
	"context"
	"encoding/json"
	"fmt"
)

var resultColumns = []string{
	"attempt_id", "catalog_version", "facility", "sum", "percent",
	"band", "step_sums", "answers", "duration_secs",
}

func (r *eventRepo) AppendResult(ctx context.Context, data ResultEventData) error {
	stepSums, err := json.Marshal(orEmpty(data.StepSums))
	if err != nil {
		return fmt.Errorf("encode step sums: %w", err)
	}
	answers, err := json.Marshal(orEmpty(data.Answers))
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}

	err = r.insert(ctx, resultEventsTable, resultColumns, []any{
		data.AttemptID,
		data.CatalogVersion,
		data.Facility,
		data.Sum,
		data.Percent,
		data.Band,
		string(stepSums),
		string(answers),
		data.DurationSecs,
	})
	if err != nil {
		return fmt.Errorf("save result event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryResults(ctx context.Context, opts QueryOpts) ([]ResultEvent, error) {
	cols := append([]string{colID, colSequence, colTimestamp}, resultColumns...)
	query, args := selectEvents(resultEventsTable, cols, opts).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query result events: %w", err)
	}
	defer rows.Close()

	var out []ResultEvent
	for rows.Next() {
		var (
			ev                ResultEvent
			ts                int64
			stepSums, answers string
		)
		err := rows.Scan(&ev.ID, &ev.Sequence, &ts,
			&ev.AttemptID, &ev.CatalogVersion, &ev.Facility, &ev.Sum, &ev.Percent,
			&ev.Band, &stepSums, &answers, &ev.DurationSecs)
		if err != nil {
			return nil, fmt.Errorf("scan result event: %w", err)
		}
		ev.Timestamp = fromMillis(ts)
		if err := json.Unmarshal([]byte(stepSums), &ev.StepSums); err != nil {
			return nil, fmt.Errorf("decode step sums of event %d: %w", ev.ID, err)
		}
		if err := json.Unmarshal([]byte(answers), &ev.Answers); err != nil {
			return nil, fmt.Errorf("decode answers of event %d: %w", ev.ID, err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

func orEmpty(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}
