package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// QueryOpts configures event queries with filtering and pagination.
// Results are returned newest first.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ResultEventData captures one completed assessment as shown on the
// results screen.
type ResultEventData struct {
	AttemptID      string
	CatalogVersion string
	Facility       string
	Sum            int
	Percent        int
	Band           string
	StepSums       []int
	Answers        []int
	DurationSecs   int
}

// ResultEvent is a stored ResultEventData.
type ResultEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ResultEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLMRequestEventData.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendResult records a completed assessment.
	AppendResult(ctx context.Context, data ResultEventData) error

	// QueryResults lists recorded assessments.
	QueryResults(ctx context.Context, opts QueryOpts) ([]ResultEvent, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents lists recorded LLM calls.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one LLM call, or nil if id is unknown.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)
}

// eventRepo implements EventRepo with ent's SQL builder and the global
// sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

// builder renders statements in the SQLite dialect.
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

// selectEvents builds a newest-first select over an event table.
func selectEvents(table string, columns []string, opts QueryOpts) *entsql.Selector {
	sel := builder().Select(columns...).From(builder().Table(table))
	if opts.After > 0 {
		sel.Where(entsql.GT(colSequence, opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT(colSequence, opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE(colTimestamp, toMillis(opts.From)))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE(colTimestamp, toMillis(opts.To)))
	}
	sel.OrderBy(entsql.Desc(colSequence))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	return sel
}

// insert takes the next sequence number and writes the row in one
// transaction, so the sequence has no gaps.
func (r *eventRepo) insert(ctx context.Context, table string, columns []string, values []any) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert %s: %w", table, err)
	}
	defer tx.Rollback()

	seqNum, err := r.seq.Next(ctx, tx)
	if err != nil {
		return err
	}
	cols := append([]string{colSequence, colTimestamp}, columns...)
	vals := append([]any{seqNum, toMillis(time.Now())}, values...)

	query, args := builder().Insert(table).Columns(cols...).Values(vals...).Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert %s: %w", table, err)
	}
	return nil
}
