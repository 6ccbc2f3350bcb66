package llm

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/koops/pathfinder/internal/store"
)

// Recorder persists LLM request events. store.EventRepo satisfies it.
type Recorder interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// LoggingProvider logs every request and, when a Recorder is set, stores it
// in the results log.
type LoggingProvider struct {
	inner    Provider
	recorder Recorder
}

// WithLogging wraps p. rec may be nil.
func WithLogging(p Provider, rec Recorder) Provider {
	return &LoggingProvider{inner: p, recorder: rec}
}

func (l *LoggingProvider) Name() string    { return l.inner.Name() }
func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	data := store.LLMRequestEventData{
		Provider:    l.inner.Name(),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   latency.Milliseconds(),
		Success:     err == nil,
		RequestBody: requestBody(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		log.Printf("WARN: [LLM] %s/%s %s failed after %s: %v", data.Provider, data.Model, data.Purpose, latency, err)
	} else {
		log.Printf("INFO: [LLM] %s/%s %s ok in %s (%d tokens)", data.Provider, data.Model, data.Purpose, latency, resp.Usage.Total())
	}

	if l.recorder != nil {
		// Use a fresh context so a cancelled request is still recorded.
		if rerr := l.recorder.AppendLLMRequest(context.WithoutCancel(ctx), data); rerr != nil {
			log.Printf("WARN: [LLM] record request event: %v", rerr)
		}
	}
	return resp, err
}

// requestBody renders req as JSON for the request log.
func requestBody(req Request) string {
	body := struct {
		System string         `json:"system,omitempty"`
		Prompt string         `json:"prompt"`
		Schema string         `json:"schema,omitempty"`
		Def    map[string]any `json:"schema_definition,omitempty"`
	}{System: req.System, Prompt: req.Prompt}
	if req.Schema != nil {
		body.Schema = req.Schema.Name
		body.Def = req.Schema.Definition
	}
	b, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return req.Prompt
	}
	return string(b)
}
