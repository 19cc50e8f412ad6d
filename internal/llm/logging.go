package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/gauge/internal/store"
)

// loggingProvider records every request as an event row.
type loggingProvider struct {
	inner   Provider
	events  store.EventRepo
	purpose string
}

// WithLogging wraps a provider so each Generate call appends an
// LLMRequestEvent tagged with the purpose.
func WithLogging(p Provider, events store.EventRepo, purpose string) Provider {
	return &loggingProvider{inner: p, events: events, purpose: purpose}
}

func (l *loggingProvider) Name() string  { return l.inner.Name() }
func (l *loggingProvider) Model() string { return l.inner.Model() }

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.inner.Name(),
		Model:     l.inner.Model(),
		Purpose:   l.purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// A failed event write never fails the request.
	if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}
