package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// flakyProvider fails a fixed number of times before succeeding.
type flakyProvider struct {
	failures int
	err      error
	calls    int
}

func (f *flakyProvider) Name() string  { return "flaky" }
func (f *flakyProvider) Model() string { return "flaky-model" }

func (f *flakyProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	return &Response{Content: json.RawMessage(`"ok"`), Model: "flaky-model"}, nil
}

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_TransientErrorRecovers(t *testing.T) {
	inner := &flakyProvider{failures: 2, err: &UnavailableError{Err: errors.New("boom")}}
	p := WithRetry(inner, fastRetry(3))

	resp, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(resp.Content) != `"ok"` {
		t.Errorf("content = %s", resp.Content)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &UnavailableError{Err: errors.New("down")}}
	p := WithRetry(inner, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	var unavail *UnavailableError
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want UnavailableError", err)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetry_InvalidOutputRetriedOnce(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &InvalidOutputError{Err: errors.New("bad json")}}
	p := WithRetry(inner, fastRetry(5))

	_, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	var invalid *InvalidOutputError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want InvalidOutputError", err)
	}
	if inner.calls != 2 {
		t.Errorf("calls = %d, want 2 (one retry for invalid output)", inner.calls)
	}
}

func TestRetry_TruncationNotRetried(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &TruncatedError{}}
	p := WithRetry(inner, fastRetry(5))

	_, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	var truncated *TruncatedError
	if !errors.As(err, &truncated) {
		t.Fatalf("err = %v, want TruncatedError", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1", inner.calls)
	}
}

func TestRetry_ContextCancelStops(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &UnavailableError{Err: errors.New("down")}}
	p := WithRetry(inner, RetryConfig{
		MaxAttempts: 5,
		InitialWait: time.Hour,
		MaxWait:     time.Hour,
		Multiplier:  1.0,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{Prompt: "hi"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1", inner.calls)
	}
}

func TestRetry_RespectsRetryAfter(t *testing.T) {
	r := &retryProvider{cfg: fastRetry(3)}
	wait := r.wait(0, &RateLimitError{RetryAfter: 42 * time.Millisecond})
	if wait != 42*time.Millisecond {
		t.Errorf("wait = %s, want the rate limit's RetryAfter", wait)
	}
}
