package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// RateLimitError indicates the provider returned a rate limit error (429).
type RateLimitError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// InvalidOutputError indicates the model returned content that does not
// conform to the requested schema.
type InvalidOutputError struct {
	Content json.RawMessage
	Err     error
}

func (e *InvalidOutputError) Error() string {
	return fmt.Sprintf("invalid model output: %v", e.Err)
}

func (e *InvalidOutputError) Unwrap() error { return e.Err }

// UnavailableError indicates the provider is down or unreachable.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider unavailable: %v", e.Err)
	}
	return "provider unavailable"
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// TruncatedError indicates the response hit the MaxTokens cap and the
// partial content cannot be used.
type TruncatedError struct {
	Content json.RawMessage
}

func (e *TruncatedError) Error() string {
	return "model output truncated at the token cap"
}
