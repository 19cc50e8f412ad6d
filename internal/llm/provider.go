// Package llm abstracts the hosted model APIs used to write report
// narratives. Providers produce schema-validated JSON from a single-turn
// prompt; decorators add retry and event logging.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured output from a prompt.
type Provider interface {
	// Generate sends the request and returns the model's output. When the
	// request carries a Schema the content is validated JSON conforming to
	// it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Name identifies the provider, e.g. "anthropic".
	Name() string

	// Model returns the configured model id.
	Model() string
}

// Request is a single-turn generation request.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user-turn content.
	Prompt string

	// Schema, when set, makes the provider request and validate structured
	// JSON output.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness; zero means deterministic.
	Temperature float64
}

// Schema names a JSON Schema the output must conform to.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "placement-narrative".
	Name string

	// Description guides the model toward the intended content.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated output; validated JSON when the request had
	// a schema.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// Truncated is true when generation stopped on the token cap.
	Truncated bool
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}
