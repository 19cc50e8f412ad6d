package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResult is one canned outcome for the MockProvider.
type MockResult struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider returns canned results in FIFO order and records every
// request. With an empty queue it reports UnavailableError.
type MockProvider struct {
	mu    sync.Mutex
	queue []MockResult
	Calls []Request
}

// NewMockProvider builds a mock with the given canned results.
func NewMockProvider(results ...MockResult) *MockProvider {
	return &MockProvider{queue: results}
}

func (m *MockProvider) Name() string  { return "mock" }
func (m *MockProvider) Model() string { return "mock" }

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.queue) == 0 {
		return nil, &UnavailableError{}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	if err := validateOutput(req.Schema, next.Content); err != nil {
		return nil, err
	}
	return &Response{Content: next.Content, Usage: next.Usage, Model: "mock"}, nil
}

// Enqueue appends a canned result.
func (m *MockProvider) Enqueue(result MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, result)
}

// CallCount returns how many Generate calls were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
