package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func narrativeSchema() *Schema {
	return &Schema{
		Name:        "test-narrative",
		Description: "summary plus recommendations",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary": map[string]any{"type": "string"},
				"recommendations": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required":             []any{"summary", "recommendations"},
			"additionalProperties": false,
		},
	}
}

func TestValidateOutput(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"conforming", `{"summary":"solid","recommendations":["practice fractions"]}`, false},
		{"missing required", `{"summary":"solid"}`, true},
		{"wrong type", `{"summary":1,"recommendations":[]}`, true},
		{"extra field", `{"summary":"s","recommendations":[],"extra":true}`, true},
		{"not json", `oops`, true},
	}

	for _, tt := range tests {
		err := validateOutput(narrativeSchema(), json.RawMessage(tt.raw))
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if err != nil {
			var invalid *InvalidOutputError
			if !errors.As(err, &invalid) {
				t.Errorf("%s: err type = %T, want InvalidOutputError", tt.name, err)
			}
		}
	}
}

func TestValidateOutput_NilSchemaPasses(t *testing.T) {
	if err := validateOutput(nil, json.RawMessage(`anything at all`)); err != nil {
		t.Errorf("nil schema: %v", err)
	}
}

func TestMockProviderValidates(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Content: json.RawMessage(`{"summary":"ok","recommendations":[]}`)},
		MockResult{Content: json.RawMessage(`{"wrong":"shape"}`)},
	)
	req := Request{Prompt: "p", Schema: narrativeSchema()}

	if _, err := mock.Generate(t.Context(), req); err != nil {
		t.Fatalf("first call: %v", err)
	}

	_, err := mock.Generate(t.Context(), req)
	var invalid *InvalidOutputError
	if !errors.As(err, &invalid) {
		t.Fatalf("second call err = %v, want InvalidOutputError", err)
	}

	_, err = mock.Generate(t.Context(), req)
	var unavail *UnavailableError
	if !errors.As(err, &unavail) {
		t.Fatalf("drained mock err = %v, want UnavailableError", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("call count = %d, want 3", mock.CallCount())
	}
}
