package itembank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema is the JSON Schema every bank file must satisfy before any
// item is constructed from it.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"domain": map[string]any{
						"type": "string",
						"enum": []any{"arithmetic", "fractions", "decimals", "geometry", "measurement", "data"},
					},
					"prompt": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"options": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 2,
					},
					"answer_index": map[string]any{
						"type":    "integer",
						"minimum": 0,
					},
					"difficulty": map[string]any{
						"type":    "number",
						"minimum": -4,
						"maximum": 4,
					},
					"discrimination": map[string]any{
						"type":             "number",
						"exclusiveMinimum": 0,
						"maximum":          4,
					},
					"guessing": map[string]any{
						"type":             "number",
						"minimum":          0,
						"exclusiveMaximum": 1,
					},
					"sample_size": map[string]any{
						"type":    "integer",
						"minimum": 0,
					},
				},
				"required":             []any{"id", "domain", "prompt", "options", "answer_index"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"items"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledBankSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal to get a clean representation.
		raw, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal bank schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			compileErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://item-bank.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// ValidateBankJSON checks raw bank JSON against the schema.
func ValidateBankJSON(raw []byte) error {
	schema, err := compiledBankSchema()
	if err != nil {
		return err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("bank schema validation failed: %w", err)
	}
	return nil
}
