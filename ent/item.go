// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/gauge/ent/item"
)

// Item is the model entity for the Item schema.
type Item struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable content identifier, e.g. frac-compare-02
	ItemID string `json:"item_id,omitempty"`
	// Knowledge domain: arithmetic, fractions, decimals, geometry, measurement, data
	Domain string `json:"domain,omitempty"`
	// The question shown to the learner
	Prompt string `json:"prompt,omitempty"`
	// Answer choices, in display order
	Options []string `json:"options,omitempty"`
	// Index into options of the correct choice
	AnswerIndex int `json:"answer_index,omitempty"`
	// 3PL b parameter, typically in [-4, 4]
	Difficulty float64 `json:"difficulty,omitempty"`
	// 3PL a parameter, must be > 0
	Discrimination float64 `json:"discrimination,omitempty"`
	// 3PL c parameter, in [0, 1)
	Guessing float64 `json:"guessing,omitempty"`
	// empirical, domain-average, or default
	CalibrationSource string `json:"calibration_source,omitempty"`
	// Responses backing the empirical parameters
	CalibrationSample int `json:"calibration_sample,omitempty"`
	// When parameters were last recomputed
	CalibratedAt *time.Time `json:"calibrated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Item) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case item.FieldOptions:
			values[i] = new([]byte)
		case item.FieldDifficulty, item.FieldDiscrimination, item.FieldGuessing:
			values[i] = new(sql.NullFloat64)
		case item.FieldID, item.FieldAnswerIndex, item.FieldCalibrationSample:
			values[i] = new(sql.NullInt64)
		case item.FieldItemID, item.FieldDomain, item.FieldPrompt, item.FieldCalibrationSource:
			values[i] = new(sql.NullString)
		case item.FieldCalibratedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Item fields.
func (_m *Item) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case item.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case item.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case item.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case item.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case item.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case item.FieldAnswerIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field answer_index", values[i])
			} else if value.Valid {
				_m.AnswerIndex = int(value.Int64)
			}
		case item.FieldDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.Float64
			}
		case item.FieldDiscrimination:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field discrimination", values[i])
			} else if value.Valid {
				_m.Discrimination = value.Float64
			}
		case item.FieldGuessing:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field guessing", values[i])
			} else if value.Valid {
				_m.Guessing = value.Float64
			}
		case item.FieldCalibrationSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field calibration_source", values[i])
			} else if value.Valid {
				_m.CalibrationSource = value.String
			}
		case item.FieldCalibrationSample:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field calibration_sample", values[i])
			} else if value.Valid {
				_m.CalibrationSample = int(value.Int64)
			}
		case item.FieldCalibratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field calibrated_at", values[i])
			} else if value.Valid {
				_m.CalibratedAt = new(time.Time)
				*_m.CalibratedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Item.
// This includes values selected through modifiers, order, etc.
func (_m *Item) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Item.
// Note that you need to call Item.Unwrap() before calling this method if this Item
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Item) Update() *ItemUpdateOne {
	return NewItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Item entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Item) Unwrap() *Item {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Item is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Item) String() string {
	var builder strings.Builder
	builder.WriteString("Item(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("answer_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnswerIndex))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("discrimination=")
	builder.WriteString(fmt.Sprintf("%v", _m.Discrimination))
	builder.WriteString(", ")
	builder.WriteString("guessing=")
	builder.WriteString(fmt.Sprintf("%v", _m.Guessing))
	builder.WriteString(", ")
	builder.WriteString("calibration_source=")
	builder.WriteString(_m.CalibrationSource)
	builder.WriteString(", ")
	builder.WriteString("calibration_sample=")
	builder.WriteString(fmt.Sprintf("%v", _m.CalibrationSample))
	builder.WriteString(", ")
	if v := _m.CalibratedAt; v != nil {
		builder.WriteString("calibrated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Items is a parsable slice of Item.
type Items []*Item
