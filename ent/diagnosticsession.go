// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/gauge/ent/diagnosticsession"
	"github.com/abhisek/gauge/ent/schema"
)

// DiagnosticSession is the model entity for the DiagnosticSession schema.
type DiagnosticSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID for this session
	SessionID string `json:"session_id,omitempty"`
	// Learner identity; at most one active session per owner
	OwnerID string `json:"owner_id,omitempty"`
	// Plan label: quick, full, or domain-focused
	DiagnosticType string `json:"diagnostic_type,omitempty"`
	// Question cap for this session's plan
	MaxQuestions int `json:"max_questions,omitempty"`
	// Per-domain question minimums for this session's plan
	Quotas map[string]int `json:"quotas,omitempty"`
	// Set for domain-focused plans
	FocusDomain string `json:"focus_domain,omitempty"`
	// active, completed, or abandoned
	Status string `json:"status,omitempty"`
	// Current ability estimate
	Theta float64 `json:"theta,omitempty"`
	// Standard error of theta
	Se float64 `json:"se,omitempty"`
	// Per-domain ability records
	DomainAbilities map[string]schema.DomainAbilityData `json:"domain_abilities,omitempty"`
	// Item ids in administration order
	Administered []string `json:"administered,omitempty"`
	// Item currently shown and awaiting an answer
	PendingItemID string `json:"pending_item_id,omitempty"`
	// QuestionsAnswered holds the value of the "questions_answered" field.
	QuestionsAnswered int `json:"questions_answered,omitempty"`
	// CorrectAnswers holds the value of the "correct_answers" field.
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// max_questions, precision_reached, exhausted, estimation_error, or abandoned
	TerminationReason string `json:"termination_reason,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Updated on every turn; drives the abandonment sweep
	LastActivity time.Time `json:"last_activity,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DiagnosticSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case diagnosticsession.FieldQuotas, diagnosticsession.FieldDomainAbilities, diagnosticsession.FieldAdministered:
			values[i] = new([]byte)
		case diagnosticsession.FieldTheta, diagnosticsession.FieldSe:
			values[i] = new(sql.NullFloat64)
		case diagnosticsession.FieldID, diagnosticsession.FieldMaxQuestions, diagnosticsession.FieldQuestionsAnswered, diagnosticsession.FieldCorrectAnswers:
			values[i] = new(sql.NullInt64)
		case diagnosticsession.FieldSessionID, diagnosticsession.FieldOwnerID, diagnosticsession.FieldDiagnosticType, diagnosticsession.FieldFocusDomain, diagnosticsession.FieldStatus, diagnosticsession.FieldPendingItemID, diagnosticsession.FieldTerminationReason:
			values[i] = new(sql.NullString)
		case diagnosticsession.FieldStartedAt, diagnosticsession.FieldCompletedAt, diagnosticsession.FieldLastActivity:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DiagnosticSession fields.
func (_m *DiagnosticSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case diagnosticsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case diagnosticsession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case diagnosticsession.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case diagnosticsession.FieldDiagnosticType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field diagnostic_type", values[i])
			} else if value.Valid {
				_m.DiagnosticType = value.String
			}
		case diagnosticsession.FieldMaxQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_questions", values[i])
			} else if value.Valid {
				_m.MaxQuestions = int(value.Int64)
			}
		case diagnosticsession.FieldQuotas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field quotas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Quotas); err != nil {
					return fmt.Errorf("unmarshal field quotas: %w", err)
				}
			}
		case diagnosticsession.FieldFocusDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field focus_domain", values[i])
			} else if value.Valid {
				_m.FocusDomain = value.String
			}
		case diagnosticsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case diagnosticsession.FieldTheta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field theta", values[i])
			} else if value.Valid {
				_m.Theta = value.Float64
			}
		case diagnosticsession.FieldSe:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field se", values[i])
			} else if value.Valid {
				_m.Se = value.Float64
			}
		case diagnosticsession.FieldDomainAbilities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field domain_abilities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DomainAbilities); err != nil {
					return fmt.Errorf("unmarshal field domain_abilities: %w", err)
				}
			}
		case diagnosticsession.FieldAdministered:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field administered", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Administered); err != nil {
					return fmt.Errorf("unmarshal field administered: %w", err)
				}
			}
		case diagnosticsession.FieldPendingItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pending_item_id", values[i])
			} else if value.Valid {
				_m.PendingItemID = value.String
			}
		case diagnosticsession.FieldQuestionsAnswered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_answered", values[i])
			} else if value.Valid {
				_m.QuestionsAnswered = int(value.Int64)
			}
		case diagnosticsession.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case diagnosticsession.FieldTerminationReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field termination_reason", values[i])
			} else if value.Valid {
				_m.TerminationReason = value.String
			}
		case diagnosticsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case diagnosticsession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case diagnosticsession.FieldLastActivity:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity", values[i])
			} else if value.Valid {
				_m.LastActivity = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DiagnosticSession.
// This includes values selected through modifiers, order, etc.
func (_m *DiagnosticSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DiagnosticSession.
// Note that you need to call DiagnosticSession.Unwrap() before calling this method if this DiagnosticSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DiagnosticSession) Update() *DiagnosticSessionUpdateOne {
	return NewDiagnosticSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DiagnosticSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DiagnosticSession) Unwrap() *DiagnosticSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DiagnosticSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DiagnosticSession) String() string {
	var builder strings.Builder
	builder.WriteString("DiagnosticSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("diagnostic_type=")
	builder.WriteString(_m.DiagnosticType)
	builder.WriteString(", ")
	builder.WriteString("max_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxQuestions))
	builder.WriteString(", ")
	builder.WriteString("quotas=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quotas))
	builder.WriteString(", ")
	builder.WriteString("focus_domain=")
	builder.WriteString(_m.FocusDomain)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("theta=")
	builder.WriteString(fmt.Sprintf("%v", _m.Theta))
	builder.WriteString(", ")
	builder.WriteString("se=")
	builder.WriteString(fmt.Sprintf("%v", _m.Se))
	builder.WriteString(", ")
	builder.WriteString("domain_abilities=")
	builder.WriteString(fmt.Sprintf("%v", _m.DomainAbilities))
	builder.WriteString(", ")
	builder.WriteString("administered=")
	builder.WriteString(fmt.Sprintf("%v", _m.Administered))
	builder.WriteString(", ")
	builder.WriteString("pending_item_id=")
	builder.WriteString(_m.PendingItemID)
	builder.WriteString(", ")
	builder.WriteString("questions_answered=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsAnswered))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("termination_reason=")
	builder.WriteString(_m.TerminationReason)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_activity=")
	builder.WriteString(_m.LastActivity.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DiagnosticSessions is a parsable slice of DiagnosticSession.
type DiagnosticSessions []*DiagnosticSession
