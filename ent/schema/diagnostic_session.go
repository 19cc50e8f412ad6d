package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DomainAbilityData is the serialized per-domain ability record.
type DomainAbilityData struct {
	Theta        float64 `json:"theta"`
	SE           float64 `json:"se"`
	Administered int     `json:"administered"`
	Correct      int     `json:"correct"`
	NoData       bool    `json:"no_data"`
}

// DiagnosticSession is the aggregate root of one adaptive diagnostic run.
// The row is rewritten as a whole after every turn so that a crash between
// turns loses at most the in-flight turn.
type DiagnosticSession struct {
	ent.Schema
}

func (DiagnosticSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Comment("UUID for this session"),
		field.String("owner_id").
			NotEmpty().
			Comment("Learner identity; at most one active session per owner"),
		field.String("diagnostic_type").
			NotEmpty().
			Comment("Plan label: quick, full, or domain-focused"),
		field.Int("max_questions").
			Positive().
			Comment("Question cap for this session's plan"),
		field.JSON("quotas", map[string]int{}).
			Optional().
			Comment("Per-domain question minimums for this session's plan"),
		field.String("focus_domain").
			Default("").
			Comment("Set for domain-focused plans"),
		field.String("status").
			Default("active").
			Comment("active, completed, or abandoned"),
		field.Float("theta").
			Default(0).
			Comment("Current ability estimate"),
		field.Float("se").
			Default(1).
			Comment("Standard error of theta"),
		field.JSON("domain_abilities", map[string]DomainAbilityData{}).
			Optional().
			Comment("Per-domain ability records"),
		field.JSON("administered", []string{}).
			Optional().
			Comment("Item ids in administration order"),
		field.String("pending_item_id").
			Default("").
			Comment("Item currently shown and awaiting an answer"),
		field.Int("questions_answered").
			Default(0),
		field.Int("correct_answers").
			Default(0),
		field.String("termination_reason").
			Default("").
			Comment("max_questions, precision_reached, exhausted, estimation_error, or abandoned"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_activity").
			Default(time.Now).
			Comment("Updated on every turn; drives the abandonment sweep"),
	}
}

func (DiagnosticSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "status"),
		index.Fields("status"),
	}
}
