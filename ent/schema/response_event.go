package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records a single answer within a diagnostic session.
// Events are append-only: a correction is a new event, never a mutation,
// and ability is always recomputed by replaying the ordered history.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to DiagnosticSession"),
		field.String("item_id").
			NotEmpty().
			Comment("Bank item that was administered"),
		field.String("domain").
			NotEmpty().
			Comment("Denormalized item domain for per-domain queries"),
		field.Int("selected_option").
			Comment("Index of the chosen option"),
		field.Bool("correct").
			Comment("Derived from selected_option vs. the item answer key"),
		field.Int("response_ms").
			Default(0).
			Comment("Milliseconds from display to answer"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("item_id"),
		index.Fields("correct"),
	}
}
