package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Item is a bank item with its 3PL parameters. The bank is read-mostly:
// rows change only on import or at the end of a calibration cycle.
type Item struct {
	ent.Schema
}

func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			Unique().
			NotEmpty().
			Comment("Stable content identifier, e.g. frac-compare-02"),
		field.String("domain").
			NotEmpty().
			Comment("Knowledge domain: arithmetic, fractions, decimals, geometry, measurement, data"),
		field.String("prompt").
			NotEmpty().
			Comment("The question shown to the learner"),
		field.JSON("options", []string{}).
			Comment("Answer choices, in display order"),
		field.Int("answer_index").
			Comment("Index into options of the correct choice"),
		field.Float("difficulty").
			Default(0).
			Comment("3PL b parameter, typically in [-4, 4]"),
		field.Float("discrimination").
			Default(1).
			Comment("3PL a parameter, must be > 0"),
		field.Float("guessing").
			Default(0.25).
			Comment("3PL c parameter, in [0, 1)"),
		field.String("calibration_source").
			Default("default").
			Comment("empirical, domain-average, or default"),
		field.Int("calibration_sample").
			Default(0).
			Comment("Responses backing the empirical parameters"),
		field.Time("calibrated_at").
			Optional().
			Nillable().
			Comment("When parameters were last recomputed"),
	}
}

func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("domain"),
		index.Fields("calibration_source"),
	}
}
