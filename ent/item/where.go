// Code generated by ent, DO NOT EDIT.

package item

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/gauge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldID, id))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemID, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDomain, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldPrompt, v))
}

// AnswerIndex applies equality check predicate on the "answer_index" field. It's identical to AnswerIndexEQ.
func AnswerIndex(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAnswerIndex, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDifficulty, v))
}

// Discrimination applies equality check predicate on the "discrimination" field. It's identical to DiscriminationEQ.
func Discrimination(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDiscrimination, v))
}

// Guessing applies equality check predicate on the "guessing" field. It's identical to GuessingEQ.
func Guessing(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldGuessing, v))
}

// CalibrationSource applies equality check predicate on the "calibration_source" field. It's identical to CalibrationSourceEQ.
func CalibrationSource(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCalibrationSource, v))
}

// CalibrationSample applies equality check predicate on the "calibration_sample" field. It's identical to CalibrationSampleEQ.
func CalibrationSample(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCalibrationSample, v))
}

// CalibratedAt applies equality check predicate on the "calibrated_at" field. It's identical to CalibratedAtEQ.
func CalibratedAt(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCalibratedAt, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldItemID, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldDomain, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldPrompt, v))
}

// AnswerIndexEQ applies the EQ predicate on the "answer_index" field.
func AnswerIndexEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAnswerIndex, v))
}

// AnswerIndexNEQ applies the NEQ predicate on the "answer_index" field.
func AnswerIndexNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldAnswerIndex, v))
}

// AnswerIndexIn applies the In predicate on the "answer_index" field.
func AnswerIndexIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldAnswerIndex, vs...))
}

// AnswerIndexNotIn applies the NotIn predicate on the "answer_index" field.
func AnswerIndexNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldAnswerIndex, vs...))
}

// AnswerIndexGT applies the GT predicate on the "answer_index" field.
func AnswerIndexGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldAnswerIndex, v))
}

// AnswerIndexGTE applies the GTE predicate on the "answer_index" field.
func AnswerIndexGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldAnswerIndex, v))
}

// AnswerIndexLT applies the LT predicate on the "answer_index" field.
func AnswerIndexLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldAnswerIndex, v))
}

// AnswerIndexLTE applies the LTE predicate on the "answer_index" field.
func AnswerIndexLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldAnswerIndex, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v float64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v float64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDifficulty, v))
}

// DiscriminationEQ applies the EQ predicate on the "discrimination" field.
func DiscriminationEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDiscrimination, v))
}

// DiscriminationNEQ applies the NEQ predicate on the "discrimination" field.
func DiscriminationNEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDiscrimination, v))
}

// DiscriminationIn applies the In predicate on the "discrimination" field.
func DiscriminationIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDiscrimination, vs...))
}

// DiscriminationNotIn applies the NotIn predicate on the "discrimination" field.
func DiscriminationNotIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDiscrimination, vs...))
}

// DiscriminationGT applies the GT predicate on the "discrimination" field.
func DiscriminationGT(v float64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDiscrimination, v))
}

// DiscriminationGTE applies the GTE predicate on the "discrimination" field.
func DiscriminationGTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDiscrimination, v))
}

// DiscriminationLT applies the LT predicate on the "discrimination" field.
func DiscriminationLT(v float64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDiscrimination, v))
}

// DiscriminationLTE applies the LTE predicate on the "discrimination" field.
func DiscriminationLTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDiscrimination, v))
}

// GuessingEQ applies the EQ predicate on the "guessing" field.
func GuessingEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldGuessing, v))
}

// GuessingNEQ applies the NEQ predicate on the "guessing" field.
func GuessingNEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldGuessing, v))
}

// GuessingIn applies the In predicate on the "guessing" field.
func GuessingIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldGuessing, vs...))
}

// GuessingNotIn applies the NotIn predicate on the "guessing" field.
func GuessingNotIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldGuessing, vs...))
}

// GuessingGT applies the GT predicate on the "guessing" field.
func GuessingGT(v float64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldGuessing, v))
}

// GuessingGTE applies the GTE predicate on the "guessing" field.
func GuessingGTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldGuessing, v))
}

// GuessingLT applies the LT predicate on the "guessing" field.
func GuessingLT(v float64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldGuessing, v))
}

// GuessingLTE applies the LTE predicate on the "guessing" field.
func GuessingLTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldGuessing, v))
}

// CalibrationSourceEQ applies the EQ predicate on the "calibration_source" field.
func CalibrationSourceEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCalibrationSource, v))
}

// CalibrationSourceNEQ applies the NEQ predicate on the "calibration_source" field.
func CalibrationSourceNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCalibrationSource, v))
}

// CalibrationSourceIn applies the In predicate on the "calibration_source" field.
func CalibrationSourceIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCalibrationSource, vs...))
}

// CalibrationSourceNotIn applies the NotIn predicate on the "calibration_source" field.
func CalibrationSourceNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCalibrationSource, vs...))
}

// CalibrationSourceGT applies the GT predicate on the "calibration_source" field.
func CalibrationSourceGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCalibrationSource, v))
}

// CalibrationSourceGTE applies the GTE predicate on the "calibration_source" field.
func CalibrationSourceGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCalibrationSource, v))
}

// CalibrationSourceLT applies the LT predicate on the "calibration_source" field.
func CalibrationSourceLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCalibrationSource, v))
}

// CalibrationSourceLTE applies the LTE predicate on the "calibration_source" field.
func CalibrationSourceLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCalibrationSource, v))
}

// CalibrationSourceContains applies the Contains predicate on the "calibration_source" field.
func CalibrationSourceContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldCalibrationSource, v))
}

// CalibrationSourceHasPrefix applies the HasPrefix predicate on the "calibration_source" field.
func CalibrationSourceHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldCalibrationSource, v))
}

// CalibrationSourceHasSuffix applies the HasSuffix predicate on the "calibration_source" field.
func CalibrationSourceHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldCalibrationSource, v))
}

// CalibrationSourceEqualFold applies the EqualFold predicate on the "calibration_source" field.
func CalibrationSourceEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldCalibrationSource, v))
}

// CalibrationSourceContainsFold applies the ContainsFold predicate on the "calibration_source" field.
func CalibrationSourceContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldCalibrationSource, v))
}

// CalibrationSampleEQ applies the EQ predicate on the "calibration_sample" field.
func CalibrationSampleEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCalibrationSample, v))
}

// CalibrationSampleNEQ applies the NEQ predicate on the "calibration_sample" field.
func CalibrationSampleNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCalibrationSample, v))
}

// CalibrationSampleIn applies the In predicate on the "calibration_sample" field.
func CalibrationSampleIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCalibrationSample, vs...))
}

// CalibrationSampleNotIn applies the NotIn predicate on the "calibration_sample" field.
func CalibrationSampleNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCalibrationSample, vs...))
}

// CalibrationSampleGT applies the GT predicate on the "calibration_sample" field.
func CalibrationSampleGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCalibrationSample, v))
}

// CalibrationSampleGTE applies the GTE predicate on the "calibration_sample" field.
func CalibrationSampleGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCalibrationSample, v))
}

// CalibrationSampleLT applies the LT predicate on the "calibration_sample" field.
func CalibrationSampleLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCalibrationSample, v))
}

// CalibrationSampleLTE applies the LTE predicate on the "calibration_sample" field.
func CalibrationSampleLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCalibrationSample, v))
}

// CalibratedAtEQ applies the EQ predicate on the "calibrated_at" field.
func CalibratedAtEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCalibratedAt, v))
}

// CalibratedAtNEQ applies the NEQ predicate on the "calibrated_at" field.
func CalibratedAtNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCalibratedAt, v))
}

// CalibratedAtIn applies the In predicate on the "calibrated_at" field.
func CalibratedAtIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCalibratedAt, vs...))
}

// CalibratedAtNotIn applies the NotIn predicate on the "calibrated_at" field.
func CalibratedAtNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCalibratedAt, vs...))
}

// CalibratedAtGT applies the GT predicate on the "calibrated_at" field.
func CalibratedAtGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCalibratedAt, v))
}

// CalibratedAtGTE applies the GTE predicate on the "calibrated_at" field.
func CalibratedAtGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCalibratedAt, v))
}

// CalibratedAtLT applies the LT predicate on the "calibrated_at" field.
func CalibratedAtLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCalibratedAt, v))
}

// CalibratedAtLTE applies the LTE predicate on the "calibrated_at" field.
func CalibratedAtLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCalibratedAt, v))
}

// CalibratedAtIsNil applies the IsNil predicate on the "calibrated_at" field.
func CalibratedAtIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldCalibratedAt))
}

// CalibratedAtNotNil applies the NotNil predicate on the "calibrated_at" field.
func CalibratedAtNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldCalibratedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Item) predicate.Item {
	return predicate.Item(sql.NotPredicates(p))
}
