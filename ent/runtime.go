// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/gauge/ent/diagnosticsession"
	"github.com/abhisek/gauge/ent/item"
	"github.com/abhisek/gauge/ent/llmrequestevent"
	"github.com/abhisek/gauge/ent/responseevent"
	"github.com/abhisek/gauge/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	diagnosticsessionFields := schema.DiagnosticSession{}.Fields()
	_ = diagnosticsessionFields
	// diagnosticsessionDescSessionID is the schema descriptor for session_id field.
	diagnosticsessionDescSessionID := diagnosticsessionFields[0].Descriptor()
	// diagnosticsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	diagnosticsession.SessionIDValidator = diagnosticsessionDescSessionID.Validators[0].(func(string) error)
	// diagnosticsessionDescOwnerID is the schema descriptor for owner_id field.
	diagnosticsessionDescOwnerID := diagnosticsessionFields[1].Descriptor()
	// diagnosticsession.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	diagnosticsession.OwnerIDValidator = diagnosticsessionDescOwnerID.Validators[0].(func(string) error)
	// diagnosticsessionDescDiagnosticType is the schema descriptor for diagnostic_type field.
	diagnosticsessionDescDiagnosticType := diagnosticsessionFields[2].Descriptor()
	// diagnosticsession.DiagnosticTypeValidator is a validator for the "diagnostic_type" field. It is called by the builders before save.
	diagnosticsession.DiagnosticTypeValidator = diagnosticsessionDescDiagnosticType.Validators[0].(func(string) error)
	// diagnosticsessionDescMaxQuestions is the schema descriptor for max_questions field.
	diagnosticsessionDescMaxQuestions := diagnosticsessionFields[3].Descriptor()
	// diagnosticsession.MaxQuestionsValidator is a validator for the "max_questions" field. It is called by the builders before save.
	diagnosticsession.MaxQuestionsValidator = diagnosticsessionDescMaxQuestions.Validators[0].(func(int) error)
	// diagnosticsessionDescFocusDomain is the schema descriptor for focus_domain field.
	diagnosticsessionDescFocusDomain := diagnosticsessionFields[5].Descriptor()
	// diagnosticsession.DefaultFocusDomain holds the default value on creation for the focus_domain field.
	diagnosticsession.DefaultFocusDomain = diagnosticsessionDescFocusDomain.Default.(string)
	// diagnosticsessionDescStatus is the schema descriptor for status field.
	diagnosticsessionDescStatus := diagnosticsessionFields[6].Descriptor()
	// diagnosticsession.DefaultStatus holds the default value on creation for the status field.
	diagnosticsession.DefaultStatus = diagnosticsessionDescStatus.Default.(string)
	// diagnosticsessionDescTheta is the schema descriptor for theta field.
	diagnosticsessionDescTheta := diagnosticsessionFields[7].Descriptor()
	// diagnosticsession.DefaultTheta holds the default value on creation for the theta field.
	diagnosticsession.DefaultTheta = diagnosticsessionDescTheta.Default.(float64)
	// diagnosticsessionDescSe is the schema descriptor for se field.
	diagnosticsessionDescSe := diagnosticsessionFields[8].Descriptor()
	// diagnosticsession.DefaultSe holds the default value on creation for the se field.
	diagnosticsession.DefaultSe = diagnosticsessionDescSe.Default.(float64)
	// diagnosticsessionDescPendingItemID is the schema descriptor for pending_item_id field.
	diagnosticsessionDescPendingItemID := diagnosticsessionFields[11].Descriptor()
	// diagnosticsession.DefaultPendingItemID holds the default value on creation for the pending_item_id field.
	diagnosticsession.DefaultPendingItemID = diagnosticsessionDescPendingItemID.Default.(string)
	// diagnosticsessionDescQuestionsAnswered is the schema descriptor for questions_answered field.
	diagnosticsessionDescQuestionsAnswered := diagnosticsessionFields[12].Descriptor()
	// diagnosticsession.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	diagnosticsession.DefaultQuestionsAnswered = diagnosticsessionDescQuestionsAnswered.Default.(int)
	// diagnosticsessionDescCorrectAnswers is the schema descriptor for correct_answers field.
	diagnosticsessionDescCorrectAnswers := diagnosticsessionFields[13].Descriptor()
	// diagnosticsession.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	diagnosticsession.DefaultCorrectAnswers = diagnosticsessionDescCorrectAnswers.Default.(int)
	// diagnosticsessionDescTerminationReason is the schema descriptor for termination_reason field.
	diagnosticsessionDescTerminationReason := diagnosticsessionFields[14].Descriptor()
	// diagnosticsession.DefaultTerminationReason holds the default value on creation for the termination_reason field.
	diagnosticsession.DefaultTerminationReason = diagnosticsessionDescTerminationReason.Default.(string)
	// diagnosticsessionDescStartedAt is the schema descriptor for started_at field.
	diagnosticsessionDescStartedAt := diagnosticsessionFields[15].Descriptor()
	// diagnosticsession.DefaultStartedAt holds the default value on creation for the started_at field.
	diagnosticsession.DefaultStartedAt = diagnosticsessionDescStartedAt.Default.(func() time.Time)
	// diagnosticsessionDescLastActivity is the schema descriptor for last_activity field.
	diagnosticsessionDescLastActivity := diagnosticsessionFields[17].Descriptor()
	// diagnosticsession.DefaultLastActivity holds the default value on creation for the last_activity field.
	diagnosticsession.DefaultLastActivity = diagnosticsessionDescLastActivity.Default.(func() time.Time)
	itemFields := schema.Item{}.Fields()
	_ = itemFields
	// itemDescItemID is the schema descriptor for item_id field.
	itemDescItemID := itemFields[0].Descriptor()
	// item.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	item.ItemIDValidator = itemDescItemID.Validators[0].(func(string) error)
	// itemDescDomain is the schema descriptor for domain field.
	itemDescDomain := itemFields[1].Descriptor()
	// item.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	item.DomainValidator = itemDescDomain.Validators[0].(func(string) error)
	// itemDescPrompt is the schema descriptor for prompt field.
	itemDescPrompt := itemFields[2].Descriptor()
	// item.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	item.PromptValidator = itemDescPrompt.Validators[0].(func(string) error)
	// itemDescDifficulty is the schema descriptor for difficulty field.
	itemDescDifficulty := itemFields[5].Descriptor()
	// item.DefaultDifficulty holds the default value on creation for the difficulty field.
	item.DefaultDifficulty = itemDescDifficulty.Default.(float64)
	// itemDescDiscrimination is the schema descriptor for discrimination field.
	itemDescDiscrimination := itemFields[6].Descriptor()
	// item.DefaultDiscrimination holds the default value on creation for the discrimination field.
	item.DefaultDiscrimination = itemDescDiscrimination.Default.(float64)
	// itemDescGuessing is the schema descriptor for guessing field.
	itemDescGuessing := itemFields[7].Descriptor()
	// item.DefaultGuessing holds the default value on creation for the guessing field.
	item.DefaultGuessing = itemDescGuessing.Default.(float64)
	// itemDescCalibrationSource is the schema descriptor for calibration_source field.
	itemDescCalibrationSource := itemFields[8].Descriptor()
	// item.DefaultCalibrationSource holds the default value on creation for the calibration_source field.
	item.DefaultCalibrationSource = itemDescCalibrationSource.Default.(string)
	// itemDescCalibrationSample is the schema descriptor for calibration_sample field.
	itemDescCalibrationSample := itemFields[9].Descriptor()
	// item.DefaultCalibrationSample holds the default value on creation for the calibration_sample field.
	item.DefaultCalibrationSample = itemDescCalibrationSample.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescSessionID is the schema descriptor for session_id field.
	responseeventDescSessionID := responseeventFields[0].Descriptor()
	// responseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	responseevent.SessionIDValidator = responseeventDescSessionID.Validators[0].(func(string) error)
	// responseeventDescItemID is the schema descriptor for item_id field.
	responseeventDescItemID := responseeventFields[1].Descriptor()
	// responseevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	responseevent.ItemIDValidator = responseeventDescItemID.Validators[0].(func(string) error)
	// responseeventDescDomain is the schema descriptor for domain field.
	responseeventDescDomain := responseeventFields[2].Descriptor()
	// responseevent.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	responseevent.DomainValidator = responseeventDescDomain.Validators[0].(func(string) error)
	// responseeventDescResponseMs is the schema descriptor for response_ms field.
	responseeventDescResponseMs := responseeventFields[5].Descriptor()
	// responseevent.DefaultResponseMs holds the default value on creation for the response_ms field.
	responseevent.DefaultResponseMs = responseeventDescResponseMs.Default.(int)
}
