// Code generated by ent, DO NOT EDIT.

package diagnosticsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/gauge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldSessionID, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldOwnerID, v))
}

// DiagnosticType applies equality check predicate on the "diagnostic_type" field. It's identical to DiagnosticTypeEQ.
func DiagnosticType(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldDiagnosticType, v))
}

// MaxQuestions applies equality check predicate on the "max_questions" field. It's identical to MaxQuestionsEQ.
func MaxQuestions(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldMaxQuestions, v))
}

// FocusDomain applies equality check predicate on the "focus_domain" field. It's identical to FocusDomainEQ.
func FocusDomain(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldFocusDomain, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldStatus, v))
}

// Theta applies equality check predicate on the "theta" field. It's identical to ThetaEQ.
func Theta(v float64) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldTheta, v))
}

// Se applies equality check predicate on the "se" field. It's identical to SeEQ.
func Se(v float64) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldSe, v))
}

// PendingItemID applies equality check predicate on the "pending_item_id" field. It's identical to PendingItemIDEQ.
func PendingItemID(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldPendingItemID, v))
}

// QuestionsAnswered applies equality check predicate on the "questions_answered" field. It's identical to QuestionsAnsweredEQ.
func QuestionsAnswered(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldCorrectAnswers, v))
}

// TerminationReason applies equality check predicate on the "termination_reason" field. It's identical to TerminationReasonEQ.
func TerminationReason(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldTerminationReason, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldCompletedAt, v))
}

// LastActivity applies equality check predicate on the "last_activity" field. It's identical to LastActivityEQ.
func LastActivity(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldLastActivity, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldContainsFold(FieldSessionID, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldContainsFold(FieldOwnerID, v))
}

// DiagnosticTypeEQ applies the EQ predicate on the "diagnostic_type" field.
func DiagnosticTypeEQ(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldDiagnosticType, v))
}

// DiagnosticTypeNEQ applies the NEQ predicate on the "diagnostic_type" field.
func DiagnosticTypeNEQ(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNEQ(FieldDiagnosticType, v))
}

// DiagnosticTypeIn applies the In predicate on the "diagnostic_type" field.
func DiagnosticTypeIn(vs ...string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIn(FieldDiagnosticType, vs...))
}

// DiagnosticTypeNotIn applies the NotIn predicate on the "diagnostic_type" field.
func DiagnosticTypeNotIn(vs ...string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotIn(FieldDiagnosticType, vs...))
}

// DiagnosticTypeGT applies the GT predicate on the "diagnostic_type" field.
func DiagnosticTypeGT(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGT(FieldDiagnosticType, v))
}

// DiagnosticTypeGTE applies the GTE predicate on the "diagnostic_type" field.
func DiagnosticTypeGTE(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGTE(FieldDiagnosticType, v))
}

// DiagnosticTypeLT applies the LT predicate on the "diagnostic_type" field.
func DiagnosticTypeLT(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLT(FieldDiagnosticType, v))
}

// DiagnosticTypeLTE applies the LTE predicate on the "diagnostic_type" field.
func DiagnosticTypeLTE(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLTE(FieldDiagnosticType, v))
}

// DiagnosticTypeContains applies the Contains predicate on the "diagnostic_type" field.
func DiagnosticTypeContains(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldContains(FieldDiagnosticType, v))
}

// DiagnosticTypeHasPrefix applies the HasPrefix predicate on the "diagnostic_type" field.
func DiagnosticTypeHasPrefix(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldHasPrefix(FieldDiagnosticType, v))
}

// DiagnosticTypeHasSuffix applies the HasSuffix predicate on the "diagnostic_type" field.
func DiagnosticTypeHasSuffix(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldHasSuffix(FieldDiagnosticType, v))
}

// DiagnosticTypeEqualFold applies the EqualFold predicate on the "diagnostic_type" field.
func DiagnosticTypeEqualFold(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEqualFold(FieldDiagnosticType, v))
}

// DiagnosticTypeContainsFold applies the ContainsFold predicate on the "diagnostic_type" field.
func DiagnosticTypeContainsFold(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldContainsFold(FieldDiagnosticType, v))
}

// MaxQuestionsEQ applies the EQ predicate on the "max_questions" field.
func MaxQuestionsEQ(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldMaxQuestions, v))
}

// MaxQuestionsNEQ applies the NEQ predicate on the "max_questions" field.
func MaxQuestionsNEQ(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNEQ(FieldMaxQuestions, v))
}

// MaxQuestionsIn applies the In predicate on the "max_questions" field.
func MaxQuestionsIn(vs ...int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIn(FieldMaxQuestions, vs...))
}

// MaxQuestionsNotIn applies the NotIn predicate on the "max_questions" field.
func MaxQuestionsNotIn(vs ...int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotIn(FieldMaxQuestions, vs...))
}

// MaxQuestionsGT applies the GT predicate on the "max_questions" field.
func MaxQuestionsGT(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGT(FieldMaxQuestions, v))
}

// MaxQuestionsGTE applies the GTE predicate on the "max_questions" field.
func MaxQuestionsGTE(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGTE(FieldMaxQuestions, v))
}

// MaxQuestionsLT applies the LT predicate on the "max_questions" field.
func MaxQuestionsLT(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLT(FieldMaxQuestions, v))
}

// MaxQuestionsLTE applies the LTE predicate on the "max_questions" field.
func MaxQuestionsLTE(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLTE(FieldMaxQuestions, v))
}

// QuotasIsNil applies the IsNil predicate on the "quotas" field.
func QuotasIsNil() predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIsNull(FieldQuotas))
}

// QuotasNotNil applies the NotNil predicate on the "quotas" field.
func QuotasNotNil() predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotNull(FieldQuotas))
}

// FocusDomainEQ applies the EQ predicate on the "focus_domain" field.
func FocusDomainEQ(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldFocusDomain, v))
}

// FocusDomainNEQ applies the NEQ predicate on the "focus_domain" field.
func FocusDomainNEQ(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNEQ(FieldFocusDomain, v))
}

// FocusDomainIn applies the In predicate on the "focus_domain" field.
func FocusDomainIn(vs ...string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIn(FieldFocusDomain, vs...))
}

// FocusDomainNotIn applies the NotIn predicate on the "focus_domain" field.
func FocusDomainNotIn(vs ...string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotIn(FieldFocusDomain, vs...))
}

// FocusDomainGT applies the GT predicate on the "focus_domain" field.
func FocusDomainGT(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGT(FieldFocusDomain, v))
}

// FocusDomainGTE applies the GTE predicate on the "focus_domain" field.
func FocusDomainGTE(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGTE(FieldFocusDomain, v))
}

// FocusDomainLT applies the LT predicate on the "focus_domain" field.
func FocusDomainLT(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLT(FieldFocusDomain, v))
}

// FocusDomainLTE applies the LTE predicate on the "focus_domain" field.
func FocusDomainLTE(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLTE(FieldFocusDomain, v))
}

// FocusDomainContains applies the Contains predicate on the "focus_domain" field.
func FocusDomainContains(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldContains(FieldFocusDomain, v))
}

// FocusDomainHasPrefix applies the HasPrefix predicate on the "focus_domain" field.
func FocusDomainHasPrefix(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldHasPrefix(FieldFocusDomain, v))
}

// FocusDomainHasSuffix applies the HasSuffix predicate on the "focus_domain" field.
func FocusDomainHasSuffix(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldHasSuffix(FieldFocusDomain, v))
}

// FocusDomainEqualFold applies the EqualFold predicate on the "focus_domain" field.
func FocusDomainEqualFold(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEqualFold(FieldFocusDomain, v))
}

// FocusDomainContainsFold applies the ContainsFold predicate on the "focus_domain" field.
func FocusDomainContainsFold(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldContainsFold(FieldFocusDomain, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldContainsFold(FieldStatus, v))
}

// ThetaEQ applies the EQ predicate on the "theta" field.
func ThetaEQ(v float64) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldTheta, v))
}

// ThetaNEQ applies the NEQ predicate on the "theta" field.
func ThetaNEQ(v float64) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNEQ(FieldTheta, v))
}

// ThetaIn applies the In predicate on the "theta" field.
func ThetaIn(vs ...float64) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIn(FieldTheta, vs...))
}

// ThetaNotIn applies the NotIn predicate on the "theta" field.
func ThetaNotIn(vs ...float64) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotIn(FieldTheta, vs...))
}

// ThetaGT applies the GT predicate on the "theta" field.
func ThetaGT(v float64) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGT(FieldTheta, v))
}

// ThetaGTE applies the GTE predicate on the "theta" field.
func ThetaGTE(v float64) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGTE(FieldTheta, v))
}

// ThetaLT applies the LT predicate on the "theta" field.
func ThetaLT(v float64) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLT(FieldTheta, v))
}

// ThetaLTE applies the LTE predicate on the "theta" field.
func ThetaLTE(v float64) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLTE(FieldTheta, v))
}

// SeEQ applies the EQ predicate on the "se" field.
func SeEQ(v float64) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldSe, v))
}

// SeNEQ applies the NEQ predicate on the "se" field.
func SeNEQ(v float64) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNEQ(FieldSe, v))
}

// SeIn applies the In predicate on the "se" field.
func SeIn(vs ...float64) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIn(FieldSe, vs...))
}

// SeNotIn applies the NotIn predicate on the "se" field.
func SeNotIn(vs ...float64) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotIn(FieldSe, vs...))
}

// SeGT applies the GT predicate on the "se" field.
func SeGT(v float64) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGT(FieldSe, v))
}

// SeGTE applies the GTE predicate on the "se" field.
func SeGTE(v float64) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGTE(FieldSe, v))
}

// SeLT applies the LT predicate on the "se" field.
func SeLT(v float64) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLT(FieldSe, v))
}

// SeLTE applies the LTE predicate on the "se" field.
func SeLTE(v float64) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLTE(FieldSe, v))
}

// DomainAbilitiesIsNil applies the IsNil predicate on the "domain_abilities" field.
func DomainAbilitiesIsNil() predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIsNull(FieldDomainAbilities))
}

// DomainAbilitiesNotNil applies the NotNil predicate on the "domain_abilities" field.
func DomainAbilitiesNotNil() predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotNull(FieldDomainAbilities))
}

// AdministeredIsNil applies the IsNil predicate on the "administered" field.
func AdministeredIsNil() predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIsNull(FieldAdministered))
}

// AdministeredNotNil applies the NotNil predicate on the "administered" field.
func AdministeredNotNil() predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotNull(FieldAdministered))
}

// PendingItemIDEQ applies the EQ predicate on the "pending_item_id" field.
func PendingItemIDEQ(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldPendingItemID, v))
}

// PendingItemIDNEQ applies the NEQ predicate on the "pending_item_id" field.
func PendingItemIDNEQ(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNEQ(FieldPendingItemID, v))
}

// PendingItemIDIn applies the In predicate on the "pending_item_id" field.
func PendingItemIDIn(vs ...string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIn(FieldPendingItemID, vs...))
}

// PendingItemIDNotIn applies the NotIn predicate on the "pending_item_id" field.
func PendingItemIDNotIn(vs ...string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotIn(FieldPendingItemID, vs...))
}

// PendingItemIDGT applies the GT predicate on the "pending_item_id" field.
func PendingItemIDGT(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGT(FieldPendingItemID, v))
}

// PendingItemIDGTE applies the GTE predicate on the "pending_item_id" field.
func PendingItemIDGTE(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGTE(FieldPendingItemID, v))
}

// PendingItemIDLT applies the LT predicate on the "pending_item_id" field.
func PendingItemIDLT(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLT(FieldPendingItemID, v))
}

// PendingItemIDLTE applies the LTE predicate on the "pending_item_id" field.
func PendingItemIDLTE(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLTE(FieldPendingItemID, v))
}

// PendingItemIDContains applies the Contains predicate on the "pending_item_id" field.
func PendingItemIDContains(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldContains(FieldPendingItemID, v))
}

// PendingItemIDHasPrefix applies the HasPrefix predicate on the "pending_item_id" field.
func PendingItemIDHasPrefix(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldHasPrefix(FieldPendingItemID, v))
}

// PendingItemIDHasSuffix applies the HasSuffix predicate on the "pending_item_id" field.
func PendingItemIDHasSuffix(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldHasSuffix(FieldPendingItemID, v))
}

// PendingItemIDEqualFold applies the EqualFold predicate on the "pending_item_id" field.
func PendingItemIDEqualFold(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEqualFold(FieldPendingItemID, v))
}

// PendingItemIDContainsFold applies the ContainsFold predicate on the "pending_item_id" field.
func PendingItemIDContainsFold(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldContainsFold(FieldPendingItemID, v))
}

// QuestionsAnsweredEQ applies the EQ predicate on the "questions_answered" field.
func QuestionsAnsweredEQ(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredNEQ applies the NEQ predicate on the "questions_answered" field.
func QuestionsAnsweredNEQ(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredIn applies the In predicate on the "questions_answered" field.
func QuestionsAnsweredIn(vs ...int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredNotIn applies the NotIn predicate on the "questions_answered" field.
func QuestionsAnsweredNotIn(vs ...int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredGT applies the GT predicate on the "questions_answered" field.
func QuestionsAnsweredGT(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredGTE applies the GTE predicate on the "questions_answered" field.
func QuestionsAnsweredGTE(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGTE(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLT applies the LT predicate on the "questions_answered" field.
func QuestionsAnsweredLT(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLTE applies the LTE predicate on the "questions_answered" field.
func QuestionsAnsweredLTE(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLTE(FieldQuestionsAnswered, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLTE(FieldCorrectAnswers, v))
}

// TerminationReasonEQ applies the EQ predicate on the "termination_reason" field.
func TerminationReasonEQ(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldTerminationReason, v))
}

// TerminationReasonNEQ applies the NEQ predicate on the "termination_reason" field.
func TerminationReasonNEQ(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNEQ(FieldTerminationReason, v))
}

// TerminationReasonIn applies the In predicate on the "termination_reason" field.
func TerminationReasonIn(vs ...string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIn(FieldTerminationReason, vs...))
}

// TerminationReasonNotIn applies the NotIn predicate on the "termination_reason" field.
func TerminationReasonNotIn(vs ...string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotIn(FieldTerminationReason, vs...))
}

// TerminationReasonGT applies the GT predicate on the "termination_reason" field.
func TerminationReasonGT(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGT(FieldTerminationReason, v))
}

// TerminationReasonGTE applies the GTE predicate on the "termination_reason" field.
func TerminationReasonGTE(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGTE(FieldTerminationReason, v))
}

// TerminationReasonLT applies the LT predicate on the "termination_reason" field.
func TerminationReasonLT(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLT(FieldTerminationReason, v))
}

// TerminationReasonLTE applies the LTE predicate on the "termination_reason" field.
func TerminationReasonLTE(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLTE(FieldTerminationReason, v))
}

// TerminationReasonContains applies the Contains predicate on the "termination_reason" field.
func TerminationReasonContains(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldContains(FieldTerminationReason, v))
}

// TerminationReasonHasPrefix applies the HasPrefix predicate on the "termination_reason" field.
func TerminationReasonHasPrefix(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldHasPrefix(FieldTerminationReason, v))
}

// TerminationReasonHasSuffix applies the HasSuffix predicate on the "termination_reason" field.
func TerminationReasonHasSuffix(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldHasSuffix(FieldTerminationReason, v))
}

// TerminationReasonEqualFold applies the EqualFold predicate on the "termination_reason" field.
func TerminationReasonEqualFold(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEqualFold(FieldTerminationReason, v))
}

// TerminationReasonContainsFold applies the ContainsFold predicate on the "termination_reason" field.
func TerminationReasonContainsFold(v string) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldContainsFold(FieldTerminationReason, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotNull(FieldCompletedAt))
}

// LastActivityEQ applies the EQ predicate on the "last_activity" field.
func LastActivityEQ(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldEQ(FieldLastActivity, v))
}

// LastActivityNEQ applies the NEQ predicate on the "last_activity" field.
func LastActivityNEQ(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNEQ(FieldLastActivity, v))
}

// LastActivityIn applies the In predicate on the "last_activity" field.
func LastActivityIn(vs ...time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldIn(FieldLastActivity, vs...))
}

// LastActivityNotIn applies the NotIn predicate on the "last_activity" field.
func LastActivityNotIn(vs ...time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldNotIn(FieldLastActivity, vs...))
}

// LastActivityGT applies the GT predicate on the "last_activity" field.
func LastActivityGT(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGT(FieldLastActivity, v))
}

// LastActivityGTE applies the GTE predicate on the "last_activity" field.
func LastActivityGTE(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldGTE(FieldLastActivity, v))
}

// LastActivityLT applies the LT predicate on the "last_activity" field.
func LastActivityLT(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLT(FieldLastActivity, v))
}

// LastActivityLTE applies the LTE predicate on the "last_activity" field.
func LastActivityLTE(v time.Time) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.FieldLTE(FieldLastActivity, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DiagnosticSession) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DiagnosticSession) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DiagnosticSession) predicate.DiagnosticSession {
	return predicate.DiagnosticSession(sql.NotPredicates(p))
}
