// Code generated by ent, DO NOT EDIT.

package diagnosticsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the diagnosticsession type in the database.
	Label = "diagnostic_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldDiagnosticType holds the string denoting the diagnostic_type field in the database.
	FieldDiagnosticType = "diagnostic_type"
	// FieldMaxQuestions holds the string denoting the max_questions field in the database.
	FieldMaxQuestions = "max_questions"
	// FieldQuotas holds the string denoting the quotas field in the database.
	FieldQuotas = "quotas"
	// FieldFocusDomain holds the string denoting the focus_domain field in the database.
	FieldFocusDomain = "focus_domain"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTheta holds the string denoting the theta field in the database.
	FieldTheta = "theta"
	// FieldSe holds the string denoting the se field in the database.
	FieldSe = "se"
	// FieldDomainAbilities holds the string denoting the domain_abilities field in the database.
	FieldDomainAbilities = "domain_abilities"
	// FieldAdministered holds the string denoting the administered field in the database.
	FieldAdministered = "administered"
	// FieldPendingItemID holds the string denoting the pending_item_id field in the database.
	FieldPendingItemID = "pending_item_id"
	// FieldQuestionsAnswered holds the string denoting the questions_answered field in the database.
	FieldQuestionsAnswered = "questions_answered"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldTerminationReason holds the string denoting the termination_reason field in the database.
	FieldTerminationReason = "termination_reason"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastActivity holds the string denoting the last_activity field in the database.
	FieldLastActivity = "last_activity"
	// Table holds the table name of the diagnosticsession in the database.
	Table = "diagnostic_sessions"
)

// Columns holds all SQL columns for diagnosticsession fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldOwnerID,
	FieldDiagnosticType,
	FieldMaxQuestions,
	FieldQuotas,
	FieldFocusDomain,
	FieldStatus,
	FieldTheta,
	FieldSe,
	FieldDomainAbilities,
	FieldAdministered,
	FieldPendingItemID,
	FieldQuestionsAnswered,
	FieldCorrectAnswers,
	FieldTerminationReason,
	FieldStartedAt,
	FieldCompletedAt,
	FieldLastActivity,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	OwnerIDValidator func(string) error
	// DiagnosticTypeValidator is a validator for the "diagnostic_type" field. It is called by the builders before save.
	DiagnosticTypeValidator func(string) error
	// MaxQuestionsValidator is a validator for the "max_questions" field. It is called by the builders before save.
	MaxQuestionsValidator func(int) error
	// DefaultFocusDomain holds the default value on creation for the "focus_domain" field.
	DefaultFocusDomain string
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultTheta holds the default value on creation for the "theta" field.
	DefaultTheta float64
	// DefaultSe holds the default value on creation for the "se" field.
	DefaultSe float64
	// DefaultPendingItemID holds the default value on creation for the "pending_item_id" field.
	DefaultPendingItemID string
	// DefaultQuestionsAnswered holds the default value on creation for the "questions_answered" field.
	DefaultQuestionsAnswered int
	// DefaultCorrectAnswers holds the default value on creation for the "correct_answers" field.
	DefaultCorrectAnswers int
	// DefaultTerminationReason holds the default value on creation for the "termination_reason" field.
	DefaultTerminationReason string
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultLastActivity holds the default value on creation for the "last_activity" field.
	DefaultLastActivity func() time.Time
)

// OrderOption defines the ordering options for the DiagnosticSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByDiagnosticType orders the results by the diagnostic_type field.
func ByDiagnosticType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiagnosticType, opts...).ToFunc()
}

// ByMaxQuestions orders the results by the max_questions field.
func ByMaxQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxQuestions, opts...).ToFunc()
}

// ByFocusDomain orders the results by the focus_domain field.
func ByFocusDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFocusDomain, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTheta orders the results by the theta field.
func ByTheta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheta, opts...).ToFunc()
}

// BySe orders the results by the se field.
func BySe(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSe, opts...).ToFunc()
}

// ByPendingItemID orders the results by the pending_item_id field.
func ByPendingItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPendingItemID, opts...).ToFunc()
}

// ByQuestionsAnswered orders the results by the questions_answered field.
func ByQuestionsAnswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsAnswered, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// ByTerminationReason orders the results by the termination_reason field.
func ByTerminationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerminationReason, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastActivity orders the results by the last_activity field.
func ByLastActivity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivity, opts...).ToFunc()
}
