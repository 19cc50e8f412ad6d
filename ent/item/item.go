// Code generated by ent, DO NOT EDIT.

package item

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the item type in the database.
	Label = "item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldAnswerIndex holds the string denoting the answer_index field in the database.
	FieldAnswerIndex = "answer_index"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldDiscrimination holds the string denoting the discrimination field in the database.
	FieldDiscrimination = "discrimination"
	// FieldGuessing holds the string denoting the guessing field in the database.
	FieldGuessing = "guessing"
	// FieldCalibrationSource holds the string denoting the calibration_source field in the database.
	FieldCalibrationSource = "calibration_source"
	// FieldCalibrationSample holds the string denoting the calibration_sample field in the database.
	FieldCalibrationSample = "calibration_sample"
	// FieldCalibratedAt holds the string denoting the calibrated_at field in the database.
	FieldCalibratedAt = "calibrated_at"
	// Table holds the table name of the item in the database.
	Table = "items"
)

// Columns holds all SQL columns for item fields.
var Columns = []string{
	FieldID,
	FieldItemID,
	FieldDomain,
	FieldPrompt,
	FieldOptions,
	FieldAnswerIndex,
	FieldDifficulty,
	FieldDiscrimination,
	FieldGuessing,
	FieldCalibrationSource,
	FieldCalibrationSample,
	FieldCalibratedAt,
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
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	DomainValidator func(string) error
	// PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	PromptValidator func(string) error
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty float64
	// DefaultDiscrimination holds the default value on creation for the "discrimination" field.
	DefaultDiscrimination float64
	// DefaultGuessing holds the default value on creation for the "guessing" field.
	DefaultGuessing float64
	// DefaultCalibrationSource holds the default value on creation for the "calibration_source" field.
	DefaultCalibrationSource string
	// DefaultCalibrationSample holds the default value on creation for the "calibration_sample" field.
	DefaultCalibrationSample int
)

// OrderOption defines the ordering options for the Item queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByAnswerIndex orders the results by the answer_index field.
func ByAnswerIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerIndex, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByDiscrimination orders the results by the discrimination field.
func ByDiscrimination(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscrimination, opts...).ToFunc()
}

// ByGuessing orders the results by the guessing field.
func ByGuessing(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuessing, opts...).ToFunc()
}

// ByCalibrationSource orders the results by the calibration_source field.
func ByCalibrationSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalibrationSource, opts...).ToFunc()
}

// ByCalibrationSample orders the results by the calibration_sample field.
func ByCalibrationSample(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalibrationSample, opts...).ToFunc()
}

// ByCalibratedAt orders the results by the calibrated_at field.
func ByCalibratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalibratedAt, opts...).ToFunc()
}
