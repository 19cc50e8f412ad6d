// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DiagnosticSessionsColumns holds the columns for the "diagnostic_sessions" table.
	DiagnosticSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "diagnostic_type", Type: field.TypeString},
		{Name: "max_questions", Type: field.TypeInt},
		{Name: "quotas", Type: field.TypeJSON, Nullable: true},
		{Name: "focus_domain", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "theta", Type: field.TypeFloat64, Default: 0},
		{Name: "se", Type: field.TypeFloat64, Default: 1},
		{Name: "domain_abilities", Type: field.TypeJSON, Nullable: true},
		{Name: "administered", Type: field.TypeJSON, Nullable: true},
		{Name: "pending_item_id", Type: field.TypeString, Default: ""},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "termination_reason", Type: field.TypeString, Default: ""},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_activity", Type: field.TypeTime},
	}
	// DiagnosticSessionsTable holds the schema information for the "diagnostic_sessions" table.
	DiagnosticSessionsTable = &schema.Table{
		Name:       "diagnostic_sessions",
		Columns:    DiagnosticSessionsColumns,
		PrimaryKey: []*schema.Column{DiagnosticSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "diagnosticsession_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{DiagnosticSessionsColumns[2], DiagnosticSessionsColumns[7]},
			},
			{
				Name:    "diagnosticsession_status",
				Unique:  false,
				Columns: []*schema.Column{DiagnosticSessionsColumns[7]},
			},
		},
	}
	// ItemsColumns holds the columns for the "items" table.
	ItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "domain", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString},
		{Name: "options", Type: field.TypeJSON},
		{Name: "answer_index", Type: field.TypeInt},
		{Name: "difficulty", Type: field.TypeFloat64, Default: 0},
		{Name: "discrimination", Type: field.TypeFloat64, Default: 1},
		{Name: "guessing", Type: field.TypeFloat64, Default: 0.25},
		{Name: "calibration_source", Type: field.TypeString, Default: "default"},
		{Name: "calibration_sample", Type: field.TypeInt, Default: 0},
		{Name: "calibrated_at", Type: field.TypeTime, Nullable: true},
	}
	// ItemsTable holds the schema information for the "items" table.
	ItemsTable = &schema.Table{
		Name:       "items",
		Columns:    ItemsColumns,
		PrimaryKey: []*schema.Column{ItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "item_domain",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[2]},
			},
			{
				Name:    "item_calibration_source",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[9]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ResponseEventsColumns holds the columns for the "response_events" table.
	ResponseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString},
		{Name: "selected_option", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "response_ms", Type: field.TypeInt, Default: 0},
	}
	// ResponseEventsTable holds the schema information for the "response_events" table.
	ResponseEventsTable = &schema.Table{
		Name:       "response_events",
		Columns:    ResponseEventsColumns,
		PrimaryKey: []*schema.Column{ResponseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "responseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[1]},
			},
			{
				Name:    "responseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[2]},
			},
			{
				Name:    "responseevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[3]},
			},
			{
				Name:    "responseevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[4]},
			},
			{
				Name:    "responseevent_correct",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DiagnosticSessionsTable,
		ItemsTable,
		LlmRequestEventsTable,
		ResponseEventsTable,
	}
)

func init() {
}
