// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gauge/ent/diagnosticsession"
	"github.com/abhisek/gauge/ent/predicate"
	"github.com/abhisek/gauge/ent/schema"
)

// DiagnosticSessionUpdate is the builder for updating DiagnosticSession entities.
type DiagnosticSessionUpdate struct {
	config
	hooks    []Hook
	mutation *DiagnosticSessionMutation
}

// Where appends a list predicates to the DiagnosticSessionUpdate builder.
func (_u *DiagnosticSessionUpdate) Where(ps ...predicate.DiagnosticSession) *DiagnosticSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DiagnosticSessionUpdate) SetSessionID(v string) *DiagnosticSessionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DiagnosticSessionUpdate) SetNillableSessionID(v *string) *DiagnosticSessionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *DiagnosticSessionUpdate) SetOwnerID(v string) *DiagnosticSessionUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *DiagnosticSessionUpdate) SetNillableOwnerID(v *string) *DiagnosticSessionUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetDiagnosticType sets the "diagnostic_type" field.
func (_u *DiagnosticSessionUpdate) SetDiagnosticType(v string) *DiagnosticSessionUpdate {
	_u.mutation.SetDiagnosticType(v)
	return _u
}

// SetNillableDiagnosticType sets the "diagnostic_type" field if the given value is not nil.
func (_u *DiagnosticSessionUpdate) SetNillableDiagnosticType(v *string) *DiagnosticSessionUpdate {
	if v != nil {
		_u.SetDiagnosticType(*v)
	}
	return _u
}

// SetMaxQuestions sets the "max_questions" field.
func (_u *DiagnosticSessionUpdate) SetMaxQuestions(v int) *DiagnosticSessionUpdate {
	_u.mutation.ResetMaxQuestions()
	_u.mutation.SetMaxQuestions(v)
	return _u
}

// SetNillableMaxQuestions sets the "max_questions" field if the given value is not nil.
func (_u *DiagnosticSessionUpdate) SetNillableMaxQuestions(v *int) *DiagnosticSessionUpdate {
	if v != nil {
		_u.SetMaxQuestions(*v)
	}
	return _u
}

// AddMaxQuestions adds value to the "max_questions" field.
func (_u *DiagnosticSessionUpdate) AddMaxQuestions(v int) *DiagnosticSessionUpdate {
	_u.mutation.AddMaxQuestions(v)
	return _u
}

// SetQuotas sets the "quotas" field.
func (_u *DiagnosticSessionUpdate) SetQuotas(v map[string]int) *DiagnosticSessionUpdate {
	_u.mutation.SetQuotas(v)
	return _u
}

// ClearQuotas clears the value of the "quotas" field.
func (_u *DiagnosticSessionUpdate) ClearQuotas() *DiagnosticSessionUpdate {
	_u.mutation.ClearQuotas()
	return _u
}

// SetFocusDomain sets the "focus_domain" field.
func (_u *DiagnosticSessionUpdate) SetFocusDomain(v string) *DiagnosticSessionUpdate {
	_u.mutation.SetFocusDomain(v)
	return _u
}

// SetNillableFocusDomain sets the "focus_domain" field if the given value is not nil.
func (_u *DiagnosticSessionUpdate) SetNillableFocusDomain(v *string) *DiagnosticSessionUpdate {
	if v != nil {
		_u.SetFocusDomain(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DiagnosticSessionUpdate) SetStatus(v string) *DiagnosticSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DiagnosticSessionUpdate) SetNillableStatus(v *string) *DiagnosticSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTheta sets the "theta" field.
func (_u *DiagnosticSessionUpdate) SetTheta(v float64) *DiagnosticSessionUpdate {
	_u.mutation.ResetTheta()
	_u.mutation.SetTheta(v)
	return _u
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_u *DiagnosticSessionUpdate) SetNillableTheta(v *float64) *DiagnosticSessionUpdate {
	if v != nil {
		_u.SetTheta(*v)
	}
	return _u
}

// AddTheta adds value to the "theta" field.
func (_u *DiagnosticSessionUpdate) AddTheta(v float64) *DiagnosticSessionUpdate {
	_u.mutation.AddTheta(v)
	return _u
}

// SetSe sets the "se" field.
func (_u *DiagnosticSessionUpdate) SetSe(v float64) *DiagnosticSessionUpdate {
	_u.mutation.ResetSe()
	_u.mutation.SetSe(v)
	return _u
}

// SetNillableSe sets the "se" field if the given value is not nil.
func (_u *DiagnosticSessionUpdate) SetNillableSe(v *float64) *DiagnosticSessionUpdate {
	if v != nil {
		_u.SetSe(*v)
	}
	return _u
}

// AddSe adds value to the "se" field.
func (_u *DiagnosticSessionUpdate) AddSe(v float64) *DiagnosticSessionUpdate {
	_u.mutation.AddSe(v)
	return _u
}

// SetDomainAbilities sets the "domain_abilities" field.
func (_u *DiagnosticSessionUpdate) SetDomainAbilities(v map[string]schema.DomainAbilityData) *DiagnosticSessionUpdate {
	_u.mutation.SetDomainAbilities(v)
	return _u
}

// ClearDomainAbilities clears the value of the "domain_abilities" field.
func (_u *DiagnosticSessionUpdate) ClearDomainAbilities() *DiagnosticSessionUpdate {
	_u.mutation.ClearDomainAbilities()
	return _u
}

// SetAdministered sets the "administered" field.
func (_u *DiagnosticSessionUpdate) SetAdministered(v []string) *DiagnosticSessionUpdate {
	_u.mutation.SetAdministered(v)
	return _u
}

// AppendAdministered appends value to the "administered" field.
func (_u *DiagnosticSessionUpdate) AppendAdministered(v []string) *DiagnosticSessionUpdate {
	_u.mutation.AppendAdministered(v)
	return _u
}

// ClearAdministered clears the value of the "administered" field.
func (_u *DiagnosticSessionUpdate) ClearAdministered() *DiagnosticSessionUpdate {
	_u.mutation.ClearAdministered()
	return _u
}

// SetPendingItemID sets the "pending_item_id" field.
func (_u *DiagnosticSessionUpdate) SetPendingItemID(v string) *DiagnosticSessionUpdate {
	_u.mutation.SetPendingItemID(v)
	return _u
}

// SetNillablePendingItemID sets the "pending_item_id" field if the given value is not nil.
func (_u *DiagnosticSessionUpdate) SetNillablePendingItemID(v *string) *DiagnosticSessionUpdate {
	if v != nil {
		_u.SetPendingItemID(*v)
	}
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *DiagnosticSessionUpdate) SetQuestionsAnswered(v int) *DiagnosticSessionUpdate {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *DiagnosticSessionUpdate) SetNillableQuestionsAnswered(v *int) *DiagnosticSessionUpdate {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *DiagnosticSessionUpdate) AddQuestionsAnswered(v int) *DiagnosticSessionUpdate {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *DiagnosticSessionUpdate) SetCorrectAnswers(v int) *DiagnosticSessionUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *DiagnosticSessionUpdate) SetNillableCorrectAnswers(v *int) *DiagnosticSessionUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *DiagnosticSessionUpdate) AddCorrectAnswers(v int) *DiagnosticSessionUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetTerminationReason sets the "termination_reason" field.
func (_u *DiagnosticSessionUpdate) SetTerminationReason(v string) *DiagnosticSessionUpdate {
	_u.mutation.SetTerminationReason(v)
	return _u
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_u *DiagnosticSessionUpdate) SetNillableTerminationReason(v *string) *DiagnosticSessionUpdate {
	if v != nil {
		_u.SetTerminationReason(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DiagnosticSessionUpdate) SetCompletedAt(v time.Time) *DiagnosticSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DiagnosticSessionUpdate) SetNillableCompletedAt(v *time.Time) *DiagnosticSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DiagnosticSessionUpdate) ClearCompletedAt() *DiagnosticSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *DiagnosticSessionUpdate) SetLastActivity(v time.Time) *DiagnosticSessionUpdate {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *DiagnosticSessionUpdate) SetNillableLastActivity(v *time.Time) *DiagnosticSessionUpdate {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// Mutation returns the DiagnosticSessionMutation object of the builder.
func (_u *DiagnosticSessionUpdate) Mutation() *DiagnosticSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiagnosticSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosticSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiagnosticSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosticSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosticSessionUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := diagnosticsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosticSession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := diagnosticsession.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosticSession.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DiagnosticType(); ok {
		if err := diagnosticsession.DiagnosticTypeValidator(v); err != nil {
			return &ValidationError{Name: "diagnostic_type", err: fmt.Errorf(`ent: validator failed for field "DiagnosticSession.diagnostic_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxQuestions(); ok {
		if err := diagnosticsession.MaxQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "max_questions", err: fmt.Errorf(`ent: validator failed for field "DiagnosticSession.max_questions": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosticSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosticsession.Table, diagnosticsession.Columns, sqlgraph.NewFieldSpec(diagnosticsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(diagnosticsession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(diagnosticsession.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiagnosticType(); ok {
		_spec.SetField(diagnosticsession.FieldDiagnosticType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxQuestions(); ok {
		_spec.SetField(diagnosticsession.FieldMaxQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxQuestions(); ok {
		_spec.AddField(diagnosticsession.FieldMaxQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Quotas(); ok {
		_spec.SetField(diagnosticsession.FieldQuotas, field.TypeJSON, value)
	}
	if _u.mutation.QuotasCleared() {
		_spec.ClearField(diagnosticsession.FieldQuotas, field.TypeJSON)
	}
	if value, ok := _u.mutation.FocusDomain(); ok {
		_spec.SetField(diagnosticsession.FieldFocusDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(diagnosticsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theta(); ok {
		_spec.SetField(diagnosticsession.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheta(); ok {
		_spec.AddField(diagnosticsession.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Se(); ok {
		_spec.SetField(diagnosticsession.FieldSe, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSe(); ok {
		_spec.AddField(diagnosticsession.FieldSe, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DomainAbilities(); ok {
		_spec.SetField(diagnosticsession.FieldDomainAbilities, field.TypeJSON, value)
	}
	if _u.mutation.DomainAbilitiesCleared() {
		_spec.ClearField(diagnosticsession.FieldDomainAbilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Administered(); ok {
		_spec.SetField(diagnosticsession.FieldAdministered, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAdministered(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diagnosticsession.FieldAdministered, value)
		})
	}
	if _u.mutation.AdministeredCleared() {
		_spec.ClearField(diagnosticsession.FieldAdministered, field.TypeJSON)
	}
	if value, ok := _u.mutation.PendingItemID(); ok {
		_spec.SetField(diagnosticsession.FieldPendingItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(diagnosticsession.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(diagnosticsession.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(diagnosticsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(diagnosticsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TerminationReason(); ok {
		_spec.SetField(diagnosticsession.FieldTerminationReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(diagnosticsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(diagnosticsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(diagnosticsession.FieldLastActivity, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosticsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiagnosticSessionUpdateOne is the builder for updating a single DiagnosticSession entity.
type DiagnosticSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiagnosticSessionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *DiagnosticSessionUpdateOne) SetSessionID(v string) *DiagnosticSessionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DiagnosticSessionUpdateOne) SetNillableSessionID(v *string) *DiagnosticSessionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *DiagnosticSessionUpdateOne) SetOwnerID(v string) *DiagnosticSessionUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *DiagnosticSessionUpdateOne) SetNillableOwnerID(v *string) *DiagnosticSessionUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetDiagnosticType sets the "diagnostic_type" field.
func (_u *DiagnosticSessionUpdateOne) SetDiagnosticType(v string) *DiagnosticSessionUpdateOne {
	_u.mutation.SetDiagnosticType(v)
	return _u
}

// SetNillableDiagnosticType sets the "diagnostic_type" field if the given value is not nil.
func (_u *DiagnosticSessionUpdateOne) SetNillableDiagnosticType(v *string) *DiagnosticSessionUpdateOne {
	if v != nil {
		_u.SetDiagnosticType(*v)
	}
	return _u
}

// SetMaxQuestions sets the "max_questions" field.
func (_u *DiagnosticSessionUpdateOne) SetMaxQuestions(v int) *DiagnosticSessionUpdateOne {
	_u.mutation.ResetMaxQuestions()
	_u.mutation.SetMaxQuestions(v)
	return _u
}

// SetNillableMaxQuestions sets the "max_questions" field if the given value is not nil.
func (_u *DiagnosticSessionUpdateOne) SetNillableMaxQuestions(v *int) *DiagnosticSessionUpdateOne {
	if v != nil {
		_u.SetMaxQuestions(*v)
	}
	return _u
}

// AddMaxQuestions adds value to the "max_questions" field.
func (_u *DiagnosticSessionUpdateOne) AddMaxQuestions(v int) *DiagnosticSessionUpdateOne {
	_u.mutation.AddMaxQuestions(v)
	return _u
}

// SetQuotas sets the "quotas" field.
func (_u *DiagnosticSessionUpdateOne) SetQuotas(v map[string]int) *DiagnosticSessionUpdateOne {
	_u.mutation.SetQuotas(v)
	return _u
}

// ClearQuotas clears the value of the "quotas" field.
func (_u *DiagnosticSessionUpdateOne) ClearQuotas() *DiagnosticSessionUpdateOne {
	_u.mutation.ClearQuotas()
	return _u
}

// SetFocusDomain sets the "focus_domain" field.
func (_u *DiagnosticSessionUpdateOne) SetFocusDomain(v string) *DiagnosticSessionUpdateOne {
	_u.mutation.SetFocusDomain(v)
	return _u
}

// SetNillableFocusDomain sets the "focus_domain" field if the given value is not nil.
func (_u *DiagnosticSessionUpdateOne) SetNillableFocusDomain(v *string) *DiagnosticSessionUpdateOne {
	if v != nil {
		_u.SetFocusDomain(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DiagnosticSessionUpdateOne) SetStatus(v string) *DiagnosticSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DiagnosticSessionUpdateOne) SetNillableStatus(v *string) *DiagnosticSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTheta sets the "theta" field.
func (_u *DiagnosticSessionUpdateOne) SetTheta(v float64) *DiagnosticSessionUpdateOne {
	_u.mutation.ResetTheta()
	_u.mutation.SetTheta(v)
	return _u
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_u *DiagnosticSessionUpdateOne) SetNillableTheta(v *float64) *DiagnosticSessionUpdateOne {
	if v != nil {
		_u.SetTheta(*v)
	}
	return _u
}

// AddTheta adds value to the "theta" field.
func (_u *DiagnosticSessionUpdateOne) AddTheta(v float64) *DiagnosticSessionUpdateOne {
	_u.mutation.AddTheta(v)
	return _u
}

// SetSe sets the "se" field.
func (_u *DiagnosticSessionUpdateOne) SetSe(v float64) *DiagnosticSessionUpdateOne {
	_u.mutation.ResetSe()
	_u.mutation.SetSe(v)
	return _u
}

// SetNillableSe sets the "se" field if the given value is not nil.
func (_u *DiagnosticSessionUpdateOne) SetNillableSe(v *float64) *DiagnosticSessionUpdateOne {
	if v != nil {
		_u.SetSe(*v)
	}
	return _u
}

// AddSe adds value to the "se" field.
func (_u *DiagnosticSessionUpdateOne) AddSe(v float64) *DiagnosticSessionUpdateOne {
	_u.mutation.AddSe(v)
	return _u
}

// SetDomainAbilities sets the "domain_abilities" field.
func (_u *DiagnosticSessionUpdateOne) SetDomainAbilities(v map[string]schema.DomainAbilityData) *DiagnosticSessionUpdateOne {
	_u.mutation.SetDomainAbilities(v)
	return _u
}

// ClearDomainAbilities clears the value of the "domain_abilities" field.
func (_u *DiagnosticSessionUpdateOne) ClearDomainAbilities() *DiagnosticSessionUpdateOne {
	_u.mutation.ClearDomainAbilities()
	return _u
}

// SetAdministered sets the "administered" field.
func (_u *DiagnosticSessionUpdateOne) SetAdministered(v []string) *DiagnosticSessionUpdateOne {
	_u.mutation.SetAdministered(v)
	return _u
}

// AppendAdministered appends value to the "administered" field.
func (_u *DiagnosticSessionUpdateOne) AppendAdministered(v []string) *DiagnosticSessionUpdateOne {
	_u.mutation.AppendAdministered(v)
	return _u
}

// ClearAdministered clears the value of the "administered" field.
func (_u *DiagnosticSessionUpdateOne) ClearAdministered() *DiagnosticSessionUpdateOne {
	_u.mutation.ClearAdministered()
	return _u
}

// SetPendingItemID sets the "pending_item_id" field.
func (_u *DiagnosticSessionUpdateOne) SetPendingItemID(v string) *DiagnosticSessionUpdateOne {
	_u.mutation.SetPendingItemID(v)
	return _u
}

// SetNillablePendingItemID sets the "pending_item_id" field if the given value is not nil.
func (_u *DiagnosticSessionUpdateOne) SetNillablePendingItemID(v *string) *DiagnosticSessionUpdateOne {
	if v != nil {
		_u.SetPendingItemID(*v)
	}
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *DiagnosticSessionUpdateOne) SetQuestionsAnswered(v int) *DiagnosticSessionUpdateOne {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *DiagnosticSessionUpdateOne) SetNillableQuestionsAnswered(v *int) *DiagnosticSessionUpdateOne {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *DiagnosticSessionUpdateOne) AddQuestionsAnswered(v int) *DiagnosticSessionUpdateOne {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *DiagnosticSessionUpdateOne) SetCorrectAnswers(v int) *DiagnosticSessionUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *DiagnosticSessionUpdateOne) SetNillableCorrectAnswers(v *int) *DiagnosticSessionUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *DiagnosticSessionUpdateOne) AddCorrectAnswers(v int) *DiagnosticSessionUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetTerminationReason sets the "termination_reason" field.
func (_u *DiagnosticSessionUpdateOne) SetTerminationReason(v string) *DiagnosticSessionUpdateOne {
	_u.mutation.SetTerminationReason(v)
	return _u
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_u *DiagnosticSessionUpdateOne) SetNillableTerminationReason(v *string) *DiagnosticSessionUpdateOne {
	if v != nil {
		_u.SetTerminationReason(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DiagnosticSessionUpdateOne) SetCompletedAt(v time.Time) *DiagnosticSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DiagnosticSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *DiagnosticSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DiagnosticSessionUpdateOne) ClearCompletedAt() *DiagnosticSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *DiagnosticSessionUpdateOne) SetLastActivity(v time.Time) *DiagnosticSessionUpdateOne {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *DiagnosticSessionUpdateOne) SetNillableLastActivity(v *time.Time) *DiagnosticSessionUpdateOne {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// Mutation returns the DiagnosticSessionMutation object of the builder.
func (_u *DiagnosticSessionUpdateOne) Mutation() *DiagnosticSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiagnosticSessionUpdate builder.
func (_u *DiagnosticSessionUpdateOne) Where(ps ...predicate.DiagnosticSession) *DiagnosticSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiagnosticSessionUpdateOne) Select(field string, fields ...string) *DiagnosticSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiagnosticSession entity.
func (_u *DiagnosticSessionUpdateOne) Save(ctx context.Context) (*DiagnosticSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosticSessionUpdateOne) SaveX(ctx context.Context) *DiagnosticSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiagnosticSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosticSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosticSessionUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := diagnosticsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosticSession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := diagnosticsession.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosticSession.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DiagnosticType(); ok {
		if err := diagnosticsession.DiagnosticTypeValidator(v); err != nil {
			return &ValidationError{Name: "diagnostic_type", err: fmt.Errorf(`ent: validator failed for field "DiagnosticSession.diagnostic_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxQuestions(); ok {
		if err := diagnosticsession.MaxQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "max_questions", err: fmt.Errorf(`ent: validator failed for field "DiagnosticSession.max_questions": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosticSessionUpdateOne) sqlSave(ctx context.Context) (_node *DiagnosticSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosticsession.Table, diagnosticsession.Columns, sqlgraph.NewFieldSpec(diagnosticsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DiagnosticSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagnosticsession.FieldID)
		for _, f := range fields {
			if !diagnosticsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != diagnosticsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(diagnosticsession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(diagnosticsession.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiagnosticType(); ok {
		_spec.SetField(diagnosticsession.FieldDiagnosticType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxQuestions(); ok {
		_spec.SetField(diagnosticsession.FieldMaxQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxQuestions(); ok {
		_spec.AddField(diagnosticsession.FieldMaxQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Quotas(); ok {
		_spec.SetField(diagnosticsession.FieldQuotas, field.TypeJSON, value)
	}
	if _u.mutation.QuotasCleared() {
		_spec.ClearField(diagnosticsession.FieldQuotas, field.TypeJSON)
	}
	if value, ok := _u.mutation.FocusDomain(); ok {
		_spec.SetField(diagnosticsession.FieldFocusDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(diagnosticsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theta(); ok {
		_spec.SetField(diagnosticsession.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheta(); ok {
		_spec.AddField(diagnosticsession.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Se(); ok {
		_spec.SetField(diagnosticsession.FieldSe, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSe(); ok {
		_spec.AddField(diagnosticsession.FieldSe, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DomainAbilities(); ok {
		_spec.SetField(diagnosticsession.FieldDomainAbilities, field.TypeJSON, value)
	}
	if _u.mutation.DomainAbilitiesCleared() {
		_spec.ClearField(diagnosticsession.FieldDomainAbilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Administered(); ok {
		_spec.SetField(diagnosticsession.FieldAdministered, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAdministered(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diagnosticsession.FieldAdministered, value)
		})
	}
	if _u.mutation.AdministeredCleared() {
		_spec.ClearField(diagnosticsession.FieldAdministered, field.TypeJSON)
	}
	if value, ok := _u.mutation.PendingItemID(); ok {
		_spec.SetField(diagnosticsession.FieldPendingItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(diagnosticsession.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(diagnosticsession.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(diagnosticsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(diagnosticsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TerminationReason(); ok {
		_spec.SetField(diagnosticsession.FieldTerminationReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(diagnosticsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(diagnosticsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(diagnosticsession.FieldLastActivity, field.TypeTime, value)
	}
	_node = &DiagnosticSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosticsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
