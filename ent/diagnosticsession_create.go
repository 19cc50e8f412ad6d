// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gauge/ent/diagnosticsession"
	"github.com/abhisek/gauge/ent/schema"
)

// DiagnosticSessionCreate is the builder for creating a DiagnosticSession entity.
type DiagnosticSessionCreate struct {
	config
	mutation *DiagnosticSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *DiagnosticSessionCreate) SetSessionID(v string) *DiagnosticSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *DiagnosticSessionCreate) SetOwnerID(v string) *DiagnosticSessionCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetDiagnosticType sets the "diagnostic_type" field.
func (_c *DiagnosticSessionCreate) SetDiagnosticType(v string) *DiagnosticSessionCreate {
	_c.mutation.SetDiagnosticType(v)
	return _c
}

// SetMaxQuestions sets the "max_questions" field.
func (_c *DiagnosticSessionCreate) SetMaxQuestions(v int) *DiagnosticSessionCreate {
	_c.mutation.SetMaxQuestions(v)
	return _c
}

// SetQuotas sets the "quotas" field.
func (_c *DiagnosticSessionCreate) SetQuotas(v map[string]int) *DiagnosticSessionCreate {
	_c.mutation.SetQuotas(v)
	return _c
}

// SetFocusDomain sets the "focus_domain" field.
func (_c *DiagnosticSessionCreate) SetFocusDomain(v string) *DiagnosticSessionCreate {
	_c.mutation.SetFocusDomain(v)
	return _c
}

// SetNillableFocusDomain sets the "focus_domain" field if the given value is not nil.
func (_c *DiagnosticSessionCreate) SetNillableFocusDomain(v *string) *DiagnosticSessionCreate {
	if v != nil {
		_c.SetFocusDomain(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DiagnosticSessionCreate) SetStatus(v string) *DiagnosticSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DiagnosticSessionCreate) SetNillableStatus(v *string) *DiagnosticSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTheta sets the "theta" field.
func (_c *DiagnosticSessionCreate) SetTheta(v float64) *DiagnosticSessionCreate {
	_c.mutation.SetTheta(v)
	return _c
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_c *DiagnosticSessionCreate) SetNillableTheta(v *float64) *DiagnosticSessionCreate {
	if v != nil {
		_c.SetTheta(*v)
	}
	return _c
}

// SetSe sets the "se" field.
func (_c *DiagnosticSessionCreate) SetSe(v float64) *DiagnosticSessionCreate {
	_c.mutation.SetSe(v)
	return _c
}

// SetNillableSe sets the "se" field if the given value is not nil.
func (_c *DiagnosticSessionCreate) SetNillableSe(v *float64) *DiagnosticSessionCreate {
	if v != nil {
		_c.SetSe(*v)
	}
	return _c
}

// SetDomainAbilities sets the "domain_abilities" field.
func (_c *DiagnosticSessionCreate) SetDomainAbilities(v map[string]schema.DomainAbilityData) *DiagnosticSessionCreate {
	_c.mutation.SetDomainAbilities(v)
	return _c
}

// SetAdministered sets the "administered" field.
func (_c *DiagnosticSessionCreate) SetAdministered(v []string) *DiagnosticSessionCreate {
	_c.mutation.SetAdministered(v)
	return _c
}

// SetPendingItemID sets the "pending_item_id" field.
func (_c *DiagnosticSessionCreate) SetPendingItemID(v string) *DiagnosticSessionCreate {
	_c.mutation.SetPendingItemID(v)
	return _c
}

// SetNillablePendingItemID sets the "pending_item_id" field if the given value is not nil.
func (_c *DiagnosticSessionCreate) SetNillablePendingItemID(v *string) *DiagnosticSessionCreate {
	if v != nil {
		_c.SetPendingItemID(*v)
	}
	return _c
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_c *DiagnosticSessionCreate) SetQuestionsAnswered(v int) *DiagnosticSessionCreate {
	_c.mutation.SetQuestionsAnswered(v)
	return _c
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_c *DiagnosticSessionCreate) SetNillableQuestionsAnswered(v *int) *DiagnosticSessionCreate {
	if v != nil {
		_c.SetQuestionsAnswered(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *DiagnosticSessionCreate) SetCorrectAnswers(v int) *DiagnosticSessionCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *DiagnosticSessionCreate) SetNillableCorrectAnswers(v *int) *DiagnosticSessionCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetTerminationReason sets the "termination_reason" field.
func (_c *DiagnosticSessionCreate) SetTerminationReason(v string) *DiagnosticSessionCreate {
	_c.mutation.SetTerminationReason(v)
	return _c
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_c *DiagnosticSessionCreate) SetNillableTerminationReason(v *string) *DiagnosticSessionCreate {
	if v != nil {
		_c.SetTerminationReason(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *DiagnosticSessionCreate) SetStartedAt(v time.Time) *DiagnosticSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *DiagnosticSessionCreate) SetNillableStartedAt(v *time.Time) *DiagnosticSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *DiagnosticSessionCreate) SetCompletedAt(v time.Time) *DiagnosticSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *DiagnosticSessionCreate) SetNillableCompletedAt(v *time.Time) *DiagnosticSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastActivity sets the "last_activity" field.
func (_c *DiagnosticSessionCreate) SetLastActivity(v time.Time) *DiagnosticSessionCreate {
	_c.mutation.SetLastActivity(v)
	return _c
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_c *DiagnosticSessionCreate) SetNillableLastActivity(v *time.Time) *DiagnosticSessionCreate {
	if v != nil {
		_c.SetLastActivity(*v)
	}
	return _c
}

// Mutation returns the DiagnosticSessionMutation object of the builder.
func (_c *DiagnosticSessionCreate) Mutation() *DiagnosticSessionMutation {
	return _c.mutation
}

// Save creates the DiagnosticSession in the database.
func (_c *DiagnosticSessionCreate) Save(ctx context.Context) (*DiagnosticSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiagnosticSessionCreate) SaveX(ctx context.Context) *DiagnosticSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosticSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosticSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiagnosticSessionCreate) defaults() {
	if _, ok := _c.mutation.FocusDomain(); !ok {
		v := diagnosticsession.DefaultFocusDomain
		_c.mutation.SetFocusDomain(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := diagnosticsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Theta(); !ok {
		v := diagnosticsession.DefaultTheta
		_c.mutation.SetTheta(v)
	}
	if _, ok := _c.mutation.Se(); !ok {
		v := diagnosticsession.DefaultSe
		_c.mutation.SetSe(v)
	}
	if _, ok := _c.mutation.PendingItemID(); !ok {
		v := diagnosticsession.DefaultPendingItemID
		_c.mutation.SetPendingItemID(v)
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		v := diagnosticsession.DefaultQuestionsAnswered
		_c.mutation.SetQuestionsAnswered(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := diagnosticsession.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.TerminationReason(); !ok {
		v := diagnosticsession.DefaultTerminationReason
		_c.mutation.SetTerminationReason(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := diagnosticsession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		v := diagnosticsession.DefaultLastActivity()
		_c.mutation.SetLastActivity(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiagnosticSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "DiagnosticSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := diagnosticsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosticSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "DiagnosticSession.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := diagnosticsession.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosticSession.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DiagnosticType(); !ok {
		return &ValidationError{Name: "diagnostic_type", err: errors.New(`ent: missing required field "DiagnosticSession.diagnostic_type"`)}
	}
	if v, ok := _c.mutation.DiagnosticType(); ok {
		if err := diagnosticsession.DiagnosticTypeValidator(v); err != nil {
			return &ValidationError{Name: "diagnostic_type", err: fmt.Errorf(`ent: validator failed for field "DiagnosticSession.diagnostic_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxQuestions(); !ok {
		return &ValidationError{Name: "max_questions", err: errors.New(`ent: missing required field "DiagnosticSession.max_questions"`)}
	}
	if v, ok := _c.mutation.MaxQuestions(); ok {
		if err := diagnosticsession.MaxQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "max_questions", err: fmt.Errorf(`ent: validator failed for field "DiagnosticSession.max_questions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FocusDomain(); !ok {
		return &ValidationError{Name: "focus_domain", err: errors.New(`ent: missing required field "DiagnosticSession.focus_domain"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DiagnosticSession.status"`)}
	}
	if _, ok := _c.mutation.Theta(); !ok {
		return &ValidationError{Name: "theta", err: errors.New(`ent: missing required field "DiagnosticSession.theta"`)}
	}
	if _, ok := _c.mutation.Se(); !ok {
		return &ValidationError{Name: "se", err: errors.New(`ent: missing required field "DiagnosticSession.se"`)}
	}
	if _, ok := _c.mutation.PendingItemID(); !ok {
		return &ValidationError{Name: "pending_item_id", err: errors.New(`ent: missing required field "DiagnosticSession.pending_item_id"`)}
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		return &ValidationError{Name: "questions_answered", err: errors.New(`ent: missing required field "DiagnosticSession.questions_answered"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "DiagnosticSession.correct_answers"`)}
	}
	if _, ok := _c.mutation.TerminationReason(); !ok {
		return &ValidationError{Name: "termination_reason", err: errors.New(`ent: missing required field "DiagnosticSession.termination_reason"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "DiagnosticSession.started_at"`)}
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		return &ValidationError{Name: "last_activity", err: errors.New(`ent: missing required field "DiagnosticSession.last_activity"`)}
	}
	return nil
}

func (_c *DiagnosticSessionCreate) sqlSave(ctx context.Context) (*DiagnosticSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DiagnosticSessionCreate) createSpec() (*DiagnosticSession, *sqlgraph.CreateSpec) {
	var (
		_node = &DiagnosticSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(diagnosticsession.Table, sqlgraph.NewFieldSpec(diagnosticsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(diagnosticsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(diagnosticsession.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.DiagnosticType(); ok {
		_spec.SetField(diagnosticsession.FieldDiagnosticType, field.TypeString, value)
		_node.DiagnosticType = value
	}
	if value, ok := _c.mutation.MaxQuestions(); ok {
		_spec.SetField(diagnosticsession.FieldMaxQuestions, field.TypeInt, value)
		_node.MaxQuestions = value
	}
	if value, ok := _c.mutation.Quotas(); ok {
		_spec.SetField(diagnosticsession.FieldQuotas, field.TypeJSON, value)
		_node.Quotas = value
	}
	if value, ok := _c.mutation.FocusDomain(); ok {
		_spec.SetField(diagnosticsession.FieldFocusDomain, field.TypeString, value)
		_node.FocusDomain = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(diagnosticsession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Theta(); ok {
		_spec.SetField(diagnosticsession.FieldTheta, field.TypeFloat64, value)
		_node.Theta = value
	}
	if value, ok := _c.mutation.Se(); ok {
		_spec.SetField(diagnosticsession.FieldSe, field.TypeFloat64, value)
		_node.Se = value
	}
	if value, ok := _c.mutation.DomainAbilities(); ok {
		_spec.SetField(diagnosticsession.FieldDomainAbilities, field.TypeJSON, value)
		_node.DomainAbilities = value
	}
	if value, ok := _c.mutation.Administered(); ok {
		_spec.SetField(diagnosticsession.FieldAdministered, field.TypeJSON, value)
		_node.Administered = value
	}
	if value, ok := _c.mutation.PendingItemID(); ok {
		_spec.SetField(diagnosticsession.FieldPendingItemID, field.TypeString, value)
		_node.PendingItemID = value
	}
	if value, ok := _c.mutation.QuestionsAnswered(); ok {
		_spec.SetField(diagnosticsession.FieldQuestionsAnswered, field.TypeInt, value)
		_node.QuestionsAnswered = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(diagnosticsession.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.TerminationReason(); ok {
		_spec.SetField(diagnosticsession.FieldTerminationReason, field.TypeString, value)
		_node.TerminationReason = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(diagnosticsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(diagnosticsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastActivity(); ok {
		_spec.SetField(diagnosticsession.FieldLastActivity, field.TypeTime, value)
		_node.LastActivity = value
	}
	return _node, _spec
}

// DiagnosticSessionCreateBulk is the builder for creating many DiagnosticSession entities in bulk.
type DiagnosticSessionCreateBulk struct {
	config
	err      error
	builders []*DiagnosticSessionCreate
}

// Save creates the DiagnosticSession entities in the database.
func (_c *DiagnosticSessionCreateBulk) Save(ctx context.Context) ([]*DiagnosticSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DiagnosticSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiagnosticSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DiagnosticSessionCreateBulk) SaveX(ctx context.Context) []*DiagnosticSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosticSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosticSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
