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
	"github.com/abhisek/gauge/ent/item"
	"github.com/abhisek/gauge/ent/predicate"
)

// ItemUpdate is the builder for updating Item entities.
type ItemUpdate struct {
	config
	hooks    []Hook
	mutation *ItemMutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdate) Where(ps ...predicate.Item) *ItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ItemUpdate) SetItemID(v string) *ItemUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableItemID(v *string) *ItemUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *ItemUpdate) SetDomain(v string) *ItemUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableDomain(v *string) *ItemUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ItemUpdate) SetPrompt(v string) *ItemUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ItemUpdate) SetNillablePrompt(v *string) *ItemUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *ItemUpdate) SetOptions(v []string) *ItemUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *ItemUpdate) AppendOptions(v []string) *ItemUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// SetAnswerIndex sets the "answer_index" field.
func (_u *ItemUpdate) SetAnswerIndex(v int) *ItemUpdate {
	_u.mutation.ResetAnswerIndex()
	_u.mutation.SetAnswerIndex(v)
	return _u
}

// SetNillableAnswerIndex sets the "answer_index" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableAnswerIndex(v *int) *ItemUpdate {
	if v != nil {
		_u.SetAnswerIndex(*v)
	}
	return _u
}

// AddAnswerIndex adds value to the "answer_index" field.
func (_u *ItemUpdate) AddAnswerIndex(v int) *ItemUpdate {
	_u.mutation.AddAnswerIndex(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ItemUpdate) SetDifficulty(v float64) *ItemUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableDifficulty(v *float64) *ItemUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ItemUpdate) AddDifficulty(v float64) *ItemUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetDiscrimination sets the "discrimination" field.
func (_u *ItemUpdate) SetDiscrimination(v float64) *ItemUpdate {
	_u.mutation.ResetDiscrimination()
	_u.mutation.SetDiscrimination(v)
	return _u
}

// SetNillableDiscrimination sets the "discrimination" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableDiscrimination(v *float64) *ItemUpdate {
	if v != nil {
		_u.SetDiscrimination(*v)
	}
	return _u
}

// AddDiscrimination adds value to the "discrimination" field.
func (_u *ItemUpdate) AddDiscrimination(v float64) *ItemUpdate {
	_u.mutation.AddDiscrimination(v)
	return _u
}

// SetGuessing sets the "guessing" field.
func (_u *ItemUpdate) SetGuessing(v float64) *ItemUpdate {
	_u.mutation.ResetGuessing()
	_u.mutation.SetGuessing(v)
	return _u
}

// SetNillableGuessing sets the "guessing" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableGuessing(v *float64) *ItemUpdate {
	if v != nil {
		_u.SetGuessing(*v)
	}
	return _u
}

// AddGuessing adds value to the "guessing" field.
func (_u *ItemUpdate) AddGuessing(v float64) *ItemUpdate {
	_u.mutation.AddGuessing(v)
	return _u
}

// SetCalibrationSource sets the "calibration_source" field.
func (_u *ItemUpdate) SetCalibrationSource(v string) *ItemUpdate {
	_u.mutation.SetCalibrationSource(v)
	return _u
}

// SetNillableCalibrationSource sets the "calibration_source" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableCalibrationSource(v *string) *ItemUpdate {
	if v != nil {
		_u.SetCalibrationSource(*v)
	}
	return _u
}

// SetCalibrationSample sets the "calibration_sample" field.
func (_u *ItemUpdate) SetCalibrationSample(v int) *ItemUpdate {
	_u.mutation.ResetCalibrationSample()
	_u.mutation.SetCalibrationSample(v)
	return _u
}

// SetNillableCalibrationSample sets the "calibration_sample" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableCalibrationSample(v *int) *ItemUpdate {
	if v != nil {
		_u.SetCalibrationSample(*v)
	}
	return _u
}

// AddCalibrationSample adds value to the "calibration_sample" field.
func (_u *ItemUpdate) AddCalibrationSample(v int) *ItemUpdate {
	_u.mutation.AddCalibrationSample(v)
	return _u
}

// SetCalibratedAt sets the "calibrated_at" field.
func (_u *ItemUpdate) SetCalibratedAt(v time.Time) *ItemUpdate {
	_u.mutation.SetCalibratedAt(v)
	return _u
}

// SetNillableCalibratedAt sets the "calibrated_at" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableCalibratedAt(v *time.Time) *ItemUpdate {
	if v != nil {
		_u.SetCalibratedAt(*v)
	}
	return _u
}

// ClearCalibratedAt clears the value of the "calibrated_at" field.
func (_u *ItemUpdate) ClearCalibratedAt() *ItemUpdate {
	_u.mutation.ClearCalibratedAt()
	return _u
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdate) Mutation() *ItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := item.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Item.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := item.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Item.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := item.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Item.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(item.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(item.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(item.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(item.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldOptions, value)
		})
	}
	if value, ok := _u.mutation.AnswerIndex(); ok {
		_spec.SetField(item.FieldAnswerIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswerIndex(); ok {
		_spec.AddField(item.FieldAnswerIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(item.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(item.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Discrimination(); ok {
		_spec.SetField(item.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscrimination(); ok {
		_spec.AddField(item.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Guessing(); ok {
		_spec.SetField(item.FieldGuessing, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGuessing(); ok {
		_spec.AddField(item.FieldGuessing, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CalibrationSource(); ok {
		_spec.SetField(item.FieldCalibrationSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.CalibrationSample(); ok {
		_spec.SetField(item.FieldCalibrationSample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCalibrationSample(); ok {
		_spec.AddField(item.FieldCalibrationSample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CalibratedAt(); ok {
		_spec.SetField(item.FieldCalibratedAt, field.TypeTime, value)
	}
	if _u.mutation.CalibratedAtCleared() {
		_spec.ClearField(item.FieldCalibratedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemUpdateOne is the builder for updating a single Item entity.
type ItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemMutation
}

// SetItemID sets the "item_id" field.
func (_u *ItemUpdateOne) SetItemID(v string) *ItemUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableItemID(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *ItemUpdateOne) SetDomain(v string) *ItemUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableDomain(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ItemUpdateOne) SetPrompt(v string) *ItemUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillablePrompt(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *ItemUpdateOne) SetOptions(v []string) *ItemUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *ItemUpdateOne) AppendOptions(v []string) *ItemUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// SetAnswerIndex sets the "answer_index" field.
func (_u *ItemUpdateOne) SetAnswerIndex(v int) *ItemUpdateOne {
	_u.mutation.ResetAnswerIndex()
	_u.mutation.SetAnswerIndex(v)
	return _u
}

// SetNillableAnswerIndex sets the "answer_index" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableAnswerIndex(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetAnswerIndex(*v)
	}
	return _u
}

// AddAnswerIndex adds value to the "answer_index" field.
func (_u *ItemUpdateOne) AddAnswerIndex(v int) *ItemUpdateOne {
	_u.mutation.AddAnswerIndex(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ItemUpdateOne) SetDifficulty(v float64) *ItemUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableDifficulty(v *float64) *ItemUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ItemUpdateOne) AddDifficulty(v float64) *ItemUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetDiscrimination sets the "discrimination" field.
func (_u *ItemUpdateOne) SetDiscrimination(v float64) *ItemUpdateOne {
	_u.mutation.ResetDiscrimination()
	_u.mutation.SetDiscrimination(v)
	return _u
}

// SetNillableDiscrimination sets the "discrimination" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableDiscrimination(v *float64) *ItemUpdateOne {
	if v != nil {
		_u.SetDiscrimination(*v)
	}
	return _u
}

// AddDiscrimination adds value to the "discrimination" field.
func (_u *ItemUpdateOne) AddDiscrimination(v float64) *ItemUpdateOne {
	_u.mutation.AddDiscrimination(v)
	return _u
}

// SetGuessing sets the "guessing" field.
func (_u *ItemUpdateOne) SetGuessing(v float64) *ItemUpdateOne {
	_u.mutation.ResetGuessing()
	_u.mutation.SetGuessing(v)
	return _u
}

// SetNillableGuessing sets the "guessing" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableGuessing(v *float64) *ItemUpdateOne {
	if v != nil {
		_u.SetGuessing(*v)
	}
	return _u
}

// AddGuessing adds value to the "guessing" field.
func (_u *ItemUpdateOne) AddGuessing(v float64) *ItemUpdateOne {
	_u.mutation.AddGuessing(v)
	return _u
}

// SetCalibrationSource sets the "calibration_source" field.
func (_u *ItemUpdateOne) SetCalibrationSource(v string) *ItemUpdateOne {
	_u.mutation.SetCalibrationSource(v)
	return _u
}

// SetNillableCalibrationSource sets the "calibration_source" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableCalibrationSource(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetCalibrationSource(*v)
	}
	return _u
}

// SetCalibrationSample sets the "calibration_sample" field.
func (_u *ItemUpdateOne) SetCalibrationSample(v int) *ItemUpdateOne {
	_u.mutation.ResetCalibrationSample()
	_u.mutation.SetCalibrationSample(v)
	return _u
}

// SetNillableCalibrationSample sets the "calibration_sample" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableCalibrationSample(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetCalibrationSample(*v)
	}
	return _u
}

// AddCalibrationSample adds value to the "calibration_sample" field.
func (_u *ItemUpdateOne) AddCalibrationSample(v int) *ItemUpdateOne {
	_u.mutation.AddCalibrationSample(v)
	return _u
}

// SetCalibratedAt sets the "calibrated_at" field.
func (_u *ItemUpdateOne) SetCalibratedAt(v time.Time) *ItemUpdateOne {
	_u.mutation.SetCalibratedAt(v)
	return _u
}

// SetNillableCalibratedAt sets the "calibrated_at" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableCalibratedAt(v *time.Time) *ItemUpdateOne {
	if v != nil {
		_u.SetCalibratedAt(*v)
	}
	return _u
}

// ClearCalibratedAt clears the value of the "calibrated_at" field.
func (_u *ItemUpdateOne) ClearCalibratedAt() *ItemUpdateOne {
	_u.mutation.ClearCalibratedAt()
	return _u
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdateOne) Mutation() *ItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdateOne) Where(ps ...predicate.Item) *ItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemUpdateOne) Select(field string, fields ...string) *ItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Item entity.
func (_u *ItemUpdateOne) Save(ctx context.Context) (*Item, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdateOne) SaveX(ctx context.Context) *Item {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := item.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Item.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := item.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Item.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := item.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Item.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdateOne) sqlSave(ctx context.Context) (_node *Item, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Item.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, item.FieldID)
		for _, f := range fields {
			if !item.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != item.FieldID {
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
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(item.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(item.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(item.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(item.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldOptions, value)
		})
	}
	if value, ok := _u.mutation.AnswerIndex(); ok {
		_spec.SetField(item.FieldAnswerIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswerIndex(); ok {
		_spec.AddField(item.FieldAnswerIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(item.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(item.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Discrimination(); ok {
		_spec.SetField(item.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscrimination(); ok {
		_spec.AddField(item.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Guessing(); ok {
		_spec.SetField(item.FieldGuessing, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGuessing(); ok {
		_spec.AddField(item.FieldGuessing, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CalibrationSource(); ok {
		_spec.SetField(item.FieldCalibrationSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.CalibrationSample(); ok {
		_spec.SetField(item.FieldCalibrationSample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCalibrationSample(); ok {
		_spec.AddField(item.FieldCalibrationSample, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CalibratedAt(); ok {
		_spec.SetField(item.FieldCalibratedAt, field.TypeTime, value)
	}
	if _u.mutation.CalibratedAtCleared() {
		_spec.ClearField(item.FieldCalibratedAt, field.TypeTime)
	}
	_node = &Item{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
