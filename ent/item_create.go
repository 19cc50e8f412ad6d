// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gauge/ent/item"
)

// ItemCreate is the builder for creating a Item entity.
type ItemCreate struct {
	config
	mutation *ItemMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *ItemCreate) SetItemID(v string) *ItemCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *ItemCreate) SetDomain(v string) *ItemCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *ItemCreate) SetPrompt(v string) *ItemCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *ItemCreate) SetOptions(v []string) *ItemCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetAnswerIndex sets the "answer_index" field.
func (_c *ItemCreate) SetAnswerIndex(v int) *ItemCreate {
	_c.mutation.SetAnswerIndex(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ItemCreate) SetDifficulty(v float64) *ItemCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *ItemCreate) SetNillableDifficulty(v *float64) *ItemCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetDiscrimination sets the "discrimination" field.
func (_c *ItemCreate) SetDiscrimination(v float64) *ItemCreate {
	_c.mutation.SetDiscrimination(v)
	return _c
}

// SetNillableDiscrimination sets the "discrimination" field if the given value is not nil.
func (_c *ItemCreate) SetNillableDiscrimination(v *float64) *ItemCreate {
	if v != nil {
		_c.SetDiscrimination(*v)
	}
	return _c
}

// SetGuessing sets the "guessing" field.
func (_c *ItemCreate) SetGuessing(v float64) *ItemCreate {
	_c.mutation.SetGuessing(v)
	return _c
}

// SetNillableGuessing sets the "guessing" field if the given value is not nil.
func (_c *ItemCreate) SetNillableGuessing(v *float64) *ItemCreate {
	if v != nil {
		_c.SetGuessing(*v)
	}
	return _c
}

// SetCalibrationSource sets the "calibration_source" field.
func (_c *ItemCreate) SetCalibrationSource(v string) *ItemCreate {
	_c.mutation.SetCalibrationSource(v)
	return _c
}

// SetNillableCalibrationSource sets the "calibration_source" field if the given value is not nil.
func (_c *ItemCreate) SetNillableCalibrationSource(v *string) *ItemCreate {
	if v != nil {
		_c.SetCalibrationSource(*v)
	}
	return _c
}

// SetCalibrationSample sets the "calibration_sample" field.
func (_c *ItemCreate) SetCalibrationSample(v int) *ItemCreate {
	_c.mutation.SetCalibrationSample(v)
	return _c
}

// SetNillableCalibrationSample sets the "calibration_sample" field if the given value is not nil.
func (_c *ItemCreate) SetNillableCalibrationSample(v *int) *ItemCreate {
	if v != nil {
		_c.SetCalibrationSample(*v)
	}
	return _c
}

// SetCalibratedAt sets the "calibrated_at" field.
func (_c *ItemCreate) SetCalibratedAt(v time.Time) *ItemCreate {
	_c.mutation.SetCalibratedAt(v)
	return _c
}

// SetNillableCalibratedAt sets the "calibrated_at" field if the given value is not nil.
func (_c *ItemCreate) SetNillableCalibratedAt(v *time.Time) *ItemCreate {
	if v != nil {
		_c.SetCalibratedAt(*v)
	}
	return _c
}

// Mutation returns the ItemMutation object of the builder.
func (_c *ItemCreate) Mutation() *ItemMutation {
	return _c.mutation
}

// Save creates the Item in the database.
func (_c *ItemCreate) Save(ctx context.Context) (*Item, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemCreate) SaveX(ctx context.Context) *Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemCreate) defaults() {
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := item.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.Discrimination(); !ok {
		v := item.DefaultDiscrimination
		_c.mutation.SetDiscrimination(v)
	}
	if _, ok := _c.mutation.Guessing(); !ok {
		v := item.DefaultGuessing
		_c.mutation.SetGuessing(v)
	}
	if _, ok := _c.mutation.CalibrationSource(); !ok {
		v := item.DefaultCalibrationSource
		_c.mutation.SetCalibrationSource(v)
	}
	if _, ok := _c.mutation.CalibrationSample(); !ok {
		v := item.DefaultCalibrationSample
		_c.mutation.SetCalibrationSample(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "Item.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := item.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Item.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "Item.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := item.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Item.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Item.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := item.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Item.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Options(); !ok {
		return &ValidationError{Name: "options", err: errors.New(`ent: missing required field "Item.options"`)}
	}
	if _, ok := _c.mutation.AnswerIndex(); !ok {
		return &ValidationError{Name: "answer_index", err: errors.New(`ent: missing required field "Item.answer_index"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Item.difficulty"`)}
	}
	if _, ok := _c.mutation.Discrimination(); !ok {
		return &ValidationError{Name: "discrimination", err: errors.New(`ent: missing required field "Item.discrimination"`)}
	}
	if _, ok := _c.mutation.Guessing(); !ok {
		return &ValidationError{Name: "guessing", err: errors.New(`ent: missing required field "Item.guessing"`)}
	}
	if _, ok := _c.mutation.CalibrationSource(); !ok {
		return &ValidationError{Name: "calibration_source", err: errors.New(`ent: missing required field "Item.calibration_source"`)}
	}
	if _, ok := _c.mutation.CalibrationSample(); !ok {
		return &ValidationError{Name: "calibration_sample", err: errors.New(`ent: missing required field "Item.calibration_sample"`)}
	}
	return nil
}

func (_c *ItemCreate) sqlSave(ctx context.Context) (*Item, error) {
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

func (_c *ItemCreate) createSpec() (*Item, *sqlgraph.CreateSpec) {
	var (
		_node = &Item{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(item.Table, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(item.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(item.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(item.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(item.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.AnswerIndex(); ok {
		_spec.SetField(item.FieldAnswerIndex, field.TypeInt, value)
		_node.AnswerIndex = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(item.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Discrimination(); ok {
		_spec.SetField(item.FieldDiscrimination, field.TypeFloat64, value)
		_node.Discrimination = value
	}
	if value, ok := _c.mutation.Guessing(); ok {
		_spec.SetField(item.FieldGuessing, field.TypeFloat64, value)
		_node.Guessing = value
	}
	if value, ok := _c.mutation.CalibrationSource(); ok {
		_spec.SetField(item.FieldCalibrationSource, field.TypeString, value)
		_node.CalibrationSource = value
	}
	if value, ok := _c.mutation.CalibrationSample(); ok {
		_spec.SetField(item.FieldCalibrationSample, field.TypeInt, value)
		_node.CalibrationSample = value
	}
	if value, ok := _c.mutation.CalibratedAt(); ok {
		_spec.SetField(item.FieldCalibratedAt, field.TypeTime, value)
		_node.CalibratedAt = &value
	}
	return _node, _spec
}

// ItemCreateBulk is the builder for creating many Item entities in bulk.
type ItemCreateBulk struct {
	config
	err      error
	builders []*ItemCreate
}

// Save creates the Item entities in the database.
func (_c *ItemCreateBulk) Save(ctx context.Context) ([]*Item, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Item, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemMutation)
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
func (_c *ItemCreateBulk) SaveX(ctx context.Context) []*Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
