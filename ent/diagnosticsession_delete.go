// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gauge/ent/diagnosticsession"
	"github.com/abhisek/gauge/ent/predicate"
)

// DiagnosticSessionDelete is the builder for deleting a DiagnosticSession entity.
type DiagnosticSessionDelete struct {
	config
	hooks    []Hook
	mutation *DiagnosticSessionMutation
}

// Where appends a list predicates to the DiagnosticSessionDelete builder.
func (_d *DiagnosticSessionDelete) Where(ps ...predicate.DiagnosticSession) *DiagnosticSessionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DiagnosticSessionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DiagnosticSessionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DiagnosticSessionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(diagnosticsession.Table, sqlgraph.NewFieldSpec(diagnosticsession.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DiagnosticSessionDeleteOne is the builder for deleting a single DiagnosticSession entity.
type DiagnosticSessionDeleteOne struct {
	_d *DiagnosticSessionDelete
}

// Where appends a list predicates to the DiagnosticSessionDelete builder.
func (_d *DiagnosticSessionDeleteOne) Where(ps ...predicate.DiagnosticSession) *DiagnosticSessionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DiagnosticSessionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{diagnosticsession.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DiagnosticSessionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
