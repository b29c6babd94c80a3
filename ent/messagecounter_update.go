// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tendersuite/tenderd/ent/messagecounter"
	"github.com/tendersuite/tenderd/ent/predicate"
)

// MessageCounterUpdate is the builder for updating MessageCounter entities.
type MessageCounterUpdate struct {
	config
	hooks    []Hook
	mutation *MessageCounterMutation
}

// Where appends a list predicates to the MessageCounterUpdate builder.
func (_u *MessageCounterUpdate) Where(ps ...predicate.MessageCounter) *MessageCounterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNextSeq sets the "next_seq" field.
func (_u *MessageCounterUpdate) SetNextSeq(v int64) *MessageCounterUpdate {
	_u.mutation.ResetNextSeq()
	_u.mutation.SetNextSeq(v)
	return _u
}

// SetNillableNextSeq sets the "next_seq" field if the given value is not nil.
func (_u *MessageCounterUpdate) SetNillableNextSeq(v *int64) *MessageCounterUpdate {
	if v != nil {
		_u.SetNextSeq(*v)
	}
	return _u
}

// AddNextSeq adds value to the "next_seq" field.
func (_u *MessageCounterUpdate) AddNextSeq(v int64) *MessageCounterUpdate {
	_u.mutation.AddNextSeq(v)
	return _u
}

// Mutation returns the MessageCounterMutation object of the builder.
func (_u *MessageCounterUpdate) Mutation() *MessageCounterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageCounterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageCounterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageCounterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageCounterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MessageCounterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(messagecounter.Table, messagecounter.Columns, sqlgraph.NewFieldSpec(messagecounter.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NextSeq(); ok {
		_spec.SetField(messagecounter.FieldNextSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNextSeq(); ok {
		_spec.AddField(messagecounter.FieldNextSeq, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagecounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageCounterUpdateOne is the builder for updating a single MessageCounter entity.
type MessageCounterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageCounterMutation
}

// SetNextSeq sets the "next_seq" field.
func (_u *MessageCounterUpdateOne) SetNextSeq(v int64) *MessageCounterUpdateOne {
	_u.mutation.ResetNextSeq()
	_u.mutation.SetNextSeq(v)
	return _u
}

// SetNillableNextSeq sets the "next_seq" field if the given value is not nil.
func (_u *MessageCounterUpdateOne) SetNillableNextSeq(v *int64) *MessageCounterUpdateOne {
	if v != nil {
		_u.SetNextSeq(*v)
	}
	return _u
}

// AddNextSeq adds value to the "next_seq" field.
func (_u *MessageCounterUpdateOne) AddNextSeq(v int64) *MessageCounterUpdateOne {
	_u.mutation.AddNextSeq(v)
	return _u
}

// Mutation returns the MessageCounterMutation object of the builder.
func (_u *MessageCounterUpdateOne) Mutation() *MessageCounterMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageCounterUpdate builder.
func (_u *MessageCounterUpdateOne) Where(ps ...predicate.MessageCounter) *MessageCounterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageCounterUpdateOne) Select(field string, fields ...string) *MessageCounterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MessageCounter entity.
func (_u *MessageCounterUpdateOne) Save(ctx context.Context) (*MessageCounter, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageCounterUpdateOne) SaveX(ctx context.Context) *MessageCounter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageCounterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageCounterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MessageCounterUpdateOne) sqlSave(ctx context.Context) (_node *MessageCounter, err error) {
	_spec := sqlgraph.NewUpdateSpec(messagecounter.Table, messagecounter.Columns, sqlgraph.NewFieldSpec(messagecounter.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MessageCounter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messagecounter.FieldID)
		for _, f := range fields {
			if !messagecounter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != messagecounter.FieldID {
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
	if value, ok := _u.mutation.NextSeq(); ok {
		_spec.SetField(messagecounter.FieldNextSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNextSeq(); ok {
		_spec.AddField(messagecounter.FieldNextSeq, field.TypeInt64, value)
	}
	_node = &MessageCounter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagecounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
