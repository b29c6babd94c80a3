// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tendersuite/tenderd/ent/messagecounter"
)

// MessageCounterCreate is the builder for creating a MessageCounter entity.
type MessageCounterCreate struct {
	config
	mutation *MessageCounterMutation
	hooks    []Hook
}

// SetNextSeq sets the "next_seq" field.
func (_c *MessageCounterCreate) SetNextSeq(v int64) *MessageCounterCreate {
	_c.mutation.SetNextSeq(v)
	return _c
}

// SetNillableNextSeq sets the "next_seq" field if the given value is not nil.
func (_c *MessageCounterCreate) SetNillableNextSeq(v *int64) *MessageCounterCreate {
	if v != nil {
		_c.SetNextSeq(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageCounterCreate) SetID(v string) *MessageCounterCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MessageCounterMutation object of the builder.
func (_c *MessageCounterCreate) Mutation() *MessageCounterMutation {
	return _c.mutation
}

// Save creates the MessageCounter in the database.
func (_c *MessageCounterCreate) Save(ctx context.Context) (*MessageCounter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageCounterCreate) SaveX(ctx context.Context) *MessageCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCounterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCounterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageCounterCreate) defaults() {
	if _, ok := _c.mutation.NextSeq(); !ok {
		v := messagecounter.DefaultNextSeq
		_c.mutation.SetNextSeq(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageCounterCreate) check() error {
	if _, ok := _c.mutation.NextSeq(); !ok {
		return &ValidationError{Name: "next_seq", err: errors.New(`ent: missing required field "MessageCounter.next_seq"`)}
	}
	return nil
}

func (_c *MessageCounterCreate) sqlSave(ctx context.Context) (*MessageCounter, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected MessageCounter.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageCounterCreate) createSpec() (*MessageCounter, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageCounter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(messagecounter.Table, sqlgraph.NewFieldSpec(messagecounter.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NextSeq(); ok {
		_spec.SetField(messagecounter.FieldNextSeq, field.TypeInt64, value)
		_node.NextSeq = value
	}
	return _node, _spec
}

// MessageCounterCreateBulk is the builder for creating many MessageCounter entities in bulk.
type MessageCounterCreateBulk struct {
	config
	err      error
	builders []*MessageCounterCreate
}

// Save creates the MessageCounter entities in the database.
func (_c *MessageCounterCreateBulk) Save(ctx context.Context) ([]*MessageCounter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MessageCounter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageCounterMutation)
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
func (_c *MessageCounterCreateBulk) SaveX(ctx context.Context) []*MessageCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCounterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCounterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
