// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/messagetoolresult"
)

// MessageToolResultCreate is the builder for creating a MessageToolResult entity.
type MessageToolResultCreate struct {
	config
	mutation *MessageToolResultMutation
	hooks    []Hook
}

// SetMessageID sets the "message_id" field.
func (mtrc *MessageToolResultCreate) SetMessageID(u uuid.UUID) *MessageToolResultCreate {
	mtrc.mutation.SetMessageID(u)
	return mtrc
}

// SetToolName sets the "tool_name" field.
func (mtrc *MessageToolResultCreate) SetToolName(s string) *MessageToolResultCreate {
	mtrc.mutation.SetToolName(s)
	return mtrc
}

// SetCallSequence sets the "call_sequence" field.
func (mtrc *MessageToolResultCreate) SetCallSequence(i int) *MessageToolResultCreate {
	mtrc.mutation.SetCallSequence(i)
	return mtrc
}

// SetToolInput sets the "tool_input" field.
func (mtrc *MessageToolResultCreate) SetToolInput(s string) *MessageToolResultCreate {
	mtrc.mutation.SetToolInput(s)
	return mtrc
}

// SetToolOutput sets the "tool_output" field.
func (mtrc *MessageToolResultCreate) SetToolOutput(s string) *MessageToolResultCreate {
	mtrc.mutation.SetToolOutput(s)
	return mtrc
}

// SetNillableToolOutput sets the "tool_output" field if the given value is not nil.
func (mtrc *MessageToolResultCreate) SetNillableToolOutput(s *string) *MessageToolResultCreate {
	if s != nil {
		mtrc.SetToolOutput(*s)
	}
	return mtrc
}

// SetStatus sets the "status" field.
func (mtrc *MessageToolResultCreate) SetStatus(s string) *MessageToolResultCreate {
	mtrc.mutation.SetStatus(s)
	return mtrc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (mtrc *MessageToolResultCreate) SetNillableStatus(s *string) *MessageToolResultCreate {
	if s != nil {
		mtrc.SetStatus(*s)
	}
	return mtrc
}

// SetErrorMessage sets the "error_message" field.
func (mtrc *MessageToolResultCreate) SetErrorMessage(s string) *MessageToolResultCreate {
	mtrc.mutation.SetErrorMessage(s)
	return mtrc
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (mtrc *MessageToolResultCreate) SetNillableErrorMessage(s *string) *MessageToolResultCreate {
	if s != nil {
		mtrc.SetErrorMessage(*s)
	}
	return mtrc
}

// SetCreatedAt sets the "created_at" field.
func (mtrc *MessageToolResultCreate) SetCreatedAt(t time.Time) *MessageToolResultCreate {
	mtrc.mutation.SetCreatedAt(t)
	return mtrc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (mtrc *MessageToolResultCreate) SetNillableCreatedAt(t *time.Time) *MessageToolResultCreate {
	if t != nil {
		mtrc.SetCreatedAt(*t)
	}
	return mtrc
}

// SetUpdatedAt sets the "updated_at" field.
func (mtrc *MessageToolResultCreate) SetUpdatedAt(t time.Time) *MessageToolResultCreate {
	mtrc.mutation.SetUpdatedAt(t)
	return mtrc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (mtrc *MessageToolResultCreate) SetNillableUpdatedAt(t *time.Time) *MessageToolResultCreate {
	if t != nil {
		mtrc.SetUpdatedAt(*t)
	}
	return mtrc
}

// SetID sets the "id" field.
func (mtrc *MessageToolResultCreate) SetID(u uuid.UUID) *MessageToolResultCreate {
	mtrc.mutation.SetID(u)
	return mtrc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (mtrc *MessageToolResultCreate) SetNillableID(u *uuid.UUID) *MessageToolResultCreate {
	if u != nil {
		mtrc.SetID(*u)
	}
	return mtrc
}

// Mutation returns the MessageToolResultMutation object of the builder.
func (mtrc *MessageToolResultCreate) Mutation() *MessageToolResultMutation {
	return mtrc.mutation
}

// Save creates the MessageToolResult in the database.
func (mtrc *MessageToolResultCreate) Save(ctx context.Context) (*MessageToolResult, error) {
	mtrc.defaults()
	return withHooks(ctx, mtrc.sqlSave, mtrc.mutation, mtrc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (mtrc *MessageToolResultCreate) SaveX(ctx context.Context) *MessageToolResult {
	v, err := mtrc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mtrc *MessageToolResultCreate) Exec(ctx context.Context) error {
	_, err := mtrc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mtrc *MessageToolResultCreate) ExecX(ctx context.Context) {
	if err := mtrc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mtrc *MessageToolResultCreate) defaults() {
	if _, ok := mtrc.mutation.Status(); !ok {
		v := messagetoolresult.DefaultStatus
		mtrc.mutation.SetStatus(v)
	}
	if _, ok := mtrc.mutation.CreatedAt(); !ok {
		v := messagetoolresult.DefaultCreatedAt()
		mtrc.mutation.SetCreatedAt(v)
	}
	if _, ok := mtrc.mutation.UpdatedAt(); !ok {
		v := messagetoolresult.DefaultUpdatedAt()
		mtrc.mutation.SetUpdatedAt(v)
	}
	if _, ok := mtrc.mutation.ID(); !ok {
		v := messagetoolresult.DefaultID()
		mtrc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mtrc *MessageToolResultCreate) check() error {
	if _, ok := mtrc.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "MessageToolResult.message_id"`)}
	}
	if _, ok := mtrc.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "MessageToolResult.tool_name"`)}
	}
	if v, ok := mtrc.mutation.ToolName(); ok {
		if err := messagetoolresult.ToolNameValidator(v); err != nil {
			return &ValidationError{Name: "tool_name", err: fmt.Errorf(`ent: validator failed for field "MessageToolResult.tool_name": %w`, err)}
		}
	}
	if _, ok := mtrc.mutation.CallSequence(); !ok {
		return &ValidationError{Name: "call_sequence", err: errors.New(`ent: missing required field "MessageToolResult.call_sequence"`)}
	}
	if v, ok := mtrc.mutation.CallSequence(); ok {
		if err := messagetoolresult.CallSequenceValidator(v); err != nil {
			return &ValidationError{Name: "call_sequence", err: fmt.Errorf(`ent: validator failed for field "MessageToolResult.call_sequence": %w`, err)}
		}
	}
	if _, ok := mtrc.mutation.ToolInput(); !ok {
		return &ValidationError{Name: "tool_input", err: errors.New(`ent: missing required field "MessageToolResult.tool_input"`)}
	}
	if _, ok := mtrc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MessageToolResult.status"`)}
	}
	if v, ok := mtrc.mutation.Status(); ok {
		if err := messagetoolresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MessageToolResult.status": %w`, err)}
		}
	}
	if _, ok := mtrc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MessageToolResult.created_at"`)}
	}
	if _, ok := mtrc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MessageToolResult.updated_at"`)}
	}
	return nil
}

func (mtrc *MessageToolResultCreate) sqlSave(ctx context.Context) (*MessageToolResult, error) {
	if err := mtrc.check(); err != nil {
		return nil, err
	}
	_node, _spec := mtrc.createSpec()
	if err := sqlgraph.CreateNode(ctx, mtrc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	mtrc.mutation.id = &_node.ID
	mtrc.mutation.done = true
	return _node, nil
}

func (mtrc *MessageToolResultCreate) createSpec() (*MessageToolResult, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageToolResult{config: mtrc.config}
		_spec = sqlgraph.NewCreateSpec(messagetoolresult.Table, sqlgraph.NewFieldSpec(messagetoolresult.FieldID, field.TypeUUID))
	)
	if id, ok := mtrc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := mtrc.mutation.MessageID(); ok {
		_spec.SetField(messagetoolresult.FieldMessageID, field.TypeUUID, value)
		_node.MessageID = value
	}
	if value, ok := mtrc.mutation.ToolName(); ok {
		_spec.SetField(messagetoolresult.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := mtrc.mutation.CallSequence(); ok {
		_spec.SetField(messagetoolresult.FieldCallSequence, field.TypeInt, value)
		_node.CallSequence = value
	}
	if value, ok := mtrc.mutation.ToolInput(); ok {
		_spec.SetField(messagetoolresult.FieldToolInput, field.TypeString, value)
		_node.ToolInput = value
	}
	if value, ok := mtrc.mutation.ToolOutput(); ok {
		_spec.SetField(messagetoolresult.FieldToolOutput, field.TypeString, value)
		_node.ToolOutput = value
	}
	if value, ok := mtrc.mutation.Status(); ok {
		_spec.SetField(messagetoolresult.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := mtrc.mutation.ErrorMessage(); ok {
		_spec.SetField(messagetoolresult.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := mtrc.mutation.CreatedAt(); ok {
		_spec.SetField(messagetoolresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := mtrc.mutation.UpdatedAt(); ok {
		_spec.SetField(messagetoolresult.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// MessageToolResultCreateBulk is the builder for creating many MessageToolResult entities in bulk.
type MessageToolResultCreateBulk struct {
	config
	err      error
	builders []*MessageToolResultCreate
}

// Save creates the MessageToolResult entities in the database.
func (mtrcb *MessageToolResultCreateBulk) Save(ctx context.Context) ([]*MessageToolResult, error) {
	if mtrcb.err != nil {
		return nil, mtrcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(mtrcb.builders))
	nodes := make([]*MessageToolResult, len(mtrcb.builders))
	mutators := make([]Mutator, len(mtrcb.builders))
	for i := range mtrcb.builders {
		func(i int, root context.Context) {
			builder := mtrcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageToolResultMutation)
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
					_, err = mutators[i+1].Mutate(root, mtrcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, mtrcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, mtrcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (mtrcb *MessageToolResultCreateBulk) SaveX(ctx context.Context) []*MessageToolResult {
	v, err := mtrcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mtrcb *MessageToolResultCreateBulk) Exec(ctx context.Context) error {
	_, err := mtrcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mtrcb *MessageToolResultCreateBulk) ExecX(ctx context.Context) {
	if err := mtrcb.Exec(ctx); err != nil {
		panic(err)
	}
}
