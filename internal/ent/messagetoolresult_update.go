// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/messagetoolresult"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/predicate"
)

// MessageToolResultUpdate is the builder for updating MessageToolResult entities.
type MessageToolResultUpdate struct {
	config
	hooks    []Hook
	mutation *MessageToolResultMutation
}

// Where appends a list predicates to the MessageToolResultUpdate builder.
func (mtru *MessageToolResultUpdate) Where(ps ...predicate.MessageToolResult) *MessageToolResultUpdate {
	mtru.mutation.Where(ps...)
	return mtru
}

// SetMessageID sets the "message_id" field.
func (mtru *MessageToolResultUpdate) SetMessageID(u uuid.UUID) *MessageToolResultUpdate {
	mtru.mutation.SetMessageID(u)
	return mtru
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (mtru *MessageToolResultUpdate) SetNillableMessageID(u *uuid.UUID) *MessageToolResultUpdate {
	if u != nil {
		mtru.SetMessageID(*u)
	}
	return mtru
}

// SetToolName sets the "tool_name" field.
func (mtru *MessageToolResultUpdate) SetToolName(s string) *MessageToolResultUpdate {
	mtru.mutation.SetToolName(s)
	return mtru
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (mtru *MessageToolResultUpdate) SetNillableToolName(s *string) *MessageToolResultUpdate {
	if s != nil {
		mtru.SetToolName(*s)
	}
	return mtru
}

// SetCallSequence sets the "call_sequence" field.
func (mtru *MessageToolResultUpdate) SetCallSequence(i int) *MessageToolResultUpdate {
	mtru.mutation.ResetCallSequence()
	mtru.mutation.SetCallSequence(i)
	return mtru
}

// SetNillableCallSequence sets the "call_sequence" field if the given value is not nil.
func (mtru *MessageToolResultUpdate) SetNillableCallSequence(i *int) *MessageToolResultUpdate {
	if i != nil {
		mtru.SetCallSequence(*i)
	}
	return mtru
}

// AddCallSequence adds i to the "call_sequence" field.
func (mtru *MessageToolResultUpdate) AddCallSequence(i int) *MessageToolResultUpdate {
	mtru.mutation.AddCallSequence(i)
	return mtru
}

// SetToolInput sets the "tool_input" field.
func (mtru *MessageToolResultUpdate) SetToolInput(s string) *MessageToolResultUpdate {
	mtru.mutation.SetToolInput(s)
	return mtru
}

// SetNillableToolInput sets the "tool_input" field if the given value is not nil.
func (mtru *MessageToolResultUpdate) SetNillableToolInput(s *string) *MessageToolResultUpdate {
	if s != nil {
		mtru.SetToolInput(*s)
	}
	return mtru
}

// SetToolOutput sets the "tool_output" field.
func (mtru *MessageToolResultUpdate) SetToolOutput(s string) *MessageToolResultUpdate {
	mtru.mutation.SetToolOutput(s)
	return mtru
}

// SetNillableToolOutput sets the "tool_output" field if the given value is not nil.
func (mtru *MessageToolResultUpdate) SetNillableToolOutput(s *string) *MessageToolResultUpdate {
	if s != nil {
		mtru.SetToolOutput(*s)
	}
	return mtru
}

// ClearToolOutput clears the value of the "tool_output" field.
func (mtru *MessageToolResultUpdate) ClearToolOutput() *MessageToolResultUpdate {
	mtru.mutation.ClearToolOutput()
	return mtru
}

// SetStatus sets the "status" field.
func (mtru *MessageToolResultUpdate) SetStatus(s string) *MessageToolResultUpdate {
	mtru.mutation.SetStatus(s)
	return mtru
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (mtru *MessageToolResultUpdate) SetNillableStatus(s *string) *MessageToolResultUpdate {
	if s != nil {
		mtru.SetStatus(*s)
	}
	return mtru
}

// SetErrorMessage sets the "error_message" field.
func (mtru *MessageToolResultUpdate) SetErrorMessage(s string) *MessageToolResultUpdate {
	mtru.mutation.SetErrorMessage(s)
	return mtru
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (mtru *MessageToolResultUpdate) SetNillableErrorMessage(s *string) *MessageToolResultUpdate {
	if s != nil {
		mtru.SetErrorMessage(*s)
	}
	return mtru
}

// ClearErrorMessage clears the value of the "error_message" field.
func (mtru *MessageToolResultUpdate) ClearErrorMessage() *MessageToolResultUpdate {
	mtru.mutation.ClearErrorMessage()
	return mtru
}

// SetUpdatedAt sets the "updated_at" field.
func (mtru *MessageToolResultUpdate) SetUpdatedAt(t time.Time) *MessageToolResultUpdate {
	mtru.mutation.SetUpdatedAt(t)
	return mtru
}

// Mutation returns the MessageToolResultMutation object of the builder.
func (mtru *MessageToolResultUpdate) Mutation() *MessageToolResultMutation {
	return mtru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (mtru *MessageToolResultUpdate) Save(ctx context.Context) (int, error) {
	mtru.defaults()
	return withHooks(ctx, mtru.sqlSave, mtru.mutation, mtru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mtru *MessageToolResultUpdate) SaveX(ctx context.Context) int {
	affected, err := mtru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (mtru *MessageToolResultUpdate) Exec(ctx context.Context) error {
	_, err := mtru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mtru *MessageToolResultUpdate) ExecX(ctx context.Context) {
	if err := mtru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mtru *MessageToolResultUpdate) defaults() {
	if _, ok := mtru.mutation.UpdatedAt(); !ok {
		v := messagetoolresult.UpdateDefaultUpdatedAt()
		mtru.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mtru *MessageToolResultUpdate) check() error {
	if v, ok := mtru.mutation.ToolName(); ok {
		if err := messagetoolresult.ToolNameValidator(v); err != nil {
			return &ValidationError{Name: "tool_name", err: fmt.Errorf(`ent: validator failed for field "MessageToolResult.tool_name": %w`, err)}
		}
	}
	if v, ok := mtru.mutation.CallSequence(); ok {
		if err := messagetoolresult.CallSequenceValidator(v); err != nil {
			return &ValidationError{Name: "call_sequence", err: fmt.Errorf(`ent: validator failed for field "MessageToolResult.call_sequence": %w`, err)}
		}
	}
	if v, ok := mtru.mutation.Status(); ok {
		if err := messagetoolresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MessageToolResult.status": %w`, err)}
		}
	}
	return nil
}

func (mtru *MessageToolResultUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := mtru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(messagetoolresult.Table, messagetoolresult.Columns, sqlgraph.NewFieldSpec(messagetoolresult.FieldID, field.TypeUUID))
	if ps := mtru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := mtru.mutation.MessageID(); ok {
		_spec.SetField(messagetoolresult.FieldMessageID, field.TypeUUID, value)
	}
	if value, ok := mtru.mutation.ToolName(); ok {
		_spec.SetField(messagetoolresult.FieldToolName, field.TypeString, value)
	}
	if value, ok := mtru.mutation.CallSequence(); ok {
		_spec.SetField(messagetoolresult.FieldCallSequence, field.TypeInt, value)
	}
	if value, ok := mtru.mutation.AddedCallSequence(); ok {
		_spec.AddField(messagetoolresult.FieldCallSequence, field.TypeInt, value)
	}
	if value, ok := mtru.mutation.ToolInput(); ok {
		_spec.SetField(messagetoolresult.FieldToolInput, field.TypeString, value)
	}
	if value, ok := mtru.mutation.ToolOutput(); ok {
		_spec.SetField(messagetoolresult.FieldToolOutput, field.TypeString, value)
	}
	if mtru.mutation.ToolOutputCleared() {
		_spec.ClearField(messagetoolresult.FieldToolOutput, field.TypeString)
	}
	if value, ok := mtru.mutation.Status(); ok {
		_spec.SetField(messagetoolresult.FieldStatus, field.TypeString, value)
	}
	if value, ok := mtru.mutation.ErrorMessage(); ok {
		_spec.SetField(messagetoolresult.FieldErrorMessage, field.TypeString, value)
	}
	if mtru.mutation.ErrorMessageCleared() {
		_spec.ClearField(messagetoolresult.FieldErrorMessage, field.TypeString)
	}
	if value, ok := mtru.mutation.UpdatedAt(); ok {
		_spec.SetField(messagetoolresult.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, mtru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagetoolresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	mtru.mutation.done = true
	return n, nil
}

// MessageToolResultUpdateOne is the builder for updating a single MessageToolResult entity.
type MessageToolResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageToolResultMutation
}

// SetMessageID sets the "message_id" field.
func (mtruo *MessageToolResultUpdateOne) SetMessageID(u uuid.UUID) *MessageToolResultUpdateOne {
	mtruo.mutation.SetMessageID(u)
	return mtruo
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (mtruo *MessageToolResultUpdateOne) SetNillableMessageID(u *uuid.UUID) *MessageToolResultUpdateOne {
	if u != nil {
		mtruo.SetMessageID(*u)
	}
	return mtruo
}

// SetToolName sets the "tool_name" field.
func (mtruo *MessageToolResultUpdateOne) SetToolName(s string) *MessageToolResultUpdateOne {
	mtruo.mutation.SetToolName(s)
	return mtruo
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (mtruo *MessageToolResultUpdateOne) SetNillableToolName(s *string) *MessageToolResultUpdateOne {
	if s != nil {
		mtruo.SetToolName(*s)
	}
	return mtruo
}

// SetCallSequence sets the "call_sequence" field.
func (mtruo *MessageToolResultUpdateOne) SetCallSequence(i int) *MessageToolResultUpdateOne {
	mtruo.mutation.ResetCallSequence()
	mtruo.mutation.SetCallSequence(i)
	return mtruo
}

// SetNillableCallSequence sets the "call_sequence" field if the given value is not nil.
func (mtruo *MessageToolResultUpdateOne) SetNillableCallSequence(i *int) *MessageToolResultUpdateOne {
	if i != nil {
		mtruo.SetCallSequence(*i)
	}
	return mtruo
}

// AddCallSequence adds i to the "call_sequence" field.
func (mtruo *MessageToolResultUpdateOne) AddCallSequence(i int) *MessageToolResultUpdateOne {
	mtruo.mutation.AddCallSequence(i)
	return mtruo
}

// SetToolInput sets the "tool_input" field.
func (mtruo *MessageToolResultUpdateOne) SetToolInput(s string) *MessageToolResultUpdateOne {
	mtruo.mutation.SetToolInput(s)
	return mtruo
}

// SetNillableToolInput sets the "tool_input" field if the given value is not nil.
func (mtruo *MessageToolResultUpdateOne) SetNillableToolInput(s *string) *MessageToolResultUpdateOne {
	if s != nil {
		mtruo.SetToolInput(*s)
	}
	return mtruo
}

// SetToolOutput sets the "tool_output" field.
func (mtruo *MessageToolResultUpdateOne) SetToolOutput(s string) *MessageToolResultUpdateOne {
	mtruo.mutation.SetToolOutput(s)
	return mtruo
}

// SetNillableToolOutput sets the "tool_output" field if the given value is not nil.
func (mtruo *MessageToolResultUpdateOne) SetNillableToolOutput(s *string) *MessageToolResultUpdateOne {
	if s != nil {
		mtruo.SetToolOutput(*s)
	}
	return mtruo
}

// ClearToolOutput clears the value of the "tool_output" field.
func (mtruo *MessageToolResultUpdateOne) ClearToolOutput() *MessageToolResultUpdateOne {
	mtruo.mutation.ClearToolOutput()
	return mtruo
}

// SetStatus sets the "status" field.
func (mtruo *MessageToolResultUpdateOne) SetStatus(s string) *MessageToolResultUpdateOne {
	mtruo.mutation.SetStatus(s)
	return mtruo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (mtruo *MessageToolResultUpdateOne) SetNillableStatus(s *string) *MessageToolResultUpdateOne {
	if s != nil {
		mtruo.SetStatus(*s)
	}
	return mtruo
}

// SetErrorMessage sets the "error_message" field.
func (mtruo *MessageToolResultUpdateOne) SetErrorMessage(s string) *MessageToolResultUpdateOne {
	mtruo.mutation.SetErrorMessage(s)
	return mtruo
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (mtruo *MessageToolResultUpdateOne) SetNillableErrorMessage(s *string) *MessageToolResultUpdateOne {
	if s != nil {
		mtruo.SetErrorMessage(*s)
	}
	return mtruo
}

// ClearErrorMessage clears the value of the "error_message" field.
func (mtruo *MessageToolResultUpdateOne) ClearErrorMessage() *MessageToolResultUpdateOne {
	mtruo.mutation.ClearErrorMessage()
	return mtruo
}

// SetUpdatedAt sets the "updated_at" field.
func (mtruo *MessageToolResultUpdateOne) SetUpdatedAt(t time.Time) *MessageToolResultUpdateOne {
	mtruo.mutation.SetUpdatedAt(t)
	return mtruo
}

// Mutation returns the MessageToolResultMutation object of the builder.
func (mtruo *MessageToolResultUpdateOne) Mutation() *MessageToolResultMutation {
	return mtruo.mutation
}

// Where appends a list predicates to the MessageToolResultUpdate builder.
func (mtruo *MessageToolResultUpdateOne) Where(ps ...predicate.MessageToolResult) *MessageToolResultUpdateOne {
	mtruo.mutation.Where(ps...)
	return mtruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (mtruo *MessageToolResultUpdateOne) Select(field string, fields ...string) *MessageToolResultUpdateOne {
	mtruo.fields = append([]string{field}, fields...)
	return mtruo
}

// Save executes the query and returns the updated MessageToolResult entity.
func (mtruo *MessageToolResultUpdateOne) Save(ctx context.Context) (*MessageToolResult, error) {
	mtruo.defaults()
	return withHooks(ctx, mtruo.sqlSave, mtruo.mutation, mtruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mtruo *MessageToolResultUpdateOne) SaveX(ctx context.Context) *MessageToolResult {
	node, err := mtruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (mtruo *MessageToolResultUpdateOne) Exec(ctx context.Context) error {
	_, err := mtruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mtruo *MessageToolResultUpdateOne) ExecX(ctx context.Context) {
	if err := mtruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mtruo *MessageToolResultUpdateOne) defaults() {
	if _, ok := mtruo.mutation.UpdatedAt(); !ok {
		v := messagetoolresult.UpdateDefaultUpdatedAt()
		mtruo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mtruo *MessageToolResultUpdateOne) check() error {
	if v, ok := mtruo.mutation.ToolName(); ok {
		if err := messagetoolresult.ToolNameValidator(v); err != nil {
			return &ValidationError{Name: "tool_name", err: fmt.Errorf(`ent: validator failed for field "MessageToolResult.tool_name": %w`, err)}
		}
	}
	if v, ok := mtruo.mutation.CallSequence(); ok {
		if err := messagetoolresult.CallSequenceValidator(v); err != nil {
			return &ValidationError{Name: "call_sequence", err: fmt.Errorf(`ent: validator failed for field "MessageToolResult.call_sequence": %w`, err)}
		}
	}
	if v, ok := mtruo.mutation.Status(); ok {
		if err := messagetoolresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MessageToolResult.status": %w`, err)}
		}
	}
	return nil
}

func (mtruo *MessageToolResultUpdateOne) sqlSave(ctx context.Context) (_node *MessageToolResult, err error) {
	if err := mtruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messagetoolresult.Table, messagetoolresult.Columns, sqlgraph.NewFieldSpec(messagetoolresult.FieldID, field.TypeUUID))
	id, ok := mtruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MessageToolResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := mtruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messagetoolresult.FieldID)
		for _, f := range fields {
			if !messagetoolresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != messagetoolresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := mtruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := mtruo.mutation.MessageID(); ok {
		_spec.SetField(messagetoolresult.FieldMessageID, field.TypeUUID, value)
	}
	if value, ok := mtruo.mutation.ToolName(); ok {
		_spec.SetField(messagetoolresult.FieldToolName, field.TypeString, value)
	}
	if value, ok := mtruo.mutation.CallSequence(); ok {
		_spec.SetField(messagetoolresult.FieldCallSequence, field.TypeInt, value)
	}
	if value, ok := mtruo.mutation.AddedCallSequence(); ok {
		_spec.AddField(messagetoolresult.FieldCallSequence, field.TypeInt, value)
	}
	if value, ok := mtruo.mutation.ToolInput(); ok {
		_spec.SetField(messagetoolresult.FieldToolInput, field.TypeString, value)
	}
	if value, ok := mtruo.mutation.ToolOutput(); ok {
		_spec.SetField(messagetoolresult.FieldToolOutput, field.TypeString, value)
	}
	if mtruo.mutation.ToolOutputCleared() {
		_spec.ClearField(messagetoolresult.FieldToolOutput, field.TypeString)
	}
	if value, ok := mtruo.mutation.Status(); ok {
		_spec.SetField(messagetoolresult.FieldStatus, field.TypeString, value)
	}
	if value, ok := mtruo.mutation.ErrorMessage(); ok {
		_spec.SetField(messagetoolresult.FieldErrorMessage, field.TypeString, value)
	}
	if mtruo.mutation.ErrorMessageCleared() {
		_spec.ClearField(messagetoolresult.FieldErrorMessage, field.TypeString)
	}
	if value, ok := mtruo.mutation.UpdatedAt(); ok {
		_spec.SetField(messagetoolresult.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MessageToolResult{config: mtruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, mtruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagetoolresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	mtruo.mutation.done = true
	return _node, nil
}
