// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/messagetoolresult"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/predicate"
)

// MessageToolResultDelete is the builder for deleting a MessageToolResult entity.
type MessageToolResultDelete struct {
	config
	hooks    []Hook
	mutation *MessageToolResultMutation
}

// Where appends a list predicates to the MessageToolResultDelete builder.
func (mtrd *MessageToolResultDelete) Where(ps ...predicate.MessageToolResult) *MessageToolResultDelete {
	mtrd.mutation.Where(ps...)
	return mtrd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (mtrd *MessageToolResultDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, mtrd.sqlExec, mtrd.mutation, mtrd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (mtrd *MessageToolResultDelete) ExecX(ctx context.Context) int {
	n, err := mtrd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (mtrd *MessageToolResultDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(messagetoolresult.Table, sqlgraph.NewFieldSpec(messagetoolresult.FieldID, field.TypeUUID))
	if ps := mtrd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, mtrd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	mtrd.mutation.done = true
	return affected, err
}

// MessageToolResultDeleteOne is the builder for deleting a single MessageToolResult entity.
type MessageToolResultDeleteOne struct {
	mtrd *MessageToolResultDelete
}

// Where appends a list predicates to the MessageToolResultDelete builder.
func (mtrdo *MessageToolResultDeleteOne) Where(ps ...predicate.MessageToolResult) *MessageToolResultDeleteOne {
	mtrdo.mtrd.mutation.Where(ps...)
	return mtrdo
}

// Exec executes the deletion query.
func (mtrdo *MessageToolResultDeleteOne) Exec(ctx context.Context) error {
	n, err := mtrdo.mtrd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{messagetoolresult.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (mtrdo *MessageToolResultDeleteOne) ExecX(ctx context.Context) {
	if err := mtrdo.Exec(ctx); err != nil {
		panic(err)
	}
}
