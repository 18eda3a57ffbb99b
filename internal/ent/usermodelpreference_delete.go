// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/predicate"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/usermodelpreference"
)

// UserModelPreferenceDelete is the builder for deleting a UserModelPreference entity.
type UserModelPreferenceDelete struct {
	config
	hooks    []Hook
	mutation *UserModelPreferenceMutation
}

// Where appends a list predicates to the UserModelPreferenceDelete builder.
func (umpd *UserModelPreferenceDelete) Where(ps ...predicate.UserModelPreference) *UserModelPreferenceDelete {
	umpd.mutation.Where(ps...)
	return umpd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (umpd *UserModelPreferenceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, umpd.sqlExec, umpd.mutation, umpd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (umpd *UserModelPreferenceDelete) ExecX(ctx context.Context) int {
	n, err := umpd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (umpd *UserModelPreferenceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(usermodelpreference.Table, sqlgraph.NewFieldSpec(usermodelpreference.FieldID, field.TypeUUID))
	if ps := umpd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, umpd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	umpd.mutation.done = true
	return affected, err
}

// UserModelPreferenceDeleteOne is the builder for deleting a single UserModelPreference entity.
type UserModelPreferenceDeleteOne struct {
	umpd *UserModelPreferenceDelete
}

// Where appends a list predicates to the UserModelPreferenceDelete builder.
func (umpdo *UserModelPreferenceDeleteOne) Where(ps ...predicate.UserModelPreference) *UserModelPreferenceDeleteOne {
	umpdo.umpd.mutation.Where(ps...)
	return umpdo
}

// Exec executes the deletion query.
func (umpdo *UserModelPreferenceDeleteOne) Exec(ctx context.Context) error {
	n, err := umpdo.umpd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{usermodelpreference.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (umpdo *UserModelPreferenceDeleteOne) ExecX(ctx context.Context) {
	if err := umpdo.Exec(ctx); err != nil {
		panic(err)
	}
}
