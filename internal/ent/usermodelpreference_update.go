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
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/predicate"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/usermodelpreference"
)

// UserModelPreferenceUpdate is the builder for updating UserModelPreference entities.
type UserModelPreferenceUpdate struct {
	config
	hooks    []Hook
	mutation *UserModelPreferenceMutation
}

// Where appends a list predicates to the UserModelPreferenceUpdate builder.
func (umpu *UserModelPreferenceUpdate) Where(ps ...predicate.UserModelPreference) *UserModelPreferenceUpdate {
	umpu.mutation.Where(ps...)
	return umpu
}

// SetUserID sets the "user_id" field.
func (umpu *UserModelPreferenceUpdate) SetUserID(s string) *UserModelPreferenceUpdate {
	umpu.mutation.SetUserID(s)
	return umpu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (umpu *UserModelPreferenceUpdate) SetNillableUserID(s *string) *UserModelPreferenceUpdate {
	if s != nil {
		umpu.SetUserID(*s)
	}
	return umpu
}

// SetProviderName sets the "provider_name" field.
func (umpu *UserModelPreferenceUpdate) SetProviderName(s string) *UserModelPreferenceUpdate {
	umpu.mutation.SetProviderName(s)
	return umpu
}

// SetNillableProviderName sets the "provider_name" field if the given value is not nil.
func (umpu *UserModelPreferenceUpdate) SetNillableProviderName(s *string) *UserModelPreferenceUpdate {
	if s != nil {
		umpu.SetProviderName(*s)
	}
	return umpu
}

// SetModelName sets the "model_name" field.
func (umpu *UserModelPreferenceUpdate) SetModelName(s string) *UserModelPreferenceUpdate {
	umpu.mutation.SetModelName(s)
	return umpu
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (umpu *UserModelPreferenceUpdate) SetNillableModelName(s *string) *UserModelPreferenceUpdate {
	if s != nil {
		umpu.SetModelName(*s)
	}
	return umpu
}

// SetUpdatedAt sets the "updated_at" field.
func (umpu *UserModelPreferenceUpdate) SetUpdatedAt(t time.Time) *UserModelPreferenceUpdate {
	umpu.mutation.SetUpdatedAt(t)
	return umpu
}

// Mutation returns the UserModelPreferenceMutation object of the builder.
func (umpu *UserModelPreferenceUpdate) Mutation() *UserModelPreferenceMutation {
	return umpu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (umpu *UserModelPreferenceUpdate) Save(ctx context.Context) (int, error) {
	umpu.defaults()
	return withHooks(ctx, umpu.sqlSave, umpu.mutation, umpu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (umpu *UserModelPreferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := umpu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (umpu *UserModelPreferenceUpdate) Exec(ctx context.Context) error {
	_, err := umpu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (umpu *UserModelPreferenceUpdate) ExecX(ctx context.Context) {
	if err := umpu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (umpu *UserModelPreferenceUpdate) defaults() {
	if _, ok := umpu.mutation.UpdatedAt(); !ok {
		v := usermodelpreference.UpdateDefaultUpdatedAt()
		umpu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (umpu *UserModelPreferenceUpdate) check() error {
	if v, ok := umpu.mutation.UserID(); ok {
		if err := usermodelpreference.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserModelPreference.user_id": %w`, err)}
		}
	}
	if v, ok := umpu.mutation.ProviderName(); ok {
		if err := usermodelpreference.ProviderNameValidator(v); err != nil {
			return &ValidationError{Name: "provider_name", err: fmt.Errorf(`ent: validator failed for field "UserModelPreference.provider_name": %w`, err)}
		}
	}
	if v, ok := umpu.mutation.ModelName(); ok {
		if err := usermodelpreference.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "UserModelPreference.model_name": %w`, err)}
		}
	}
	return nil
}

func (umpu *UserModelPreferenceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := umpu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(usermodelpreference.Table, usermodelpreference.Columns, sqlgraph.NewFieldSpec(usermodelpreference.FieldID, field.TypeUUID))
	if ps := umpu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := umpu.mutation.UserID(); ok {
		_spec.SetField(usermodelpreference.FieldUserID, field.TypeString, value)
	}
	if value, ok := umpu.mutation.ProviderName(); ok {
		_spec.SetField(usermodelpreference.FieldProviderName, field.TypeString, value)
	}
	if value, ok := umpu.mutation.ModelName(); ok {
		_spec.SetField(usermodelpreference.FieldModelName, field.TypeString, value)
	}
	if value, ok := umpu.mutation.UpdatedAt(); ok {
		_spec.SetField(usermodelpreference.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, umpu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usermodelpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	umpu.mutation.done = true
	return n, nil
}

// UserModelPreferenceUpdateOne is the builder for updating a single UserModelPreference entity.
type UserModelPreferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserModelPreferenceMutation
}

// SetUserID sets the "user_id" field.
func (umpuo *UserModelPreferenceUpdateOne) SetUserID(s string) *UserModelPreferenceUpdateOne {
	umpuo.mutation.SetUserID(s)
	return umpuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (umpuo *UserModelPreferenceUpdateOne) SetNillableUserID(s *string) *UserModelPreferenceUpdateOne {
	if s != nil {
		umpuo.SetUserID(*s)
	}
	return umpuo
}

// SetProviderName sets the "provider_name" field.
func (umpuo *UserModelPreferenceUpdateOne) SetProviderName(s string) *UserModelPreferenceUpdateOne {
	umpuo.mutation.SetProviderName(s)
	return umpuo
}

// SetNillableProviderName sets the "provider_name" field if the given value is not nil.
func (umpuo *UserModelPreferenceUpdateOne) SetNillableProviderName(s *string) *UserModelPreferenceUpdateOne {
	if s != nil {
		umpuo.SetProviderName(*s)
	}
	return umpuo
}

// SetModelName sets the "model_name" field.
func (umpuo *UserModelPreferenceUpdateOne) SetModelName(s string) *UserModelPreferenceUpdateOne {
	umpuo.mutation.SetModelName(s)
	return umpuo
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (umpuo *UserModelPreferenceUpdateOne) SetNillableModelName(s *string) *UserModelPreferenceUpdateOne {
	if s != nil {
		umpuo.SetModelName(*s)
	}
	return umpuo
}

// SetUpdatedAt sets the "updated_at" field.
func (umpuo *UserModelPreferenceUpdateOne) SetUpdatedAt(t time.Time) *UserModelPreferenceUpdateOne {
	umpuo.mutation.SetUpdatedAt(t)
	return umpuo
}

// Mutation returns the UserModelPreferenceMutation object of the builder.
func (umpuo *UserModelPreferenceUpdateOne) Mutation() *UserModelPreferenceMutation {
	return umpuo.mutation
}

// Where appends a list predicates to the UserModelPreferenceUpdate builder.
func (umpuo *UserModelPreferenceUpdateOne) Where(ps ...predicate.UserModelPreference) *UserModelPreferenceUpdateOne {
	umpuo.mutation.Where(ps...)
	return umpuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (umpuo *UserModelPreferenceUpdateOne) Select(field string, fields ...string) *UserModelPreferenceUpdateOne {
	umpuo.fields = append([]string{field}, fields...)
	return umpuo
}

// Save executes the query and returns the updated UserModelPreference entity.
func (umpuo *UserModelPreferenceUpdateOne) Save(ctx context.Context) (*UserModelPreference, error) {
	umpuo.defaults()
	return withHooks(ctx, umpuo.sqlSave, umpuo.mutation, umpuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (umpuo *UserModelPreferenceUpdateOne) SaveX(ctx context.Context) *UserModelPreference {
	node, err := umpuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (umpuo *UserModelPreferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := umpuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (umpuo *UserModelPreferenceUpdateOne) ExecX(ctx context.Context) {
	if err := umpuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (umpuo *UserModelPreferenceUpdateOne) defaults() {
	if _, ok := umpuo.mutation.UpdatedAt(); !ok {
		v := usermodelpreference.UpdateDefaultUpdatedAt()
		umpuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (umpuo *UserModelPreferenceUpdateOne) check() error {
	if v, ok := umpuo.mutation.UserID(); ok {
		if err := usermodelpreference.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserModelPreference.user_id": %w`, err)}
		}
	}
	if v, ok := umpuo.mutation.ProviderName(); ok {
		if err := usermodelpreference.ProviderNameValidator(v); err != nil {
			return &ValidationError{Name: "provider_name", err: fmt.Errorf(`ent: validator failed for field "UserModelPreference.provider_name": %w`, err)}
		}
	}
	if v, ok := umpuo.mutation.ModelName(); ok {
		if err := usermodelpreference.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "UserModelPreference.model_name": %w`, err)}
		}
	}
	return nil
}

func (umpuo *UserModelPreferenceUpdateOne) sqlSave(ctx context.Context) (_node *UserModelPreference, err error) {
	if err := umpuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usermodelpreference.Table, usermodelpreference.Columns, sqlgraph.NewFieldSpec(usermodelpreference.FieldID, field.TypeUUID))
	id, ok := umpuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserModelPreference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := umpuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usermodelpreference.FieldID)
		for _, f := range fields {
			if !usermodelpreference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usermodelpreference.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := umpuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := umpuo.mutation.UserID(); ok {
		_spec.SetField(usermodelpreference.FieldUserID, field.TypeString, value)
	}
	if value, ok := umpuo.mutation.ProviderName(); ok {
		_spec.SetField(usermodelpreference.FieldProviderName, field.TypeString, value)
	}
	if value, ok := umpuo.mutation.ModelName(); ok {
		_spec.SetField(usermodelpreference.FieldModelName, field.TypeString, value)
	}
	if value, ok := umpuo.mutation.UpdatedAt(); ok {
		_spec.SetField(usermodelpreference.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserModelPreference{config: umpuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, umpuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usermodelpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	umpuo.mutation.done = true
	return _node, nil
}
