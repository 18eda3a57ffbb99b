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
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/usermodelpreference"
)

// UserModelPreferenceCreate is the builder for creating a UserModelPreference entity.
type UserModelPreferenceCreate struct {
	config
	mutation *UserModelPreferenceMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (umpc *UserModelPreferenceCreate) SetUserID(s string) *UserModelPreferenceCreate {
	umpc.mutation.SetUserID(s)
	return umpc
}

// SetProviderName sets the "provider_name" field.
func (umpc *UserModelPreferenceCreate) SetProviderName(s string) *UserModelPreferenceCreate {
	umpc.mutation.SetProviderName(s)
	return umpc
}

// SetModelName sets the "model_name" field.
func (umpc *UserModelPreferenceCreate) SetModelName(s string) *UserModelPreferenceCreate {
	umpc.mutation.SetModelName(s)
	return umpc
}

// SetCreatedAt sets the "created_at" field.
func (umpc *UserModelPreferenceCreate) SetCreatedAt(t time.Time) *UserModelPreferenceCreate {
	umpc.mutation.SetCreatedAt(t)
	return umpc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (umpc *UserModelPreferenceCreate) SetNillableCreatedAt(t *time.Time) *UserModelPreferenceCreate {
	if t != nil {
		umpc.SetCreatedAt(*t)
	}
	return umpc
}

// SetUpdatedAt sets the "updated_at" field.
func (umpc *UserModelPreferenceCreate) SetUpdatedAt(t time.Time) *UserModelPreferenceCreate {
	umpc.mutation.SetUpdatedAt(t)
	return umpc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (umpc *UserModelPreferenceCreate) SetNillableUpdatedAt(t *time.Time) *UserModelPreferenceCreate {
	if t != nil {
		umpc.SetUpdatedAt(*t)
	}
	return umpc
}

// SetID sets the "id" field.
func (umpc *UserModelPreferenceCreate) SetID(u uuid.UUID) *UserModelPreferenceCreate {
	umpc.mutation.SetID(u)
	return umpc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (umpc *UserModelPreferenceCreate) SetNillableID(u *uuid.UUID) *UserModelPreferenceCreate {
	if u != nil {
		umpc.SetID(*u)
	}
	return umpc
}

// Mutation returns the UserModelPreferenceMutation object of the builder.
func (umpc *UserModelPreferenceCreate) Mutation() *UserModelPreferenceMutation {
	return umpc.mutation
}

// Save creates the UserModelPreference in the database.
func (umpc *UserModelPreferenceCreate) Save(ctx context.Context) (*UserModelPreference, error) {
	umpc.defaults()
	return withHooks(ctx, umpc.sqlSave, umpc.mutation, umpc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (umpc *UserModelPreferenceCreate) SaveX(ctx context.Context) *UserModelPreference {
	v, err := umpc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (umpc *UserModelPreferenceCreate) Exec(ctx context.Context) error {
	_, err := umpc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (umpc *UserModelPreferenceCreate) ExecX(ctx context.Context) {
	if err := umpc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (umpc *UserModelPreferenceCreate) defaults() {
	if _, ok := umpc.mutation.CreatedAt(); !ok {
		v := usermodelpreference.DefaultCreatedAt()
		umpc.mutation.SetCreatedAt(v)
	}
	if _, ok := umpc.mutation.UpdatedAt(); !ok {
		v := usermodelpreference.DefaultUpdatedAt()
		umpc.mutation.SetUpdatedAt(v)
	}
	if _, ok := umpc.mutation.ID(); !ok {
		v := usermodelpreference.DefaultID()
		umpc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (umpc *UserModelPreferenceCreate) check() error {
	if _, ok := umpc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserModelPreference.user_id"`)}
	}
	if v, ok := umpc.mutation.UserID(); ok {
		if err := usermodelpreference.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserModelPreference.user_id": %w`, err)}
		}
	}
	if _, ok := umpc.mutation.ProviderName(); !ok {
		return &ValidationError{Name: "provider_name", err: errors.New(`ent: missing required field "UserModelPreference.provider_name"`)}
	}
	if v, ok := umpc.mutation.ProviderName(); ok {
		if err := usermodelpreference.ProviderNameValidator(v); err != nil {
			return &ValidationError{Name: "provider_name", err: fmt.Errorf(`ent: validator failed for field "UserModelPreference.provider_name": %w`, err)}
		}
	}
	if _, ok := umpc.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "UserModelPreference.model_name"`)}
	}
	if v, ok := umpc.mutation.ModelName(); ok {
		if err := usermodelpreference.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "UserModelPreference.model_name": %w`, err)}
		}
	}
	if _, ok := umpc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserModelPreference.created_at"`)}
	}
	if _, ok := umpc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserModelPreference.updated_at"`)}
	}
	return nil
}

func (umpc *UserModelPreferenceCreate) sqlSave(ctx context.Context) (*UserModelPreference, error) {
	if err := umpc.check(); err != nil {
		return nil, err
	}
	_node, _spec := umpc.createSpec()
	if err := sqlgraph.CreateNode(ctx, umpc.driver, _spec); err != nil {
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
	umpc.mutation.id = &_node.ID
	umpc.mutation.done = true
	return _node, nil
}

func (umpc *UserModelPreferenceCreate) createSpec() (*UserModelPreference, *sqlgraph.CreateSpec) {
	var (
		_node = &UserModelPreference{config: umpc.config}
		_spec = sqlgraph.NewCreateSpec(usermodelpreference.Table, sqlgraph.NewFieldSpec(usermodelpreference.FieldID, field.TypeUUID))
	)
	if id, ok := umpc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := umpc.mutation.UserID(); ok {
		_spec.SetField(usermodelpreference.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := umpc.mutation.ProviderName(); ok {
		_spec.SetField(usermodelpreference.FieldProviderName, field.TypeString, value)
		_node.ProviderName = value
	}
	if value, ok := umpc.mutation.ModelName(); ok {
		_spec.SetField(usermodelpreference.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := umpc.mutation.CreatedAt(); ok {
		_spec.SetField(usermodelpreference.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := umpc.mutation.UpdatedAt(); ok {
		_spec.SetField(usermodelpreference.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// UserModelPreferenceCreateBulk is the builder for creating many UserModelPreference entities in bulk.
type UserModelPreferenceCreateBulk struct {
	config
	err      error
	builders []*UserModelPreferenceCreate
}

// Save creates the UserModelPreference entities in the database.
func (umpcb *UserModelPreferenceCreateBulk) Save(ctx context.Context) ([]*UserModelPreference, error) {
	if umpcb.err != nil {
		return nil, umpcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(umpcb.builders))
	nodes := make([]*UserModelPreference, len(umpcb.builders))
	mutators := make([]Mutator, len(umpcb.builders))
	for i := range umpcb.builders {
		func(i int, root context.Context) {
			builder := umpcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserModelPreferenceMutation)
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
					_, err = mutators[i+1].Mutate(root, umpcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, umpcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, umpcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (umpcb *UserModelPreferenceCreateBulk) SaveX(ctx context.Context) []*UserModelPreference {
	v, err := umpcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (umpcb *UserModelPreferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := umpcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (umpcb *UserModelPreferenceCreateBulk) ExecX(ctx context.Context) {
	if err := umpcb.Exec(ctx); err != nil {
		panic(err)
	}
}
