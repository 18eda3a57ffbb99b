// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/usermodelpreference"
)

// UserModelPreference is the model entity for the UserModelPreference schema.
type UserModelPreference struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ProviderName holds the value of the "provider_name" field.
	ProviderName string `json:"provider_name,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName string `json:"model_name,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserModelPreference) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usermodelpreference.FieldUserID, usermodelpreference.FieldProviderName, usermodelpreference.FieldModelName:
			values[i] = new(sql.NullString)
		case usermodelpreference.FieldCreatedAt, usermodelpreference.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case usermodelpreference.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserModelPreference fields.
func (ump *UserModelPreference) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usermodelpreference.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				ump.ID = *value
			}
		case usermodelpreference.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ump.UserID = value.String
			}
		case usermodelpreference.FieldProviderName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_name", values[i])
			} else if value.Valid {
				ump.ProviderName = value.String
			}
		case usermodelpreference.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				ump.ModelName = value.String
			}
		case usermodelpreference.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ump.CreatedAt = value.Time
			}
		case usermodelpreference.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ump.UpdatedAt = value.Time
			}
		default:
			ump.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserModelPreference.
// This includes values selected through modifiers, order, etc.
func (ump *UserModelPreference) Value(name string) (ent.Value, error) {
	return ump.selectValues.Get(name)
}

// Update returns a builder for updating this UserModelPreference.
// Note that you need to call UserModelPreference.Unwrap() before calling this method if this UserModelPreference
// was returned from a transaction, and the transaction was committed or rolled back.
func (ump *UserModelPreference) Update() *UserModelPreferenceUpdateOne {
	return NewUserModelPreferenceClient(ump.config).UpdateOne(ump)
}

// Unwrap unwraps the UserModelPreference entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ump *UserModelPreference) Unwrap() *UserModelPreference {
	_tx, ok := ump.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserModelPreference is not a transactional entity")
	}
	ump.config.driver = _tx.drv
	return ump
}

// String implements the fmt.Stringer.
func (ump *UserModelPreference) String() string {
	var builder strings.Builder
	builder.WriteString("UserModelPreference(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ump.ID))
	builder.WriteString("user_id=")
	builder.WriteString(ump.UserID)
	builder.WriteString(", ")
	builder.WriteString("provider_name=")
	builder.WriteString(ump.ProviderName)
	builder.WriteString(", ")
	builder.WriteString("model_name=")
	builder.WriteString(ump.ModelName)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ump.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ump.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserModelPreferences is a parsable slice of UserModelPreference.
type UserModelPreferences []*UserModelPreference
