// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/messagetoolresult"
)

// MessageToolResult is the model entity for the MessageToolResult schema.
type MessageToolResult struct {
	config `json:"-"`
	// ID of the ent.
	// tool result id
	ID uuid.UUID `json:"id,omitempty"`
	// owning assistant message id
	MessageID uuid.UUID `json:"message_id,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName string `json:"tool_name,omitempty"`
	// 1-based call order within the message
	CallSequence int `json:"call_sequence,omitempty"`
	// ToolInput holds the value of the "tool_input" field.
	ToolInput string `json:"tool_input,omitempty"`
	// ToolOutput holds the value of the "tool_output" field.
	ToolOutput string `json:"tool_output,omitempty"`
	// IN_PROGRESS, SUCCESS or FAILED
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MessageToolResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case messagetoolresult.FieldCallSequence:
			values[i] = new(sql.NullInt64)
		case messagetoolresult.FieldToolName, messagetoolresult.FieldToolInput, messagetoolresult.FieldToolOutput, messagetoolresult.FieldStatus, messagetoolresult.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case messagetoolresult.FieldCreatedAt, messagetoolresult.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case messagetoolresult.FieldID, messagetoolresult.FieldMessageID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MessageToolResult fields.
func (mtr *MessageToolResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case messagetoolresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				mtr.ID = *value
			}
		case messagetoolresult.FieldMessageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value != nil {
				mtr.MessageID = *value
			}
		case messagetoolresult.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				mtr.ToolName = value.String
			}
		case messagetoolresult.FieldCallSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field call_sequence", values[i])
			} else if value.Valid {
				mtr.CallSequence = int(value.Int64)
			}
		case messagetoolresult.FieldToolInput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_input", values[i])
			} else if value.Valid {
				mtr.ToolInput = value.String
			}
		case messagetoolresult.FieldToolOutput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_output", values[i])
			} else if value.Valid {
				mtr.ToolOutput = value.String
			}
		case messagetoolresult.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				mtr.Status = value.String
			}
		case messagetoolresult.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				mtr.ErrorMessage = value.String
			}
		case messagetoolresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				mtr.CreatedAt = value.Time
			}
		case messagetoolresult.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				mtr.UpdatedAt = value.Time
			}
		default:
			mtr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MessageToolResult.
// This includes values selected through modifiers, order, etc.
func (mtr *MessageToolResult) Value(name string) (ent.Value, error) {
	return mtr.selectValues.Get(name)
}

// Update returns a builder for updating this MessageToolResult.
// Note that you need to call MessageToolResult.Unwrap() before calling this method if this MessageToolResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (mtr *MessageToolResult) Update() *MessageToolResultUpdateOne {
	return NewMessageToolResultClient(mtr.config).UpdateOne(mtr)
}

// Unwrap unwraps the MessageToolResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (mtr *MessageToolResult) Unwrap() *MessageToolResult {
	_tx, ok := mtr.config.driver.(*txDriver)
	if !ok {
		panic("ent: MessageToolResult is not a transactional entity")
	}
	mtr.config.driver = _tx.drv
	return mtr
}

// String implements the fmt.Stringer.
func (mtr *MessageToolResult) String() string {
	var builder strings.Builder
	builder.WriteString("MessageToolResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", mtr.ID))
	builder.WriteString("message_id=")
	builder.WriteString(fmt.Sprintf("%v", mtr.MessageID))
	builder.WriteString(", ")
	builder.WriteString("tool_name=")
	builder.WriteString(mtr.ToolName)
	builder.WriteString(", ")
	builder.WriteString("call_sequence=")
	builder.WriteString(fmt.Sprintf("%v", mtr.CallSequence))
	builder.WriteString(", ")
	builder.WriteString("tool_input=")
	builder.WriteString(mtr.ToolInput)
	builder.WriteString(", ")
	builder.WriteString("tool_output=")
	builder.WriteString(mtr.ToolOutput)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(mtr.Status)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(mtr.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(mtr.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(mtr.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MessageToolResults is a parsable slice of MessageToolResult.
type MessageToolResults []*MessageToolResult
