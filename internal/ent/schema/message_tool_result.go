package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// MessageToolResult holds the schema definition for tool invocation records.
type MessageToolResult struct {
	ent.Schema
}

// Fields of the MessageToolResult.
func (MessageToolResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			Comment("tool result id"),
		field.UUID("message_id", uuid.UUID{}).
			Comment("owning assistant message id"),
		field.String("tool_name").
			NotEmpty().
			MaxLen(100),
		field.Int("call_sequence").
			Positive().
			Comment("1-based call order within the message"),
		field.Text("tool_input"),
		field.Text("tool_output").
			Optional(),
		field.String("status").
			Default("IN_PROGRESS").
			MaxLen(20).
			Comment("IN_PROGRESS, SUCCESS or FAILED"),
		field.Text("error_message").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the MessageToolResult.
func (MessageToolResult) Indexes() []ent.Index {
	return []ent.Index{
		// The sequence is gapless per message; the unique index makes a
		// duplicate assignment a hard constraint violation.
		index.Fields("message_id", "call_sequence").
			Unique(),
	}
}
