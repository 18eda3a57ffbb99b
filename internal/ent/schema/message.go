package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Message holds the schema definition for the Message entity.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			Comment("message id"),
		field.UUID("conversation_id", uuid.UUID{}).
			Comment("owning conversation id"),
		field.String("role").
			NotEmpty().
			MaxLen(20).
			Comment("user, assistant or system"),
		field.Text("content").
			Comment("message text, empty while an assistant draft streams"),
		field.Text("thinking").
			Optional().
			Comment("extracted reasoning text, assistant messages only"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id"),
		index.Fields("conversation_id", "created_at"),
	}
}
