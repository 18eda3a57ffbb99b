package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// UserModelPreference holds the schema definition for per-user default model
// choices.
type UserModelPreference struct {
	ent.Schema
}

// Fields of the UserModelPreference.
func (UserModelPreference) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("user_id").
			NotEmpty().
			MaxLen(64),
		field.String("provider_name").
			NotEmpty().
			MaxLen(100),
		field.String("model_name").
			NotEmpty().
			MaxLen(100),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the UserModelPreference.
func (UserModelPreference) Indexes() []ent.Index {
	return []ent.Index{
		// One stored default per user.
		index.Fields("user_id").
			Unique(),
	}
}
