// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "title", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_user_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "conversation_id", Type: field.TypeUUID},
		{Name: "role", Type: field.TypeString, Size: 20},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "thinking", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1]},
			},
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[5]},
			},
		},
	}
	// MessageToolResultsColumns holds the columns for the "message_tool_results" table.
	MessageToolResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "message_id", Type: field.TypeUUID},
		{Name: "tool_name", Type: field.TypeString, Size: 100},
		{Name: "call_sequence", Type: field.TypeInt},
		{Name: "tool_input", Type: field.TypeString, Size: 2147483647},
		{Name: "tool_output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeString, Size: 20, Default: "IN_PROGRESS"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MessageToolResultsTable holds the schema information for the "message_tool_results" table.
	MessageToolResultsTable = &schema.Table{
		Name:       "message_tool_results",
		Columns:    MessageToolResultsColumns,
		PrimaryKey: []*schema.Column{MessageToolResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "messagetoolresult_message_id_call_sequence",
				Unique:  true,
				Columns: []*schema.Column{MessageToolResultsColumns[1], MessageToolResultsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 50},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// UserModelPreferencesColumns holds the columns for the "user_model_preferences" table.
	UserModelPreferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString, Size: 64},
		{Name: "provider_name", Type: field.TypeString, Size: 100},
		{Name: "model_name", Type: field.TypeString, Size: 100},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserModelPreferencesTable holds the schema information for the "user_model_preferences" table.
	UserModelPreferencesTable = &schema.Table{
		Name:       "user_model_preferences",
		Columns:    UserModelPreferencesColumns,
		PrimaryKey: []*schema.Column{UserModelPreferencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usermodelpreference_user_id",
				Unique:  true,
				Columns: []*schema.Column{UserModelPreferencesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConversationsTable,
		MessagesTable,
		MessageToolResultsTable,
		UsersTable,
		UserModelPreferencesTable,
	}
)

func init() {
}
