// Code generated by ent, DO NOT EDIT.

package messagetoolresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the messagetoolresult type in the database.
	Label = "message_tool_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldToolName holds the string denoting the tool_name field in the database.
	FieldToolName = "tool_name"
	// FieldCallSequence holds the string denoting the call_sequence field in the database.
	FieldCallSequence = "call_sequence"
	// FieldToolInput holds the string denoting the tool_input field in the database.
	FieldToolInput = "tool_input"
	// FieldToolOutput holds the string denoting the tool_output field in the database.
	FieldToolOutput = "tool_output"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the messagetoolresult in the database.
	Table = "message_tool_results"
)

// Columns holds all SQL columns for messagetoolresult fields.
var Columns = []string{
	FieldID,
	FieldMessageID,
	FieldToolName,
	FieldCallSequence,
	FieldToolInput,
	FieldToolOutput,
	FieldStatus,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ToolNameValidator is a validator for the "tool_name" field. It is called by the builders before save.
	ToolNameValidator func(string) error
	// CallSequenceValidator is a validator for the "call_sequence" field. It is called by the builders before save.
	CallSequenceValidator func(int) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MessageToolResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByToolName orders the results by the tool_name field.
func ByToolName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolName, opts...).ToFunc()
}

// ByCallSequence orders the results by the call_sequence field.
func ByCallSequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallSequence, opts...).ToFunc()
}

// ByToolInput orders the results by the tool_input field.
func ByToolInput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolInput, opts...).ToFunc()
}

// ByToolOutput orders the results by the tool_output field.
func ByToolOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolOutput, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
