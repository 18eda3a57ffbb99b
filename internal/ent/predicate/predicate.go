// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// MessageToolResult is the predicate function for messagetoolresult builders.
type MessageToolResult func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserModelPreference is the predicate function for usermodelpreference builders.
type UserModelPreference func(*sql.Selector)
