// Code generated by ent, DO NOT EDIT.

package messagetoolresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLTE(FieldID, id))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v uuid.UUID) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldMessageID, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldToolName, v))
}

// CallSequence applies equality check predicate on the "call_sequence" field. It's identical to CallSequenceEQ.
func CallSequence(v int) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldCallSequence, v))
}

// ToolInput applies equality check predicate on the "tool_input" field. It's identical to ToolInputEQ.
func ToolInput(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldToolInput, v))
}

// ToolOutput applies equality check predicate on the "tool_output" field. It's identical to ToolOutputEQ.
func ToolOutput(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldToolOutput, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldUpdatedAt, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v uuid.UUID) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v uuid.UUID) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...uuid.UUID) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...uuid.UUID) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v uuid.UUID) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v uuid.UUID) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v uuid.UUID) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v uuid.UUID) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLTE(FieldMessageID, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldContainsFold(FieldToolName, v))
}

// CallSequenceEQ applies the EQ predicate on the "call_sequence" field.
func CallSequenceEQ(v int) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldCallSequence, v))
}

// CallSequenceNEQ applies the NEQ predicate on the "call_sequence" field.
func CallSequenceNEQ(v int) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNEQ(FieldCallSequence, v))
}

// CallSequenceIn applies the In predicate on the "call_sequence" field.
func CallSequenceIn(vs ...int) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldIn(FieldCallSequence, vs...))
}

// CallSequenceNotIn applies the NotIn predicate on the "call_sequence" field.
func CallSequenceNotIn(vs ...int) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNotIn(FieldCallSequence, vs...))
}

// CallSequenceGT applies the GT predicate on the "call_sequence" field.
func CallSequenceGT(v int) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGT(FieldCallSequence, v))
}

// CallSequenceGTE applies the GTE predicate on the "call_sequence" field.
func CallSequenceGTE(v int) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGTE(FieldCallSequence, v))
}

// CallSequenceLT applies the LT predicate on the "call_sequence" field.
func CallSequenceLT(v int) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLT(FieldCallSequence, v))
}

// CallSequenceLTE applies the LTE predicate on the "call_sequence" field.
func CallSequenceLTE(v int) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLTE(FieldCallSequence, v))
}

// ToolInputEQ applies the EQ predicate on the "tool_input" field.
func ToolInputEQ(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldToolInput, v))
}

// ToolInputNEQ applies the NEQ predicate on the "tool_input" field.
func ToolInputNEQ(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNEQ(FieldToolInput, v))
}

// ToolInputIn applies the In predicate on the "tool_input" field.
func ToolInputIn(vs ...string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldIn(FieldToolInput, vs...))
}

// ToolInputNotIn applies the NotIn predicate on the "tool_input" field.
func ToolInputNotIn(vs ...string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNotIn(FieldToolInput, vs...))
}

// ToolInputGT applies the GT predicate on the "tool_input" field.
func ToolInputGT(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGT(FieldToolInput, v))
}

// ToolInputGTE applies the GTE predicate on the "tool_input" field.
func ToolInputGTE(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGTE(FieldToolInput, v))
}

// ToolInputLT applies the LT predicate on the "tool_input" field.
func ToolInputLT(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLT(FieldToolInput, v))
}

// ToolInputLTE applies the LTE predicate on the "tool_input" field.
func ToolInputLTE(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLTE(FieldToolInput, v))
}

// ToolInputContains applies the Contains predicate on the "tool_input" field.
func ToolInputContains(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldContains(FieldToolInput, v))
}

// ToolInputHasPrefix applies the HasPrefix predicate on the "tool_input" field.
func ToolInputHasPrefix(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldHasPrefix(FieldToolInput, v))
}

// ToolInputHasSuffix applies the HasSuffix predicate on the "tool_input" field.
func ToolInputHasSuffix(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldHasSuffix(FieldToolInput, v))
}

// ToolInputEqualFold applies the EqualFold predicate on the "tool_input" field.
func ToolInputEqualFold(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEqualFold(FieldToolInput, v))
}

// ToolInputContainsFold applies the ContainsFold predicate on the "tool_input" field.
func ToolInputContainsFold(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldContainsFold(FieldToolInput, v))
}

// ToolOutputEQ applies the EQ predicate on the "tool_output" field.
func ToolOutputEQ(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldToolOutput, v))
}

// ToolOutputNEQ applies the NEQ predicate on the "tool_output" field.
func ToolOutputNEQ(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNEQ(FieldToolOutput, v))
}

// ToolOutputIn applies the In predicate on the "tool_output" field.
func ToolOutputIn(vs ...string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldIn(FieldToolOutput, vs...))
}

// ToolOutputNotIn applies the NotIn predicate on the "tool_output" field.
func ToolOutputNotIn(vs ...string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNotIn(FieldToolOutput, vs...))
}

// ToolOutputGT applies the GT predicate on the "tool_output" field.
func ToolOutputGT(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGT(FieldToolOutput, v))
}

// ToolOutputGTE applies the GTE predicate on the "tool_output" field.
func ToolOutputGTE(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGTE(FieldToolOutput, v))
}

// ToolOutputLT applies the LT predicate on the "tool_output" field.
func ToolOutputLT(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLT(FieldToolOutput, v))
}

// ToolOutputLTE applies the LTE predicate on the "tool_output" field.
func ToolOutputLTE(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLTE(FieldToolOutput, v))
}

// ToolOutputContains applies the Contains predicate on the "tool_output" field.
func ToolOutputContains(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldContains(FieldToolOutput, v))
}

// ToolOutputHasPrefix applies the HasPrefix predicate on the "tool_output" field.
func ToolOutputHasPrefix(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldHasPrefix(FieldToolOutput, v))
}

// ToolOutputHasSuffix applies the HasSuffix predicate on the "tool_output" field.
func ToolOutputHasSuffix(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldHasSuffix(FieldToolOutput, v))
}

// ToolOutputIsNil applies the IsNil predicate on the "tool_output" field.
func ToolOutputIsNil() predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldIsNull(FieldToolOutput))
}

// ToolOutputNotNil applies the NotNil predicate on the "tool_output" field.
func ToolOutputNotNil() predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNotNull(FieldToolOutput))
}

// ToolOutputEqualFold applies the EqualFold predicate on the "tool_output" field.
func ToolOutputEqualFold(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEqualFold(FieldToolOutput, v))
}

// ToolOutputContainsFold applies the ContainsFold predicate on the "tool_output" field.
func ToolOutputContainsFold(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldContainsFold(FieldToolOutput, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MessageToolResult) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MessageToolResult) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MessageToolResult) predicate.MessageToolResult {
	return predicate.MessageToolResult(sql.NotPredicates(p))
}
