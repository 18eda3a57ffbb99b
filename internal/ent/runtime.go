// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/conversation"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/message"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/messagetoolresult"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/schema"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/user"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/usermodelpreference"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescUserID is the schema descriptor for user_id field.
	conversationDescUserID := conversationFields[1].Descriptor()
	// conversation.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	conversation.UserIDValidator = conversationDescUserID.Validators[0].(func(string) error)
	// conversationDescTitle is the schema descriptor for title field.
	conversationDescTitle := conversationFields[2].Descriptor()
	// conversation.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	conversation.TitleValidator = conversationDescTitle.Validators[0].(func(string) error)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[3].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[4].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// conversationDescID is the schema descriptor for id field.
	conversationDescID := conversationFields[0].Descriptor()
	// conversation.DefaultID holds the default value on creation for the id field.
	conversation.DefaultID = conversationDescID.Default.(func() uuid.UUID)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescRole is the schema descriptor for role field.
	messageDescRole := messageFields[2].Descriptor()
	// message.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	message.RoleValidator = func() func(string) error {
		validators := messageDescRole.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(role string) error {
			for _, fn := range fns {
				if err := fn(role); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[5].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescID is the schema descriptor for id field.
	messageDescID := messageFields[0].Descriptor()
	// message.DefaultID holds the default value on creation for the id field.
	message.DefaultID = messageDescID.Default.(func() uuid.UUID)
	messagetoolresultFields := schema.MessageToolResult{}.Fields()
	_ = messagetoolresultFields
	// messagetoolresultDescToolName is the schema descriptor for tool_name field.
	messagetoolresultDescToolName := messagetoolresultFields[2].Descriptor()
	// messagetoolresult.ToolNameValidator is a validator for the "tool_name" field. It is called by the builders before save.
	messagetoolresult.ToolNameValidator = func() func(string) error {
		validators := messagetoolresultDescToolName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(tool_name string) error {
			for _, fn := range fns {
				if err := fn(tool_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// messagetoolresultDescCallSequence is the schema descriptor for call_sequence field.
	messagetoolresultDescCallSequence := messagetoolresultFields[3].Descriptor()
	// messagetoolresult.CallSequenceValidator is a validator for the "call_sequence" field. It is called by the builders before save.
	messagetoolresult.CallSequenceValidator = messagetoolresultDescCallSequence.Validators[0].(func(int) error)
	// messagetoolresultDescStatus is the schema descriptor for status field.
	messagetoolresultDescStatus := messagetoolresultFields[6].Descriptor()
	// messagetoolresult.DefaultStatus holds the default value on creation for the status field.
	messagetoolresult.DefaultStatus = messagetoolresultDescStatus.Default.(string)
	// messagetoolresult.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	messagetoolresult.StatusValidator = messagetoolresultDescStatus.Validators[0].(func(string) error)
	// messagetoolresultDescCreatedAt is the schema descriptor for created_at field.
	messagetoolresultDescCreatedAt := messagetoolresultFields[8].Descriptor()
	// messagetoolresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	messagetoolresult.DefaultCreatedAt = messagetoolresultDescCreatedAt.Default.(func() time.Time)
	// messagetoolresultDescUpdatedAt is the schema descriptor for updated_at field.
	messagetoolresultDescUpdatedAt := messagetoolresultFields[9].Descriptor()
	// messagetoolresult.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	messagetoolresult.DefaultUpdatedAt = messagetoolresultDescUpdatedAt.Default.(func() time.Time)
	// messagetoolresult.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	messagetoolresult.UpdateDefaultUpdatedAt = messagetoolresultDescUpdatedAt.UpdateDefault.(func() time.Time)
	// messagetoolresultDescID is the schema descriptor for id field.
	messagetoolresultDescID := messagetoolresultFields[0].Descriptor()
	// messagetoolresult.DefaultID holds the default value on creation for the id field.
	messagetoolresult.DefaultID = messagetoolresultDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[6].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	usermodelpreferenceFields := schema.UserModelPreference{}.Fields()
	_ = usermodelpreferenceFields
	// usermodelpreferenceDescUserID is the schema descriptor for user_id field.
	usermodelpreferenceDescUserID := usermodelpreferenceFields[1].Descriptor()
	// usermodelpreference.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	usermodelpreference.UserIDValidator = func() func(string) error {
		validators := usermodelpreferenceDescUserID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(user_id string) error {
			for _, fn := range fns {
				if err := fn(user_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usermodelpreferenceDescProviderName is the schema descriptor for provider_name field.
	usermodelpreferenceDescProviderName := usermodelpreferenceFields[2].Descriptor()
	// usermodelpreference.ProviderNameValidator is a validator for the "provider_name" field. It is called by the builders before save.
	usermodelpreference.ProviderNameValidator = func() func(string) error {
		validators := usermodelpreferenceDescProviderName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(provider_name string) error {
			for _, fn := range fns {
				if err := fn(provider_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usermodelpreferenceDescModelName is the schema descriptor for model_name field.
	usermodelpreferenceDescModelName := usermodelpreferenceFields[3].Descriptor()
	// usermodelpreference.ModelNameValidator is a validator for the "model_name" field. It is called by the builders before save.
	usermodelpreference.ModelNameValidator = func() func(string) error {
		validators := usermodelpreferenceDescModelName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(model_name string) error {
			for _, fn := range fns {
				if err := fn(model_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usermodelpreferenceDescCreatedAt is the schema descriptor for created_at field.
	usermodelpreferenceDescCreatedAt := usermodelpreferenceFields[4].Descriptor()
	// usermodelpreference.DefaultCreatedAt holds the default value on creation for the created_at field.
	usermodelpreference.DefaultCreatedAt = usermodelpreferenceDescCreatedAt.Default.(func() time.Time)
	// usermodelpreferenceDescUpdatedAt is the schema descriptor for updated_at field.
	usermodelpreferenceDescUpdatedAt := usermodelpreferenceFields[5].Descriptor()
	// usermodelpreference.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usermodelpreference.DefaultUpdatedAt = usermodelpreferenceDescUpdatedAt.Default.(func() time.Time)
	// usermodelpreference.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usermodelpreference.UpdateDefaultUpdatedAt = usermodelpreferenceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usermodelpreferenceDescID is the schema descriptor for id field.
	usermodelpreferenceDescID := usermodelpreferenceFields[0].Descriptor()
	// usermodelpreference.DefaultID holds the default value on creation for the id field.
	usermodelpreference.DefaultID = usermodelpreferenceDescID.Default.(func() uuid.UUID)
}
