package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/message"
)

// messageRepository is the ent implementation of MessageRepository.
type messageRepository struct {
	client *ent.Client
}

// NewMessageRepository creates the message repository.
func NewMessageRepository(client *ent.Client) domain.MessageRepository {
	return &messageRepository{client: client}
}

// SaveMessage inserts one message row.
func (r *messageRepository) SaveMessage(ctx context.Context, conversationID uuid.UUID, role, content string) (*entity.Message, error) {
	created, err := r.client.Message.Create().
		SetConversationID(conversationID).
		SetRole(role).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}
	return toMessageEntity(created), nil
}

// UpdateAssistantMessage replaces the draft content with the final text.
func (r *messageRepository) UpdateAssistantMessage(ctx context.Context, messageID uuid.UUID, content, thinking string) error {
	update := r.client.Message.UpdateOneID(messageID).
		SetContent(content)
	if thinking != "" {
		update = update.SetThinking(thinking)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("message", messageID.String())
		}
		return fmt.Errorf("failed to update assistant message: %w", err)
	}
	return nil
}

// ListByConversation returns the history in creation order. Only the roles
// the model understands survive the query; anything else is filtered out.
func (r *messageRepository) ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error) {
	msgs, err := r.client.Message.Query().
		Where(
			message.ConversationID(conversationID),
			message.RoleIn("user", "assistant", "system"),
		).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	result := make([]*entity.Message, len(msgs))
	for i, m := range msgs {
		result[i] = toMessageEntity(m)
	}
	return result, nil
}

// ListIDsByConversation returns the ids of all messages in the conversation,
// unfiltered, so tool-result cascades see every row.
func (r *messageRepository) ListIDsByConversation(ctx context.Context, conversationID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.client.Message.Query().
		Where(message.ConversationID(conversationID)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list message ids: %w", err)
	}
	return ids, nil
}

// DeleteMessage removes one message row.
func (r *messageRepository) DeleteMessage(ctx context.Context, messageID uuid.UUID) error {
	err := r.client.Message.DeleteOneID(messageID).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

// DeleteByConversation removes all messages of a conversation.
func (r *messageRepository) DeleteByConversation(ctx context.Context, conversationID uuid.UUID) error {
	_, err := r.client.Message.Delete().
		Where(message.ConversationID(conversationID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete conversation messages: %w", err)
	}
	return nil
}
