package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/conversation"
)

// conversationRepository is the ent implementation of ConversationRepository.
type conversationRepository struct {
	client *ent.Client
}

// NewConversationRepository creates the conversation repository.
func NewConversationRepository(client *ent.Client) domain.ConversationRepository {
	return &conversationRepository{client: client}
}

// GetOrCreate returns the conversation, creating it on first use. The caller
// supplies the id, so a reconnecting client lands on the same row.
func (r *conversationRepository) GetOrCreate(ctx context.Context, conversationID uuid.UUID, userID string) (*entity.Conversation, error) {
	c, err := r.client.Conversation.Get(ctx, conversationID)
	if err == nil {
		return toConversationEntity(c), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	created, err := r.client.Conversation.Create().
		SetID(conversationID).
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		// Lost a creation race; the row exists now.
		if ent.IsConstraintError(err) {
			if c, gerr := r.client.Conversation.Get(ctx, conversationID); gerr == nil {
				return toConversationEntity(c), nil
			}
		}
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return toConversationEntity(created), nil
}

// Get returns the conversation or a not-found error.
func (r *conversationRepository) Get(ctx context.Context, conversationID uuid.UUID) (*entity.Conversation, error) {
	c, err := r.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("conversation", conversationID.String())
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return toConversationEntity(c), nil
}

// ListByUser returns the user's conversations, newest first.
func (r *conversationRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	convs, err := r.client.Conversation.Query().
		Where(conversation.UserID(userID)).
		Order(ent.Desc(conversation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	result := make([]*entity.Conversation, len(convs))
	for i, c := range convs {
		result[i] = toConversationEntity(c)
	}
	return result, nil
}

// UpdateTitle sets the conversation title.
func (r *conversationRepository) UpdateTitle(ctx context.Context, conversationID uuid.UUID, title string) error {
	err := r.client.Conversation.UpdateOneID(conversationID).
		SetTitle(title).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("conversation", conversationID.String())
		}
		return fmt.Errorf("failed to update conversation title: %w", err)
	}
	return nil
}

// Delete removes the conversation row.
func (r *conversationRepository) Delete(ctx context.Context, conversationID uuid.UUID) error {
	err := r.client.Conversation.DeleteOneID(conversationID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("conversation", conversationID.String())
		}
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	return nil
}
