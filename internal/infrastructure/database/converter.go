package database

import (
	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent"
)

// Boundary converters from ent rows to domain entities. The dependency only
// points this way; domain entities never reference ent types.

func toUserEntity(u *ent.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		ID:           u.ID.String(),
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		LastLoginAt:  u.LastLoginAt,
		DeletedAt:    u.DeletedAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toConversationEntity(c *ent.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}
	return &entity.Conversation{
		ID:        c.ID,
		UserID:    c.UserID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toMessageEntity(m *ent.Message) *entity.Message {
	if m == nil {
		return nil
	}
	return &entity.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Role:           m.Role,
		Content:        m.Content,
		Thinking:       m.Thinking,
		CreatedAt:      m.CreatedAt,
	}
}

func toToolResultEntity(t *ent.MessageToolResult) *entity.ToolResult {
	if t == nil {
		return nil
	}
	return &entity.ToolResult{
		ID:           t.ID,
		MessageID:    t.MessageID,
		ToolName:     t.ToolName,
		CallSequence: t.CallSequence,
		ToolInput:    t.ToolInput,
		ToolOutput:   t.ToolOutput,
		Status:       t.Status,
		ErrorMessage: t.ErrorMessage,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func toPreferenceEntity(p *ent.UserModelPreference) *entity.UserModelPreference {
	if p == nil {
		return nil
	}
	return &entity.UserModelPreference{
		ID:           p.ID.String(),
		UserID:       p.UserID,
		ProviderName: p.ProviderName,
		ModelName:    p.ModelName,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
