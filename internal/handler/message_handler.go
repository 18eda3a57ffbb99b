package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
	"github.com/peng15653830a/springai-chat-sub004/internal/handler/dto"
)

// MessageHandler serves conversation history and per-message lookups.
type MessageHandler struct {
	usecase domain.ChatUsecase
	logger  *slog.Logger
}

// NewMessageHandler creates the message handler.
func NewMessageHandler(usecase domain.ChatUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// ListConversations returns the caller's conversations, newest first.
func (h *MessageHandler) ListConversations(ctx context.Context, c *app.RequestContext) {
	userID := optionalUserID(c)
	if userID == "" {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	convs, err := h.usecase.ListConversations(ctx, userID)
	if err != nil {
		h.logger.Error("failed to list conversations", "user_id", userID, "error", err)
		ErrorResponse(c, err)
		return
	}

	items := make([]dto.ConversationResponse, len(convs))
	for i, conv := range convs {
		items[i] = dto.ConversationResponse{
			ID:        conv.ID.String(),
			Title:     conv.Title,
			CreatedAt: conv.CreatedAt,
			UpdatedAt: conv.UpdatedAt,
		}
	}
	SuccessResponse(c, ListResponse{Items: items, TotalCount: len(items)})
}

// History returns the conversation's stored messages in order.
func (h *MessageHandler) History(ctx context.Context, c *app.RequestContext) {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, domain.NewInvalidInputError("conversation id must be a UUID"))
		return
	}

	messages, err := h.usecase.History(ctx, conversationID)
	if err != nil {
		h.logger.Error("failed to load history", "conversation_id", conversationID, "error", err)
		ErrorResponse(c, err)
		return
	}

	items := make([]dto.MessageResponse, len(messages))
	for i, m := range messages {
		items[i] = dto.MessageResponse{
			ID:             m.ID.String(),
			ConversationID: m.ConversationID.String(),
			Role:           m.Role,
			Content:        m.Content,
			Thinking:       m.Thinking,
			CreatedAt:      m.CreatedAt,
		}
	}
	SuccessResponse(c, ListResponse{Items: items, TotalCount: len(items)})
}

// DeleteConversation removes the conversation with its messages and tool
// results.
func (h *MessageHandler) DeleteConversation(ctx context.Context, c *app.RequestContext) {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, domain.NewInvalidInputError("conversation id must be a UUID"))
		return
	}

	if err := h.usecase.DeleteConversation(ctx, conversationID); err != nil {
		h.logger.Error("failed to delete conversation", "conversation_id", conversationID, "error", err)
		ErrorResponse(c, err)
		return
	}
	NoContentResponse(c)
}

// SearchResults returns the web search results captured for one assistant
// message.
func (h *MessageHandler) SearchResults(ctx context.Context, c *app.RequestContext) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, domain.NewInvalidInputError("message id must be a UUID"))
		return
	}

	results, err := h.usecase.SearchResultsByMessage(ctx, messageID)
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, ListResponse{Items: results, TotalCount: len(results)})
}
