package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/protocol/sse"
	"github.com/google/uuid"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
	"github.com/peng15653830a/springai-chat-sub004/internal/handler/dto"
)

// ChatHandler serves the streaming chat endpoints.
type ChatHandler struct {
	usecase domain.ChatUsecase
	events  domain.EventPublisher
	logger  *slog.Logger
}

// NewChatHandler creates the chat handler.
func NewChatHandler(usecase domain.ChatUsecase, events domain.EventPublisher, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		usecase: usecase,
		events:  events,
		logger:  logger,
	}
}

// StreamChat starts one conversation turn and streams its events back as SSE.
// Each chat event kind maps to the SSE event name of the same spelling; the
// stream ends after the terminal end or error event.
func (h *ChatHandler) StreamChat(ctx context.Context, c *app.RequestContext) {
	var req dto.StreamChatRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	conversationID := uuid.Nil
	if req.ConversationID != "" {
		parsed, err := uuid.Parse(req.ConversationID)
		if err != nil {
			ErrorResponse(c, domain.NewInvalidInputError("conversation_id must be a UUID"))
			return
		}
		conversationID = parsed
	}

	streamReq := &entity.StreamRequest{
		ConversationID: conversationID,
		UserID:         optionalUserID(c),
		Provider:       req.Provider,
		Model:          req.Model,
		Message:        req.Message,
		Temperature:    req.Temperature,
		MaxTokens:      req.MaxTokens,
		TopP:           req.TopP,
		DeepThinking:   req.DeepThinking,
		SearchEnabled:  req.SearchEnabled,
	}

	convID, viewer, unregister, err := h.usecase.StreamChat(ctx, streamReq)
	if err != nil {
		h.logger.Error("failed to start chat turn", "error", err)
		ErrorResponse(c, err)
		return
	}
	defer unregister()

	h.logger.Info("chat turn started",
		"conversation_id", convID,
		"user_id", streamReq.UserID,
		"search_enabled", streamReq.SearchEnabled,
	)

	c.SetStatusCode(consts.StatusOK)
	writer := sse.NewWriter(c)
	defer writer.Close()

	// The conversation id goes first so a fresh client learns the id it
	// needs for reconnects and follow-up turns.
	if err := h.writeEvent(writer, "conversation", dto.ConversationResponse{ID: convID.String()}); err != nil {
		return
	}

	h.relayEvents(ctx, writer, viewer)
}

// WatchConversation attaches a passive viewer to a conversation's live event
// stream. No events are replayed; the viewer sees the turn from the moment it
// attaches until the turn's terminal event or its own disconnect.
func (h *ChatHandler) WatchConversation(ctx context.Context, c *app.RequestContext) {
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, domain.NewInvalidInputError("conversation id must be a UUID"))
		return
	}

	viewer, unregister := h.events.RegisterConversation(conversationID)
	defer unregister()

	c.SetStatusCode(consts.StatusOK)
	writer := sse.NewWriter(c)
	defer writer.Close()

	h.relayEvents(ctx, writer, viewer)
}

// relayEvents copies hub events onto the wire until the terminal event, the
// channel close, or the client context ends.
func (h *ChatHandler) relayEvents(ctx context.Context, writer *sse.Writer, viewer <-chan domain.ChatEvent) {
	for {
		select {
		case ev, ok := <-viewer:
			if !ok {
				return
			}
			if err := h.writeEvent(writer, ev.Name(), ev.Payload); err != nil {
				h.logger.Warn("failed to write sse event, client likely gone", "error", err)
				return
			}
			if ev.IsTerminal() {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// writeEvent serializes the payload and sends it under the given event name.
func (h *ChatHandler) writeEvent(writer *sse.Writer, name string, payload any) error {
	data, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return writer.WriteEvent("", name, data)
}

// optionalUserID returns the authenticated user id, or empty for anonymous
// access on routes without the auth middleware.
func optionalUserID(c *app.RequestContext) string {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
