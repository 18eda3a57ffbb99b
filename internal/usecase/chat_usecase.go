package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/peng15653830a/springai-chat-sub004/internal/config"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
	"github.com/peng15653830a/springai-chat-sub004/internal/stream"
	"github.com/peng15653830a/springai-chat-sub004/internal/tool"
	"github.com/peng15653830a/springai-chat-sub004/pkg/markdown"
)

// maxMessageLength bounds one user turn.
const maxMessageLength = 10000

// titleLimit bounds the auto-generated conversation title, in runes.
const titleLimit = 30

// ProviderRegistry resolves a provider by name. Satisfied by llm.Registry.
type ProviderRegistry interface {
	Get(name string) (domain.ModelProvider, error)
}

// ToolResolver maps a request's capability flags onto tools. Satisfied by
// tool.Registry.
type ToolResolver interface {
	ResolveTools(req *entity.StreamRequest) []tool.Tool
}

// chatUsecase runs one conversation turn end to end: it resolves the model,
// persists the user turn and an assistant draft, runs pre-flight tools,
// streams the model output through a relay/aggregator pair, and finalizes the
// draft with the aggregated answer.
type chatUsecase struct {
	cfg           *config.Config
	conversations domain.ConversationRepository
	messages      domain.MessageRepository
	toolResults   domain.ToolResultRepository
	selector      domain.ModelSelector
	prompts       domain.PromptBuilder
	providers     ProviderRegistry
	tools         ToolResolver
	events        domain.EventPublisher
	logger        *slog.Logger

	responseTimeout time.Duration
}

// NewChatUsecase wires the chat turn pipeline.
//
// Parameters:
//   - cfg: resolved application configuration
//   - conversations, messages, toolResults: persistence repositories
//   - selector: provider/model resolution
//   - prompts: transcript assembly
//   - providers: the provider table
//   - tools: the capability flag table
//   - events: the per-conversation event hub
//   - logger: structured logger
//
// Returns:
//   - domain.ChatUsecase implementation
func NewChatUsecase(
	cfg *config.Config,
	conversations domain.ConversationRepository,
	messages domain.MessageRepository,
	toolResults domain.ToolResultRepository,
	selector domain.ModelSelector,
	prompts domain.PromptBuilder,
	providers ProviderRegistry,
	tools ToolResolver,
	events domain.EventPublisher,
	logger *slog.Logger,
) domain.ChatUsecase {
	return &chatUsecase{
		cfg:             cfg,
		conversations:   conversations,
		messages:        messages,
		toolResults:     toolResults,
		selector:        selector,
		prompts:         prompts,
		providers:       providers,
		tools:           tools,
		events:          events,
		logger:          logger,
		responseTimeout: cfg.Streaming.ResponseTimeout,
	}
}

// StreamChat validates and resolves the request synchronously, then starts
// the turn in the background and returns a live viewer channel. Any failure
// after this point surfaces as an ERROR event on the channel, never as a
// second return path.
func (u *chatUsecase) StreamChat(ctx context.Context, req *entity.StreamRequest) (uuid.UUID, <-chan domain.ChatEvent, func(), error) {
	if err := u.validateStreamRequest(req); err != nil {
		return uuid.Nil, nil, nil, err
	}

	// The request stays read-only; a fresh id lives only in the return value
	// and the turn goroutine.
	convID := req.ConversationID
	if convID == uuid.Nil {
		convID = uuid.New()
		u.logger.Info("new conversation started", "conversation_id", convID)
	}

	selection, err := u.selector.SelectModelForUser(ctx, req.UserID, req.Provider, req.Model)
	if err != nil {
		return uuid.Nil, nil, nil, err
	}
	provider, err := u.providers.Get(selection.ProviderName)
	if err != nil {
		return uuid.Nil, nil, nil, err
	}

	viewer, unregister := u.events.RegisterConversation(convID)

	// The turn outlives the caller's context: a viewer disconnect must not
	// cancel the generation, only the response timeout may.
	go u.run(context.WithoutCancel(ctx), convID, req, selection, provider)

	return convID, viewer, unregister, nil
}

// run executes one turn. Exactly one terminal event (END or ERROR) is
// published on every path, after which the hub entry is torn down.
func (u *chatUsecase) run(ctx context.Context, convID uuid.UUID, req *entity.StreamRequest, selection entity.ModelSelection, provider domain.ModelProvider) {
	ctx, cancel := context.WithTimeout(ctx, u.responseTimeout)
	defer cancel()

	defer u.events.RemoveConversation(convID)

	u.events.PublishStart(convID, "processing")

	conv, err := u.conversations.GetOrCreate(ctx, convID, req.UserID)
	if err != nil {
		u.logger.Error("failed to get or create conversation", "conversation_id", convID, "error", err)
		u.events.PublishError(convID, userSafeMessage(err))
		return
	}
	if conv.Title == "" {
		if terr := u.conversations.UpdateTitle(ctx, convID, truncateTitle(req.Message)); terr != nil {
			u.logger.Warn("failed to set conversation title", "conversation_id", convID, "error", terr)
		}
	}

	if _, err := u.messages.SaveMessage(ctx, convID, "user", req.Message); err != nil {
		u.logger.Error("failed to save user message", "conversation_id", convID, "error", err)
		u.events.PublishError(convID, userSafeMessage(err))
		return
	}

	// The draft row exists before streaming starts so tool calls and chunk
	// events can carry a stable message id.
	draft, err := u.messages.SaveMessage(ctx, convID, "assistant", "")
	if err != nil {
		u.logger.Error("failed to create assistant draft", "conversation_id", convID, "error", err)
		u.events.PublishError(convID, userSafeMessage(err))
		return
	}

	searchContext := u.runTools(ctx, req, convID, draft.ID)

	prompt, err := u.prompts.BuildPrompt(ctx, convID, req.Message, searchContext)
	if err != nil {
		u.failTurn(ctx, convID, draft.ID, err)
		return
	}

	src, err := provider.StreamChat(ctx, selection.ModelName, u.buildOptions(req, selection), prompt)
	if err != nil {
		u.failTurn(ctx, convID, draft.ID, err)
		return
	}

	full, reasoning, err := u.relayAndAggregate(convID, draft.ID, src)
	if err != nil {
		u.failTurn(ctx, convID, draft.ID, err)
		return
	}

	// Reasoning models deliver thinking as its own delta stream; inline
	// <think> models embed it in the text and need extraction.
	content, thinking := extractThinking(full)
	if reasoning != "" {
		thinking = reasoning
	}
	content = markdown.Normalize(content)

	// Persistence of the final answer is best-effort: viewers already hold
	// the full text, so a write failure downgrades to a log line.
	if err := u.messages.UpdateAssistantMessage(ctx, draft.ID, content, thinking); err != nil {
		u.logger.Error("failed to persist final answer",
			"conversation_id", convID,
			"message_id", draft.ID,
			"error", err,
		)
	}

	// Streamed reasoning was already relayed as THINKING events; only the
	// tag-extracted kind is published here, once.
	if thinking != "" && reasoning == "" {
		u.events.PublishThinking(convID, draft.ID, thinking)
	}
	u.events.PublishEnd(convID, draft.ID, content)

	u.logger.Info("chat turn completed",
		"conversation_id", convID,
		"message_id", draft.ID,
		"provider", selection.ProviderName,
		"model", selection.ModelName,
		"content_len", len(content),
	)
}

// relayAndAggregate consumes the provider stream exactly once and fans it out
// to two consumers: the relay publishes each fragment live, the aggregator
// accumulates the full text and reasoning. Both drain the stream fully even
// after an error fragment so neither can stall the fan-out.
func (u *chatUsecase) relayAndAggregate(convID, messageID uuid.UUID, src <-chan entity.StreamChunk) (string, string, error) {
	mc := stream.NewMulticast(src, 2)
	relayCh := mc.Subscribe()
	aggCh := mc.Subscribe()

	var full, reasoning strings.Builder
	var g errgroup.Group

	g.Go(func() error {
		var streamErr error
		for chunk := range relayCh {
			if chunk.Err != nil {
				streamErr = chunk.Err
				continue
			}
			if chunk.Reasoning != "" {
				u.events.PublishThinking(convID, messageID, chunk.Reasoning)
			}
			if chunk.Text != "" {
				u.events.PublishChunk(convID, messageID, chunk.Text)
			}
		}
		return streamErr
	})

	g.Go(func() error {
		var streamErr error
		for chunk := range aggCh {
			if chunk.Err != nil {
				streamErr = chunk.Err
				continue
			}
			full.WriteString(chunk.Text)
			reasoning.WriteString(chunk.Reasoning)
		}
		return streamErr
	})

	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return full.String(), reasoning.String(), nil
}

// runTools invokes every tool resolved for the request before the model call
// and concatenates their context. A tool failure is logged and skipped; the
// turn continues without that tool's context.
func (u *chatUsecase) runTools(ctx context.Context, req *entity.StreamRequest, convID, messageID uuid.UUID) string {
	tools := u.tools.ResolveTools(req)
	if len(tools) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, t := range tools {
		out, err := t.Invoke(ctx, convID, messageID, req.Message)
		if err != nil {
			u.logger.Warn("tool invocation failed, continuing without its context",
				"tool", t.Name(),
				"message_id", messageID,
				"error", err,
			)
			continue
		}
		if out != "" {
			sb.WriteString(out)
			sb.WriteString("\n")
		}
	}

	// Per-message tool state (budgets, query caches) dies with the tool phase.
	for _, t := range tools {
		if f, ok := t.(interface{ Forget(uuid.UUID) }); ok {
			f.Forget(messageID)
		}
	}

	return sb.String()
}

// failTurn publishes the single ERROR terminal event and rolls the draft
// back: a failed stream leaves no half-written assistant message behind.
func (u *chatUsecase) failTurn(ctx context.Context, convID, messageID uuid.UUID, err error) {
	u.logger.Error("chat turn failed",
		"conversation_id", convID,
		"message_id", messageID,
		"error", err,
	)

	if derr := u.toolResults.DeleteByMessageIDs(ctx, []uuid.UUID{messageID}); derr != nil {
		u.logger.Warn("failed to delete tool results of failed turn", "message_id", messageID, "error", derr)
	}
	if derr := u.messages.DeleteMessage(ctx, messageID); derr != nil {
		u.logger.Warn("failed to delete draft of failed turn", "message_id", messageID, "error", derr)
	}

	u.events.PublishError(convID, userSafeMessage(err))
}

// buildOptions layers sampling parameters: request overrides beat the model
// catalog entry, which beats the process defaults.
func (u *chatUsecase) buildOptions(req *entity.StreamRequest, selection entity.ModelSelection) entity.GenerationOptions {
	opts := entity.GenerationOptions{
		Temperature: u.cfg.Defaults.Temperature,
		MaxTokens:   u.cfg.Defaults.MaxTokens,
		TopP:        u.cfg.Defaults.TopP,
	}

	mc, known := u.cfg.ModelConfig(selection.ProviderName, selection.ModelName)
	if known {
		if mc.Temperature != nil {
			opts.Temperature = *mc.Temperature
		}
		if mc.MaxTokens > 0 {
			opts.MaxTokens = mc.MaxTokens
		}
		opts.EnableThinking = req.DeepThinking && mc.SupportsThinking
	} else {
		opts.EnableThinking = req.DeepThinking
	}

	if req.Temperature != nil {
		opts.Temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		opts.MaxTokens = *req.MaxTokens
	}
	if req.TopP != nil {
		opts.TopP = *req.TopP
	}
	return opts
}

// validateStreamRequest validates the request without modifying it.
func (u *chatUsecase) validateStreamRequest(req *entity.StreamRequest) error {
	if req == nil {
		return domain.ErrInvalidInput
	}

	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}
	if len(req.Message) > maxMessageLength {
		return fmt.Errorf("%w: message too long (max %d characters)", domain.ErrInvalidInput, maxMessageLength)
	}
	return nil
}

// History returns the conversation's stored messages in order.
func (u *chatUsecase) History(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error) {
	if conversationID == uuid.Nil {
		return nil, fmt.Errorf("%w: conversation_id is required", domain.ErrInvalidInput)
	}
	return u.messages.ListByConversation(ctx, conversationID)
}

// ListConversations returns the user's conversations, newest first.
func (u *chatUsecase) ListConversations(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrInvalidInput)
	}
	return u.conversations.ListByUser(ctx, userID)
}

// SearchResultsByMessage returns search results captured for one assistant
// message during its turn.
func (u *chatUsecase) SearchResultsByMessage(ctx context.Context, messageID uuid.UUID) ([]entity.SearchResult, error) {
	if messageID == uuid.Nil {
		return nil, fmt.Errorf("%w: message_id is required", domain.ErrInvalidInput)
	}
	return u.events.SearchResultsByMessage(messageID), nil
}

// DeleteConversation removes the conversation, its messages, and every tool
// result keyed by those messages, in dependency order.
func (u *chatUsecase) DeleteConversation(ctx context.Context, conversationID uuid.UUID) error {
	if conversationID == uuid.Nil {
		return fmt.Errorf("%w: conversation_id is required", domain.ErrInvalidInput)
	}

	ids, err := u.messages.ListIDsByConversation(ctx, conversationID)
	if err != nil {
		return fmt.Errorf("failed to list conversation messages: %w", err)
	}
	if len(ids) > 0 {
		if err := u.toolResults.DeleteByMessageIDs(ctx, ids); err != nil {
			return fmt.Errorf("failed to delete tool results: %w", err)
		}
	}
	if err := u.messages.DeleteByConversation(ctx, conversationID); err != nil {
		return fmt.Errorf("failed to delete messages: %w", err)
	}
	if err := u.conversations.Delete(ctx, conversationID); err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}

	u.logger.Info("conversation deleted", "conversation_id", conversationID, "messages", len(ids))
	return nil
}

// truncateTitle derives a conversation title from the first user message.
func truncateTitle(message string) string {
	title := strings.TrimSpace(message)
	if i := strings.IndexByte(title, '\n'); i >= 0 {
		title = title[:i]
	}
	runes := []rune(title)
	if len(runes) > titleLimit {
		title = string(runes[:titleLimit]) + "..."
	}
	return title
}
