package domain

import (
	"context"

	"github.com/google/uuid"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
)

// ============ Repository interfaces ============

// ConversationRepository manages conversation rows.
type ConversationRepository interface {
	// GetOrCreate returns the conversation, creating it on first use.
	GetOrCreate(ctx context.Context, conversationID uuid.UUID, userID string) (*entity.Conversation, error)

	// Get returns the conversation or a not-found error.
	Get(ctx context.Context, conversationID uuid.UUID) (*entity.Conversation, error)

	// ListByUser returns the user's conversations, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Conversation, error)

	// UpdateTitle sets the conversation title.
	UpdateTitle(ctx context.Context, conversationID uuid.UUID, title string) error

	// Delete removes the conversation row only; messages and tool results
	// are removed by the usecase via the message/tool repositories.
	Delete(ctx context.Context, conversationID uuid.UUID) error
}

// MessageRepository persists conversation messages.
type MessageRepository interface {
	// SaveMessage inserts one message row and returns it with its id.
	SaveMessage(ctx context.Context, conversationID uuid.UUID, role, content string) (*entity.Message, error)

	// UpdateAssistantMessage replaces the draft content of an assistant
	// message with the final text and optional reasoning.
	UpdateAssistantMessage(ctx context.Context, messageID uuid.UUID, content, thinking string) error

	// ListByConversation returns the conversation history in creation
	// order. Only user/assistant/system roles are returned; anything else
	// is dropped silently.
	ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error)

	// ListIDsByConversation returns the ids of all messages in the
	// conversation, used to cascade tool-result deletion.
	ListIDsByConversation(ctx context.Context, conversationID uuid.UUID) ([]uuid.UUID, error)

	// DeleteMessage removes one message row.
	DeleteMessage(ctx context.Context, messageID uuid.UUID) error

	// DeleteByConversation removes all messages of a conversation.
	DeleteByConversation(ctx context.Context, conversationID uuid.UUID) error
}

// ToolResultRepository persists tool invocation records. Sequence numbers
// are assigned per message, monotonically from 1, and must stay gapless
// under concurrent calls for the same message.
type ToolResultRepository interface {
	// StartToolCall inserts an IN_PROGRESS record with the next call
	// sequence for the message and returns it.
	StartToolCall(ctx context.Context, messageID uuid.UUID, toolName, toolInput string) (*entity.ToolResult, error)

	// CompleteToolCall marks the record SUCCESS and stores the output.
	CompleteToolCall(ctx context.Context, toolResultID uuid.UUID, toolOutput string) error

	// FailToolCall marks the record FAILED and stores the error message.
	FailToolCall(ctx context.Context, toolResultID uuid.UUID, errorMessage string) error

	// ListByMessage returns the message's tool results in call order.
	ListByMessage(ctx context.Context, messageID uuid.UUID) ([]*entity.ToolResult, error)

	// DeleteByMessageIDs removes all tool results owned by the messages.
	DeleteByMessageIDs(ctx context.Context, messageIDs []uuid.UUID) error
}

// UserPreferenceRepository stores per-user default model choices.
type UserPreferenceRepository interface {
	// GetDefault returns the user's stored preference, or a not-found
	// error if none has been saved.
	GetDefault(ctx context.Context, userID string) (*entity.UserModelPreference, error)

	// SetDefault upserts the user's default provider/model pair.
	SetDefault(ctx context.Context, userID, providerName, modelName string) (*entity.UserModelPreference, error)

	// DeleteDefault removes the user's stored preference.
	DeleteDefault(ctx context.Context, userID string) error
}

// ============ Streaming collaborators ============

// ModelProvider produces a finite, possibly empty sequence of text fragments
// for one request. The returned channel is closed on natural completion; a
// transport failure is delivered as a chunk with Err set, then close.
type ModelProvider interface {
	// Name returns the provider's registry name (e.g. "deepseek").
	Name() string

	// StreamChat starts one generation call and returns the live chunk
	// channel. Implementations must honour ctx cancellation.
	StreamChat(ctx context.Context, model string, opts entity.GenerationOptions, prompt string) (<-chan entity.StreamChunk, error)
}

// EventPublisher is the per-conversation multiplexer: producers publish
// typed events onto a conversation's channel, viewers subscribe to it.
// Per publisher, delivery order equals publish order; no ordering is
// guaranteed across independent publishers racing on one conversation.
type EventPublisher interface {
	PublishStart(conversationID uuid.UUID, message string)
	PublishChunk(conversationID, messageID uuid.UUID, content string)
	PublishThinking(conversationID, messageID uuid.UUID, content string)
	PublishSearch(conversationID uuid.UUID, status string)
	PublishSearchResults(conversationID, messageID uuid.UUID, results []entity.SearchResult)
	PublishEnd(conversationID, messageID uuid.UUID, content string)
	PublishError(conversationID uuid.UUID, message string)

	// RegisterConversation attaches a new viewer and returns its event
	// channel plus an unregister func. The viewer sees events published
	// from this moment on; earlier events are not replayed.
	RegisterConversation(conversationID uuid.UUID) (<-chan ChatEvent, func())

	// RemoveConversation tears the hub entry down, closing all viewer
	// channels. Later publishes to the same id create a fresh entry.
	RemoveConversation(conversationID uuid.UUID)

	// SearchResultsByConversation returns search results captured for the
	// conversation so far, independent of the live channel.
	SearchResultsByConversation(conversationID uuid.UUID) []entity.SearchResult

	// SearchResultsByMessage returns search results captured for one
	// message id.
	SearchResultsByMessage(messageID uuid.UUID) []entity.SearchResult
}

// SearchService performs one web search. Implementations return an empty
// slice rather than an error when the backend is disabled.
type SearchService interface {
	Search(ctx context.Context, query string) ([]entity.SearchResult, error)
	IsAvailable() bool
}

// ============ Usecase interfaces ============

// ChatUsecase runs one conversation turn end to end.
type ChatUsecase interface {
	// StreamChat validates and resolves the request, then starts the turn
	// and returns the conversation id the turn runs under plus a live view
	// of its event sequence. The id is generated when the request carries
	// none; the request itself is never written to. Resolution failures
	// are returned before any event is emitted; after streaming begins all
	// failures surface as ERROR events on the channel.
	StreamChat(ctx context.Context, req *entity.StreamRequest) (uuid.UUID, <-chan ChatEvent, func(), error)

	// History returns the conversation's stored messages in order.
	History(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error)

	// ListConversations returns the user's conversations, newest first.
	ListConversations(ctx context.Context, userID string) ([]*entity.Conversation, error)

	// SearchResultsByMessage returns persisted web search results captured
	// for one assistant message.
	SearchResultsByMessage(ctx context.Context, messageID uuid.UUID) ([]entity.SearchResult, error)

	// DeleteConversation removes the conversation, its messages, and all
	// tool results keyed by those messages.
	DeleteConversation(ctx context.Context, conversationID uuid.UUID) error
}

// ModelSelector resolves which provider/model serve a request.
type ModelSelector interface {
	// SelectModelForUser applies the priority order: explicit request
	// fields, stored user preference, configured defaults. An unavailable
	// requested provider degrades silently to the default provider.
	SelectModelForUser(ctx context.Context, userID, providerName, modelName string) (entity.ModelSelection, error)
}

// PromptBuilder turns stored history plus the current message into the
// provider prompt string.
type PromptBuilder interface {
	BuildPrompt(ctx context.Context, conversationID uuid.UUID, message, searchContext string) (string, error)
}
