package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// StreamRequest describes one generation call. It is created once per user
// turn and never mutated afterwards; all core components receive it by
// pointer but treat it as read-only.
type StreamRequest struct {
	ConversationID uuid.UUID
	UserID         string // optional, empty means anonymous
	Provider       string // optional, resolved by the model selector
	Model          string // optional, resolved by the model selector
	Message        string
	Temperature    *float64
	MaxTokens      *int
	TopP           *float64
	DeepThinking   bool
	SearchEnabled  bool
}

// ModelSelection is the resolved (provider, model) pair for one request.
// Derived per request, never persisted on its own.
type ModelSelection struct {
	ProviderName string
	ModelName    string
}

// GenerationOptions carries the per-call sampling parameters handed to a
// model provider after defaults have been applied.
type GenerationOptions struct {
	Temperature    float64
	MaxTokens      int
	TopP           float64
	EnableThinking bool
}

// StreamChunk is one raw fragment from a model provider. Text and Reasoning
// are independent delta streams of the same call; reasoning models interleave
// them. A non-nil Err terminates the stream; natural completion is signalled
// by channel close.
type StreamChunk struct {
	Text      string
	Reasoning string
	Err       error
}

// Message is one persisted turn fragment of a conversation.
type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	Role           string // user, assistant, system
	Content        string
	Thinking       string // extracted reasoning text, assistant messages only
	CreatedAt      time.Time
}

// Conversation groups the messages of one chat thread.
type Conversation struct {
	ID        uuid.UUID
	UserID    string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tool call status values for ToolResult.
const (
	ToolStatusInProgress = "IN_PROGRESS"
	ToolStatusSuccess    = "SUCCESS"
	ToolStatusFailed     = "FAILED"
)

// ToolResult records one tool invocation made while generating a message.
// CallSequence is 1-based and unique within the owning message.
type ToolResult struct {
	ID           uuid.UUID
	MessageID    uuid.UUID
	ToolName     string
	CallSequence int
	ToolInput    string
	ToolOutput   string
	Status       string
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SearchResult is one ranked web search hit handed back to the model and
// surfaced to viewers through SEARCH_RESULTS events.
type SearchResult struct {
	Title   string   `json:"title"`
	URL     string   `json:"url,omitempty"`
	Score   *float64 `json:"score,omitempty"`
	Content string   `json:"content,omitempty"`
}

// HasLinkableURL reports whether the result points at a citable http(s)
// source, as opposed to an inline AI summary entry.
func (r SearchResult) HasLinkableURL() bool {
	return strings.HasPrefix(r.URL, "http://") || strings.HasPrefix(r.URL, "https://")
}
