package types

import "time"

// StreamChatRequest is the payload for starting one chat turn.
type StreamChatRequest struct {
	ConversationID string `json:"conversation_id,omitempty"`
	Provider       string `json:"provider,omitempty"`
	Model          string `json:"model,omitempty"`
	Message        string `json:"message"`
	DeepThinking   bool   `json:"deep_thinking,omitempty"`
	SearchEnabled  bool   `json:"search_enabled,omitempty"`
}

// StreamEvent is one parsed server-sent event from the chat stream.
type StreamEvent struct {
	Name string // conversation, start, chunk, thinking, search, search_results, end, error
	Data []byte
}

// ConversationData carries the conversation id sent at stream open.
type ConversationData struct {
	ID string `json:"id"`
}

// ChunkData is one content fragment.
type ChunkData struct {
	MessageID string `json:"message_id"`
	Content   string `json:"content"`
}

// ThinkingData is the extracted reasoning text delivered before the end event.
type ThinkingData struct {
	MessageID string `json:"message_id"`
	Content   string `json:"content"`
}

// SearchData reports web search progress.
type SearchData struct {
	Status string `json:"status"`
}

// EndData closes a successful turn with the full assistant message.
type EndData struct {
	MessageID string `json:"message_id"`
	Content   string `json:"content"`
}

// ErrorData closes a failed turn.
type ErrorData struct {
	Message string `json:"message"`
}

// Conversation is one row of the conversation list.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is one stored history row.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	Thinking       string    `json:"thinking,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
