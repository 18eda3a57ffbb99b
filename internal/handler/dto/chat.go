package dto

import "time"

// ============ Chat API request/response types (HTTP layer) ============

// StreamChatRequest starts one streaming conversation turn.
type StreamChatRequest struct {
	ConversationID string   `json:"conversation_id,omitempty"` // UUID, empty starts a new conversation
	Provider       string   `json:"provider,omitempty"`
	Model          string   `json:"model,omitempty"`
	Message        string   `json:"message"`
	Temperature    *float64 `json:"temperature,omitempty"`
	MaxTokens      *int     `json:"max_tokens,omitempty"`
	TopP           *float64 `json:"top_p,omitempty"`
	DeepThinking   bool     `json:"deep_thinking,omitempty"`
	SearchEnabled  bool     `json:"search_enabled,omitempty"`
}

// ConversationResponse is one conversation summary.
type ConversationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessageResponse is one stored message.
type MessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	Thinking       string    `json:"thinking,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
