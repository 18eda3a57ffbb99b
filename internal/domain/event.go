package domain

import (
	"github.com/google/uuid"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
)

// ChatEventType enumerates the closed set of event kinds a conversation turn
// can emit. The string value doubles as the outbound SSE event name, so the
// taxonomy-to-wire mapping is total and needs no translation table.
type ChatEventType string

const (
	EventStart         ChatEventType = "start"
	EventChunk         ChatEventType = "chunk"
	EventThinking      ChatEventType = "thinking"
	EventSearch        ChatEventType = "search"
	EventSearchResults ChatEventType = "search_results"
	EventEnd           ChatEventType = "end"
	EventError         ChatEventType = "error"
)

// ChatEvent is a tagged union over the event kinds. Events are immutable
// once constructed. Exactly one terminal event (END or ERROR) closes a turn;
// no event may follow it.
type ChatEvent struct {
	Type    ChatEventType `json:"type"`
	Payload any           `json:"payload,omitempty"`
}

// IsTerminal reports whether the event closes a turn's sequence.
func (e ChatEvent) IsTerminal() bool {
	return e.Type == EventEnd || e.Type == EventError
}

// Name returns the outbound SSE event name for the event's kind.
func (e ChatEvent) Name() string {
	return string(e.Type)
}

// ============ Event payloads ============

type StartPayload struct {
	Message string `json:"message"`
}

type ChunkPayload struct {
	MessageID uuid.UUID `json:"message_id"`
	Content   string    `json:"content"`
}

type ThinkingPayload struct {
	MessageID uuid.UUID `json:"message_id"`
	Content   string    `json:"content"`
}

type SearchPayload struct {
	Status string `json:"status"`
}

type SearchResultsPayload struct {
	MessageID uuid.UUID             `json:"message_id"`
	Results   []entity.SearchResult `json:"results"`
}

type EndPayload struct {
	MessageID uuid.UUID `json:"message_id"`
	Content   string    `json:"content"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// ============ Constructors ============

func StartEvent(message string) ChatEvent {
	return ChatEvent{Type: EventStart, Payload: StartPayload{Message: message}}
}

func ChunkEvent(messageID uuid.UUID, content string) ChatEvent {
	return ChatEvent{Type: EventChunk, Payload: ChunkPayload{MessageID: messageID, Content: content}}
}

func ThinkingEvent(messageID uuid.UUID, content string) ChatEvent {
	return ChatEvent{Type: EventThinking, Payload: ThinkingPayload{MessageID: messageID, Content: content}}
}

func SearchEvent(status string) ChatEvent {
	return ChatEvent{Type: EventSearch, Payload: SearchPayload{Status: status}}
}

func SearchResultsEvent(messageID uuid.UUID, results []entity.SearchResult) ChatEvent {
	return ChatEvent{Type: EventSearchResults, Payload: SearchResultsPayload{MessageID: messageID, Results: results}}
}

func EndEvent(messageID uuid.UUID, content string) ChatEvent {
	return ChatEvent{Type: EventEnd, Payload: EndPayload{MessageID: messageID, Content: content}}
}

func ErrorEvent(message string) ChatEvent {
	return ChatEvent{Type: EventError, Payload: ErrorPayload{Message: message}}
}
