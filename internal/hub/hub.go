// Package hub implements the per-conversation event multiplexer. Producers
// publish typed chat events onto a conversation's channel and any number of
// viewers subscribe to it; entries are created lazily on first use and torn
// down explicitly when a turn completes.
package hub

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
)

// maxSearchMessages bounds the message-scoped search side table. Entries are
// kept past conversation teardown so late readers can still fetch them, so
// the table is capped and the oldest message evicted first.
const maxSearchMessages = 1024

// Hub is an injectable conversation registry. All methods are safe for
// concurrent use from any number of conversations; two turns racing on the
// same conversation id interleave their events rather than crash (each event
// carries its message id so viewers can demultiplex).
type Hub struct {
	mu            sync.RWMutex
	conversations map[uuid.UUID]*conversationEntry

	searchMu        sync.RWMutex
	searchByConv    map[uuid.UUID][]entity.SearchResult
	searchByMessage map[uuid.UUID][]entity.SearchResult
	searchMsgOrder  []uuid.UUID // insertion order of searchByMessage keys

	viewerBuffer int
	logger       *slog.Logger
}

type conversationEntry struct {
	mu      sync.Mutex
	viewers map[uint64]chan domain.ChatEvent
	nextID  uint64
}

// New creates a hub. viewerBuffer bounds each viewer's queue; a viewer that
// falls that far behind loses events (logged) instead of stalling producers.
func New(viewerBuffer int, logger *slog.Logger) *Hub {
	if viewerBuffer <= 0 {
		viewerBuffer = 256
	}
	return &Hub{
		conversations:   make(map[uuid.UUID]*conversationEntry),
		searchByConv:    make(map[uuid.UUID][]entity.SearchResult),
		searchByMessage: make(map[uuid.UUID][]entity.SearchResult),
		viewerBuffer:    viewerBuffer,
		logger:          logger,
	}
}

// entry returns the conversation's entry, creating it on first use.
func (h *Hub) entry(conversationID uuid.UUID) *conversationEntry {
	h.mu.RLock()
	e, ok := h.conversations[conversationID]
	h.mu.RUnlock()
	if ok {
		return e
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if e, ok = h.conversations[conversationID]; ok {
		return e
	}
	e = &conversationEntry{viewers: make(map[uint64]chan domain.ChatEvent)}
	h.conversations[conversationID] = e
	return e
}

// publish delivers one event to every currently attached viewer, in publish
// order per publisher (the entry lock serializes delivery).
func (h *Hub) publish(conversationID uuid.UUID, ev domain.ChatEvent) {
	e := h.entry(conversationID)

	e.mu.Lock()
	defer e.mu.Unlock()
	for id, ch := range e.viewers {
		select {
		case ch <- ev:
		default:
			// Viewer queue is full; dropping beats stalling the turn.
			h.logger.Warn("dropping event for slow viewer",
				"conversation_id", conversationID,
				"viewer", id,
				"event", ev.Name(),
			)
		}
	}
}

// PublishStart publishes a START event.
func (h *Hub) PublishStart(conversationID uuid.UUID, message string) {
	h.publish(conversationID, domain.StartEvent(message))
}

// PublishChunk publishes one CHUNK event.
func (h *Hub) PublishChunk(conversationID, messageID uuid.UUID, content string) {
	h.publish(conversationID, domain.ChunkEvent(messageID, content))
}

// PublishThinking publishes a THINKING event.
func (h *Hub) PublishThinking(conversationID, messageID uuid.UUID, content string) {
	h.publish(conversationID, domain.ThinkingEvent(messageID, content))
}

// PublishSearch publishes a SEARCH status event.
func (h *Hub) PublishSearch(conversationID uuid.UUID, status string) {
	h.publish(conversationID, domain.SearchEvent(status))
}

// PublishSearchResults publishes a SEARCH_RESULTS event and records the
// results in the side table for late viewers.
func (h *Hub) PublishSearchResults(conversationID, messageID uuid.UUID, results []entity.SearchResult) {
	if len(results) == 0 {
		return
	}

	h.searchMu.Lock()
	h.searchByConv[conversationID] = append(h.searchByConv[conversationID], results...)
	if _, ok := h.searchByMessage[messageID]; !ok {
		h.searchMsgOrder = append(h.searchMsgOrder, messageID)
		for len(h.searchMsgOrder) > maxSearchMessages {
			oldest := h.searchMsgOrder[0]
			h.searchMsgOrder = h.searchMsgOrder[1:]
			delete(h.searchByMessage, oldest)
		}
	}
	h.searchByMessage[messageID] = append(h.searchByMessage[messageID], results...)
	h.searchMu.Unlock()

	h.publish(conversationID, domain.SearchResultsEvent(messageID, results))
}

// PublishEnd publishes the END terminal event.
func (h *Hub) PublishEnd(conversationID, messageID uuid.UUID, content string) {
	h.publish(conversationID, domain.EndEvent(messageID, content))
}

// PublishError publishes the ERROR terminal event.
func (h *Hub) PublishError(conversationID uuid.UUID, message string) {
	h.publish(conversationID, domain.ErrorEvent(message))
}

// RegisterConversation attaches a viewer and returns its channel plus an
// unregister func. The channel is closed on unregister or RemoveConversation;
// events queued before close remain readable.
func (h *Hub) RegisterConversation(conversationID uuid.UUID) (<-chan domain.ChatEvent, func()) {
	e := h.entry(conversationID)

	e.mu.Lock()
	id := e.nextID
	e.nextID++
	ch := make(chan domain.ChatEvent, h.viewerBuffer)
	e.viewers[id] = ch
	e.mu.Unlock()

	unregister := func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if c, ok := e.viewers[id]; ok {
			delete(e.viewers, id)
			close(c)
		}
	}
	return ch, unregister
}

// RemoveConversation discards the hub entry, closing all viewer channels.
// Publishing to the same id afterwards creates a fresh entry.
func (h *Hub) RemoveConversation(conversationID uuid.UUID) {
	h.mu.Lock()
	e, ok := h.conversations[conversationID]
	if ok {
		delete(h.conversations, conversationID)
	}
	h.mu.Unlock()
	if !ok {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for id, ch := range e.viewers {
		delete(e.viewers, id)
		close(ch)
	}

	h.searchMu.Lock()
	delete(h.searchByConv, conversationID)
	h.searchMu.Unlock()
}

// SearchResultsByConversation returns search results captured for the
// conversation during its current in-flight turn.
func (h *Hub) SearchResultsByConversation(conversationID uuid.UUID) []entity.SearchResult {
	h.searchMu.RLock()
	defer h.searchMu.RUnlock()
	results := h.searchByConv[conversationID]
	out := make([]entity.SearchResult, len(results))
	copy(out, results)
	return out
}

// SearchResultsByMessage returns search results captured for one message.
func (h *Hub) SearchResultsByMessage(messageID uuid.UUID) []entity.SearchResult {
	h.searchMu.RLock()
	defer h.searchMu.RUnlock()
	results := h.searchByMessage[messageID]
	out := make([]entity.SearchResult, len(results))
	copy(out, results)
	return out
}

var _ domain.EventPublisher = (*Hub)(nil)
