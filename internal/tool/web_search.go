package tool

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
)

// Search status strings published on the conversation channel.
const (
	SearchStatusSearching = "searching"
	SearchStatusCompleted = "completed"
	SearchStatusFailed    = "failed"
	SearchStatusSkipped   = "skipped"
)

const limitReachedNotice = "Web search call limit reached for this message; answer from existing context."

// WebSearch performs web searches on behalf of a generating message. Each
// invocation is persisted as a tool result row and announced on the
// conversation channel. Per message it enforces a call budget and caches
// repeated queries so retry loops cannot burn the budget twice.
type WebSearch struct {
	search      domain.SearchService
	toolResults domain.ToolResultRepository
	events      domain.EventPublisher
	logger      *slog.Logger
	maxCalls    int

	mu    sync.Mutex
	calls map[uuid.UUID]int
	cache map[uuid.UUID]map[string]string
}

// NewWebSearch creates the web search tool. maxCalls caps invocations per
// message; values below 1 fall back to 1.
func NewWebSearch(search domain.SearchService, toolResults domain.ToolResultRepository, events domain.EventPublisher, maxCalls int, logger *slog.Logger) *WebSearch {
	if maxCalls < 1 {
		maxCalls = 1
	}
	return &WebSearch{
		search:      search,
		toolResults: toolResults,
		events:      events,
		logger:      logger,
		maxCalls:    maxCalls,
		calls:       make(map[uuid.UUID]int),
		cache:       make(map[uuid.UUID]map[string]string),
	}
}

// Name returns the registry key.
func (w *WebSearch) Name() string {
	return WebSearchName
}

// Invoke runs one search for the message and returns the formatted result
// context. The searching announcement is published before the backend is
// called. Failures are recorded on the tool result row and reported via a
// failed status event; the returned error lets the caller decide whether the
// turn continues without search context.
func (w *WebSearch) Invoke(ctx context.Context, conversationID, messageID uuid.UUID, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", nil
	}

	if cached, ok := w.cachedOutput(messageID, query); ok {
		w.logger.Info("search query served from cache", "message_id", messageID)
		return cached, nil
	}

	if !w.reserveCall(messageID) {
		w.logger.Warn("search call budget exhausted",
			"message_id", messageID,
			"max_calls", w.maxCalls,
		)
		w.events.PublishSearch(conversationID, SearchStatusSkipped)
		return limitReachedNotice, nil
	}

	w.events.PublishSearch(conversationID, SearchStatusSearching)

	record, err := w.toolResults.StartToolCall(ctx, messageID, WebSearchName, encodeToolInput(query))
	if err != nil {
		// Persistence trouble must not kill the turn; search still runs,
		// only the audit row is missing.
		w.logger.Error("failed to record tool call start", "error", err)
	}

	results, err := w.search.Search(ctx, query)
	if err != nil {
		if record != nil {
			if ferr := w.toolResults.FailToolCall(ctx, record.ID, err.Error()); ferr != nil {
				w.logger.Error("failed to record tool call failure", "error", ferr)
			}
		}
		w.events.PublishSearch(conversationID, SearchStatusFailed)
		return "", fmt.Errorf("web search failed: %w", err)
	}

	output := FormatSearchResults(results)
	if record != nil {
		if cerr := w.toolResults.CompleteToolCall(ctx, record.ID, output); cerr != nil {
			w.logger.Error("failed to record tool call completion", "error", cerr)
		}
	}

	if len(results) > 0 {
		w.events.PublishSearchResults(conversationID, messageID, results)
	}
	w.events.PublishSearch(conversationID, SearchStatusCompleted)

	w.remember(messageID, query, output)
	return output, nil
}

// Forget drops the per-message budget and cache once the turn is over.
func (w *WebSearch) Forget(messageID uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.calls, messageID)
	delete(w.cache, messageID)
}

func (w *WebSearch) cachedOutput(messageID uuid.UUID, query string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	byQuery, ok := w.cache[messageID]
	if !ok {
		return "", false
	}
	out, ok := byQuery[query]
	return out, ok
}

// reserveCall consumes one unit of the message's budget; false means the
// budget was already spent.
func (w *WebSearch) reserveCall(messageID uuid.UUID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.calls[messageID] >= w.maxCalls {
		return false
	}
	w.calls[messageID]++
	return true
}

func (w *WebSearch) remember(messageID uuid.UUID, query, output string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cache[messageID] == nil {
		w.cache[messageID] = make(map[string]string)
	}
	w.cache[messageID][query] = output
}

// encodeToolInput serializes the tool arguments for the audit row.
func encodeToolInput(query string) string {
	b, err := sonic.Marshal(map[string]string{"query": query})
	if err != nil {
		return query
	}
	return string(b)
}

// FormatSearchResults renders results as numbered context the model can cite.
// An empty slice renders an explicit no-results line so the model does not
// hallucinate sources.
func FormatSearchResults(results []entity.SearchResult) string {
	if len(results) == 0 {
		return "No web search results were found for this query."
	}

	var sb strings.Builder
	sb.WriteString("Web search results:\n")
	for i, r := range results {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, r.Title)
		if r.HasLinkableURL() {
			fmt.Fprintf(&sb, "   Source: %s\n", r.URL)
		}
		if r.Content != "" {
			fmt.Fprintf(&sb, "   %s\n", r.Content)
		}
	}
	return sb.String()
}

var _ Tool = (*WebSearch)(nil)
