// Package tool holds the invocable capabilities a chat turn may use and the
// explicit table that maps request flags onto them.
package tool

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
)

// Tool is one capability invoked while generating an assistant message.
// Invoke returns the text context to feed the model; side effects such as
// event publication and result persistence happen inside the tool.
type Tool interface {
	Name() string
	Invoke(ctx context.Context, conversationID, messageID uuid.UUID, query string) (string, error)
}

// WebSearchName is the registry key of the web search capability.
const WebSearchName = "webSearch"

// Registry maps tool names to implementations. Registration is explicit and
// happens at wiring time; there is no scanning or tag-based discovery.
type Registry struct {
	mu     sync.RWMutex
	tools  map[string]Tool
	logger *slog.Logger
}

// NewRegistry creates an empty tool registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		tools:  make(map[string]Tool),
		logger: logger,
	}
}

// Register adds a tool under its name, replacing any previous entry.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name()] = t
	r.logger.Info("tool registered", "tool", t.Name())
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// ResolveTools maps the request's capability flags onto registered tools.
// A nil request resolves to nothing. A flag whose tool is not registered is
// skipped with a warn log rather than failing the turn.
func (r *Registry) ResolveTools(req *entity.StreamRequest) []Tool {
	if req == nil {
		return nil
	}

	var names []string
	if req.SearchEnabled {
		names = append(names, WebSearchName)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	resolved := make([]Tool, 0, len(names))
	for _, n := range names {
		t, ok := r.tools[n]
		if !ok {
			r.logger.Warn("requested tool is not registered, skipping", "tool", n)
			continue
		}
		resolved = append(resolved, t)
	}
	return resolved
}
