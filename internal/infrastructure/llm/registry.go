package llm

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/peng15653830a/springai-chat-sub004/internal/config"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
)

// Registry is the closed provider table. Providers self-register at process
// start; lookups are by exact name first, then an explicit substring
// fallback so requests like "qwen-turbo-latest" still reach the "qwen"
// provider. This leniency is a feature of the lookup, not reflection magic.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]domain.ModelProvider
	logger    *slog.Logger
}

// NewRegistry creates an empty provider registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		providers: make(map[string]domain.ModelProvider),
		logger:    logger,
	}
}

// NewRegistryFromConfig builds providers for every enabled catalog entry
// and registers them.
func NewRegistryFromConfig(cfg *config.Config, logger *slog.Logger) (*Registry, error) {
	r := NewRegistry(logger)
	for name, pc := range cfg.Providers {
		if !pc.Enabled {
			logger.Info("provider disabled, skipping", "provider", name)
			continue
		}
		p, err := NewOpenAICompatible(name, pc, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to build provider %s: %w", name, err)
		}
		r.Register(p)
	}
	return r, nil
}

// Register adds a provider under its name, replacing any previous entry.
func (r *Registry) Register(p domain.ModelProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.Name()] = p
	r.logger.Info("model provider registered", "provider", p.Name())
}

// Has reports whether a provider is registered under the exact name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.providers[name]
	return ok
}

// Get resolves a provider by name. Exact match wins; otherwise the first
// registered name that is a substring of the requested name (or vice versa)
// is used, with a warn log.
func (r *Registry) Get(name string) (domain.ModelProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.providers[name]; ok {
		return p, nil
	}

	// Secondary lookup: deterministic order so the fallback is stable.
	names := make([]string, 0, len(r.providers))
	for n := range r.providers {
		names = append(names, n)
	}
	sort.Strings(names)
	lower := strings.ToLower(name)
	for _, n := range names {
		if strings.Contains(lower, n) || strings.Contains(n, lower) {
			r.logger.Warn("provider resolved by substring fallback",
				"requested", name,
				"resolved", n,
			)
			return r.providers[n], nil
		}
	}

	return nil, domain.NewModelUnavailableError(fmt.Sprintf("provider '%s' is not registered", name))
}

// Names returns the registered provider names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.providers))
	for n := range r.providers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
