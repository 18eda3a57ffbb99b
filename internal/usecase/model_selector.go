package usecase

import (
	"context"
	"log/slog"

	"github.com/peng15653830a/springai-chat-sub004/internal/config"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
)

// modelSelector resolves the (provider, model) pair for a request by strict
// priority: explicit request fields, then the user's stored preference, then
// the configured defaults. A provider that is not enabled never wins a step;
// the resolution degrades to the next step instead of failing.
type modelSelector struct {
	cfg    *config.Config
	prefs  domain.UserPreferenceRepository
	logger *slog.Logger
}

// NewModelSelector creates the default selector. prefs may be nil, in which
// case the preference step is skipped.
func NewModelSelector(cfg *config.Config, prefs domain.UserPreferenceRepository, logger *slog.Logger) domain.ModelSelector {
	return &modelSelector{cfg: cfg, prefs: prefs, logger: logger}
}

// SelectModelForUser resolves the selection for one request.
func (s *modelSelector) SelectModelForUser(ctx context.Context, userID, providerName, modelName string) (entity.ModelSelection, error) {
	// 1. Explicit request fields.
	if providerName != "" {
		if s.cfg.ProviderAvailable(providerName) {
			return s.resolve(providerName, modelName)
		}
		s.logger.Warn("requested provider unavailable, falling back",
			"provider", providerName,
		)
	}

	// 2. Stored user preference.
	if userID != "" && s.prefs != nil {
		pref, err := s.prefs.GetDefault(ctx, userID)
		switch {
		case err == nil:
			if s.cfg.ProviderAvailable(pref.ProviderName) {
				m := modelName
				if m == "" {
					m = pref.ModelName
				}
				return s.resolve(pref.ProviderName, m)
			}
			s.logger.Warn("preferred provider unavailable, falling back",
				"user_id", userID,
				"provider", pref.ProviderName,
			)
		case domain.IsNotFound(err):
			// No preference saved; fall through.
		default:
			s.logger.Warn("failed to load user preference, falling back",
				"user_id", userID,
				"error", err,
			)
		}
	}

	// 3. Configured defaults.
	m := modelName
	if m == "" {
		m = s.cfg.Defaults.Model
	}
	return s.resolve(s.cfg.Defaults.Provider, m)
}

// resolve pins the model within an available provider. An unknown or
// disabled model degrades softly to the provider's first enabled model so a
// stale client-side model name does not fail the whole turn.
func (s *modelSelector) resolve(providerName, modelName string) (entity.ModelSelection, error) {
	if modelName != "" {
		if mc, ok := s.cfg.ModelConfig(providerName, modelName); ok && mc.Enabled {
			return entity.ModelSelection{ProviderName: providerName, ModelName: modelName}, nil
		}
		s.logger.Warn("requested model unavailable, using provider default",
			"provider", providerName,
			"model", modelName,
		)
	}

	if first, ok := s.cfg.FirstEnabledModel(providerName); ok {
		return entity.ModelSelection{ProviderName: providerName, ModelName: first}, nil
	}
	return entity.ModelSelection{}, domain.NewModelUnavailableError(
		"no enabled model for provider '" + providerName + "'")
}
