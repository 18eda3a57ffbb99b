package handler

import (
	"context"
	"log/slog"
	"sort"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/peng15653830a/springai-chat-sub004/internal/config"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
	"github.com/peng15653830a/springai-chat-sub004/internal/handler/dto"
)

// ModelHandler serves the model catalog and per-user model preferences.
type ModelHandler struct {
	cfg    *config.Config
	users  domain.UserUsecase
	logger *slog.Logger
}

// NewModelHandler creates the model handler.
func NewModelHandler(cfg *config.Config, users domain.UserUsecase, logger *slog.Logger) *ModelHandler {
	return &ModelHandler{
		cfg:    cfg,
		users:  users,
		logger: logger,
	}
}

// ListModels returns every enabled provider with its enabled models, sorted
// by provider name for a stable response.
func (h *ModelHandler) ListModels(ctx context.Context, c *app.RequestContext) {
	providers := make([]dto.ProviderInfo, 0, len(h.cfg.Providers))
	for name, pc := range h.cfg.Providers {
		if !pc.Enabled {
			continue
		}
		info := dto.ProviderInfo{Name: name}
		for _, m := range pc.Models {
			if !m.Enabled {
				continue
			}
			info.Models = append(info.Models, dto.ModelInfo{
				Name:             m.Name,
				DisplayName:      m.DisplayName,
				SupportsThinking: m.SupportsThinking,
				SupportsTools:    m.SupportsTools,
			})
		}
		providers = append(providers, info)
	}
	sort.Slice(providers, func(i, j int) bool { return providers[i].Name < providers[j].Name })

	SuccessResponse(c, ListResponse{Items: providers, TotalCount: len(providers)})
}

// GetModelPreference returns the caller's stored default model, if any.
func (h *ModelHandler) GetModelPreference(ctx context.Context, c *app.RequestContext) {
	userID := optionalUserID(c)
	if userID == "" {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	pref, err := h.users.GetModelPreference(ctx, userID)
	if err != nil {
		h.logger.Error("failed to get model preference", "user_id", userID, "error", err)
		ErrorResponse(c, err)
		return
	}
	if pref == nil {
		SuccessResponse(c, nil)
		return
	}
	SuccessResponse(c, dto.ModelPreferenceResponse{
		Provider: pref.ProviderName,
		Model:    pref.ModelName,
	})
}

// SetModelPreference saves the caller's default provider/model pair.
func (h *ModelHandler) SetModelPreference(ctx context.Context, c *app.RequestContext) {
	userID := optionalUserID(c)
	if userID == "" {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	var req dto.ModelPreferenceRequest
	if err := c.BindJSON(&req); err != nil {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	pref, err := h.users.SetModelPreference(ctx, userID, req.Provider, req.Model)
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.ModelPreferenceResponse{
		Provider: pref.ProviderName,
		Model:    pref.ModelName,
	})
}

// DeleteModelPreference removes the caller's stored default model.
func (h *ModelHandler) DeleteModelPreference(ctx context.Context, c *app.RequestContext) {
	userID := optionalUserID(c)
	if userID == "" {
		ErrorResponse(c, domain.ErrUnauthorized)
		return
	}

	if err := h.users.DeleteModelPreference(ctx, userID); err != nil {
		ErrorResponse(c, err)
		return
	}
	NoContentResponse(c)
}
