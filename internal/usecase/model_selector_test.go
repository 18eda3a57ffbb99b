package usecase

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/peng15653830a/springai-chat-sub004/internal/config"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
)

func selectorConfig() *config.Config {
	return &config.Config{
		Providers: map[string]config.ProviderConfig{
			"qwen": {
				Enabled: true,
				Models: []config.ModelConfig{
					{Name: "qwen-plus", Enabled: true},
					{Name: "qwen-turbo", Enabled: true},
				},
			},
			"deepseek": {
				Enabled: true,
				Models: []config.ModelConfig{
					{Name: "deepseek-chat", Enabled: true},
					{Name: "deepseek-reasoner", Enabled: false},
				},
			},
			"legacy": {
				Enabled: false,
				Models:  []config.ModelConfig{{Name: "legacy-1", Enabled: true}},
			},
		},
		Defaults: config.DefaultsConfig{Provider: "deepseek", Model: "deepseek-chat"},
	}
}

func TestSelectModelForUser(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	cfg := selectorConfig()

	tests := []struct {
		name     string
		pref     *entity.UserModelPreference
		userID   string
		provider string
		model    string
		want     entity.ModelSelection
	}{
		{
			name:     "explicit provider and model",
			provider: "qwen",
			model:    "qwen-turbo",
			want:     entity.ModelSelection{ProviderName: "qwen", ModelName: "qwen-turbo"},
		},
		{
			name:     "explicit provider unavailable falls back to defaults",
			provider: "legacy",
			want:     entity.ModelSelection{ProviderName: "deepseek", ModelName: "deepseek-chat"},
		},
		{
			name:   "stored preference wins without explicit fields",
			userID: "u1",
			pref:   &entity.UserModelPreference{UserID: "u1", ProviderName: "qwen", ModelName: "qwen-plus"},
			want:   entity.ModelSelection{ProviderName: "qwen", ModelName: "qwen-plus"},
		},
		{
			name:     "explicit provider beats stored preference",
			userID:   "u1",
			pref:     &entity.UserModelPreference{UserID: "u1", ProviderName: "qwen", ModelName: "qwen-plus"},
			provider: "deepseek",
			want:     entity.ModelSelection{ProviderName: "deepseek", ModelName: "deepseek-chat"},
		},
		{
			name:   "preference for disabled provider falls back to defaults",
			userID: "u1",
			pref:   &entity.UserModelPreference{UserID: "u1", ProviderName: "legacy", ModelName: "legacy-1"},
			want:   entity.ModelSelection{ProviderName: "deepseek", ModelName: "deepseek-chat"},
		},
		{
			name:     "unknown model degrades to first enabled model",
			provider: "qwen",
			model:    "qwen-max-2024",
			want:     entity.ModelSelection{ProviderName: "qwen", ModelName: "qwen-plus"},
		},
		{
			name:     "disabled model degrades to first enabled model",
			provider: "deepseek",
			model:    "deepseek-reasoner",
			want:     entity.ModelSelection{ProviderName: "deepseek", ModelName: "deepseek-chat"},
		},
		{
			name: "no input at all resolves to defaults",
			want: entity.ModelSelection{ProviderName: "deepseek", ModelName: "deepseek-chat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewModelSelector(cfg, &fakePrefRepo{pref: tt.pref}, logger)
			got, err := s.SelectModelForUser(context.Background(), tt.userID, tt.provider, tt.model)
			if err != nil {
				t.Fatalf("SelectModelForUser error: %v", err)
			}
			if got != tt.want {
				t.Errorf("selection = %+v, want %+v", got, tt.want)
			}
		})
	}
}
