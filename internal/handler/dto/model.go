package dto

// ============ Model catalog and preference types (HTTP layer) ============

// ModelInfo is one selectable model within a provider.
type ModelInfo struct {
	Name             string `json:"name"`
	DisplayName      string `json:"display_name,omitempty"`
	SupportsThinking bool   `json:"supports_thinking"`
	SupportsTools    bool   `json:"supports_tools"`
}

// ProviderInfo is one provider and its enabled models.
type ProviderInfo struct {
	Name   string      `json:"name"`
	Models []ModelInfo `json:"models"`
}

// ModelPreferenceRequest sets the caller's default model.
type ModelPreferenceRequest struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// ModelPreferenceResponse is the caller's stored default model.
type ModelPreferenceResponse struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}
