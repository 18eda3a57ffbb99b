package llm

import (
	"log/slog"
	"os"
	"testing"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
)

func newTestRegistry(names ...string) *Registry {
	r := NewRegistry(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	for _, n := range names {
		r.Register(&MockProvider{ProviderName: n})
	}
	return r
}

func TestRegistryExactLookup(t *testing.T) {
	r := newTestRegistry("deepseek", "qwen")

	p, err := r.Get("qwen")
	if err != nil {
		t.Fatalf("Get(qwen) error: %v", err)
	}
	if p.Name() != "qwen" {
		t.Errorf("resolved provider = %s, want qwen", p.Name())
	}
}

func TestRegistrySubstringFallback(t *testing.T) {
	r := newTestRegistry("deepseek", "qwen")

	tests := []struct {
		requested string
		want      string
	}{
		{"qwen-plus", "qwen"},
		{"deepseek-chat", "deepseek"},
		{"Qwen-Turbo", "qwen"},
	}
	for _, tt := range tests {
		p, err := r.Get(tt.requested)
		if err != nil {
			t.Errorf("Get(%s) error: %v", tt.requested, err)
			continue
		}
		if p.Name() != tt.want {
			t.Errorf("Get(%s) = %s, want %s", tt.requested, p.Name(), tt.want)
		}
	}
}

func TestRegistryUnknownProvider(t *testing.T) {
	r := newTestRegistry("deepseek")

	_, err := r.Get("gpt4all")
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if !domain.IsModelUnavailable(err) {
		t.Errorf("error = %v, want model-unavailable", err)
	}
}
