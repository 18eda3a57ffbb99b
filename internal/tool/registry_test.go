package tool

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
)

type noopTool struct{ name string }

func (n noopTool) Name() string { return n.name }
func (n noopTool) Invoke(context.Context, uuid.UUID, uuid.UUID, string) (string, error) {
	return "", nil
}

func TestResolveTools(t *testing.T) {
	registered := NewRegistry(testLogger())
	registered.Register(noopTool{name: WebSearchName})

	empty := NewRegistry(testLogger())

	tests := []struct {
		name     string
		registry *Registry
		req      *entity.StreamRequest
		want     int
	}{
		{"nil request", registered, nil, 0},
		{"search disabled", registered, &entity.StreamRequest{}, 0},
		{"search enabled", registered, &entity.StreamRequest{SearchEnabled: true}, 1},
		{"flag without registration", empty, &entity.StreamRequest{SearchEnabled: true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.registry.ResolveTools(tt.req)
			if len(got) != tt.want {
				t.Errorf("resolved %d tools, want %d", len(got), tt.want)
			}
		})
	}
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry(testLogger())
	r.Register(noopTool{name: WebSearchName})

	if _, ok := r.Get(WebSearchName); !ok {
		t.Error("registered tool not found")
	}
	if _, ok := r.Get("calculator"); ok {
		t.Error("unregistered tool reported found")
	}
}
