package llm

import (
	"context"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
)

// MockProvider replays a scripted fragment sequence. It backs unit tests and
// local development without upstream credentials.
type MockProvider struct {
	ProviderName string
	Fragments    []string
	// Reasoning fragments are delivered before the text fragments, and only
	// when the call enables thinking, mirroring reasoning model behaviour.
	Reasoning []string
	// FailWith, when non-nil, is delivered after the fragments so error
	// paths can be exercised.
	FailWith error
	// StartErr, when non-nil, is returned from StreamChat before any
	// fragment is produced.
	StartErr error
}

// Name returns the mock's registry name.
func (m *MockProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// StreamChat replays the scripted fragments.
func (m *MockProvider) StreamChat(ctx context.Context, model string, opts entity.GenerationOptions, prompt string) (<-chan entity.StreamChunk, error) {
	if m.StartErr != nil {
		return nil, m.StartErr
	}
	ch := make(chan entity.StreamChunk)
	go func() {
		defer close(ch)
		if opts.EnableThinking {
			for _, f := range m.Reasoning {
				select {
				case ch <- entity.StreamChunk{Reasoning: f}:
				case <-ctx.Done():
					ch <- entity.StreamChunk{Err: ctx.Err()}
					return
				}
			}
		}
		for _, f := range m.Fragments {
			select {
			case ch <- entity.StreamChunk{Text: f}:
			case <-ctx.Done():
				ch <- entity.StreamChunk{Err: ctx.Err()}
				return
			}
		}
		if m.FailWith != nil {
			ch <- entity.StreamChunk{Err: m.FailWith}
		}
	}()
	return ch, nil
}

var _ domain.ModelProvider = (*MockProvider)(nil)
