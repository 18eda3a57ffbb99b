// Package llm holds the model provider implementations and their registry.
// Every configured provider speaks an OpenAI-compatible streaming API, so a
// single client type serves deepseek, qwen and greatwall with per-provider
// base URL and key.
package llm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/peng15653830a/springai-chat-sub004/internal/config"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
)

// openAICompatible streams chat completions from an OpenAI-compatible
// endpoint. The channel contract follows domain.ModelProvider: fragments in
// arrival order, Err chunk on transport failure, close on completion.
type openAICompatible struct {
	name   string
	client *openai.Client
	logger *slog.Logger
}

// NewOpenAICompatible creates a provider from its catalog config.
func NewOpenAICompatible(name string, cfg config.ProviderConfig, logger *slog.Logger) (domain.ModelProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("missing API key for provider " + name)
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 90 * time.Second
	}
	clientCfg.HTTPClient = &http.Client{Timeout: timeout}

	return &openAICompatible{
		name:   name,
		client: openai.NewClientWithConfig(clientCfg),
		logger: logger.With("provider", name),
	}, nil
}

// Name returns the provider's registry name.
func (p *openAICompatible) Name() string {
	return p.name
}

// StreamChat starts one generation call and pumps fragments onto the
// returned channel until the upstream stream ends.
func (p *openAICompatible) StreamChat(ctx context.Context, model string, opts entity.GenerationOptions, prompt string) (<-chan entity.StreamChunk, error) {
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(opts.Temperature),
		MaxTokens:   opts.MaxTokens,
		TopP:        float32(opts.TopP),
		Stream:      true,
	}

	stream, err := p.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("stream opened", "model", model, "prompt_len", len(prompt))

	ch := make(chan entity.StreamChunk, 32)
	go func() {
		defer close(ch)
		defer stream.Close()
		for {
			resp, err := stream.Recv()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				ch <- entity.StreamChunk{Err: err}
				return
			}
			for _, choice := range resp.Choices {
				// Reasoning models deliver their thinking as a separate
				// delta field; it is relayed only when the call asked for
				// deep thinking.
				if choice.Delta.ReasoningContent != "" && opts.EnableThinking {
					ch <- entity.StreamChunk{Reasoning: choice.Delta.ReasoningContent}
				}
				if choice.Delta.Content != "" {
					ch <- entity.StreamChunk{Text: choice.Delta.Content}
				}
			}
		}
	}()
	return ch, nil
}
