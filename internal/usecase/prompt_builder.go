package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
)

// historyWindow bounds how many stored messages feed the prompt.
const historyWindow = 20

// promptBuilder assembles the provider prompt from stored history, optional
// search context, and the current user message.
type promptBuilder struct {
	messages domain.MessageRepository
	logger   *slog.Logger
}

// NewPromptBuilder creates the default prompt builder.
func NewPromptBuilder(messages domain.MessageRepository, logger *slog.Logger) domain.PromptBuilder {
	return &promptBuilder{messages: messages, logger: logger}
}

// BuildPrompt renders the conversation transcript. The in-flight user turn
// and the empty assistant draft are excluded from the history section because
// the caller persists both before the prompt is built.
func (b *promptBuilder) BuildPrompt(ctx context.Context, conversationID uuid.UUID, message, searchContext string) (string, error) {
	history, err := b.messages.ListByConversation(ctx, conversationID)
	if err != nil {
		return "", fmt.Errorf("failed to load conversation history: %w", err)
	}

	// Drop the current turn's rows from the tail.
	for len(history) > 0 {
		last := history[len(history)-1]
		if last.Content == "" || (last.Role == "user" && last.Content == message) {
			history = history[:len(history)-1]
			continue
		}
		break
	}
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	var sb strings.Builder
	for _, m := range history {
		switch m.Role {
		case "system":
			fmt.Fprintf(&sb, "System: %s\n\n", m.Content)
		case "user":
			fmt.Fprintf(&sb, "User: %s\n\n", m.Content)
		case "assistant":
			fmt.Fprintf(&sb, "Assistant: %s\n\n", m.Content)
		}
	}

	if searchContext != "" {
		sb.WriteString(searchContext)
		if !strings.HasSuffix(searchContext, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "User: %s\n\nAssistant:", message)
	return sb.String(), nil
}
