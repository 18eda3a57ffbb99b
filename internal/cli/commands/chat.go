package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peng15653830a/springai-chat-sub004/internal/cli/client"
	"github.com/peng15653830a/springai-chat-sub004/internal/cli/config"
	"github.com/peng15653830a/springai-chat-sub004/internal/cli/tui"
	"github.com/peng15653830a/springai-chat-sub004/internal/cli/ui"
)

var (
	chatConversationID string
	chatProvider       string
	chatModel          string
	chatDeepThinking   bool
	chatSearchEnabled  bool
)

// chatCmd is the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "start interactive streaming chat",
	Long: `Start an interactive chat session against the chat API server.

Responses stream in as the model generates them. A new conversation is
created on the first message unless --conversation is given.`,
	Example: `  # Start a new conversation
  $ chatctl chat

  # Resume an existing conversation
  $ chatctl chat --conversation 4f7c2a6e-1b3d-4e5f-8a9b-0c1d2e3f4a5b

  # Pick a model and enable web search
  $ chatctl chat --provider deepseek --model deepseek-chat --search

  # Keyboard controls:
  • Enter sends the message
  • Esc quits the session`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatConversationID, "conversation", "", "Conversation id to resume")
	chatCmd.Flags().StringVar(&chatProvider, "provider", "", "Model provider to use")
	chatCmd.Flags().StringVar(&chatModel, "model", "", "Model to use")
	chatCmd.Flags().BoolVar(&chatDeepThinking, "thinking", false, "Request deep thinking mode")
	chatCmd.Flags().BoolVar(&chatSearchEnabled, "search", false, "Enable web search")

	chatCmd.SilenceUsage = true
}

func runChat(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Println("\nRun 'chatctl chat' to start interactive session.")
		return fmt.Errorf("invalid arguments")
	}

	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	apiClient, err := client.NewAPIClient(cfg.Server, cfg.AccessToken)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	opts := tui.ChatOptions{
		ConversationID: chatConversationID,
		Provider:       chatProvider,
		Model:          chatModel,
		DeepThinking:   chatDeepThinking,
		SearchEnabled:  chatSearchEnabled,
	}

	program := tui.NewChatProgram(apiClient, opts)
	if err := program.Run(); err != nil {
		return fmt.Errorf("failed to run chat TUI: %w", err)
	}

	return nil
}
