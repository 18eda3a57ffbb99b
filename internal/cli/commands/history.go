package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/peng15653830a/springai-chat-sub004/internal/cli/client"
	"github.com/peng15653830a/springai-chat-sub004/internal/cli/config"
	"github.com/peng15653830a/springai-chat-sub004/internal/cli/ui"
)

// historyCmd is the history command
var historyCmd = &cobra.Command{
	Use:   "history <conversation-id>",
	Short: "show a conversation transcript",
	Long: `Show the stored messages of a conversation in order.

Use 'chatctl list' to find conversation ids.`,
	Example: `  # Show a transcript
  $ chatctl history 4f7c2a6e-1b3d-4e5f-8a9b-0c1d2e3f4a5b`,
	Args: cobra.ExactArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.SilenceUsage = true
}

func runHistory(cmd *cobra.Command, args []string) error {
	conversationID := args[0]

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

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

	messages, err := apiClient.History(ctx, conversationID)
	if err != nil {
		ui.PrintError("failed to fetch history: %v", err)
		return fmt.Errorf("history fetch failed")
	}

	fmt.Println()
	fmt.Println(ui.RenderHistory(messages))

	return nil
}
