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

// listCmd is the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list your conversations",
	Long: `List your conversations, newest first.

Each entry shows the conversation title, its id (needed for history,
delete, and chat --conversation), and the time of last activity.`,
	Example: `  # List your conversations
  $ chatctl list

  # Resume one of them
  $ chatctl chat --conversation <id>`,
	RunE: runList,
}

func init() {
	// Silence usage to avoid showing help on every error
	listCmd.SilenceUsage = true
}

func runList(cmd *cobra.Command, args []string) error {
	// Validate arguments
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Printf("\nRun '%s --help' for usage.\n", cmd.CommandPath())
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	if !cfg.IsAuthenticated() {
		ui.PrintError("not authenticated, please login first")
		fmt.Println("\nRun 'chatctl login' to authenticate.")
		return fmt.Errorf("authentication required")
	}

	// Create API client
	apiClient, err := client.NewAPIClient(cfg.Server, cfg.AccessToken)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	ui.PrintInfo("Fetching conversations...")

	conversations, err := apiClient.ListConversations(ctx)
	if err != nil {
		ui.PrintError("failed to list conversations: %v", err)
		return fmt.Errorf("list operation failed")
	}

	fmt.Println()
	fmt.Println(ui.RenderConversationList(conversations))
	fmt.Println(ui.RenderConversationSummary(len(conversations)))

	return nil
}
