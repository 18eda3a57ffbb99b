package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/peng15653830a/springai-chat-sub004/internal/cli/client"
	"github.com/peng15653830a/springai-chat-sub004/internal/cli/config"
	"github.com/peng15653830a/springai-chat-sub004/internal/cli/ui"
)

var (
	deleteForce bool
)

// deleteCmd is the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <conversation-id>",
	Short: "delete a conversation",
	Long: `Delete a conversation together with its messages and tool results.

By default, you will be prompted to confirm the deletion. Use --force to skip confirmation.`,
	Example: `  # Delete a conversation
  $ chatctl delete 4f7c2a6e-1b3d-4e5f-8a9b-0c1d2e3f4a5b

  # Force delete without confirmation
  $ chatctl delete 4f7c2a6e-1b3d-4e5f-8a9b-0c1d2e3f4a5b --force`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation prompt")

	// Silence usage to avoid showing help on every error
	deleteCmd.SilenceUsage = true
}

func runDelete(cmd *cobra.Command, args []string) error {
	conversationID := args[0]

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

	// Confirm deletion unless --force
	if !deleteForce {
		confirm := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Delete conversation '%s' and all its messages?", conversationID),
		}
		if err := survey.AskOne(prompt, &confirm); err != nil {
			return fmt.Errorf("confirmation prompt failed: %w", err)
		}

		if !confirm {
			ui.PrintInfo("Deletion cancelled")
			return nil
		}
	}

	ui.PrintInfo("Deleting conversation '%s'...", conversationID)

	if err := apiClient.DeleteConversation(ctx, conversationID); err != nil {
		ui.PrintError("failed to delete: %v", err)
		return fmt.Errorf("deletion failed")
	}

	ui.PrintSuccess("Successfully deleted conversation '%s'", conversationID)
	return nil
}
