package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/peng15653830a/springai-chat-sub004/internal/cli/commands"
	"github.com/peng15653830a/springai-chat-sub004/internal/cli/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		// Handle unknown command errors specially
		errMsg := err.Error()
		if strings.Contains(errMsg, "unknown command") {
			ui.PrintError("%s", errMsg)
			fmt.Println("\nRun 'chatctl --help' for usage.")
		}
		os.Exit(1)
	}
}
