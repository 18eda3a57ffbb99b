package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/peng15653830a/springai-chat-sub004/internal/cli/types"
)

var (
	// Tree node styles
	convStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)  // Cyan
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))            // Gray
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))            // Yellow
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true) // Pink

	// Summary box style
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)
)

// RenderConversationList renders the caller's conversations as a tree, newest
// first, with id and last-activity details under each title.
func RenderConversationList(conversations []types.Conversation) string {
	if len(conversations) == 0 {
		return keyStyle.Render("No conversations found")
	}

	var output strings.Builder
	for i, conv := range conversations {
		if i > 0 {
			output.WriteString("\n")
		}
		output.WriteString(buildConversationNode(conv).String())
		output.WriteString("\n")
	}
	return strings.TrimRight(output.String(), "\n")
}

// buildConversationNode builds one conversation tree node
func buildConversationNode(conv types.Conversation) *tree.Tree {
	title := conv.Title
	if title == "" {
		title = "(untitled)"
	}

	node := tree.Root(convStyle.Render(title))
	node.Child(fmt.Sprintf("%s %s", keyStyle.Render("id:"), valueStyle.Render(conv.ID)))
	node.Child(fmt.Sprintf("%s %s", keyStyle.Render("updated:"), valueStyle.Render(formatAge(conv.UpdatedAt))))
	return node
}

// RenderConversationSummary renders the count line below the list
func RenderConversationSummary(count int) string {
	noun := "conversations"
	if count == 1 {
		noun = "conversation"
	}
	return summaryStyle.Render(fmt.Sprintf("%d %s", count, noun))
}

// RenderHistory renders stored messages as a transcript
func RenderHistory(messages []types.Message) string {
	if len(messages) == 0 {
		return keyStyle.Render("No messages in this conversation")
	}

	var output strings.Builder
	for _, m := range messages {
		var label string
		switch m.Role {
		case "user":
			label = highlightStyle.Render("You")
		case "assistant":
			label = convStyle.Render("Assistant")
		default:
			label = keyStyle.Render(m.Role)
		}
		output.WriteString(label)
		output.WriteString(keyStyle.Render("  " + m.CreatedAt.Local().Format("2006-01-02 15:04")))
		output.WriteString("\n")
		output.WriteString(m.Content)
		output.WriteString("\n\n")
	}
	return strings.TrimRight(output.String(), "\n")
}

// formatAge renders a timestamp as a relative age for recent activity and a
// date for anything older.
func formatAge(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Local().Format("2006-01-02")
	}
}
