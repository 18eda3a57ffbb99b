package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/peng15653830a/springai-chat-sub004/internal/cli/client"
	"github.com/peng15653830a/springai-chat-sub004/internal/cli/types"
)

// UI configuration constants
const (
	defaultInputWidth     = 100
	defaultViewportWidth  = 100
	defaultViewportHeight = 30
	defaultWindowWidth    = 100
	defaultWindowHeight   = 40
	inputCharLimit        = 4000
	inputHeightReserved   = 2
	statusHeightReserved  = 3
	minContentHeight      = 10
	idDisplayLength       = 8
)

// Style definitions
var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

// streamState represents the state of streaming response
type streamState int

const (
	streamIdle streamState = iota
	streamStreaming
)

// ChatOptions carries the per-session settings picked on the command line.
type ChatOptions struct {
	ConversationID string
	Provider       string
	Model          string
	DeepThinking   bool
	SearchEnabled  bool
}

// ChatProgram encapsulates the chat TUI program
type ChatProgram struct {
	model chatModel
}

// NewChatProgram creates a new chat program instance
func NewChatProgram(apiClient *client.APIClient, opts ChatOptions) *ChatProgram {
	return &ChatProgram{model: initialModel(apiClient, opts)}
}

// Run starts the chat TUI program
func (p *ChatProgram) Run() error {
	program := tea.NewProgram(p.model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// chatModel is the Bubble Tea model containing all chat interface state
type chatModel struct {
	// Dependencies
	apiClient *client.APIClient
	opts      ChatOptions

	// Conversation identity; empty until the server assigns one
	conversationID string

	// UI components
	input       textinput.Model
	contentView viewport.Model

	// Streaming response state
	state        streamState
	content      *strings.Builder // Use pointer to avoid Builder copy
	streamLine   string
	searchNote   string
	thinkingOpen bool // a thinking block is being streamed

	// Streaming data channels
	eventCh <-chan types.StreamEvent
	errCh   <-chan error

	// Error state
	err error

	// Window dimensions
	width  int
	height int
}

// initialModel creates the initial chat model
func initialModel(apiClient *client.APIClient, opts ChatOptions) chatModel {
	input := textinput.New()
	input.Placeholder = ""
	input.Focus()
	input.CharLimit = inputCharLimit
	input.Width = defaultInputWidth
	input.Prompt = ""
	input.TextStyle = lipgloss.NewStyle()
	input.PromptStyle = lipgloss.NewStyle()

	contentViewport := viewport.New(defaultViewportWidth, defaultViewportHeight)
	contentViewport.SetContent("")

	return chatModel{
		apiClient:      apiClient,
		opts:           opts,
		conversationID: opts.ConversationID,
		input:          input,
		contentView:    contentViewport,
		state:          streamIdle,
		content:        &strings.Builder{},
		width:          defaultWindowWidth,
		height:         defaultWindowHeight,
	}
}

// Init initializes the model (Bubble Tea interface)
func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

// Message type definitions
type (
	streamInitMsg struct {
		eventCh <-chan types.StreamEvent
		errCh   <-chan error
	}
	streamEventMsg struct{ event types.StreamEvent }
	streamErrMsg   struct{ err error }
	streamDoneMsg  struct{}
)

// Update processes messages and updates the model (Bubble Tea interface)
func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyPress(msg)...)

	case tea.WindowSizeMsg:
		m.handleWindowResize(msg)

	case streamInitMsg:
		m.state = streamStreaming
		m.eventCh = msg.eventCh
		m.errCh = msg.errCh
		cmds = append(cmds, waitForEvent(m.eventCh, m.errCh))

	case streamEventMsg:
		done := m.handleEvent(msg.event)
		if done {
			m.finishStream()
		} else {
			cmds = append(cmds, waitForEvent(m.eventCh, m.errCh))
		}

	case streamErrMsg:
		m.err = msg.err
		m.state = streamIdle
		m.eventCh, m.errCh = nil, nil
		m.refreshContent()

	case streamDoneMsg:
		m.finishStream()
	}

	// Only update the input while not streaming
	if m.state != streamStreaming {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m *chatModel) handleKeyPress(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		cmds = append(cmds, tea.Quit)

	case tea.KeyEnter:
		if m.state != streamStreaming {
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				m.startStreaming(text)
				cmds = append(cmds, m.initStream(text))
			}
		}

	case tea.KeyUp:
		m.contentView.LineUp(1)

	case tea.KeyDown:
		m.contentView.LineDown(1)

	case tea.KeyPgUp:
		m.contentView.ViewUp()

	case tea.KeyPgDown:
		m.contentView.ViewDown()
	}

	return cmds
}

// handleWindowResize handles window size changes
func (m *chatModel) handleWindowResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	contentHeight := msg.Height - inputHeightReserved - statusHeightReserved
	if contentHeight < minContentHeight {
		contentHeight = minContentHeight
	}

	m.contentView.Width = msg.Width
	m.contentView.Height = contentHeight
	m.input.Width = msg.Width - 3

	// Reapply wrapping when window size changes
	m.refreshContent()
}

// startStreaming starts a new streaming turn
func (m *chatModel) startStreaming(text string) {
	m.input.Reset()
	m.streamLine = ""
	m.searchNote = ""
	m.thinkingOpen = false
	m.err = nil

	// Append user message to the transcript
	m.content.WriteString("\n")
	m.content.WriteString(boldStyle.Render("You"))
	m.content.WriteString("\n")
	m.content.WriteString(text)
	m.content.WriteString("\n\n")
	m.content.WriteString(accentStyle.Render("Assistant"))
	m.content.WriteString("\n")

	m.state = streamStreaming
	m.refreshContent()
}

// finishStream completes the streaming turn
func (m *chatModel) finishStream() {
	m.state = streamIdle
	m.eventCh, m.errCh = nil, nil
	m.searchNote = ""
	m.closeThinking()

	if m.streamLine != "" {
		m.content.WriteString(m.streamLine)
		m.streamLine = ""
	}
	m.content.WriteString("\n")

	m.refreshContent()
}

// initStream starts the streaming request
func (m *chatModel) initStream(message string) tea.Cmd {
	req := types.StreamChatRequest{
		ConversationID: m.conversationID,
		Provider:       m.opts.Provider,
		Model:          m.opts.Model,
		Message:        message,
		DeepThinking:   m.opts.DeepThinking,
		SearchEnabled:  m.opts.SearchEnabled,
	}
	return func() tea.Msg {
		eventCh, errCh, err := m.apiClient.StreamChat(context.Background(), req)
		if err != nil {
			return streamErrMsg{err: err}
		}
		return streamInitMsg{eventCh: eventCh, errCh: errCh}
	}
}

// waitForEvent waits for the next stream event
func waitForEvent(eventCh <-chan types.StreamEvent, errCh <-chan error) tea.Cmd {
	return func() tea.Msg {
		select {
		case event, ok := <-eventCh:
			if !ok {
				return streamDoneMsg{}
			}
			return streamEventMsg{event: event}
		case err, ok := <-errCh:
			if !ok {
				return streamDoneMsg{}
			}
			if err != nil {
				return streamErrMsg{err: err}
			}
			return streamDoneMsg{}
		}
	}
}

// handleEvent applies one stream event to the transcript. It reports whether
// the event terminated the turn.
func (m *chatModel) handleEvent(event types.StreamEvent) bool {
	switch event.Name {
	case "conversation":
		var data types.ConversationData
		if err := sonic.Unmarshal(event.Data, &data); err == nil && data.ID != "" {
			m.conversationID = data.ID
		}

	case "chunk":
		var data types.ChunkData
		if err := sonic.Unmarshal(event.Data, &data); err == nil {
			m.closeThinking()
			m.appendDelta(data.Content)
		}

	case "search":
		var data types.SearchData
		if err := sonic.Unmarshal(event.Data, &data); err == nil {
			switch data.Status {
			case "searching":
				m.searchNote = "searching the web..."
			case "completed":
				m.searchNote = ""
			case "failed":
				m.searchNote = "web search failed, answering without it"
			}
		}

	case "thinking":
		// Thinking arrives as deltas for reasoning models and as one block
		// after the answer otherwise; either way it renders as one dim block.
		var data types.ThinkingData
		if err := sonic.Unmarshal(event.Data, &data); err == nil && data.Content != "" {
			if !m.thinkingOpen {
				m.content.WriteString("\n")
				m.content.WriteString(dimStyle.Render("Thinking"))
				m.content.WriteString("\n")
				m.thinkingOpen = true
			}
			m.content.WriteString(dimStyle.Render(data.Content))
		}

	case "end":
		return true

	case "error":
		var data types.ErrorData
		if err := sonic.Unmarshal(event.Data, &data); err == nil {
			m.err = fmt.Errorf("%s", data.Message)
		} else {
			m.err = fmt.Errorf("stream failed")
		}
		return true
	}

	m.refreshContent()
	return false
}

// closeThinking ends an open thinking block before regular content resumes.
func (m *chatModel) closeThinking() {
	if m.thinkingOpen {
		m.content.WriteString("\n\n")
		m.thinkingOpen = false
	}
}

// appendDelta folds one content fragment into the transcript, keeping the
// trailing partial line in streamLine so it renders as it grows
func (m *chatModel) appendDelta(delta string) {
	if delta == "" {
		return
	}

	m.streamLine += delta
	for {
		idx := strings.Index(m.streamLine, "\n")
		if idx < 0 {
			break
		}
		m.content.WriteString(m.streamLine[:idx])
		m.content.WriteString("\n")
		m.streamLine = m.streamLine[idx+1:]
	}
}

// refreshContent refreshes the display content
func (m *chatModel) refreshContent() {
	display := m.content.String()
	if m.streamLine != "" {
		display += m.streamLine
	}
	if m.searchNote != "" {
		display += "\n" + dimStyle.Render("🔍 "+m.searchNote)
	}
	if m.err != nil {
		display += "\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	// Auto-wrap handling
	if m.width > 0 {
		display = m.wrapText(display, m.width)
	}

	m.contentView.SetContent(display)
	m.contentView.GotoBottom()
}

// wrapText applies auto-wrapping to text, correctly handling wide character widths
func (m *chatModel) wrapText(text string, maxWidth int) string {
	if maxWidth <= 10 {
		return text
	}

	lines := strings.Split(text, "\n")
	var result strings.Builder

	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}

		// Keep empty lines as-is
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Wrap each line
		wrappedLine := m.wrapLine(line, maxWidth)
		result.WriteString(wrappedLine)
	}

	return result.String()
}

// wrapLine wraps a single line of text, correctly handling wide character widths
func (m *chatModel) wrapLine(line string, maxWidth int) string {
	if runewidth.StringWidth(line) <= maxWidth {
		return line
	}

	var result strings.Builder
	var currentLine strings.Builder
	currentWidth := 0

	for _, r := range line {
		runeW := runewidth.RuneWidth(r)

		// If adding this character exceeds width, wrap first
		if currentWidth+runeW > maxWidth && currentWidth > 0 {
			result.WriteString(currentLine.String())
			result.WriteString("\n")
			currentLine.Reset()
			currentWidth = 0
		}

		currentLine.WriteRune(r)
		currentWidth += runeW
	}

	// Add final line
	if currentLine.Len() > 0 {
		result.WriteString(currentLine.String())
	}

	return result.String()
}

// View renders the UI (Bubble Tea interface)
func (m chatModel) View() string {
	// Top status bar
	var status string
	if m.conversationID != "" {
		short := m.conversationID
		if len(short) > idDisplayLength {
			short = short[:idDisplayLength]
		}
		status = dimStyle.Render("conversation " + short)
	} else {
		status = dimStyle.Render("new conversation")
	}
	if m.state == streamStreaming {
		status += dimStyle.Render(" • generating...")
	}

	// Content area
	content := m.contentView.View()

	// Input area
	var inputView string
	if m.state == streamStreaming {
		inputView = dimStyle.Render("> ") + dimStyle.Render("waiting for response...")
	} else {
		inputView = promptStyle.Render("> ") + m.input.View()
	}

	// Bottom help text
	help := ""
	if m.state != streamStreaming {
		help = dimStyle.Render("Enter send • ↑↓ scroll • Esc quit")
	}

	parts := []string{status, "", content, "", inputView}
	if help != "" {
		parts = append(parts, help)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
