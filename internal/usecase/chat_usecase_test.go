package usecase

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/peng15653830a/springai-chat-sub004/internal/config"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
	"github.com/peng15653830a/springai-chat-sub004/internal/hub"
	"github.com/peng15653830a/springai-chat-sub004/internal/infrastructure/llm"
	"github.com/peng15653830a/springai-chat-sub004/internal/tool"
)

// ============ Fakes ============

type fakeConversationRepo struct {
	mu    sync.Mutex
	convs map[uuid.UUID]*entity.Conversation
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{convs: make(map[uuid.UUID]*entity.Conversation)}
}

func (f *fakeConversationRepo) GetOrCreate(_ context.Context, id uuid.UUID, userID string) (*entity.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.convs[id]; ok {
		return c, nil
	}
	c := &entity.Conversation{ID: id, UserID: userID, CreatedAt: time.Now()}
	f.convs[id] = c
	return c, nil
}

func (f *fakeConversationRepo) Get(_ context.Context, id uuid.UUID) (*entity.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.convs[id]; ok {
		return c, nil
	}
	return nil, domain.NewNotFoundError("conversation", id.String())
}

func (f *fakeConversationRepo) ListByUser(_ context.Context, userID string) ([]*entity.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Conversation
	for _, c := range f.convs {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeConversationRepo) UpdateTitle(_ context.Context, id uuid.UUID, title string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.convs[id]; ok {
		c.Title = title
	}
	return nil
}

func (f *fakeConversationRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.convs, id)
	return nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []*entity.Message
}

func (f *fakeMessageRepo) SaveMessage(_ context.Context, conversationID uuid.UUID, role, content string) (*entity.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m := &entity.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	f.messages = append(f.messages, m)
	return m, nil
}

func (f *fakeMessageRepo) UpdateAssistantMessage(_ context.Context, messageID uuid.UUID, content, thinking string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.messages {
		if m.ID == messageID {
			m.Content = content
			m.Thinking = thinking
			return nil
		}
	}
	return domain.NewNotFoundError("message", messageID.String())
}

func (f *fakeMessageRepo) ListByConversation(_ context.Context, conversationID uuid.UUID) ([]*entity.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Message
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) ListIDsByConversation(_ context.Context, conversationID uuid.UUID) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []uuid.UUID
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			out = append(out, m.ID)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) DeleteMessage(_ context.Context, messageID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, m := range f.messages {
		if m.ID == messageID {
			f.messages = append(f.messages[:i], f.messages[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeMessageRepo) DeleteByConversation(_ context.Context, conversationID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []*entity.Message
	for _, m := range f.messages {
		if m.ConversationID != conversationID {
			kept = append(kept, m)
		}
	}
	f.messages = kept
	return nil
}

// byRole returns stored messages with the role, in order.
func (f *fakeMessageRepo) byRole(role string) []*entity.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Message
	for _, m := range f.messages {
		if m.Role == role {
			out = append(out, m)
		}
	}
	return out
}

type fakeToolResults struct {
	mu      sync.Mutex
	deleted []uuid.UUID
}

func (f *fakeToolResults) StartToolCall(_ context.Context, messageID uuid.UUID, toolName, toolInput string) (*entity.ToolResult, error) {
	return &entity.ToolResult{ID: uuid.New(), MessageID: messageID, ToolName: toolName, ToolInput: toolInput, CallSequence: 1}, nil
}
func (f *fakeToolResults) CompleteToolCall(context.Context, uuid.UUID, string) error { return nil }
func (f *fakeToolResults) FailToolCall(context.Context, uuid.UUID, string) error    { return nil }
func (f *fakeToolResults) ListByMessage(context.Context, uuid.UUID) ([]*entity.ToolResult, error) {
	return nil, nil
}
func (f *fakeToolResults) DeleteByMessageIDs(_ context.Context, ids []uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, ids...)
	return nil
}

type fakePrefRepo struct {
	pref *entity.UserModelPreference
}

func (f *fakePrefRepo) GetDefault(_ context.Context, userID string) (*entity.UserModelPreference, error) {
	if f.pref == nil {
		return nil, domain.NewNotFoundError("preference", userID)
	}
	return f.pref, nil
}
func (f *fakePrefRepo) SetDefault(_ context.Context, userID, provider, model string) (*entity.UserModelPreference, error) {
	f.pref = &entity.UserModelPreference{UserID: userID, ProviderName: provider, ModelName: model}
	return f.pref, nil
}
func (f *fakePrefRepo) DeleteDefault(context.Context, string) error {
	f.pref = nil
	return nil
}

type fakeProviderRegistry struct {
	provider domain.ModelProvider
}

func (f *fakeProviderRegistry) Get(string) (domain.ModelProvider, error) {
	return f.provider, nil
}

type noTools struct{}

func (noTools) ResolveTools(*entity.StreamRequest) []tool.Tool { return nil }

// ============ Harness ============

func testConfig() *config.Config {
	return &config.Config{
		Providers: map[string]config.ProviderConfig{
			"mock": {
				Enabled: true,
				Models: []config.ModelConfig{
					{Name: "mock-1", Enabled: true, SupportsThinking: true},
				},
			},
		},
		Defaults: config.DefaultsConfig{
			Provider:    "mock",
			Model:       "mock-1",
			Temperature: 0.7,
			MaxTokens:   2048,
			TopP:        1.0,
		},
		Streaming: config.StreamingConfig{
			ResponseTimeout: 5 * time.Second,
			ViewerBuffer:    64,
		},
	}
}

type chatHarness struct {
	uc       domain.ChatUsecase
	convs    *fakeConversationRepo
	messages *fakeMessageRepo
	tools    *fakeToolResults
}

func newChatHarness(provider domain.ModelProvider) *chatHarness {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	cfg := testConfig()
	convs := newFakeConversationRepo()
	messages := &fakeMessageRepo{}
	toolResults := &fakeToolResults{}
	events := hub.New(cfg.Streaming.ViewerBuffer, logger)
	uc := NewChatUsecase(
		cfg,
		convs,
		messages,
		toolResults,
		NewModelSelector(cfg, &fakePrefRepo{}, logger),
		NewPromptBuilder(messages, logger),
		&fakeProviderRegistry{provider: provider},
		noTools{},
		events,
		logger,
	)
	return &chatHarness{uc: uc, convs: convs, messages: messages, tools: toolResults}
}

// collect drains the viewer channel until it closes.
func collect(t *testing.T, ch <-chan domain.ChatEvent) []domain.ChatEvent {
	t.Helper()
	var events []domain.ChatEvent
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-deadline:
			t.Fatalf("timed out waiting for events, got %d so far", len(events))
		}
	}
}

func chunkTexts(events []domain.ChatEvent) []string {
	var out []string
	for _, ev := range events {
		if p, ok := ev.Payload.(domain.ChunkPayload); ok {
			out = append(out, p.Content)
		}
	}
	return out
}

func terminalEvents(events []domain.ChatEvent) []domain.ChatEvent {
	var out []domain.ChatEvent
	for _, ev := range events {
		if ev.IsTerminal() {
			out = append(out, ev)
		}
	}
	return out
}

// ============ Tests ============

func TestStreamChatCompleteTurn(t *testing.T) {
	h := newChatHarness(&llm.MockProvider{
		ProviderName: "mock",
		Fragments:    []string{"Hel", "lo, ", "world"},
	})

	req := &entity.StreamRequest{ConversationID: uuid.New(), UserID: "u1", Message: "greet me"}
	_, viewer, unregister, err := h.uc.StreamChat(context.Background(), req)
	if err != nil {
		t.Fatalf("StreamChat error: %v", err)
	}
	defer unregister()

	events := collect(t, viewer)

	if events[0].Type != domain.EventStart {
		t.Errorf("first event = %s, want start", events[0].Name())
	}
	chunks := chunkTexts(events)
	want := []string{"Hel", "lo, ", "world"}
	if len(chunks) != len(want) {
		t.Fatalf("got %d chunks %v, want %v", len(chunks), chunks, want)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk[%d] = %q, want %q", i, chunks[i], want[i])
		}
	}

	terms := terminalEvents(events)
	if len(terms) != 1 {
		t.Fatalf("got %d terminal events, want exactly 1", len(terms))
	}
	end, ok := terms[0].Payload.(domain.EndPayload)
	if !ok {
		t.Fatalf("terminal event = %s, want end", terms[0].Name())
	}
	if end.Content != "Hello, world" {
		t.Errorf("end content = %q, want %q", end.Content, "Hello, world")
	}
	if events[len(events)-1].Type != domain.EventEnd {
		t.Error("terminal event is not last")
	}

	assistants := h.messages.byRole("assistant")
	if len(assistants) != 1 || assistants[0].Content != "Hello, world" {
		t.Errorf("persisted assistant message = %+v, want content %q", assistants, "Hello, world")
	}
	conv, err := h.convs.Get(context.Background(), req.ConversationID)
	if err != nil {
		t.Fatalf("conversation not created: %v", err)
	}
	if conv.Title == "" {
		t.Error("conversation title not derived from first message")
	}
}

func TestStreamChatMidStreamFailure(t *testing.T) {
	h := newChatHarness(&llm.MockProvider{
		ProviderName: "mock",
		Fragments:    []string{"par", "tial"},
		FailWith:     errors.New("connection reset"),
	})

	req := &entity.StreamRequest{ConversationID: uuid.New(), Message: "hi"}
	_, viewer, unregister, err := h.uc.StreamChat(context.Background(), req)
	if err != nil {
		t.Fatalf("StreamChat error: %v", err)
	}
	defer unregister()

	events := collect(t, viewer)

	chunks := chunkTexts(events)
	if len(chunks) != 2 {
		t.Errorf("got %d chunks, want 2 delivered before the failure", len(chunks))
	}
	terms := terminalEvents(events)
	if len(terms) != 1 || terms[0].Type != domain.EventError {
		t.Fatalf("terminal events = %v, want exactly one error", terms)
	}
	for _, ev := range events {
		if ev.Type == domain.EventEnd {
			t.Error("failed turn must not publish end")
		}
	}

	// The draft is rolled back; only the user turn remains.
	if got := len(h.messages.byRole("assistant")); got != 0 {
		t.Errorf("draft survived failed turn, %d assistant rows", got)
	}
	if got := len(h.messages.byRole("user")); got != 1 {
		t.Errorf("user message rows = %d, want 1", got)
	}
	if len(h.tools.deleted) == 0 {
		t.Error("tool results of the failed turn were not deleted")
	}
}

func TestStreamChatEmptyStream(t *testing.T) {
	h := newChatHarness(&llm.MockProvider{ProviderName: "mock"})

	req := &entity.StreamRequest{ConversationID: uuid.New(), Message: "silence"}
	_, viewer, unregister, err := h.uc.StreamChat(context.Background(), req)
	if err != nil {
		t.Fatalf("StreamChat error: %v", err)
	}
	defer unregister()

	events := collect(t, viewer)
	if got := len(chunkTexts(events)); got != 0 {
		t.Errorf("got %d chunks from empty stream, want 0", got)
	}
	terms := terminalEvents(events)
	if len(terms) != 1 || terms[0].Type != domain.EventEnd {
		t.Fatalf("terminal events = %v, want exactly one end", terms)
	}
	if end := terms[0].Payload.(domain.EndPayload); end.Content != "" {
		t.Errorf("end content = %q, want empty", end.Content)
	}
}

func TestStreamChatThinkingExtraction(t *testing.T) {
	h := newChatHarness(&llm.MockProvider{
		ProviderName: "mock",
		Fragments:    []string{"<think>step by step</think>", "Answer"},
	})

	req := &entity.StreamRequest{ConversationID: uuid.New(), Message: "why", DeepThinking: true}
	_, viewer, unregister, err := h.uc.StreamChat(context.Background(), req)
	if err != nil {
		t.Fatalf("StreamChat error: %v", err)
	}
	defer unregister()

	events := collect(t, viewer)

	var thinking string
	for _, ev := range events {
		if p, ok := ev.Payload.(domain.ThinkingPayload); ok {
			thinking = p.Content
		}
	}
	if thinking != "step by step" {
		t.Errorf("thinking = %q, want %q", thinking, "step by step")
	}

	terms := terminalEvents(events)
	if len(terms) != 1 {
		t.Fatalf("got %d terminal events, want 1", len(terms))
	}
	if end := terms[0].Payload.(domain.EndPayload); end.Content != "Answer" {
		t.Errorf("end content = %q, want %q", end.Content, "Answer")
	}

	assistants := h.messages.byRole("assistant")
	if len(assistants) != 1 || assistants[0].Thinking != "step by step" {
		t.Errorf("persisted thinking not set: %+v", assistants)
	}
}

func TestStreamChatAssignsIDWithoutMutatingRequest(t *testing.T) {
	h := newChatHarness(&llm.MockProvider{ProviderName: "mock", Fragments: []string{"hi"}})

	req := &entity.StreamRequest{Message: "first contact"}
	convID, viewer, unregister, err := h.uc.StreamChat(context.Background(), req)
	if err != nil {
		t.Fatalf("StreamChat error: %v", err)
	}
	defer unregister()

	if convID == uuid.Nil {
		t.Fatal("no conversation id assigned for a fresh request")
	}
	if req.ConversationID != uuid.Nil {
		t.Errorf("request mutated: ConversationID = %s, want untouched Nil", req.ConversationID)
	}

	collect(t, viewer)
	if _, err := h.convs.Get(context.Background(), convID); err != nil {
		t.Errorf("conversation not created under the assigned id: %v", err)
	}
}

func TestStreamChatReasoningDeltas(t *testing.T) {
	provider := &llm.MockProvider{
		ProviderName: "mock",
		Reasoning:    []string{"weigh ", "options"},
		Fragments:    []string{"Answer"},
	}

	t.Run("deep thinking on", func(t *testing.T) {
		h := newChatHarness(provider)
		req := &entity.StreamRequest{ConversationID: uuid.New(), Message: "why", DeepThinking: true}
		_, viewer, unregister, err := h.uc.StreamChat(context.Background(), req)
		if err != nil {
			t.Fatalf("StreamChat error: %v", err)
		}
		defer unregister()

		events := collect(t, viewer)

		var fragments []string
		for _, ev := range events {
			if p, ok := ev.Payload.(domain.ThinkingPayload); ok {
				fragments = append(fragments, p.Content)
			}
		}
		if len(fragments) != 2 || fragments[0] != "weigh " || fragments[1] != "options" {
			t.Errorf("thinking fragments = %v, want the reasoning deltas in order", fragments)
		}

		terms := terminalEvents(events)
		if len(terms) != 1 || terms[0].Payload.(domain.EndPayload).Content != "Answer" {
			t.Fatalf("terminal events = %v, want one end with the text content", terms)
		}

		assistants := h.messages.byRole("assistant")
		if len(assistants) != 1 || assistants[0].Thinking != "weigh options" {
			t.Errorf("persisted thinking = %+v, want aggregated reasoning", assistants)
		}
		if assistants[0].Content != "Answer" {
			t.Errorf("persisted content = %q, want %q", assistants[0].Content, "Answer")
		}
	})

	t.Run("deep thinking off", func(t *testing.T) {
		h := newChatHarness(provider)
		req := &entity.StreamRequest{ConversationID: uuid.New(), Message: "why"}
		_, viewer, unregister, err := h.uc.StreamChat(context.Background(), req)
		if err != nil {
			t.Fatalf("StreamChat error: %v", err)
		}
		defer unregister()

		events := collect(t, viewer)
		for _, ev := range events {
			if ev.Type == domain.EventThinking {
				t.Error("reasoning surfaced although deep thinking was not requested")
			}
		}
		assistants := h.messages.byRole("assistant")
		if len(assistants) != 1 || assistants[0].Thinking != "" {
			t.Errorf("persisted thinking = %+v, want empty", assistants)
		}
	})
}

func TestStreamChatValidation(t *testing.T) {
	h := newChatHarness(&llm.MockProvider{ProviderName: "mock"})

	tests := []struct {
		name string
		req  *entity.StreamRequest
	}{
		{"nil request", nil},
		{"blank message", &entity.StreamRequest{ConversationID: uuid.New(), Message: "   "}},
		{"oversized message", &entity.StreamRequest{ConversationID: uuid.New(), Message: longMessage(maxMessageLength + 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := h.uc.StreamChat(context.Background(), tt.req)
			if !domain.IsInvalidInput(err) {
				t.Errorf("error = %v, want invalid input", err)
			}
		})
	}
}

// longMessage builds a string of n bytes.
func longMessage(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}

func TestDeleteConversationCascades(t *testing.T) {
	h := newChatHarness(&llm.MockProvider{ProviderName: "mock", Fragments: []string{"ok"}})

	req := &entity.StreamRequest{ConversationID: uuid.New(), Message: "hello"}
	_, viewer, unregister, err := h.uc.StreamChat(context.Background(), req)
	if err != nil {
		t.Fatalf("StreamChat error: %v", err)
	}
	collect(t, viewer)
	unregister()

	if err := h.uc.DeleteConversation(context.Background(), req.ConversationID); err != nil {
		t.Fatalf("DeleteConversation error: %v", err)
	}
	if len(h.tools.deleted) == 0 {
		t.Error("tool results were not cascade deleted")
	}
	history, err := h.uc.History(context.Background(), req.ConversationID)
	if err != nil {
		t.Fatalf("History error: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("history has %d rows after delete, want 0", len(history))
	}
}
