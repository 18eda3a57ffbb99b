package tool

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
	"github.com/peng15653830a/springai-chat-sub004/internal/hub"
)

type fakeSearchService struct {
	results []entity.SearchResult
	err     error
	calls   int
}

func (f *fakeSearchService) Search(_ context.Context, _ string) ([]entity.SearchResult, error) {
	f.calls++
	return f.results, f.err
}

func (f *fakeSearchService) IsAvailable() bool { return true }

type fakeToolResultRepo struct {
	records []*entity.ToolResult
	failed  map[uuid.UUID]string
}

func newFakeToolResultRepo() *fakeToolResultRepo {
	return &fakeToolResultRepo{failed: make(map[uuid.UUID]string)}
}

func (f *fakeToolResultRepo) StartToolCall(_ context.Context, messageID uuid.UUID, toolName, toolInput string) (*entity.ToolResult, error) {
	seq := 0
	for _, r := range f.records {
		if r.MessageID == messageID {
			seq++
		}
	}
	rec := &entity.ToolResult{
		ID:           uuid.New(),
		MessageID:    messageID,
		ToolName:     toolName,
		CallSequence: seq + 1,
		ToolInput:    toolInput,
		Status:       entity.ToolStatusInProgress,
	}
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeToolResultRepo) CompleteToolCall(_ context.Context, id uuid.UUID, output string) error {
	for _, r := range f.records {
		if r.ID == id {
			r.Status = entity.ToolStatusSuccess
			r.ToolOutput = output
			return nil
		}
	}
	return errors.New("tool result not found")
}

func (f *fakeToolResultRepo) FailToolCall(_ context.Context, id uuid.UUID, msg string) error {
	for _, r := range f.records {
		if r.ID == id {
			r.Status = entity.ToolStatusFailed
			r.ErrorMessage = msg
			f.failed[id] = msg
			return nil
		}
	}
	return errors.New("tool result not found")
}

func (f *fakeToolResultRepo) ListByMessage(_ context.Context, messageID uuid.UUID) ([]*entity.ToolResult, error) {
	var out []*entity.ToolResult
	for _, r := range f.records {
		if r.MessageID == messageID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeToolResultRepo) DeleteByMessageIDs(_ context.Context, _ []uuid.UUID) error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// drain reads every event currently queued on the viewer channel.
func drain(ch <-chan domain.ChatEvent) []domain.ChatEvent {
	var events []domain.ChatEvent
	for {
		select {
		case ev := <-ch:
			events = append(events, ev)
		default:
			return events
		}
	}
}

func eventTypes(events []domain.ChatEvent) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Name()
	}
	return out
}

func TestWebSearchInvoke(t *testing.T) {
	svc := &fakeSearchService{results: []entity.SearchResult{
		{Title: "Go Blog", URL: "https://go.dev/blog", Content: "release notes"},
	}}
	repo := newFakeToolResultRepo()
	h := hub.New(16, testLogger())
	ws := NewWebSearch(svc, repo, h, 3, testLogger())

	convID, msgID := uuid.New(), uuid.New()
	ch, unregister := h.RegisterConversation(convID)
	defer unregister()

	out, err := ws.Invoke(context.Background(), convID, msgID, "go release")
	if err != nil {
		t.Fatalf("Invoke error: %v", err)
	}
	if !strings.Contains(out, "Go Blog") || !strings.Contains(out, "https://go.dev/blog") {
		t.Errorf("formatted output missing result fields:\n%s", out)
	}

	got := eventTypes(drain(ch))
	want := []string{"search", "search_results", "search"}
	if len(got) != len(want) {
		t.Fatalf("event sequence = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if len(repo.records) != 1 {
		t.Fatalf("got %d tool result rows, want 1", len(repo.records))
	}
	rec := repo.records[0]
	if rec.Status != entity.ToolStatusSuccess {
		t.Errorf("tool result status = %s, want SUCCESS", rec.Status)
	}
	if rec.CallSequence != 1 {
		t.Errorf("call sequence = %d, want 1", rec.CallSequence)
	}
	if !strings.Contains(rec.ToolInput, "go release") {
		t.Errorf("tool input does not carry the query: %s", rec.ToolInput)
	}
}

func TestWebSearchBudget(t *testing.T) {
	svc := &fakeSearchService{}
	repo := newFakeToolResultRepo()
	h := hub.New(16, testLogger())
	ws := NewWebSearch(svc, repo, h, 1, testLogger())

	convID, msgID := uuid.New(), uuid.New()
	if _, err := ws.Invoke(context.Background(), convID, msgID, "first"); err != nil {
		t.Fatalf("first Invoke error: %v", err)
	}
	out, err := ws.Invoke(context.Background(), convID, msgID, "second")
	if err != nil {
		t.Fatalf("second Invoke error: %v", err)
	}
	if out != limitReachedNotice {
		t.Errorf("over-budget output = %q, want the limit notice", out)
	}
	if svc.calls != 1 {
		t.Errorf("backend called %d times, want 1", svc.calls)
	}

	// A different message starts with a fresh budget.
	if _, err := ws.Invoke(context.Background(), convID, uuid.New(), "third"); err != nil {
		t.Fatalf("fresh message Invoke error: %v", err)
	}
	if svc.calls != 2 {
		t.Errorf("backend called %d times after fresh message, want 2", svc.calls)
	}
}

func TestWebSearchQueryCache(t *testing.T) {
	svc := &fakeSearchService{results: []entity.SearchResult{{Title: "hit"}}}
	repo := newFakeToolResultRepo()
	h := hub.New(16, testLogger())
	ws := NewWebSearch(svc, repo, h, 5, testLogger())

	convID, msgID := uuid.New(), uuid.New()
	first, err := ws.Invoke(context.Background(), convID, msgID, "same query")
	if err != nil {
		t.Fatalf("first Invoke error: %v", err)
	}
	second, err := ws.Invoke(context.Background(), convID, msgID, "same query")
	if err != nil {
		t.Fatalf("second Invoke error: %v", err)
	}
	if first != second {
		t.Error("cached invocation returned different output")
	}
	if svc.calls != 1 {
		t.Errorf("backend called %d times for a repeated query, want 1", svc.calls)
	}
	if len(repo.records) != 1 {
		t.Errorf("got %d tool result rows for a repeated query, want 1", len(repo.records))
	}

	ws.Forget(msgID)
	if _, err := ws.Invoke(context.Background(), convID, msgID, "same query"); err != nil {
		t.Fatalf("Invoke after Forget error: %v", err)
	}
	if svc.calls != 2 {
		t.Errorf("backend called %d times after Forget, want 2", svc.calls)
	}
}

func TestWebSearchFailure(t *testing.T) {
	svc := &fakeSearchService{err: errors.New("upstream down")}
	repo := newFakeToolResultRepo()
	h := hub.New(16, testLogger())
	ws := NewWebSearch(svc, repo, h, 3, testLogger())

	convID, msgID := uuid.New(), uuid.New()
	ch, unregister := h.RegisterConversation(convID)
	defer unregister()

	_, err := ws.Invoke(context.Background(), convID, msgID, "broken")
	if err == nil {
		t.Fatal("expected error from failing backend")
	}

	if len(repo.records) != 1 || repo.records[0].Status != entity.ToolStatusFailed {
		t.Fatalf("tool result not marked FAILED: %+v", repo.records)
	}

	events := drain(ch)
	sawFailed := false
	for _, ev := range events {
		if ev.Name() == "error" {
			t.Error("tool failure must not publish a terminal error event")
		}
		if p, ok := ev.Payload.(domain.SearchPayload); ok && p.Status == SearchStatusFailed {
			sawFailed = true
		}
	}
	if !sawFailed {
		t.Error("no failed search status event published")
	}
}

func TestWebSearchEmptyQuery(t *testing.T) {
	svc := &fakeSearchService{}
	ws := NewWebSearch(svc, newFakeToolResultRepo(), hub.New(16, testLogger()), 3, testLogger())

	out, err := ws.Invoke(context.Background(), uuid.New(), uuid.New(), "   ")
	if err != nil {
		t.Fatalf("Invoke error: %v", err)
	}
	if out != "" || svc.calls != 0 {
		t.Errorf("blank query should be a no-op, got out=%q calls=%d", out, svc.calls)
	}
}

func TestFormatSearchResultsEmpty(t *testing.T) {
	out := FormatSearchResults(nil)
	if !strings.Contains(out, "No web search results") {
		t.Errorf("empty results should render an explicit notice, got %q", out)
	}
}
