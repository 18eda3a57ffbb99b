package hub

import (
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
)

func newTestHub() *Hub {
	return New(16, slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func drain(ch <-chan domain.ChatEvent) []domain.ChatEvent {
	var out []domain.ChatEvent
	for ev := range ch {
		out = append(out, ev)
	}
	return out
}

func TestFanOutTwoViewersSeeIdenticalSequence(t *testing.T) {
	h := newTestHub()
	cid := uuid.New()
	mid := uuid.New()

	ch1, _ := h.RegisterConversation(cid)
	ch2, _ := h.RegisterConversation(cid)

	h.PublishStart(cid, "processing")
	h.PublishChunk(cid, mid, "Hel")
	h.PublishChunk(cid, mid, "lo")
	h.PublishEnd(cid, mid, "Hello")
	h.RemoveConversation(cid)

	got1 := drain(ch1)
	got2 := drain(ch2)

	if len(got1) != 4 || len(got2) != 4 {
		t.Fatalf("viewer event counts = %d, %d, want 4, 4", len(got1), len(got2))
	}
	for i := range got1 {
		if got1[i].Type != got2[i].Type {
			t.Errorf("event %d: viewer types differ: %s vs %s", i, got1[i].Type, got2[i].Type)
		}
	}
	wantTypes := []domain.ChatEventType{domain.EventStart, domain.EventChunk, domain.EventChunk, domain.EventEnd}
	for i, want := range wantTypes {
		if got1[i].Type != want {
			t.Errorf("event %d type = %s, want %s", i, got1[i].Type, want)
		}
	}
}

func TestLateViewerDoesNotReplayHistory(t *testing.T) {
	h := newTestHub()
	cid := uuid.New()
	mid := uuid.New()

	early, _ := h.RegisterConversation(cid)
	h.PublishChunk(cid, mid, "first")

	late, _ := h.RegisterConversation(cid)
	h.PublishChunk(cid, mid, "second")
	h.PublishEnd(cid, mid, "firstsecond")
	h.RemoveConversation(cid)

	gotEarly := drain(early)
	gotLate := drain(late)

	if len(gotEarly) != 3 {
		t.Errorf("early viewer got %d events, want 3", len(gotEarly))
	}
	if len(gotLate) != 2 {
		t.Fatalf("late viewer got %d events, want 2 (no replay)", len(gotLate))
	}
	if gotLate[0].Payload.(domain.ChunkPayload).Content != "second" {
		t.Errorf("late viewer first event = %v, want chunk %q", gotLate[0].Payload, "second")
	}
	if gotLate[1].Type != domain.EventEnd {
		t.Errorf("late viewer last event = %s, want end", gotLate[1].Type)
	}
}

func TestRemoveConversationDeliversQueuedEvents(t *testing.T) {
	h := newTestHub()
	cid := uuid.New()
	mid := uuid.New()

	ch, _ := h.RegisterConversation(cid)
	h.PublishChunk(cid, mid, "queued")
	h.PublishEnd(cid, mid, "queued")
	h.RemoveConversation(cid)

	got := drain(ch)
	if len(got) != 2 {
		t.Fatalf("got %d events after teardown, want 2", len(got))
	}
	if got[1].Type != domain.EventEnd {
		t.Errorf("last queued event = %s, want end", got[1].Type)
	}
}

func TestPublishAfterRemoveCreatesFreshEntry(t *testing.T) {
	h := newTestHub()
	cid := uuid.New()

	ch, _ := h.RegisterConversation(cid)
	h.RemoveConversation(cid)
	if _, ok := <-ch; ok {
		t.Fatal("viewer channel should be closed after remove")
	}

	// Publishing to a removed conversation must not panic, and a new viewer
	// attaches to a fresh entry.
	h.PublishStart(cid, "again")
	ch2, unregister := h.RegisterConversation(cid)
	h.PublishStart(cid, "visible")
	unregister()

	got := drain(ch2)
	if len(got) != 1 {
		t.Fatalf("fresh viewer got %d events, want 1", len(got))
	}
	if got[0].Payload.(domain.StartPayload).Message != "visible" {
		t.Errorf("fresh viewer saw %v, want the post-registration event", got[0].Payload)
	}
}

func TestUnregisterStopsDeliveryForOneViewerOnly(t *testing.T) {
	h := newTestHub()
	cid := uuid.New()
	mid := uuid.New()

	gone, unregister := h.RegisterConversation(cid)
	stay, _ := h.RegisterConversation(cid)

	h.PublishChunk(cid, mid, "both")
	unregister()
	h.PublishChunk(cid, mid, "only stay")
	h.RemoveConversation(cid)

	if got := drain(gone); len(got) != 1 {
		t.Errorf("unregistered viewer got %d events, want 1", len(got))
	}
	if got := drain(stay); len(got) != 2 {
		t.Errorf("remaining viewer got %d events, want 2", len(got))
	}
}

func TestSearchResultSideTable(t *testing.T) {
	h := newTestHub()
	cid := uuid.New()
	mid := uuid.New()

	results := []entity.SearchResult{
		{Title: "Go", URL: "https://go.dev", Content: "the Go site"},
		{Title: "Hertz", URL: "https://github.com/cloudwego/hertz"},
	}
	h.PublishSearchResults(cid, mid, results)

	byConv := h.SearchResultsByConversation(cid)
	if len(byConv) != 2 {
		t.Fatalf("by conversation: got %d results, want 2", len(byConv))
	}
	byMsg := h.SearchResultsByMessage(mid)
	if len(byMsg) != 2 {
		t.Fatalf("by message: got %d results, want 2", len(byMsg))
	}
	if byMsg[0].Title != "Go" {
		t.Errorf("first result title = %q, want %q", byMsg[0].Title, "Go")
	}

	// Message-scoped results survive conversation teardown so late readers
	// can still fetch them.
	h.RemoveConversation(cid)
	if got := h.SearchResultsByConversation(cid); len(got) != 0 {
		t.Errorf("conversation side table not cleared on remove: %d results", len(got))
	}
	if got := h.SearchResultsByMessage(mid); len(got) != 2 {
		t.Errorf("message side table cleared on remove: got %d, want 2", len(got))
	}
}

func TestSearchResultMessageTableEvictsOldest(t *testing.T) {
	h := newTestHub()
	cid := uuid.New()

	first := uuid.New()
	h.PublishSearchResults(cid, first, []entity.SearchResult{{Title: "oldest"}})

	var last uuid.UUID
	for i := 0; i < maxSearchMessages; i++ {
		last = uuid.New()
		h.PublishSearchResults(cid, last, []entity.SearchResult{{Title: "filler"}})
	}

	if got := h.SearchResultsByMessage(first); len(got) != 0 {
		t.Errorf("oldest entry survived past the cap: %d results", len(got))
	}
	if got := h.SearchResultsByMessage(last); len(got) != 1 {
		t.Errorf("newest entry evicted: got %d results, want 1", len(got))
	}

	// A second publish for a retained message must not re-register it in the
	// eviction order.
	h.PublishSearchResults(cid, last, []entity.SearchResult{{Title: "more"}})
	if got := h.SearchResultsByMessage(last); len(got) != 2 {
		t.Errorf("results not appended for retained message: got %d, want 2", len(got))
	}
}
