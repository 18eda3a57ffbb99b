package search

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/peng15653830a/springai-chat-sub004/internal/config"
)

func TestParseTavilyResponse(t *testing.T) {
	payload := []byte(`{
		"answer": "Go 1.25 is the latest release.",
		"results": [
			{"title": "Go Blog", "url": "https://go.dev/blog", "content": "release notes", "score": 0.91},
			{"title": "Wiki", "url": "https://en.wikipedia.org/wiki/Go", "content": "overview", "score": 0.55}
		]
	}`)

	results, err := parseTavilyResponse(payload)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3 (answer + 2 hits)", len(results))
	}

	// Answer summary leads and must not carry a URL.
	if results[0].Title != "AI Summary" {
		t.Errorf("first result title = %q, want AI Summary", results[0].Title)
	}
	if results[0].HasLinkableURL() {
		t.Error("answer summary must not be linkable")
	}
	if !results[1].HasLinkableURL() {
		t.Errorf("result %q should be linkable", results[1].Title)
	}
	if results[1].Score == nil || *results[1].Score != 0.91 {
		t.Errorf("result score not preserved: %v", results[1].Score)
	}
}

func TestParseTavilyResponseNoAnswer(t *testing.T) {
	results, err := parseTavilyResponse([]byte(`{"results": []}`))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestSearchUnavailableReturnsEmpty(t *testing.T) {
	svc := NewTavilyService(config.SearchConfig{Enabled: false}, slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if svc.IsAvailable() {
		t.Fatal("disabled service reports available")
	}
	results, err := svc.Search(context.Background(), "anything")
	if err != nil {
		t.Fatalf("disabled search returned error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("disabled search returned %d results", len(results))
	}
}
