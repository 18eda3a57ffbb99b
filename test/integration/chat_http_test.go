//go:build integration
// +build integration

package integration

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/network/netpoll"

	"github.com/peng15653830a/springai-chat-sub004/internal/config"
	"github.com/peng15653830a/springai-chat-sub004/internal/handler"
	"github.com/peng15653830a/springai-chat-sub004/internal/handler/dto"
	"github.com/peng15653830a/springai-chat-sub004/internal/hub"
	infradb "github.com/peng15653830a/springai-chat-sub004/internal/infrastructure/database"
	"github.com/peng15653830a/springai-chat-sub004/internal/infrastructure/llm"
	"github.com/peng15653830a/springai-chat-sub004/internal/infrastructure/search"
	"github.com/peng15653830a/springai-chat-sub004/internal/tool"
	"github.com/peng15653830a/springai-chat-sub004/internal/usecase"
	dbpkg "github.com/peng15653830a/springai-chat-sub004/pkg/database"
)

// sseEvent is one parsed server-sent event.
type sseEvent struct {
	name string
	data string
}

// TestChatHTTP_SSE runs the full HTTP SSE pipeline against a real MySQL.
// Run with: go test -tags=integration ./test/integration/...
// Requires: MySQL (localhost:3306). The model provider is an in-process mock,
// so no upstream credentials are needed.
func TestChatHTTP_SSE(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Host: "127.0.0.1",
			Port: 18080,
			Mode: "debug",
		},
		Database: config.DatabaseConfig{
			Driver:          "mysql",
			Host:            getEnvOrDefault("DB_HOST", "127.0.0.1"),
			Port:            3306,
			User:            getEnvOrDefault("DB_USER", "chat_user"),
			Password:        getEnvOrDefault("DB_PASSWORD", "chat_pass"),
			Database:        getEnvOrDefault("DB_NAME", "chat_db"),
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Providers: map[string]config.ProviderConfig{
			"mock": {
				Enabled: true,
				BaseURL: "http://localhost",
				Models: []config.ModelConfig{
					{Name: "mock-1", Enabled: true, MaxTokens: 256},
				},
			},
		},
		Defaults: config.DefaultsConfig{
			Provider:    "mock",
			Model:       "mock-1",
			Temperature: 0.7,
			MaxTokens:   256,
			TopP:        1.0,
		},
		Streaming: config.StreamingConfig{
			ResponseTimeout: 30 * time.Second,
			ViewerBuffer:    64,
		},
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	dbClient, _, err := dbpkg.NewClient(cfg.Database, logger)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	defer dbClient.Close()

	conversationRepo := infradb.NewConversationRepository(dbClient)
	messageRepo := infradb.NewMessageRepository(dbClient)
	toolResultRepo := infradb.NewToolResultRepository(dbClient)
	prefRepo := infradb.NewPreferenceRepository(dbClient)

	events := hub.New(cfg.Streaming.ViewerBuffer, logger)

	providers := llm.NewRegistry(logger)
	providers.Register(&llm.MockProvider{
		ProviderName: "mock",
		Fragments:    []string{"Hello", " from", " the", " mock", " model."},
	})

	searchSvc := search.NewTavilyService(cfg.Search, logger)
	tools := tool.NewRegistry(logger)
	tools.Register(tool.NewWebSearch(searchSvc, toolResultRepo, events, 3, logger))

	selector := usecase.NewModelSelector(cfg, prefRepo, logger)
	prompts := usecase.NewPromptBuilder(messageRepo, logger)
	chatUC := usecase.NewChatUsecase(
		cfg, conversationRepo, messageRepo, toolResultRepo,
		selector, prompts, providers, tools, events, logger,
	)
	chatHandler := handler.NewChatHandler(chatUC, events, logger)
	messageHandler := handler.NewMessageHandler(chatUC, logger)

	h := server.New(
		server.WithHostPorts(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)),
		server.WithTransport(netpoll.NewTransporter),
	)

	v1 := h.Group("/api/v1")
	v1.POST("/chat/stream", chatHandler.StreamChat)
	v1.GET("/conversations/:id/messages", messageHandler.History)
	v1.DELETE("/conversations/:id", messageHandler.DeleteConversation)

	go func() {
		if err := h.Run(); err != nil {
			logger.Error("server failed", "error", err)
		}
	}()

	time.Sleep(2 * time.Second)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.Shutdown(ctx)
	}()

	baseURL := fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port)
	client := &http.Client{Timeout: 60 * time.Second}

	var conversationID string

	t.Run("SSE streaming chat", func(t *testing.T) {
		evs := streamChat(t, client, baseURL, dto.StreamChatRequest{
			Message: "hello there",
		})

		if len(evs) == 0 {
			t.Fatal("expected SSE events, got none")
		}
		if evs[0].name != "conversation" {
			t.Fatalf("expected first event 'conversation', got %q", evs[0].name)
		}
		var conv dto.ConversationResponse
		if err := json.Unmarshal([]byte(evs[0].data), &conv); err != nil {
			t.Fatalf("failed to unmarshal conversation event: %v", err)
		}
		if conv.ID == "" {
			t.Fatal("conversation event carried no id")
		}
		conversationID = conv.ID

		if evs[1].name != "start" {
			t.Errorf("expected 'start' after 'conversation', got %q", evs[1].name)
		}

		var content strings.Builder
		chunkCount := 0
		sawEnd := false
		for _, ev := range evs[2:] {
			switch ev.name {
			case "chunk":
				var p struct {
					Content string `json:"content"`
				}
				if err := json.Unmarshal([]byte(ev.data), &p); err != nil {
					t.Fatalf("failed to unmarshal chunk: %v", err)
				}
				content.WriteString(p.Content)
				chunkCount++
			case "end":
				sawEnd = true
			case "error":
				t.Fatalf("unexpected error event: %s", ev.data)
			}
		}

		if chunkCount == 0 {
			t.Error("expected at least one chunk event")
		}
		if !sawEnd {
			t.Error("expected a terminal end event")
		}
		if got := content.String(); got != "Hello from the mock model." {
			t.Errorf("aggregated content = %q, want %q", got, "Hello from the mock model.")
		}
		if last := evs[len(evs)-1].name; last != "end" {
			t.Errorf("terminal event must be last, got %q", last)
		}

		t.Logf("streaming test completed: %d chunks, conversation %s", chunkCount, conversationID)
	})

	t.Run("history after turn", func(t *testing.T) {
		if conversationID == "" {
			t.Skip("no conversation from streaming test")
		}

		// Persistence happens after the terminal event is published.
		time.Sleep(time.Second)

		resp, err := client.Get(baseURL + "/api/v1/conversations/" + conversationID + "/messages")
		if err != nil {
			t.Fatalf("history request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			t.Fatalf("expected status 200, got %d, body: %s", resp.StatusCode, string(body))
		}

		var envelope struct {
			Data struct {
				Items []dto.MessageResponse `json:"items"`
			} `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			t.Fatalf("failed to decode history: %v", err)
		}

		if len(envelope.Data.Items) < 2 {
			t.Fatalf("expected user and assistant rows, got %d", len(envelope.Data.Items))
		}
		last := envelope.Data.Items[len(envelope.Data.Items)-1]
		if last.Role != "assistant" {
			t.Errorf("last row role = %q, want assistant", last.Role)
		}
		if last.Content != "Hello from the mock model." {
			t.Errorf("assistant content = %q", last.Content)
		}
	})

	t.Run("second turn reuses conversation", func(t *testing.T) {
		if conversationID == "" {
			t.Skip("no conversation from streaming test")
		}

		evs := streamChat(t, client, baseURL, dto.StreamChatRequest{
			ConversationID: conversationID,
			Message:        "and again",
		})

		var conv dto.ConversationResponse
		if err := json.Unmarshal([]byte(evs[0].data), &conv); err != nil {
			t.Fatalf("failed to unmarshal conversation event: %v", err)
		}
		if conv.ID != conversationID {
			t.Errorf("conversation id changed across turns: %s != %s", conv.ID, conversationID)
		}
	})

	t.Run("delete conversation", func(t *testing.T) {
		if conversationID == "" {
			t.Skip("no conversation from streaming test")
		}

		req, _ := http.NewRequest(http.MethodDelete, baseURL+"/api/v1/conversations/"+conversationID, nil)
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("delete request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", resp.StatusCode)
		}
	})
}

// streamChat posts one turn and parses the SSE stream to completion.
func streamChat(t *testing.T, client *http.Client, baseURL string, reqBody dto.StreamChatRequest) []sseEvent {
	t.Helper()

	bodyBytes, _ := json.Marshal(reqBody)
	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/chat/stream", bytes.NewReader(bodyBytes))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected status 200, got %d, body: %s", resp.StatusCode, string(body))
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
		t.Errorf("expected Content-Type 'text/event-stream', got %q", ct)
	}

	var (
		events  []sseEvent
		current sseEvent
	)
	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				break
			}
			t.Fatalf("failed to read stream: %v", err)
		}

		line = strings.TrimRight(line, "\r\n")
		switch {
		case strings.HasPrefix(line, "event:"):
			current.name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			current.data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		case line == "":
			if current.name != "" || current.data != "" {
				events = append(events, current)
				current = sseEvent{}
			}
		}
	}
	if current.name != "" || current.data != "" {
		events = append(events, current)
	}
	return events
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
