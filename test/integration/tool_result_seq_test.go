//go:build integration
// +build integration

package integration

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/peng15653830a/springai-chat-sub004/internal/config"
	infradb "github.com/peng15653830a/springai-chat-sub004/internal/infrastructure/database"
	dbpkg "github.com/peng15653830a/springai-chat-sub004/pkg/database"
)

// TestToolCallSequenceConcurrent fires many StartToolCall races on one message
// and verifies the assigned sequences come out gapless, exactly 1..K.
func TestToolCallSequenceConcurrent(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver:          "mysql",
		Host:            getEnvOrDefault("DB_HOST", "127.0.0.1"),
		Port:            3306,
		User:            getEnvOrDefault("DB_USER", "chat_user"),
		Password:        getEnvOrDefault("DB_PASSWORD", "chat_pass"),
		Database:        getEnvOrDefault("DB_NAME", "chat_db"),
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	dbClient, _, err := dbpkg.NewClient(cfg, logger)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	defer dbClient.Close()

	repo := infradb.NewToolResultRepository(dbClient)
	messageID := uuid.New()
	defer func() {
		if err := repo.DeleteByMessageIDs(context.Background(), []uuid.UUID{messageID}); err != nil {
			t.Logf("cleanup failed: %v", err)
		}
	}()

	const calls = 8
	seqCh := make(chan int, calls)
	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr, err := repo.StartToolCall(context.Background(), messageID, "web_search", `{"query":"go"}`)
			if err != nil {
				t.Errorf("StartToolCall failed: %v", err)
				return
			}
			seqCh <- tr.CallSequence
		}()
	}
	wg.Wait()
	close(seqCh)

	seen := make(map[int]bool)
	n := 0
	for seq := range seqCh {
		if seen[seq] {
			t.Errorf("sequence %d assigned twice", seq)
		}
		seen[seq] = true
		n++
	}
	if n != calls {
		t.Fatalf("%d calls succeeded, want %d", n, calls)
	}
	for want := 1; want <= calls; want++ {
		if !seen[want] {
			t.Errorf("sequence %d missing, assignment has a gap", want)
		}
	}

	rows, err := repo.ListByMessage(context.Background(), messageID)
	if err != nil {
		t.Fatalf("ListByMessage failed: %v", err)
	}
	if len(rows) != calls {
		t.Fatalf("persisted %d rows, want %d", len(rows), calls)
	}
	for i, row := range rows {
		if row.CallSequence != i+1 {
			t.Errorf("row %d sequence = %d, want %d", i, row.CallSequence, i+1)
		}
	}
}
