package handler

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/google/uuid"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
)

// ============ Fakes ============

// fakeChatUsecase records the stream requests it receives and completes each
// turn immediately with an end event.
type fakeChatUsecase struct {
	mu   sync.Mutex
	reqs []*entity.StreamRequest
}

func (f *fakeChatUsecase) StreamChat(_ context.Context, req *entity.StreamRequest) (uuid.UUID, <-chan domain.ChatEvent, func(), error) {
	f.mu.Lock()
	f.reqs = append(f.reqs, req)
	f.mu.Unlock()

	convID := req.ConversationID
	if convID == uuid.Nil {
		convID = uuid.New()
	}
	ch := make(chan domain.ChatEvent, 1)
	ch <- domain.EndEvent(uuid.New(), "done")
	close(ch)
	return convID, ch, func() {}, nil
}

func (f *fakeChatUsecase) History(context.Context, uuid.UUID) ([]*entity.Message, error) {
	return nil, nil
}
func (f *fakeChatUsecase) ListConversations(context.Context, string) ([]*entity.Conversation, error) {
	return nil, nil
}
func (f *fakeChatUsecase) SearchResultsByMessage(context.Context, uuid.UUID) ([]entity.SearchResult, error) {
	return nil, nil
}
func (f *fakeChatUsecase) DeleteConversation(context.Context, uuid.UUID) error { return nil }

// lastUserID returns the user id of the most recent stream request.
func (f *fakeChatUsecase) lastUserID(t *testing.T) string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.reqs) == 0 {
		t.Fatal("no stream request reached the usecase")
	}
	return f.reqs[len(f.reqs)-1].UserID
}

// fakeUserUsecase satisfies the interface; the tests only need the handler's
// jwt middleware, never the user business logic.
type fakeUserUsecase struct{}

func (fakeUserUsecase) Register(context.Context, string, string) (*entity.User, error) {
	return nil, domain.ErrInvalidInput
}
func (fakeUserUsecase) Login(context.Context, string, string) (*entity.User, error) {
	return nil, domain.ErrUnauthorized
}
func (fakeUserUsecase) GetUser(context.Context, string) (*entity.User, error) {
	return nil, domain.ErrUnauthorized
}
func (fakeUserUsecase) ListUsers(context.Context, int, int) ([]*entity.User, int, error) {
	return nil, 0, nil
}
func (fakeUserUsecase) DeleteUser(context.Context, string) error { return nil }
func (fakeUserUsecase) GetModelPreference(context.Context, string) (*entity.UserModelPreference, error) {
	return nil, nil
}
func (fakeUserUsecase) SetModelPreference(context.Context, string, string, string) (*entity.UserModelPreference, error) {
	return nil, nil
}
func (fakeUserUsecase) DeleteModelPreference(context.Context, string) error { return nil }

// ============ Tests ============

// TestStreamChatOptionalAuth verifies that the chat route resolves the caller
// identity from a bearer token when one is sent and still serves anonymous
// requests, mirroring the route wiring.
func TestStreamChatOptionalAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	chatUC := &fakeChatUsecase{}
	userHandler := NewUserHandler(fakeUserUsecase{}, "test-secret", logger)
	chatHandler := NewChatHandler(chatUC, nil, logger)

	h := server.Default()
	chat := h.Group("/api/v1/chat", userHandler.OptionalAuthMiddleware())
	chat.POST("/stream", chatHandler.StreamChat)

	token, _, err := userHandler.authMiddleware.TokenGenerator(&entity.User{ID: "u1", Username: "alice"})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	post := func(t *testing.T, headers ...ut.Header) {
		t.Helper()
		body := `{"message":"hello"}`
		headers = append(headers, ut.Header{Key: "Content-Type", Value: "application/json"})
		w := ut.PerformRequest(h.Engine, "POST", "/api/v1/chat/stream",
			&ut.Body{Body: bytes.NewBufferString(body), Len: len(body)},
			headers...,
		)
		if code := w.Result().StatusCode(); code != 200 {
			t.Fatalf("status = %d, want 200, body: %s", code, w.Result().Body())
		}
	}

	t.Run("bearer token resolves identity", func(t *testing.T) {
		post(t, ut.Header{Key: "Authorization", Value: "Bearer " + token})
		if got := chatUC.lastUserID(t); got != "u1" {
			t.Errorf("stream request user id = %q, want %q", got, "u1")
		}
	})

	t.Run("anonymous request stays anonymous", func(t *testing.T) {
		post(t)
		if got := chatUC.lastUserID(t); got != "" {
			t.Errorf("stream request user id = %q, want empty", got)
		}
	})

	t.Run("garbage token is ignored", func(t *testing.T) {
		post(t, ut.Header{Key: "Authorization", Value: "Bearer not-a-token"})
		if got := chatUC.lastUserID(t); got != "" {
			t.Errorf("stream request user id = %q, want empty", got)
		}
	})
}
