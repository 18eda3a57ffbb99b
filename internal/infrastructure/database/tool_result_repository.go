package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/messagetoolresult"
)

// toolResultRepository is the ent implementation of ToolResultRepository.
// Sequence assignment is serialized per message with an in-process lock; the
// unique (message_id, call_sequence) index catches anything the lock cannot
// see, such as a second process.
type toolResultRepository struct {
	client *ent.Client

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewToolResultRepository creates the tool result repository.
func NewToolResultRepository(client *ent.Client) domain.ToolResultRepository {
	return &toolResultRepository{
		client: client,
		locks:  make(map[uuid.UUID]*sync.Mutex),
	}
}

// lockFor returns the per-message lock, creating it on first use.
func (r *toolResultRepository) lockFor(messageID uuid.UUID) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[messageID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[messageID] = l
	}
	return l
}

// StartToolCall assigns the next call sequence for the message and inserts an
// IN_PROGRESS record with it, in one transaction.
func (r *toolResultRepository) StartToolCall(ctx context.Context, messageID uuid.UUID, toolName, toolInput string) (*entity.ToolResult, error) {
	l := r.lockFor(messageID)
	l.Lock()
	defer l.Unlock()

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction: %w", err)
	}

	next := 1
	last, err := tx.MessageToolResult.Query().
		Where(messagetoolresult.MessageID(messageID)).
		Order(ent.Desc(messagetoolresult.FieldCallSequence)).
		First(ctx)
	switch {
	case err == nil:
		next = last.CallSequence + 1
	case !ent.IsNotFound(err):
		_ = tx.Rollback()
		return nil, fmt.Errorf("failed to query last call sequence: %w", err)
	}

	created, err := tx.MessageToolResult.Create().
		SetMessageID(messageID).
		SetToolName(toolName).
		SetCallSequence(next).
		SetToolInput(toolInput).
		SetStatus(entity.ToolStatusInProgress).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("failed to insert tool result: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit tool result: %w", err)
	}
	return toToolResultEntity(created), nil
}

// CompleteToolCall marks the record SUCCESS and stores the output.
func (r *toolResultRepository) CompleteToolCall(ctx context.Context, toolResultID uuid.UUID, toolOutput string) error {
	err := r.client.MessageToolResult.UpdateOneID(toolResultID).
		SetStatus(entity.ToolStatusSuccess).
		SetToolOutput(toolOutput).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("tool result", toolResultID.String())
		}
		return fmt.Errorf("failed to complete tool call: %w", err)
	}
	return nil
}

// FailToolCall marks the record FAILED and stores the error message.
func (r *toolResultRepository) FailToolCall(ctx context.Context, toolResultID uuid.UUID, errorMessage string) error {
	err := r.client.MessageToolResult.UpdateOneID(toolResultID).
		SetStatus(entity.ToolStatusFailed).
		SetErrorMessage(errorMessage).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("tool result", toolResultID.String())
		}
		return fmt.Errorf("failed to mark tool call failed: %w", err)
	}
	return nil
}

// ListByMessage returns the message's tool results in call order.
func (r *toolResultRepository) ListByMessage(ctx context.Context, messageID uuid.UUID) ([]*entity.ToolResult, error) {
	rows, err := r.client.MessageToolResult.Query().
		Where(messagetoolresult.MessageID(messageID)).
		Order(ent.Asc(messagetoolresult.FieldCallSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tool results: %w", err)
	}

	result := make([]*entity.ToolResult, len(rows))
	for i, row := range rows {
		result[i] = toToolResultEntity(row)
	}
	return result, nil
}

// DeleteByMessageIDs removes all tool results owned by the messages and drops
// their in-process locks.
func (r *toolResultRepository) DeleteByMessageIDs(ctx context.Context, messageIDs []uuid.UUID) error {
	if len(messageIDs) == 0 {
		return nil
	}

	_, err := r.client.MessageToolResult.Delete().
		Where(messagetoolresult.MessageIDIn(messageIDs...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete tool results: %w", err)
	}

	r.mu.Lock()
	for _, id := range messageIDs {
		delete(r.locks, id)
	}
	r.mu.Unlock()
	return nil
}
