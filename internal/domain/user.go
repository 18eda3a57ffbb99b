package domain

import (
	"context"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
)

// ============ Repository interface ============

// UserRepository is the user data access interface.
type UserRepository interface {
	// Create creates a user.
	Create(ctx context.Context, username, passwordHash string) (*entity.User, error)

	// GetByUsername looks a user up by name (login path).
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// GetByID looks a user up by id.
	GetByID(ctx context.Context, userID string) (*entity.User, error)

	// List returns users with pagination.
	List(ctx context.Context, offset, limit int) ([]*entity.User, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int, error)

	// Delete soft-deletes a user.
	Delete(ctx context.Context, userID string) error

	// UpdateLastLogin updates the last login timestamp.
	UpdateLastLogin(ctx context.Context, userID string) error
}

// ============ Usecase interface ============

// UserUsecase is the user business logic interface.
type UserUsecase interface {
	// Register registers a new user.
	Register(ctx context.Context, username, password string) (*entity.User, error)

	// Login verifies credentials and returns the user.
	Login(ctx context.Context, username, password string) (*entity.User, error)

	// GetUser returns user information.
	GetUser(ctx context.Context, userID string) (*entity.User, error)

	// ListUsers returns a user page plus the total count.
	ListUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int, error)

	// DeleteUser deletes a user.
	DeleteUser(ctx context.Context, userID string) error

	// GetModelPreference returns the user's stored default model, or nil
	// when none has been saved.
	GetModelPreference(ctx context.Context, userID string) (*entity.UserModelPreference, error)

	// SetModelPreference upserts the user's default provider/model pair.
	SetModelPreference(ctx context.Context, userID, providerName, modelName string) (*entity.UserModelPreference, error)

	// DeleteModelPreference removes the user's stored default model.
	DeleteModelPreference(ctx context.Context, userID string) error
}
