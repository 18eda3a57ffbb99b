package entity

import "time"

// User is the domain user entity (no JSON tags, domain layer only).
type User struct {
	ID           string
	Username     string
	PasswordHash string
	LastLoginAt  *time.Time
	DeletedAt    *time.Time // soft delete marker, nil means active
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsDeleted reports whether the user has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// UserModelPreference stores a user's default provider/model pair. The model
// selector consults it when a request names neither provider nor model.
type UserModelPreference struct {
	ID           string
	UserID       string
	ProviderName string
	ModelName    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
