package database

import (
	"context"
	"fmt"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent"
	"github.com/peng15653830a/springai-chat-sub004/internal/ent/usermodelpreference"
)

// preferenceRepository is the ent implementation of UserPreferenceRepository.
type preferenceRepository struct {
	client *ent.Client
}

// NewPreferenceRepository creates the preference repository.
func NewPreferenceRepository(client *ent.Client) domain.UserPreferenceRepository {
	return &preferenceRepository{client: client}
}

// GetDefault returns the user's stored preference.
func (r *preferenceRepository) GetDefault(ctx context.Context, userID string) (*entity.UserModelPreference, error) {
	p, err := r.client.UserModelPreference.Query().
		Where(usermodelpreference.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("model preference", userID)
		}
		return nil, fmt.Errorf("failed to get model preference: %w", err)
	}
	return toPreferenceEntity(p), nil
}

// SetDefault upserts the user's default provider/model pair.
func (r *preferenceRepository) SetDefault(ctx context.Context, userID, providerName, modelName string) (*entity.UserModelPreference, error) {
	existing, err := r.client.UserModelPreference.Query().
		Where(usermodelpreference.UserID(userID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query model preference: %w", err)
	}

	if err == nil {
		updated, uerr := existing.Update().
			SetProviderName(providerName).
			SetModelName(modelName).
			Save(ctx)
		if uerr != nil {
			return nil, fmt.Errorf("failed to update model preference: %w", uerr)
		}
		return toPreferenceEntity(updated), nil
	}

	created, err := r.client.UserModelPreference.Create().
		SetUserID(userID).
		SetProviderName(providerName).
		SetModelName(modelName).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create model preference: %w", err)
	}
	return toPreferenceEntity(created), nil
}

// DeleteDefault removes the user's stored preference.
func (r *preferenceRepository) DeleteDefault(ctx context.Context, userID string) error {
	n, err := r.client.UserModelPreference.Delete().
		Where(usermodelpreference.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete model preference: %w", err)
	}
	if n == 0 {
		return domain.NewNotFoundError("model preference", userID)
	}
	return nil
}
