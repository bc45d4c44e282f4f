// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dumpmycash/backend/internal/integration/persistence/model"
)

// TokenRepository tracks issued refresh tokens so they can be revoked before
// their JWT expiry.
type TokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository instance.
func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{
		db: db,
	}
}

// Store records a freshly issued refresh token.
func (r *TokenRepository) Store(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	tokenModel := &model.RefreshTokenModel{
		ID:        uuid.New(),
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(tokenModel).Error
}

// Invalidate marks one refresh token as revoked.
func (r *TokenRepository) Invalidate(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token = ?", token).
		Update("invalidated", true).Error
}

// InvalidateAllForUser marks every refresh token of a user as revoked.
func (r *TokenRepository) InvalidateAllForUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("user_id = ?", userID).
		Update("invalidated", true).Error
}

// IsValid reports whether a refresh token is known, unexpired and not revoked.
func (r *TokenRepository) IsValid(ctx context.Context, token string) (bool, error) {
	var tokenModel model.RefreshTokenModel
	result := r.db.WithContext(ctx).Where("token = ?", token).First(&tokenModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	if tokenModel.Invalidated {
		return false, nil
	}
	return tokenModel.ExpiresAt.After(time.Now().UTC()), nil
}
