package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classbook/internal/database"
	"classbook/internal/domain/user"
	"classbook/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshTokenRepository implements user.RefreshTokenRepository on gorm.
type RefreshTokenRepository struct {
	db *database.Database
}

func NewRefreshTokenRepository(db *database.Database) user.RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// Replace removes whatever token the user currently holds and stores the new
// one, keeping the one-live-token-per-user invariant inside a transaction.
func (r *RefreshTokenRepository) Replace(ctx context.Context, token *user.RefreshToken) error {
	token.ID = uuid.New()
	token.CreatedAt = time.Now()
	token.UpdatedAt = token.CreatedAt

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", token.UserID).
			Delete(&models.RefreshTokenModel{}).Error; err != nil {
			return err
		}
		return tx.Create(toRefreshTokenModel(token)).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace refresh token: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) GetByToken(ctx context.Context, token string) (*user.RefreshToken, error) {
	var dbModel models.RefreshTokenModel
	err := r.db.DB.WithContext(ctx).Where("token = ?", token).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrRefreshTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return toRefreshTokenEntity(&dbModel), nil
}

func (r *RefreshTokenRepository) DeleteByID(ctx context.Context, tokenID uuid.UUID) error {
	if err := r.db.DB.WithContext(ctx).
		Delete(&models.RefreshTokenModel{}, "id = ?", tokenID).Error; err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

// DeleteByUserID is idempotent: deleting a token that is not there is fine.
func (r *RefreshTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := r.db.DB.WithContext(ctx).
		Delete(&models.RefreshTokenModel{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to delete refresh tokens: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.DB.WithContext(ctx).
		Delete(&models.RefreshTokenModel{}, "expires_at < ?", time.Now())
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func toRefreshTokenModel(t *user.RefreshToken) *models.RefreshTokenModel {
	return &models.RefreshTokenModel{
		ID:        t.ID,
		UserID:    t.UserID,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toRefreshTokenEntity(m *models.RefreshTokenModel) *user.RefreshToken {
	return &user.RefreshToken{
		ID:        m.ID,
		UserID:    m.UserID,
		Token:     m.Token,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
