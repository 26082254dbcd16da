package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for users.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	GetAll(ctx context.Context) ([]*User, error)
	UpdateName(ctx context.Context, userID uuid.UUID, name string) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// RefreshTokenRepository stores at most one live refresh token per user.
type RefreshTokenRepository interface {
	Replace(ctx context.Context, token *RefreshToken) error
	GetByToken(ctx context.Context, token string) (*RefreshToken, error)
	DeleteByID(ctx context.Context, tokenID uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}
