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

// UserRepository implements user.Repository on gorm.
type UserRepository struct {
	db *database.Database
}

func NewUserRepository(db *database.Database) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt

	dbModel := toUserModel(u)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if isUniqueViolation(err, "idx_users_email") {
			return user.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.ID = dbModel.ID
	u.CreatedAt = dbModel.CreatedAt
	u.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).Where("email = ?", email).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", userID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	var dbModels []models.UserModel
	if err := r.db.DB.WithContext(ctx).Order("created_at").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	users := make([]*user.User, len(dbModels))
	for i := range dbModels {
		users[i] = toUserEntity(&dbModels[i])
	}

	return users, nil
}

func (r *UserRepository) UpdateName(ctx context.Context, userID uuid.UUID, name string) error {
	result := r.db.DB.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"name":       name,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	result := r.db.DB.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password_hashed": passwordHash,
			"updated_at":      time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.UserModel{}, "id = ?", userID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func toUserModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:             u.ID,
		Email:          u.Email,
		PasswordHashed: u.PasswordHashed,
		Name:           u.Name,
		Role:           u.Role,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func toUserEntity(m *models.UserModel) *user.User {
	return &user.User{
		ID:             m.ID,
		Email:          m.Email,
		PasswordHashed: m.PasswordHashed,
		Name:           m.Name,
		Role:           m.Role,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
