package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classbook/internal/config"
	domainUser "classbook/internal/domain/user"
	"classbook/internal/logger"
	appErrors "classbook/pkg/errors"
	"classbook/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements signup, login, token refresh and profile use cases.
type Service struct {
	userRepo         domainUser.Repository
	refreshTokenRepo domainUser.RefreshTokenRepository
	config           *config.Config
}

func NewService(
	userRepo domainUser.Repository,
	refreshTokenRepo domainUser.RefreshTokenRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		config:           cfg,
	}
}

func (s *Service) SignUp(ctx context.Context, req *SignUpRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		logger.Warn("Signup attempt with existing email",
			zap.String("email", req.Email),
			zap.String("event", "signup_failed_duplicate_email"),
		)
		return nil, domainUser.ErrDuplicateEmail
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &domainUser.User{
		Email:          req.Email,
		PasswordHashed: hashedPassword,
		Name:           req.Name,
		Role:           domainUser.RoleUser,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("User signed up",
		zap.String("user_id", u.ID.String()),
		zap.String("email", u.Email),
		zap.String("event", "user_signed_up"),
	)

	return ToUserResponse(u), nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Warn("Login attempt with non-existent email",
				zap.String("email", req.Email),
				zap.String("event", "login_failed_user_not_found"),
			)
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(u.PasswordHashed, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.String("user_id", u.ID.String()),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	tokenPair, err := s.issueTokens(ctx, u.ID, u.Email, u.Role)
	if err != nil {
		return nil, err
	}

	logger.Info("User logged in",
		zap.String("user_id", u.ID.String()),
		zap.String("email", u.Email),
		zap.String("event", "login_success"),
	)

	return &AuthResponse{
		User:         ToUserResponse(u),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		TokenType:    tokenPair.TokenType,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

// Refresh validates the presented refresh token against both its signature
// and the stored row, then rotates: the stored token is replaced so the old
// one cannot be replayed.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*utils.TokenPair, error) {
	claims, err := utils.ValidateToken(refreshToken, s.config.JWT.Secret)
	if err != nil {
		logger.Warn("Token refresh with invalid token",
			zap.String("event", "token_refresh_failed_invalid_token"),
			zap.Error(err),
		)
		return nil, appErrors.ErrInvalidRefreshToken
	}

	stored, err := s.refreshTokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domainUser.ErrRefreshTokenNotFound) {
			logger.Warn("Token refresh with unknown token",
				zap.String("user_id", claims.UserID.String()),
				zap.String("event", "token_refresh_failed_token_not_found"),
			)
			return nil, appErrors.ErrInvalidRefreshToken
		}
		return nil, err
	}

	if stored.IsExpired() {
		if err := s.refreshTokenRepo.DeleteByID(ctx, stored.ID); err != nil {
			logger.Error("Failed to delete expired refresh token",
				zap.String("token_id", stored.ID.String()),
				zap.Error(err),
			)
		}
		return nil, appErrors.ErrInvalidRefreshToken
	}

	if stored.UserID != claims.UserID {
		logger.Warn("Token refresh with mismatched user",
			zap.String("token_user_id", stored.UserID.String()),
			zap.String("claim_user_id", claims.UserID.String()),
			zap.String("event", "token_refresh_failed_user_mismatch"),
		)
		return nil, appErrors.ErrInvalidRefreshToken
	}

	tokenPair, err := s.issueTokens(ctx, claims.UserID, claims.Email, claims.Role)
	if err != nil {
		return nil, err
	}

	logger.Debug("Token refreshed",
		zap.String("user_id", claims.UserID.String()),
		zap.String("event", "token_refresh_success"),
	)

	return tokenPair, nil
}

// Logout drops the stored refresh token. Absence is not an error.
func (s *Service) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.refreshTokenRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}

	logger.Info("User logged out",
		zap.String("user_id", userID.String()),
		zap.String("event", "logout"),
	)

	return nil
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if err := s.userRepo.UpdateName(ctx, userID, req.Name); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, req *ChangePasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if err := utils.ValidatePassword(req.NewPassword); err != nil {
		return appErrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPassword(u.PasswordHashed, req.OldPassword) {
		logger.Warn("Password change with invalid old password",
			zap.String("user_id", u.ID.String()),
			zap.String("event", "password_change_failed"),
		)
		return appErrors.ErrInvalidCredentials
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return err
	}

	logger.Info("Password changed",
		zap.String("user_id", u.ID.String()),
		zap.String("event", "password_change_success"),
	)

	return nil
}

func (s *Service) GetAllUsers(ctx context.Context) ([]*UserResponse, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*UserResponse, len(users))
	for i, u := range users {
		responses[i] = ToUserResponse(u)
	}

	return responses, nil
}

func (s *Service) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	logger.Info("User deleted",
		zap.String("user_id", userID.String()),
		zap.String("event", "user_deleted"),
	)

	return nil
}

// issueTokens generates a pair and replaces the stored refresh token, so a
// user never holds more than one live refresh token.
func (s *Service) issueTokens(ctx context.Context, userID uuid.UUID, email, role string) (*utils.TokenPair, error) {
	tokenPair, err := utils.GenerateTokenPair(
		userID,
		email,
		role,
		s.config.JWT.Secret,
		s.config.JWT.ExpiryHours,
		s.config.JWT.RefreshExpiryHours,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	stored := &domainUser.RefreshToken{
		UserID:    userID,
		Token:     tokenPair.RefreshToken,
		ExpiresAt: time.Now().Add(time.Duration(s.config.JWT.RefreshExpiryHours) * time.Hour),
	}
	if err := s.refreshTokenRepo.Replace(ctx, stored); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return tokenPair, nil
}
