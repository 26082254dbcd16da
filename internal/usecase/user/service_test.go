package user

import (
	"context"
	"os"
	"testing"
	"time"

	"classbook/internal/config"
	domainUser "classbook/internal/domain/user"
	"classbook/internal/logger"
	appErrors "classbook/pkg/errors"
	"classbook/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domainUser.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainUser.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domainUser.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainUser.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*domainUser.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainUser.User), args.Error(1)
}

func (m *MockUserRepository) UpdateName(ctx context.Context, userID uuid.UUID, name string) error {
	args := m.Called(ctx, userID, name)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Replace(ctx context.Context, token *domainUser.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) GetByToken(ctx context.Context, token string) (*domainUser.RefreshToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainUser.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteByID(ctx context.Context, tokenID uuid.UUID) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:             "test-secret-key-for-unit-tests",
			ExpiryHours:        1,
			RefreshExpiryHours: 168,
		},
	}
}

func TestService_SignUp_Success(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockRefreshTokenRepository{}
	svc := NewService(userRepo, tokenRepo, testConfig())

	req := &SignUpRequest{
		Email:    "student@example.com",
		Password: "secure1pass",
		Name:     "Student",
	}

	userRepo.On("GetByEmail", mock.Anything, req.Email).Return(nil, domainUser.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domainUser.User) bool {
		return u.Email == req.Email &&
			u.Role == domainUser.RoleUser &&
			u.PasswordHashed != req.Password &&
			utils.CheckPassword(u.PasswordHashed, req.Password)
	})).Return(nil)

	resp, err := svc.SignUp(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, req.Email, resp.Email)
	assert.Equal(t, domainUser.RoleUser, resp.Role)
	userRepo.AssertExpectations(t)
}

func TestService_SignUp_DuplicateEmail(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockRefreshTokenRepository{}
	svc := NewService(userRepo, tokenRepo, testConfig())

	req := &SignUpRequest{
		Email:    "taken@example.com",
		Password: "secure1pass",
		Name:     "Student",
	}
	userRepo.On("GetByEmail", mock.Anything, req.Email).Return(&domainUser.User{ID: uuid.New(), Email: req.Email}, nil)

	resp, err := svc.SignUp(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domainUser.ErrDuplicateEmail)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_SignUp_WeakPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "no digit", password: "onlyletters"},
		{name: "no letter", password: "1234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &MockUserRepository{}
			tokenRepo := &MockRefreshTokenRepository{}
			svc := NewService(userRepo, tokenRepo, testConfig())

			resp, err := svc.SignUp(context.Background(), &SignUpRequest{
				Email:    "student@example.com",
				Password: tt.password,
				Name:     "Student",
			})

			assert.Nil(t, resp)
			assert.Error(t, err)
			userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Login_Success(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockRefreshTokenRepository{}
	svc := NewService(userRepo, tokenRepo, testConfig())

	hashed, err := utils.HashPassword("secure1pass")
	assert.NoError(t, err)

	stored := &domainUser.User{
		ID:             uuid.New(),
		Email:          "student@example.com",
		PasswordHashed: hashed,
		Role:           domainUser.RoleUser,
	}
	userRepo.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)
	tokenRepo.On("Replace", mock.Anything, mock.MatchedBy(func(rt *domainUser.RefreshToken) bool {
		return rt.UserID == stored.ID && rt.Token != "" && rt.ExpiresAt.After(time.Now())
	})).Return(nil)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    stored.Email,
		Password: "secure1pass",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, stored.Email, resp.User.Email)
	tokenRepo.AssertExpectations(t)
}

func TestService_Login_InvalidPassword(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockRefreshTokenRepository{}
	svc := NewService(userRepo, tokenRepo, testConfig())

	hashed, err := utils.HashPassword("secure1pass")
	assert.NoError(t, err)

	stored := &domainUser.User{
		ID:             uuid.New(),
		Email:          "student@example.com",
		PasswordHashed: hashed,
	}
	userRepo.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    stored.Email,
		Password: "wrong1pass",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
	tokenRepo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockRefreshTokenRepository{}
	svc := NewService(userRepo, tokenRepo, testConfig())

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domainUser.ErrUserNotFound)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "secure1pass",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestService_Refresh_RotatesToken(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockRefreshTokenRepository{}
	cfg := testConfig()
	svc := NewService(userRepo, tokenRepo, cfg)

	userID := uuid.New()
	pair, err := utils.GenerateTokenPair(userID, "student@example.com", domainUser.RoleUser, cfg.JWT.Secret, 1, 168)
	assert.NoError(t, err)

	stored := &domainUser.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     pair.RefreshToken,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	tokenRepo.On("GetByToken", mock.Anything, pair.RefreshToken).Return(stored, nil)
	tokenRepo.On("Replace", mock.Anything, mock.MatchedBy(func(rt *domainUser.RefreshToken) bool {
		return rt.UserID == userID
	})).Return(nil)

	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	tokenRepo.AssertExpectations(t)
}

func TestService_Refresh_MalformedToken(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockRefreshTokenRepository{}
	svc := NewService(userRepo, tokenRepo, testConfig())

	rotated, err := svc.Refresh(context.Background(), "not-a-jwt")

	assert.Nil(t, rotated)
	assert.ErrorIs(t, err, appErrors.ErrInvalidRefreshToken)
	tokenRepo.AssertNotCalled(t, "GetByToken", mock.Anything, mock.Anything)
}

func TestService_Refresh_UnknownStoredToken(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockRefreshTokenRepository{}
	cfg := testConfig()
	svc := NewService(userRepo, tokenRepo, cfg)

	pair, err := utils.GenerateTokenPair(uuid.New(), "student@example.com", domainUser.RoleUser, cfg.JWT.Secret, 1, 168)
	assert.NoError(t, err)

	tokenRepo.On("GetByToken", mock.Anything, pair.RefreshToken).Return(nil, domainUser.ErrRefreshTokenNotFound)

	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)

	assert.Nil(t, rotated)
	assert.ErrorIs(t, err, appErrors.ErrInvalidRefreshToken)
}

func TestService_Refresh_ExpiredStoredToken(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockRefreshTokenRepository{}
	cfg := testConfig()
	svc := NewService(userRepo, tokenRepo, cfg)

	userID := uuid.New()
	pair, err := utils.GenerateTokenPair(userID, "student@example.com", domainUser.RoleUser, cfg.JWT.Secret, 1, 168)
	assert.NoError(t, err)

	stored := &domainUser.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     pair.RefreshToken,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	tokenRepo.On("GetByToken", mock.Anything, pair.RefreshToken).Return(stored, nil)
	tokenRepo.On("DeleteByID", mock.Anything, stored.ID).Return(nil)

	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)

	assert.Nil(t, rotated)
	assert.ErrorIs(t, err, appErrors.ErrInvalidRefreshToken)
	tokenRepo.AssertCalled(t, "DeleteByID", mock.Anything, stored.ID)
}

func TestService_Logout_Idempotent(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockRefreshTokenRepository{}
	svc := NewService(userRepo, tokenRepo, testConfig())

	userID := uuid.New()
	tokenRepo.On("DeleteByUserID", mock.Anything, userID).Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), userID))
	assert.NoError(t, svc.Logout(context.Background(), userID))
}

func TestService_ChangePassword_WrongOldPassword(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockRefreshTokenRepository{}
	svc := NewService(userRepo, tokenRepo, testConfig())

	hashed, err := utils.HashPassword("current1pass")
	assert.NoError(t, err)

	userID := uuid.New()
	userRepo.On("GetByID", mock.Anything, userID).Return(&domainUser.User{ID: userID, PasswordHashed: hashed}, nil)

	err = svc.ChangePassword(context.Background(), userID, &ChangePasswordRequest{
		OldPassword: "wrong1pass",
		NewPassword: "brandnew1pass",
	})

	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}
