package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workhub_backend/internal/auth"
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"
)

func init() {
	auth.Init("test-secret", "test-refresh-secret", 15, 7)
}

func storedUser(t *testing.T) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("correct-horse1")
	require.NoError(t, err)

	return &models.User{
		BaseModel:    models.BaseModel{ID: "user-1"},
		Name:         "Jamie",
		Username:     "jamie",
		Email:        "jamie@example.com",
		PasswordHash: hash,
		IsActive:     true,
		Roles:        []models.Role{{Name: models.RoleUser}},
	}
}

func TestAuthService_Register(t *testing.T) {
	users := &fakeUserRepo{
		FindRoleByNameFn: func(name string) (*models.Role, error) {
			return &models.Role{Name: name}, nil
		},
		CreateFn: func(user *models.User, roles []models.Role) error {
			assert.NotEqual(t, "secret-password", user.PasswordHash)
			require.Len(t, roles, 1)
			assert.Equal(t, models.RoleUser, roles[0].Name)
			return nil
		},
	}

	svc := NewAuthService(users, &fakeTokenRepo{})
	user, err := svc.Register(&dto.RegisterRequest{
		Name:     "Jamie",
		Username: "jamie",
		Email:    "jamie@example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "jamie", user.Username)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := &fakeUserRepo{
		FindRoleByNameFn: func(name string) (*models.Role, error) {
			return &models.Role{Name: name}, nil
		},
		CreateFn: func(user *models.User, roles []models.Role) error {
			return repositories.ErrUserAlreadyExists
		},
	}

	svc := NewAuthService(users, &fakeTokenRepo{})
	_, err := svc.Register(&dto.RegisterRequest{
		Name:     "Jamie",
		Username: "jamie",
		Email:    "jamie@example.com",
		Password: "secret-password",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeEmailOrUsernameTaken, appErr.Code)
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, &fakeTokenRepo{})
	_, err := svc.Register(&dto.RegisterRequest{
		Name:     "Jamie",
		Username: "jamie",
		Email:    "jamie@example.com",
		Password: "short",
	})

	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, 422, appErr.HTTPCode)
}

func TestAuthService_Login(t *testing.T) {
	user := storedUser(t)

	var storedToken *models.AuthToken
	usersRepo := &fakeUserRepo{
		FindByEmailOrUsernameFn: func(identifier string) (*models.User, error) { return user, nil },
		UpdateLastLoginFn:       func(userID string, at time.Time) error { return nil },
	}

	tokens := &fakeTokenRepo{
		CreateFn: func(token *models.AuthToken) error {
			storedToken = token
			return nil
		},
	}

	svc := NewAuthService(usersRepo, tokens)
	result, err := svc.Login("jamie@example.com", "correct-horse1")

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.NotNil(t, result.User.LastLoginAt)

	require.NotNil(t, storedToken)
	assert.Equal(t, "user-1", storedToken.UserID)
	assert.Equal(t, result.RefreshToken, storedToken.Token)
	assert.False(t, storedToken.IsRevoked)

	claims, err := auth.ParseAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, []string{models.RoleUser}, claims.Roles)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	user := storedUser(t)
	users := &fakeUserRepo{
		FindByEmailOrUsernameFn: func(identifier string) (*models.User, error) { return user, nil },
	}

	svc := NewAuthService(users, &fakeTokenRepo{})
	_, err := svc.Login("jamie@example.com", "wrong-password")

	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, 401, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	users := &fakeUserRepo{
		FindByEmailOrUsernameFn: func(identifier string) (*models.User, error) {
			return nil, repositories.ErrUserNotFound
		},
	}

	svc := NewAuthService(users, &fakeTokenRepo{})
	_, err := svc.Login("nobody@example.com", "whatever1")

	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
}

func TestAuthService_Login_Inactive(t *testing.T) {
	user := storedUser(t)
	user.IsActive = false
	users := &fakeUserRepo{
		FindByEmailOrUsernameFn: func(identifier string) (*models.User, error) { return user, nil },
	}

	svc := NewAuthService(users, &fakeTokenRepo{})
	_, err := svc.Login("jamie@example.com", "correct-horse1")

	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestAuthService_Refresh(t *testing.T) {
	user := storedUser(t)
	refreshToken, _, err := auth.GenerateRefreshToken(user.ID)
	require.NoError(t, err)

	tokens := &fakeTokenRepo{
		FindActiveByTokenFn: func(token string) (*models.AuthToken, error) {
			return &models.AuthToken{UserID: user.ID, Token: token}, nil
		},
	}
	users := &fakeUserRepo{
		FindByIDFn: func(id string) (*models.User, error) { return user, nil },
	}

	svc := NewAuthService(users, tokens)
	accessToken, err := svc.Refresh(refreshToken)

	require.NoError(t, err)
	claims, err := auth.ParseAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestAuthService_Refresh_RevokedToken(t *testing.T) {
	refreshToken, _, err := auth.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	tokens := &fakeTokenRepo{
		FindActiveByTokenFn: func(token string) (*models.AuthToken, error) {
			return nil, repositories.ErrRefreshTokenNotFound
		},
	}

	svc := NewAuthService(&fakeUserRepo{}, tokens)
	_, err = svc.Refresh(refreshToken)

	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, 401, appErr.HTTPCode)
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	tokens := &fakeTokenRepo{
		RevokeFn: func(token string) error { return repositories.ErrRefreshTokenNotFound },
	}

	svc := NewAuthService(&fakeUserRepo{}, tokens)
	assert.NoError(t, svc.Logout("already-revoked"))
}
