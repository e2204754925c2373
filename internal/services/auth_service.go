package services

import (
	"errors"
	"time"

	"workhub_backend/internal/auth"
	"workhub_backend/internal/logger"
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(identifier, password string) (*AuthResult, error)
	Refresh(refreshToken string) (string, error)
	Logout(refreshToken string) error
}

// AuthResult is what a successful login yields.
type AuthResult struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
}

type AuthServiceImpl struct {
	users  repositories.UserRepository
	tokens repositories.RefreshTokenRepository
}

func NewAuthService(users repositories.UserRepository, tokens repositories.RefreshTokenRepository) AuthService {
	return &AuthServiceImpl{users: users, tokens: tokens}
}

func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*models.User, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.FieldError("password", err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		IsActive:     true,
	}

	var roles []models.Role
	if role, err := s.users.FindRoleByName(models.RoleUser); err == nil {
		roles = append(roles, *role)
	}

	if err := s.users.Create(user, roles); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailOrUsernameTaken()
		}
		return nil, apperrors.InternalError(err)
	}

	user.Roles = roles
	logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (s *AuthServiceImpl) Login(identifier, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmailOrUsername(identifier)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials()
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials()
	}
	if !user.IsActive {
		return nil, apperrors.NewForbiddenError("Account is deactivated")
	}

	accessToken, err := auth.GenerateAccessToken(user.ID, user.Email, user.RoleNames())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, expiresAt, err := auth.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stored := &models.AuthToken{
		UserID:    user.ID,
		Token:     refreshToken,
		TokenType: "REFRESH",
		ExpiresAt: expiresAt,
	}
	if err := s.tokens.Create(stored); err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(user.ID, now); err != nil {
		// Non-fatal: the login still succeeded.
		logger.Warn("failed to update last login", "user_id", user.ID, "error", err.Error())
	}
	user.LastLoginAt = &now

	return &AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a stored, unrevoked refresh token for a new access
// token. Roles are re-read so revoked grants drop out immediately.
func (s *AuthServiceImpl) Refresh(refreshToken string) (string, error) {
	if _, err := s.tokens.FindActiveByToken(refreshToken); err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return "", apperrors.NewUnauthorizedError("Invalid or expired refresh token")
		}
		return "", apperrors.InternalError(err)
	}

	claims, err := auth.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", apperrors.NewUnauthorizedError("Invalid or expired refresh token")
	}

	user, err := s.users.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.NewUnauthorizedError("Invalid or expired refresh token")
		}
		return "", apperrors.InternalError(err)
	}
	if !user.IsActive {
		return "", apperrors.NewForbiddenError("Account is deactivated")
	}

	accessToken, err := auth.GenerateAccessToken(user.ID, user.Email, user.RoleNames())
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return accessToken, nil
}

func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if err := s.tokens.Revoke(refreshToken); err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			// Already revoked or never issued; logout is idempotent.
			return nil
		}
		return apperrors.InternalError(err)
	}
	return nil
}
