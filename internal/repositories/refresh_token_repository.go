package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"workhub_backend/internal/models"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

type RefreshTokenRepository interface {
	Create(token *models.AuthToken) error
	FindActiveByToken(token string) (*models.AuthToken, error)
	Revoke(token string) error
	RevokeAllForUser(userID string) error
	DeleteExpired() error
}

type RefreshTokenRepositoryImpl struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &RefreshTokenRepositoryImpl{db: db}
}

func (r *RefreshTokenRepositoryImpl) Create(token *models.AuthToken) error {
	return r.db.Create(token).Error
}

// FindActiveByToken returns the stored token only when it is a refresh
// token, not revoked, and not yet expired.
func (r *RefreshTokenRepositoryImpl) FindActiveByToken(token string) (*models.AuthToken, error) {
	var stored models.AuthToken
	err := r.db.
		Where("token = ? AND token_type = ? AND is_revoked = ? AND expires_at > ?",
			token, "REFRESH", false, time.Now()).
		First(&stored).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return &stored, nil
}

func (r *RefreshTokenRepositoryImpl) Revoke(token string) error {
	result := r.db.Model(&models.AuthToken{}).
		Where("token = ? AND is_revoked = ?", token, false).
		Update("is_revoked", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRefreshTokenNotFound
	}
	return nil
}

func (r *RefreshTokenRepositoryImpl) RevokeAllForUser(userID string) error {
	return r.db.Model(&models.AuthToken{}).
		Where("user_id = ? AND is_revoked = ?", userID, false).
		Update("is_revoked", true).Error
}

func (r *RefreshTokenRepositoryImpl) DeleteExpired() error {
	return r.db.Where("expires_at < ?", time.Now()).
		Delete(&models.AuthToken{}).Error
}
