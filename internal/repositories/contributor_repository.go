package repositories

import (
	"errors"

	"gorm.io/gorm"

	"workhub_backend/internal/models"
)

var (
	ErrContributorNotFound      = errors.New("contributor profile not found")
	ErrContributorAlreadyExists = errors.New("contributor profile already exists")
)

type ContributorRepository interface {
	Create(profile *models.ContributorProfile) error
	FindByUserID(userID string) (*models.ContributorProfile, error)
	UpdateStatus(userID string, status models.ContributorStatus) error
}

type ContributorRepositoryImpl struct {
	db *gorm.DB
}

func NewContributorRepository(db *gorm.DB) ContributorRepository {
	return &ContributorRepositoryImpl{db: db}
}

func (r *ContributorRepositoryImpl) Create(profile *models.ContributorProfile) error {
	var existing models.ContributorProfile
	err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if err == nil {
		return ErrContributorAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(profile).Error
}

func (r *ContributorRepositoryImpl) FindByUserID(userID string) (*models.ContributorProfile, error) {
	var profile models.ContributorProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContributorNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ContributorRepositoryImpl) UpdateStatus(userID string, status models.ContributorStatus) error {
	result := r.db.Model(&models.ContributorProfile{}).
		Where("user_id = ?", userID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContributorNotFound
	}
	return nil
}
