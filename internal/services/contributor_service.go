package services

import (
	"encoding/json"
	"errors"

	"workhub_backend/internal/logger"
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"
)

type ContributorService interface {
	Apply(userID string, req *dto.ApplyContributorRequest) (*models.ContributorProfile, error)
	GetMine(userID string) (*models.ContributorProfile, error)
	RequireActive(userID string) (*models.ContributorProfile, error)
	ChangeStatus(userID string, status models.ContributorStatus) (*models.ContributorProfile, error)
}

type ContributorServiceImpl struct {
	contributors repositories.ContributorRepository
}

func NewContributorService(contributors repositories.ContributorRepository) ContributorService {
	return &ContributorServiceImpl{contributors: contributors}
}

// Apply creates the caller's contributor profile, active immediately.
// A user gets at most one profile.
func (s *ContributorServiceImpl) Apply(userID string, req *dto.ApplyContributorRequest) (*models.ContributorProfile, error) {
	profile := &models.ContributorProfile{
		UserID: userID,
		Bio:    req.Bio,
		Status: models.ContributorStatusActive,
	}

	if len(req.SocialLinks) > 0 {
		raw, err := json.Marshal(req.SocialLinks)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile.SocialLinks = raw
	}

	if err := s.contributors.Create(profile); err != nil {
		if errors.Is(err, repositories.ErrContributorAlreadyExists) {
			return nil, apperrors.NewConflictError("Contributor profile already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("contributor profile created", "user_id", userID)
	return profile, nil
}

func (s *ContributorServiceImpl) GetMine(userID string) (*models.ContributorProfile, error) {
	profile, err := s.contributors.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrContributorNotFound) {
			return nil, apperrors.ErrContributorProfileNotFound()
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// RequireActive resolves the profile and rejects suspended contributors.
// Article writes go through this gate.
func (s *ContributorServiceImpl) RequireActive(userID string) (*models.ContributorProfile, error) {
	profile, err := s.GetMine(userID)
	if err != nil {
		return nil, err
	}
	if profile.Status != models.ContributorStatusActive {
		return nil, apperrors.ErrContributorNotActive()
	}
	return profile, nil
}

func (s *ContributorServiceImpl) ChangeStatus(userID string, status models.ContributorStatus) (*models.ContributorProfile, error) {
	profile, err := s.GetMine(userID)
	if err != nil {
		return nil, err
	}
	if profile.Status == status {
		return profile, nil
	}

	if err := s.contributors.UpdateStatus(userID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	profile.Status = status
	return profile, nil
}
