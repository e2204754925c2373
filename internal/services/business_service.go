package services

import (
	"errors"

	"workhub_backend/internal/logger"
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"
)

type BusinessService interface {
	Create(ownerID string, req *dto.CreateBusinessRequest) (*models.Business, error)
	GetByID(id string) (*models.Business, error)
	ListMine(ownerID string, page repositories.PageQuery) ([]models.Business, repositories.PageMeta, error)
	Update(id, ownerID string, req *dto.UpdateBusinessRequest) (*models.Business, error)
	List(query *dto.BusinessListQuery) ([]models.Business, repositories.PageMeta, error)
	ChangeStatus(id, status string) (*models.Business, error)
}

type BusinessServiceImpl struct {
	businesses repositories.BusinessRepository
}

func NewBusinessService(businesses repositories.BusinessRepository) BusinessService {
	return &BusinessServiceImpl{businesses: businesses}
}

// Create registers a new business in PENDING status. Approval is an
// admin decision.
func (s *BusinessServiceImpl) Create(ownerID string, req *dto.CreateBusinessRequest) (*models.Business, error) {
	business := &models.Business{
		OwnerID:     ownerID,
		Name:        req.Name,
		LogoURL:     req.LogoURL,
		WebsiteURL:  req.WebsiteURL,
		Description: req.Description,
		Status:      models.BusinessStatusPending,
	}

	if err := s.businesses.Create(business); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("business created", "business_id", business.ID, "owner_id", ownerID)
	return business, nil
}

func (s *BusinessServiceImpl) GetByID(id string) (*models.Business, error) {
	business, err := s.businesses.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrBusinessNotFound) {
			return nil, apperrors.ErrBusinessNotFound()
		}
		return nil, apperrors.InternalError(err)
	}
	return business, nil
}

func (s *BusinessServiceImpl) ListMine(ownerID string, page repositories.PageQuery) ([]models.Business, repositories.PageMeta, error) {
	page.Normalize()
	businesses, total, err := s.businesses.ListByOwner(ownerID, page)
	if err != nil {
		return nil, repositories.PageMeta{}, apperrors.InternalError(err)
	}
	return businesses, repositories.NewPageMeta(page, total), nil
}

func (s *BusinessServiceImpl) Update(id, ownerID string, req *dto.UpdateBusinessRequest) (*models.Business, error) {
	business, err := s.businesses.FindByIDForOwner(id, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrBusinessNotFound) {
			return nil, apperrors.ErrBusinessNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.LogoURL != nil {
		business.LogoURL = req.LogoURL
	}
	if req.WebsiteURL != nil {
		business.WebsiteURL = req.WebsiteURL
	}
	if req.Description != nil {
		business.Description = req.Description
	}

	if err := s.businesses.Update(business); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return business, nil
}

func (s *BusinessServiceImpl) List(query *dto.BusinessListQuery) ([]models.Business, repositories.PageMeta, error) {
	page := repositories.PageQuery{Page: query.Page, Limit: query.Limit}
	page.Normalize()

	filter := repositories.BusinessFilter{
		Status: models.BusinessStatus(query.Status),
		Query:  query.Query,
		Page:   page,
	}

	businesses, total, err := s.businesses.FindWithFilter(filter)
	if err != nil {
		return nil, repositories.PageMeta{}, apperrors.InternalError(err)
	}
	return businesses, repositories.NewPageMeta(page, total), nil
}

// ChangeStatus moves a business to any allowed status. Setting the same
// status again is a no-op, not an error.
func (s *BusinessServiceImpl) ChangeStatus(id, status string) (*models.Business, error) {
	if appErr := ValidateStatus(KindBusiness, status); appErr != nil {
		return nil, appErr
	}

	business, err := s.businesses.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrBusinessNotFound) {
			return nil, apperrors.ErrBusinessNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	if business.Status == models.BusinessStatus(status) {
		return business, nil
	}

	if err := s.businesses.UpdateStatus(id, models.BusinessStatus(status)); err != nil {
		return nil, apperrors.InternalError(err)
	}
	business.Status = models.BusinessStatus(status)

	logger.Info("business status changed", "business_id", id, "status", status)
	return business, nil
}
