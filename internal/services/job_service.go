package services

import (
	"errors"
	"time"

	"workhub_backend/internal/logger"
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"
)

type JobService interface {
	Create(ownerID string, req *dto.CreateJobRequest) (*models.JobPost, error)
	GetByIDOrSlug(idOrSlug string) (*models.JobPost, error)
	ListPublic(query *dto.JobListQuery) ([]models.JobPost, repositories.PageMeta, error)
	ListMine(ownerID string, query *dto.JobListQuery) ([]models.JobPost, repositories.PageMeta, error)
	Update(id, ownerID string, req *dto.UpdateJobRequest) (*models.JobPost, error)
	ChangeStatus(id, ownerID, statusCode string) (*models.JobPost, error)
}

type JobServiceImpl struct {
	jobs       repositories.JobRepository
	businesses repositories.BusinessRepository
}

func NewJobService(jobs repositories.JobRepository, businesses repositories.BusinessRepository) JobService {
	return &JobServiceImpl{jobs: jobs, businesses: businesses}
}

// Create publishes a job post under one of the caller's businesses. Only
// APPROVED businesses may post.
func (s *JobServiceImpl) Create(ownerID string, req *dto.CreateJobRequest) (*models.JobPost, error) {
	business, err := s.businesses.FindByIDForOwner(req.BusinessID, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrBusinessNotFound) {
			return nil, apperrors.ErrBusinessNotFound()
		}
		return nil, apperrors.InternalError(err)
	}
	if business.Status != models.BusinessStatusApproved {
		return nil, apperrors.ErrBusinessNotApproved()
	}

	if !req.ApplicationOptionPlatform && !req.ApplicationOptionExternal {
		return nil, apperrors.FieldError("applicationOptionPlatform",
			"At least one application option must be enabled")
	}
	if req.ApplicationOptionExternal && req.ExternalApplyURL == nil && req.ExternalApplyEmail == nil {
		return nil, apperrors.FieldError("externalApplyUrl",
			"External applications require an external URL or email")
	}

	status, err := s.jobs.FindStatusByCode(models.JobStatusActive)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	job := &models.JobPost{
		BusinessID:     business.ID,
		JobStatusID:    status.ID,
		Title:          req.Title,
		Slug:           MakeSlug(req.Title),
		LocationType:   req.LocationType,
		LocationText:   req.LocationText,
		EmploymentType: req.EmploymentType,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Currency:       req.Currency,
		Description:    req.Description,
		Requirements:   req.Requirements,

		ApplicationOptionPlatform: req.ApplicationOptionPlatform,
		ApplicationOptionExternal: req.ApplicationOptionExternal,
		ExternalApplyURL:          req.ExternalApplyURL,
		ExternalApplyEmail:        req.ExternalApplyEmail,

		PublishedAt: &now,
		ExpiresAt:   req.ExpiresAt,
	}

	if err := s.jobs.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	job.Business = business
	job.JobStatus = status

	logger.Info("job post created", "job_id", job.ID, "business_id", business.ID)
	return job, nil
}

func (s *JobServiceImpl) GetByIDOrSlug(idOrSlug string) (*models.JobPost, error) {
	var job *models.JobPost
	var err error
	if isUUID(idOrSlug) {
		job, err = s.jobs.FindByID(idOrSlug)
	} else {
		job, err = s.jobs.FindBySlug(idOrSlug)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound()
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// ListPublic shows only ACTIVE posts unless a status filter is given.
func (s *JobServiceImpl) ListPublic(query *dto.JobListQuery) ([]models.JobPost, repositories.PageMeta, error) {
	statusCode := query.Status
	if statusCode == "" {
		statusCode = models.JobStatusActive
	}
	return s.list(repositories.JobFilter{
		StatusCode:     statusCode,
		BusinessID:     query.BusinessID,
		Query:          query.Query,
		LocationType:   query.LocationType,
		EmploymentType: query.EmploymentType,
		Page:           repositories.PageQuery{Page: query.Page, Limit: query.Limit},
	})
}

func (s *JobServiceImpl) ListMine(ownerID string, query *dto.JobListQuery) ([]models.JobPost, repositories.PageMeta, error) {
	return s.list(repositories.JobFilter{
		StatusCode:     query.Status,
		OwnerID:        ownerID,
		Query:          query.Query,
		LocationType:   query.LocationType,
		EmploymentType: query.EmploymentType,
		Page:           repositories.PageQuery{Page: query.Page, Limit: query.Limit},
	})
}

func (s *JobServiceImpl) list(filter repositories.JobFilter) ([]models.JobPost, repositories.PageMeta, error) {
	filter.Page.Normalize()
	jobs, total, err := s.jobs.FindWithFilter(filter)
	if err != nil {
		return nil, repositories.PageMeta{}, apperrors.InternalError(err)
	}
	return jobs, repositories.NewPageMeta(filter.Page, total), nil
}

func (s *JobServiceImpl) Update(id, ownerID string, req *dto.UpdateJobRequest) (*models.JobPost, error) {
	job, err := s.jobs.FindByIDForOwner(id, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.LocationType != nil {
		job.LocationType = *req.LocationType
	}
	if req.LocationText != nil {
		job.LocationText = *req.LocationText
	}
	if req.EmploymentType != nil {
		job.EmploymentType = *req.EmploymentType
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.Currency != nil {
		job.Currency = *req.Currency
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.ApplicationOptionPlatform != nil {
		job.ApplicationOptionPlatform = *req.ApplicationOptionPlatform
	}
	if req.ApplicationOptionExternal != nil {
		job.ApplicationOptionExternal = *req.ApplicationOptionExternal
	}
	if req.ExternalApplyURL != nil {
		job.ExternalApplyURL = req.ExternalApplyURL
	}
	if req.ExternalApplyEmail != nil {
		job.ExternalApplyEmail = req.ExternalApplyEmail
	}
	if req.ExpiresAt != nil {
		job.ExpiresAt = req.ExpiresAt
	}

	if err := s.jobs.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// ChangeStatus switches the post to any seeded status code. The first
// move to ACTIVE stamps publishedAt; later moves never reset it.
func (s *JobServiceImpl) ChangeStatus(id, ownerID, statusCode string) (*models.JobPost, error) {
	if appErr := ValidateStatus(KindJob, statusCode); appErr != nil {
		return nil, appErr
	}

	job, err := s.jobs.FindByIDForOwner(id, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	status, err := s.jobs.FindStatusByCode(statusCode)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if job.JobStatusID == status.ID {
		return job, nil
	}

	job.JobStatusID = status.ID
	job.JobStatus = status
	if statusCode == models.JobStatusActive && job.PublishedAt == nil {
		now := time.Now()
		job.PublishedAt = &now
	}

	if err := s.jobs.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("job status changed", "job_id", id, "status", statusCode)
	return job, nil
}
