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

type JobApplicationService interface {
	Apply(jobID, userID string, req *dto.CreateJobApplicationRequest) (*models.JobApplication, error)
	GetByID(id, requesterID string, isAdmin bool) (*models.JobApplication, error)
	ListByJob(jobID, ownerID string, page repositories.PageQuery) ([]models.JobApplication, repositories.PageMeta, error)
}

type JobApplicationServiceImpl struct {
	applications repositories.JobApplicationRepository
	jobs         repositories.JobRepository
}

func NewJobApplicationService(applications repositories.JobApplicationRepository, jobs repositories.JobRepository) JobApplicationService {
	return &JobApplicationServiceImpl{applications: applications, jobs: jobs}
}

// Apply records an application against an active job post. userID is
// empty for guests, who must identify themselves in the request.
func (s *JobApplicationServiceImpl) Apply(jobID, userID string, req *dto.CreateJobApplicationRequest) (*models.JobApplication, error) {
	job, err := s.jobs.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	// Inactive posts look exactly like missing ones to applicants.
	if job.JobStatus == nil || job.JobStatus.Code != models.JobStatusActive {
		return nil, apperrors.ErrJobNotFound()
	}
	if job.ExpiresAt != nil && job.ExpiresAt.Before(time.Now()) {
		return nil, apperrors.ErrJobNotFound()
	}

	if userID == "" {
		var details []apperrors.FieldDetail
		if req.ApplicantName == nil || *req.ApplicantName == "" {
			details = append(details, apperrors.FieldDetail{
				Field: "applicantName", Message: "This field is required for guest applications",
			})
		}
		if req.ApplicantEmail == nil || *req.ApplicantEmail == "" {
			details = append(details, apperrors.FieldDetail{
				Field: "applicantEmail", Message: "This field is required for guest applications",
			})
		}
		if len(details) > 0 {
			return nil, apperrors.ValidationError(details...)
		}
	}

	application := &models.JobApplication{
		JobPostID:         job.ID,
		ApplicationMethod: models.ApplicationMethod(req.ApplicationMethod),
		ApplicantName:     req.ApplicantName,
		ApplicantEmail:    req.ApplicantEmail,
		CVUrl:             req.CVUrl,
		ResumeURL:         req.ResumeURL,
		PortfolioURL:      req.PortfolioURL,
		CoverLetter:       req.CoverLetter,
	}
	if userID != "" {
		application.UserID = &userID
	}

	switch models.ApplicationMethod(req.ApplicationMethod) {
	case models.ApplicationMethodPlatform:
		if !job.ApplicationOptionPlatform {
			return nil, apperrors.NewForbiddenError("This job does not accept platform applications")
		}
		var details []apperrors.FieldDetail
		if req.CVUrl == nil || *req.CVUrl == "" {
			details = append(details, apperrors.FieldDetail{
				Field: "cvUrl", Message: "CV URL is required",
			})
		}
		if req.PortfolioURL == nil || *req.PortfolioURL == "" {
			details = append(details, apperrors.FieldDetail{
				Field: "portfolioUrl", Message: "Portfolio URL is required",
			})
		}
		if len(details) > 0 {
			return nil, apperrors.ValidationError(details...)
		}
		application.Status = models.ApplicationStatusSubmitted

	case models.ApplicationMethodExternal:
		if !job.ApplicationOptionExternal {
			return nil, apperrors.NewForbiddenError("This job does not accept external applications")
		}
		var details []apperrors.FieldDetail
		if req.ExternalTarget == nil || *req.ExternalTarget == "" {
			details = append(details, apperrors.FieldDetail{
				Field: "externalTarget", Message: "External target is required",
			})
		}
		if req.ExternalDestination == nil || *req.ExternalDestination == "" {
			details = append(details, apperrors.FieldDetail{
				Field: "externalDestination", Message: "External destination is required",
			})
		}
		if len(details) > 0 {
			return nil, apperrors.ValidationError(details...)
		}
		now := time.Now()
		application.Status = models.ApplicationStatusClicked
		application.ExternalClickedAt = &now
		application.ExternalTarget = req.ExternalTarget
		application.ExternalDestination = req.ExternalDestination

	default:
		return nil, apperrors.FieldError("applicationMethod",
			"Must be one of: PLATFORM, EXTERNAL")
	}

	if err := s.applications.Create(application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("job application created",
		"application_id", application.ID,
		"job_id", job.ID,
		"method", req.ApplicationMethod,
		"guest", userID == "")
	return application, nil
}

// GetByID is visible to the applicant, the job's business owner, and
// admins. Guests cannot retrieve applications afterwards.
func (s *JobApplicationServiceImpl) GetByID(id, requesterID string, isAdmin bool) (*models.JobApplication, error) {
	application, err := s.applications.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobApplicationNotFound) {
			return nil, apperrors.ErrJobApplicationNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	if isAdmin {
		return application, nil
	}
	if application.UserID != nil && *application.UserID == requesterID {
		return application, nil
	}
	if application.JobPost != nil && application.JobPost.Business != nil &&
		application.JobPost.Business.OwnerID == requesterID {
		return application, nil
	}
	return nil, apperrors.NewForbiddenError("Not allowed to view this application")
}

func (s *JobApplicationServiceImpl) ListByJob(jobID, ownerID string, page repositories.PageQuery) ([]models.JobApplication, repositories.PageMeta, error) {
	if _, err := s.jobs.FindByIDForOwner(jobID, ownerID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, repositories.PageMeta{}, apperrors.ErrJobNotFound()
		}
		return nil, repositories.PageMeta{}, apperrors.InternalError(err)
	}

	page.Normalize()
	applications, total, err := s.applications.ListByJob(jobID, page)
	if err != nil {
		return nil, repositories.PageMeta{}, apperrors.InternalError(err)
	}
	return applications, repositories.NewPageMeta(page, total), nil
}
