package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workhub_backend/internal/models"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"
)

func activeJob(platform, external bool) *models.JobPost {
	url := "https://jobs.example.com/apply"
	job := &models.JobPost{
		BaseModel:                 models.BaseModel{ID: "job-1"},
		BusinessID:                "biz-1",
		Title:                     "Backend Engineer",
		ApplicationOptionPlatform: platform,
		ApplicationOptionExternal: external,
		JobStatus: &models.JobStatus{
			BaseModel: models.BaseModel{ID: "status-active"},
			Code:      models.JobStatusActive,
		},
	}
	if external {
		job.ExternalApplyURL = &url
	}
	return job
}

func TestJobApplicationService_Apply_PlatformRequiresCVAndPortfolio(t *testing.T) {
	jobs := &fakeJobRepo{
		FindByIDFn: func(id string) (*models.JobPost, error) { return activeJob(true, false), nil },
	}

	svc := NewJobApplicationService(&fakeApplicationRepo{}, jobs)
	_, err := svc.Apply("job-1", "user-1", &dto.CreateJobApplicationRequest{
		ApplicationMethod: "PLATFORM",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.HTTPCode)

	details := appErr.Details.([]apperrors.FieldDetail)
	require.Len(t, details, 2)
	assert.Equal(t, "cvUrl", details[0].Field)
	assert.Equal(t, "CV URL is required", details[0].Message)
	assert.Equal(t, "portfolioUrl", details[1].Field)
}

func TestJobApplicationService_Apply_PlatformMissingCVOnly(t *testing.T) {
	jobs := &fakeJobRepo{
		FindByIDFn: func(id string) (*models.JobPost, error) { return activeJob(true, false), nil },
	}

	portfolio := "https://portfolio.example.com"
	svc := NewJobApplicationService(&fakeApplicationRepo{}, jobs)
	_, err := svc.Apply("job-1", "user-1", &dto.CreateJobApplicationRequest{
		ApplicationMethod: "PLATFORM",
		PortfolioURL:      &portfolio,
	})

	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	details := appErr.Details.([]apperrors.FieldDetail)
	require.Len(t, details, 1)
	assert.Equal(t, "cvUrl", details[0].Field)
}

func TestJobApplicationService_Apply_Platform(t *testing.T) {
	jobs := &fakeJobRepo{
		FindByIDFn: func(id string) (*models.JobPost, error) { return activeJob(true, false), nil },
	}
	applications := &fakeApplicationRepo{
		CreateFn: func(application *models.JobApplication) error { return nil },
	}

	cv := "https://cv.example.com/jamie.pdf"
	portfolio := "https://portfolio.example.com"
	svc := NewJobApplicationService(applications, jobs)
	application, err := svc.Apply("job-1", "user-1", &dto.CreateJobApplicationRequest{
		ApplicationMethod: "PLATFORM",
		CVUrl:             &cv,
		PortfolioURL:      &portfolio,
	})

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusSubmitted, application.Status)
	require.NotNil(t, application.UserID)
	assert.Equal(t, "user-1", *application.UserID)
	assert.Nil(t, application.ExternalClickedAt)
}

func TestJobApplicationService_Apply_GuestExternal(t *testing.T) {
	jobs := &fakeJobRepo{
		FindByIDFn: func(id string) (*models.JobPost, error) { return activeJob(false, true), nil },
	}
	applications := &fakeApplicationRepo{
		CreateFn: func(application *models.JobApplication) error { return nil },
	}

	name := "Jamie Doe"
	mail := "jamie@example.com"
	target := "URL"
	destination := "https://jobs.example.com/apply"
	svc := NewJobApplicationService(applications, jobs)
	application, err := svc.Apply("job-1", "", &dto.CreateJobApplicationRequest{
		ApplicationMethod:   "EXTERNAL",
		ApplicantName:       &name,
		ApplicantEmail:      &mail,
		ExternalTarget:      &target,
		ExternalDestination: &destination,
	})

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusClicked, application.Status)
	assert.NotNil(t, application.ExternalClickedAt)
	assert.Nil(t, application.UserID)
	require.NotNil(t, application.ExternalTarget)
	assert.Equal(t, "URL", *application.ExternalTarget)
	require.NotNil(t, application.ExternalDestination)
	assert.Equal(t, "https://jobs.example.com/apply", *application.ExternalDestination)
}

func TestJobApplicationService_Apply_ExternalRequiresTargetAndDestination(t *testing.T) {
	jobs := &fakeJobRepo{
		FindByIDFn: func(id string) (*models.JobPost, error) { return activeJob(false, true), nil },
	}

	name := "Jamie Doe"
	mail := "jamie@example.com"
	svc := NewJobApplicationService(&fakeApplicationRepo{}, jobs)
	_, err := svc.Apply("job-1", "", &dto.CreateJobApplicationRequest{
		ApplicationMethod: "EXTERNAL",
		ApplicantName:     &name,
		ApplicantEmail:    &mail,
	})

	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, 422, appErr.HTTPCode)

	details := appErr.Details.([]apperrors.FieldDetail)
	require.Len(t, details, 2)
	assert.Equal(t, "externalTarget", details[0].Field)
	assert.Equal(t, "External target is required", details[0].Message)
	assert.Equal(t, "externalDestination", details[1].Field)
}

func TestJobApplicationService_Apply_GuestMissingIdentity(t *testing.T) {
	jobs := &fakeJobRepo{
		FindByIDFn: func(id string) (*models.JobPost, error) { return activeJob(false, true), nil },
	}

	svc := NewJobApplicationService(&fakeApplicationRepo{}, jobs)
	_, err := svc.Apply("job-1", "", &dto.CreateJobApplicationRequest{
		ApplicationMethod: "EXTERNAL",
	})

	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, 422, appErr.HTTPCode)

	details := appErr.Details.([]apperrors.FieldDetail)
	require.Len(t, details, 2)
	assert.Equal(t, "applicantName", details[0].Field)
	assert.Equal(t, "applicantEmail", details[1].Field)
}

func TestJobApplicationService_Apply_MethodNotOffered(t *testing.T) {
	jobs := &fakeJobRepo{
		FindByIDFn: func(id string) (*models.JobPost, error) { return activeJob(true, false), nil },
	}

	name := "Jamie Doe"
	mail := "jamie@example.com"
	svc := NewJobApplicationService(&fakeApplicationRepo{}, jobs)
	_, err := svc.Apply("job-1", "", &dto.CreateJobApplicationRequest{
		ApplicationMethod: "EXTERNAL",
		ApplicantName:     &name,
		ApplicantEmail:    &mail,
	})

	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestJobApplicationService_Apply_InactiveJobLooksMissing(t *testing.T) {
	job := activeJob(true, false)
	job.JobStatus.Code = models.JobStatusArchived

	jobs := &fakeJobRepo{
		FindByIDFn: func(id string) (*models.JobPost, error) { return job, nil },
	}

	cv := "https://cv.example.com/jamie.pdf"
	portfolio := "https://portfolio.example.com"
	svc := NewJobApplicationService(&fakeApplicationRepo{}, jobs)
	_, err := svc.Apply("job-1", "user-1", &dto.CreateJobApplicationRequest{
		ApplicationMethod: "PLATFORM",
		CVUrl:             &cv,
		PortfolioURL:      &portfolio,
	})

	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, 404, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeJobNotFound, appErr.Code)
}
