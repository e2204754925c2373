package services

import (
	"errors"
	"time"

	"workhub_backend/internal/email"
	"workhub_backend/internal/logger"
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"
)

// AdminService groups the moderation operations behind the ADMIN role.
// Status changes here resolve entities by id alone, so admins moderate
// content they do not own.
type AdminService interface {
	ListUsers(query *dto.UserListQuery) ([]models.User, repositories.PageMeta, error)
	GetUser(id string) (*models.User, error)
	SetUserActive(userID string, isActive bool) (*models.User, error)
	ReviewBusiness(businessID, status string) (*models.Business, error)
	SetContributorStatus(userID, status string) (*models.ContributorProfile, error)
	ListJobs(query *dto.JobListQuery) ([]models.JobPost, repositories.PageMeta, error)
	ChangeJobStatus(jobID, statusCode string) (*models.JobPost, error)
	ListArticles(query *dto.ArticleListQuery) ([]models.Article, repositories.PageMeta, error)
	ChangeArticleStatus(articleID, status string) (*models.Article, error)
	ListEvents(query *dto.EventListQuery) ([]models.Event, repositories.PageMeta, error)
	ChangeEventStatus(eventID, status string) (*models.Event, error)
	ListPayments(query *dto.PaymentListQuery) ([]models.Payment, repositories.PageMeta, error)
	GetPayment(id string) (*models.Payment, error)
}

type AdminServiceImpl struct {
	users        repositories.UserRepository
	businesses   BusinessService
	contributors ContributorService
	jobs         repositories.JobRepository
	articles     repositories.ArticleRepository
	events       repositories.EventRepository
	payments     repositories.PaymentRepository
	mailer       *email.Mailer
}

func NewAdminService(
	users repositories.UserRepository,
	businesses BusinessService,
	contributors ContributorService,
	jobs repositories.JobRepository,
	articles repositories.ArticleRepository,
	events repositories.EventRepository,
	payments repositories.PaymentRepository,
	mailer *email.Mailer,
) AdminService {
	return &AdminServiceImpl{
		users:        users,
		businesses:   businesses,
		contributors: contributors,
		jobs:         jobs,
		articles:     articles,
		events:       events,
		payments:     payments,
		mailer:       mailer,
	}
}

func (s *AdminServiceImpl) ListUsers(query *dto.UserListQuery) ([]models.User, repositories.PageMeta, error) {
	page := repositories.PageQuery{Page: query.Page, Limit: query.Limit}
	page.Normalize()

	users, total, err := s.users.FindWithFilter(repositories.UserFilter{
		Query:    query.Query,
		IsActive: query.IsActive,
		Role:     query.Role,
		Page:     page,
	})
	if err != nil {
		return nil, repositories.PageMeta{}, apperrors.InternalError(err)
	}
	return users, repositories.NewPageMeta(page, total), nil
}

func (s *AdminServiceImpl) GetUser(id string) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound()
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *AdminServiceImpl) SetUserActive(userID string, isActive bool) (*models.User, error) {
	if err := s.users.UpdateActive(userID, isActive); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user active flag changed", "user_id", userID, "is_active", isActive)
	return user, nil
}

// ReviewBusiness settles the business moderation queue and notifies the
// owner by mail when enabled.
func (s *AdminServiceImpl) ReviewBusiness(businessID, status string) (*models.Business, error) {
	business, err := s.businesses.ChangeStatus(businessID, status)
	if err != nil {
		return nil, err
	}

	if s.mailer != nil && business.Owner != nil {
		owner := business.Owner
		go func() {
			if err := s.mailer.SendBusinessReviewed(owner.Email, owner.Name, business.Name, status); err != nil {
				logger.Warn("business review notification failed",
					"business_id", business.ID, "error", err.Error())
			}
		}()
	}
	return business, nil
}

func (s *AdminServiceImpl) SetContributorStatus(userID, status string) (*models.ContributorProfile, error) {
	if status != string(models.ContributorStatusActive) && status != string(models.ContributorStatusSuspended) {
		return nil, apperrors.FieldError("status", "Status must be one of ACTIVE, SUSPENDED")
	}
	return s.contributors.ChangeStatus(userID, models.ContributorStatus(status))
}

func (s *AdminServiceImpl) ListJobs(query *dto.JobListQuery) ([]models.JobPost, repositories.PageMeta, error) {
	page := repositories.PageQuery{Page: query.Page, Limit: query.Limit}
	page.Normalize()

	jobs, total, err := s.jobs.FindWithFilter(repositories.JobFilter{
		StatusCode:     query.Status,
		BusinessID:     query.BusinessID,
		Query:          query.Query,
		LocationType:   query.LocationType,
		EmploymentType: query.EmploymentType,
		Page:           page,
	})
	if err != nil {
		return nil, repositories.PageMeta{}, apperrors.InternalError(err)
	}
	return jobs, repositories.NewPageMeta(page, total), nil
}

// ChangeJobStatus mirrors the owner path but looks the post up by id
// alone. The first move to ACTIVE stamps publishedAt, like everywhere
// else.
func (s *AdminServiceImpl) ChangeJobStatus(jobID, statusCode string) (*models.JobPost, error) {
	if appErr := ValidateStatus(KindJob, statusCode); appErr != nil {
		return nil, appErr
	}

	job, err := s.jobs.FindByID(jobID)
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

	logger.Info("job status changed by admin", "job_id", jobID, "status", statusCode)
	return job, nil
}

func (s *AdminServiceImpl) ListArticles(query *dto.ArticleListQuery) ([]models.Article, repositories.PageMeta, error) {
	page := repositories.PageQuery{Page: query.Page, Limit: query.Limit}
	page.Normalize()

	articles, total, err := s.articles.FindWithFilter(repositories.ArticleFilter{
		Status:   models.ArticleStatus(query.Status),
		AuthorID: query.AuthorID,
		Query:    query.Query,
		Page:     page,
	})
	if err != nil {
		return nil, repositories.PageMeta{}, apperrors.InternalError(err)
	}
	return articles, repositories.NewPageMeta(page, total), nil
}

func (s *AdminServiceImpl) ChangeArticleStatus(articleID, status string) (*models.Article, error) {
	if appErr := ValidateStatus(KindArticle, status); appErr != nil {
		return nil, appErr
	}

	article, err := s.articles.FindByID(articleID)
	if err != nil {
		if errors.Is(err, repositories.ErrArticleNotFound) {
			return nil, apperrors.ErrArticleNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	if article.Status == models.ArticleStatus(status) {
		return article, nil
	}

	article.Status = models.ArticleStatus(status)
	if article.Status == models.ArticleStatusPublished && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.articles.Update(article); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("article status changed by admin", "article_id", articleID, "status", status)
	return article, nil
}

func (s *AdminServiceImpl) ListEvents(query *dto.EventListQuery) ([]models.Event, repositories.PageMeta, error) {
	page := repositories.PageQuery{Page: query.Page, Limit: query.Limit}
	page.Normalize()

	events, total, err := s.events.FindWithFilter(repositories.EventFilter{
		Status:    models.EventStatus(query.Status),
		CreatorID: query.CreatorID,
		Type:      query.Type,
		Query:     query.Query,
		Page:      page,
	})
	if err != nil {
		return nil, repositories.PageMeta{}, apperrors.InternalError(err)
	}
	return events, repositories.NewPageMeta(page, total), nil
}

// ChangeEventStatus is the creator path without the ownership scope;
// publishedAt is stamped on the first move to PUBLISHED and never reset.
func (s *AdminServiceImpl) ChangeEventStatus(eventID, status string) (*models.Event, error) {
	if appErr := ValidateStatus(KindEvent, status); appErr != nil {
		return nil, appErr
	}

	event, err := s.events.FindByID(eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	if event.Status == models.EventStatus(status) {
		return event, nil
	}

	event.Status = models.EventStatus(status)
	if event.Status == models.EventStatusPublished && event.PublishedAt == nil {
		now := time.Now()
		event.PublishedAt = &now
	}

	if err := s.events.Update(event); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("event status changed by admin", "event_id", eventID, "status", status)
	return event, nil
}

func (s *AdminServiceImpl) ListPayments(query *dto.PaymentListQuery) ([]models.Payment, repositories.PageMeta, error) {
	page := repositories.PageQuery{Page: query.Page, Limit: query.Limit}
	page.Normalize()

	payments, total, err := s.payments.FindWithFilter(repositories.PaymentFilter{
		Status:      models.PaymentStatus(query.Status),
		PaymentType: query.PaymentType,
		UserID:      query.UserID,
		EventID:     query.EventID,
		BusinessID:  query.BusinessID,
		JobPostID:   query.JobPostID,
		Page:        page,
	})
	if err != nil {
		return nil, repositories.PageMeta{}, apperrors.InternalError(err)
	}
	return payments, repositories.NewPageMeta(page, total), nil
}

func (s *AdminServiceImpl) GetPayment(id string) (*models.Payment, error) {
	payment, err := s.payments.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.ErrPaymentNotFound()
		}
		return nil, apperrors.InternalError(err)
	}
	return payment, nil
}
