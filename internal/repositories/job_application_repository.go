package repositories

import (
	"errors"

	"gorm.io/gorm"

	"workhub_backend/internal/models"
)

var ErrJobApplicationNotFound = errors.New("job application not found")

type JobApplicationRepository interface {
	Create(application *models.JobApplication) error
	FindByID(id string) (*models.JobApplication, error)
	ListByJob(jobPostID string, page PageQuery) ([]models.JobApplication, int64, error)
}

type JobApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewJobApplicationRepository(db *gorm.DB) JobApplicationRepository {
	return &JobApplicationRepositoryImpl{db: db}
}

func (r *JobApplicationRepositoryImpl) Create(application *models.JobApplication) error {
	return r.db.Create(application).Error
}

func (r *JobApplicationRepositoryImpl) FindByID(id string) (*models.JobApplication, error) {
	var application models.JobApplication
	err := r.db.
		Preload("JobPost").Preload("JobPost.Business").Preload("User").
		First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *JobApplicationRepositoryImpl) ListByJob(jobPostID string, page PageQuery) ([]models.JobApplication, int64, error) {
	query := r.db.Model(&models.JobApplication{}).Where("job_post_id = ?", jobPostID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var applications []models.JobApplication
	err := query.Preload("User").
		Order("created_at DESC").
		Scopes(Paginate(page)).
		Find(&applications).Error
	if err != nil {
		return nil, 0, err
	}
	return applications, total, nil
}
