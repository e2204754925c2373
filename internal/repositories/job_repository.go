package repositories

import (
	"errors"

	"gorm.io/gorm"

	"workhub_backend/internal/models"
)

var (
	ErrJobNotFound       = errors.New("job post not found")
	ErrJobStatusNotFound = errors.New("job status not found")
)

type JobRepository interface {
	Create(job *models.JobPost) error
	FindByID(id string) (*models.JobPost, error)
	FindBySlug(slug string) (*models.JobPost, error)
	FindByIDForOwner(id, ownerID string) (*models.JobPost, error)
	Update(job *models.JobPost) error
	FindWithFilter(filter JobFilter) ([]models.JobPost, int64, error)

	FindStatusByCode(code string) (*models.JobStatus, error)
}

type JobFilter struct {
	StatusCode     string
	BusinessID     string
	OwnerID        string
	Query          string
	LocationType   string
	EmploymentType string
	Page           PageQuery
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.JobPost) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.JobPost, error) {
	var job models.JobPost
	err := r.db.Preload("Business").Preload("JobStatus").
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindBySlug(slug string) (*models.JobPost, error) {
	var job models.JobPost
	err := r.db.Preload("Business").Preload("JobStatus").
		First(&job, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindByIDForOwner resolves a job only when its business belongs to the
// given owner. Ownership checks never leak other owners' drafts.
func (r *JobRepositoryImpl) FindByIDForOwner(id, ownerID string) (*models.JobPost, error) {
	var job models.JobPost
	err := r.db.Preload("Business").Preload("JobStatus").
		Joins("JOIN businesses ON businesses.id = job_posts.business_id").
		Where("job_posts.id = ? AND businesses.owner_id = ?", id, ownerID).
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.JobPost) error {
	return r.db.Save(job).Error
}

func (r *JobRepositoryImpl) FindWithFilter(filter JobFilter) ([]models.JobPost, int64, error) {
	query := r.db.Model(&models.JobPost{})

	if filter.StatusCode != "" {
		query = query.
			Joins("JOIN job_statuses ON job_statuses.id = job_posts.job_status_id").
			Where("job_statuses.code = ?", filter.StatusCode)
	}
	if filter.BusinessID != "" {
		query = query.Where("job_posts.business_id = ?", filter.BusinessID)
	}
	if filter.OwnerID != "" {
		query = query.
			Joins("JOIN businesses ON businesses.id = job_posts.business_id").
			Where("businesses.owner_id = ?", filter.OwnerID)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("job_posts.title ILIKE ? OR job_posts.description ILIKE ?",
			pattern, pattern)
	}
	if filter.LocationType != "" {
		query = query.Where("job_posts.location_type = ?", filter.LocationType)
	}
	if filter.EmploymentType != "" {
		query = query.Where("job_posts.employment_type = ?", filter.EmploymentType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.JobPost
	err := query.Preload("Business").Preload("JobStatus").
		Order("job_posts.created_at DESC").
		Scopes(Paginate(filter.Page)).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepositoryImpl) FindStatusByCode(code string) (*models.JobStatus, error) {
	var status models.JobStatus
	err := r.db.First(&status, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobStatusNotFound
		}
		return nil, err
	}
	return &status, nil
}
