package repositories

import (
	"errors"

	"gorm.io/gorm"

	"workhub_backend/internal/models"
)

var ErrBusinessNotFound = errors.New("business not found")

type BusinessRepository interface {
	Create(business *models.Business) error
	FindByID(id string) (*models.Business, error)
	FindByIDForOwner(id, ownerID string) (*models.Business, error)
	ListByOwner(ownerID string, page PageQuery) ([]models.Business, int64, error)
	FindWithFilter(filter BusinessFilter) ([]models.Business, int64, error)
	Update(business *models.Business) error
	UpdateStatus(id string, status models.BusinessStatus) error
}

type BusinessFilter struct {
	Status  models.BusinessStatus
	OwnerID string
	Query   string
	Page    PageQuery
}

type BusinessRepositoryImpl struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &BusinessRepositoryImpl{db: db}
}

func (r *BusinessRepositoryImpl) Create(business *models.Business) error {
	return r.db.Create(business).Error
}

func (r *BusinessRepositoryImpl) FindByID(id string) (*models.Business, error) {
	var business models.Business
	err := r.db.Preload("Owner").First(&business, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return &business, nil
}

func (r *BusinessRepositoryImpl) FindByIDForOwner(id, ownerID string) (*models.Business, error) {
	var business models.Business
	err := r.db.First(&business, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return &business, nil
}

func (r *BusinessRepositoryImpl) ListByOwner(ownerID string, page PageQuery) ([]models.Business, int64, error) {
	query := r.db.Model(&models.Business{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var businesses []models.Business
	err := query.Order("created_at DESC").
		Scopes(Paginate(page)).
		Find(&businesses).Error
	if err != nil {
		return nil, 0, err
	}
	return businesses, total, nil
}

func (r *BusinessRepositoryImpl) FindWithFilter(filter BusinessFilter) ([]models.Business, int64, error) {
	query := r.db.Model(&models.Business{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Query != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Query+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var businesses []models.Business
	err := query.Preload("Owner").
		Order("created_at DESC").
		Scopes(Paginate(filter.Page)).
		Find(&businesses).Error
	if err != nil {
		return nil, 0, err
	}
	return businesses, total, nil
}

func (r *BusinessRepositoryImpl) Update(business *models.Business) error {
	return r.db.Save(business).Error
}

func (r *BusinessRepositoryImpl) UpdateStatus(id string, status models.BusinessStatus) error {
	result := r.db.Model(&models.Business{}).Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBusinessNotFound
	}
	return nil
}
