package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"workhub_backend/internal/models"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentRepository interface {
	Create(payment *models.Payment) error
	FindByID(id string) (*models.Payment, error)
	UpdateProof(id string, referenceCode, screenshotURL *string) error
	VerifyWithRegistration(payment *models.Payment, registrationStatus models.RegistrationStatus) error
	FindWithFilter(filter PaymentFilter) ([]models.Payment, int64, error)
}

type PaymentFilter struct {
	Status      models.PaymentStatus
	PaymentType string
	UserID      string
	EventID     string
	BusinessID  string
	JobPostID   string
	Page        PageQuery
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepositoryImpl) FindByID(id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.
		Preload("EventRegistration").Preload("EventRegistration.Event").
		First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) UpdateProof(id string, referenceCode, screenshotURL *string) error {
	updates := map[string]interface{}{}
	if referenceCode != nil {
		updates["reference_code"] = *referenceCode
	}
	if screenshotURL != nil {
		updates["screenshot_url"] = *screenshotURL
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&models.Payment{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// VerifyWithRegistration persists the admin decision and flips the linked
// registration in the same transaction, so a crash between the two writes
// cannot leave a verified payment with a pending seat.
func (r *PaymentRepositoryImpl) VerifyWithRegistration(payment *models.Payment, registrationStatus models.RegistrationStatus) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Payment{}).Where("id = ?", payment.ID).
			Updates(map[string]interface{}{
				"status":         payment.Status,
				"verified_by_id": payment.VerifiedByID,
				"verified_at":    payment.VerifiedAt,
			}).Error
		if err != nil {
			return err
		}

		if payment.EventRegistrationID != nil {
			err = tx.Model(&models.EventRegistration{}).
				Where("id = ?", *payment.EventRegistrationID).
				Updates(map[string]interface{}{
					"status":     registrationStatus,
					"updated_at": time.Now(),
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PaymentRepositoryImpl) FindWithFilter(filter PaymentFilter) ([]models.Payment, int64, error) {
	query := r.db.Model(&models.Payment{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PaymentType != "" {
		query = query.Where("payment_type = ?", filter.PaymentType)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.EventID != "" {
		query = query.Where("event_id = ?", filter.EventID)
	}
	if filter.BusinessID != "" {
		query = query.Where("business_id = ?", filter.BusinessID)
	}
	if filter.JobPostID != "" {
		query = query.Where("job_post_id = ?", filter.JobPostID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []models.Payment
	err := query.Preload("EventRegistration").
		Order("created_at DESC").
		Scopes(Paginate(filter.Page)).
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}
