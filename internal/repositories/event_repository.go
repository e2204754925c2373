package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"workhub_backend/internal/models"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationNotFound = errors.New("event registration not found")
	ErrQuotaFull            = errors.New("event quota is full")
	ErrAlreadyRegistered    = errors.New("user already registered for event")
)

type EventRepository interface {
	Create(event *models.Event) error
	FindByID(id string) (*models.Event, error)
	FindBySlug(slug string) (*models.Event, error)
	FindByIDForCreator(id, creatorID string) (*models.Event, error)
	Update(event *models.Event) error
	FindWithFilter(filter EventFilter) ([]models.Event, int64, error)

	CountActiveRegistrations(eventID string) (int64, error)
	CreateRegistration(registration *models.EventRegistration, payment *models.Payment) error
	FindRegistrationByID(id string) (*models.EventRegistration, error)
	ListRegistrationsByEvent(eventID string, page PageQuery) ([]models.EventRegistration, int64, error)
	FindRegistrationsByUser(userID string, page PageQuery) ([]models.EventRegistration, int64, error)
	RegistrationStats(eventID string) (map[string]int64, error)
}

type EventFilter struct {
	Status    models.EventStatus
	CreatorID string
	Type      string
	Query     string
	// Upcoming keeps only events that have not started yet.
	Upcoming bool
	// OrderByStartAsc sorts soonest-first instead of newest-first.
	OrderByStartAsc bool
	Page            PageQuery
}

type EventRepositoryImpl struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &EventRepositoryImpl{db: db}
}

func (r *EventRepositoryImpl) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *EventRepositoryImpl) FindByID(id string) (*models.Event, error) {
	var event models.Event
	err := r.db.Preload("Creator").First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) FindBySlug(slug string) (*models.Event, error) {
	var event models.Event
	err := r.db.Preload("Creator").First(&event, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) FindByIDForCreator(id, creatorID string) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "id = ? AND creator_id = ?", id, creatorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *EventRepositoryImpl) FindWithFilter(filter EventFilter) ([]models.Event, int64, error) {
	query := r.db.Model(&models.Event{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CreatorID != "" {
		query = query.Where("creator_id = ?", filter.CreatorID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Upcoming {
		query = query.Where("start_datetime > ?", time.Now())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if filter.OrderByStartAsc {
		order = "start_datetime ASC"
	}

	var events []models.Event
	err := query.Preload("Creator").
		Order(order).
		Scopes(Paginate(filter.Page)).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// CountActiveRegistrations counts the registrations holding a seat:
// pending-payment and confirmed. Rejected ones free their seat.
func (r *EventRepositoryImpl) CountActiveRegistrations(eventID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.EventRegistration{}).
		Where("event_id = ? AND status IN ?", eventID, []string{
			string(models.RegistrationStatusPendingPayment),
			string(models.RegistrationStatusConfirmed),
		}).
		Count(&count).Error
	return count, err
}

// CreateRegistration inserts a registration (and its payment for paid
// events) inside one transaction. The event row is locked FOR UPDATE so
// two concurrent registrations cannot both pass the quota check.
func (r *EventRepositoryImpl) CreateRegistration(registration *models.EventRegistration, payment *models.Payment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&event, "id = ?", registration.EventID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		var existing int64
		err = tx.Model(&models.EventRegistration{}).
			Where("event_id = ? AND user_id = ? AND status IN ?",
				registration.EventID, registration.UserID, []string{
					string(models.RegistrationStatusPendingPayment),
					string(models.RegistrationStatusConfirmed),
				}).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyRegistered
		}

		if event.Quota != nil {
			var taken int64
			err = tx.Model(&models.EventRegistration{}).
				Where("event_id = ? AND status IN ?", registration.EventID, []string{
					string(models.RegistrationStatusPendingPayment),
					string(models.RegistrationStatusConfirmed),
				}).
				Count(&taken).Error
			if err != nil {
				return err
			}
			if taken >= int64(*event.Quota) {
				return ErrQuotaFull
			}
		}

		if err := tx.Create(registration).Error; err != nil {
			return err
		}

		if payment != nil {
			payment.EventRegistrationID = &registration.ID
			if err := tx.Create(payment).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *EventRepositoryImpl) FindRegistrationByID(id string) (*models.EventRegistration, error) {
	var registration models.EventRegistration
	err := r.db.Preload("Event").Preload("User").
		First(&registration, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return &registration, nil
}

func (r *EventRepositoryImpl) ListRegistrationsByEvent(eventID string, page PageQuery) ([]models.EventRegistration, int64, error) {
	query := r.db.Model(&models.EventRegistration{}).Where("event_id = ?", eventID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var registrations []models.EventRegistration
	err := query.Preload("User").
		Order("created_at DESC").
		Scopes(Paginate(page)).
		Find(&registrations).Error
	if err != nil {
		return nil, 0, err
	}
	return registrations, total, nil
}

func (r *EventRepositoryImpl) FindRegistrationsByUser(userID string, page PageQuery) ([]models.EventRegistration, int64, error) {
	query := r.db.Model(&models.EventRegistration{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var registrations []models.EventRegistration
	err := query.Preload("Event").
		Order("created_at DESC").
		Scopes(Paginate(page)).
		Find(&registrations).Error
	if err != nil {
		return nil, 0, err
	}
	return registrations, total, nil
}

// RegistrationStats returns per-status counts for one event.
func (r *EventRepositoryImpl) RegistrationStats(eventID string) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.EventRegistration{}).
		Select("status, COUNT(*) AS count").
		Where("event_id = ?", eventID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make(map[string]int64, len(rows))
	for _, r := range rows {
		stats[r.Status] = r.Count
	}
	return stats, nil
}
