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

type EventService interface {
	Create(creatorID string, req *dto.CreateEventRequest) (*models.Event, error)
	GetByIDOrSlug(idOrSlug string) (*models.Event, error)
	ListPublic(query *dto.EventListQuery) ([]models.Event, repositories.PageMeta, error)
	ListMine(creatorID string, query *dto.EventListQuery) ([]models.Event, repositories.PageMeta, error)
	Update(id, creatorID string, req *dto.UpdateEventRequest) (*models.Event, error)
	ChangeStatus(id, creatorID, status string) (*models.Event, error)

	Register(eventID, userID string) (*models.EventRegistration, error)
	ListRegistrations(eventID, creatorID string, page repositories.PageQuery) ([]models.EventRegistration, repositories.PageMeta, error)
	MyRegistrations(userID string, page repositories.PageQuery) ([]models.EventRegistration, repositories.PageMeta, error)
	RegistrationStats(eventID, creatorID string) (*dto.RegistrationStatsResponse, error)
}

type EventServiceImpl struct {
	events repositories.EventRepository
}

func NewEventService(events repositories.EventRepository) EventService {
	return &EventServiceImpl{events: events}
}

// Create publishes a new event immediately. Whether it is paid follows
// from the price: anything above zero carries the flat platform fee.
func (s *EventServiceImpl) Create(creatorID string, req *dto.CreateEventRequest) (*models.Event, error) {
	isPaid := req.PricePerPerson != nil && *req.PricePerPerson > 0

	now := time.Now()
	event := &models.Event{
		CreatorID:     creatorID,
		Title:         req.Title,
		Slug:          MakeSlug(req.Title),
		Type:          req.Type,
		Description:   req.Description,
		Location:      req.Location,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		IsPaid:        isPaid,
		Quota:         req.Quota,
		Status:        models.EventStatusPublished,
		PublishedAt:   &now,
	}
	if isPaid {
		event.PricePerPerson = req.PricePerPerson
		event.AdminFee = EventAdminFeeIDR
	}

	if err := s.events.Create(event); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("event created", "event_id", event.ID, "creator_id", creatorID)
	return event, nil
}

func (s *EventServiceImpl) GetByIDOrSlug(idOrSlug string) (*models.Event, error) {
	var event *models.Event
	var err error
	if isUUID(idOrSlug) {
		event, err = s.events.FindByID(idOrSlug)
	} else {
		event, err = s.events.FindBySlug(idOrSlug)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound()
		}
		return nil, apperrors.InternalError(err)
	}
	return event, nil
}

// ListPublic defaults to PUBLISHED events; the upcoming filter also
// flips the ordering to soonest-first.
func (s *EventServiceImpl) ListPublic(query *dto.EventListQuery) ([]models.Event, repositories.PageMeta, error) {
	status := query.Status
	if status == "" {
		status = string(models.EventStatusPublished)
	}
	return s.list(repositories.EventFilter{
		Status:          models.EventStatus(status),
		Type:            query.Type,
		Query:           query.Query,
		Upcoming:        query.Upcoming,
		OrderByStartAsc: query.Upcoming,
		Page:            repositories.PageQuery{Page: query.Page, Limit: query.Limit},
	})
}

func (s *EventServiceImpl) ListMine(creatorID string, query *dto.EventListQuery) ([]models.Event, repositories.PageMeta, error) {
	return s.list(repositories.EventFilter{
		Status:    models.EventStatus(query.Status),
		CreatorID: creatorID,
		Type:      query.Type,
		Query:     query.Query,
		Page:      repositories.PageQuery{Page: query.Page, Limit: query.Limit},
	})
}

func (s *EventServiceImpl) list(filter repositories.EventFilter) ([]models.Event, repositories.PageMeta, error) {
	filter.Page.Normalize()
	events, total, err := s.events.FindWithFilter(filter)
	if err != nil {
		return nil, repositories.PageMeta{}, apperrors.InternalError(err)
	}
	return events, repositories.NewPageMeta(filter.Page, total), nil
}

func (s *EventServiceImpl) Update(id, creatorID string, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.events.FindByIDForCreator(id, creatorID)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Type != nil {
		event.Type = *req.Type
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.StartDatetime != nil {
		event.StartDatetime = *req.StartDatetime
	}
	if req.EndDatetime != nil {
		event.EndDatetime = *req.EndDatetime
	}
	if req.PricePerPerson != nil {
		isPaid := *req.PricePerPerson > 0
		event.IsPaid = isPaid
		if isPaid {
			event.PricePerPerson = req.PricePerPerson
			event.AdminFee = EventAdminFeeIDR
		} else {
			event.PricePerPerson = nil
			event.AdminFee = 0
		}
	}
	if req.Quota != nil {
		event.Quota = req.Quota
	}

	if !event.EndDatetime.After(event.StartDatetime) {
		return nil, apperrors.FieldError("endDatetime",
			"Must be after startDatetime")
	}

	if err := s.events.Update(event); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return event, nil
}

// ChangeStatus moves the event to any allowed status; the first move to
// PUBLISHED stamps publishedAt and later moves never reset it.
func (s *EventServiceImpl) ChangeStatus(id, creatorID, status string) (*models.Event, error) {
	if appErr := ValidateStatus(KindEvent, status); appErr != nil {
		return nil, appErr
	}

	event, err := s.events.FindByIDForCreator(id, creatorID)
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

	logger.Info("event status changed", "event_id", id, "status", status)
	return event, nil
}

// Register books a seat. Free events confirm immediately; paid events
// open a PENDING_PAYMENT registration with a pending payment for price
// plus the platform fee. Quota is enforced inside the repository
// transaction under a row lock.
func (s *EventServiceImpl) Register(eventID, userID string) (*models.EventRegistration, error) {
	event, err := s.events.FindByID(eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	if event.Status != models.EventStatusPublished {
		return nil, apperrors.FieldError("eventId", "Event is not open for registration")
	}
	if event.StartDatetime.Before(time.Now()) {
		return nil, apperrors.FieldError("eventId", "Event has already started")
	}

	registration := &models.EventRegistration{
		EventID:     event.ID,
		UserID:      userID,
		TotalAmount: RegistrationTotal(event.IsPaid, event.PricePerPerson),
	}

	var payment *models.Payment
	if event.IsPaid {
		registration.Status = models.RegistrationStatusPendingPayment
		payment = &models.Payment{
			UserID:      userID,
			PaymentType: models.PaymentTypeEventRegistration,
			Amount:      registration.TotalAmount,
			Status:      models.PaymentStatusPending,
			EventID:     &event.ID,
		}
	} else {
		registration.Status = models.RegistrationStatusConfirmed
	}

	if err := s.events.CreateRegistration(registration, payment); err != nil {
		switch {
		case errors.Is(err, repositories.ErrQuotaFull):
			return nil, apperrors.FieldError("eventId", "Event quota is full")
		case errors.Is(err, repositories.ErrAlreadyRegistered):
			return nil, apperrors.NewConflictError("Already registered for this event")
		case errors.Is(err, repositories.ErrEventNotFound):
			return nil, apperrors.ErrEventNotFound()
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	registration.Event = event
	logger.Info("event registration created",
		"registration_id", registration.ID,
		"event_id", event.ID,
		"status", registration.Status)
	return registration, nil
}

func (s *EventServiceImpl) ListRegistrations(eventID, creatorID string, page repositories.PageQuery) ([]models.EventRegistration, repositories.PageMeta, error) {
	if _, err := s.events.FindByIDForCreator(eventID, creatorID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, repositories.PageMeta{}, apperrors.ErrEventNotFound()
		}
		return nil, repositories.PageMeta{}, apperrors.InternalError(err)
	}

	page.Normalize()
	registrations, total, err := s.events.ListRegistrationsByEvent(eventID, page)
	if err != nil {
		return nil, repositories.PageMeta{}, apperrors.InternalError(err)
	}
	return registrations, repositories.NewPageMeta(page, total), nil
}

func (s *EventServiceImpl) MyRegistrations(userID string, page repositories.PageQuery) ([]models.EventRegistration, repositories.PageMeta, error) {
	page.Normalize()
	registrations, total, err := s.events.FindRegistrationsByUser(userID, page)
	if err != nil {
		return nil, repositories.PageMeta{}, apperrors.InternalError(err)
	}
	return registrations, repositories.NewPageMeta(page, total), nil
}

func (s *EventServiceImpl) RegistrationStats(eventID, creatorID string) (*dto.RegistrationStatsResponse, error) {
	event, err := s.events.FindByIDForCreator(eventID, creatorID)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	byStatus, err := s.events.RegistrationStats(eventID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var totalRegistrations int64
	for _, count := range byStatus {
		totalRegistrations += count
	}
	totalActive := byStatus[string(models.RegistrationStatusPendingPayment)] +
		byStatus[string(models.RegistrationStatusConfirmed)]

	stats := &dto.RegistrationStatsResponse{
		EventID:            event.ID,
		Quota:              event.Quota,
		TotalRegistrations: totalRegistrations,
		TotalActive:        totalActive,
		ByStatus:           byStatus,
	}
	if event.Quota != nil {
		remaining := int64(*event.Quota) - totalActive
		if remaining < 0 {
			remaining = 0
		}
		stats.RemainingSeats = &remaining
	}
	return stats, nil
}
