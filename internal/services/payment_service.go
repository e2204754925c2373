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

type PaymentService interface {
	AttachProof(paymentID, userID string, req *dto.AttachPaymentProofRequest) (*models.Payment, error)
	Verify(paymentID, adminID, decision string) (*models.Payment, error)
	ListMine(userID string, query *dto.PaymentListQuery) ([]models.Payment, repositories.PageMeta, error)
	ListByEvent(eventID, creatorID string, page repositories.PageQuery) ([]models.Payment, repositories.PageMeta, error)
}

type PaymentServiceImpl struct {
	payments repositories.PaymentRepository
	events   repositories.EventRepository
	users    repositories.UserRepository
	mailer   *email.Mailer
}

func NewPaymentService(
	payments repositories.PaymentRepository,
	events repositories.EventRepository,
	users repositories.UserRepository,
	mailer *email.Mailer,
) PaymentService {
	return &PaymentServiceImpl{payments: payments, events: events, users: users, mailer: mailer}
}

// AttachProof lets the payer attach a transfer reference or screenshot
// to their payment. Verified payments are immutable; a rejected one may
// re-attach proof for another review.
func (s *PaymentServiceImpl) AttachProof(paymentID, userID string, req *dto.AttachPaymentProofRequest) (*models.Payment, error) {
	payment, err := s.payments.FindByID(paymentID)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.ErrPaymentNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	if payment.UserID != userID {
		return nil, apperrors.NewForbiddenError("Not allowed to modify this payment")
	}
	if payment.Status == models.PaymentStatusVerified {
		return nil, apperrors.FieldError("paymentId", "Payment already verified")
	}
	if req.ReferenceCode == nil && req.ScreenshotURL == nil {
		return nil, apperrors.FieldError("referenceCode",
			"A reference code or screenshot is required")
	}

	if err := s.payments.UpdateProof(paymentID, req.ReferenceCode, req.ScreenshotURL); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.ReferenceCode != nil {
		payment.ReferenceCode = req.ReferenceCode
	}
	if req.ScreenshotURL != nil {
		payment.ScreenshotURL = req.ScreenshotURL
	}
	return payment, nil
}

// Verify settles a pending payment. VERIFIED confirms the linked event
// registration, REJECTED rejects it; both happen in one transaction.
// Settling an already-settled payment is rejected, never re-run.
func (s *PaymentServiceImpl) Verify(paymentID, adminID, decision string) (*models.Payment, error) {
	if appErr := ValidateStatus(KindPayment, decision); appErr != nil {
		return nil, appErr
	}

	payment, err := s.payments.FindByID(paymentID)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.ErrPaymentNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	if payment.Status != models.PaymentStatusPending {
		return nil, apperrors.FieldError("paymentId", "Payment already settled")
	}
	if payment.EventRegistrationID == nil {
		return nil, apperrors.FieldError("paymentId",
			"Payment is not related to an event registration")
	}

	now := time.Now()
	payment.Status = models.PaymentStatus(decision)
	payment.VerifiedByID = &adminID
	payment.VerifiedAt = &now

	registrationStatus := models.RegistrationStatusRejected
	if payment.Status == models.PaymentStatusVerified {
		registrationStatus = models.RegistrationStatusConfirmed
	}

	if err := s.payments.VerifyWithRegistration(payment, registrationStatus); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("payment settled",
		"payment_id", paymentID,
		"decision", decision,
		"admin_id", adminID)

	s.notifyPayer(payment)
	return payment, nil
}

// notifyPayer sends the settlement mail in the background; delivery
// failures never fail the request.
func (s *PaymentServiceImpl) notifyPayer(payment *models.Payment) {
	if s.mailer == nil {
		return
	}
	user, err := s.users.FindByID(payment.UserID)
	if err != nil {
		logger.Warn("payment notification skipped", "payment_id", payment.ID, "error", err.Error())
		return
	}

	go func() {
		if err := s.mailer.SendPaymentSettled(user.Email, user.Name, string(payment.Status), payment.Amount); err != nil {
			logger.Warn("payment notification failed", "payment_id", payment.ID, "error", err.Error())
		}
	}()
}

func (s *PaymentServiceImpl) ListMine(userID string, query *dto.PaymentListQuery) ([]models.Payment, repositories.PageMeta, error) {
	page := repositories.PageQuery{Page: query.Page, Limit: query.Limit}
	page.Normalize()

	payments, total, err := s.payments.FindWithFilter(repositories.PaymentFilter{
		Status:      models.PaymentStatus(query.Status),
		PaymentType: query.PaymentType,
		UserID:      userID,
		Page:        page,
	})
	if err != nil {
		return nil, repositories.PageMeta{}, apperrors.InternalError(err)
	}
	return payments, repositories.NewPageMeta(page, total), nil
}

// ListByEvent shows the payments backing an event's registrations to the
// event creator.
func (s *PaymentServiceImpl) ListByEvent(eventID, creatorID string, page repositories.PageQuery) ([]models.Payment, repositories.PageMeta, error) {
	if _, err := s.events.FindByIDForCreator(eventID, creatorID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, repositories.PageMeta{}, apperrors.ErrEventNotFound()
		}
		return nil, repositories.PageMeta{}, apperrors.InternalError(err)
	}

	page.Normalize()
	payments, total, err := s.payments.FindWithFilter(repositories.PaymentFilter{
		EventID: eventID,
		Page:    page,
	})
	if err != nil {
		return nil, repositories.PageMeta{}, apperrors.InternalError(err)
	}
	return payments, repositories.NewPageMeta(page, total), nil
}
