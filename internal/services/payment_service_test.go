package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workhub_backend/internal/models"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"
)

func pendingPayment() *models.Payment {
	regID := "reg-1"
	return &models.Payment{
		BaseModel:           models.BaseModel{ID: "payment-1"},
		UserID:              "user-1",
		PaymentType:         models.PaymentTypeEventRegistration,
		Amount:              52500,
		Status:              models.PaymentStatusPending,
		EventRegistrationID: &regID,
	}
}

func TestPaymentService_Verify_ConfirmsRegistration(t *testing.T) {
	payment := pendingPayment()

	var gotRegStatus models.RegistrationStatus
	payments := &fakePaymentRepo{
		FindByIDFn: func(id string) (*models.Payment, error) { return payment, nil },
		VerifyWithRegistrationFn: func(p *models.Payment, regStatus models.RegistrationStatus) error {
			gotRegStatus = regStatus
			return nil
		},
	}

	svc := NewPaymentService(payments, &fakeEventRepo{}, &fakeUserRepo{}, nil)
	settled, err := svc.Verify("payment-1", "admin-1", "VERIFIED")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusVerified, settled.Status)
	assert.Equal(t, models.RegistrationStatusConfirmed, gotRegStatus)
	require.NotNil(t, settled.VerifiedByID)
	assert.Equal(t, "admin-1", *settled.VerifiedByID)
	assert.NotNil(t, settled.VerifiedAt)
}

func TestPaymentService_Verify_RejectsRegistration(t *testing.T) {
	payment := pendingPayment()

	var gotRegStatus models.RegistrationStatus
	payments := &fakePaymentRepo{
		FindByIDFn: func(id string) (*models.Payment, error) { return payment, nil },
		VerifyWithRegistrationFn: func(p *models.Payment, regStatus models.RegistrationStatus) error {
			gotRegStatus = regStatus
			return nil
		},
	}

	svc := NewPaymentService(payments, &fakeEventRepo{}, &fakeUserRepo{}, nil)
	settled, err := svc.Verify("payment-1", "admin-1", "REJECTED")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRejected, settled.Status)
	assert.Equal(t, models.RegistrationStatusRejected, gotRegStatus)
}

func TestPaymentService_Verify_AlreadySettled(t *testing.T) {
	payment := pendingPayment()
	payment.Status = models.PaymentStatusVerified

	payments := &fakePaymentRepo{
		FindByIDFn: func(id string) (*models.Payment, error) { return payment, nil },
	}

	svc := NewPaymentService(payments, &fakeEventRepo{}, &fakeUserRepo{}, nil)
	_, err := svc.Verify("payment-1", "admin-1", "VERIFIED")

	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, 422, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeValidationError, appErr.Code)

	details := appErr.Details.([]apperrors.FieldDetail)
	assert.Equal(t, "Payment already settled", details[0].Message)
}

func TestPaymentService_Verify_NoLinkedRegistration(t *testing.T) {
	payment := pendingPayment()
	payment.EventRegistrationID = nil

	payments := &fakePaymentRepo{
		FindByIDFn: func(id string) (*models.Payment, error) { return payment, nil },
	}

	svc := NewPaymentService(payments, &fakeEventRepo{}, &fakeUserRepo{}, nil)
	_, err := svc.Verify("payment-1", "admin-1", "VERIFIED")

	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, 422, appErr.HTTPCode)

	details := appErr.Details.([]apperrors.FieldDetail)
	require.Len(t, details, 1)
	assert.Equal(t, "Payment is not related to an event registration", details[0].Message)
}

func TestPaymentService_Verify_InvalidDecision(t *testing.T) {
	svc := NewPaymentService(&fakePaymentRepo{}, &fakeEventRepo{}, &fakeUserRepo{}, nil)

	_, err := svc.Verify("payment-1", "admin-1", "PENDING")
	require.Error(t, err)

	appErr, _ := apperrors.AsAppError(err)
	details := appErr.Details.([]apperrors.FieldDetail)
	assert.Equal(t, "Status must be one of VERIFIED, REJECTED", details[0].Message)
}

func TestPaymentService_AttachProof(t *testing.T) {
	payment := pendingPayment()

	ref := "TRX-123"
	payments := &fakePaymentRepo{
		FindByIDFn: func(id string) (*models.Payment, error) { return payment, nil },
		UpdateProofFn: func(id string, referenceCode, screenshotURL *string) error {
			return nil
		},
	}

	svc := NewPaymentService(payments, &fakeEventRepo{}, &fakeUserRepo{}, nil)
	updated, err := svc.AttachProof("payment-1", "user-1", &dto.AttachPaymentProofRequest{
		ReferenceCode: &ref,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.ReferenceCode)
	assert.Equal(t, "TRX-123", *updated.ReferenceCode)
}

func TestPaymentService_AttachProof_WrongUser(t *testing.T) {
	payment := pendingPayment()

	payments := &fakePaymentRepo{
		FindByIDFn: func(id string) (*models.Payment, error) { return payment, nil },
	}

	ref := "TRX-123"
	svc := NewPaymentService(payments, &fakeEventRepo{}, &fakeUserRepo{}, nil)
	_, err := svc.AttachProof("payment-1", "someone-else", &dto.AttachPaymentProofRequest{
		ReferenceCode: &ref,
	})

	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestPaymentService_AttachProof_VerifiedPayment(t *testing.T) {
	payment := pendingPayment()
	payment.Status = models.PaymentStatusVerified
	now := time.Now()
	payment.VerifiedAt = &now

	payments := &fakePaymentRepo{
		FindByIDFn: func(id string) (*models.Payment, error) { return payment, nil },
	}

	ref := "TRX-123"
	svc := NewPaymentService(payments, &fakeEventRepo{}, &fakeUserRepo{}, nil)
	_, err := svc.AttachProof("payment-1", "user-1", &dto.AttachPaymentProofRequest{
		ReferenceCode: &ref,
	})

	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, 422, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeValidationError, appErr.Code)

	details := appErr.Details.([]apperrors.FieldDetail)
	assert.Equal(t, "Payment already verified", details[0].Message)
}

func TestPaymentService_AttachProof_RejectedPaymentCanRetry(t *testing.T) {
	payment := pendingPayment()
	payment.Status = models.PaymentStatusRejected

	payments := &fakePaymentRepo{
		FindByIDFn: func(id string) (*models.Payment, error) { return payment, nil },
		UpdateProofFn: func(id string, referenceCode, screenshotURL *string) error {
			return nil
		},
	}

	ref := "TRX-456"
	svc := NewPaymentService(payments, &fakeEventRepo{}, &fakeUserRepo{}, nil)
	updated, err := svc.AttachProof("payment-1", "user-1", &dto.AttachPaymentProofRequest{
		ReferenceCode: &ref,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.ReferenceCode)
	assert.Equal(t, "TRX-456", *updated.ReferenceCode)
}

func TestPaymentService_AttachProof_NoProofGiven(t *testing.T) {
	payment := pendingPayment()

	payments := &fakePaymentRepo{
		FindByIDFn: func(id string) (*models.Payment, error) { return payment, nil },
	}

	svc := NewPaymentService(payments, &fakeEventRepo{}, &fakeUserRepo{}, nil)
	_, err := svc.AttachProof("payment-1", "user-1", &dto.AttachPaymentProofRequest{})

	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, 422, appErr.HTTPCode)
}
