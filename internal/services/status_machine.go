package services

import (
	"fmt"
	"strings"

	"workhub_backend/internal/models"
	"workhub_backend/pkg/apperrors"
)

// EntityKind names a status-bearing entity in the allowed-status table.
type EntityKind string

const (
	KindBusiness EntityKind = "business"
	KindJob      EntityKind = "job"
	KindArticle  EntityKind = "article"
	KindEvent    EntityKind = "event"
	KindPayment  EntityKind = "payment"
)

// allowedStatuses is the one table every status transition is checked
// against. Transitions are not gated by the current status; any listed
// value is reachable from any other.
var allowedStatuses = map[EntityKind][]string{
	KindBusiness: models.AllowedBusinessStatuses,
	KindJob:      models.AllowedJobStatuses,
	KindArticle:  models.AllowedArticleStatuses,
	KindEvent:    models.AllowedEventStatuses,
	KindPayment:  models.AllowedPaymentDecisions,
}

// ValidateStatus checks the candidate value against the kind's allowed
// set and returns the standard field-level validation error on failure.
func ValidateStatus(kind EntityKind, status string) *apperrors.AppError {
	allowed, ok := allowedStatuses[kind]
	if !ok {
		return apperrors.FieldError("status", "Unknown entity kind")
	}

	for _, a := range allowed {
		if status == a {
			return nil
		}
	}

	return apperrors.FieldError("status",
		fmt.Sprintf("Status must be one of %s", strings.Join(allowed, ", ")))
}
