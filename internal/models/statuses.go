package models

type BusinessStatus string
type ArticleStatus string
type EventStatus string
type RegistrationStatus string
type PaymentStatus string
type ApplicationStatus string
type ApplicationMethod string
type ContributorStatus string

const (
	BusinessStatusPending  BusinessStatus = "PENDING"
	BusinessStatusApproved BusinessStatus = "APPROVED"
	BusinessStatusRejected BusinessStatus = "REJECTED"

	// Job statuses live in the job_statuses reference table; these are
	// the seeded codes.
	JobStatusActive    = "ACTIVE"
	JobStatusSuspended = "SUSPENDED"
	JobStatusArchived  = "ARCHIVED"

	ArticleStatusPublished ArticleStatus = "PUBLISHED"
	ArticleStatusSuspended ArticleStatus = "SUSPENDED"
	ArticleStatusArchived  ArticleStatus = "ARCHIVED"

	EventStatusDraft     EventStatus = "DRAFT"
	EventStatusPublished EventStatus = "PUBLISHED"
	EventStatusCancelled EventStatus = "CANCELLED"
	EventStatusArchived  EventStatus = "ARCHIVED"

	RegistrationStatusPendingPayment RegistrationStatus = "PENDING_PAYMENT"
	RegistrationStatusConfirmed      RegistrationStatus = "CONFIRMED"
	RegistrationStatusRejected       RegistrationStatus = "REJECTED"

	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusVerified PaymentStatus = "VERIFIED"
	PaymentStatusRejected PaymentStatus = "REJECTED"

	ApplicationStatusSubmitted ApplicationStatus = "SUBMITTED"
	ApplicationStatusClicked   ApplicationStatus = "CLICKED"

	ApplicationMethodPlatform ApplicationMethod = "PLATFORM"
	ApplicationMethodExternal ApplicationMethod = "EXTERNAL"

	ContributorStatusActive    ContributorStatus = "ACTIVE"
	ContributorStatusSuspended ContributorStatus = "SUSPENDED"

	PaymentTypeEventRegistration = "EVENT_REGISTRATION"

	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Allowed-status sets consulted by the shared status machine. One table,
// not per-handler re-declarations.
var (
	AllowedBusinessStatuses = []string{
		string(BusinessStatusPending),
		string(BusinessStatusApproved),
		string(BusinessStatusRejected),
	}

	AllowedJobStatuses = []string{
		JobStatusActive,
		JobStatusSuspended,
		JobStatusArchived,
	}

	AllowedArticleStatuses = []string{
		string(ArticleStatusPublished),
		string(ArticleStatusSuspended),
		string(ArticleStatusArchived),
	}

	AllowedEventStatuses = []string{
		string(EventStatusPublished),
		string(EventStatusCancelled),
		string(EventStatusArchived),
		string(EventStatusDraft),
	}

	// The subset an admin may settle a payment into.
	AllowedPaymentDecisions = []string{
		string(PaymentStatusVerified),
		string(PaymentStatusRejected),
	}
)
