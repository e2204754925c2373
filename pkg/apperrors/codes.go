package apperrors

// ErrorCode is the symbolic code serialized inside the error envelope.
type ErrorCode string

const (
	// Generic
	CodeValidationError     ErrorCode = "VALIDATION_ERROR"
	CodeUnauthorized        ErrorCode = "UNAUTHORIZED"
	CodeForbidden           ErrorCode = "FORBIDDEN"
	CodeNotFound            ErrorCode = "NOT_FOUND"
	CodeConflict            ErrorCode = "CONFLICT"
	CodeInternalServerError ErrorCode = "INTERNAL_SERVER_ERROR"

	// Auth
	CodeInvalidCredentials    ErrorCode = "INVALID_CREDENTIALS"
	CodeEmailOrUsernameTaken  ErrorCode = "EMAIL_OR_USERNAME_TAKEN"

	// Entity-specific not-found family
	CodeUserNotFound               ErrorCode = "USER_NOT_FOUND"
	CodeRoleNotFound               ErrorCode = "ROLE_NOT_FOUND"
	CodeBusinessNotFound           ErrorCode = "BUSINESS_NOT_FOUND"
	CodeJobNotFound                ErrorCode = "JOB_NOT_FOUND"
	CodeJobApplicationNotFound     ErrorCode = "JOB_APPLICATION_NOT_FOUND"
	CodeArticleNotFound            ErrorCode = "ARTICLE_NOT_FOUND"
	CodeContributorProfileNotFound ErrorCode = "CONTRIBUTOR_PROFILE_NOT_FOUND"
	CodeEventNotFound              ErrorCode = "EVENT_NOT_FOUND"
	CodeEventRegistrationNotFound  ErrorCode = "EVENT_REGISTRATION_NOT_FOUND"
	CodePaymentNotFound            ErrorCode = "PAYMENT_NOT_FOUND"

	// Domain gates
	CodeBusinessNotApproved  ErrorCode = "BUSINESS_NOT_APPROVED"
	CodeContributorNotActive ErrorCode = "CONTRIBUTOR_NOT_ACTIVE"
)
