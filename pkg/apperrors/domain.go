package apperrors

import "net/http"

// Factories for the entity-specific not-found family and the domain
// gates. Factories (not vars) so each call site gets its own value and
// WithDetails never leaks across requests.

func ErrUserNotFound() *AppError {
	return New(CodeUserNotFound, "User not found", http.StatusNotFound)
}

func ErrRoleNotFound() *AppError {
	return New(CodeRoleNotFound, "Role not found", http.StatusNotFound)
}

func ErrBusinessNotFound() *AppError {
	return New(CodeBusinessNotFound, "Business not found", http.StatusNotFound)
}

func ErrJobNotFound() *AppError {
	return New(CodeJobNotFound, "Job not found", http.StatusNotFound)
}

func ErrJobApplicationNotFound() *AppError {
	return New(CodeJobApplicationNotFound, "Job application not found", http.StatusNotFound)
}

func ErrArticleNotFound() *AppError {
	return New(CodeArticleNotFound, "Article not found", http.StatusNotFound)
}

func ErrContributorProfileNotFound() *AppError {
	return New(CodeContributorProfileNotFound, "Contributor profile not found", http.StatusNotFound)
}

func ErrEventNotFound() *AppError {
	return New(CodeEventNotFound, "Event not found", http.StatusNotFound)
}

func ErrEventRegistrationNotFound() *AppError {
	return New(CodeEventRegistrationNotFound, "Event registration not found", http.StatusNotFound)
}

func ErrPaymentNotFound() *AppError {
	return New(CodePaymentNotFound, "Payment not found", http.StatusNotFound)
}

func ErrInvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "Invalid credentials", http.StatusUnauthorized)
}

func ErrEmailOrUsernameTaken() *AppError {
	return New(CodeEmailOrUsernameTaken, "Email or username is already taken", http.StatusConflict)
}

func ErrBusinessNotApproved() *AppError {
	return New(CodeBusinessNotApproved, "Business is not approved", http.StatusForbidden)
}

func ErrContributorNotActive() *AppError {
	return New(CodeContributorNotActive, "Contributor is not active", http.StatusForbidden)
}
