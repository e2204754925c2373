package services

import (
	"time"

	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
)

// Function-field fakes: each test wires only the methods it needs and a
// missing stub panics loudly.

type fakeUserRepo struct {
	FindByIDFn              func(id string) (*models.User, error)
	FindByEmailOrUsernameFn func(identifier string) (*models.User, error)
	CreateFn                func(user *models.User, roles []models.Role) error
	UpdateLastLoginFn       func(userID string, at time.Time) error
	UpdateActiveFn          func(userID string, isActive bool) error
	FindWithFilterFn        func(filter repositories.UserFilter) ([]models.User, int64, error)
	FindRoleByNameFn        func(name string) (*models.Role, error)
	AssignRoleFn            func(userID string, role *models.Role) error
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) { return f.FindByIDFn(id) }
func (f *fakeUserRepo) FindByEmailOrUsername(identifier string) (*models.User, error) {
	return f.FindByEmailOrUsernameFn(identifier)
}
func (f *fakeUserRepo) Create(user *models.User, roles []models.Role) error {
	return f.CreateFn(user, roles)
}
func (f *fakeUserRepo) UpdateLastLogin(userID string, at time.Time) error {
	return f.UpdateLastLoginFn(userID, at)
}
func (f *fakeUserRepo) UpdateActive(userID string, isActive bool) error {
	return f.UpdateActiveFn(userID, isActive)
}
func (f *fakeUserRepo) FindWithFilter(filter repositories.UserFilter) ([]models.User, int64, error) {
	return f.FindWithFilterFn(filter)
}
func (f *fakeUserRepo) FindRoleByName(name string) (*models.Role, error) {
	return f.FindRoleByNameFn(name)
}
func (f *fakeUserRepo) AssignRole(userID string, role *models.Role) error {
	return f.AssignRoleFn(userID, role)
}

type fakeTokenRepo struct {
	CreateFn            func(token *models.AuthToken) error
	FindActiveByTokenFn func(token string) (*models.AuthToken, error)
	RevokeFn            func(token string) error
	RevokeAllForUserFn  func(userID string) error
	DeleteExpiredFn     func() error
}

func (f *fakeTokenRepo) Create(token *models.AuthToken) error { return f.CreateFn(token) }
func (f *fakeTokenRepo) FindActiveByToken(token string) (*models.AuthToken, error) {
	return f.FindActiveByTokenFn(token)
}
func (f *fakeTokenRepo) Revoke(token string) error           { return f.RevokeFn(token) }
func (f *fakeTokenRepo) RevokeAllForUser(userID string) error { return f.RevokeAllForUserFn(userID) }
func (f *fakeTokenRepo) DeleteExpired() error                 { return f.DeleteExpiredFn() }

type fakeBusinessRepo struct {
	CreateFn           func(business *models.Business) error
	FindByIDFn         func(id string) (*models.Business, error)
	FindByIDForOwnerFn func(id, ownerID string) (*models.Business, error)
	ListByOwnerFn      func(ownerID string, page repositories.PageQuery) ([]models.Business, int64, error)
	FindWithFilterFn   func(filter repositories.BusinessFilter) ([]models.Business, int64, error)
	UpdateFn           func(business *models.Business) error
	UpdateStatusFn     func(id string, status models.BusinessStatus) error
}

func (f *fakeBusinessRepo) Create(business *models.Business) error { return f.CreateFn(business) }
func (f *fakeBusinessRepo) FindByID(id string) (*models.Business, error) {
	return f.FindByIDFn(id)
}
func (f *fakeBusinessRepo) FindByIDForOwner(id, ownerID string) (*models.Business, error) {
	return f.FindByIDForOwnerFn(id, ownerID)
}
func (f *fakeBusinessRepo) ListByOwner(ownerID string, page repositories.PageQuery) ([]models.Business, int64, error) {
	return f.ListByOwnerFn(ownerID, page)
}
func (f *fakeBusinessRepo) FindWithFilter(filter repositories.BusinessFilter) ([]models.Business, int64, error) {
	return f.FindWithFilterFn(filter)
}
func (f *fakeBusinessRepo) Update(business *models.Business) error { return f.UpdateFn(business) }
func (f *fakeBusinessRepo) UpdateStatus(id string, status models.BusinessStatus) error {
	return f.UpdateStatusFn(id, status)
}

type fakeJobRepo struct {
	CreateFn           func(job *models.JobPost) error
	FindByIDFn         func(id string) (*models.JobPost, error)
	FindBySlugFn       func(slug string) (*models.JobPost, error)
	FindByIDForOwnerFn func(id, ownerID string) (*models.JobPost, error)
	UpdateFn           func(job *models.JobPost) error
	FindWithFilterFn   func(filter repositories.JobFilter) ([]models.JobPost, int64, error)
	FindStatusByCodeFn func(code string) (*models.JobStatus, error)
}

func (f *fakeJobRepo) Create(job *models.JobPost) error          { return f.CreateFn(job) }
func (f *fakeJobRepo) FindByID(id string) (*models.JobPost, error) { return f.FindByIDFn(id) }
func (f *fakeJobRepo) FindBySlug(slug string) (*models.JobPost, error) {
	return f.FindBySlugFn(slug)
}
func (f *fakeJobRepo) FindByIDForOwner(id, ownerID string) (*models.JobPost, error) {
	return f.FindByIDForOwnerFn(id, ownerID)
}
func (f *fakeJobRepo) Update(job *models.JobPost) error { return f.UpdateFn(job) }
func (f *fakeJobRepo) FindWithFilter(filter repositories.JobFilter) ([]models.JobPost, int64, error) {
	return f.FindWithFilterFn(filter)
}
func (f *fakeJobRepo) FindStatusByCode(code string) (*models.JobStatus, error) {
	return f.FindStatusByCodeFn(code)
}

type fakeApplicationRepo struct {
	CreateFn    func(application *models.JobApplication) error
	FindByIDFn  func(id string) (*models.JobApplication, error)
	ListByJobFn func(jobPostID string, page repositories.PageQuery) ([]models.JobApplication, int64, error)
}

func (f *fakeApplicationRepo) Create(application *models.JobApplication) error {
	return f.CreateFn(application)
}
func (f *fakeApplicationRepo) FindByID(id string) (*models.JobApplication, error) {
	return f.FindByIDFn(id)
}
func (f *fakeApplicationRepo) ListByJob(jobPostID string, page repositories.PageQuery) ([]models.JobApplication, int64, error) {
	return f.ListByJobFn(jobPostID, page)
}

type fakeContributorRepo struct {
	CreateFn       func(profile *models.ContributorProfile) error
	FindByUserIDFn func(userID string) (*models.ContributorProfile, error)
	UpdateStatusFn func(userID string, status models.ContributorStatus) error
}

func (f *fakeContributorRepo) Create(profile *models.ContributorProfile) error {
	return f.CreateFn(profile)
}
func (f *fakeContributorRepo) FindByUserID(userID string) (*models.ContributorProfile, error) {
	return f.FindByUserIDFn(userID)
}
func (f *fakeContributorRepo) UpdateStatus(userID string, status models.ContributorStatus) error {
	return f.UpdateStatusFn(userID, status)
}

type fakeArticleRepo struct {
	CreateFn            func(article *models.Article) error
	FindByIDFn          func(id string) (*models.Article, error)
	FindBySlugFn        func(slug string) (*models.Article, error)
	FindByIDForAuthorFn func(id, authorID string) (*models.Article, error)
	UpdateFn            func(article *models.Article) error
	FindWithFilterFn    func(filter repositories.ArticleFilter) ([]models.Article, int64, error)
}

func (f *fakeArticleRepo) Create(article *models.Article) error { return f.CreateFn(article) }
func (f *fakeArticleRepo) FindByID(id string) (*models.Article, error) {
	return f.FindByIDFn(id)
}
func (f *fakeArticleRepo) FindBySlug(slug string) (*models.Article, error) {
	return f.FindBySlugFn(slug)
}
func (f *fakeArticleRepo) FindByIDForAuthor(id, authorID string) (*models.Article, error) {
	return f.FindByIDForAuthorFn(id, authorID)
}
func (f *fakeArticleRepo) Update(article *models.Article) error { return f.UpdateFn(article) }
func (f *fakeArticleRepo) FindWithFilter(filter repositories.ArticleFilter) ([]models.Article, int64, error) {
	return f.FindWithFilterFn(filter)
}

type fakeEventRepo struct {
	CreateFn                   func(event *models.Event) error
	FindByIDFn                 func(id string) (*models.Event, error)
	FindBySlugFn               func(slug string) (*models.Event, error)
	FindByIDForCreatorFn       func(id, creatorID string) (*models.Event, error)
	UpdateFn                   func(event *models.Event) error
	FindWithFilterFn           func(filter repositories.EventFilter) ([]models.Event, int64, error)
	CountActiveRegistrationsFn func(eventID string) (int64, error)
	CreateRegistrationFn       func(registration *models.EventRegistration, payment *models.Payment) error
	FindRegistrationByIDFn     func(id string) (*models.EventRegistration, error)
	ListRegistrationsByEventFn func(eventID string, page repositories.PageQuery) ([]models.EventRegistration, int64, error)
	FindRegistrationsByUserFn  func(userID string, page repositories.PageQuery) ([]models.EventRegistration, int64, error)
	RegistrationStatsFn        func(eventID string) (map[string]int64, error)
}

func (f *fakeEventRepo) Create(event *models.Event) error          { return f.CreateFn(event) }
func (f *fakeEventRepo) FindByID(id string) (*models.Event, error) { return f.FindByIDFn(id) }
func (f *fakeEventRepo) FindBySlug(slug string) (*models.Event, error) {
	return f.FindBySlugFn(slug)
}
func (f *fakeEventRepo) FindByIDForCreator(id, creatorID string) (*models.Event, error) {
	return f.FindByIDForCreatorFn(id, creatorID)
}
func (f *fakeEventRepo) Update(event *models.Event) error { return f.UpdateFn(event) }
func (f *fakeEventRepo) FindWithFilter(filter repositories.EventFilter) ([]models.Event, int64, error) {
	return f.FindWithFilterFn(filter)
}
func (f *fakeEventRepo) CountActiveRegistrations(eventID string) (int64, error) {
	return f.CountActiveRegistrationsFn(eventID)
}
func (f *fakeEventRepo) CreateRegistration(registration *models.EventRegistration, payment *models.Payment) error {
	return f.CreateRegistrationFn(registration, payment)
}
func (f *fakeEventRepo) FindRegistrationByID(id string) (*models.EventRegistration, error) {
	return f.FindRegistrationByIDFn(id)
}
func (f *fakeEventRepo) ListRegistrationsByEvent(eventID string, page repositories.PageQuery) ([]models.EventRegistration, int64, error) {
	return f.ListRegistrationsByEventFn(eventID, page)
}
func (f *fakeEventRepo) FindRegistrationsByUser(userID string, page repositories.PageQuery) ([]models.EventRegistration, int64, error) {
	return f.FindRegistrationsByUserFn(userID, page)
}
func (f *fakeEventRepo) RegistrationStats(eventID string) (map[string]int64, error) {
	return f.RegistrationStatsFn(eventID)
}

type fakePaymentRepo struct {
	CreateFn                 func(payment *models.Payment) error
	FindByIDFn               func(id string) (*models.Payment, error)
	UpdateProofFn            func(id string, referenceCode, screenshotURL *string) error
	VerifyWithRegistrationFn func(payment *models.Payment, registrationStatus models.RegistrationStatus) error
	FindWithFilterFn         func(filter repositories.PaymentFilter) ([]models.Payment, int64, error)
}

func (f *fakePaymentRepo) Create(payment *models.Payment) error { return f.CreateFn(payment) }
func (f *fakePaymentRepo) FindByID(id string) (*models.Payment, error) {
	return f.FindByIDFn(id)
}
func (f *fakePaymentRepo) UpdateProof(id string, referenceCode, screenshotURL *string) error {
	return f.UpdateProofFn(id, referenceCode, screenshotURL)
}
func (f *fakePaymentRepo) VerifyWithRegistration(payment *models.Payment, registrationStatus models.RegistrationStatus) error {
	return f.VerifyWithRegistrationFn(payment, registrationStatus)
}
func (f *fakePaymentRepo) FindWithFilter(filter repositories.PaymentFilter) ([]models.Payment, int64, error) {
	return f.FindWithFilterFn(filter)
}
