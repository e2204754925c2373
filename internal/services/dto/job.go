package dto

import "time"

type CreateJobRequest struct {
	BusinessID     string   `json:"businessId" validate:"required,uuid"`
	Title          string   `json:"title" validate:"required,min=3,max=200"`
	LocationType   string   `json:"locationType" validate:"omitempty,oneof=ONSITE REMOTE HYBRID"`
	LocationText   string   `json:"locationText" validate:"omitempty,max=200"`
	EmploymentType string   `json:"employmentType" validate:"omitempty,is-employment-type"`
	SalaryMin      *float64 `json:"salaryMin" validate:"omitempty,gte=0"`
	SalaryMax      *float64 `json:"salaryMax" validate:"omitempty,gte=0"`
	Currency       string   `json:"currency" validate:"omitempty,len=3"`
	Description    string   `json:"description" validate:"required"`
	Requirements   string   `json:"requirements" validate:"omitempty"`

	ApplicationOptionPlatform bool    `json:"applicationOptionPlatform"`
	ApplicationOptionExternal bool    `json:"applicationOptionExternal"`
	ExternalApplyURL          *string `json:"externalApplyUrl" validate:"omitempty,url"`
	ExternalApplyEmail        *string `json:"externalApplyEmail" validate:"omitempty,email"`

	ExpiresAt *time.Time `json:"expiresAt"`
}

type UpdateJobRequest struct {
	Title          *string  `json:"title" validate:"omitempty,min=3,max=200"`
	LocationType   *string  `json:"locationType" validate:"omitempty,oneof=ONSITE REMOTE HYBRID"`
	LocationText   *string  `json:"locationText" validate:"omitempty,max=200"`
	EmploymentType *string  `json:"employmentType" validate:"omitempty,is-employment-type"`
	SalaryMin      *float64 `json:"salaryMin" validate:"omitempty,gte=0"`
	SalaryMax      *float64 `json:"salaryMax" validate:"omitempty,gte=0"`
	Currency       *string  `json:"currency" validate:"omitempty,len=3"`
	Description    *string  `json:"description"`
	Requirements   *string  `json:"requirements"`

	ApplicationOptionPlatform *bool   `json:"applicationOptionPlatform"`
	ApplicationOptionExternal *bool   `json:"applicationOptionExternal"`
	ExternalApplyURL          *string `json:"externalApplyUrl" validate:"omitempty,url"`
	ExternalApplyEmail        *string `json:"externalApplyEmail" validate:"omitempty,email"`

	ExpiresAt *time.Time `json:"expiresAt"`
}

type JobListQuery struct {
	ListQuery
	Status         string `form:"status"`
	BusinessID     string `form:"businessId"`
	LocationType   string `form:"locationType"`
	EmploymentType string `form:"employmentType"`
}
