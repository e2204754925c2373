package models

import "time"

// JobStatus is a seeded reference table (ACTIVE / SUSPENDED / ARCHIVED),
// not an inline enum, so labels and descriptions can be edited without a
// migration.
type JobStatus struct {
	BaseModel
	Code        string `gorm:"uniqueIndex;not null" json:"code"`
	Label       string `gorm:"not null" json:"label"`
	Description string `json:"description"`
}

type JobPost struct {
	BaseModel
	BusinessID  string `gorm:"not null;index" json:"businessId"`
	JobStatusID string `gorm:"not null;index" json:"jobStatusId"`
	Title       string `gorm:"not null" json:"title"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`

	LocationType   string   `json:"locationType"`
	LocationText   string   `json:"locationText"`
	EmploymentType string   `gorm:"index" json:"employmentType"`
	SalaryMin      *float64 `json:"salaryMin"`
	SalaryMax      *float64 `json:"salaryMax"`
	Currency       string   `json:"currency"`
	Description    string   `json:"description"`
	Requirements   string   `json:"requirements"`

	ApplicationOptionPlatform bool    `gorm:"default:false" json:"applicationOptionPlatform"`
	ApplicationOptionExternal bool    `gorm:"default:false" json:"applicationOptionExternal"`
	ExternalApplyURL          *string `json:"externalApplyUrl"`
	ExternalApplyEmail        *string `json:"externalApplyEmail"`

	PublishedAt *time.Time `json:"publishedAt"`
	ExpiresAt   *time.Time `json:"expiresAt"`

	Business  *Business  `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
	JobStatus *JobStatus `gorm:"foreignKey:JobStatusID" json:"jobStatus,omitempty"`
}

type JobApplication struct {
	BaseModel
	JobPostID string  `gorm:"not null;index" json:"jobPostId"`
	UserID    *string `gorm:"index" json:"userId"`

	// Guest applicants have no UserID and identify themselves instead.
	ApplicantName  *string `json:"applicantName"`
	ApplicantEmail *string `json:"applicantEmail"`

	ApplicationMethod ApplicationMethod `gorm:"type:varchar(20);not null" json:"applicationMethod"`
	Status            ApplicationStatus `gorm:"type:varchar(20);not null" json:"status"`

	CVUrl        *string `json:"cvUrl"`
	ResumeURL    *string `json:"resumeUrl"`
	PortfolioURL *string `json:"portfolioUrl"`
	CoverLetter  *string `json:"coverLetter"`

	ExternalTarget      *string    `json:"externalTarget"`
	ExternalDestination *string    `json:"externalDestination"`
	ExternalClickedAt   *time.Time `json:"externalClickedAt"`

	JobPost *JobPost `gorm:"foreignKey:JobPostID" json:"jobPost,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
