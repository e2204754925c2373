package dto

// CreateJobApplicationRequest covers both application methods. PLATFORM
// requires cvUrl and portfolioUrl; EXTERNAL requires the click-through
// target and destination. Guests must identify themselves with name and
// email.
type CreateJobApplicationRequest struct {
	ApplicationMethod string `json:"applicationMethod" validate:"required,is-application-method"`

	ApplicantName  *string `json:"applicantName" validate:"omitempty,min=2,max=100"`
	ApplicantEmail *string `json:"applicantEmail" validate:"omitempty,email"`

	CVUrl        *string `json:"cvUrl" validate:"omitempty,url"`
	ResumeURL    *string `json:"resumeUrl" validate:"omitempty,url"`
	PortfolioURL *string `json:"portfolioUrl" validate:"omitempty,url"`
	CoverLetter  *string `json:"coverLetter" validate:"omitempty,max=5000"`

	ExternalTarget      *string `json:"externalTarget" validate:"omitempty,oneof=URL EMAIL"`
	ExternalDestination *string `json:"externalDestination" validate:"omitempty,max=500"`
}
