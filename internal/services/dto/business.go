package dto

type CreateBusinessRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=150"`
	LogoURL     *string `json:"logoUrl" validate:"omitempty,url"`
	WebsiteURL  *string `json:"websiteUrl" validate:"omitempty,url"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type UpdateBusinessRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=150"`
	LogoURL     *string `json:"logoUrl" validate:"omitempty,url"`
	WebsiteURL  *string `json:"websiteUrl" validate:"omitempty,url"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type BusinessListQuery struct {
	ListQuery
	Status string `form:"status"`
}
