package dto

type UpdateUserActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type UserListQuery struct {
	ListQuery
	IsActive *bool  `form:"isActive"`
	Role     string `form:"role"`
}
