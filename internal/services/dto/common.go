package dto

// ChangeStatusRequest is the body of every PATCH /:id/status endpoint.
// The allowed values depend on the entity and are checked by the status
// machine, not by tag validation.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListQuery carries the shared pagination/search query parameters.
type ListQuery struct {
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
	Query string `form:"q"`
}
