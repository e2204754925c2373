package handlers

import (
	"github.com/gin-gonic/gin"

	"workhub_backend/internal/middleware"
	"workhub_backend/internal/services"
	"workhub_backend/internal/services/dto"
)

type JobApplicationHandler struct {
	*BaseHandler
	applicationService services.JobApplicationService
}

func NewJobApplicationHandler(base *BaseHandler, applicationService services.JobApplicationService) *JobApplicationHandler {
	return &JobApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

func (h *JobApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs/:id/applications")
	{
		// Guests may apply; OptionalAuth attaches identity when present.
		jobs.POST("", middleware.OptionalAuthMiddleware(), h.Apply)
		jobs.GET("", middleware.AuthMiddleware(), h.ListByJob)
	}

	rg.GET("/job-applications/:id", middleware.AuthMiddleware(), h.GetByID)
}

func (h *JobApplicationHandler) Apply(c *gin.Context) {
	var req dto.CreateJobApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	// Empty for guests.
	userID := middleware.GetUserID(c)

	application, err := h.applicationService.Apply(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, "Application submitted", application)
}

func (h *JobApplicationHandler) ListByJob(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	page := ParsePagination(c)
	applications, meta, err := h.applicationService.ListByJob(c.Param("id"), userID, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, 200, "Applications retrieved", applications, meta)
}

func (h *JobApplicationHandler) GetByID(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	application, err := h.applicationService.GetByID(c.Param("id"), userID, h.IsAdmin(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Application retrieved", application)
}
