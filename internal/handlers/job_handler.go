package handlers

import (
	"github.com/gin-gonic/gin"

	"workhub_backend/internal/middleware"
	"workhub_backend/internal/services"
	"workhub_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.List)
		jobs.GET("/me/list", middleware.AuthMiddleware(), h.ListMine)
		jobs.GET("/:id", h.GetByIDOrSlug)
		jobs.POST("", middleware.AuthMiddleware(), h.Create)
		jobs.PATCH("/:id", middleware.AuthMiddleware(), h.Update)
		jobs.PATCH("/:id/status", middleware.AuthMiddleware(), h.ChangeStatus)
	}
}

func (h *JobHandler) List(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	jobs, meta, err := h.jobService.ListPublic(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, 200, "Jobs retrieved", jobs, meta)
}

func (h *JobHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	jobs, meta, err := h.jobService.ListMine(userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, 200, "Jobs retrieved", jobs, meta)
}

func (h *JobHandler) GetByIDOrSlug(c *gin.Context) {
	job, err := h.jobService.GetByIDOrSlug(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Job retrieved", job)
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, "Job created successfully", job)
}

func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Job updated", job)
}

func (h *JobHandler) ChangeStatus(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.ChangeStatus(c.Param("id"), userID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Job status updated", job)
}
