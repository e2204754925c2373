package handlers

import (
	"github.com/gin-gonic/gin"

	"workhub_backend/internal/middleware"
	"workhub_backend/internal/models"
	"workhub_backend/internal/services"
	"workhub_backend/internal/services/dto"
)

// AdminHandler exposes the moderation surface; every route requires the
// ADMIN role.
type AdminHandler struct {
	*BaseHandler
	adminService    services.AdminService
	businessService services.BusinessService
	paymentService  services.PaymentService
}

func NewAdminHandler(
	base *BaseHandler,
	adminService services.AdminService,
	businessService services.BusinessService,
	paymentService services.PaymentService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:     base,
		adminService:    adminService,
		businessService: businessService,
		paymentService:  paymentService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin", middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin))
	{
		admin.GET("/users", h.ListUsers)
		admin.GET("/users/:id", h.GetUser)
		admin.PATCH("/users/:id/active", h.SetUserActive)

		admin.GET("/businesses", h.ListBusinesses)
		admin.PATCH("/businesses/:id/status", h.ReviewBusiness)

		admin.PATCH("/contributors/:id/status", h.SetContributorStatus)

		admin.GET("/jobs", h.ListJobs)
		admin.PATCH("/jobs/:id/status", h.ChangeJobStatus)

		admin.GET("/articles", h.ListArticles)
		admin.PATCH("/articles/:id/status", h.ChangeArticleStatus)

		admin.GET("/events", h.ListEvents)
		admin.PATCH("/events/:id/status", h.ChangeEventStatus)

		admin.GET("/payments", h.ListPayments)
		admin.GET("/payments/:id", h.GetPayment)
		admin.PATCH("/payments/:id/verify", h.VerifyPayment)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.UserListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	users, meta, err := h.adminService.ListUsers(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, 200, "Users retrieved", users, meta)
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	user, err := h.adminService.GetUser(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "User retrieved", user)
}

func (h *AdminHandler) SetUserActive(c *gin.Context) {
	var req dto.UpdateUserActiveRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.adminService.SetUserActive(c.Param("id"), *req.IsActive)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "User updated", user)
}

func (h *AdminHandler) ListBusinesses(c *gin.Context) {
	var query dto.BusinessListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	businesses, meta, err := h.businessService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, 200, "Businesses retrieved", businesses, meta)
}

func (h *AdminHandler) ReviewBusiness(c *gin.Context) {
	var req dto.ChangeStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	business, err := h.adminService.ReviewBusiness(c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Business status updated", business)
}

func (h *AdminHandler) SetContributorStatus(c *gin.Context) {
	var req dto.ChangeStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.adminService.SetContributorStatus(c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Contributor status updated", profile)
}

func (h *AdminHandler) ListJobs(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	jobs, meta, err := h.adminService.ListJobs(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, 200, "Jobs retrieved", jobs, meta)
}

func (h *AdminHandler) ChangeJobStatus(c *gin.Context) {
	var req dto.ChangeStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.adminService.ChangeJobStatus(c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Job status updated", job)
}

func (h *AdminHandler) ListArticles(c *gin.Context) {
	var query dto.ArticleListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	articles, meta, err := h.adminService.ListArticles(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, 200, "Articles retrieved", articles, meta)
}

func (h *AdminHandler) ChangeArticleStatus(c *gin.Context) {
	var req dto.ChangeStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	article, err := h.adminService.ChangeArticleStatus(c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Article status updated", article)
}

func (h *AdminHandler) ListEvents(c *gin.Context) {
	var query dto.EventListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	events, meta, err := h.adminService.ListEvents(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, 200, "Events retrieved", events, meta)
}

func (h *AdminHandler) ChangeEventStatus(c *gin.Context) {
	var req dto.ChangeStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	event, err := h.adminService.ChangeEventStatus(c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Event status updated", event)
}

func (h *AdminHandler) GetPayment(c *gin.Context) {
	payment, err := h.adminService.GetPayment(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Payment retrieved", payment)
}

func (h *AdminHandler) ListPayments(c *gin.Context) {
	var query dto.PaymentListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	payments, meta, err := h.adminService.ListPayments(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, 200, "Payments retrieved", payments, meta)
}

func (h *AdminHandler) VerifyPayment(c *gin.Context) {
	adminID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	var req dto.VerifyPaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	payment, err := h.paymentService.Verify(c.Param("id"), adminID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Payment verified", payment)
}
