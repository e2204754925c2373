package handlers

import (
	"github.com/gin-gonic/gin"

	"workhub_backend/internal/middleware"
	"workhub_backend/internal/services"
	"workhub_backend/internal/services/dto"
)

type BusinessHandler struct {
	*BaseHandler
	businessService services.BusinessService
}

func NewBusinessHandler(base *BaseHandler, businessService services.BusinessService) *BusinessHandler {
	return &BusinessHandler{BaseHandler: base, businessService: businessService}
}

func (h *BusinessHandler) RegisterRoutes(rg *gin.RouterGroup) {
	businesses := rg.Group("/businesses")
	{
		businesses.POST("", middleware.AuthMiddleware(), h.Create)
		businesses.GET("/me", middleware.AuthMiddleware(), h.ListMine)
		businesses.GET("/:id", h.GetByID)
		businesses.PATCH("/:id", middleware.AuthMiddleware(), h.Update)
	}
}

func (h *BusinessHandler) Create(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBusinessRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	business, err := h.businessService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, "Business created successfully", business)
}

func (h *BusinessHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	page := ParsePagination(c)
	businesses, meta, err := h.businessService.ListMine(userID, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, 200, "Businesses retrieved", businesses, meta)
}

func (h *BusinessHandler) GetByID(c *gin.Context) {
	business, err := h.businessService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Business retrieved", business)
}

func (h *BusinessHandler) Update(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateBusinessRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	business, err := h.businessService.Update(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Business updated", business)
}
