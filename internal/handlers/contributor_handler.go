package handlers

import (
	"github.com/gin-gonic/gin"

	"workhub_backend/internal/middleware"
	"workhub_backend/internal/services"
	"workhub_backend/internal/services/dto"
)

type ContributorHandler struct {
	*BaseHandler
	contributorService services.ContributorService
}

func NewContributorHandler(base *BaseHandler, contributorService services.ContributorService) *ContributorHandler {
	return &ContributorHandler{BaseHandler: base, contributorService: contributorService}
}

func (h *ContributorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	contributors := rg.Group("/contributors", middleware.AuthMiddleware())
	{
		contributors.POST("/apply", h.Apply)
		contributors.GET("/me", h.GetMine)
	}
}

func (h *ContributorHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyContributorRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.contributorService.Apply(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, "Contributor profile created", profile)
}

func (h *ContributorHandler) GetMine(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	profile, err := h.contributorService.GetMine(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Contributor profile retrieved", profile)
}
