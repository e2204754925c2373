package handlers

import (
	"github.com/gin-gonic/gin"

	"workhub_backend/internal/middleware"
	"workhub_backend/internal/models"
	"workhub_backend/internal/services"
	"workhub_backend/internal/services/dto"
)

type ArticleHandler struct {
	*BaseHandler
	articleService services.ArticleService
}

func NewArticleHandler(base *BaseHandler, articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{BaseHandler: base, articleService: articleService}
}

func (h *ArticleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	articles := rg.Group("/articles")
	{
		articles.GET("", h.List)
		articles.GET("/me/list", middleware.AuthMiddleware(), h.ListMine)
		articles.GET("/:id", h.GetByIDOrSlug)
		articles.POST("", middleware.AuthMiddleware(), h.Create)
		articles.PATCH("/:id", middleware.AuthMiddleware(), h.Update)
		// Moderation is an admin decision, not an author one.
		articles.PATCH("/:id/status",
			middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin), h.ChangeStatus)
	}
}

func (h *ArticleHandler) List(c *gin.Context) {
	var query dto.ArticleListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	articles, meta, err := h.articleService.ListPublic(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, 200, "Articles retrieved", articles, meta)
}

func (h *ArticleHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	var query dto.ArticleListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	articles, meta, err := h.articleService.ListMine(userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, 200, "Articles retrieved", articles, meta)
}

func (h *ArticleHandler) GetByIDOrSlug(c *gin.Context) {
	article, err := h.articleService.GetByIDOrSlug(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Article retrieved", article)
}

func (h *ArticleHandler) Create(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	var req dto.CreateArticleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	article, err := h.articleService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, "Article created successfully", article)
}

func (h *ArticleHandler) Update(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateArticleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	article, err := h.articleService.Update(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Article updated", article)
}

func (h *ArticleHandler) ChangeStatus(c *gin.Context) {
	var req dto.ChangeStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	article, err := h.articleService.ChangeStatus(c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Article status updated", article)
}
