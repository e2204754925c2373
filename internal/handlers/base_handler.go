package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"workhub_backend/internal/logger"
	"workhub_backend/internal/middleware"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/validator"
	"workhub_backend/pkg/apperrors"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// Envelope is the body of every successful response:
// {success:true, code, message, data, meta}.
type Envelope struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// Success writes the standard envelope. meta is nil for single objects.
func (h *BaseHandler) Success(c *gin.Context, httpCode int, message string, data interface{}, meta interface{}) {
	c.JSON(httpCode, Envelope{
		Success: true,
		Code:    httpCode,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind json body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	return h.runValidation(c, obj)
}

func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}

	return h.runValidation(c, obj)
}

func (h *BaseHandler) runValidation(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	err := h.validator.Validate(obj)
	if err == nil {
		return true
	}

	if vErr, ok := err.(*validator.ValidationError); ok {
		logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ValidationError(fieldDetails(vErr)...))
	} else {
		logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
	return false
}

// fieldDetails flattens the validator map into the wire detail list in a
// stable order.
func fieldDetails(vErr *validator.ValidationError) []apperrors.FieldDetail {
	fields := make([]string, 0, len(vErr.Errors))
	for field := range vErr.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]apperrors.FieldDetail, 0, len(fields))
	for _, field := range fields {
		details = append(details, apperrors.FieldDetail{Field: field, Message: vErr.Errors[field]})
	}
	return details
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "service error",
			"error", appErr.Message,
			"code", appErr.Code,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// GetAuthUserID returns the authenticated user id or answers 401.
func (h *BaseHandler) GetAuthUserID(c *gin.Context) (string, bool) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		logger.CtxWarn(c.Request.Context(), "unauthorized access",
			"path", c.Request.URL.Path, "ip", c.ClientIP())
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return "", false
	}
	return userID, true
}

// IsAdmin reports whether the current principal holds the ADMIN role.
func (h *BaseHandler) IsAdmin(c *gin.Context) bool {
	for _, role := range middleware.GetRoles(c) {
		if role == "ADMIN" {
			return true
		}
	}
	return false
}

// ParsePagination reads page/limit query params, defaults applied by
// PageQuery.Normalize.
func ParsePagination(c *gin.Context) repositories.PageQuery {
	var page repositories.PageQuery
	_ = c.ShouldBindQuery(&page)
	page.Normalize()
	return page
}

// Created is the common 201 shortcut.
func (h *BaseHandler) Created(c *gin.Context, message string, data interface{}) {
	h.Success(c, http.StatusCreated, message, data, nil)
}

// OK is the common 200 shortcut.
func (h *BaseHandler) OK(c *gin.Context, message string, data interface{}) {
	h.Success(c, http.StatusOK, message, data, nil)
}
