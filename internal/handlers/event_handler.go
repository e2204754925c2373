package handlers

import (
	"github.com/gin-gonic/gin"

	"workhub_backend/internal/middleware"
	"workhub_backend/internal/services"
	"workhub_backend/internal/services/dto"
)

type EventHandler struct {
	*BaseHandler
	eventService services.EventService
}

func NewEventHandler(base *BaseHandler, eventService services.EventService) *EventHandler {
	return &EventHandler{BaseHandler: base, eventService: eventService}
}

func (h *EventHandler) RegisterRoutes(rg *gin.RouterGroup) {
	events := rg.Group("/events")
	{
		events.GET("", h.List)
		events.GET("/me/list", middleware.AuthMiddleware(), h.ListMine)
		events.GET("/:id", h.GetByIDOrSlug)
		events.POST("", middleware.AuthMiddleware(), h.Create)
		events.PATCH("/:id", middleware.AuthMiddleware(), h.Update)
		events.PATCH("/:id/status", middleware.AuthMiddleware(), h.ChangeStatus)

		events.POST("/:id/registrations", middleware.AuthMiddleware(), h.Register)
		events.GET("/:id/registrations", middleware.AuthMiddleware(), h.ListRegistrations)
		events.GET("/:id/registrations/stats", middleware.AuthMiddleware(), h.RegistrationStats)
	}

	rg.GET("/event-registrations/me", middleware.AuthMiddleware(), h.MyRegistrations)
}

func (h *EventHandler) List(c *gin.Context) {
	var query dto.EventListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	events, meta, err := h.eventService.ListPublic(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, 200, "Events retrieved", events, meta)
}

func (h *EventHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	var query dto.EventListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	events, meta, err := h.eventService.ListMine(userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, 200, "Events retrieved", events, meta)
}

func (h *EventHandler) GetByIDOrSlug(c *gin.Context) {
	event, err := h.eventService.GetByIDOrSlug(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Event retrieved", event)
}

func (h *EventHandler) Create(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	event, err := h.eventService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, "Event created successfully", event)
}

func (h *EventHandler) Update(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	event, err := h.eventService.Update(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Event updated", event)
}

func (h *EventHandler) ChangeStatus(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	event, err := h.eventService.ChangeStatus(c.Param("id"), userID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Event status updated", event)
}

func (h *EventHandler) Register(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	registration, err := h.eventService.Register(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, "Registration created", registration)
}

func (h *EventHandler) ListRegistrations(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	page := ParsePagination(c)
	registrations, meta, err := h.eventService.ListRegistrations(c.Param("id"), userID, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, 200, "Registrations retrieved", registrations, meta)
}

func (h *EventHandler) RegistrationStats(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	stats, err := h.eventService.RegistrationStats(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Registration stats retrieved", stats)
}

func (h *EventHandler) MyRegistrations(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	page := ParsePagination(c)
	registrations, meta, err := h.eventService.MyRegistrations(userID, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, 200, "Registrations retrieved", registrations, meta)
}
