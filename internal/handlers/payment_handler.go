package handlers

import (
	"github.com/gin-gonic/gin"

	"workhub_backend/internal/middleware"
	"workhub_backend/internal/services"
	"workhub_backend/internal/services/dto"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{BaseHandler: base, paymentService: paymentService}
}

func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments", middleware.AuthMiddleware())
	{
		payments.GET("/me", h.ListMine)
		payments.GET("/events/:id", h.ListByEvent)
		payments.PATCH("/:id/proof", h.AttachProof)
	}
}

func (h *PaymentHandler) AttachProof(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	var req dto.AttachPaymentProofRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	payment, err := h.paymentService.AttachProof(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, "Payment proof attached", payment)
}

func (h *PaymentHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	var query dto.PaymentListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	payments, meta, err := h.paymentService.ListMine(userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, 200, "Payments retrieved", payments, meta)
}

func (h *PaymentHandler) ListByEvent(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	page := ParsePagination(c)
	payments, meta, err := h.paymentService.ListByEvent(c.Param("id"), userID, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, 200, "Payments retrieved", payments, meta)
}
