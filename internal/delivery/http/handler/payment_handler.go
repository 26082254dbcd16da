package handler

import (
	"net/http"

	"classbook/internal/usecase/payment"
	"classbook/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler records provider-approved payments.
type PaymentHandler struct {
	service *payment.Service
}

func NewPaymentHandler(service *payment.Service) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) RegisterRoutes(router *gin.RouterGroup) {
	payments := router.Group("/payments")
	{
		payments.POST("/complete", h.Complete)
	}
}

func (h *PaymentHandler) Complete(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req payment.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.Complete(c.Request.Context(), identity.UserID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, created)
}
