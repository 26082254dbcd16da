package handler

import (
	"net/http"

	"classbook/internal/usecase/reservation"
	"classbook/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReservationHandler serves booking, cancellation and the student schedule.
type ReservationHandler struct {
	service *reservation.Service
}

func NewReservationHandler(service *reservation.Service) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) RegisterRoutes(router *gin.RouterGroup) {
	reservations := router.Group("/reservations")
	{
		reservations.POST("", h.Create)
		reservations.PATCH("/:reservation_id/cancel", h.Cancel)
		reservations.GET("/my", h.MySchedule)
	}
}

func (h *ReservationHandler) Create(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req reservation.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if req.TimeSlotID == uuid.Nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "time_slot_id is required")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.TimeSlotID, identity.UserID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, created)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	reservationID, err := uuid.Parse(c.Param("reservation_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation ID")
		return
	}

	cancelled, err := h.service.Cancel(c.Request.Context(), reservationID, identity.UserID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, cancelled)
}

func (h *ReservationHandler) MySchedule(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	schedule, err := h.service.MySchedule(c.Request.Context(), identity.UserID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, schedule)
}
