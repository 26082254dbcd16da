package handler

import (
	"net/http"

	"classbook/internal/usecase/catalog"
	"classbook/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClassHandler serves the read-only class catalog.
type ClassHandler struct {
	service *catalog.Service
}

func NewClassHandler(service *catalog.Service) *ClassHandler {
	return &ClassHandler{service: service}
}

func (h *ClassHandler) RegisterRoutes(router *gin.RouterGroup) {
	classes := router.Group("/classes")
	{
		classes.GET("", h.ListClasses)
		classes.GET("/:class_id", h.GetClass)
		classes.GET("/:class_id/slots", h.ListSlots)
	}
}

func (h *ClassHandler) ListClasses(c *gin.Context) {
	classes, err := h.service.ListClasses(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, classes)
}

func (h *ClassHandler) GetClass(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("class_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid class ID")
		return
	}

	class, err := h.service.GetClass(c.Request.Context(), classID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, class)
}

func (h *ClassHandler) ListSlots(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("class_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid class ID")
		return
	}

	slots, err := h.service.ListSlots(c.Request.Context(), classID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, slots)
}
