package handler

import (
	"net/http"

	"classbook/internal/usecase/teacher"
	"classbook/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeacherHandler serves the teacher-facing schedule views.
type TeacherHandler struct {
	service *teacher.Service
}

func NewTeacherHandler(service *teacher.Service) *TeacherHandler {
	return &TeacherHandler{service: service}
}

func (h *TeacherHandler) RegisterRoutes(router *gin.RouterGroup) {
	teachers := router.Group("/teachers")
	{
		teachers.GET("/my-schedule", h.MySchedule)
		teachers.GET("/schedule/:time_id/students", h.EnrolledStudents)
	}
}

func (h *TeacherHandler) MySchedule(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	schedule, err := h.service.Schedule(c.Request.Context(), identity.UserID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, schedule)
}

func (h *TeacherHandler) EnrolledStudents(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	slotID, err := uuid.Parse(c.Param("time_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid time slot ID")
		return
	}

	students, err := h.service.EnrolledStudents(c.Request.Context(), identity.UserID, slotID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, students)
}
