package handler

import (
	"net/http"

	"classbook/internal/usecase/user"
	"classbook/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler serves profile and admin user management.
type UserHandler struct {
	service *user.Service
}

func NewUserHandler(service *user.Service) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterProfileRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.POST("/change-password", h.ChangePassword)
	}
}

func (h *UserHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/users", h.GetAllUsers)
	router.DELETE("/users/:user_id", h.DeleteUser)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	req.Name = utils.SanitizeString(req.Name)

	profile, err := h.service.UpdateProfile(c.Request.Context(), identity.UserID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, profile)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req user.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), identity.UserID, &req); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"message": "Password changed"})
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.service.GetAllUsers(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, users)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user ID")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), userID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"message": "User deleted"})
}
