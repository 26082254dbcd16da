package handler

import (
	"net/http"

	"classbook/internal/usecase/user"
	"classbook/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves signup, login, token refresh and logout.
type AuthHandler struct {
	service *user.Service
}

func NewAuthHandler(service *user.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.SignUp)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
	}
}

func (h *AuthHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req user.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)
	req.Name = utils.SanitizeString(req.Name)

	created, err := h.service.SignUp(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, created)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)

	authResponse, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, authResponse)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req user.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	tokenPair, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, tokenPair)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := h.service.Logout(c.Request.Context(), identity.UserID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// Me echoes the identity carried by the verified access token.
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	utils.SuccessResponse(c, http.StatusOK, identity)
}
