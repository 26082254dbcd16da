package handler

import (
	"errors"
	"net/http"

	domainCatalog "classbook/internal/domain/catalog"
	domainPayment "classbook/internal/domain/payment"
	domainReservation "classbook/internal/domain/reservation"
	domainUser "classbook/internal/domain/user"
	"classbook/internal/logger"
	"classbook/internal/middleware"
	"classbook/internal/usecase/user"
	appErrors "classbook/pkg/errors"
	"classbook/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondWithError maps typed business errors onto HTTP statuses and
// envelope codes. Anything unmapped is logged and surfaced as a generic 500.
func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, domainUser.ErrDuplicateEmail):
		utils.ErrorResponse(c, http.StatusConflict, "DUPLICATE_EMAIL", err.Error())
	case errors.Is(err, appErrors.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
	case errors.Is(err, appErrors.ErrExpiredToken):
		utils.ErrorResponse(c, http.StatusUnauthorized, "EXPIRED_TOKEN", err.Error())
	case errors.Is(err, appErrors.ErrInvalidToken):
		utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_TOKEN", err.Error())
	case errors.Is(err, appErrors.ErrInvalidRefreshToken):
		utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_REFRESH_TOKEN", err.Error())
	case errors.Is(err, domainUser.ErrUserNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "USER_NOT_FOUND", err.Error())
	case errors.Is(err, domainCatalog.ErrClassNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "CLASS_NOT_FOUND", err.Error())
	case errors.Is(err, domainCatalog.ErrSlotNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "SLOT_NOT_FOUND", err.Error())
	case errors.Is(err, domainReservation.ErrReservationNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "RESERVATION_NOT_FOUND", err.Error())
	case errors.Is(err, domainReservation.ErrAlreadyReserved):
		utils.ErrorResponse(c, http.StatusBadRequest, "ALREADY_RESERVED", err.Error())
	case errors.Is(err, domainReservation.ErrCapacityExceeded):
		utils.ErrorResponse(c, http.StatusBadRequest, "CAPACITY_EXCEEDED", err.Error())
	case errors.Is(err, domainReservation.ErrAlreadyCancelled):
		utils.ErrorResponse(c, http.StatusBadRequest, "ALREADY_CANCELLED", err.Error())
	case errors.Is(err, domainReservation.ErrNotConfirmed):
		utils.ErrorResponse(c, http.StatusBadRequest, "NOT_CONFIRMED", err.Error())
	case errors.Is(err, domainReservation.ErrNotOwner):
		utils.ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, domainPayment.ErrInvalidPayload):
		utils.ErrorResponse(c, http.StatusBadRequest, "INVALID_PAYMENT", err.Error())
	case errors.Is(err, appErrors.ErrWeakPassword):
		utils.ErrorResponse(c, http.StatusBadRequest, "WEAK_PASSWORD", err.Error())
	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Code, appErr.Message)
			return
		}

		logger.Error("Internal server error",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

// requireIdentity reads the identity set by the auth middleware, answering
// 401 itself when it is missing.
func requireIdentity(c *gin.Context) (user.Identity, bool) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return user.Identity{}, false
	}
	return identity, true
}
