package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/communication-service/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	errInternalServer     = "Internal server error"
	errInvalidCredentials = "Invalid credentials"
	errTokenInvalid       = "Token is invalid or expired"
	errUserNotFound       = "User not found"
	errEmailTaken         = "User with this email already exists"
	errCustomerNotFound   = "Customer not found"
	errTemplateNotFound   = "Template not found"
	errMailDelivery       = "Email could not be delivered"
	errInvalidInput       = "Invalid input"
)

// writeError maps domain errors onto status codes. Anything unrecognised is
// logged and reported as a 500 without detail.
func writeError(ctx *gin.Context, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errInvalidInput})
	case errors.Is(err, domain.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": errUserNotFound})
	case errors.Is(err, domain.ErrCustomerNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": errCustomerNotFound})
	case errors.Is(err, domain.ErrTemplateNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": errTemplateNotFound})
	case errors.Is(err, domain.ErrEmailTaken):
		ctx.JSON(http.StatusConflict, gin.H{"error": errEmailTaken})
	case errors.Is(err, domain.ErrMailDelivery):
		logger.WarnContext(ctx.Request.Context(), op, "error", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": errMailDelivery})
	default:
		logger.ErrorContext(ctx.Request.Context(), op, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
	}
}
