package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/apperrors"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/services"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/middleware"
)

// respondServiceError maps service errors onto HTTP status codes.
// Validation problems are 400, missing resources 404, lock/serialization
// conflicts 409, business-rule violations 422, everything else 500.
func respondServiceError(c *gin.Context, err error, fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, services.ErrAccountNotFound),
		errors.Is(err, services.ErrDocumentNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInsufficientStock),
		errors.Is(err, services.ErrSameAccount),
		errors.Is(err, services.ErrAccountInactive),
		errors.Is(err, services.ErrNonPositiveAmount),
		errors.Is(err, services.ErrDocumentClosed),
		errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrOverPayment),
		errors.Is(err, services.ErrProductInactive),
		errors.Is(err, services.ErrUntrackedProduct),
		errors.Is(err, services.ErrZeroTotal):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
