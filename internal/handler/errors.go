package handler

import (
	"errors"
	"net/http"

	apperrors "classroom-market/pkg/app_errors"
	"classroom-market/pkg/logger"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleError maps service errors to HTTP responses. Compensation and
// reversal failures are checked first because they also match their cause.
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(
		zap.String("operation", operation),
		zap.String("request_id", requestid.Get(c)),
		zap.Error(err),
	)
	switch {
	case errors.Is(err, apperrors.ErrCompensationFailed):
		log.Error("Purchase compensation failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Purchase failed and could not be fully rolled back, please tell your teacher",
		})
	case errors.Is(err, apperrors.ErrReversalFailed):
		log.Error("Purchase reversal failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Cancellation was only partly applied and needs manual reconciliation",
		})
	case errors.Is(err, apperrors.ErrRecordCreationFailed):
		log.Error("Purchase record creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Purchase could not be recorded, nothing was charged",
		})
	case errors.Is(err, apperrors.ErrStudentNotFound):
		log.Warn("Student not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Student not found",
		})
	case errors.Is(err, apperrors.ErrItemNotFound):
		log.Warn("Item not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found",
		})
	case errors.Is(err, apperrors.ErrPurchaseNotFound):
		log.Warn("Purchase not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Purchase not found",
		})
	case errors.Is(err, apperrors.ErrSoldOutConcurrent):
		log.Warn("Sold out during purchase")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Someone else bought the last one first",
		})
	case errors.Is(err, apperrors.ErrSoldOut):
		log.Warn("Sold out")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Item sold out",
		})
	case errors.Is(err, apperrors.ErrExceedsStock):
		log.Warn("Exceeds stock")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Not enough stock left for that many",
		})
	case errors.Is(err, apperrors.ErrInsufficientTickets):
		log.Warn("Insufficient tickets")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Not enough tickets",
		})
	case errors.Is(err, apperrors.ErrAlreadyDelivered):
		log.Warn("Already delivered")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Purchase already delivered, it can no longer be cancelled",
		})
	case errors.Is(err, apperrors.ErrNotDelivered):
		log.Warn("Not delivered")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Purchase not delivered yet, cancel it instead",
		})
	case errors.Is(err, apperrors.ErrEmptyCart):
		log.Warn("Empty cart")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cart is empty",
		})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, apperrors.ErrInvalidPassword):
		log.Warn("Invalid password")
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid password",
		})
	case errors.Is(err, apperrors.ErrUnauthorized):
		log.Warn("Unauthorized")
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
