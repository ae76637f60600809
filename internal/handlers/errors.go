package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"print-kiosk-backend/internal/models"
	"print-kiosk-backend/internal/services"
)

var stepMessages = map[string]string{
	services.StepUploadFile:       "Failed to upload file",
	services.StepInsertOrder:      "Failed to create order",
	services.StepCreateCheckout:   "Failed to create checkout",
	services.StepAttachPaymentRef: "Failed to save payment reference",
	services.StepLookupOrder:      "Failed to look up order",
	services.StepMarkPaid:         "Failed to update order",
}

// writeServiceError maps workflow errors onto the JSON error envelope.
func writeServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: validationErr.Message})
		return
	}

	if errors.Is(err, models.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Error: "Order not found"})
		return
	}

	_ = c.Error(err)

	var stepErr *services.StepError
	if errors.As(err, &stepErr) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   stepMessage(stepErr.Step),
			Message: stepErr.Err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Error:   "Internal server error",
		Message: err.Error(),
	})
}

func stepMessage(step string) string {
	if msg, ok := stepMessages[step]; ok {
		return msg
	}
	return "Internal server error"
}
