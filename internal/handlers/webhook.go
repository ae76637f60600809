package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"print-kiosk-backend/internal/models"
	"print-kiosk-backend/internal/services"
)

type WebhookHandler struct {
	service *services.OrderService
	logger  *zap.Logger
}

func NewWebhookHandler(service *services.OrderService, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		service: service,
		logger:  logger,
	}
}

// HandleYocoWebhook godoc
// @Summary     Yoco payment webhook
// @Description Receives Yoco payment events. A succeeded event marks the matching order paid; any other status is acknowledged and ignored. Event authenticity is not verified.
// @Tags        webhooks
// @Accept      json
// @Produce     plain
// @Param       event body models.YocoWebhookEvent true "Yoco event"
// @Success     200 {string} string "OK or Ignored"
// @Failure     400 {string} string "Missing checkout id"
// @Failure     404 {string} string "Order not found"
// @Failure     500 {string} string "Failed to update order"
// @Router      /webhook/yoco [post]
func (h *WebhookHandler) HandleYocoWebhook(c *gin.Context) {
	var event models.YocoWebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		h.logger.Warn("unreadable webhook body", zap.Error(err))
		c.String(http.StatusBadRequest, "Invalid JSON")
		return
	}

	outcome, err := h.service.ConfirmPayment(c.Request.Context(), event)
	if err != nil {
		var validationErr *services.ValidationError
		var stepErr *services.StepError
		switch {
		case errors.As(err, &validationErr):
			c.String(http.StatusBadRequest, validationErr.Message)
		case errors.Is(err, models.ErrOrderNotFound):
			c.String(http.StatusNotFound, "Order not found")
		case errors.As(err, &stepErr):
			_ = c.Error(err)
			c.String(http.StatusInternalServerError, stepMessage(stepErr.Step))
		default:
			_ = c.Error(err)
			c.String(http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if outcome == services.OutcomeIgnored {
		c.String(http.StatusOK, "Ignored")
		return
	}
	c.String(http.StatusOK, "OK")
}
