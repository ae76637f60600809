package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"print-kiosk-backend/internal/middleware"
	"print-kiosk-backend/internal/models"
	"print-kiosk-backend/internal/pricing"
	"print-kiosk-backend/internal/services"
)

type StaffHandler struct {
	service *services.OrderService
	logger  *zap.Logger
}

func NewStaffHandler(service *services.OrderService, logger *zap.Logger) *StaffHandler {
	return &StaffHandler{
		service: service,
		logger:  logger,
	}
}

// GetOrder godoc
// @Summary     Look up an order for pickup
// @Description Returns the full order for a pickup code with a short-lived download link to the stored PDF. When several orders share a code the most recent is returned.
// @Tags        staff
// @Produce     json
// @Security    Bearer
// @Param       code path string true "Pickup code"
// @Success     200 {object} models.StaffOrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /staff/orders/{code} [get]
func (h *StaffHandler) GetOrder(c *gin.Context) {
	order, err := h.service.GetOrder(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	downloadURL, err := h.service.DownloadURL(order)
	if err != nil {
		h.logger.Error("signing download url failed",
			zap.String("code", order.Code), zap.String("file_path", order.FilePath), zap.Error(err))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to create download link",
			Message: err.Error(),
		})
		return
	}

	h.logger.Info("staff order lookup",
		zap.String("code", order.Code), zap.String("staff_id", c.GetString(middleware.UserIDKey)))

	response := models.StaffOrderResponse{
		Success:     true,
		ID:          order.ID.String(),
		Code:        order.Code,
		FileName:    order.FileName,
		ColorMode:   order.ColorMode,
		Copies:      order.Copies,
		Pages:       order.Pages,
		AmountCents: order.AmountCents,
		Amount:      pricing.FormatRands(order.AmountCents),
		Status:      order.Status,
		PaidAt:      order.PaidAt,
		CreatedAt:   order.CreatedAt,
		DownloadURL: downloadURL,
	}
	if order.PaymentRef != nil {
		response.PaymentRef = *order.PaymentRef
	}
	c.JSON(http.StatusOK, response)
}
