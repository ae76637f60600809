package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"print-kiosk-backend/internal/config"
	"print-kiosk-backend/internal/models"
	"print-kiosk-backend/internal/services"
)

// multipartOverhead is allowed on top of MaxUploadBytes for boundaries and
// the small text fields.
const multipartOverhead = 1 << 20

var errFileTooLarge = errors.New("File too large")

type OrdersHandler struct {
	service        *services.OrderService
	maxUploadBytes int64
	logger         *zap.Logger
}

func NewOrdersHandler(cfg *config.Config, service *services.OrderService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		service:        service,
		maxUploadBytes: cfg.MaxUploadBytes,
		logger:         logger,
	}
}

// CreateOrder godoc
// @Summary     Create a print order
// @Description Uploads a PDF, prices it by page count, copies and colour mode, stores it and opens a Yoco checkout. The returned code is the customer's pickup code.
// @Tags        orders
// @Accept      multipart/form-data
// @Produce     json
// @Param       file       formData file   true  "PDF to print"
// @Param       color_mode formData string false "bw or color (default bw)"
// @Param       copies     formData string false "Number of copies (default 1, at most MAX_COPIES)"
// @Success     200 {object} models.CreateOrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     429 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /create-order [post]
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	file, err := h.readUpload(c)
	if err != nil {
		h.logger.Info("rejected upload", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	result, err := h.service.CreateOrder(c.Request.Context(), models.CreateOrderRequest{
		File:      file,
		ColorMode: c.PostForm("color_mode"),
		Copies:    c.PostForm("copies"),
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	order := result.Order
	c.JSON(http.StatusOK, models.CreateOrderResponse{
		Success:     true,
		Code:        order.Code,
		Pages:       order.Pages,
		Copies:      order.Copies,
		AmountCents: order.AmountCents,
		PayURL:      result.PayURL,
	})
}

// CreateOrderTest godoc
// @Summary     Echo a create-order form
// @Description Parses the same multipart form as /create-order and echoes what it received. Nothing is stored and no checkout is created.
// @Tags        diagnostics
// @Accept      multipart/form-data
// @Produce     json
// @Param       file       formData file   false "Any file"
// @Param       color_mode formData string false "Echoed as sent"
// @Param       copies     formData string false "Echoed as sent"
// @Success     200 {object} models.CreateOrderEchoResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /create-order-test [post]
func (h *OrdersHandler) CreateOrderTest(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)

	var response models.CreateOrderEchoResponse

	header, err := c.FormFile("file")
	switch {
	case err == nil:
		response.FileName = header.Filename
		response.FileSize = header.Size
	case isMissingFile(err):
	case isTooLarge(err):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: errFileTooLarge.Error()})
		return
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: "Invalid form data", Message: err.Error()})
		return
	}

	response.Success = true
	response.ColorMode = c.PostForm("color_mode")
	response.Copies = c.PostForm("copies")
	c.JSON(http.StatusOK, response)
}

// TestEcho godoc
// @Summary     Echo a JSON body
// @Description Connectivity check for the kiosk front-end. Any JSON object sent is returned under body.
// @Tags        diagnostics
// @Accept      json
// @Produce     json
// @Success     200 {object} models.EchoResponse
// @Router      /test [post]
func (h *OrdersHandler) TestEcho(c *gin.Context) {
	var body map[string]any
	// The body is optional and returned only when it is a JSON object
	_ = c.ShouldBindJSON(&body)

	c.JSON(http.StatusOK, models.EchoResponse{
		Success: true,
		Message: "Test route working",
		Body:    body,
	})
}

// GetOrderStatus godoc
// @Summary     Get order status
// @Description Returns the payment status of the most recent order with the given pickup code. Used by the kiosk after the checkout redirect.
// @Tags        orders
// @Produce     json
// @Param       code path string true "Pickup code"
// @Success     200 {object} models.OrderStatusResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders/{code} [get]
func (h *OrdersHandler) GetOrderStatus(c *gin.Context) {
	order, err := h.service.GetOrder(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OrderStatusResponse{
		Success:     true,
		Code:        order.Code,
		Status:      order.Status,
		Pages:       order.Pages,
		Copies:      order.Copies,
		AmountCents: order.AmountCents,
		PaidAt:      order.PaidAt,
	})
}

// readUpload returns the uploaded file, or nil when the form has none.
func (h *OrdersHandler) readUpload(c *gin.Context) (*models.UploadedFile, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		if isMissingFile(err) {
			return nil, nil
		}
		if isTooLarge(err) {
			return nil, errFileTooLarge
		}
		return nil, errors.New("Invalid form data")
	}
	if header.Size > h.maxUploadBytes {
		return nil, errFileTooLarge
	}

	data, err := readFileHeader(header)
	if err != nil {
		return nil, err
	}
	return &models.UploadedFile{Name: header.Filename, Data: data}, nil
}

func readFileHeader(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, errors.New("Failed to read uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.New("Failed to read uploaded file")
	}
	return data, nil
}

func isMissingFile(err error) bool {
	return errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart)
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
