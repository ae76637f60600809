package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"print-kiosk-backend/internal/config"
	"print-kiosk-backend/internal/events"
	"print-kiosk-backend/internal/models"
	"print-kiosk-backend/internal/pdf"
	"print-kiosk-backend/internal/pickupcode"
	"print-kiosk-backend/internal/pricing"
	"print-kiosk-backend/internal/yoco"
)

const (
	// MaxCodeAttempts bounds the uniqueness checks for a new pickup code.
	MaxCodeAttempts = 5
	Currency        = "ZAR"
	PDFContentType  = "application/pdf"
)

type OrderStore interface {
	CodeExists(ctx context.Context, code string) (bool, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	SetPaymentRef(ctx context.Context, orderID uuid.UUID, paymentRef string) error
	// MarkPaid reports whether this call moved the order to paid; false means
	// another writer already had.
	MarkPaid(ctx context.Context, orderID uuid.UUID, paidAt time.Time) (bool, error)
	GetOrderByCode(ctx context.Context, code string) (*models.Order, error)
	GetOrderByPaymentRef(ctx context.Context, paymentRef string) (*models.Order, error)
}

type FileStore interface {
	Bucket() string
	UploadFile(storagePath string, data []byte, contentType string) error
	SignedURL(storagePath string, expiresInSeconds int) (string, error)
}

type CheckoutClient interface {
	CreateCheckout(ctx context.Context, req yoco.CheckoutRequest) (*yoco.Checkout, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type CreateOrderResult struct {
	Order  *models.Order
	PayURL string
}

type ConfirmOutcome string

const (
	OutcomePaid        ConfirmOutcome = "paid"
	OutcomeAlreadyPaid ConfirmOutcome = "already_paid"
	OutcomeIgnored     ConfirmOutcome = "ignored"
)

type OrderService struct {
	store      OrderStore
	files      FileStore
	checkout   CheckoutClient
	publisher  EventPublisher
	calculator *pricing.Calculator
	logger     *zap.Logger

	baseURL      string
	signedURLTTL int
	maxCopies    int

	now     func() time.Time
	newCode func() string
}

type Option func(*OrderService)

func WithClock(now func() time.Time) Option {
	return func(s *OrderService) { s.now = now }
}

func WithCodeGenerator(gen func() string) Option {
	return func(s *OrderService) { s.newCode = gen }
}

func NewOrderService(
	cfg *config.Config,
	store OrderStore,
	files FileStore,
	checkout CheckoutClient,
	publisher EventPublisher,
	logger *zap.Logger,
	opts ...Option,
) *OrderService {
	s := &OrderService{
		store:     store,
		files:     files,
		checkout:  checkout,
		publisher: publisher,
		calculator: pricing.NewCalculator(pricing.Rates{
			BWCents:    cfg.PriceBWCents,
			ColorCents: cfg.PriceColorCents,
		}),
		logger:       logger,
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		signedURLTTL: cfg.SignedURLTTLSeconds,
		maxCopies:    cfg.MaxCopies,
		now:          time.Now,
		newCode:      pickupcode.Generate,
	}
	if s.maxCopies <= 0 {
		s.maxCopies = math.MaxInt32
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder validates the upload, prices it, stores the file, inserts the
// order and opens a hosted checkout. The steps are not transactional: a
// failure after the upload leaves the file behind, and a failure after the
// insert leaves the row in pending_payment.
func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*CreateOrderResult, error) {
	if req.File == nil {
		return nil, &ValidationError{Message: "No file uploaded"}
	}
	if strings.ToLower(filepath.Ext(req.File.Name)) != ".pdf" {
		return nil, &ValidationError{Message: "Only PDF files are allowed"}
	}
	colorMode, err := ParseColorMode(req.ColorMode)
	if err != nil {
		return nil, err
	}
	copies, err := ParseCopies(req.Copies, s.maxCopies)
	if err != nil {
		return nil, err
	}

	pages := pdf.CountPages(req.File.Data)
	amount, err := s.calculator.Price(pages, copies, colorMode)
	if err != nil {
		s.logger.Info("order rejected at pricing",
			zap.Int("pages", pages), zap.Int("copies", copies), zap.Error(err))
		return nil, &ValidationError{Message: "Order total is too large"}
	}

	code := s.generateUniqueCode(ctx)
	fileName := SanitizeFileName(req.File.Name)
	storagePath := fmt.Sprintf("%s/%d_%s", code, s.now().UnixMilli(), fileName)

	log := s.logger.With(zap.String("code", code), zap.String("file_path", storagePath))

	if err := s.files.UploadFile(storagePath, req.File.Data, PDFContentType); err != nil {
		log.Error("file upload failed", zap.String("step", StepUploadFile), zap.Error(err))
		return nil, &StepError{Step: StepUploadFile, Err: err}
	}

	order := &models.Order{
		ID:          uuid.New(),
		Code:        code,
		Bucket:      s.files.Bucket(),
		FilePath:    storagePath,
		FileName:    fileName,
		ColorMode:   colorMode,
		Copies:      copies,
		Pages:       pages,
		AmountCents: amount,
		Status:      models.StatusPendingPayment,
	}
	log = log.With(zap.String("order_id", order.ID.String()))

	if err := s.store.CreateOrder(ctx, order); err != nil {
		log.Error("order insert failed, uploaded file is orphaned", zap.String("step", StepInsertOrder), zap.Error(err))
		return nil, &StepError{Step: StepInsertOrder, Err: err}
	}

	checkout, err := s.checkout.CreateCheckout(ctx, s.checkoutRequest(order))
	if err != nil {
		log.Error("checkout creation failed, order left pending", zap.String("step", StepCreateCheckout), zap.Error(err))
		return nil, &StepError{Step: StepCreateCheckout, Err: err}
	}

	if err := s.store.SetPaymentRef(ctx, order.ID, checkout.ID); err != nil {
		log.Error("attaching payment ref failed", zap.String("step", StepAttachPaymentRef),
			zap.String("payment_ref", checkout.ID), zap.Error(err))
		return nil, &StepError{Step: StepAttachPaymentRef, Err: err}
	}
	order.PaymentRef = &checkout.ID

	s.publish(ctx, events.OrderCreated, order)

	log.Info("order created",
		zap.Int("pages", pages),
		zap.Int("copies", copies),
		zap.String("color_mode", string(colorMode)),
		zap.Int64("amount_cents", amount),
		zap.String("payment_ref", checkout.ID),
	)

	return &CreateOrderResult{Order: order, PayURL: checkout.RedirectURL}, nil
}

// ConfirmPayment applies a payment provider event. The event is trusted as
// received: its origin is not verified.
func (s *OrderService) ConfirmPayment(ctx context.Context, event models.YocoWebhookEvent) (ConfirmOutcome, error) {
	checkoutID := strings.TrimSpace(event.Payload.ID)
	if checkoutID == "" {
		return "", &ValidationError{Message: "Missing checkout id"}
	}

	log := s.logger.With(zap.String("payment_ref", checkoutID), zap.String("payment_status", event.Payload.Status))

	if event.Payload.Status != yoco.StatusSucceeded {
		log.Info("payment event ignored")
		return OutcomeIgnored, nil
	}

	order, err := s.store.GetOrderByPaymentRef(ctx, checkoutID)
	if errors.Is(err, models.ErrOrderNotFound) {
		log.Warn("payment event for unknown checkout")
		return "", err
	}
	if err != nil {
		log.Error("order lookup failed", zap.String("step", StepLookupOrder), zap.Error(err))
		return "", &StepError{Step: StepLookupOrder, Err: err}
	}

	log = log.With(zap.String("code", order.Code), zap.String("order_id", order.ID.String()))

	if order.Status == models.StatusPaid {
		log.Info("order already paid")
		return OutcomeAlreadyPaid, nil
	}
	if !order.Status.CanTransitionTo(models.StatusPaid) {
		err := fmt.Errorf("order in status %q cannot be marked paid", order.Status)
		log.Error("invalid status transition", zap.String("step", StepMarkPaid), zap.Error(err))
		return "", &StepError{Step: StepMarkPaid, Err: err}
	}

	paidAt := s.now().UTC()
	changed, err := s.store.MarkPaid(ctx, order.ID, paidAt)
	if err != nil {
		log.Error("marking order paid failed", zap.String("step", StepMarkPaid), zap.Error(err))
		return "", &StepError{Step: StepMarkPaid, Err: err}
	}
	if !changed {
		log.Info("order paid by a concurrent event")
		return OutcomeAlreadyPaid, nil
	}
	order.Status = models.StatusPaid
	order.PaidAt = &paidAt

	s.publish(ctx, events.OrderPaid, order)

	log.Info("order paid")
	return OutcomePaid, nil
}

// GetOrder looks up the newest order with the given pickup code.
func (s *OrderService) GetOrder(ctx context.Context, code string) (*models.Order, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != pickupcode.Length {
		return nil, &ValidationError{Message: "Invalid pickup code"}
	}

	order, err := s.store.GetOrderByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, models.ErrOrderNotFound) {
			s.logger.Error("order lookup failed", zap.String("code", code), zap.Error(err))
		}
		return nil, err
	}
	return order, nil
}

// DownloadURL signs a short-lived link to the order's stored PDF.
func (s *OrderService) DownloadURL(order *models.Order) (string, error) {
	return s.files.SignedURL(order.FilePath, s.signedURLTTL)
}

func (s *OrderService) generateUniqueCode(ctx context.Context) string {
	var code string
	for attempt := 1; attempt <= MaxCodeAttempts; attempt++ {
		code = s.newCode()

		exists, err := s.store.CodeExists(ctx, code)
		if err != nil {
			s.logger.Warn("pickup code lookup failed, using unchecked code",
				zap.String("step", StepGenerateCode), zap.String("code", code), zap.Error(err))
			return code
		}
		if !exists {
			return code
		}
		s.logger.Debug("pickup code collision", zap.String("code", code), zap.Int("attempt", attempt))
	}

	s.logger.Warn("pickup code still taken after max attempts, keeping duplicate",
		zap.String("step", StepGenerateCode), zap.String("code", code), zap.Int("attempts", MaxCodeAttempts))
	return code
}

func (s *OrderService) checkoutRequest(order *models.Order) yoco.CheckoutRequest {
	description := fmt.Sprintf("Print job %s: %s, %d page(s) x %d copies (%s)",
		order.Code, order.ColorMode.Label(), order.Pages, order.Copies, pricing.FormatRands(order.AmountCents))
	code := url.QueryEscape(order.Code)

	return yoco.CheckoutRequest{
		Amount:     order.AmountCents,
		Currency:   Currency,
		SuccessURL: s.baseURL + "/payment/success?code=" + code,
		CancelURL:  s.baseURL + "/payment/cancel?code=" + code,
		ExternalID: order.ID.String(),
		Metadata: map[string]string{
			"code":        order.Code,
			"order_id":    order.ID.String(),
			"description": description,
		},
		LineItems: []yoco.LineItem{{
			DisplayName: "Print job " + order.Code,
			Description: description,
			Quantity:    order.Copies,
			PricingDetails: yoco.PricingDetails{
				Price: order.AmountCents / int64(order.Copies),
			},
		}},
		IdempotencyKey: order.ID.String(),
	}
}

func (s *OrderService) publish(ctx context.Context, routingKey string, order *models.Order) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, routingKey, events.NewOrderEvent(routingKey, order)); err != nil {
		s.logger.Warn("event publish failed",
			zap.String("routing_key", routingKey), zap.String("code", order.Code), zap.Error(err))
	}
}

// ParseColorMode lower-cases raw and defaults an empty value to bw.
func ParseColorMode(raw string) (models.ColorMode, error) {
	if raw == "" {
		return models.ColorModeBW, nil
	}
	mode := models.ColorMode(strings.ToLower(raw))
	if !mode.Valid() {
		return "", &ValidationError{Message: "Invalid color_mode. Use 'bw' or 'color'"}
	}
	return mode, nil
}

// ParseCopies returns at least 1; absent, non-numeric or non-positive input
// counts as 1. Counts above maxCopies are rejected.
func ParseCopies(raw string, maxCopies int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(strings.TrimSpace(raw), "-") {
		return 0, tooManyCopies(maxCopies)
	}
	if err != nil || n < 1 {
		return 1, nil
	}
	if n > maxCopies {
		return 0, tooManyCopies(maxCopies)
	}
	return n, nil
}

func tooManyCopies(maxCopies int) error {
	return &ValidationError{Message: fmt.Sprintf("Too many copies (max %d)", maxCopies)}
}

var fileNameReplacer = strings.NewReplacer(
	"<", "_", ">", "_", ":", "_", `"`, "_", "/", "_", `\`, "_", "|", "_", "?", "_", "*", "_",
)

// SanitizeFileName replaces characters that are unsafe in storage keys.
func SanitizeFileName(name string) string {
	return fileNameReplacer.Replace(name)
}
