package services_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"print-kiosk-backend/internal/config"
	"print-kiosk-backend/internal/events"
	"print-kiosk-backend/internal/mocks"
	"print-kiosk-backend/internal/models"
	"print-kiosk-backend/internal/services"
	"print-kiosk-backend/internal/testutil"
	"print-kiosk-backend/internal/yoco"
)

type fixture struct {
	store     *mocks.MockOrderStore
	files     *mocks.MockFileStore
	checkout  *mocks.MockCheckoutClient
	publisher *mocks.MockPublisher
	service   *services.OrderService
}

func newFixture(codes ...string) *fixture {
	return newFixtureWithConfig(testutil.Config(), codes...)
}

func newFixtureWithConfig(cfg *config.Config, codes ...string) *fixture {
	f := &fixture{
		store:     new(mocks.MockOrderStore),
		files:     new(mocks.MockFileStore),
		checkout:  new(mocks.MockCheckoutClient),
		publisher: new(mocks.MockPublisher),
	}

	opts := []services.Option{services.WithClock(testutil.FixedClock())}
	if len(codes) > 0 {
		i := 0
		opts = append(opts, services.WithCodeGenerator(func() string {
			code := codes[i%len(codes)]
			i++
			return code
		}))
	}

	f.service = services.NewOrderService(cfg, f.store, f.files, f.checkout, f.publisher, zap.NewNop(), opts...)
	return f
}

func (f *fixture) expectHappyPath(code string) {
	f.store.On("CodeExists", mock.Anything, code).Return(false, nil)
	f.files.On("Bucket").Return("print-files")
	f.files.On("UploadFile", mock.Anything, mock.Anything, services.PDFContentType).Return(nil)
	f.store.On("CreateOrder", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil)
	f.checkout.On("CreateCheckout", mock.Anything, mock.AnythingOfType("yoco.CheckoutRequest")).Return(&yoco.Checkout{
		ID:          "ch_123",
		RedirectURL: "https://c.yoco.com/checkout/ch_123",
	}, nil)
	f.store.On("SetPaymentRef", mock.Anything, mock.Anything, "ch_123").Return(nil)
	f.publisher.On("Publish", mock.Anything, events.OrderCreated, mock.Anything).Return(nil)
}

func pdfRequest(name string, pages int, colorMode, copies string) models.CreateOrderRequest {
	return models.CreateOrderRequest{
		File:      &models.UploadedFile{Name: name, Data: testutil.SamplePDF(pages)},
		ColorMode: colorMode,
		Copies:    copies,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	f := newFixture("ABC234")
	f.expectHappyPath("ABC234")

	result, err := f.service.CreateOrder(context.Background(), pdfRequest("report.pdf", 2, "color", "3"))
	require.NoError(t, err)

	order := result.Order
	assert.Equal(t, "ABC234", order.Code)
	assert.Equal(t, 2, order.Pages)
	assert.Equal(t, 3, order.Copies)
	assert.Equal(t, models.ColorModeColor, order.ColorMode)
	assert.Equal(t, int64(4800), order.AmountCents)
	assert.Equal(t, models.StatusPendingPayment, order.Status)
	assert.Equal(t, "print-files", order.Bucket)
	assert.Equal(t, "ABC234/1740823200000_report.pdf", order.FilePath)
	assert.Equal(t, "report.pdf", order.FileName)
	require.NotNil(t, order.PaymentRef)
	assert.Equal(t, "ch_123", *order.PaymentRef)
	assert.Equal(t, "https://c.yoco.com/checkout/ch_123", result.PayURL)

	f.files.AssertCalled(t, "UploadFile", "ABC234/1740823200000_report.pdf", testutil.SamplePDF(2), "application/pdf")
	f.store.AssertCalled(t, "SetPaymentRef", mock.Anything, order.ID, "ch_123")

	f.checkout.AssertCalled(t, "CreateCheckout", mock.Anything, mock.MatchedBy(func(req yoco.CheckoutRequest) bool {
		return req.Amount == 4800 &&
			req.Currency == "ZAR" &&
			req.SuccessURL == "https://kiosk.example.com/payment/success?code=ABC234" &&
			req.CancelURL == "https://kiosk.example.com/payment/cancel?code=ABC234" &&
			req.Metadata["code"] == "ABC234" &&
			req.IdempotencyKey == order.ID.String() &&
			len(req.LineItems) == 1 && req.LineItems[0].Quantity == 3 && req.LineItems[0].PricingDetails.Price == 1600
	}))
	f.checkout.AssertCalled(t, "CreateCheckout", mock.Anything, mock.MatchedBy(func(req yoco.CheckoutRequest) bool {
		desc := req.Metadata["description"]
		return strings.Contains(desc, "ABC234") && strings.Contains(desc, "Colour") && strings.Contains(desc, "R48.00")
	}))
	f.publisher.AssertCalled(t, "Publish", mock.Anything, events.OrderCreated, mock.AnythingOfType("events.OrderEvent"))
}

func TestOrderService_CreateOrder_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CreateOrderRequest
		wantMsg string
	}{
		{
			name:    "missing file",
			req:     models.CreateOrderRequest{ColorMode: "bw", Copies: "1"},
			wantMsg: "No file uploaded",
		},
		{
			name:    "not a pdf",
			req:     pdfRequest("report.txt", 1, "bw", "1"),
			wantMsg: "Only PDF files are allowed",
		},
		{
			name:    "no extension",
			req:     pdfRequest("report", 1, "bw", "1"),
			wantMsg: "Only PDF files are allowed",
		},
		{
			name:    "invalid color mode",
			req:     pdfRequest("report.pdf", 1, "sepia", "1"),
			wantMsg: "Invalid color_mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture("ABC234")

			_, err := f.service.CreateOrder(context.Background(), tt.req)
			require.Error(t, err)

			var verr *services.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Message, tt.wantMsg)

			f.files.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
			f.store.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
			f.store.AssertNotCalled(t, "CodeExists", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_CreateOrder_RejectsExcessiveCopies(t *testing.T) {
	tests := []struct {
		name      string
		colorMode string
		copies    string
	}{
		{name: "one over the cap", colorMode: "bw", copies: "1001"},
		{name: "bw total would wrap", colorMode: "bw", copies: "92233720368547759"},
		{name: "color total would go negative", colorMode: "color", copies: "11529215046068470"},
		{name: "beyond int range", colorMode: "bw", copies: "99999999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture("ABC234")

			_, err := f.service.CreateOrder(context.Background(), pdfRequest("report.pdf", 1, tt.colorMode, tt.copies))

			var verr *services.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "Too many copies (max 1000)", verr.Message)

			f.store.AssertNotCalled(t, "CodeExists", mock.Anything, mock.Anything)
			f.files.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
			f.store.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
			f.checkout.AssertNotCalled(t, "CreateCheckout", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_CreateOrder_AcceptsCopiesAtCap(t *testing.T) {
	f := newFixture("ABC234")
	f.expectHappyPath("ABC234")

	result, err := f.service.CreateOrder(context.Background(), pdfRequest("report.pdf", 2, "color", "1000"))
	require.NoError(t, err)

	assert.Equal(t, 1000, result.Order.Copies)
	assert.Equal(t, int64(2*1000*800), result.Order.AmountCents)
}

func TestOrderService_CreateOrder_RejectsOverflowingTotal(t *testing.T) {
	cfg := testutil.Config()
	cfg.PriceColorCents = math.MaxInt64 / 2
	f := newFixtureWithConfig(cfg, "ABC234")

	_, err := f.service.CreateOrder(context.Background(), pdfRequest("report.pdf", 1, "color", "3"))

	var verr *services.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Order total is too large", verr.Message)
	f.store.AssertNotCalled(t, "CodeExists", mock.Anything, mock.Anything)
	f.files.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_CaseInsensitiveInputs(t *testing.T) {
	f := newFixture("ABC234")
	f.expectHappyPath("ABC234")

	result, err := f.service.CreateOrder(context.Background(), pdfRequest("SCAN.PDF", 1, "COLOR", ""))
	require.NoError(t, err)

	assert.Equal(t, models.ColorModeColor, result.Order.ColorMode)
	assert.Equal(t, 1, result.Order.Copies)
	assert.Equal(t, int64(800), result.Order.AmountCents)
}

func TestOrderService_CreateOrder_DefaultsToBlackAndWhite(t *testing.T) {
	f := newFixture("ABC234")
	f.expectHappyPath("ABC234")

	result, err := f.service.CreateOrder(context.Background(), pdfRequest("notes.pdf", 3, "", "2"))
	require.NoError(t, err)

	assert.Equal(t, models.ColorModeBW, result.Order.ColorMode)
	assert.Equal(t, int64(3*2*200), result.Order.AmountCents)
}

func TestOrderService_CreateOrder_SanitizesFileName(t *testing.T) {
	f := newFixture("ABC234")
	f.expectHappyPath("ABC234")

	result, err := f.service.CreateOrder(context.Background(), pdfRequest(`a<b>c:d"e|f?g*h.pdf`, 1, "bw", "1"))
	require.NoError(t, err)

	assert.Equal(t, "a_b_c_d_e_f_g_h.pdf", result.Order.FileName)
	assert.Equal(t, "ABC234/1740823200000_a_b_c_d_e_f_g_h.pdf", result.Order.FilePath)
}

func TestOrderService_CreateOrder_RegeneratesCollidingCodes(t *testing.T) {
	f := newFixture("AAAAAA", "BBBBBB", "CCCCCC")
	f.store.On("CodeExists", mock.Anything, "AAAAAA").Return(true, nil).Once()
	f.store.On("CodeExists", mock.Anything, "BBBBBB").Return(true, nil).Once()
	f.expectHappyPath("CCCCCC")

	result, err := f.service.CreateOrder(context.Background(), pdfRequest("report.pdf", 1, "bw", "1"))
	require.NoError(t, err)

	assert.Equal(t, "CCCCCC", result.Order.Code)
	f.store.AssertNumberOfCalls(t, "CodeExists", 3)
}

func TestOrderService_CreateOrder_KeepsLastCodeAfterMaxAttempts(t *testing.T) {
	f := newFixture("AAAAAA", "BBBBBB", "CCCCCC", "DDDDDD", "EEEEEE", "FFFFFF")
	f.store.On("CodeExists", mock.Anything, mock.Anything).Return(true, nil)
	f.files.On("Bucket").Return("print-files")
	f.files.On("UploadFile", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.store.On("CreateOrder", mock.Anything, mock.Anything).Return(nil)
	f.checkout.On("CreateCheckout", mock.Anything, mock.Anything).Return(&yoco.Checkout{ID: "ch_1", RedirectURL: "https://pay"}, nil)
	f.store.On("SetPaymentRef", mock.Anything, mock.Anything, "ch_1").Return(nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result, err := f.service.CreateOrder(context.Background(), pdfRequest("report.pdf", 1, "bw", "1"))
	require.NoError(t, err)

	assert.Equal(t, "EEEEEE", result.Order.Code)
	f.store.AssertNumberOfCalls(t, "CodeExists", services.MaxCodeAttempts)
}

func TestOrderService_CreateOrder_CodeLookupErrorAcceptsCandidate(t *testing.T) {
	f := newFixture("ABC234")
	f.store.On("CodeExists", mock.Anything, "ABC234").Return(false, errors.New("timeout")).Once()
	f.expectHappyPath("ABC234")

	result, err := f.service.CreateOrder(context.Background(), pdfRequest("report.pdf", 1, "bw", "1"))
	require.NoError(t, err)

	assert.Equal(t, "ABC234", result.Order.Code)
	f.store.AssertNumberOfCalls(t, "CodeExists", 1)
}

func TestOrderService_CreateOrder_StepFailures(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(f *fixture)
		wantStep    string
		wantMessage string
		assertions  func(t *testing.T, f *fixture)
	}{
		{
			name: "upload fails",
			setupMocks: func(f *fixture) {
				f.store.On("CodeExists", mock.Anything, mock.Anything).Return(false, nil)
				f.files.On("UploadFile", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("bucket not found"))
			},
			wantStep:    services.StepUploadFile,
			wantMessage: "bucket not found",
			assertions: func(t *testing.T, f *fixture) {
				f.store.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
				f.checkout.AssertNotCalled(t, "CreateCheckout", mock.Anything, mock.Anything)
			},
		},
		{
			name: "insert fails",
			setupMocks: func(f *fixture) {
				f.store.On("CodeExists", mock.Anything, mock.Anything).Return(false, nil)
				f.files.On("Bucket").Return("print-files")
				f.files.On("UploadFile", mock.Anything, mock.Anything, mock.Anything).Return(nil)
				f.store.On("CreateOrder", mock.Anything, mock.Anything).Return(errors.New("duplicate key"))
			},
			wantStep:    services.StepInsertOrder,
			wantMessage: "duplicate key",
			assertions: func(t *testing.T, f *fixture) {
				f.files.AssertNumberOfCalls(t, "UploadFile", 1)
				f.checkout.AssertNotCalled(t, "CreateCheckout", mock.Anything, mock.Anything)
			},
		},
		{
			name: "checkout fails",
			setupMocks: func(f *fixture) {
				f.store.On("CodeExists", mock.Anything, mock.Anything).Return(false, nil)
				f.files.On("Bucket").Return("print-files")
				f.files.On("UploadFile", mock.Anything, mock.Anything, mock.Anything).Return(nil)
				f.store.On("CreateOrder", mock.Anything, mock.Anything).Return(nil)
				f.checkout.On("CreateCheckout", mock.Anything, mock.Anything).Return(nil, &yoco.APIError{StatusCode: 403, Message: "Invalid secret key"})
			},
			wantStep:    services.StepCreateCheckout,
			wantMessage: "Invalid secret key",
			assertions: func(t *testing.T, f *fixture) {
				f.store.AssertNotCalled(t, "SetPaymentRef", mock.Anything, mock.Anything, mock.Anything)
				f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "payment ref update fails",
			setupMocks: func(f *fixture) {
				f.store.On("CodeExists", mock.Anything, mock.Anything).Return(false, nil)
				f.files.On("Bucket").Return("print-files")
				f.files.On("UploadFile", mock.Anything, mock.Anything, mock.Anything).Return(nil)
				f.store.On("CreateOrder", mock.Anything, mock.Anything).Return(nil)
				f.checkout.On("CreateCheckout", mock.Anything, mock.Anything).Return(&yoco.Checkout{ID: "ch_9", RedirectURL: "https://pay"}, nil)
				f.store.On("SetPaymentRef", mock.Anything, mock.Anything, "ch_9").Return(errors.New("connection reset"))
			},
			wantStep:    services.StepAttachPaymentRef,
			wantMessage: "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture("ABC234")
			tt.setupMocks(f)

			result, err := f.service.CreateOrder(context.Background(), pdfRequest("report.pdf", 1, "bw", "1"))
			require.Error(t, err)
			assert.Nil(t, result)

			var stepErr *services.StepError
			require.True(t, errors.As(err, &stepErr))
			assert.Equal(t, tt.wantStep, stepErr.Step)
			assert.Contains(t, err.Error(), tt.wantMessage)

			if tt.assertions != nil {
				tt.assertions(t, f)
			}
		})
	}
}

func TestOrderService_CreateOrder_PublishFailureIsNotFatal(t *testing.T) {
	f := newFixture("ABC234")
	f.publisher.On("Publish", mock.Anything, events.OrderCreated, mock.Anything).Return(errors.New("broker down")).Once()
	f.expectHappyPath("ABC234")

	result, err := f.service.CreateOrder(context.Background(), pdfRequest("report.pdf", 1, "bw", "1"))
	require.NoError(t, err)
	assert.Equal(t, "ABC234", result.Order.Code)
}

func pendingOrder() *models.Order {
	ref := "ch_123"
	return &models.Order{
		Code:        "ABC234",
		Status:      models.StatusPendingPayment,
		PaymentRef:  &ref,
		Pages:       2,
		Copies:      3,
		AmountCents: 4800,
		ColorMode:   models.ColorModeColor,
	}
}

func webhookEvent(id, status string) models.YocoWebhookEvent {
	var e models.YocoWebhookEvent
	e.Type = "payment.succeeded"
	e.Payload.ID = id
	e.Payload.Status = status
	return e
}

func TestOrderService_ConfirmPayment_MarksPaid(t *testing.T) {
	f := newFixture()
	order := pendingOrder()
	paidAt := testutil.FixedClock()()

	f.store.On("GetOrderByPaymentRef", mock.Anything, "ch_123").Return(order, nil)
	f.store.On("MarkPaid", mock.Anything, order.ID, paidAt).Return(true, nil)
	f.publisher.On("Publish", mock.Anything, events.OrderPaid, mock.Anything).Return(nil)

	outcome, err := f.service.ConfirmPayment(context.Background(), webhookEvent("ch_123", "succeeded"))
	require.NoError(t, err)

	assert.Equal(t, services.OutcomePaid, outcome)
	assert.Equal(t, models.StatusPaid, order.Status)
	require.NotNil(t, order.PaidAt)
	assert.True(t, order.PaidAt.Equal(paidAt))
	f.store.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestOrderService_ConfirmPayment_AlreadyPaid(t *testing.T) {
	f := newFixture()
	order := pendingOrder()
	order.Status = models.StatusPaid
	earlier := time.Date(2025, 2, 28, 9, 0, 0, 0, time.UTC)
	order.PaidAt = &earlier

	f.store.On("GetOrderByPaymentRef", mock.Anything, "ch_123").Return(order, nil)

	outcome, err := f.service.ConfirmPayment(context.Background(), webhookEvent("ch_123", "succeeded"))
	require.NoError(t, err)

	assert.Equal(t, services.OutcomeAlreadyPaid, outcome)
	assert.Equal(t, earlier, *order.PaidAt)
	f.store.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_ConfirmPayment_ConcurrentDeliveryPublishesOnce(t *testing.T) {
	f := newFixture()
	order := pendingOrder()

	// The row read as pending, but a concurrent delivery flipped it first.
	f.store.On("GetOrderByPaymentRef", mock.Anything, "ch_123").Return(order, nil)
	f.store.On("MarkPaid", mock.Anything, order.ID, mock.Anything).Return(false, nil)

	outcome, err := f.service.ConfirmPayment(context.Background(), webhookEvent("ch_123", "succeeded"))
	require.NoError(t, err)

	assert.Equal(t, services.OutcomeAlreadyPaid, outcome)
	assert.Equal(t, models.StatusPendingPayment, order.Status)
	assert.Nil(t, order.PaidAt)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_ConfirmPayment_IgnoresNonSuccessStatus(t *testing.T) {
	for _, status := range []string{"pending", "failed", "SUCCEEDED", ""} {
		t.Run(status, func(t *testing.T) {
			f := newFixture()

			outcome, err := f.service.ConfirmPayment(context.Background(), webhookEvent("ch_123", status))
			require.NoError(t, err)

			assert.Equal(t, services.OutcomeIgnored, outcome)
			f.store.AssertNotCalled(t, "GetOrderByPaymentRef", mock.Anything, mock.Anything)
			f.store.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_ConfirmPayment_MissingID(t *testing.T) {
	f := newFixture()

	_, err := f.service.ConfirmPayment(context.Background(), webhookEvent("  ", "succeeded"))

	var verr *services.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Missing checkout id", verr.Message)
}

func TestOrderService_ConfirmPayment_UnknownCheckout(t *testing.T) {
	f := newFixture()
	f.store.On("GetOrderByPaymentRef", mock.Anything, "ch_unknown").Return(nil, models.ErrOrderNotFound)

	_, err := f.service.ConfirmPayment(context.Background(), webhookEvent("ch_unknown", "succeeded"))

	assert.ErrorIs(t, err, models.ErrOrderNotFound)
	f.store.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_ConfirmPayment_StoreErrors(t *testing.T) {
	t.Run("lookup", func(t *testing.T) {
		f := newFixture()
		f.store.On("GetOrderByPaymentRef", mock.Anything, "ch_123").Return(nil, errors.New("db down"))

		_, err := f.service.ConfirmPayment(context.Background(), webhookEvent("ch_123", "succeeded"))

		var stepErr *services.StepError
		require.True(t, errors.As(err, &stepErr))
		assert.Equal(t, services.StepLookupOrder, stepErr.Step)
	})

	t.Run("mark paid", func(t *testing.T) {
		f := newFixture()
		f.store.On("GetOrderByPaymentRef", mock.Anything, "ch_123").Return(pendingOrder(), nil)
		f.store.On("MarkPaid", mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("db down"))

		_, err := f.service.ConfirmPayment(context.Background(), webhookEvent("ch_123", "succeeded"))

		var stepErr *services.StepError
		require.True(t, errors.As(err, &stepErr))
		assert.Equal(t, services.StepMarkPaid, stepErr.Step)
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	f := newFixture()
	order := pendingOrder()
	f.store.On("GetOrderByCode", mock.Anything, "ABC234").Return(order, nil)

	got, err := f.service.GetOrder(context.Background(), " abc234 ")
	require.NoError(t, err)
	assert.Same(t, order, got)

	_, err = f.service.GetOrder(context.Background(), "ABC")
	var verr *services.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestOrderService_DownloadURL(t *testing.T) {
	f := newFixture()
	order := pendingOrder()
	order.FilePath = "ABC234/1740823200000_report.pdf"
	f.files.On("SignedURL", order.FilePath, 900).Return("https://example.supabase.co/storage/v1/object/sign/print-files/x?token=t", nil)

	url, err := f.service.DownloadURL(order)
	require.NoError(t, err)
	assert.Contains(t, url, "token=t")
}

func TestParseCopies(t *testing.T) {
	tests := map[string]int{
		"":                      1,
		"1":                     1,
		"4":                     4,
		" 7 ":                   7,
		"50":                    50,
		"0":                     1,
		"-3":                    1,
		"-99999999999999999999": 1,
		"abc":                   1,
		"2.5":                   1,
	}
	for raw, want := range tests {
		got, err := services.ParseCopies(raw, 50)
		require.NoError(t, err, "copies %q", raw)
		assert.Equal(t, want, got, "copies %q", raw)
	}

	for _, raw := range []string{"51", "92233720368547759", "99999999999999999999"} {
		_, err := services.ParseCopies(raw, 50)
		var verr *services.ValidationError
		require.True(t, errors.As(err, &verr), "copies %q", raw)
		assert.Equal(t, "Too many copies (max 50)", verr.Message)
	}
}

func TestParseColorMode(t *testing.T) {
	mode, err := services.ParseColorMode("")
	require.NoError(t, err)
	assert.Equal(t, models.ColorModeBW, mode)

	mode, err = services.ParseColorMode("Color")
	require.NoError(t, err)
	assert.Equal(t, models.ColorModeColor, mode)

	_, err = services.ParseColorMode("grey")
	assert.Error(t, err)
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "my_report_v2_.pdf", services.SanitizeFileName("my/report\\v2?.pdf"))
	assert.Equal(t, "plain name.pdf", services.SanitizeFileName("plain name.pdf"))
}
