package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"print-kiosk-backend/internal/config"
	"print-kiosk-backend/internal/handlers"
	"print-kiosk-backend/internal/middleware"
	"print-kiosk-backend/internal/mocks"
	"print-kiosk-backend/internal/services"
	"print-kiosk-backend/internal/testutil"
)

type testServer struct {
	cfg       *config.Config
	store     *mocks.MockOrderStore
	files     *mocks.MockFileStore
	checkout  *mocks.MockCheckoutClient
	publisher *mocks.MockPublisher
	router    *gin.Engine
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &testServer{
		cfg:       cfg,
		store:     new(mocks.MockOrderStore),
		files:     new(mocks.MockFileStore),
		checkout:  new(mocks.MockCheckoutClient),
		publisher: new(mocks.MockPublisher),
	}
	s.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	logger := zap.NewNop()
	service := services.NewOrderService(cfg, s.store, s.files, s.checkout, s.publisher, logger,
		services.WithClock(testutil.FixedClock()),
		services.WithCodeGenerator(func() string { return "ABC234" }),
	)

	orders := handlers.NewOrdersHandler(cfg, service, logger)
	webhook := handlers.NewWebhookHandler(service, logger)
	staff := handlers.NewStaffHandler(service, logger)

	router := gin.New()
	router.GET("/", handlers.RootHandler)
	router.GET("/health", handlers.HealthHandler)
	router.POST("/test", orders.TestEcho)
	router.POST("/create-order", orders.CreateOrder)
	router.POST("/create-order-test", orders.CreateOrderTest)
	router.GET("/orders/:code", orders.GetOrderStatus)
	router.POST("/webhook/yoco", webhook.HandleYocoWebhook)
	router.GET("/staff/orders/:code", middleware.AuthMiddleware(cfg), staff.GetOrder)

	s.router = router
	return s
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

type formFile struct {
	name string
	data []byte
}

func multipartRequest(t *testing.T, path string, file *formFile, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if file != nil {
		part, err := writer.CreateFormFile("file", file.name)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest("POST", path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, method, path string, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req, err := http.NewRequest(method, path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
