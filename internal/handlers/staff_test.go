package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"print-kiosk-backend/internal/models"
	"print-kiosk-backend/internal/testutil"
)

func staffOrder() *models.Order {
	ref := "ch_123"
	return &models.Order{
		ID:          uuid.MustParse("0b9f1c2e-6a7d-4e3b-9a51-3c2f7d8e9a10"),
		Code:        "ABC234",
		Bucket:      "print-files",
		FilePath:    "ABC234/1740823200000_report.pdf",
		FileName:    "report.pdf",
		ColorMode:   models.ColorModeColor,
		Copies:      3,
		Pages:       2,
		AmountCents: 4800,
		Status:      models.StatusPaid,
		PaymentRef:  &ref,
		CreatedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func staffRequest(t *testing.T, path string) *http.Request {
	t.Helper()
	cfg := testutil.Config()

	req, _ := http.NewRequest("GET", path, nil)
	req.Header.Set("Authorization", "Bearer "+testutil.StaffToken(t, cfg.SupabaseJWTSecret, "staff-1"))
	return req
}

func TestStaffGetOrder_RequiresToken(t *testing.T) {
	s := newTestServer(t, testutil.Config())

	req, _ := http.NewRequest("GET", "/staff/orders/ABC234", nil)
	w := s.do(req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	s.store.AssertNotCalled(t, "GetOrderByCode", mock.Anything, mock.Anything)
}

func TestStaffGetOrder_ReturnsDownloadURL(t *testing.T) {
	s := newTestServer(t, testutil.Config())
	s.store.On("GetOrderByCode", mock.Anything, "ABC234").Return(staffOrder(), nil)
	s.files.On("SignedURL", "ABC234/1740823200000_report.pdf", 900).
		Return("https://example.supabase.co/storage/v1/object/sign/print-files/ABC234/1740823200000_report.pdf?token=t", nil)

	w := s.do(staffRequest(t, "/staff/orders/ABC234"))

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ABC234", body["code"])
	assert.Equal(t, "R48.00", body["amount"])
	assert.Equal(t, "ch_123", body["payment_ref"])
	assert.Equal(t, "paid", body["status"])
	assert.Contains(t, body["download_url"], "/object/sign/print-files/")
}

func TestStaffGetOrder_SigningFails(t *testing.T) {
	s := newTestServer(t, testutil.Config())
	s.store.On("GetOrderByCode", mock.Anything, "ABC234").Return(staffOrder(), nil)
	s.files.On("SignedURL", mock.Anything, mock.Anything).Return("", errors.New("object not found"))

	w := s.do(staffRequest(t, "/staff/orders/ABC234"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to create download link", decode(t, w)["error"])
}

func TestStaffGetOrder_NotFound(t *testing.T) {
	s := newTestServer(t, testutil.Config())
	s.store.On("GetOrderByCode", mock.Anything, "ZZZ999").Return(nil, models.ErrOrderNotFound)

	w := s.do(staffRequest(t, "/staff/orders/zzz999"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
