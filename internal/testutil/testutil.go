package testutil

import (
	"fmt"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"print-kiosk-backend/internal/config"
)

// Config returns a valid configuration with default rates.
func Config() *config.Config {
	return &config.Config{
		SupabaseURL:            "https://example.supabase.co",
		SupabaseServiceRoleKey: "service-key",
		SupabaseJWTSecret:      "test-secret-key-for-jwt-signing-must-be-long-enough",
		SupabaseStorageBucket:  "print-files",
		OrdersTable:            "print_orders",
		YocoSecretKey:          "sk_test_123",
		YocoAPIBaseURL:         "https://payments.yoco.com/api",
		PriceBWCents:           200,
		PriceColorCents:        800,
		MaxCopies:              1000,
		MaxUploadBytes:         20 << 20,
		SignedURLTTLSeconds:    900,
		CreateOrderRateLimit:   0,
		Port:                   "8080",
		Environment:            "test",
		BaseURL:                "https://kiosk.example.com",
	}
}

// SamplePDF builds an uncompressed PDF body with the given number of page
// objects plus the page tree node.
func SamplePDF(pages int) []byte {
	var b strings.Builder
	b.WriteString("%PDF-1.4\n")
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	b.WriteString(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Count %d >>\nendobj\n", pages))
	for i := 0; i < pages; i++ {
		b.WriteString(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] >>\nendobj\n", i+3))
	}
	b.WriteString("trailer\n<< /Root 1 0 R >>\n%%EOF\n")
	return []byte(b.String())
}

// FixedClock returns a clock frozen at a known instant.
func FixedClock() func() time.Time {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

// StaffToken signs a Supabase-style access token for sub.
func StaffToken(t *testing.T, secret, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": "authenticated",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}
