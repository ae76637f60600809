package models

import "time"

type CreateOrderResponse struct {
	Success     bool   `json:"success"`
	Code        string `json:"code"`
	Pages       int    `json:"pages"`
	Copies      int    `json:"copies"`
	AmountCents int64  `json:"amount_cents"`
	PayURL      string `json:"payUrl"`
}

type OrderStatusResponse struct {
	Success     bool        `json:"success"`
	Code        string      `json:"code"`
	Status      OrderStatus `json:"status"`
	Pages       int         `json:"pages"`
	Copies      int         `json:"copies"`
	AmountCents int64       `json:"amount_cents"`
	PaidAt      *time.Time  `json:"paid_at,omitempty"`
}

type StaffOrderResponse struct {
	Success     bool        `json:"success"`
	ID          string      `json:"id"`
	Code        string      `json:"code"`
	FileName    string      `json:"file_name"`
	ColorMode   ColorMode   `json:"color_mode"`
	Copies      int         `json:"copies"`
	Pages       int         `json:"pages"`
	AmountCents int64       `json:"amount_cents"`
	Amount      string      `json:"amount"`
	Status      OrderStatus `json:"status"`
	PaymentRef  string      `json:"payment_ref,omitempty"`
	PaidAt      *time.Time  `json:"paid_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	DownloadURL string      `json:"download_url,omitempty"`
}

type CreateOrderEchoResponse struct {
	Success   bool   `json:"success"`
	FileName  string `json:"file_name,omitempty"`
	FileSize  int64  `json:"file_size"`
	ColorMode string `json:"color_mode"`
	Copies    string `json:"copies"`
}

type EchoResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Body    map[string]any `json:"body,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
