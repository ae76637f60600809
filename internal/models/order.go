package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

type ColorMode string

const (
	ColorModeBW    ColorMode = "bw"
	ColorModeColor ColorMode = "color"
)

func (m ColorMode) Valid() bool {
	return m == ColorModeBW || m == ColorModeColor
}

// Label is the wording used in checkout descriptions.
func (m ColorMode) Label() string {
	if m == ColorModeColor {
		return "Colour"
	}
	return "Black & White"
}

type OrderStatus string

const (
	// StatusCreated is only found on rows written before checkout was added.
	StatusCreated        OrderStatus = "created"
	StatusPendingPayment OrderStatus = "pending_payment"
	StatusPaid           OrderStatus = "paid"
)

func (s OrderStatus) rank() int {
	switch s {
	case StatusCreated:
		return 0
	case StatusPendingPayment:
		return 1
	case StatusPaid:
		return 2
	}
	return -1
}

// CanTransitionTo reports whether moving from s to next goes strictly forward.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	from, to := s.rank(), next.rank()
	return from >= 0 && to > from
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusPaid
}

// Order is one print job from upload to payment confirmation. Column names
// double as JSON keys for the PostgREST store.
type Order struct {
	ID          uuid.UUID   `json:"id"`
	Code        string      `json:"code"`
	Bucket      string      `json:"bucket"`
	FilePath    string      `json:"file_path"`
	FileName    string      `json:"file_name"`
	ColorMode   ColorMode   `json:"color_mode"`
	Copies      int         `json:"copies"`
	Pages       int         `json:"pages"`
	AmountCents int64       `json:"amount_cents"`
	Status      OrderStatus `json:"status"`
	PaymentRef  *string     `json:"payment_ref"`
	PaidAt      *time.Time  `json:"paid_at"`
	CreatedAt   time.Time   `json:"created_at,omitempty"`
}
