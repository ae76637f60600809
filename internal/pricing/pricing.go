package pricing

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"print-kiosk-backend/internal/models"
)

// Rates holds cents-per-page for each color mode.
type Rates struct {
	BWCents    int64
	ColorCents int64
}

type Calculator struct {
	rates Rates
}

func NewCalculator(rates Rates) *Calculator {
	return &Calculator{rates: rates}
}

func (c *Calculator) Rate(mode models.ColorMode) int64 {
	if mode == models.ColorModeColor {
		return c.rates.ColorCents
	}
	return c.rates.BWCents
}

// ErrAmountOverflow is returned when a total does not fit in int64 cents.
var ErrAmountOverflow = errors.New("order total is too large")

// Price returns pages * copies * rate(mode) in cents.
func (c *Calculator) Price(pages, copies int, mode models.ColorMode) (int64, error) {
	p, n, rate := int64(pages), int64(copies), c.Rate(mode)
	if p < 1 || n < 1 || rate < 1 {
		return 0, fmt.Errorf("cannot price %d page(s) x %d copies at %d cents", pages, copies, rate)
	}
	if p > math.MaxInt64/rate || n > math.MaxInt64/(p*rate) {
		return 0, ErrAmountOverflow
	}
	return p * n * rate, nil
}

// FormatRands renders cents as a display amount, e.g. 4800 -> "R48.00".
func FormatRands(cents int64) string {
	return "R" + decimal.New(cents, -2).StringFixed(2)
}
