package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"print-kiosk-backend/internal/models"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, models.StatusCreated.CanTransitionTo(models.StatusPendingPayment))
	assert.True(t, models.StatusCreated.CanTransitionTo(models.StatusPaid))
	assert.True(t, models.StatusPendingPayment.CanTransitionTo(models.StatusPaid))

	assert.False(t, models.StatusPaid.CanTransitionTo(models.StatusPendingPayment))
	assert.False(t, models.StatusPaid.CanTransitionTo(models.StatusPaid))
	assert.False(t, models.StatusPendingPayment.CanTransitionTo(models.StatusCreated))
	assert.False(t, models.OrderStatus("refunded").CanTransitionTo(models.StatusPaid))
	assert.False(t, models.StatusPendingPayment.CanTransitionTo(models.OrderStatus("refunded")))

	assert.True(t, models.StatusPaid.IsTerminal())
	assert.False(t, models.StatusPendingPayment.IsTerminal())
}

func TestColorMode(t *testing.T) {
	assert.True(t, models.ColorModeBW.Valid())
	assert.True(t, models.ColorModeColor.Valid())
	assert.False(t, models.ColorMode("sepia").Valid())
	assert.Equal(t, "Colour", models.ColorModeColor.Label())
	assert.Equal(t, "Black & White", models.ColorModeBW.Label())
}
